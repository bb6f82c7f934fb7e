package loyalty

// 上游操作文档，每个操作名与字段集合都是与后端约定的固定契约，
// 不在运行时拼接。

const docGetMembershipConfig = `query GET_MEMBERSHIP_CONFIG {
  membershipConfig {
    starsPerCoupon
    couponExpiryYears
    tierThresholds
    earningRates {
      source
      rate
      unit
    }
    exchangeOptions {
      type
      name
      requiredStars
    }
  }
}`

const docGetMyMembership = `query GET_MY_MEMBERSHIP {
  myMembership {
    memberId
    availableStars
    currentTier
    currentTierDisplayName
    starsToNextCoupon
    couponProgress
    exchangeableCoupons
    starsToNextTier
    tierProgress
    starsToMaintainTier
    nextTierName
    daysUntilReview
  }
}`

const docGetMyCoupons = `query GET_MY_COUPONS($filter: CouponFilterInput) {
  myCoupons(filter: $filter) {
    coupons {
      code
      name
      type
      status
      expiresAt
      usedAt
      isGifted
      giftedFrom
      issueType
    }
  }
}`

const docGetCouponDetail = `query GET_COUPON_DETAIL($code: String!) {
  couponDetail(code: $code) {
    coupon {
      code
      name
      type
      status
      expiresAt
      usedAt
      isGifted
      giftedFrom
      issueType
    }
    qrData
  }
}`

const docGetCouponHistory = `query GET_COUPON_HISTORY($filter: CouponHistoryFilterInput) {
  couponHistory(filter: $filter) {
    items {
      id
      couponCode
      couponName
      eventType
      occurredAt
      detail
      isOutbound
    }
  }
}`

const docGetGiftLinkInfo = `query GET_GIFT_LINK_INFO($token: String!) {
  giftLinkInfo(token: $token) {
    token
    couponName
    couponType
    senderName
    message
    expiresAt
    claimed
  }
}`

const docUseCoupon = `mutation USE_COUPON($input: UseCouponInput!) {
  useCoupon(input: $input) {
    coupon {
      code
      name
      type
      status
      expiresAt
      usedAt
      isGifted
      giftedFrom
      issueType
    }
  }
}`

const docExchangeCoupon = `mutation EXCHANGE_COUPON($input: ExchangeCouponInput!) {
  exchangeCoupon(input: $input) {
    coupon {
      code
      name
      type
      status
      expiresAt
      usedAt
      isGifted
      giftedFrom
      issueType
    }
  }
}`

const docGiftCoupon = `mutation GIFT_COUPON($input: GiftCouponInput!) {
  giftCoupon(input: $input) {
    couponCode
  }
}`

const docCreateGiftLink = `mutation CREATE_GIFT_LINK($input: CreateGiftLinkInput!) {
  createGiftLink(input: $input) {
    token
    giftUrl
    expiresAt
  }
}`

const docClaimGift = `mutation CLAIM_GIFT($input: ClaimGiftInput!) {
  claimGift(input: $input) {
    coupon {
      code
      name
      type
      status
      expiresAt
      usedAt
      isGifted
      giftedFrom
      issueType
    }
  }
}`

const docAccumulateStars = `mutation ACCUMULATE_STARS($input: AccumulateStarsInput!) {
  accumulateStars(input: $input) {
    membership {
      memberId
      availableStars
      currentTier
      currentTierDisplayName
      starsToNextCoupon
      couponProgress
      exchangeableCoupons
      starsToNextTier
      tierProgress
      starsToMaintainTier
      nextTierName
      daysUntilReview
    }
  }
}`
