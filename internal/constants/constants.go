package constants

// 优惠券状态常量
const (
	CouponStatusActive  = "ACTIVE"
	CouponStatusUsed    = "USED"
	CouponStatusExpired = "EXPIRED"
)

// 优惠券类型常量
const (
	CouponTypePremiumWash  = "PREMIUM_WASH"
	CouponTypeBasicWash    = "BASIC_WASH"
	CouponTypeFuelDiscount = "FUEL_DISCOUNT"
)

// 优惠券发放来源常量
const (
	CouponIssueTypeWelcome  = "WELCOME"
	CouponIssueTypeExchange = "EXCHANGE"
	CouponIssueTypeGift     = "GIFT"
)

// 会员等级常量
const (
	TierWelcome = "WELCOME"
	TierShine   = "SHINE"
	TierStar    = "STAR"
)

// 赠送方式常量
const (
	GiftMethodLink  = "link"
	GiftMethodEmail = "email"
)

// 历史事件类型常量
const (
	HistoryEventUse      = "USE"
	HistoryEventExchange = "EXCHANGE"
	HistoryEventGift     = "GIFT"
	HistoryEventClaim    = "CLAIM"
	HistoryEventExpire   = "EXPIRE"
)

// 积分变动来源常量
const (
	StarSourceFuel     = "FUEL"
	StarSourceCarWash  = "CAR_WASH"
	StarSourceDelivery = "DELIVERY"
	StarSourceManual   = "MANUAL"
)

// 即将过期提示窗口（天）
const CouponExpiringSoonDays = 7

// 上游错误码常量
const (
	RemoteCodeUnauthenticated    = "UNAUTHENTICATED"
	RemoteCodeForbidden          = "FORBIDDEN"
	RemoteCodeBadUserInput       = "BAD_USER_INPUT"
	RemoteCodeNotFound           = "NOT_FOUND"
	RemoteCodeConflict           = "CONFLICT"
	RemoteCodeTokenExpired       = "TOKEN_EXPIRED"
	RemoteCodeInternal           = "INTERNAL_SERVER_ERROR"
	RemoteCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	RemoteCodeNetworkError       = "NETWORK_ERROR"
	RemoteCodeTimeout            = "TIMEOUT"
	RemoteCodeGraphQLError       = "GRAPHQL_ERROR"
)

// 异步任务类型常量
const (
	TaskGiftNotifyEmail = "gift:notify_email"
)

// 队列名称常量
const (
	QueueDefault = "default"
)

// 验证码场景常量
const (
	CaptchaSceneClaimGift = "claim_gift"
)

// 会话缓存默认值
const (
	SessionTTLMinutes = 30
)
