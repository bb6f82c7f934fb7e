package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pitstop-dev/loyalty-gateway/internal/constants"
	"github.com/pitstop-dev/loyalty-gateway/internal/loyalty"
	"github.com/pitstop-dev/loyalty-gateway/internal/models"
	"github.com/pitstop-dev/loyalty-gateway/internal/store"
)

// fakeAPI 可编程的上游桩实现
type fakeAPI struct {
	configFn     func(ctx context.Context) *loyalty.Result[models.MembershipConfig]
	membershipFn func(ctx context.Context, token string) *loyalty.Result[models.Membership]
	couponsFn    func(ctx context.Context, token string, filter *loyalty.MyCouponsFilter) *loyalty.Result[loyalty.MyCouponsOutput]
	detailFn     func(ctx context.Context, token, code string) *loyalty.Result[loyalty.CouponDetailOutput]
	historyFn    func(ctx context.Context, token string, filter *loyalty.CouponHistoryFilter) *loyalty.Result[loyalty.CouponHistoryOutput]
	giftInfoFn   func(ctx context.Context, linkToken string) *loyalty.Result[models.GiftLinkInfo]
	useFn        func(ctx context.Context, token string, input loyalty.UseCouponInput) *loyalty.Result[loyalty.UseCouponOutput]
	exchangeFn   func(ctx context.Context, token string, input loyalty.ExchangeCouponInput) *loyalty.Result[loyalty.ExchangeCouponOutput]
	giftFn       func(ctx context.Context, token string, input loyalty.GiftCouponInput) *loyalty.Result[loyalty.GiftCouponOutput]
	giftLinkFn   func(ctx context.Context, token string, input loyalty.CreateGiftLinkInput) *loyalty.Result[loyalty.CreateGiftLinkOutput]
	claimFn      func(ctx context.Context, token string, input loyalty.ClaimGiftInput) *loyalty.Result[loyalty.ClaimGiftOutput]
	starsFn      func(ctx context.Context, token string, input loyalty.AccumulateStarsInput) *loyalty.Result[loyalty.AccumulateStarsOutput]

	exchangeCalls int
}

func (f *fakeAPI) GetMembershipConfig(ctx context.Context) *loyalty.Result[models.MembershipConfig] {
	if f.configFn != nil {
		return f.configFn(ctx)
	}
	return loyalty.Fail[models.MembershipConfig](constants.RemoteCodeServiceUnavailable, "not stubbed", nil)
}

func (f *fakeAPI) GetMyMembership(ctx context.Context, token string) *loyalty.Result[models.Membership] {
	if f.membershipFn != nil {
		return f.membershipFn(ctx, token)
	}
	return loyalty.Fail[models.Membership](constants.RemoteCodeServiceUnavailable, "not stubbed", nil)
}

func (f *fakeAPI) GetMyCoupons(ctx context.Context, token string, filter *loyalty.MyCouponsFilter) *loyalty.Result[loyalty.MyCouponsOutput] {
	if f.couponsFn != nil {
		return f.couponsFn(ctx, token, filter)
	}
	return loyalty.Fail[loyalty.MyCouponsOutput](constants.RemoteCodeServiceUnavailable, "not stubbed", nil)
}

func (f *fakeAPI) GetCouponDetail(ctx context.Context, token, code string) *loyalty.Result[loyalty.CouponDetailOutput] {
	if f.detailFn != nil {
		return f.detailFn(ctx, token, code)
	}
	return loyalty.Fail[loyalty.CouponDetailOutput](constants.RemoteCodeServiceUnavailable, "not stubbed", nil)
}

func (f *fakeAPI) GetCouponHistory(ctx context.Context, token string, filter *loyalty.CouponHistoryFilter) *loyalty.Result[loyalty.CouponHistoryOutput] {
	if f.historyFn != nil {
		return f.historyFn(ctx, token, filter)
	}
	return loyalty.Fail[loyalty.CouponHistoryOutput](constants.RemoteCodeServiceUnavailable, "not stubbed", nil)
}

func (f *fakeAPI) GetGiftLinkInfo(ctx context.Context, linkToken string) *loyalty.Result[models.GiftLinkInfo] {
	if f.giftInfoFn != nil {
		return f.giftInfoFn(ctx, linkToken)
	}
	return loyalty.Fail[models.GiftLinkInfo](constants.RemoteCodeServiceUnavailable, "not stubbed", nil)
}

func (f *fakeAPI) UseCoupon(ctx context.Context, token string, input loyalty.UseCouponInput) *loyalty.Result[loyalty.UseCouponOutput] {
	if f.useFn != nil {
		return f.useFn(ctx, token, input)
	}
	return loyalty.Fail[loyalty.UseCouponOutput](constants.RemoteCodeServiceUnavailable, "not stubbed", nil)
}

func (f *fakeAPI) ExchangeCoupon(ctx context.Context, token string, input loyalty.ExchangeCouponInput) *loyalty.Result[loyalty.ExchangeCouponOutput] {
	f.exchangeCalls++
	if f.exchangeFn != nil {
		return f.exchangeFn(ctx, token, input)
	}
	return loyalty.Fail[loyalty.ExchangeCouponOutput](constants.RemoteCodeServiceUnavailable, "not stubbed", nil)
}

func (f *fakeAPI) GiftCoupon(ctx context.Context, token string, input loyalty.GiftCouponInput) *loyalty.Result[loyalty.GiftCouponOutput] {
	if f.giftFn != nil {
		return f.giftFn(ctx, token, input)
	}
	return loyalty.Fail[loyalty.GiftCouponOutput](constants.RemoteCodeServiceUnavailable, "not stubbed", nil)
}

func (f *fakeAPI) CreateGiftLink(ctx context.Context, token string, input loyalty.CreateGiftLinkInput) *loyalty.Result[loyalty.CreateGiftLinkOutput] {
	if f.giftLinkFn != nil {
		return f.giftLinkFn(ctx, token, input)
	}
	return loyalty.Fail[loyalty.CreateGiftLinkOutput](constants.RemoteCodeServiceUnavailable, "not stubbed", nil)
}

func (f *fakeAPI) ClaimGift(ctx context.Context, token string, input loyalty.ClaimGiftInput) *loyalty.Result[loyalty.ClaimGiftOutput] {
	if f.claimFn != nil {
		return f.claimFn(ctx, token, input)
	}
	return loyalty.Fail[loyalty.ClaimGiftOutput](constants.RemoteCodeServiceUnavailable, "not stubbed", nil)
}

func (f *fakeAPI) AccumulateStars(ctx context.Context, token string, input loyalty.AccumulateStarsInput) *loyalty.Result[loyalty.AccumulateStarsOutput] {
	if f.starsFn != nil {
		return f.starsFn(ctx, token, input)
	}
	return loyalty.Fail[loyalty.AccumulateStarsOutput](constants.RemoteCodeServiceUnavailable, "not stubbed", nil)
}

var _ loyalty.API = (*fakeAPI)(nil)

func newTestSessionService(t *testing.T, api loyalty.API) (*SessionService, Session) {
	t.Helper()
	registry := store.NewRegistry(time.Minute)
	t.Cleanup(registry.Close)
	svc := NewSessionService(SessionServiceInput{
		API:      api,
		Registry: registry,
		Configs:  NewConfigService(api, time.Minute),
	})
	return svc, Session{ID: "session-1", Token: "member-token"}
}

func seedCoupons(svc *SessionService, sess Session, coupons ...models.RewardCoupon) {
	svc.Store(sess).SetCoupons(coupons)
}

func TestUseCouponMarksUsed(t *testing.T) {
	usedAt := time.Now().Add(-time.Minute)
	api := &fakeAPI{
		useFn: func(ctx context.Context, token string, input loyalty.UseCouponInput) *loyalty.Result[loyalty.UseCouponOutput] {
			return loyalty.Ok(&loyalty.UseCouponOutput{Coupon: models.RewardCoupon{
				Code:   input.Code,
				Status: constants.CouponStatusUsed,
				UsedAt: &usedAt,
			}})
		},
	}
	svc, sess := newTestSessionService(t, api)
	seedCoupons(svc, sess, models.RewardCoupon{Code: "CP-001", Status: constants.CouponStatusActive})

	result, err := svc.UseCoupon(context.Background(), sess, "CP-001")
	if err != nil {
		t.Fatalf("不期望本地校验错误: %v", err)
	}
	if !result.Success {
		t.Fatalf("期望成功: %v", result.ErrorMessage())
	}

	coupon, ok := svc.Store(sess).FindCoupon("CP-001")
	if !ok {
		t.Fatal("券丢失")
	}
	if coupon.Status != constants.CouponStatusUsed {
		t.Fatalf("状态未更新: %s", coupon.Status)
	}
	if coupon.UsedAt == nil || !coupon.UsedAt.Equal(usedAt) {
		t.Fatalf("usedAt 未写入: %v", coupon.UsedAt)
	}
	if svc.Store(sess).Loading() {
		t.Fatal("请求结束后不应处于加载中")
	}
}

func TestUseCouponFailureLeavesStateUntouched(t *testing.T) {
	api := &fakeAPI{
		useFn: func(ctx context.Context, token string, input loyalty.UseCouponInput) *loyalty.Result[loyalty.UseCouponOutput] {
			return loyalty.Fail[loyalty.UseCouponOutput](constants.RemoteCodeConflict, "이미 사용된 쿠폰입니다", nil)
		},
	}
	svc, sess := newTestSessionService(t, api)
	seedCoupons(svc, sess, models.RewardCoupon{Code: "CP-001", Status: constants.CouponStatusActive})

	result, err := svc.UseCoupon(context.Background(), sess, "CP-001")
	if err != nil {
		t.Fatalf("不期望本地校验错误: %v", err)
	}
	if result.Success {
		t.Fatal("期望失败结果")
	}
	if result.ErrorMessage() != "이미 사용된 쿠폰입니다" {
		t.Fatalf("错误信息不匹配: %s", result.ErrorMessage())
	}

	coupon, _ := svc.Store(sess).FindCoupon("CP-001")
	if coupon.Status != constants.CouponStatusActive || coupon.UsedAt != nil {
		t.Fatalf("失败时本地状态不应变化: %+v", coupon)
	}
	if svc.Store(sess).Loading() {
		t.Fatal("失败后不应处于加载中")
	}
	if svc.Store(sess).ErrorMessage() != "이미 사용된 쿠폰입니다" {
		t.Fatalf("错误标记未写入: %s", svc.Store(sess).ErrorMessage())
	}
}

func TestUseCouponEmptyCode(t *testing.T) {
	svc, sess := newTestSessionService(t, &fakeAPI{})
	if _, err := svc.UseCoupon(context.Background(), sess, "  "); err != ErrCouponCodeRequired {
		t.Fatalf("期望 ErrCouponCodeRequired: %v", err)
	}
}

func TestExchangeInsufficientStarsSkipsUpstream(t *testing.T) {
	api := &fakeAPI{
		configFn: func(ctx context.Context) *loyalty.Result[models.MembershipConfig] {
			return loyalty.Ok(&models.MembershipConfig{
				ExchangeOptions: []models.ExchangeOption{
					{Type: constants.CouponTypePremiumWash, Name: "프리미엄 세차권", RequiredStars: 12},
				},
			})
		},
	}
	svc, sess := newTestSessionService(t, api)
	svc.Store(sess).SetMembership(&models.Membership{MemberID: "M-1", AvailableStars: 7})

	_, err := svc.Exchange(context.Background(), sess, constants.CouponTypePremiumWash)
	insufficient, ok := IsStarsInsufficient(err)
	if !ok {
		t.Fatalf("期望星星不足错误: %v", err)
	}
	if insufficient.Shortfall() != 5 {
		t.Fatalf("缺口不正确: %d", insufficient.Shortfall())
	}
	if api.exchangeCalls != 0 {
		t.Fatalf("星星不足时不应请求上游: %d", api.exchangeCalls)
	}
}

func TestExchangeSuccessAppendsExactlyOne(t *testing.T) {
	api := &fakeAPI{
		configFn: func(ctx context.Context) *loyalty.Result[models.MembershipConfig] {
			return loyalty.Ok(&models.MembershipConfig{
				ExchangeOptions: []models.ExchangeOption{
					{Type: constants.CouponTypeBasicWash, Name: "기본 세차권", RequiredStars: 8},
				},
			})
		},
		exchangeFn: func(ctx context.Context, token string, input loyalty.ExchangeCouponInput) *loyalty.Result[loyalty.ExchangeCouponOutput] {
			return loyalty.Ok(&loyalty.ExchangeCouponOutput{Coupon: models.RewardCoupon{
				Code:      "CP-NEW",
				Type:      input.Type,
				Status:    constants.CouponStatusActive,
				IssueType: constants.CouponIssueTypeExchange,
			}})
		},
		membershipFn: func(ctx context.Context, token string) *loyalty.Result[models.Membership] {
			return loyalty.Ok(&models.Membership{MemberID: "M-1", AvailableStars: 2})
		},
	}
	svc, sess := newTestSessionService(t, api)
	svc.Store(sess).SetMembership(&models.Membership{MemberID: "M-1", AvailableStars: 10})
	seedCoupons(svc, sess, models.RewardCoupon{Code: "CP-001", Status: constants.CouponStatusActive})

	result, err := svc.Exchange(context.Background(), sess, constants.CouponTypeBasicWash)
	if err != nil {
		t.Fatalf("不期望本地校验错误: %v", err)
	}
	if !result.Success {
		t.Fatalf("期望成功: %v", result.ErrorMessage())
	}

	coupons := svc.Store(sess).Coupons()
	if len(coupons) != 2 {
		t.Fatalf("期望追加恰好一张券: %d", len(coupons))
	}
	if _, ok := svc.Store(sess).FindCoupon("CP-NEW"); !ok {
		t.Fatal("新券未入列表")
	}
	if svc.Store(sess).Membership().AvailableStars != 2 {
		t.Fatal("兑换后会员快照未刷新")
	}
}

func TestExchangeUnknownTypeRejected(t *testing.T) {
	api := &fakeAPI{
		configFn: func(ctx context.Context) *loyalty.Result[models.MembershipConfig] {
			return loyalty.Ok(&models.MembershipConfig{})
		},
	}
	svc, sess := newTestSessionService(t, api)

	if _, err := svc.Exchange(context.Background(), sess, "NO_SUCH_TYPE"); err != ErrExchangeTypeInvalid {
		t.Fatalf("期望 ErrExchangeTypeInvalid: %v", err)
	}
	if api.exchangeCalls != 0 {
		t.Fatal("无效类型不应请求上游")
	}
}

func TestGiftByEmailRemovesInputCode(t *testing.T) {
	api := &fakeAPI{
		giftFn: func(ctx context.Context, token string, input loyalty.GiftCouponInput) *loyalty.Result[loyalty.GiftCouponOutput] {
			return loyalty.Ok(&loyalty.GiftCouponOutput{CouponCode: input.CouponCode})
		},
	}
	svc, sess := newTestSessionService(t, api)
	seedCoupons(svc, sess,
		models.RewardCoupon{Code: "CP-001", Status: constants.CouponStatusActive},
		models.RewardCoupon{Code: "CP-002", Status: constants.CouponStatusActive},
	)

	result, err := svc.GiftByEmail(context.Background(), sess, "CP-001", "friend@example.com", "축하해")
	if err != nil {
		t.Fatalf("不期望本地校验错误: %v", err)
	}
	if !result.Success {
		t.Fatalf("期望成功: %v", result.ErrorMessage())
	}
	if _, ok := svc.Store(sess).FindCoupon("CP-001"); ok {
		t.Fatal("赠出的券应从本地列表移除")
	}
	if _, ok := svc.Store(sess).FindCoupon("CP-002"); !ok {
		t.Fatal("其他券不应被移除")
	}
}

func TestGiftByEmailInvalidRecipient(t *testing.T) {
	svc, sess := newTestSessionService(t, &fakeAPI{})
	if _, err := svc.GiftByEmail(context.Background(), sess, "CP-001", "", ""); err != ErrGiftRecipientRequired {
		t.Fatalf("期望 ErrGiftRecipientRequired: %v", err)
	}
	if _, err := svc.GiftByEmail(context.Background(), sess, "CP-001", "not-an-email", ""); err != ErrGiftRecipientInvalid {
		t.Fatalf("期望 ErrGiftRecipientInvalid: %v", err)
	}
}

func TestCreateGiftLinkRemovesInputCode(t *testing.T) {
	api := &fakeAPI{
		giftLinkFn: func(ctx context.Context, token string, input loyalty.CreateGiftLinkInput) *loyalty.Result[loyalty.CreateGiftLinkOutput] {
			return loyalty.Ok(&loyalty.CreateGiftLinkOutput{
				Token:   "gift-token",
				GiftURL: "https://gift.example.com/g/gift-token",
			})
		},
	}
	svc, sess := newTestSessionService(t, api)
	seedCoupons(svc, sess, models.RewardCoupon{Code: "CP-001", Status: constants.CouponStatusActive})

	result, err := svc.CreateGiftLink(context.Background(), sess, "CP-001", "")
	if err != nil {
		t.Fatalf("不期望本地校验错误: %v", err)
	}
	if !result.Success || result.Data.GiftURL == "" {
		t.Fatalf("期望返回链接: %+v", result)
	}
	if _, ok := svc.Store(sess).FindCoupon("CP-001"); ok {
		t.Fatal("创建链接后券应从本地列表移除")
	}
}

func TestClaimGiftAppendsUpstreamCoupon(t *testing.T) {
	api := &fakeAPI{
		claimFn: func(ctx context.Context, token string, input loyalty.ClaimGiftInput) *loyalty.Result[loyalty.ClaimGiftOutput] {
			return loyalty.Ok(&loyalty.ClaimGiftOutput{Coupon: models.RewardCoupon{
				Code:      "CP-CLAIMED",
				Status:    constants.CouponStatusActive,
				IssueType: constants.CouponIssueTypeGift,
				IsGifted:  true,
			}})
		},
	}
	svc, sess := newTestSessionService(t, api)

	result, err := svc.ClaimGift(context.Background(), sess, "gift-token")
	if err != nil {
		t.Fatalf("不期望本地校验错误: %v", err)
	}
	if !result.Success {
		t.Fatalf("期望成功: %v", result.ErrorMessage())
	}
	if _, ok := svc.Store(sess).FindCoupon("CP-CLAIMED"); !ok {
		t.Fatal("领取的券应入本地列表")
	}
}

func TestCouponCountsIgnoreFilter(t *testing.T) {
	api := &fakeAPI{
		couponsFn: func(ctx context.Context, token string, filter *loyalty.MyCouponsFilter) *loyalty.Result[loyalty.MyCouponsOutput] {
			if filter != nil {
				return loyalty.Ok(&loyalty.MyCouponsOutput{Coupons: []models.RewardCoupon{
					{Code: "CP-001", Status: constants.CouponStatusActive},
				}})
			}
			return loyalty.Ok(&loyalty.MyCouponsOutput{Coupons: []models.RewardCoupon{
				{Code: "CP-001", Status: constants.CouponStatusActive},
				{Code: "CP-002", Status: constants.CouponStatusUsed},
				{Code: "CP-003", Status: constants.CouponStatusExpired},
			}})
		},
	}
	svc, sess := newTestSessionService(t, api)

	// 先以过滤方式查询，验证统计不受其影响
	filtered := svc.Coupons(context.Background(), sess, constants.CouponStatusActive)
	if !filtered.Success || len(filtered.Data.Coupons) != 1 {
		t.Fatalf("过滤查询结果不正确: %+v", filtered.Data)
	}

	counts, result := svc.CouponCounts(context.Background(), sess)
	if counts == nil {
		t.Fatalf("统计失败: %v", result.ErrorMessage())
	}
	if counts.Active != 1 || counts.Used != 1 || counts.Expired != 1 || counts.Total != 3 {
		t.Fatalf("统计应基于完整列表: %+v", counts)
	}
}

func TestMembershipSummaryFallback(t *testing.T) {
	svc, sess := newTestSessionService(t, &fakeAPI{})

	summary := svc.MembershipSummary(sess)
	if summary.Loaded {
		t.Fatal("未加载时 Loaded 应为 false")
	}
	if summary.AvailableStars != 0 || summary.CurrentTier != constants.TierWelcome {
		t.Fatalf("兜底值不正确: %+v", summary)
	}

	svc.Store(sess).SetMembership(&models.Membership{
		MemberID:       "M-1",
		AvailableStars: 15,
		CurrentTier:    constants.TierShine,
	})
	summary = svc.MembershipSummary(sess)
	if !summary.Loaded || summary.AvailableStars != 15 || summary.CurrentTier != constants.TierShine {
		t.Fatalf("已加载概要不正确: %+v", summary)
	}
}

func TestAccumulateStarsRefreshesOnlineMemberSnapshot(t *testing.T) {
	api := &fakeAPI{
		starsFn: func(ctx context.Context, token string, input loyalty.AccumulateStarsInput) *loyalty.Result[loyalty.AccumulateStarsOutput] {
			return loyalty.Ok(&loyalty.AccumulateStarsOutput{Membership: models.Membership{
				MemberID:       input.MemberID,
				AvailableStars: 50,
				CurrentTier:    constants.TierStar,
			}})
		},
	}
	registry := store.NewRegistry(time.Minute)
	t.Cleanup(registry.Close)
	svc := NewSessionService(SessionServiceInput{
		API:      api,
		Registry: registry,
		Configs:  NewConfigService(api, time.Minute),
	})

	// 会员无 jti 时会话以会员 ID 为键，管理端累星应能找到它
	memberSess := Session{ID: "M-1", Token: "member-token"}
	svc.Store(memberSess).SetMembership(&models.Membership{MemberID: "M-1", AvailableStars: 5})

	stars := 3
	result, err := svc.AccumulateStars(context.Background(), loyalty.AccumulateStarsInput{MemberID: "M-1", Stars: &stars})
	if err != nil {
		t.Fatalf("本地校验不应失败: %v", err)
	}
	if !result.Success {
		t.Fatalf("期望成功: %v", result.ErrorMessage())
	}

	membership := svc.Store(memberSess).Membership()
	if membership == nil || membership.AvailableStars != 50 {
		t.Fatalf("在线会员快照未刷新: %+v", membership)
	}
	if membership.CurrentTier != constants.TierStar {
		t.Fatalf("等级未刷新: %s", membership.CurrentTier)
	}
}

func TestAccumulateStarsOfflineMemberCreatesNoSession(t *testing.T) {
	api := &fakeAPI{
		starsFn: func(ctx context.Context, token string, input loyalty.AccumulateStarsInput) *loyalty.Result[loyalty.AccumulateStarsOutput] {
			return loyalty.Ok(&loyalty.AccumulateStarsOutput{Membership: models.Membership{MemberID: input.MemberID}})
		},
	}
	registry := store.NewRegistry(time.Minute)
	t.Cleanup(registry.Close)
	svc := NewSessionService(SessionServiceInput{
		API:      api,
		Registry: registry,
		Configs:  NewConfigService(api, time.Minute),
	})

	stars := 3
	if _, err := svc.AccumulateStars(context.Background(), loyalty.AccumulateStarsInput{MemberID: "M-9", Stars: &stars}); err != nil {
		t.Fatalf("本地校验不应失败: %v", err)
	}
	if registry.Len() != 0 {
		t.Fatalf("离线会员不应凭空建立会话: %d", registry.Len())
	}
}

func TestAccumulateStarsRejectsUnknownSource(t *testing.T) {
	called := false
	api := &fakeAPI{
		starsFn: func(ctx context.Context, token string, input loyalty.AccumulateStarsInput) *loyalty.Result[loyalty.AccumulateStarsOutput] {
			called = true
			return loyalty.Ok(&loyalty.AccumulateStarsOutput{})
		},
	}
	svc, _ := newTestSessionService(t, api)

	stars := 1
	_, err := svc.AccumulateStars(context.Background(), loyalty.AccumulateStarsInput{MemberID: "M-1", Stars: &stars, Source: "LOTTERY"})
	if !errors.Is(err, ErrStarSourceInvalid) {
		t.Fatalf("期望来源校验失败: %v", err)
	}
	if called {
		t.Fatal("本地校验失败不应触发上游调用")
	}
}

func TestRefreshClearsPreviousErrorDuringFlight(t *testing.T) {
	api := &fakeAPI{}
	svc, sess := newTestSessionService(t, api)

	api.membershipFn = func(ctx context.Context, token string) *loyalty.Result[models.Membership] {
		return loyalty.Fail[models.Membership](constants.RemoteCodeServiceUnavailable, "서버 오류", nil)
	}
	svc.RefreshMembership(context.Background(), sess)
	if svc.Store(sess).ErrorMessage() != "서버 오류" {
		t.Fatalf("失败后错误标记未写入: %q", svc.Store(sess).ErrorMessage())
	}

	inFlight := "unset"
	api.membershipFn = func(ctx context.Context, token string) *loyalty.Result[models.Membership] {
		inFlight = svc.Store(sess).ErrorMessage()
		return loyalty.Ok(&models.Membership{MemberID: "M-1"})
	}
	svc.RefreshMembership(context.Background(), sess)
	if inFlight != "" {
		t.Fatalf("新请求进行中不应再读到旧错误: %q", inFlight)
	}
	if svc.Store(sess).ErrorMessage() != "" {
		t.Fatalf("成功后错误应保持清除: %q", svc.Store(sess).ErrorMessage())
	}
}
