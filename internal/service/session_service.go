package service

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/pitstop-dev/loyalty-gateway/internal/constants"
	"github.com/pitstop-dev/loyalty-gateway/internal/loyalty"
	"github.com/pitstop-dev/loyalty-gateway/internal/models"
	"github.com/pitstop-dev/loyalty-gateway/internal/store"
)

// Session 一次会员请求的身份
type Session struct {
	ID    string // 会话标识（JWT jti 或会员 ID）
	Token string // 透传给上游的 Bearer 令牌
}

// SessionService 会员会话服务
// 围绕单个会话的客户端状态编排上游调用：每次调用前后维护加载标记，
// 成功后按操作类型更新本地状态（核销置 USED、兑换/领取追加、赠出移除）。
// 上游失败不作为 Go error 返回，统一携带在 Result 信封里；
// 本层返回的 error 仅代表进入上游之前的本地校验失败。
type SessionService struct {
	api          loyalty.API
	registry     *store.Registry
	configs      *ConfigService
	serviceToken string
}

// SessionServiceInput 会话服务构造入参
type SessionServiceInput struct {
	API          loyalty.API
	Registry     *store.Registry
	Configs      *ConfigService
	ServiceToken string
}

// NewSessionService 创建会话服务
func NewSessionService(input SessionServiceInput) *SessionService {
	return &SessionService{
		api:          input.API,
		registry:     input.Registry,
		configs:      input.Configs,
		serviceToken: strings.TrimSpace(input.ServiceToken),
	}
}

// Store 取会话对应的状态
func (s *SessionService) Store(sess Session) *store.Store {
	return s.registry.Get(sess.ID)
}

// RefreshMembership 拉取会员快照并写入会话状态
func (s *SessionService) RefreshMembership(ctx context.Context, sess Session) *loyalty.Result[models.Membership] {
	st := s.Store(sess)
	return withLoading(st, func() *loyalty.Result[models.Membership] {
		result := s.api.GetMyMembership(ctx, sess.Token)
		if result.Success {
			st.SetMembership(result.Data)
		}
		return result
	})
}

// MembershipSummary 会员概要，纯本地派生，不触发网络请求
// 会员信息未加载时返回零值与 WELCOME 等级，页面可安全渲染。
func (s *SessionService) MembershipSummary(sess Session) models.MembershipSummary {
	membership := s.Store(sess).Membership()
	if membership == nil {
		return models.MembershipSummary{
			CurrentTier: constants.TierWelcome,
			Loaded:      false,
		}
	}
	return models.MembershipSummary{
		AvailableStars:         membership.AvailableStars,
		CurrentTier:            membership.CurrentTier,
		CurrentTierDisplayName: membership.CurrentTierDisplayName,
		StarsToNextCoupon:      membership.StarsToNextCoupon,
		CouponProgress:         membership.CouponProgress,
		ExchangeableCoupons:    membership.ExchangeableCoupons,
		StarsToNextTier:        membership.StarsToNextTier,
		TierProgress:           membership.TierProgress,
		StarsToMaintainTier:    membership.StarsToMaintainTier,
		NextTierName:           membership.NextTierName,
		DaysUntilReview:        membership.DaysUntilReview,
		Loaded:                 true,
	}
}

// Coupons 查询券列表
// status 为空时拉取完整列表并整体替换会话状态；带状态过滤时只透传
// 过滤结果，不覆盖完整列表。
func (s *SessionService) Coupons(ctx context.Context, sess Session, status string) *loyalty.Result[loyalty.MyCouponsOutput] {
	st := s.Store(sess)
	status = strings.ToUpper(strings.TrimSpace(status))
	return withLoading(st, func() *loyalty.Result[loyalty.MyCouponsOutput] {
		var filter *loyalty.MyCouponsFilter
		if status != "" {
			filter = &loyalty.MyCouponsFilter{Status: status}
		}
		result := s.api.GetMyCoupons(ctx, sess.Token, filter)
		if result.Success && status == "" {
			st.SetCoupons(result.Data.Coupons)
		}
		return result
	})
}

// CouponCounts 按状态统计券数
// 统计始终基于完整列表：先整体刷新，再在本地计数，与页面当前的
// 过滤条件无关。
func (s *SessionService) CouponCounts(ctx context.Context, sess Session) (*models.CouponCounts, *loyalty.Result[loyalty.MyCouponsOutput]) {
	result := s.Coupons(ctx, sess, "")
	if !result.Success {
		return nil, result
	}
	counts := s.Store(sess).CouponCounts()
	return &counts, result
}

// CouponDetail 查询单张券详情
func (s *SessionService) CouponDetail(ctx context.Context, sess Session, code string) (*loyalty.Result[loyalty.CouponDetailOutput], error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrCouponCodeRequired
	}
	st := s.Store(sess)
	return withLoading(st, func() *loyalty.Result[loyalty.CouponDetailOutput] {
		return s.api.GetCouponDetail(ctx, sess.Token, code)
	}), nil
}

// CouponHistory 查询券流水并写入会话状态
func (s *SessionService) CouponHistory(ctx context.Context, sess Session, filter *loyalty.CouponHistoryFilter) *loyalty.Result[loyalty.CouponHistoryOutput] {
	st := s.Store(sess)
	return withLoading(st, func() *loyalty.Result[loyalty.CouponHistoryOutput] {
		result := s.api.GetCouponHistory(ctx, sess.Token, filter)
		if result.Success {
			st.SetCouponHistory(result.Data.Items)
		}
		return result
	})
}

// UseCoupon 核销一张券
// 成功后将本地对应券置为 USED 并写入核销时间；失败时本地状态保持不变。
func (s *SessionService) UseCoupon(ctx context.Context, sess Session, code string) (*loyalty.Result[loyalty.UseCouponOutput], error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrCouponCodeRequired
	}
	st := s.Store(sess)
	result := withLoading(st, func() *loyalty.Result[loyalty.UseCouponOutput] {
		result := s.api.UseCoupon(ctx, sess.Token, loyalty.UseCouponInput{Code: code})
		if result.Success {
			usedAt := result.Data.Coupon.UsedAt
			if usedAt == nil {
				now := time.Now()
				usedAt = &now
			}
			status := constants.CouponStatusUsed
			st.UpdateCoupon(code, models.CouponPatch{Status: &status, UsedAt: usedAt})
		}
		return result
	})
	return result, nil
}

// Exchange 用星星兑换一张券
// 先在本地校验余额：星星不足直接返回错误，不发起上游请求。
// 成功后追加新券并刷新会员快照。
func (s *SessionService) Exchange(ctx context.Context, sess Session, couponType string) (*loyalty.Result[loyalty.ExchangeCouponOutput], error) {
	couponType = strings.ToUpper(strings.TrimSpace(couponType))
	catalog := s.configs.Catalog(ctx)
	required, ok := catalog.RequiredStars(couponType)
	if !ok {
		return nil, ErrExchangeTypeInvalid
	}

	st := s.Store(sess)
	membership := st.Membership()
	if membership == nil {
		refreshed := s.RefreshMembership(ctx, sess)
		if refreshed.Success {
			membership = refreshed.Data
		}
	}
	if membership != nil && membership.AvailableStars < required {
		return nil, &StarsInsufficientError{Required: required, Available: membership.AvailableStars}
	}

	result := withLoading(st, func() *loyalty.Result[loyalty.ExchangeCouponOutput] {
		result := s.api.ExchangeCoupon(ctx, sess.Token, loyalty.ExchangeCouponInput{Type: couponType})
		if result.Success {
			st.AddCoupon(result.Data.Coupon)
			if refreshed := s.api.GetMyMembership(ctx, sess.Token); refreshed.Success {
				st.SetMembership(refreshed.Data)
			}
		}
		return result
	})
	return result, nil
}

// GiftByEmail 通过邮件赠送一张券
// 成功后按请求中的券码从本地列表移除。
func (s *SessionService) GiftByEmail(ctx context.Context, sess Session, code, recipient, message string) (*loyalty.Result[loyalty.GiftCouponOutput], error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrCouponCodeRequired
	}
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return nil, ErrGiftRecipientRequired
	}
	if _, err := mail.ParseAddress(recipient); err != nil {
		return nil, ErrGiftRecipientInvalid
	}

	st := s.Store(sess)
	result := withLoading(st, func() *loyalty.Result[loyalty.GiftCouponOutput] {
		result := s.api.GiftCoupon(ctx, sess.Token, loyalty.GiftCouponInput{
			CouponCode:     code,
			RecipientEmail: recipient,
			Message:        strings.TrimSpace(message),
		})
		if result.Success {
			st.RemoveCoupon(code)
		}
		return result
	})
	return result, nil
}

// CreateGiftLink 为一张券创建赠送链接
// 链接创建即视为券已转出，成功后按请求中的券码移除本地记录。
func (s *SessionService) CreateGiftLink(ctx context.Context, sess Session, code, message string) (*loyalty.Result[loyalty.CreateGiftLinkOutput], error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrCouponCodeRequired
	}

	st := s.Store(sess)
	result := withLoading(st, func() *loyalty.Result[loyalty.CreateGiftLinkOutput] {
		result := s.api.CreateGiftLink(ctx, sess.Token, loyalty.CreateGiftLinkInput{
			CouponCode: code,
			Message:    strings.TrimSpace(message),
		})
		if result.Success {
			st.RemoveCoupon(code)
		}
		return result
	})
	return result, nil
}

// ClaimGift 领取他人赠送的券
// 成功后将上游返回的券追加到本地列表，券码以上游签发的为准。
func (s *SessionService) ClaimGift(ctx context.Context, sess Session, linkToken string) (*loyalty.Result[loyalty.ClaimGiftOutput], error) {
	linkToken = strings.TrimSpace(linkToken)
	if linkToken == "" {
		return nil, ErrClaimTokenRequired
	}

	st := s.Store(sess)
	result := withLoading(st, func() *loyalty.Result[loyalty.ClaimGiftOutput] {
		result := s.api.ClaimGift(ctx, sess.Token, loyalty.ClaimGiftInput{Token: linkToken})
		if result.Success {
			st.AddCoupon(result.Data.Coupon)
		}
		return result
	})
	return result, nil
}

// GiftLinkInfo 查询赠送链接预览（匿名）
func (s *SessionService) GiftLinkInfo(ctx context.Context, linkToken string) (*loyalty.Result[models.GiftLinkInfo], error) {
	linkToken = strings.TrimSpace(linkToken)
	if linkToken == "" {
		return nil, ErrClaimTokenRequired
	}
	return s.api.GetGiftLinkInfo(ctx, linkToken), nil
}

// starSources 上游认可的星星来源
var starSources = map[string]struct{}{
	constants.StarSourceFuel:     {},
	constants.StarSourceCarWash:  {},
	constants.StarSourceDelivery: {},
	constants.StarSourceManual:   {},
}

// AccumulateStars 为指定会员累积星星（管理端）
// 使用服务间令牌调用上游特权操作。目标会员在线时（注册表里有
// 以会员 ID 为键的会话）同步刷新其本地会员快照。
func (s *SessionService) AccumulateStars(ctx context.Context, input loyalty.AccumulateStarsInput) (*loyalty.Result[loyalty.AccumulateStarsOutput], error) {
	input.MemberID = strings.TrimSpace(input.MemberID)
	if input.MemberID == "" {
		return nil, ErrMemberIDRequired
	}
	hasStars := input.Stars != nil && *input.Stars > 0
	hasAmount := input.Amount != nil && input.Amount.IsPositive()
	if !hasStars && !hasAmount {
		return nil, ErrStarsInvalid
	}
	input.Source = strings.ToUpper(strings.TrimSpace(input.Source))
	if input.Source == "" {
		input.Source = constants.StarSourceManual
	}
	if _, ok := starSources[input.Source]; !ok {
		return nil, ErrStarSourceInvalid
	}
	result := s.api.AccumulateStars(ctx, s.serviceToken, input)
	if result.Success && result.Data != nil {
		if st, ok := s.registry.Lookup(input.MemberID); ok {
			membership := result.Data.Membership
			st.SetMembership(&membership)
		}
	}
	return result, nil
}

// withLoading 在一次上游调用前后维护加载与错误标记
// 发起调用前先清除上一次的错误，加载中的读取不会看到旧错误；
// 请求结束后加载标记必然复位。错误标记带代数，旧请求迟到的失败
// 不会覆盖新请求已清除的错误。
func withLoading[T any](st *store.Store, fn func() *loyalty.Result[T]) *loyalty.Result[T] {
	generation := st.BeginLoading()
	defer st.EndLoading()

	st.ClearError(generation)
	result := fn()
	if !result.Success {
		st.SetError(generation, result.ErrorMessage())
	}
	return result
}
