package loyalty

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pitstop-dev/loyalty-gateway/internal/constants"
	"github.com/pitstop-dev/loyalty-gateway/internal/graphql"
	"github.com/pitstop-dev/loyalty-gateway/internal/logger"
	"github.com/pitstop-dev/loyalty-gateway/internal/models"
)

// API 上游会员服务的强类型访问接口
// 所有方法都不返回 Go error：传输失败、超时、GraphQL 错误与载荷缺失
// 均被归一化到 Result 信封的失败分支。
type API interface {
	GetMembershipConfig(ctx context.Context) *Result[models.MembershipConfig]
	GetMyMembership(ctx context.Context, token string) *Result[models.Membership]
	GetMyCoupons(ctx context.Context, token string, filter *MyCouponsFilter) *Result[MyCouponsOutput]
	GetCouponDetail(ctx context.Context, token, code string) *Result[CouponDetailOutput]
	GetCouponHistory(ctx context.Context, token string, filter *CouponHistoryFilter) *Result[CouponHistoryOutput]
	GetGiftLinkInfo(ctx context.Context, linkToken string) *Result[models.GiftLinkInfo]
	UseCoupon(ctx context.Context, token string, input UseCouponInput) *Result[UseCouponOutput]
	ExchangeCoupon(ctx context.Context, token string, input ExchangeCouponInput) *Result[ExchangeCouponOutput]
	GiftCoupon(ctx context.Context, token string, input GiftCouponInput) *Result[GiftCouponOutput]
	CreateGiftLink(ctx context.Context, token string, input CreateGiftLinkInput) *Result[CreateGiftLinkOutput]
	ClaimGift(ctx context.Context, token string, input ClaimGiftInput) *Result[ClaimGiftOutput]
	AccumulateStars(ctx context.Context, token string, input AccumulateStarsInput) *Result[AccumulateStarsOutput]
}

// Service 上游会员服务客户端
type Service struct {
	client *graphql.Client
}

// NewService 创建会员服务客户端
func NewService(client *graphql.Client) *Service {
	return &Service{client: client}
}

var _ API = (*Service)(nil)

// GetMembershipConfig 查询会员体系公开配置（匿名）
func (s *Service) GetMembershipConfig(ctx context.Context) *Result[models.MembershipConfig] {
	return execute[models.MembershipConfig](s, ctx, "", docGetMembershipConfig, "GET_MEMBERSHIP_CONFIG", "membershipConfig", nil)
}

// GetMyMembership 查询当前会员权益快照
func (s *Service) GetMyMembership(ctx context.Context, token string) *Result[models.Membership] {
	return execute[models.Membership](s, ctx, token, docGetMyMembership, "GET_MY_MEMBERSHIP", "myMembership", nil)
}

// GetMyCoupons 查询当前会员的券列表
func (s *Service) GetMyCoupons(ctx context.Context, token string, filter *MyCouponsFilter) *Result[MyCouponsOutput] {
	vars := map[string]interface{}{}
	if filter != nil && filter.Status != "" {
		vars["filter"] = filter
	}
	return execute[MyCouponsOutput](s, ctx, token, docGetMyCoupons, "GET_MY_COUPONS", "myCoupons", vars)
}

// GetCouponDetail 查询单张券详情（含核销二维码内容）
func (s *Service) GetCouponDetail(ctx context.Context, token, code string) *Result[CouponDetailOutput] {
	return execute[CouponDetailOutput](s, ctx, token, docGetCouponDetail, "GET_COUPON_DETAIL", "couponDetail", map[string]interface{}{
		"code": code,
	})
}

// GetCouponHistory 查询券流水
func (s *Service) GetCouponHistory(ctx context.Context, token string, filter *CouponHistoryFilter) *Result[CouponHistoryOutput] {
	vars := map[string]interface{}{}
	if filter != nil {
		vars["filter"] = filter
	}
	return execute[CouponHistoryOutput](s, ctx, token, docGetCouponHistory, "GET_COUPON_HISTORY", "couponHistory", vars)
}

// GetGiftLinkInfo 查询赠送链接预览（匿名）
func (s *Service) GetGiftLinkInfo(ctx context.Context, linkToken string) *Result[models.GiftLinkInfo] {
	return execute[models.GiftLinkInfo](s, ctx, "", docGetGiftLinkInfo, "GET_GIFT_LINK_INFO", "giftLinkInfo", map[string]interface{}{
		"token": linkToken,
	})
}

// UseCoupon 核销一张券
func (s *Service) UseCoupon(ctx context.Context, token string, input UseCouponInput) *Result[UseCouponOutput] {
	return execute[UseCouponOutput](s, ctx, token, docUseCoupon, "USE_COUPON", "useCoupon", map[string]interface{}{
		"input": input,
	})
}

// ExchangeCoupon 星星兑换一张券
func (s *Service) ExchangeCoupon(ctx context.Context, token string, input ExchangeCouponInput) *Result[ExchangeCouponOutput] {
	return execute[ExchangeCouponOutput](s, ctx, token, docExchangeCoupon, "EXCHANGE_COUPON", "exchangeCoupon", map[string]interface{}{
		"input": input,
	})
}

// GiftCoupon 通过邮件赠送一张券
func (s *Service) GiftCoupon(ctx context.Context, token string, input GiftCouponInput) *Result[GiftCouponOutput] {
	return execute[GiftCouponOutput](s, ctx, token, docGiftCoupon, "GIFT_COUPON", "giftCoupon", map[string]interface{}{
		"input": input,
	})
}

// CreateGiftLink 为一张券创建赠送链接
func (s *Service) CreateGiftLink(ctx context.Context, token string, input CreateGiftLinkInput) *Result[CreateGiftLinkOutput] {
	return execute[CreateGiftLinkOutput](s, ctx, token, docCreateGiftLink, "CREATE_GIFT_LINK", "createGiftLink", map[string]interface{}{
		"input": input,
	})
}

// ClaimGift 领取他人赠送的券
func (s *Service) ClaimGift(ctx context.Context, token string, input ClaimGiftInput) *Result[ClaimGiftOutput] {
	return execute[ClaimGiftOutput](s, ctx, token, docClaimGift, "CLAIM_GIFT", "claimGift", map[string]interface{}{
		"input": input,
	})
}

// AccumulateStars 为指定会员累积星星（管理端）
func (s *Service) AccumulateStars(ctx context.Context, token string, input AccumulateStarsInput) *Result[AccumulateStarsOutput] {
	return execute[AccumulateStarsOutput](s, ctx, token, docAccumulateStars, "ACCUMULATE_STARS", "accumulateStars", map[string]interface{}{
		"input": input,
	})
}

// execute 执行一次上游操作并归一化结果
// field 为本操作在 data 中对应的根字段名。
func execute[T any](s *Service, ctx context.Context, token, doc, operation, field string, vars map[string]interface{}) *Result[T] {
	if s == nil || s.client == nil {
		return Fail[T](constants.RemoteCodeServiceUnavailable, "loyalty upstream not configured", nil)
	}

	response, err := s.client.Execute(ctx, token, graphql.Request{
		Query:         doc,
		OperationName: operation,
		Variables:     vars,
	})
	if err != nil {
		if graphql.IsTimeout(err) {
			logger.Warnw("会员服务请求超时", "operation", operation, "error", err.Error())
			return Fail[T](constants.RemoteCodeTimeout, "upstream request timed out", nil)
		}
		logger.Warnw("会员服务请求失败", "operation", operation, "error", err.Error())
		return Fail[T](constants.RemoteCodeNetworkError, "upstream request failed", nil)
	}

	if len(response.Errors) > 0 {
		first := response.Errors[0]
		code := first.Extensions.Code
		if code == "" {
			code = constants.RemoteCodeGraphQLError
		}
		return Fail[T](code, first.Message, response.Errors)
	}

	var envelope map[string]json.RawMessage
	if err := graphql.DecodeData(response, &envelope); err != nil {
		logger.Warnw("会员服务响应缺少数据", "operation", operation, "error", err.Error())
		return Fail[T](constants.RemoteCodeInternal, "upstream payload missing", nil)
	}

	raw, ok := envelope[field]
	if !ok || len(raw) == 0 || string(raw) == "null" {
		logger.Warnw("会员服务响应缺少字段", "operation", operation, "field", field)
		return Fail[T](constants.RemoteCodeInternal, fmt.Sprintf("upstream payload missing %s", field), nil)
	}

	var data T
	if err := json.Unmarshal(raw, &data); err != nil {
		logger.Warnw("会员服务响应解码失败", "operation", operation, "field", field, "error", err.Error())
		return Fail[T](constants.RemoteCodeInternal, "upstream payload malformed", nil)
	}
	return Ok[T](&data)
}
