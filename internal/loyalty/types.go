package loyalty

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pitstop-dev/loyalty-gateway/internal/models"
)

// MyCouponsFilter 券列表过滤条件
type MyCouponsFilter struct {
	Status string `json:"status,omitempty"` // 为空表示全部
}

// CouponHistoryFilter 券流水过滤条件
type CouponHistoryFilter struct {
	EventType string `json:"eventType,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	Offset    int    `json:"offset,omitempty"`
}

// UseCouponInput 核销券入参
type UseCouponInput struct {
	Code string `json:"code"`
}

// ExchangeCouponInput 星星兑换券入参
type ExchangeCouponInput struct {
	Type string `json:"type"` // 券类型
}

// GiftCouponInput 邮件赠送入参
type GiftCouponInput struct {
	CouponCode     string `json:"couponCode"`
	RecipientEmail string `json:"recipientEmail"`
	Message        string `json:"message,omitempty"`
}

// CreateGiftLinkInput 创建赠送链接入参
type CreateGiftLinkInput struct {
	CouponCode string `json:"couponCode"`
	Message    string `json:"message,omitempty"`
}

// ClaimGiftInput 领取赠送入参
type ClaimGiftInput struct {
	Token string `json:"token"`
}

// AccumulateStarsInput 累积星星入参（管理端）
// Stars 与 Amount 二选一：直接指定星星数，或按消费金额由上游换算。
type AccumulateStarsInput struct {
	MemberID string           `json:"memberId"`
	Stars    *int             `json:"stars,omitempty"`
	Amount   *decimal.Decimal `json:"amount,omitempty"`
	Source   string           `json:"source"`
}

// MyCouponsOutput 券列表返回
type MyCouponsOutput struct {
	Coupons []models.RewardCoupon `json:"coupons"`
}

// CouponDetailOutput 券详情返回
type CouponDetailOutput struct {
	Coupon models.RewardCoupon `json:"coupon"`
	QRData string              `json:"qrData"` // 核销二维码内容
}

// CouponHistoryOutput 券流水返回
type CouponHistoryOutput struct {
	Items []models.CouponHistoryEntry `json:"items"`
}

// UseCouponOutput 核销返回，Coupon 携带上游写入的 usedAt
type UseCouponOutput struct {
	Coupon models.RewardCoupon `json:"coupon"`
}

// ExchangeCouponOutput 兑换返回，Coupon 为新签发的券
type ExchangeCouponOutput struct {
	Coupon models.RewardCoupon `json:"coupon"`
}

// GiftCouponOutput 邮件赠送返回
type GiftCouponOutput struct {
	CouponCode string `json:"couponCode"` // 已转出的券码
}

// CreateGiftLinkOutput 创建赠送链接返回
type CreateGiftLinkOutput struct {
	Token     string     `json:"token"`
	GiftURL   string     `json:"giftUrl"`
	ExpiresAt *time.Time `json:"expiresAt"`
}

// ClaimGiftOutput 领取返回，Coupon 为转入当前账户的券
type ClaimGiftOutput struct {
	Coupon models.RewardCoupon `json:"coupon"`
}

// AccumulateStarsOutput 累星返回，携带刷新后的会员快照
type AccumulateStarsOutput struct {
	Membership models.Membership `json:"membership"`
}
