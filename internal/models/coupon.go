package models

import (
	"time"

	"github.com/pitstop-dev/loyalty-gateway/internal/constants"
)

// RewardCoupon 可兑换权益券
// code 为用户可见的唯一标识；同一时间只有一个状态。
type RewardCoupon struct {
	Code       string     `json:"code"`                 // 券码（唯一）
	Name       string     `json:"name"`                 // 券名
	Type       string     `json:"type"`                 // 类型（PREMIUM_WASH/BASIC_WASH/FUEL_DISCOUNT）
	Status     string     `json:"status"`               // 状态（ACTIVE/USED/EXPIRED）
	ExpiresAt  *time.Time `json:"expiresAt"`            // 过期时间（nil 表示不限期）
	UsedAt     *time.Time `json:"usedAt,omitempty"`     // 使用时间
	IsGifted   bool       `json:"isGifted"`             // 是否来自赠送
	GiftedFrom string     `json:"giftedFrom,omitempty"` // 赠送人
	IssueType  string     `json:"issueType"`            // 发放来源（WELCOME/EXCHANGE/GIFT）
}

// IsActive 判断是否为可使用状态
func (c RewardCoupon) IsActive() bool {
	return c.Status == constants.CouponStatusActive
}

// IsExpiringSoon 判断是否即将过期（仅展示用，不改变状态）
func (c RewardCoupon) IsExpiringSoon(now time.Time) bool {
	if !c.IsActive() || c.ExpiresAt == nil || c.ExpiresAt.IsZero() {
		return false
	}
	if c.ExpiresAt.Before(now) {
		return false
	}
	return c.ExpiresAt.Sub(now) <= time.Duration(constants.CouponExpiringSoonDays)*24*time.Hour
}

// CouponPatch 优惠券部分更新
// nil 字段保持原值，用于状态流转后的本地合并。
type CouponPatch struct {
	Status    *string
	UsedAt    *time.Time
	ExpiresAt *time.Time
}

// CouponCounts 按状态统计的券数量
// 始终基于完整缓存列表计算，与查询过滤条件无关。
type CouponCounts struct {
	Active  int `json:"active"`
	Used    int `json:"used"`
	Expired int `json:"expired"`
	Total   int `json:"total"`
}

// CouponHistoryEntry 优惠券历史事件（只读审计记录）
type CouponHistoryEntry struct {
	ID         string    `json:"id"`                   // 事件 ID
	CouponCode string    `json:"couponCode"`           // 券码
	CouponName string    `json:"couponName"`           // 券名
	EventType  string    `json:"eventType"`            // 事件类型（USE/EXCHANGE/GIFT/CLAIM/EXPIRE）
	OccurredAt time.Time `json:"occurredAt"`           // 发生时间
	Detail     string    `json:"detail,omitempty"`     // 附加说明
	IsOutbound bool      `json:"isOutbound,omitempty"` // 是否为送出方向（赠送）
}
