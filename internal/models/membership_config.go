package models

import "github.com/shopspring/decimal"

// ExchangeOption 兑换目录选项
type ExchangeOption struct {
	Type          string `json:"type"`          // 券类型
	Name          string `json:"name"`          // 展示名
	RequiredStars int    `json:"requiredStars"` // 所需星星数
}

// EarningRate 积分获取比率
// 比率可能为小数（例如每升 0.5 颗星），使用 decimal 避免精度漂移。
type EarningRate struct {
	Source string          `json:"source"` // 来源（FUEL/CAR_WASH/DELIVERY）
	Rate   decimal.Decimal `json:"rate"`   // 每单位消费获得星星数
	Unit   string          `json:"unit"`   // 计量单位（liter/krw/order）
}

// MembershipConfig 会员体系全局配置
// 未登录页面也需要读取，允许匿名获取。
type MembershipConfig struct {
	StarsPerCoupon    int              `json:"starsPerCoupon"`    // 兑换一张券所需星星
	CouponExpiryYears int              `json:"couponExpiryYears"` // 兑换券有效期（年）
	TierThresholds    map[string]int   `json:"tierThresholds"`    // 各等级门槛星星数
	EarningRates      []EarningRate    `json:"earningRates"`      // 积分获取比率
	ExchangeOptions   []ExchangeOption `json:"exchangeOptions"`   // 兑换目录
}
