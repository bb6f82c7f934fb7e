package models

// Membership 会员权益快照
// 所有派生字段均由上游服务计算，网关只做展示，不在本地重算。
type Membership struct {
	MemberID               string `json:"memberId"`               // 会员 ID
	AvailableStars         int    `json:"availableStars"`         // 可用星星数
	CurrentTier            string `json:"currentTier"`            // 当前等级（WELCOME/SHINE/STAR）
	CurrentTierDisplayName string `json:"currentTierDisplayName"` // 当前等级展示名
	StarsToNextCoupon      int    `json:"starsToNextCoupon"`      // 距下一张兑换券所需星星
	CouponProgress         int    `json:"couponProgress"`         // 兑换进度（百分比）
	ExchangeableCoupons    int    `json:"exchangeableCoupons"`    // 当前可兑换券数
	StarsToNextTier        int    `json:"starsToNextTier"`        // 距下一等级所需星星
	TierProgress           int    `json:"tierProgress"`           // 升级进度（百分比）
	StarsToMaintainTier    int    `json:"starsToMaintainTier"`    // 保级所需星星
	NextTierName           string `json:"nextTierName"`           // 下一等级名称
	DaysUntilReview        int    `json:"daysUntilReview"`        // 距等级评审天数
}

// MembershipSummary 会员概要（派生字段 + 兜底值）
// 会员信息尚未加载时返回零值/WELCOME，供页面安全渲染。
type MembershipSummary struct {
	AvailableStars         int    `json:"availableStars"`
	CurrentTier            string `json:"currentTier"`
	CurrentTierDisplayName string `json:"currentTierDisplayName"`
	StarsToNextCoupon      int    `json:"starsToNextCoupon"`
	CouponProgress         int    `json:"couponProgress"`
	ExchangeableCoupons    int    `json:"exchangeableCoupons"`
	StarsToNextTier        int    `json:"starsToNextTier"`
	TierProgress           int    `json:"tierProgress"`
	StarsToMaintainTier    int    `json:"starsToMaintainTier"`
	NextTierName           string `json:"nextTierName"`
	DaysUntilReview        int    `json:"daysUntilReview"`
	Loaded                 bool   `json:"loaded"` // 是否已加载会员信息
}
