package models

import "time"

// GiftLinkInfo 赠送链接预览信息
// 供未登录的链接预览页展示，不包含可核销内容。
type GiftLinkInfo struct {
	Token      string     `json:"token"`             // 链接令牌
	CouponName string     `json:"couponName"`        // 券名
	CouponType string     `json:"couponType"`        // 券类型
	SenderName string     `json:"senderName"`        // 赠送人昵称
	Message    string     `json:"message,omitempty"` // 赠言
	ExpiresAt  *time.Time `json:"expiresAt"`         // 券的过期时间
	Claimed    bool       `json:"claimed"`           // 是否已被领取
}
