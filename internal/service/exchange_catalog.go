package service

import (
	"strings"

	"github.com/pitstop-dev/loyalty-gateway/internal/constants"
	"github.com/pitstop-dev/loyalty-gateway/internal/models"
)

// defaultExchangeOptions 兑换目录兜底值
// 上游配置不可用时仍能展示兑换页，所需星星与上游默认值保持一致。
var defaultExchangeOptions = []models.ExchangeOption{
	{Type: constants.CouponTypePremiumWash, Name: "프리미엄 세차권", RequiredStars: 12},
	{Type: constants.CouponTypeBasicWash, Name: "기본 세차권", RequiredStars: 8},
	{Type: constants.CouponTypeFuelDiscount, Name: "주유 할인권", RequiredStars: 10},
}

// ExchangeCatalog 兑换目录
// 基于会员配置构建，配置缺失时回退到默认目录。
type ExchangeCatalog struct {
	options []models.ExchangeOption
}

// NewExchangeCatalog 从会员配置构建兑换目录
func NewExchangeCatalog(cfg *models.MembershipConfig) *ExchangeCatalog {
	if cfg == nil || len(cfg.ExchangeOptions) == 0 {
		return &ExchangeCatalog{options: append([]models.ExchangeOption(nil), defaultExchangeOptions...)}
	}
	options := make([]models.ExchangeOption, 0, len(cfg.ExchangeOptions))
	for _, option := range cfg.ExchangeOptions {
		option.Type = strings.ToUpper(strings.TrimSpace(option.Type))
		if option.Type == "" || option.RequiredStars <= 0 {
			continue
		}
		options = append(options, option)
	}
	if len(options) == 0 {
		options = append(options, defaultExchangeOptions...)
	}
	return &ExchangeCatalog{options: options}
}

// Options 全部兑换选项
func (c *ExchangeCatalog) Options() []models.ExchangeOption {
	if c == nil {
		return nil
	}
	return append([]models.ExchangeOption(nil), c.options...)
}

// RequiredStars 查询指定券类型所需星星
func (c *ExchangeCatalog) RequiredStars(couponType string) (int, bool) {
	if c == nil {
		return 0, false
	}
	normalized := strings.ToUpper(strings.TrimSpace(couponType))
	for _, option := range c.options {
		if option.Type == normalized {
			return option.RequiredStars, true
		}
	}
	return 0, false
}
