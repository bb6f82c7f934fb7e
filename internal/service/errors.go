package service

import (
	"errors"
	"fmt"
)

// 服务层业务错误
// 这些错误只来自网关本地校验，上游返回的失败统一走 Result 信封。
var (
	ErrCouponCodeRequired    = errors.New("优惠券码不能为空")
	ErrExchangeTypeInvalid   = errors.New("兑换券类型无效")
	ErrGiftRecipientRequired = errors.New("赠送对象邮箱不能为空")
	ErrGiftRecipientInvalid  = errors.New("赠送对象邮箱格式错误")
	ErrClaimTokenRequired    = errors.New("领取令牌不能为空")
	ErrCaptchaRequired       = errors.New("需要验证码")
	ErrCaptchaInvalid        = errors.New("验证码错误")
	ErrMemberIDRequired      = errors.New("会员 ID 不能为空")
	ErrStarsInvalid          = errors.New("星星数或消费金额无效")
	ErrStarSourceInvalid     = errors.New("星星来源无效")

	ErrEmailServiceDisabled      = errors.New("邮件服务未启用")
	ErrEmailServiceNotConfigured = errors.New("邮件服务未配置")
	ErrInvalidEmail              = errors.New("邮箱格式错误")
	ErrEmailSendFailed           = errors.New("邮件发送失败")

	ErrCaptchaServiceDisabled = errors.New("验证码服务未启用")
)

// StarsInsufficientError 星星不足
// 兑换前本地校验余额，不足时直接短路，不发起上游请求。
type StarsInsufficientError struct {
	Required  int // 本次兑换所需星星
	Available int // 当前可用星星
}

func (e *StarsInsufficientError) Error() string {
	return fmt.Sprintf("星星不足: 需要 %d, 可用 %d", e.Required, e.Available)
}

// Shortfall 缺口星星数
func (e *StarsInsufficientError) Shortfall() int {
	shortfall := e.Required - e.Available
	if shortfall < 0 {
		return 0
	}
	return shortfall
}

// IsStarsInsufficient 判断并提取星星不足错误
func IsStarsInsufficient(err error) (*StarsInsufficientError, bool) {
	var target *StarsInsufficientError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
