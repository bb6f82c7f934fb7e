package member

import (
	"errors"

	"github.com/gin-gonic/gin"

	handlershared "github.com/pitstop-dev/loyalty-gateway/internal/http/handlers/shared"
	"github.com/pitstop-dev/loyalty-gateway/internal/http/response"
	"github.com/pitstop-dev/loyalty-gateway/internal/i18n"
	"github.com/pitstop-dev/loyalty-gateway/internal/service"
)

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	// 星星不足携带缺口数，单独格式化
	if insufficient, ok := service.IsStarsInsufficient(err); ok {
		locale := i18n.ResolveLocale(c)
		msg := i18n.Sprintf(locale, "error.stars_insufficient", insufficient.Shortfall())
		handlershared.RespondErrorWithMsg(c, response.CodeBadRequest, msg, nil)
		return
	}
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

var couponCommonErrorRules = []mappedHandlerError{
	{target: service.ErrCouponCodeRequired, code: response.CodeBadRequest, key: "error.coupon_code_required"},
}

var exchangeErrorRules = []mappedHandlerError{
	{target: service.ErrExchangeTypeInvalid, code: response.CodeBadRequest, key: "error.exchange_type_invalid"},
}

var giftErrorRules = []mappedHandlerError{
	{target: service.ErrCouponCodeRequired, code: response.CodeBadRequest, key: "error.coupon_code_required"},
	{target: service.ErrGiftRecipientRequired, code: response.CodeBadRequest, key: "error.gift_recipient_required"},
	{target: service.ErrGiftRecipientInvalid, code: response.CodeBadRequest, key: "error.gift_recipient_required"},
}

var claimErrorRules = []mappedHandlerError{
	{target: service.ErrClaimTokenRequired, code: response.CodeBadRequest, key: "error.claim_token_required"},
	{target: service.ErrCaptchaRequired, code: response.CodeBadRequest, key: "error.captcha_required"},
	{target: service.ErrCaptchaInvalid, code: response.CodeBadRequest, key: "error.captcha_invalid"},
}
