package member

import (
	"github.com/gin-gonic/gin"

	handlershared "github.com/pitstop-dev/loyalty-gateway/internal/http/handlers/shared"
	"github.com/pitstop-dev/loyalty-gateway/internal/http/response"
	"github.com/pitstop-dev/loyalty-gateway/internal/i18n"
)

// ExchangeRequest 兑换请求体
type ExchangeRequest struct {
	Type string `json:"type" binding:"required"`
}

// GetExchangeOptions 获取兑换目录
// 上游配置不可用时回退默认目录，兑换页总能渲染。
func (h *Handler) GetExchangeOptions(c *gin.Context) {
	catalog := h.ConfigService.Catalog(c.Request.Context())
	response.Success(c, gin.H{
		"options": catalog.Options(),
	})
}

// Exchange 用星星兑换一张券
// 星星不足在网关本地短路，不发起上游请求。
func (h *Handler) Exchange(c *gin.Context) {
	sess, ok := handlershared.GetSession(c)
	if !ok {
		return
	}

	var req ExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.request_invalid", err)
		return
	}

	result, err := h.SessionService.Exchange(c.Request.Context(), sess, req.Type)
	if err != nil {
		respondWithMappedError(c, err, exchangeErrorRules, response.CodeInternal, "error.exchange_failed")
		return
	}
	if !result.Success {
		handlershared.RespondRemoteFailure(c, result.ErrorCode(), result.ErrorMessage(), "error.exchange_failed")
		return
	}

	locale := i18n.ResolveLocale(c)
	response.SuccessWithMsg(c, i18n.T(locale, "msg.exchange_success"), result.Data)
}
