package public

import (
	"github.com/gin-gonic/gin"

	handlershared "github.com/pitstop-dev/loyalty-gateway/internal/http/handlers/shared"
	"github.com/pitstop-dev/loyalty-gateway/internal/http/response"
)

// GetConfig 获取会员体系公开配置
// 等级门槛、积分比率与兑换目录，未登录页面也会读取。
func (h *Handler) GetConfig(c *gin.Context) {
	result := h.ConfigService.Get(c.Request.Context())
	if !result.Success {
		handlershared.RespondRemoteFailure(c, result.ErrorCode(), result.ErrorMessage(), "error.config_fetch_failed")
		return
	}
	response.Success(c, result.Data)
}
