package admin

import (
	"github.com/gin-gonic/gin"

	handlershared "github.com/pitstop-dev/loyalty-gateway/internal/http/handlers/shared"
	"github.com/pitstop-dev/loyalty-gateway/internal/provider"
)

// Handler 管理端接口处理器入口
type Handler struct {
	*provider.Container
}

// New 创建管理端处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}
