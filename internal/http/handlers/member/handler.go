package member

import "github.com/pitstop-dev/loyalty-gateway/internal/provider"

// Handler 会员侧接口处理器入口
// 所有路由都在会员鉴权中间件之后注册。
type Handler struct {
	*provider.Container
}

// New 创建会员侧处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
