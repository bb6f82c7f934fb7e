package shared

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pitstop-dev/loyalty-gateway/internal/http/response"
	"github.com/pitstop-dev/loyalty-gateway/internal/service"
)

// GetContextStringWithKeys 从上下文取字符串值，缺失或类型不符时返回错误响应
func GetContextStringWithKeys(c *gin.Context, key, invalidKey string) (string, bool) {
	value, exists := c.Get(key)
	if !exists {
		RespondError(c, response.CodeUnauthorized, invalidKey, nil)
		return "", false
	}
	str, ok := value.(string)
	if !ok || strings.TrimSpace(str) == "" {
		RespondError(c, response.CodeUnauthorized, invalidKey, nil)
		return "", false
	}
	return str, true
}

// GetSession 从上下文取会员会话身份
// 会话标识与透传令牌由鉴权中间件写入。
func GetSession(c *gin.Context) (service.Session, bool) {
	sessionID, ok := GetContextStringWithKeys(c, "session_id", "error.unauthorized")
	if !ok {
		return service.Session{}, false
	}
	token, ok := GetContextStringWithKeys(c, "member_token", "error.unauthorized")
	if !ok {
		return service.Session{}, false
	}
	return service.Session{ID: sessionID, Token: token}, true
}
