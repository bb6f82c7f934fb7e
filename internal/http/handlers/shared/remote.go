package shared

import (
	"github.com/gin-gonic/gin"

	"github.com/pitstop-dev/loyalty-gateway/internal/constants"
	"github.com/pitstop-dev/loyalty-gateway/internal/http/response"
	"github.com/pitstop-dev/loyalty-gateway/internal/i18n"
)

// RemoteStatusCode 将上游错误码映射为接口业务状态码
func RemoteStatusCode(code string) int {
	switch code {
	case constants.RemoteCodeUnauthenticated, constants.RemoteCodeTokenExpired:
		return response.CodeUnauthorized
	case constants.RemoteCodeForbidden:
		return response.CodeForbidden
	case constants.RemoteCodeBadUserInput:
		return response.CodeBadRequest
	case constants.RemoteCodeNotFound:
		return response.CodeNotFound
	case constants.RemoteCodeConflict:
		return response.CodeConflict
	case constants.RemoteCodeTimeout, constants.RemoteCodeNetworkError, constants.RemoteCodeServiceUnavailable:
		return response.CodeUpstream
	default:
		return response.CodeInternal
	}
}

// RespondRemoteFailure 返回上游失败响应
// 上游带有可展示信息时原样透出，否则回退到本地国际化文案。
func RespondRemoteFailure(c *gin.Context, code, message, fallbackKey string) {
	statusCode := RemoteStatusCode(code)
	if message == "" || message == code {
		message = i18n.T(i18n.ResolveLocale(c), fallbackKey)
	}
	RequestLog(c).Warnw("upstream_failure",
		"remote_code", code,
		"code", statusCode,
		"message", message,
	)
	response.Error(c, statusCode, message)
}
