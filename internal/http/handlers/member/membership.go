package member

import (
	"github.com/gin-gonic/gin"

	handlershared "github.com/pitstop-dev/loyalty-gateway/internal/http/handlers/shared"
	"github.com/pitstop-dev/loyalty-gateway/internal/http/response"
)

// GetMembership 获取会员权益快照
// 总是回源拉取最新快照并更新会话状态。
func (h *Handler) GetMembership(c *gin.Context) {
	sess, ok := handlershared.GetSession(c)
	if !ok {
		return
	}

	result := h.SessionService.RefreshMembership(c.Request.Context(), sess)
	if !result.Success {
		handlershared.RespondRemoteFailure(c, result.ErrorCode(), result.ErrorMessage(), "error.membership_fetch_failed")
		return
	}
	response.Success(c, result.Data)
}

// GetMembershipSummary 获取会员概要
// 纯本地派生：未加载时返回兜底值，不触发上游请求。
func (h *Handler) GetMembershipSummary(c *gin.Context) {
	sess, ok := handlershared.GetSession(c)
	if !ok {
		return
	}
	response.Success(c, h.SessionService.MembershipSummary(sess))
}
