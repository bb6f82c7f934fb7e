package public

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pitstop-dev/loyalty-gateway/internal/cache"
	handlershared "github.com/pitstop-dev/loyalty-gateway/internal/http/handlers/shared"
	"github.com/pitstop-dev/loyalty-gateway/internal/http/response"
	"github.com/pitstop-dev/loyalty-gateway/internal/models"
)

const giftPreviewCacheKeyPrefix = "gift:preview"
const giftPreviewDefaultTTL = 30 * time.Second

// GetGiftLinkInfo 获取赠送链接预览
// 未登录即可访问，只返回展示信息，不包含可核销内容。
// 预览结果短暂缓存，削弱对链接令牌的枚举压力。
func (h *Handler) GetGiftLinkInfo(c *gin.Context) {
	linkToken := strings.TrimSpace(c.Param("token"))
	if linkToken == "" {
		respondError(c, response.CodeBadRequest, "error.claim_token_required", nil)
		return
	}

	cacheKey := fmt.Sprintf("%s:%s", giftPreviewCacheKeyPrefix, linkToken)
	var cached models.GiftLinkInfo
	if hit, err := cache.GetJSON(c.Request.Context(), cacheKey, &cached); err == nil && hit {
		response.Success(c, cached)
		return
	}

	result := h.LoyaltyAPI.GetGiftLinkInfo(c.Request.Context(), linkToken)
	if !result.Success {
		handlershared.RespondRemoteFailure(c, result.ErrorCode(), result.ErrorMessage(), "error.gift_link_fetch_failed")
		return
	}

	ttl := giftPreviewDefaultTTL
	if h.Config != nil && h.Config.Loyalty.GiftPreviewCacheSecond > 0 {
		ttl = time.Duration(h.Config.Loyalty.GiftPreviewCacheSecond) * time.Second
	}
	if err := cache.SetJSON(c.Request.Context(), cacheKey, result.Data, ttl); err != nil {
		handlershared.RequestLog(c).Warnw("gift_preview_cache_write_failed", "error", err)
	}
	response.Success(c, result.Data)
}
