package member

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pitstop-dev/loyalty-gateway/internal/constants"
	handlershared "github.com/pitstop-dev/loyalty-gateway/internal/http/handlers/shared"
	"github.com/pitstop-dev/loyalty-gateway/internal/http/response"
	"github.com/pitstop-dev/loyalty-gateway/internal/i18n"
	"github.com/pitstop-dev/loyalty-gateway/internal/loyalty"
)

// GetCoupons 获取券列表
// 支持 status 查询参数按状态过滤。
func (h *Handler) GetCoupons(c *gin.Context) {
	sess, ok := handlershared.GetSession(c)
	if !ok {
		return
	}

	status := c.Query("status")
	result := h.SessionService.Coupons(c.Request.Context(), sess, status)
	if !result.Success {
		handlershared.RespondRemoteFailure(c, result.ErrorCode(), result.ErrorMessage(), "error.coupon_fetch_failed")
		return
	}
	response.Success(c, result.Data)
}

// GetCouponCounts 按状态统计券数
// 统计基于完整列表，与 status 过滤无关。
func (h *Handler) GetCouponCounts(c *gin.Context) {
	sess, ok := handlershared.GetSession(c)
	if !ok {
		return
	}

	counts, result := h.SessionService.CouponCounts(c.Request.Context(), sess)
	if counts == nil {
		handlershared.RespondRemoteFailure(c, result.ErrorCode(), result.ErrorMessage(), "error.coupon_fetch_failed")
		return
	}
	response.Success(c, counts)
}

// GetCouponDetail 获取单张券详情
func (h *Handler) GetCouponDetail(c *gin.Context) {
	sess, ok := handlershared.GetSession(c)
	if !ok {
		return
	}

	result, err := h.SessionService.CouponDetail(c.Request.Context(), sess, c.Param("code"))
	if err != nil {
		respondWithMappedError(c, err, couponCommonErrorRules, response.CodeInternal, "error.coupon_fetch_failed")
		return
	}
	if !result.Success {
		handlershared.RespondRemoteFailure(c, result.ErrorCode(), result.ErrorMessage(), "error.coupon_not_found")
		return
	}

	detail := result.Data
	response.Success(c, gin.H{
		"coupon":        detail.Coupon,
		"qr_data":       detail.QRData,
		"expiring_soon": detail.Coupon.IsExpiringSoon(time.Now()),
	})
}

// GetCouponHistory 获取券流水
func (h *Handler) GetCouponHistory(c *gin.Context) {
	sess, ok := handlershared.GetSession(c)
	if !ok {
		return
	}

	filter, ok := buildHistoryFilter(c)
	if !ok {
		respondError(c, response.CodeBadRequest, "error.request_invalid", nil)
		return
	}
	result := h.SessionService.CouponHistory(c.Request.Context(), sess, filter)
	if !result.Success {
		handlershared.RespondRemoteFailure(c, result.ErrorCode(), result.ErrorMessage(), "error.history_fetch_failed")
		return
	}
	response.Success(c, result.Data)
}

// UseCoupon 核销一张券
func (h *Handler) UseCoupon(c *gin.Context) {
	sess, ok := handlershared.GetSession(c)
	if !ok {
		return
	}

	result, err := h.SessionService.UseCoupon(c.Request.Context(), sess, c.Param("code"))
	if err != nil {
		respondWithMappedError(c, err, couponCommonErrorRules, response.CodeInternal, "error.coupon_use_failed")
		return
	}
	if !result.Success {
		handlershared.RespondRemoteFailure(c, result.ErrorCode(), result.ErrorMessage(), "error.coupon_use_failed")
		return
	}

	locale := i18n.ResolveLocale(c)
	response.SuccessWithMsg(c, i18n.T(locale, "msg.coupon_used"), result.Data)
}

// historyEventTypes 流水查询可过滤的事件类型
var historyEventTypes = map[string]struct{}{
	constants.HistoryEventUse:      {},
	constants.HistoryEventExchange: {},
	constants.HistoryEventGift:     {},
	constants.HistoryEventClaim:    {},
	constants.HistoryEventExpire:   {},
}

func buildHistoryFilter(c *gin.Context) (*loyalty.CouponHistoryFilter, bool) {
	eventType := strings.ToUpper(strings.TrimSpace(c.Query("event_type")))
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	if eventType == "" && limit <= 0 && offset <= 0 {
		return nil, true
	}
	if eventType != "" {
		if _, ok := historyEventTypes[eventType]; !ok {
			return nil, false
		}
	}
	return &loyalty.CouponHistoryFilter{
		EventType: eventType,
		Limit:     limit,
		Offset:    offset,
	}, true
}
