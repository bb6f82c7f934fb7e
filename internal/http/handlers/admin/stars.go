package admin

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	handlershared "github.com/pitstop-dev/loyalty-gateway/internal/http/handlers/shared"
	"github.com/pitstop-dev/loyalty-gateway/internal/http/response"
	"github.com/pitstop-dev/loyalty-gateway/internal/i18n"
	"github.com/pitstop-dev/loyalty-gateway/internal/loyalty"
	"github.com/pitstop-dev/loyalty-gateway/internal/service"
)

// AccumulateStarsRequest 累星请求体
// stars 与 amount 二选一：直接指定星星数，或按消费金额由上游换算。
type AccumulateStarsRequest struct {
	MemberID string           `json:"member_id" binding:"required"`
	Stars    *int             `json:"stars"`
	Amount   *decimal.Decimal `json:"amount"`
	Source   string           `json:"source"`
}

// AccumulateStars 为指定会员累积星星
// POS 或运营后台回传消费记录时调用。
func (h *Handler) AccumulateStars(c *gin.Context) {
	var req AccumulateStarsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.request_invalid", err)
		return
	}

	result, err := h.SessionService.AccumulateStars(c.Request.Context(), loyalty.AccumulateStarsInput{
		MemberID: req.MemberID,
		Stars:    req.Stars,
		Amount:   req.Amount,
		Source:   req.Source,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMemberIDRequired):
			respondError(c, response.CodeBadRequest, "error.member_id_invalid", nil)
		case errors.Is(err, service.ErrStarsInvalid):
			respondError(c, response.CodeBadRequest, "error.stars_invalid", nil)
		case errors.Is(err, service.ErrStarSourceInvalid):
			respondError(c, response.CodeBadRequest, "error.star_source_invalid", nil)
		default:
			respondError(c, response.CodeInternal, "error.accumulate_failed", err)
		}
		return
	}
	if !result.Success {
		handlershared.RespondRemoteFailure(c, result.ErrorCode(), result.ErrorMessage(), "error.accumulate_failed")
		return
	}

	locale := i18n.ResolveLocale(c)
	response.SuccessWithMsg(c, i18n.T(locale, "msg.stars_accumulated"), result.Data)
}
