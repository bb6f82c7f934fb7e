package member

import (
	"github.com/gin-gonic/gin"

	"github.com/pitstop-dev/loyalty-gateway/internal/constants"
	handlershared "github.com/pitstop-dev/loyalty-gateway/internal/http/handlers/shared"
	"github.com/pitstop-dev/loyalty-gateway/internal/http/response"
	"github.com/pitstop-dev/loyalty-gateway/internal/i18n"
	"github.com/pitstop-dev/loyalty-gateway/internal/queue"
	"github.com/pitstop-dev/loyalty-gateway/internal/service"
)

// GiftRequest 邮件赠送请求体
type GiftRequest struct {
	RecipientEmail string `json:"recipient_email" binding:"required"`
	Message        string `json:"message"`
}

// GiftLinkRequest 创建赠送链接请求体
// recipient_email 可选，填写时把链接通过邮件分享给对方。
type GiftLinkRequest struct {
	Message        string `json:"message"`
	RecipientEmail string `json:"recipient_email"`
}

// ClaimRequest 领取赠送请求体
type ClaimRequest struct {
	Token       string `json:"token" binding:"required"`
	CaptchaID   string `json:"captcha_id"`
	CaptchaCode string `json:"captcha_code"`
}

// GiftByEmail 通过邮件赠送一张券
// 成功后异步发送赠送通知邮件。
func (h *Handler) GiftByEmail(c *gin.Context) {
	sess, ok := handlershared.GetSession(c)
	if !ok {
		return
	}

	var req GiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.request_invalid", err)
		return
	}

	code := c.Param("code")
	couponName := ""
	if coupon, found := h.SessionService.Store(sess).FindCoupon(code); found {
		couponName = coupon.Name
	}

	result, err := h.SessionService.GiftByEmail(c.Request.Context(), sess, code, req.RecipientEmail, req.Message)
	if err != nil {
		respondWithMappedError(c, err, giftErrorRules, response.CodeInternal, "error.gift_failed")
		return
	}
	if !result.Success {
		handlershared.RespondRemoteFailure(c, result.ErrorCode(), result.ErrorMessage(), "error.gift_failed")
		return
	}

	locale := i18n.ResolveLocale(c)
	if h.QueueClient != nil {
		enqueueErr := h.QueueClient.EnqueueGiftNotifyEmail(queue.GiftNotifyEmailPayload{
			RecipientEmail: req.RecipientEmail,
			SenderName:     c.GetString("member_name"),
			CouponName:     couponName,
			Method:         constants.GiftMethodEmail,
			Message:        req.Message,
			Locale:         locale,
		})
		if enqueueErr != nil {
			handlershared.RequestLog(c).Warnw("gift_notify_enqueue_failed", "error", enqueueErr)
		}
	}
	response.SuccessWithMsg(c, i18n.T(locale, "msg.gift_sent"), result.Data)
}

// CreateGiftLink 为一张券创建赠送链接
func (h *Handler) CreateGiftLink(c *gin.Context) {
	sess, ok := handlershared.GetSession(c)
	if !ok {
		return
	}

	var req GiftLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		respondError(c, response.CodeBadRequest, "error.request_invalid", err)
		return
	}

	code := c.Param("code")
	couponName := ""
	if coupon, found := h.SessionService.Store(sess).FindCoupon(code); found {
		couponName = coupon.Name
	}

	result, err := h.SessionService.CreateGiftLink(c.Request.Context(), sess, code, req.Message)
	if err != nil {
		respondWithMappedError(c, err, giftErrorRules, response.CodeInternal, "error.gift_link_create_failed")
		return
	}
	if !result.Success {
		handlershared.RespondRemoteFailure(c, result.ErrorCode(), result.ErrorMessage(), "error.gift_link_create_failed")
		return
	}

	locale := i18n.ResolveLocale(c)
	if req.RecipientEmail != "" && h.QueueClient != nil && result.Data != nil {
		enqueueErr := h.QueueClient.EnqueueGiftNotifyEmail(queue.GiftNotifyEmailPayload{
			RecipientEmail: req.RecipientEmail,
			SenderName:     c.GetString("member_name"),
			CouponName:     couponName,
			Method:         constants.GiftMethodLink,
			Message:        req.Message,
			GiftURL:        result.Data.GiftURL,
			Locale:         locale,
		})
		if enqueueErr != nil {
			handlershared.RequestLog(c).Warnw("gift_link_notify_enqueue_failed", "error", enqueueErr)
		}
	}
	response.SuccessWithMsg(c, i18n.T(locale, "msg.gift_link_created"), result.Data)
}

// ClaimGift 领取他人赠送的券
// 领取是匿名链接触达的写入口，按场景开关校验验证码。
func (h *Handler) ClaimGift(c *gin.Context) {
	sess, ok := handlershared.GetSession(c)
	if !ok {
		return
	}

	var req ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.request_invalid", err)
		return
	}

	captchaErr := h.CaptchaService.Verify(constants.CaptchaSceneClaimGift, service.CaptchaVerifyPayload{
		CaptchaID:   req.CaptchaID,
		CaptchaCode: req.CaptchaCode,
	})
	if captchaErr != nil {
		respondWithMappedError(c, captchaErr, claimErrorRules, response.CodeBadRequest, "error.captcha_invalid")
		return
	}

	result, err := h.SessionService.ClaimGift(c.Request.Context(), sess, req.Token)
	if err != nil {
		respondWithMappedError(c, err, claimErrorRules, response.CodeInternal, "error.claim_failed")
		return
	}
	if !result.Success {
		handlershared.RespondRemoteFailure(c, result.ErrorCode(), result.ErrorMessage(), "error.claim_failed")
		return
	}

	locale := i18n.ResolveLocale(c)
	response.SuccessWithMsg(c, i18n.T(locale, "msg.gift_claimed"), result.Data)
}
