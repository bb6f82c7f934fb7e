package public

import (
	"github.com/gin-gonic/gin"

	"github.com/pitstop-dev/loyalty-gateway/internal/constants"
	"github.com/pitstop-dev/loyalty-gateway/internal/http/response"
	"github.com/pitstop-dev/loyalty-gateway/internal/service"
)

// GetCaptchaImage 生成图片验证码
// 供领取赠送页在场景开启时请求。
func (h *Handler) GetCaptchaImage(c *gin.Context) {
	if !h.CaptchaService.Required(constants.CaptchaSceneClaimGift) {
		response.Success(c, gin.H{"required": false})
		return
	}

	challenge, err := h.CaptchaService.GenerateImageChallenge()
	if err != nil {
		if err == service.ErrCaptchaServiceDisabled {
			response.Success(c, gin.H{"required": false})
			return
		}
		respondError(c, response.CodeInternal, "error.captcha_generate_failed", err)
		return
	}
	response.Success(c, gin.H{
		"required":     true,
		"captcha_id":   challenge.CaptchaID,
		"image_base64": challenge.ImageBase64,
	})
}
