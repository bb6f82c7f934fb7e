package service

import (
	"strings"
	"sync"
	"time"

	"github.com/mojocn/base64Captcha"

	"github.com/pitstop-dev/loyalty-gateway/internal/config"
	"github.com/pitstop-dev/loyalty-gateway/internal/constants"
)

const captchaProviderImage = "image"

// CaptchaVerifyPayload 验证码校验请求载荷
type CaptchaVerifyPayload struct {
	CaptchaID   string `json:"captcha_id"`
	CaptchaCode string `json:"captcha_code"`
}

// CaptchaImageChallenge 图片验证码挑战
type CaptchaImageChallenge struct {
	CaptchaID   string `json:"captcha_id"`
	ImageBase64 string `json:"image_base64"`
}

// CaptchaService 验证码服务
// 赠送链接领取是唯一的匿名写入口，按场景开关决定是否要求验证码。
type CaptchaService struct {
	cfg config.CaptchaConfig

	mu         sync.Mutex
	imageStore base64Captcha.Store
}

// NewCaptchaService 创建验证码服务
func NewCaptchaService(cfg config.CaptchaConfig) *CaptchaService {
	return &CaptchaService{cfg: cfg}
}

// Required 指定场景是否需要验证码
func (s *CaptchaService) Required(scene string) bool {
	if s == nil || strings.TrimSpace(s.cfg.Provider) != captchaProviderImage {
		return false
	}
	switch scene {
	case constants.CaptchaSceneClaimGift:
		return s.cfg.Scenes.ClaimGift
	default:
		return false
	}
}

// GenerateImageChallenge 生成图片验证码
func (s *CaptchaService) GenerateImageChallenge() (*CaptchaImageChallenge, error) {
	if s == nil || strings.TrimSpace(s.cfg.Provider) != captchaProviderImage {
		return nil, ErrCaptchaServiceDisabled
	}

	image := s.cfg.Image
	driver := base64Captcha.NewDriverString(
		normalizeCaptchaInt(image.Height, 60),
		normalizeCaptchaInt(image.Width, 200),
		image.NoiseCount,
		image.ShowLine,
		normalizeCaptchaInt(image.Length, 4),
		"0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ",
		nil,
		base64Captcha.DefaultEmbeddedFonts,
		nil,
	)
	captcha := base64Captcha.NewCaptcha(driver, s.ensureImageStore())
	id, b64s, _, err := captcha.Generate()
	if err != nil {
		return nil, err
	}
	return &CaptchaImageChallenge{
		CaptchaID:   strings.TrimSpace(id),
		ImageBase64: strings.TrimSpace(b64s),
	}, nil
}

// Verify 按场景校验验证码
// 场景未开启时直接放行。
func (s *CaptchaService) Verify(scene string, payload CaptchaVerifyPayload) error {
	if !s.Required(scene) {
		return nil
	}

	captchaID := strings.TrimSpace(payload.CaptchaID)
	captchaCode := strings.TrimSpace(payload.CaptchaCode)
	if captchaID == "" || captchaCode == "" {
		return ErrCaptchaRequired
	}
	if !s.ensureImageStore().Verify(captchaID, captchaCode, true) {
		return ErrCaptchaInvalid
	}
	return nil
}

func (s *CaptchaService) ensureImageStore() base64Captcha.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.imageStore == nil {
		maxStore := normalizeCaptchaInt(s.cfg.Image.MaxStore, 10240)
		expire := time.Duration(normalizeCaptchaInt(s.cfg.Image.ExpireSeconds, 300)) * time.Second
		s.imageStore = base64Captcha.NewMemoryStore(maxStore, expire)
	}
	return s.imageStore
}

func normalizeCaptchaInt(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}
