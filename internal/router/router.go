package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pitstop-dev/loyalty-gateway/internal/cache"
	"github.com/pitstop-dev/loyalty-gateway/internal/config"
	adminhandlers "github.com/pitstop-dev/loyalty-gateway/internal/http/handlers/admin"
	memberhandlers "github.com/pitstop-dev/loyalty-gateway/internal/http/handlers/member"
	publichandlers "github.com/pitstop-dev/loyalty-gateway/internal/http/handlers/public"
	"github.com/pitstop-dev/loyalty-gateway/internal/logger"
	"github.com/pitstop-dev/loyalty-gateway/internal/provider"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	memberHandler := memberhandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisClient := cache.Client()
	claimRule := RateLimitRule{
		Prefix:        cache.Key("rate", "claim"),
		WindowSeconds: cfg.Security.ClaimRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.ClaimRateLimit.MaxAttempts,
		MessageKey:    "error.rate_limited",
	}
	exchangeRule := RateLimitRule{
		Prefix:        cache.Key("rate", "exchange"),
		WindowSeconds: cfg.Security.ExchangeRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.ExchangeRateLimit.MaxAttempts,
		MessageKey:    "error.rate_limited",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/config", publicHandler.GetConfig)
			public.GET("/gift-links/:token", publicHandler.GetGiftLinkInfo)
			public.GET("/captcha/image", publicHandler.GetCaptchaImage)
		}

		// 会员接口
		member := apiV1.Group("/member")
		member.Use(MemberAuthMiddleware(cfg.UserJWT.SecretKey))
		{
			member.GET("/membership", memberHandler.GetMembership)
			member.GET("/membership/summary", memberHandler.GetMembershipSummary)

			member.GET("/coupons", memberHandler.GetCoupons)
			member.GET("/coupons/counts", memberHandler.GetCouponCounts)
			member.GET("/coupons/history", memberHandler.GetCouponHistory)
			member.GET("/coupons/:code", memberHandler.GetCouponDetail)
			member.POST("/coupons/:code/use", memberHandler.UseCoupon)
			member.POST("/coupons/:code/gift", memberHandler.GiftByEmail)
			member.POST("/coupons/:code/gift-link", memberHandler.CreateGiftLink)

			member.GET("/exchange/options", memberHandler.GetExchangeOptions)
			member.POST("/exchange",
				RateLimitMiddleware(redisClient, exchangeRule, KeyBySession),
				memberHandler.Exchange)

			member.POST("/gifts/claim",
				RateLimitMiddleware(redisClient, claimRule, KeyBySession),
				memberHandler.ClaimGift)
		}

		// 管理端接口
		admin := apiV1.Group("/admin")
		admin.Use(AdminAuthMiddleware(cfg.AdminJWT.SecretKey))
		{
			admin.POST("/stars/accumulate", adminHandler.AccumulateStars)
		}
	}

	return r
}
