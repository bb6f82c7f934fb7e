package provider

import (
	"time"

	"github.com/pitstop-dev/loyalty-gateway/internal/cache"
	"github.com/pitstop-dev/loyalty-gateway/internal/config"
	"github.com/pitstop-dev/loyalty-gateway/internal/constants"
	"github.com/pitstop-dev/loyalty-gateway/internal/graphql"
	"github.com/pitstop-dev/loyalty-gateway/internal/logger"
	"github.com/pitstop-dev/loyalty-gateway/internal/loyalty"
	"github.com/pitstop-dev/loyalty-gateway/internal/queue"
	"github.com/pitstop-dev/loyalty-gateway/internal/service"
	"github.com/pitstop-dev/loyalty-gateway/internal/store"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	GraphQLClient *graphql.Client
	LoyaltyAPI    loyalty.API
	Registry      *store.Registry

	// Services
	SessionService *service.SessionService
	ConfigService  *service.ConfigService
	CaptchaService *service.CaptchaService
	EmailService   *service.EmailService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}
	c.initUpstream()
	c.initServices()
	return c
}

func (c *Container) initUpstream() {
	cfg := c.Config
	timeout := time.Duration(cfg.Upstream.TimeoutMS) * time.Millisecond
	c.GraphQLClient = graphql.NewClient(cfg.Upstream.Endpoint, timeout)
	c.LoyaltyAPI = loyalty.NewService(c.GraphQLClient)

	ttlMinutes := cfg.Loyalty.SessionTTLMinutes
	if ttlMinutes <= 0 {
		ttlMinutes = constants.SessionTTLMinutes
	}
	c.Registry = store.NewRegistry(time.Duration(ttlMinutes) * time.Minute)
}

func (c *Container) initServices() {
	cfg := c.Config

	configTTL := time.Duration(cfg.Loyalty.ConfigCacheSeconds) * time.Second
	c.ConfigService = service.NewConfigService(c.LoyaltyAPI, configTTL)
	c.SessionService = service.NewSessionService(service.SessionServiceInput{
		API:          c.LoyaltyAPI,
		Registry:     c.Registry,
		Configs:      c.ConfigService,
		ServiceToken: cfg.Upstream.ServiceToken,
	})
	c.CaptchaService = service.NewCaptchaService(cfg.Captcha)
	c.EmailService = service.NewEmailService(cfg.Email)
}

// Close 释放容器持有的资源
func (c *Container) Close() {
	if c == nil {
		return
	}
	if c.Registry != nil {
		c.Registry.Close()
	}
	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil {
			logger.Warnw("provider_close_queue_client_failed", "error", err)
		}
	}
	if err := cache.Close(); err != nil {
		logger.Warnw("provider_close_redis_failed", "error", err)
	}
}
