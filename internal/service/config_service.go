package service

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/pitstop-dev/loyalty-gateway/internal/cache"
	"github.com/pitstop-dev/loyalty-gateway/internal/constants"
	"github.com/pitstop-dev/loyalty-gateway/internal/logger"
	"github.com/pitstop-dev/loyalty-gateway/internal/loyalty"
	"github.com/pitstop-dev/loyalty-gateway/internal/models"
)

const configCacheKey = "loyalty:membership_config"

// ConfigService 会员体系配置服务
// 配置全局共享且变化缓慢：进程内缓存 + Redis 缓存，并用 singleflight
// 合并并发回源，同一时刻对上游最多一次在途请求。
// 配置的加载/错误标记独立于会员会话状态。
type ConfigService struct {
	api loyalty.API
	ttl time.Duration

	group singleflight.Group

	mu        sync.Mutex
	cached    *models.MembershipConfig
	fetchedAt time.Time
	loading   bool
	lastError string
}

// NewConfigService 创建配置服务
func NewConfigService(api loyalty.API, cacheTTL time.Duration) *ConfigService {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &ConfigService{api: api, ttl: cacheTTL}
}

// Get 获取会员体系配置
// 缓存命中时直接返回，未命中时回源并更新两级缓存。
func (s *ConfigService) Get(ctx context.Context) *loyalty.Result[models.MembershipConfig] {
	if cached := s.fresh(); cached != nil {
		return loyalty.Ok(cached)
	}

	value, _, _ := s.group.Do(configCacheKey, func() (interface{}, error) {
		return s.fetch(ctx), nil
	})
	result, ok := value.(*loyalty.Result[models.MembershipConfig])
	if !ok {
		return loyalty.Fail[models.MembershipConfig](constants.RemoteCodeInternal, "config fetch failed", nil)
	}
	return result
}

// Catalog 获取兑换目录，配置不可用时回退默认目录
func (s *ConfigService) Catalog(ctx context.Context) *ExchangeCatalog {
	result := s.Get(ctx)
	if result.Success {
		return NewExchangeCatalog(result.Data)
	}
	return NewExchangeCatalog(nil)
}

// Loading 配置是否在加载中
func (s *ConfigService) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// ErrorMessage 最近一次配置加载错误
func (s *ConfigService) ErrorMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// Invalidate 清除配置缓存（测试与运维用）
func (s *ConfigService) Invalidate(ctx context.Context) {
	s.mu.Lock()
	s.cached = nil
	s.fetchedAt = time.Time{}
	s.mu.Unlock()
	if err := cache.Del(ctx, configCacheKey); err != nil {
		logger.Warnw("清除配置缓存失败", "error", err.Error())
	}
}

func (s *ConfigService) fresh() *models.MembershipConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached == nil || time.Since(s.fetchedAt) > s.ttl {
		return nil
	}
	copied := *s.cached
	return &copied
}

func (s *ConfigService) fetch(ctx context.Context) *loyalty.Result[models.MembershipConfig] {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	var fromRedis models.MembershipConfig
	hit, err := cache.GetJSON(ctx, configCacheKey, &fromRedis)
	if err != nil {
		logger.Warnw("读取配置缓存失败", "error", err.Error())
	}
	if hit {
		s.remember(&fromRedis)
		return loyalty.Ok(&fromRedis)
	}

	result := s.api.GetMembershipConfig(ctx)
	if !result.Success {
		s.mu.Lock()
		s.lastError = result.ErrorMessage()
		s.mu.Unlock()
		return result
	}

	s.remember(result.Data)
	if err := cache.SetJSON(ctx, configCacheKey, result.Data, s.ttl); err != nil {
		logger.Warnw("写入配置缓存失败", "error", err.Error())
	}
	return result
}

func (s *ConfigService) remember(cfg *models.MembershipConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cfg == nil {
		return
	}
	copied := *cfg
	s.cached = &copied
	s.fetchedAt = time.Now()
	s.lastError = ""
}
