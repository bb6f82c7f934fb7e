package cache

import (
	"context"
	"encoding/json"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pitstop-dev/loyalty-gateway/internal/config"
)

const defaultPrefix = "lg"

var (
	client *redis.Client
	prefix = defaultPrefix
)

// InitRedis 初始化 Redis 客户端
// 未启用时所有操作降级为 no-op，网关不依赖缓存也能工作。
func InitRedis(cfg *config.RedisConfig) error {
	if cfg == nil || !cfg.Enabled {
		client = nil
		return nil
	}

	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = "127.0.0.1"
	}
	port := cfg.Port
	if port <= 0 {
		port = 6379
	}
	if p := strings.TrimSpace(cfg.Prefix); p != "" {
		prefix = p
	}

	client = redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(host, strconv.Itoa(port)),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return nil
}

// Enabled 判断缓存是否启用
func Enabled() bool {
	return client != nil
}

// Client 获取 Redis 客户端，未启用时为 nil
func Client() *redis.Client {
	return client
}

// Prefix 当前键前缀
func Prefix() string {
	return prefix
}

// Key 拼接带前缀的缓存键
func Key(parts ...string) string {
	return prefix + ":" + strings.Join(parts, ":")
}

// GetJSON 读取 JSON 缓存，未命中时返回 false
func GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	if client == nil {
		return false, nil
	}
	raw, err := client.Get(ctx, Key(key)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON 写入 JSON 缓存
func SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if client == nil {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return client.Set(ctx, Key(key), payload, ttl).Err()
}

// Del 删除缓存
func Del(ctx context.Context, key string) error {
	if client == nil {
		return nil
	}
	return client.Del(ctx, Key(key)).Err()
}

// Ping 探活
func Ping(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Ping(ctx).Err()
}

// Close 关闭连接
func Close() error {
	if client == nil {
		return nil
	}
	err := client.Close()
	client = nil
	return err
}
