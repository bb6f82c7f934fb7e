package store

import (
	"sync"
	"time"
)

const defaultSweepInterval = time.Minute

// Registry 按会话维护 Store 的注册表
// 每次访问刷新过期时间，后台定期清理过期会话。
// 注册表通过依赖注入传入需要它的服务，不使用包级单例。
type Registry struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]*registryEntry
	stop    chan struct{}
	once    sync.Once
}

type registryEntry struct {
	store     *Store
	expiresAt time.Time
}

// NewRegistry 创建注册表并启动清理协程
func NewRegistry(ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	r := &Registry{
		ttl:     ttl,
		entries: make(map[string]*registryEntry),
		stop:    make(chan struct{}),
	}
	go r.sweepLoop()
	return r
}

// Get 取会话对应的 Store，不存在时创建
func (r *Registry) Get(sessionID string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[sessionID]
	if !ok || time.Now().After(entry.expiresAt) {
		entry = &registryEntry{store: New()}
		r.entries[sessionID] = entry
	}
	entry.expiresAt = time.Now().Add(r.ttl)
	return entry.store
}

// Lookup 查找已存在的会话 Store，不创建新条目
// 过期条目视同不存在，也不刷新过期时间。
func (r *Registry) Lookup(sessionID string) (*Store, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[sessionID]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.store, true
}

// Delete 移除会话状态
func (r *Registry) Delete(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, sessionID)
}

// Len 当前会话数
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Close 停止清理协程
func (r *Registry) Close() {
	r.once.Do(func() { close(r.stop) })
}

func (r *Registry) sweepLoop() {
	ticker := time.NewTicker(defaultSweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-r.stop:
			return
		case now := <-ticker.C:
			r.sweep(now)
		}
	}
}

func (r *Registry) sweep(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for sessionID, entry := range r.entries {
		if now.After(entry.expiresAt) {
			delete(r.entries, sessionID)
		}
	}
}
