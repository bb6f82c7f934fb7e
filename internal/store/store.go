package store

import (
	"sync"
	"time"

	"github.com/pitstop-dev/loyalty-gateway/internal/constants"
	"github.com/pitstop-dev/loyalty-gateway/internal/models"
)

// Store 单个会员会话的客户端状态
// 保存会员快照、券列表与券流水的最近一次结果，供概要、角标等
// 派生读取复用，避免每次展示都回源。
// 加载与错误标记使用代数（generation）防止并发请求互相覆盖：
// 旧请求迟到的错误不会盖掉新请求的结果。
type Store struct {
	mu sync.Mutex

	membership    *models.Membership
	coupons       []models.RewardCoupon
	couponsLoaded bool
	history       []models.CouponHistoryEntry

	inflight   int
	generation uint64
	errMessage string
	errGen     uint64
}

// New 创建空状态
func New() *Store {
	return &Store{}
}

// BeginLoading 标记一次请求开始，返回本次请求的代数
func (s *Store) BeginLoading() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight++
	s.generation++
	return s.generation
}

// EndLoading 标记一次请求结束
func (s *Store) EndLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inflight > 0 {
		s.inflight--
	}
}

// Loading 是否有在途请求
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight > 0
}

// SetError 记录指定代数请求的错误
// 仅当该请求不早于上一次记录时生效，过期请求的错误被丢弃。
func (s *Store) SetError(generation uint64, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if generation < s.errGen {
		return
	}
	s.errGen = generation
	s.errMessage = message
}

// ClearError 清除错误标记
func (s *Store) ClearError(generation uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if generation < s.errGen {
		return
	}
	s.errGen = generation
	s.errMessage = ""
}

// ErrorMessage 最近一次错误信息，空串表示无错误
func (s *Store) ErrorMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMessage
}

// SetMembership 写入会员快照
func (s *Store) SetMembership(membership *models.Membership) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if membership == nil {
		s.membership = nil
		return
	}
	copied := *membership
	s.membership = &copied
}

// Membership 读取会员快照，未加载时返回 nil
func (s *Store) Membership() *models.Membership {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.membership == nil {
		return nil
	}
	copied := *s.membership
	return &copied
}

// SetCoupons 整体替换券列表，保持上游返回顺序
func (s *Store) SetCoupons(coupons []models.RewardCoupon) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coupons = append(s.coupons[:0:0], coupons...)
	s.couponsLoaded = true
}

// Coupons 读取券列表副本
func (s *Store) Coupons() []models.RewardCoupon {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.RewardCoupon(nil), s.coupons...)
}

// CouponsLoaded 券列表是否已加载过
func (s *Store) CouponsLoaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.couponsLoaded
}

// AddCoupon 追加一张券，券码已存在时不做任何变更
func (s *Store) AddCoupon(coupon models.RewardCoupon) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.coupons {
		if existing.Code == coupon.Code {
			return
		}
	}
	s.coupons = append(s.coupons, coupon)
}

// UpdateCoupon 按券码合并更新，找不到时不做任何变更
func (s *Store) UpdateCoupon(code string, patch models.CouponPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.coupons {
		if s.coupons[i].Code != code {
			continue
		}
		if patch.Status != nil {
			s.coupons[i].Status = *patch.Status
		}
		if patch.UsedAt != nil {
			s.coupons[i].UsedAt = patch.UsedAt
		}
		if patch.ExpiresAt != nil {
			s.coupons[i].ExpiresAt = patch.ExpiresAt
		}
		return
	}
}

// RemoveCoupon 按券码移除，找不到时不做任何变更
func (s *Store) RemoveCoupon(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.coupons {
		if s.coupons[i].Code == code {
			s.coupons = append(s.coupons[:i], s.coupons[i+1:]...)
			return
		}
	}
}

// FindCoupon 按券码查找
func (s *Store) FindCoupon(code string) (models.RewardCoupon, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, coupon := range s.coupons {
		if coupon.Code == code {
			return coupon, true
		}
	}
	return models.RewardCoupon{}, false
}

// CouponCounts 按状态统计券数
// 统计基于完整列表，与当前展示的过滤条件无关。
func (s *Store) CouponCounts() models.CouponCounts {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := models.CouponCounts{Total: len(s.coupons)}
	for _, coupon := range s.coupons {
		switch coupon.Status {
		case constants.CouponStatusActive:
			counts.Active++
		case constants.CouponStatusUsed:
			counts.Used++
		case constants.CouponStatusExpired:
			counts.Expired++
		}
	}
	return counts
}

// ExpiringSoon 返回即将过期的活动券
func (s *Store) ExpiringSoon(now time.Time) []models.RewardCoupon {
	s.mu.Lock()
	defer s.mu.Unlock()
	var soon []models.RewardCoupon
	for _, coupon := range s.coupons {
		if coupon.IsExpiringSoon(now) {
			soon = append(soon, coupon)
		}
	}
	return soon
}

// SetCouponHistory 整体替换券流水
func (s *Store) SetCouponHistory(entries []models.CouponHistoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history[:0:0], entries...)
}

// CouponHistory 读取券流水副本
func (s *Store) CouponHistory() []models.CouponHistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.CouponHistoryEntry(nil), s.history...)
}

// Reset 清空全部状态（会话登出时使用）
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.membership = nil
	s.coupons = nil
	s.couponsLoaded = false
	s.history = nil
	s.errMessage = ""
}
