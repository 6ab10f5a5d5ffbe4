package repo

import (
	"context"
	"sort"
	"strings"
	"sync"

	"gamestore/src/core/domain"
	"gamestore/src/core/ports"
)

var _ ports.CouponRepository = (*MemoryCoupons)(nil)

// MemoryCoupons is the in-process coupon store.
type MemoryCoupons struct {
	mu      sync.RWMutex
	lastID  int64
	coupons map[int64]domain.Coupon
}

func NewMemoryCoupons(seed []domain.Coupon) *MemoryCoupons {
	s := &MemoryCoupons{coupons: make(map[int64]domain.Coupon, len(seed))}
	for _, c := range seed {
		s.coupons[c.ID] = c
		if c.ID > s.lastID {
			s.lastID = c.ID
		}
	}
	return s
}

func (s *MemoryCoupons) Health(context.Context) error {
	return nil
}

func (s *MemoryCoupons) ListCoupons(context.Context) ([]domain.Coupon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Coupon, 0, len(s.coupons))
	for _, c := range s.coupons {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryCoupons) GetCoupon(_ context.Context, id int64) (*domain.Coupon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.coupons[id]
	if !ok {
		return nil, domain.NewNotFoundError("coupon")
	}
	return &c, nil
}

func (s *MemoryCoupons) GetCouponByCode(_ context.Context, code string) (*domain.Coupon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if c, ok := s.findByCode(code, 0); ok {
		return &c, nil
	}
	return nil, domain.NewNotFoundError("coupon")
}

func (s *MemoryCoupons) CreateCoupon(_ context.Context, c domain.Coupon) (*domain.Coupon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.findByCode(c.Code, 0); taken {
		return nil, domain.NewConflictError("coupon code already exists")
	}
	s.lastID++
	c.ID = s.lastID
	s.coupons[c.ID] = c
	return &c, nil
}

func (s *MemoryCoupons) UpdateCoupon(_ context.Context, c domain.Coupon) (*domain.Coupon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.coupons[c.ID]; !ok {
		return nil, domain.NewNotFoundError("coupon")
	}
	if _, taken := s.findByCode(c.Code, c.ID); taken {
		return nil, domain.NewConflictError("coupon code already exists")
	}
	s.coupons[c.ID] = c
	return &c, nil
}

func (s *MemoryCoupons) DeleteCoupon(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.coupons[id]; !ok {
		return domain.NewNotFoundError("coupon")
	}
	delete(s.coupons, id)
	return nil
}

// findByCode must be called with mu held. except skips one id.
func (s *MemoryCoupons) findByCode(code string, except int64) (domain.Coupon, bool) {
	for id, c := range s.coupons {
		if id != except && strings.EqualFold(c.Code, code) {
			return c, true
		}
	}
	return domain.Coupon{}, false
}
