package usecase

import (
	"context"
	"log/slog"
	"strings"

	"gamestore/src/core/domain"
	"gamestore/src/core/ports"
)

// CouponService handles the coupon API flows.
type CouponService struct {
	repo ports.CouponRepository
	log  *slog.Logger
}

func NewCouponService(repo ports.CouponRepository, log *slog.Logger) *CouponService {
	return &CouponService{repo: repo, log: log}
}

func (s *CouponService) List(ctx context.Context) ([]domain.Coupon, error) {
	return s.repo.ListCoupons(ctx)
}

func (s *CouponService) Get(ctx context.Context, id int64) (*domain.Coupon, error) {
	return s.repo.GetCoupon(ctx, id)
}

// GetByCode looks a coupon up by code, ignoring case and surrounding blanks.
func (s *CouponService) GetByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.NewNotFoundError("coupon")
	}
	return s.repo.GetCouponByCode(ctx, code)
}

func (s *CouponService) Create(ctx context.Context, c domain.Coupon) (*domain.Coupon, error) {
	c.ID = 0
	c.Code = strings.TrimSpace(c.Code)
	created, err := s.repo.CreateCoupon(ctx, c)
	if err != nil {
		return nil, err
	}
	s.log.Info("coupon created", "coupon_id", created.ID, "code", created.Code)
	return created, nil
}

// Update replaces the coupon stored under id.
func (s *CouponService) Update(ctx context.Context, id int64, c domain.Coupon) (*domain.Coupon, error) {
	c.ID = id
	c.Code = strings.TrimSpace(c.Code)
	return s.repo.UpdateCoupon(ctx, c)
}

func (s *CouponService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteCoupon(ctx, id); err != nil {
		return err
	}
	s.log.Info("coupon deleted", "coupon_id", id)
	return nil
}
