package dto

import (
	"github.com/shopspring/decimal"

	"gamestore/src/core/domain"
)

// CouponRequest is the payload for POST and PUT on /api/coupons.
type CouponRequest struct {
	CouponCode     string  `json:"couponCode" binding:"required,max=50"`
	DiscountAmount float64 `json:"discountAmount" binding:"required,gt=0,maxdp=2"`
	MinAmount      int     `json:"minAmount" binding:"gte=0"`
}

// CouponResponse is the wire shape of a coupon.
type CouponResponse struct {
	CouponID       int64   `json:"couponId"`
	CouponCode     string  `json:"couponCode"`
	DiscountAmount float64 `json:"discountAmount"`
	MinAmount      int     `json:"minAmount"`
}

func (r CouponRequest) ToDomain() domain.Coupon {
	return domain.Coupon{
		Code:           r.CouponCode,
		DiscountAmount: decimal.NewFromFloat(r.DiscountAmount),
		MinAmount:      r.MinAmount,
	}
}

func CouponFromDomain(c domain.Coupon) CouponResponse {
	return CouponResponse{
		CouponID:       c.ID,
		CouponCode:     c.Code,
		DiscountAmount: c.DiscountAmount.InexactFloat64(),
		MinAmount:      c.MinAmount,
	}
}

func CouponsFromDomain(cs []domain.Coupon) []CouponResponse {
	out := make([]CouponResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, CouponFromDomain(c))
	}
	return out
}
