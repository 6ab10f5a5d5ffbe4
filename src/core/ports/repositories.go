// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra/repo. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"

	"gamestore/src/core/domain"
)

// Repository is the base interface for all repositories.
// Concrete repositories should embed this and add entity-specific methods.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// CatalogRepository owns the canonical game records and the seeded category set.
// Implementations must be safe for concurrent use.
type CatalogRepository interface {
	Repository

	// ListGames returns every game joined with its category, ordered by id.
	// Each call reads current state; nothing is cached between calls.
	ListGames(ctx context.Context) ([]domain.GameWithCategory, error)

	// GetGame returns the game with the given id or a not found error.
	GetGame(ctx context.Context, id int64) (*domain.Game, error)

	// CreateGame stores g under a freshly assigned id and returns the stored record.
	// g.ID is ignored. An unknown category yields a validation error on "categoryId".
	CreateGame(ctx context.Context, g domain.Game) (*domain.Game, error)

	// UpdateGame overwrites name, category, price and release date of game g.ID
	// in one step. Returns a not found error if the id does not exist.
	UpdateGame(ctx context.Context, g domain.Game) error

	// DeleteGame removes the game if present. A missing id is not an error.
	DeleteGame(ctx context.Context, id int64) error

	// ListCategories returns the seeded categories ordered by id.
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// CouponRepository persists coupons for the coupon API.
type CouponRepository interface {
	Repository

	ListCoupons(ctx context.Context) ([]domain.Coupon, error)
	GetCoupon(ctx context.Context, id int64) (*domain.Coupon, error)
	// GetCouponByCode matches the code case-insensitively.
	GetCouponByCode(ctx context.Context, code string) (*domain.Coupon, error)
	// CreateCoupon returns a conflict error if the code is already taken.
	CreateCoupon(ctx context.Context, c domain.Coupon) (*domain.Coupon, error)
	// UpdateCoupon replaces code, discount and minimum amount of coupon c.ID.
	UpdateCoupon(ctx context.Context, c domain.Coupon) (*domain.Coupon, error)
	// DeleteCoupon returns a not found error if the id does not exist.
	DeleteCoupon(ctx context.Context, id int64) error
}
