package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is a fixed classification a game belongs to (a genre).
// Categories are seeded once and never mutated by the API.
type Category struct {
	ID   int64
	Name string
}

// Game is the canonical catalog record.
type Game struct {
	ID          int64
	Name        string
	CategoryID  int64
	Price       decimal.Decimal
	ReleaseDate time.Time
}

// GameWithCategory pairs a game with its resolved category.
// Category is nil when the reference is dangling.
type GameWithCategory struct {
	Game     Game
	Category *Category
}

// Coupon is a discount code served by the coupon API.
type Coupon struct {
	ID             int64
	Code           string
	DiscountAmount decimal.Decimal
	MinAmount      int
}

// DateOf strips the clock from t, keeping the calendar date in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a calendar date in DateLayout.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOf(t), nil
}
