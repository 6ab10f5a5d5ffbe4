package repo

import (
	"time"

	"github.com/shopspring/decimal"

	"gamestore/src/core/domain"
)

// SeedCategories mirrors the category rows inserted by the first migration.
func SeedCategories() []domain.Category {
	return []domain.Category{
		{ID: 1, Name: "Fighting"},
		{ID: 2, Name: "Roleplaying"},
		{ID: 3, Name: "Sports"},
		{ID: 4, Name: "Racing"},
		{ID: 5, Name: "Kids and Family"},
	}
}

// SeedGames mirrors the starter catalog inserted by the first migration.
func SeedGames() []domain.Game {
	return []domain.Game{
		{ID: 1, Name: "Elden Ring", CategoryID: 2, Price: decimal.RequireFromString("59.99"), ReleaseDate: date(2022, time.February, 25)},
		{ID: 2, Name: "God of War", CategoryID: 1, Price: decimal.RequireFromString("49.99"), ReleaseDate: date(2018, time.April, 20)},
		{ID: 3, Name: "Cyberpunk 2077", CategoryID: 2, Price: decimal.RequireFromString("39.99"), ReleaseDate: date(2020, time.December, 10)},
		{ID: 4, Name: "The Witcher 3", CategoryID: 2, Price: decimal.RequireFromString("29.99"), ReleaseDate: date(2015, time.May, 19)},
	}
}

// SeedCoupons mirrors the coupon rows inserted by the second migration.
func SeedCoupons() []domain.Coupon {
	return []domain.Coupon{
		{ID: 1, Code: "WELCOME10", DiscountAmount: decimal.NewFromInt(10), MinAmount: 100},
		{ID: 2, Code: "SUMMER20", DiscountAmount: decimal.NewFromInt(20), MinAmount: 200},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
