package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamestore/src/core/domain"
)

func TestCreateGameRequestToDomain(t *testing.T) {
	g, err := CreateGameRequest{Name: "Hades", CategoryID: 1, Price: 24.99, ReleaseDate: "2020-09-17"}.ToDomain()
	require.NoError(t, err)

	assert.Zero(t, g.ID)
	assert.Equal(t, "Hades", g.Name)
	assert.Equal(t, int64(1), g.CategoryID)
	assert.True(t, g.Price.Equal(decimal.RequireFromString("24.99")), g.Price.String())
	assert.Equal(t, time.Date(2020, time.September, 17, 0, 0, 0, 0, time.UTC), g.ReleaseDate)
}

func TestUpdateGameRequestKeepsID(t *testing.T) {
	g, err := UpdateGameRequest{Name: "Celeste", CategoryID: 4, Price: 100, ReleaseDate: "2018-01-25"}.ToDomain(12)
	require.NoError(t, err)
	assert.Equal(t, int64(12), g.ID)
	assert.Equal(t, "100", g.Price.String())
}

func TestGameRequestKeepsPriceVerbatim(t *testing.T) {
	g, err := CreateGameRequest{Name: "Hades", CategoryID: 1, Price: 24.999, ReleaseDate: "2020-09-17"}.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, "24.999", g.Price.String())
}

func TestGameRequestRejectsImpossibleDate(t *testing.T) {
	_, err := CreateGameRequest{Name: "X", CategoryID: 1, Price: 5, ReleaseDate: "2021-02-29"}.ToDomain()
	assert.Equal(t, "releaseDate", domain.FieldOf(err))
}

func TestGameSummaryFromDomain(t *testing.T) {
	g := domain.Game{
		ID:          5,
		Name:        "Hades",
		CategoryID:  1,
		Price:       decimal.RequireFromString("24.99"),
		ReleaseDate: time.Date(2020, time.September, 17, 0, 0, 0, 0, time.UTC),
	}

	s, err := GameSummaryFromDomain(g, &domain.Category{ID: 1, Name: "Fighting"})
	require.NoError(t, err)
	assert.Equal(t, GameSummary{ID: 5, Name: "Hades", CategoryName: "Fighting", Price: 24.99, ReleaseDate: "2020-09-17"}, s)

	_, err = GameSummaryFromDomain(g, nil)
	assert.True(t, domain.IsIntegrity(err))

	_, err = GameSummaryFromDomain(g, &domain.Category{ID: 2, Name: "Roleplaying"})
	assert.True(t, domain.IsIntegrity(err))
}

func TestGameSummariesStopAtDanglingReference(t *testing.T) {
	items := []domain.GameWithCategory{
		{Game: domain.Game{ID: 1, CategoryID: 1}, Category: &domain.Category{ID: 1, Name: "Fighting"}},
		{Game: domain.Game{ID: 2, CategoryID: 9}},
	}
	_, err := GameSummariesFromDomain(items)
	assert.True(t, domain.IsIntegrity(err))

	out, err := GameSummariesFromDomain(items[:1])
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestGameDetailFromDomain(t *testing.T) {
	d := GameDetailFromDomain(domain.Game{
		ID:          3,
		Name:        "Cyberpunk 2077",
		CategoryID:  2,
		Price:       decimal.RequireFromString("39.99"),
		ReleaseDate: time.Date(2020, time.December, 10, 0, 0, 0, 0, time.UTC),
	})
	assert.Equal(t, GameDetail{ID: 3, Name: "Cyberpunk 2077", CategoryID: 2, Price: 39.99, ReleaseDate: "2020-12-10"}, d)
}

func TestCouponMapping(t *testing.T) {
	c := CouponRequest{CouponCode: "SPRING5", DiscountAmount: 5.5, MinAmount: 20}.ToDomain()
	c.ID = 9
	assert.Equal(t, CouponResponse{CouponID: 9, CouponCode: "SPRING5", DiscountAmount: 5.5, MinAmount: 20}, CouponFromDomain(c))
	assert.Empty(t, CouponsFromDomain(nil))
}
