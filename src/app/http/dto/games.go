package dto

import (
	"fmt"

	"github.com/shopspring/decimal"

	"gamestore/src/core/domain"
)

// CreateGameRequest is the payload for POST /games.
type CreateGameRequest struct {
	Name        string  `json:"name" binding:"required,max=50"`
	CategoryID  int64   `json:"categoryId" binding:"required"`
	Price       float64 `json:"price" binding:"required,gte=1,lte=100,maxdp=2"`
	ReleaseDate string  `json:"releaseDate" binding:"required,datetime=2006-01-02"`
}

// UpdateGameRequest is the payload for PUT /games/{id}. Every field is
// required: an update replaces the whole record.
type UpdateGameRequest struct {
	Name        string  `json:"name" binding:"required,max=50"`
	CategoryID  int64   `json:"categoryId" binding:"required"`
	Price       float64 `json:"price" binding:"required,gte=1,lte=100,maxdp=2"`
	ReleaseDate string  `json:"releaseDate" binding:"required,datetime=2006-01-02"`
}

// GameSummary is the list-view shape with the category name resolved.
type GameSummary struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	CategoryName string  `json:"categoryName"`
	Price        float64 `json:"price"`
	ReleaseDate  string  `json:"releaseDate"`
}

// GameDetail is the single-item shape carrying the raw category reference.
type GameDetail struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	CategoryID  int64   `json:"categoryId"`
	Price       float64 `json:"price"`
	ReleaseDate string  `json:"releaseDate"`
}

// CategoryResponse is one entry of GET /categories.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ToDomain builds an unsaved game; the store assigns the id.
func (r CreateGameRequest) ToDomain() (domain.Game, error) {
	return gameFromPayload(0, r.Name, r.CategoryID, r.Price, r.ReleaseDate)
}

// ToDomain builds the full replacement for game id.
func (r UpdateGameRequest) ToDomain(id int64) (domain.Game, error) {
	return gameFromPayload(id, r.Name, r.CategoryID, r.Price, r.ReleaseDate)
}

func gameFromPayload(id int64, name string, categoryID int64, price float64, releaseDate string) (domain.Game, error) {
	date, err := domain.ParseDate(releaseDate)
	if err != nil {
		return domain.Game{}, domain.NewValidationError("releaseDate", "must be a calendar date (YYYY-MM-DD)")
	}
	return domain.Game{
		ID:          id,
		Name:        name,
		CategoryID:  categoryID,
		Price:       decimal.NewFromFloat(price),
		ReleaseDate: date,
	}, nil
}

// GameSummaryFromDomain projects a game and its category into the list shape.
// A missing category is an integrity fault, never defaulted.
func GameSummaryFromDomain(g domain.Game, c *domain.Category) (GameSummary, error) {
	if c == nil || c.ID != g.CategoryID {
		return GameSummary{}, domain.NewIntegrityError(fmt.Sprintf("game %d references missing category %d", g.ID, g.CategoryID))
	}
	return GameSummary{
		ID:           g.ID,
		Name:         g.Name,
		CategoryName: c.Name,
		Price:        g.Price.InexactFloat64(),
		ReleaseDate:  g.ReleaseDate.Format(domain.DateLayout),
	}, nil
}

// GameSummariesFromDomain projects a whole listing, failing on the first dangling reference.
func GameSummariesFromDomain(items []domain.GameWithCategory) ([]GameSummary, error) {
	out := make([]GameSummary, 0, len(items))
	for _, item := range items {
		s, err := GameSummaryFromDomain(item.Game, item.Category)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// GameDetailFromDomain projects a game into the single-item shape.
func GameDetailFromDomain(g domain.Game) GameDetail {
	return GameDetail{
		ID:          g.ID,
		Name:        g.Name,
		CategoryID:  g.CategoryID,
		Price:       g.Price.InexactFloat64(),
		ReleaseDate: g.ReleaseDate.Format(domain.DateLayout),
	}
}

func CategoriesFromDomain(cats []domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return out
}
