package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"gamestore/src/core/domain"
	"gamestore/src/core/ports"
)

// CatalogService runs the game CRUD flows on top of a CatalogRepository.
// Requests reaching it have already passed request validation.
type CatalogService struct {
	repo ports.CatalogRepository
	log  *slog.Logger
}

func NewCatalogService(repo ports.CatalogRepository, log *slog.Logger) *CatalogService {
	return &CatalogService{repo: repo, log: log}
}

// ListGames returns all games with their categories resolved.
func (s *CatalogService) ListGames(ctx context.Context) ([]domain.GameWithCategory, error) {
	return s.repo.ListGames(ctx)
}

// GetGame returns a single game.
func (s *CatalogService) GetGame(ctx context.Context, id int64) (*domain.Game, error) {
	return s.repo.GetGame(ctx, id)
}

// CreateGame stores a new game; the repository assigns its id.
func (s *CatalogService) CreateGame(ctx context.Context, g domain.Game) (*domain.Game, error) {
	g.ID = 0
	g.ReleaseDate = domain.DateOf(g.ReleaseDate)
	created, err := s.repo.CreateGame(ctx, g)
	if err != nil {
		return nil, err
	}
	s.log.Info("game created", "game_id", created.ID, "category_id", created.CategoryID)
	return created, nil
}

// UpdateGame replaces every mutable field of game id with the values in replacement.
// A concurrent delete either wins (not found) or runs after the write.
func (s *CatalogService) UpdateGame(ctx context.Context, id int64, replacement domain.Game) error {
	current, err := s.repo.GetGame(ctx, id)
	if err != nil {
		return err
	}

	next := *current
	next.Name = replacement.Name
	next.CategoryID = replacement.CategoryID
	next.Price = replacement.Price
	next.ReleaseDate = domain.DateOf(replacement.ReleaseDate)

	if err := s.repo.UpdateGame(ctx, next); err != nil {
		return err
	}
	s.log.Info("game updated", "game_id", id)
	return nil
}

// DeleteGame removes a game. Deleting an unknown id succeeds.
func (s *CatalogService) DeleteGame(ctx context.Context, id int64) error {
	if err := s.repo.DeleteGame(ctx, id); err != nil {
		return fmt.Errorf("delete game %d: %w", id, err)
	}
	return nil
}

// ListCategories returns the fixed category set.
func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListCategories(ctx)
}
