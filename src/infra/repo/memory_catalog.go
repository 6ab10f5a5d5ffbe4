package repo

import (
	"context"
	"sort"
	"sync"

	"gamestore/src/core/domain"
	"gamestore/src/core/ports"
)

var _ ports.CatalogRepository = (*MemoryCatalog)(nil)

// MemoryCatalog keeps games and categories in process memory.
// Ids come from a counter that only moves forward, so deleted ids are never reused.
type MemoryCatalog struct {
	mu         sync.RWMutex
	lastID     int64
	games      map[int64]domain.Game
	categories map[int64]domain.Category
}

// NewMemoryCatalog builds a store holding the given categories and games.
// Seed games keep their ids; new ids continue after the largest one.
func NewMemoryCatalog(categories []domain.Category, games []domain.Game) *MemoryCatalog {
	s := &MemoryCatalog{
		games:      make(map[int64]domain.Game, len(games)),
		categories: make(map[int64]domain.Category, len(categories)),
	}
	for _, c := range categories {
		s.categories[c.ID] = c
	}
	for _, g := range games {
		s.games[g.ID] = g
		if g.ID > s.lastID {
			s.lastID = g.ID
		}
	}
	return s
}

// NewSeededMemoryCatalog returns a store with the same seed as a fresh database.
func NewSeededMemoryCatalog() *MemoryCatalog {
	return NewMemoryCatalog(SeedCategories(), SeedGames())
}

func (s *MemoryCatalog) Health(context.Context) error {
	return nil
}

func (s *MemoryCatalog) ListGames(context.Context) ([]domain.GameWithCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.GameWithCategory, 0, len(s.games))
	for _, g := range s.games {
		item := domain.GameWithCategory{Game: g}
		if c, ok := s.categories[g.CategoryID]; ok {
			item.Category = &c
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Game.ID < out[j].Game.ID })
	return out, nil
}

func (s *MemoryCatalog) GetGame(_ context.Context, id int64) (*domain.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[id]
	if !ok {
		return nil, domain.NewNotFoundError("game")
	}
	return &g, nil
}

func (s *MemoryCatalog) CreateGame(_ context.Context, g domain.Game) (*domain.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[g.CategoryID]; !ok {
		return nil, domain.NewValidationError("categoryId", "category does not exist")
	}
	s.lastID++
	g.ID = s.lastID
	s.games[g.ID] = g
	return &g, nil
}

func (s *MemoryCatalog) UpdateGame(_ context.Context, g domain.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[g.ID]; !ok {
		return domain.NewNotFoundError("game")
	}
	if _, ok := s.categories[g.CategoryID]; !ok {
		return domain.NewValidationError("categoryId", "category does not exist")
	}
	s.games[g.ID] = g
	return nil
}

func (s *MemoryCatalog) DeleteGame(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.games, id)
	return nil
}

func (s *MemoryCatalog) ListCategories(context.Context) ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
