package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"gamestore/src/core/domain"
	"gamestore/src/core/ports"
	"gamestore/src/infra/db"
)

const (
	pgErrForeignKeyViolation = "23503"
	pgErrUniqueViolation     = "23505"
	pgErrCheckViolation      = "23514"
)

var _ ports.CatalogRepository = (*PostgresCatalog)(nil)

// PostgresCatalog implements CatalogRepository using pgx.
type PostgresCatalog struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewPostgresCatalog constructs a catalog repository backed by Postgres.
func NewPostgresCatalog(pg *db.Postgres, log *slog.Logger) *PostgresCatalog {
	return &PostgresCatalog{
		pool: pg.Pool,
		log:  log,
	}
}

func (r *PostgresCatalog) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// translateWriteErr maps constraint violations raised by game writes.
func translateWriteErr(err error) error {
	switch pgErrorCode(err) {
	case pgErrForeignKeyViolation:
		return domain.NewValidationError("categoryId", "category does not exist")
	case pgErrCheckViolation:
		return domain.NewValidationError("", "value violates a catalog constraint")
	}
	return err
}

// Games

func (r *PostgresCatalog) ListGames(ctx context.Context) ([]domain.GameWithCategory, error) {
	const q = `
		SELECT g.id, g.name, g.category_id, g.price::text, g.release_date, c.id, c.name
		FROM games g
		LEFT JOIN categories c ON c.id = g.category_id
		ORDER BY g.id
	`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.GameWithCategory, 0)
	for rows.Next() {
		var (
			row     gameRow
			catID   *int64
			catName *string
		)
		if err := rows.Scan(&row.ID, &row.Name, &row.CategoryID, &row.Price, &row.ReleaseDate, &catID, &catName); err != nil {
			return nil, err
		}
		g, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		item := domain.GameWithCategory{Game: g}
		if catID != nil && catName != nil {
			item.Category = &domain.Category{ID: *catID, Name: *catName}
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *PostgresCatalog) GetGame(ctx context.Context, id int64) (*domain.Game, error) {
	const q = `
		SELECT id, name, category_id, price::text, release_date
		FROM games
		WHERE id = $1
	`
	var row gameRow
	if err := r.pool.QueryRow(ctx, q, id).Scan(&row.ID, &row.Name, &row.CategoryID, &row.Price, &row.ReleaseDate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("game")
		}
		return nil, err
	}
	g, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *PostgresCatalog) CreateGame(ctx context.Context, g domain.Game) (*domain.Game, error) {
	const q = `
		INSERT INTO games (name, category_id, price, release_date)
		VALUES ($1, $2, $3::numeric, $4)
		RETURNING id, name, category_id, price::text, release_date
	`
	var row gameRow
	err := r.pool.QueryRow(ctx, q, g.Name, g.CategoryID, g.Price.String(), g.ReleaseDate).
		Scan(&row.ID, &row.Name, &row.CategoryID, &row.Price, &row.ReleaseDate)
	if err != nil {
		return nil, translateWriteErr(err)
	}
	created, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *PostgresCatalog) UpdateGame(ctx context.Context, g domain.Game) error {
	const q = `
		UPDATE games
		SET name = $2, category_id = $3, price = $4::numeric, release_date = $5
		WHERE id = $1
	`
	res, err := r.pool.Exec(ctx, q, g.ID, g.Name, g.CategoryID, g.Price.String(), g.ReleaseDate)
	if err != nil {
		return translateWriteErr(err)
	}
	if res.RowsAffected() == 0 {
		return domain.NewNotFoundError("game")
	}
	return nil
}

func (r *PostgresCatalog) DeleteGame(ctx context.Context, id int64) error {
	const q = `DELETE FROM games WHERE id = $1`
	res, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() > 0 {
		r.log.Debug("game deleted", "game_id", id)
	}
	return nil
}

// Categories

func (r *PostgresCatalog) ListCategories(ctx context.Context) ([]domain.Category, error) {
	const q = `SELECT id, name FROM categories ORDER BY id`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Category, error) {
		var c domain.Category
		err := row.Scan(&c.ID, &c.Name)
		return c, err
	})
}

// gameRow is the scan target for the games table; price travels as text
// so no precision is lost between NUMERIC and decimal.Decimal.
type gameRow struct {
	ID          int64
	Name        string
	CategoryID  int64
	Price       string
	ReleaseDate time.Time
}

func (r gameRow) toDomain() (domain.Game, error) {
	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return domain.Game{}, fmt.Errorf("game %d: bad price %q: %w", r.ID, r.Price, err)
	}
	return domain.Game{
		ID:          r.ID,
		Name:        r.Name,
		CategoryID:  r.CategoryID,
		Price:       price,
		ReleaseDate: domain.DateOf(r.ReleaseDate),
	}, nil
}
