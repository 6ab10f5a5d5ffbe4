// Package db provides database connection management and schema migrations.
//
// This package is responsible for:
//   - PostgreSQL connection pool initialization (pgxpool)
//   - A database/sql view of the same pool for goose and gorm
//   - Embedded goose migrations, including the fixed category seed
//
// Example usage:
//
//	pg, err := db.New(ctx, cfg.Database, log)
//	if err != nil {
//	    return err
//	}
//	defer pg.Close()
//
//	if err := pg.Migrate(ctx); err != nil {
//	    return err
//	}
package db
