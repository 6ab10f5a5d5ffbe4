// Package repo contains the storage adapters for the ports in src/core/ports.
//
//   - PostgresCatalog: games and categories over pgx with hand-written SQL.
//   - GormCoupons: coupons through gorm on the same connection pool.
//   - MemoryCatalog / MemoryCoupons: process-local stores used by tests and
//     by APP_STORE_DRIVER=memory. State does not survive a restart.
//
// Every adapter translates storage failures into domain errors
// (not found, validation on a broken foreign key, conflict on duplicates).
package repo
