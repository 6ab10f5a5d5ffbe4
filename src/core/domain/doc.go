// Package domain contains the core domain model for the catalog and coupon services.
//
// This package defines:
//   - Entities: Game, Category and Coupon
//   - Domain Errors: business rule and integrity violations
//   - Defaults: field limits shared by validation and persistence
//
// Rules for this package:
//   - No infrastructure concerns (database, HTTP, etc.)
//   - Monetary values use decimal.Decimal, never float64
//   - Release dates carry no time component (see DateOf)
package domain
