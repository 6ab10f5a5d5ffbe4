// Package dto contains Data Transfer Objects for HTTP requests and responses,
// plus the mapping between them and domain entities.
//
// DTOs are separate from domain entities to:
//   - Control what data is exposed in the API
//   - Handle JSON serialization/deserialization
//   - Carry validation tags for request binding
//
// Naming convention:
//   - Request types: <Action><Resource>Request (e.g., CreateGameRequest)
//   - Response types: <Resource><Shape> (e.g., GameSummary, GameDetail)
//
// Read shapes are computed on every response and never persisted.
package dto
