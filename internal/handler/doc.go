// Package handler provides HTTP request handlers for the Front Desk API.
//
// The handler package contains all HTTP endpoint implementations organized by
// concern: reservations (board, CRUD), status transitions (two-phase
// propose/confirm), occupied rooms and health.
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts a config struct with dependencies
//   - Methods handle specific HTTP endpoints
//   - Response helpers from response.go standardize output format
//   - Errors are mapped to RFC 9457 Problem Details responses
//
// # Response Format
//
// Handlers use standardized response functions:
//
//   - WriteData: Single resource with optional HATEOAS links
//   - WriteJSON: Raw JSON response
//   - WriteError: RFC 9457 Problem Details error response
//
// # Store Readiness
//
// Until the deferred seed load has completed, every data endpoint answers
// 503 so the dashboard can keep its loading placeholder up. A failed load
// answers 503 with a loading-failure detail and never recovers.
package handler
