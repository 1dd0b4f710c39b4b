// Package handlers defines the HTTP-layer error codes used across all API
// endpoints. The constants below form a stable, machine-readable taxonomy
// that supplements the human-readable message in each ErrorResponse.
//
// Conventions:
//   - Codes are lowercase snake_case.
//   - Generic codes mirror common HTTP status semantics.
//   - Domain-specific codes (store_failed, delivery_failed) carry business
//     failures that a status code alone cannot convey.
package handlers

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeUnauthorized     = "unauthorized"
	ErrCodeNotFound         = "not_found"
	ErrCodeInternal         = "internal_error"
	ErrCodeMethodNotAllowed = "method_not_allowed"

	// Domain-specific:
	ErrCodeStoreFailed    = "store_failed"
	ErrCodeListFailed     = "list_failed"
	ErrCodeStatsFailed    = "stats_failed"
	ErrCodeDeliveryFailed = "delivery_failed"
	ErrCodeStoreUnhealthy = "store_unavailable"
)
