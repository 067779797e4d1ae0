// Package common defines shared constants and sentinel errors used across
// client and server layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository/store-level errors.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized maps to an HTTP 401 response.
	ErrUnauthorized = errors.New("unauthorized")

	// Validation errors.
	ErrValidation = errors.New("validation error")

	// Auth errors (invalid or malformed bearer token).
	ErrInvalidToken = errors.New("invalid token")
)

// AwardeeKeyPrefix is the key namespace for awardee records in the KV store.
const AwardeeKeyPrefix = "awardee:"

// CategoriesKey holds the user-defined custom category list as one JSON blob.
const CategoriesKey = "custom-categories"
