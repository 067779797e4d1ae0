// Package blob stores uploaded photo objects in an S3-compatible bucket and
// resolves storage keys to time-limited signed URLs.
package blob

import (
	"context"
	"io"
	"time"
)

// Store is the object-storage interface used by the awardees service.
type Store interface {
	// EnsureBucket creates the configured bucket if it does not exist yet.
	// Safe to call on every startup.
	EnsureBucket(ctx context.Context) error

	// Upload writes an object under key.
	Upload(ctx context.Context, key string, contentType string, body io.Reader) error

	// Delete removes an object. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error

	// SignedURL returns a presigned GET URL valid for ttl.
	SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}
