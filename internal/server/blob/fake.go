package blob

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"
)

// Fake is an in-memory Store used in tests and local runs without object
// storage. Signed URLs are deterministic fake links.
type Fake struct {
	mu      sync.Mutex
	Objects map[string][]byte
	// FailSign makes SignedURL return an error, to exercise 500 paths.
	FailSign bool
}

func NewFake() *Fake {
	return &Fake{Objects: make(map[string][]byte)}
}

func (f *Fake) EnsureBucket(ctx context.Context) error { return nil }

func (f *Fake) Upload(ctx context.Context, key string, contentType string, body io.Reader) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Objects[key] = data
	return nil
}

func (f *Fake) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.Objects, key)
	return nil
}

func (f *Fake) SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	if f.FailSign {
		return "", fmt.Errorf("presign failed for %q", key)
	}
	return fmt.Sprintf("https://storage.local/%s?expires=%d", key, int(ttl.Seconds())), nil
}
