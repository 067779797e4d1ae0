package editor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/dmitrijs2005/awarddeck/internal/logging"
	"github.com/dmitrijs2005/awarddeck/internal/model"
)

// fakeClient implements api.Client against in-memory state, recording the
// calls the session makes.
type fakeClient struct {
	deck       []model.Awardee
	categories []string

	listErr   error
	uploadErr error

	deleted  []int
	batches  [][]model.Awardee
	savedCat [][]string
	uploads  int
}

func (f *fakeClient) Health(ctx context.Context) error { return nil }

func (f *fakeClient) List(ctx context.Context) ([]model.Awardee, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]model.Awardee, len(f.deck))
	copy(out, f.deck)
	return out, nil
}

func (f *fakeClient) Upsert(ctx context.Context, a model.Awardee) (*model.Awardee, error) {
	return &a, nil
}

func (f *fakeClient) UpsertBatch(ctx context.Context, deck []model.Awardee) error {
	batch := make([]model.Awardee, len(deck))
	for i, a := range deck {
		batch[i] = a.Clone()
	}
	f.batches = append(f.batches, batch)
	return nil
}

func (f *fakeClient) Delete(ctx context.Context, id int) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeClient) UploadPhoto(ctx context.Context, filename string, r io.Reader) (string, string, error) {
	if f.uploadErr != nil {
		return "", "", f.uploadErr
	}
	f.uploads++
	return "123-" + filename, "https://storage.local/123-" + filename, nil
}

func (f *fakeClient) Categories(ctx context.Context) ([]string, error) {
	return f.categories, nil
}

func (f *fakeClient) SaveCategories(ctx context.Context, categories []string) error {
	f.savedCat = append(f.savedCat, categories)
	return nil
}

var errNetwork = errors.New("network down")

func newTestSession(t *testing.T, client *fakeClient) *Session {
	t.Helper()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	s := NewSession(client, logger)
	s.Load(context.Background())
	return s
}

func deckIDs(deck []model.Awardee) []int {
	ids := make([]int, len(deck))
	for i, a := range deck {
		ids[i] = a.ID
	}
	return ids
}
