// Package awardees implements the server-side operations over awardee
// records: listing with signed photo URLs, upserts, deletion with blob
// cleanup, photo upload and the custom category list.
package awardees

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dmitrijs2005/awarddeck/internal/common"
	"github.com/dmitrijs2005/awarddeck/internal/logging"
	"github.com/dmitrijs2005/awarddeck/internal/model"
	"github.com/dmitrijs2005/awarddeck/internal/server/blob"
	"github.com/dmitrijs2005/awarddeck/internal/server/kvstore"
)

type Service struct {
	store        kvstore.Store
	blobs        blob.Store
	signedURLTTL time.Duration
	logger       logging.Logger
}

func NewService(store kvstore.Store, blobs blob.Store, signedURLTTL time.Duration, logger logging.Logger) *Service {
	return &Service{
		store:        store,
		blobs:        blobs,
		signedURLTTL: signedURLTTL,
		logger:       logger.With("module", "awardees"),
	}
}

func recordKey(id int) string {
	return common.AwardeeKeyPrefix + strconv.Itoa(id)
}

// List returns every stored awardee sorted by its persisted order (falling
// back to id), with photo and logo storage paths resolved to signed URLs.
// Any store or presign failure fails the whole call.
func (s *Service) List(ctx context.Context) ([]model.Awardee, error) {
	records, err := s.store.GetByPrefix(ctx, common.AwardeeKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list awardees: %w", err)
	}

	deck := make([]model.Awardee, 0, len(records))
	for _, rec := range records {
		var a model.Awardee
		if err := json.Unmarshal(rec.Value, &a); err != nil {
			return nil, fmt.Errorf("corrupt record %q: %w", rec.Key, err)
		}
		deck = append(deck, a)
	}

	model.SortDeck(deck)

	for i := range deck {
		if deck[i].PhotoPath != "" {
			url, err := s.blobs.SignedURL(ctx, deck[i].PhotoPath, s.signedURLTTL)
			if err != nil {
				return nil, fmt.Errorf("failed to sign photo url: %w", err)
			}
			deck[i].Photo = url
		}
		if deck[i].OrganizationLogoPath != "" {
			url, err := s.blobs.SignedURL(ctx, deck[i].OrganizationLogoPath, s.signedURLTTL)
			if err != nil {
				return nil, fmt.Errorf("failed to sign logo url: %w", err)
			}
			deck[i].OrganizationLogo = url
		}
	}

	return deck, nil
}

// Upsert normalizes, validates and stores one record under awardee:{id},
// echoing the stored record back.
func (s *Service) Upsert(ctx context.Context, a model.Awardee) (*model.Awardee, error) {
	a.Normalize()
	if err := a.Validate(); err != nil {
		return nil, err
	}

	value, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal awardee %d: %w", a.ID, err)
	}
	if err := s.store.Set(ctx, recordKey(a.ID), value); err != nil {
		return nil, fmt.Errorf("failed to store awardee %d: %w", a.ID, err)
	}
	return &a, nil
}

// UpsertBatch normalizes and validates the whole deck before touching the
// store, then writes it through a single batch. A validation or store failure
// leaves every existing record untouched.
func (s *Service) UpsertBatch(ctx context.Context, deck []model.Awardee) error {
	records := make([]kvstore.Record, 0, len(deck))
	for i := range deck {
		deck[i].Normalize()
		if err := deck[i].Validate(); err != nil {
			return err
		}
		value, err := json.Marshal(deck[i])
		if err != nil {
			return fmt.Errorf("failed to marshal awardee %d: %w", deck[i].ID, err)
		}
		records = append(records, kvstore.Record{Key: recordKey(deck[i].ID), Value: value})
	}
	if err := s.store.SetBatch(ctx, records); err != nil {
		return fmt.Errorf("failed to store awardee batch: %w", err)
	}
	return nil
}

// Delete removes the record and its stored photo, if any. A missing record is
// not an error. A blob deletion failure is logged but does not keep the
// record alive; the reference would be dangling either way.
func (s *Service) Delete(ctx context.Context, id int) error {
	key := recordKey(id)

	value, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to read awardee %d: %w", id, err)
	}

	var a model.Awardee
	if err := json.Unmarshal(value, &a); err == nil && a.PhotoPath != "" {
		if err := s.blobs.Delete(ctx, a.PhotoPath); err != nil {
			s.logger.Warn(ctx, "failed to delete photo object", "key", a.PhotoPath, "error", err.Error())
		}
	}

	if err := s.store.Del(ctx, key); err != nil {
		return fmt.Errorf("failed to delete awardee %d: %w", id, err)
	}
	return nil
}

// UploadPhoto stores the photo bytes and returns the storage key plus a
// signed URL for immediate display.
func (s *Service) UploadPhoto(ctx context.Context, filename string, contentType string, body io.Reader) (string, string, error) {
	key := StorageKey(filename)

	if err := s.blobs.Upload(ctx, key, contentType, body); err != nil {
		return "", "", fmt.Errorf("failed to upload photo: %w", err)
	}

	url, err := s.blobs.SignedURL(ctx, key, s.signedURLTTL)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign photo url: %w", err)
	}
	return key, url, nil
}

// Categories returns the stored custom category list; a missing key means no
// custom categories yet.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	value, err := s.store.Get(ctx, common.CategoriesKey)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}

	var categories []string
	if err := json.Unmarshal(value, &categories); err != nil {
		return nil, fmt.Errorf("corrupt category list: %w", err)
	}
	return categories, nil
}

// SaveCategories replaces the custom category list.
func (s *Service) SaveCategories(ctx context.Context, categories []string) error {
	value, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("failed to marshal categories: %w", err)
	}
	if err := s.store.Set(ctx, common.CategoriesKey, value); err != nil {
		return fmt.Errorf("failed to store categories: %w", err)
	}
	return nil
}
