package editor

import (
	"context"
	"fmt"
	"io"
)

// Save pushes the working copy to the backend: records present on the server
// but absent locally are deleted (set difference by id), then every local
// record is upserted in one batch tagged with its positional order, then the
// custom category list is persisted. Any failure fails the whole save; there
// is no partial-success tracking and no retry.
func (s *Session) Save(ctx context.Context) error {
	if s.saving {
		return ErrBusy
	}
	s.saving = true
	defer func() { s.saving = false }()

	serverDeck, err := s.client.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch server state: %w", err)
	}

	localIDs := make(map[int]struct{}, len(s.deck))
	for _, a := range s.deck {
		localIDs[a.ID] = struct{}{}
	}

	for _, a := range serverDeck {
		if _, ok := localIDs[a.ID]; !ok {
			if err := s.client.Delete(ctx, a.ID); err != nil {
				return fmt.Errorf("failed to delete awardee %d: %w", a.ID, err)
			}
		}
	}

	upserts := s.deck
	for i := range upserts {
		order := i
		upserts[i].Order = &order
	}

	if err := s.client.UpsertBatch(ctx, upserts); err != nil {
		return fmt.Errorf("failed to save awardees: %w", err)
	}

	if err := s.client.SaveCategories(ctx, s.categories); err != nil {
		return fmt.Errorf("failed to save categories: %w", err)
	}

	return nil
}

// UploadPhoto uploads the image and attaches it to the slide at i. The busy
// flag only disables the triggering control; other edits stay possible.
func (s *Session) UploadPhoto(ctx context.Context, i int, filename string, r io.Reader) error {
	if s.uploading {
		return ErrBusy
	}
	s.uploading = true
	defer func() { s.uploading = false }()

	path, url, err := s.client.UploadPhoto(ctx, filename, r)
	if err != nil {
		return fmt.Errorf("photo upload failed: %w", err)
	}

	s.SetPhoto(i, url, path)
	return nil
}

// UploadLogo uploads the organization logo for the slide at i, fanning it
// out to every slide when applyAll is set.
func (s *Session) UploadLogo(ctx context.Context, i int, filename string, r io.Reader, applyAll bool) error {
	if s.uploading {
		return ErrBusy
	}
	s.uploading = true
	defer func() { s.uploading = false }()

	path, url, err := s.client.UploadPhoto(ctx, filename, r)
	if err != nil {
		return fmt.Errorf("logo upload failed: %w", err)
	}

	s.SetOrganizationLogo(i, url, path, applyAll)
	return nil
}
