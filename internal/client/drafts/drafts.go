// Package drafts persists the editor's working copy between sessions so an
// unsaved deck survives a restart.
package drafts

import (
	"context"
	"time"

	"github.com/dmitrijs2005/awarddeck/internal/model"
)

// Draft is a snapshot of the editor state.
type Draft struct {
	Deck       []model.Awardee `json:"deck"`
	Categories []string        `json:"categories"`
	ActiveTab  int             `json:"activeTab"`
	SavedAt    time.Time       `json:"savedAt"`
}

// Repository stores at most one draft: each Save replaces the previous one.
type Repository interface {
	Save(ctx context.Context, d Draft) error
	Load(ctx context.Context) (*Draft, error)
	Clear(ctx context.Context) error
}
