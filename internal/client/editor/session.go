// Package editor owns the working copy of the awardee deck: the ordered,
// editable collection the tabs, layout editor and preview all operate on.
// Every mutation applies to the in-memory copy immediately; the backend sees
// changes only on an explicit Save.
package editor

import (
	"context"

	"github.com/dmitrijs2005/awarddeck/internal/client/api"
	"github.com/dmitrijs2005/awarddeck/internal/logging"
	"github.com/dmitrijs2005/awarddeck/internal/model"
)

// Session is the editor's working-copy owner. It is not safe for concurrent
// use: all mutation happens synchronously on the UI event path.
type Session struct {
	client api.Client
	logger logging.Logger

	deck       []model.Awardee
	categories []string
	activeTab  int

	state         State
	dragIndex     int
	pendingDelete int
	menu          Menu

	uploading bool
	saving    bool
	revision  uint64
}

func NewSession(client api.Client, logger logging.Logger) *Session {
	return &Session{
		client: client,
		logger: logger.With("module", "editor"),
	}
}

// Load fetches the deck and custom categories from the backend. A fetch
// failure or an empty result falls back to the hardcoded default deck; the
// editor always starts with something to show.
func (s *Session) Load(ctx context.Context) {
	deck, err := s.client.List(ctx)
	if err != nil {
		s.logger.Warn(ctx, "failed to load awardees, using defaults", "error", err.Error())
		deck = model.DefaultDeck()
	}
	if len(deck) == 0 {
		deck = model.DefaultDeck()
	}
	s.deck = deck
	s.activeTab = 0
	s.state = StateIdle
	s.revision++

	categories, err := s.client.Categories(ctx)
	if err != nil {
		s.logger.Warn(ctx, "failed to load categories", "error", err.Error())
		categories = []string{}
	}
	s.categories = categories
}

// Restore replaces the working copy with a previously autosaved draft.
func (s *Session) Restore(deck []model.Awardee, categories []string, activeTab int) {
	if len(deck) == 0 {
		return
	}
	s.deck = deck
	s.categories = categories
	if activeTab < 0 || activeTab >= len(deck) {
		activeTab = 0
	}
	s.activeTab = activeTab
	s.state = StateIdle
	s.revision++
}

// Deck returns the live working copy. The preview reads it directly, so
// every mutation is visible there immediately.
func (s *Session) Deck() []model.Awardee {
	return s.deck
}

// Revision increments on every mutation; the preview uses it to notice
// changes without diffing the deck.
func (s *Session) Revision() uint64 {
	return s.revision
}

func (s *Session) State() State { return s.state }

func (s *Session) ActiveTab() int { return s.activeTab }

// Active returns the record the active tab points at.
func (s *Session) Active() *model.Awardee {
	if len(s.deck) == 0 {
		return nil
	}
	return &s.deck[s.activeTab]
}

func (s *Session) SetActiveTab(i int) {
	if i < 0 || i >= len(s.deck) {
		return
	}
	s.activeTab = i
}

func (s *Session) Uploading() bool { return s.uploading }
func (s *Session) Saving() bool    { return s.saving }

func (s *Session) Categories() []string { return s.categories }

// AddCategory appends a custom category unless it already exists.
func (s *Session) AddCategory(name string) {
	if name == "" {
		return
	}
	for _, c := range s.categories {
		if c == name {
			return
		}
	}
	s.categories = append(s.categories, name)
}

func (s *Session) RemoveCategory(name string) {
	for i, c := range s.categories {
		if c == name {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return
		}
	}
}

// mutate applies fn to the record at index i and bumps the revision.
func (s *Session) mutate(i int, fn func(*model.Awardee)) {
	if i < 0 || i >= len(s.deck) {
		return
	}
	fn(&s.deck[i])
	s.revision++
}
