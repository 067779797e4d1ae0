package editor

import "github.com/dmitrijs2005/awarddeck/internal/model"

// BeginDrag starts a tab drag. Only allowed from the idle state.
func (s *Session) BeginDrag(i int) error {
	if s.state != StateIdle {
		return ErrBusy
	}
	if i < 0 || i >= len(s.deck) {
		return nil
	}
	s.state = StateDraggingTab
	s.dragIndex = i
	return nil
}

// DropOn finishes the drag on the given position.
func (s *Session) DropOn(drop int) {
	if s.state != StateDraggingTab {
		return
	}
	dragged := s.dragIndex
	s.state = StateIdle
	s.Reorder(dragged, drop)
}

// CancelDrag abandons the drag without moving anything.
func (s *Session) CancelDrag() {
	if s.state == StateDraggingTab {
		s.state = StateIdle
	}
}

// Reorder removes the record at dragged and reinserts it at drop (splice
// semantics: both are positions, not ids). The active tab keeps pointing at
// the same logical record: it follows the dragged item, or shifts by one when
// the drag crosses it. The deck size and id set are invariant.
func (s *Session) Reorder(dragged, drop int) {
	n := len(s.deck)
	if dragged < 0 || dragged >= n || drop < 0 || drop >= n || dragged == drop {
		return
	}

	item := s.deck[dragged]
	rest := append(s.deck[:dragged], s.deck[dragged+1:]...)
	s.deck = append(rest[:drop], append([]model.Awardee{item}, rest[drop:]...)...)

	switch {
	case s.activeTab == dragged:
		s.activeTab = drop
	case dragged < s.activeTab && drop >= s.activeTab:
		s.activeTab--
	case dragged > s.activeTab && drop <= s.activeTab:
		s.activeTab++
	}
	s.revision++
}

// Add appends a new record with the next free id and makes it active.
func (s *Session) Add() *model.Awardee {
	a := model.NewAwardee(model.NextID(s.deck))
	s.deck = append(s.deck, a)
	s.activeTab = len(s.deck) - 1
	s.revision++
	return &s.deck[s.activeTab]
}

// Duplicate clones the record at i, gives the clone a fresh id, inserts it
// right after the source and activates it. A set tab name gets " (Copy)"
// appended.
func (s *Session) Duplicate(i int) *model.Awardee {
	if i < 0 || i >= len(s.deck) {
		return nil
	}

	clone := s.deck[i].Clone()
	clone.ID = model.NextID(s.deck)
	if clone.TabName != "" {
		clone.TabName += " (Copy)"
	}

	s.deck = append(s.deck[:i+1], append([]model.Awardee{clone}, s.deck[i+1:]...)...)
	s.activeTab = i + 1
	s.revision++
	return &s.deck[s.activeTab]
}

// RequestDelete starts the two-phase delete for the record at i. Refused for
// the last remaining record: the deck never becomes empty from the editor.
func (s *Session) RequestDelete(i int) error {
	if s.state != StateIdle {
		return ErrBusy
	}
	if len(s.deck) <= 1 || i < 0 || i >= len(s.deck) {
		return nil
	}
	s.state = StatePendingDelete
	s.pendingDelete = i
	return nil
}

// PendingDelete returns the index awaiting confirmation, or -1.
func (s *Session) PendingDelete() int {
	if s.state != StatePendingDelete {
		return -1
	}
	return s.pendingDelete
}

// ConfirmDelete performs the pending removal and clamps the active tab into
// bounds.
func (s *Session) ConfirmDelete() {
	if s.state != StatePendingDelete {
		return
	}
	i := s.pendingDelete
	s.state = StateIdle
	s.deck = append(s.deck[:i], s.deck[i+1:]...)

	if s.activeTab > i || s.activeTab >= len(s.deck) {
		s.activeTab--
	}
	if s.activeTab < 0 {
		s.activeTab = 0
	}
	s.revision++
}

// CancelDelete clears the pending state without mutation.
func (s *Session) CancelDelete() {
	if s.state == StatePendingDelete {
		s.state = StateIdle
	}
}

// BeginRename enters rename mode for the tab at i.
func (s *Session) BeginRename(i int) error {
	if s.state != StateIdle {
		return ErrBusy
	}
	if i < 0 || i >= len(s.deck) {
		return nil
	}
	s.state = StateRenaming
	s.activeTab = i
	return nil
}

// CommitRename stores the new tab name and returns to idle.
func (s *Session) CommitRename(name string) {
	if s.state != StateRenaming {
		return
	}
	s.state = StateIdle
	s.mutate(s.activeTab, func(a *model.Awardee) { a.TabName = name })
}

func (s *Session) CancelRename() {
	if s.state == StateRenaming {
		s.state = StateIdle
	}
}

// RenameTab sets the tab name directly, outside rename mode.
func (s *Session) RenameTab(i int, name string) {
	s.mutate(i, func(a *model.Awardee) { a.TabName = name })
}

// ToggleHidden flips the slide's exclusion from presentation mode.
func (s *Session) ToggleHidden(i int) {
	s.mutate(i, func(a *model.Awardee) { a.IsHidden = !a.IsHidden })
}

func (s *Session) SetName(i int, v string)        { s.mutate(i, func(a *model.Awardee) { a.Name = v }) }
func (s *Session) SetTitle(i int, v string)       { s.mutate(i, func(a *model.Awardee) { a.Title = v }) }
func (s *Session) SetAward(i int, v string)       { s.mutate(i, func(a *model.Awardee) { a.Award = v }) }
func (s *Session) SetDescription(i int, v string) { s.mutate(i, func(a *model.Awardee) { a.Description = v }) }
func (s *Session) SetDate(i int, v string)        { s.mutate(i, func(a *model.Awardee) { a.Date = v }) }
func (s *Session) SetCategory(i int, v string)    { s.mutate(i, func(a *model.Awardee) { a.Category = v }) }

func (s *Session) SetSelectedIcon(i int, v string) {
	s.mutate(i, func(a *model.Awardee) { a.SelectedIcon = v })
}

func (s *Session) SetPhotoScale(i int, v float64) {
	s.mutate(i, func(a *model.Awardee) { a.PhotoScale = v })
}

func (s *Session) SetDescriptionTextSize(i int, v int) {
	s.mutate(i, func(a *model.Awardee) { a.DescriptionTextSize = v })
}

func (s *Session) SetTheme(i int, theme model.SlideTheme) {
	s.mutate(i, func(a *model.Awardee) { a.SlideTheme = &theme })
}

func (s *Session) SetVisibility(i int, element string, show bool) {
	s.mutate(i, func(a *model.Awardee) {
		if a.Visibility == nil {
			a.Visibility = model.NewVisibility()
		}
		switch element {
		case model.ElementPhoto:
			a.Visibility.Photo = show
		case model.ElementName:
			a.Visibility.Name = show
		case model.ElementTitle:
			a.Visibility.Title = show
		case model.ElementCategory:
			a.Visibility.Category = show
		case model.ElementDescription:
			a.Visibility.Description = show
		case model.ElementDate:
			a.Visibility.Date = show
		}
	})
}

// SetLayout replaces the slide's stored element layout.
func (s *Session) SetLayout(i int, l model.Layout) {
	s.mutate(i, func(a *model.Awardee) { a.Layout = l })
}

// SetPhoto stores the display URL and storage key for the slide's photo.
func (s *Session) SetPhoto(i int, url, path string) {
	s.mutate(i, func(a *model.Awardee) {
		a.Photo = url
		a.PhotoPath = path
	})
}

// SetOrganizationLogo stores the logo for one slide, or for every slide when
// applyAll is set.
func (s *Session) SetOrganizationLogo(i int, url, path string, applyAll bool) {
	if applyAll {
		for j := range s.deck {
			s.deck[j].OrganizationLogo = url
			s.deck[j].OrganizationLogoPath = path
		}
		s.revision++
		return
	}
	s.mutate(i, func(a *model.Awardee) {
		a.OrganizationLogo = url
		a.OrganizationLogoPath = path
	})
}
