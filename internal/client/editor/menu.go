package editor

// OpenMenu shows the tab context menu at (x, y) for the tab at index. A
// right-click while another menu is open simply moves the menu; any other
// non-idle state refuses.
func (s *Session) OpenMenu(x, y, index int) error {
	if s.state != StateIdle && s.state != StateMenuOpen {
		return ErrBusy
	}
	if index < 0 || index >= len(s.deck) {
		return nil
	}
	s.state = StateMenuOpen
	s.menu = Menu{X: x, Y: y, Index: index}
	return nil
}

// OpenMenuAt returns the open menu, or nil.
func (s *Session) OpenMenuAt() *Menu {
	if s.state != StateMenuOpen {
		return nil
	}
	m := s.menu
	return &m
}

// CloseMenu dismisses the menu; outside clicks and right-clicks elsewhere
// route here.
func (s *Session) CloseMenu() {
	if s.state == StateMenuOpen {
		s.state = StateIdle
	}
}

// HandleEscape dismisses whatever transient state is active: the context
// menu first, then rename mode, then a pending delete.
func (s *Session) HandleEscape() {
	switch s.state {
	case StateMenuOpen:
		s.CloseMenu()
	case StateRenaming:
		s.CancelRename()
	case StatePendingDelete:
		s.CancelDelete()
	case StateDraggingTab:
		s.CancelDrag()
	}
}

// Menu actions. Each dispatches the underlying operation and closes the
// menu, matching the one-shot overlay contract.

func (s *Session) MenuRename() error {
	if s.state != StateMenuOpen {
		return nil
	}
	index := s.menu.Index
	s.state = StateIdle
	return s.BeginRename(index)
}

func (s *Session) MenuDuplicate() {
	if s.state != StateMenuOpen {
		return
	}
	index := s.menu.Index
	s.state = StateIdle
	s.Duplicate(index)
}

func (s *Session) MenuToggleHidden() {
	if s.state != StateMenuOpen {
		return
	}
	index := s.menu.Index
	s.state = StateIdle
	s.ToggleHidden(index)
}

func (s *Session) MenuDelete() error {
	if s.state != StateMenuOpen {
		return nil
	}
	index := s.menu.Index
	s.state = StateIdle
	return s.RequestDelete(index)
}
