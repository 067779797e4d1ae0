package editor

import "fmt"

// State is the single explicit editor-session state value. Modeling the
// transient UI conditions as one value instead of independent flags makes
// impossible combinations (dragging while renaming, two open menus)
// unrepresentable.
type State int

const (
	StateIdle State = iota
	StateDraggingTab
	StateRenaming
	StatePendingDelete
	StateMenuOpen
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDraggingTab:
		return "dragging"
	case StateRenaming:
		return "renaming"
	case StatePendingDelete:
		return "pending-delete"
	case StateMenuOpen:
		return "menu-open"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Menu is the transient tab context-menu overlay, keyed to the position it
// was opened at and the tab it targets.
type Menu struct {
	X     int
	Y     int
	Index int
}

// ErrBusy is returned when an operation is refused because the session is in
// a conflicting state.
var ErrBusy = fmt.Errorf("editor session is busy")
