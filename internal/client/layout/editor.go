// Package layout implements the free-form element editor for a slide: moving
// and resizing the six named regions on the canvas with plain pointer events.
package layout

import (
	"github.com/dmitrijs2005/awarddeck/internal/model"
)

// Handle identifies one of the eight resize grips around the selected
// element, or none.
type Handle int

const (
	HandleNone Handle = iota
	HandleNW
	HandleN
	HandleNE
	HandleE
	HandleSE
	HandleS
	HandleSW
	HandleW
)

// handleHalf is half the hit-target size of a resize grip, in canvas units.
const handleHalf = 6.0

// minElementSize is the smallest width or height a resize can produce.
const minElementSize = 16.0

type phase int

const (
	phaseIdle phase = iota
	phaseMoving
	phaseResizing
)

// Session is the slice of the editor session the layout editor needs.
type Session interface {
	Deck() []model.Awardee
	SetLayout(i int, l model.Layout)
}

// Editor drives layout editing for the active slide. Pointer events follow
// press, move, release: press selects and captures the original rectangle,
// move recomputes it from the accumulated delta, release commits.
type Editor struct {
	session Session

	slide   int
	copyAll bool
	seeded  map[int]bool

	selected string

	phase  phase
	handle Handle
	origin model.Rect
	pressX float64
	pressY float64
}

func NewEditor(session Session) *Editor {
	return &Editor{
		session: session,
		seeded:  map[int]bool{},
	}
}

// Enter activates layout editing for the slide at i. A slide without a stored
// layout is seeded with the defaults exactly once; re-entering never re-seeds,
// so user edits survive leaving and returning.
func (e *Editor) Enter(i int) {
	deck := e.session.Deck()
	if i < 0 || i >= len(deck) {
		return
	}
	e.slide = i
	e.selected = ""
	e.phase = phaseIdle

	if len(deck[i].Layout) == 0 && !e.seeded[i] {
		e.session.SetLayout(i, model.DefaultLayout())
		e.seeded[i] = true
	}
}

func (e *Editor) Slide() int { return e.slide }

func (e *Editor) Selected() string { return e.selected }

func (e *Editor) CopyAll() bool { return e.copyAll }

// SetCopyAll flips the copy-to-all toggle. Enabling it immediately fans the
// first slide's layout out so every slide shows the same rectangles.
func (e *Editor) SetCopyAll(on bool) {
	e.copyAll = on
	if on {
		e.fanOut()
	}
}

// Layout returns the rectangles to render for the active slide, falling back
// to the defaults when nothing is stored.
func (e *Editor) Layout() model.Layout {
	deck := e.session.Deck()
	if e.slide < 0 || e.slide >= len(deck) {
		return model.DefaultLayout()
	}
	if len(deck[e.slide].Layout) == 0 {
		return model.DefaultLayout()
	}
	return deck[e.slide].Layout
}

// Reset clears the active slide's stored layout and its seeded mark, so the
// next Enter re-seeds from the defaults.
func (e *Editor) Reset() {
	e.session.SetLayout(e.slide, nil)
	delete(e.seeded, e.slide)
	e.selected = ""
	e.phase = phaseIdle
}

// PointerDown starts an interaction at the given canvas point. The resize
// grips of the current selection are tested first, then the elements topmost
// first; a press on empty background clears the selection. While copy-to-all
// is active, presses on any slide but the first are ignored.
func (e *Editor) PointerDown(x, y float64) {
	if e.copyAll && e.slide != 0 {
		return
	}
	layout := e.Layout()

	if e.selected != "" {
		if h := hitHandle(layout[e.selected], x, y); h != HandleNone {
			e.phase = phaseResizing
			e.handle = h
			e.origin = layout[e.selected]
			e.pressX, e.pressY = x, y
			return
		}
	}

	for i := len(model.ElementIDs) - 1; i >= 0; i-- {
		id := model.ElementIDs[i]
		r, ok := layout[id]
		if !ok || !contains(r, x, y) {
			continue
		}
		e.selected = id
		e.phase = phaseMoving
		e.origin = r
		e.pressX, e.pressY = x, y
		return
	}

	e.selected = ""
	e.phase = phaseIdle
}

// PointerMove recomputes the selected rectangle from the delta against the
// press origin. A move changes position only; a resize changes size and, for
// the north and west grips, the top-left anchor with it.
func (e *Editor) PointerMove(x, y float64) {
	if e.phase == phaseIdle || e.selected == "" {
		return
	}
	dx := x - e.pressX
	dy := y - e.pressY

	var r model.Rect
	switch e.phase {
	case phaseMoving:
		r = e.origin
		r.X += dx
		r.Y += dy
	case phaseResizing:
		r = resize(e.origin, e.handle, dx, dy)
	}
	e.apply(r)
}

// PointerUp commits the interaction. With copy-to-all active the first
// slide's layout fans out to every slide.
func (e *Editor) PointerUp() {
	if e.phase == phaseIdle {
		return
	}
	e.phase = phaseIdle
	if e.copyAll && e.slide == 0 {
		e.fanOut()
	}
}

func (e *Editor) apply(r model.Rect) {
	layout := e.Layout().Clone()
	layout[e.selected] = r
	e.session.SetLayout(e.slide, layout)
}

// fanOut copies the first slide's effective layout to every other slide.
func (e *Editor) fanOut() {
	deck := e.session.Deck()
	if len(deck) == 0 {
		return
	}
	src := deck[0].Layout
	if len(src) == 0 {
		src = model.DefaultLayout()
	}
	for i := 1; i < len(deck); i++ {
		e.session.SetLayout(i, src.Clone())
	}
}

// ParseHandle maps a compass name ("nw", "n", "ne", "e", "se", "s", "sw",
// "w") to its grip.
func ParseHandle(name string) (Handle, bool) {
	switch name {
	case "nw":
		return HandleNW, true
	case "n":
		return HandleN, true
	case "ne":
		return HandleNE, true
	case "e":
		return HandleE, true
	case "se":
		return HandleSE, true
	case "s":
		return HandleS, true
	case "sw":
		return HandleSW, true
	case "w":
		return HandleW, true
	}
	return HandleNone, false
}

// HandlePoint returns the canvas position of the grip on r, so a caller can
// press exactly on it.
func HandlePoint(r model.Rect, h Handle) (float64, float64) {
	if h == HandleNone {
		return r.X + r.Width/2, r.Y + r.Height/2
	}
	p := handlePoints(r)[h-1]
	return p[0], p[1]
}

func contains(r model.Rect, x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// handlePoints returns the grip centers in HandleNW..HandleW order.
func handlePoints(r model.Rect) [8][2]float64 {
	cx := r.X + r.Width/2
	cy := r.Y + r.Height/2
	return [8][2]float64{
		{r.X, r.Y},
		{cx, r.Y},
		{r.X + r.Width, r.Y},
		{r.X + r.Width, cy},
		{r.X + r.Width, r.Y + r.Height},
		{cx, r.Y + r.Height},
		{r.X, r.Y + r.Height},
		{r.X, cy},
	}
}

func hitHandle(r model.Rect, x, y float64) Handle {
	for i, p := range handlePoints(r) {
		if x >= p[0]-handleHalf && x <= p[0]+handleHalf &&
			y >= p[1]-handleHalf && y <= p[1]+handleHalf {
			return Handle(i + 1)
		}
	}
	return HandleNone
}

// resize applies the drag delta to the edges the handle controls, keeping the
// opposite edge fixed and never letting a dimension drop below the minimum.
func resize(o model.Rect, h Handle, dx, dy float64) model.Rect {
	r := o

	switch h {
	case HandleNW, HandleW, HandleSW:
		if o.Width-dx < minElementSize {
			dx = o.Width - minElementSize
		}
		r.X = o.X + dx
		r.Width = o.Width - dx
	case HandleNE, HandleE, HandleSE:
		r.Width = o.Width + dx
		if r.Width < minElementSize {
			r.Width = minElementSize
		}
	}

	switch h {
	case HandleNW, HandleN, HandleNE:
		if o.Height-dy < minElementSize {
			dy = o.Height - minElementSize
		}
		r.Y = o.Y + dy
		r.Height = o.Height - dy
	case HandleSW, HandleS, HandleSE:
		r.Height = o.Height + dy
		if r.Height < minElementSize {
			r.Height = minElementSize
		}
	}

	return r
}
