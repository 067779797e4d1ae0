// Package preview renders the fullscreen presentation view: a pure
// projection of awardee records into slides and a keyboard-driven navigator
// over the visible ones.
package preview

import (
	"github.com/dmitrijs2005/awarddeck/internal/model"
)

// Element is one positioned region on a rendered slide with its resolved
// content.
type Element struct {
	ID   string
	Rect model.Rect
	Text string
}

// Slide is the render-ready projection of a single awardee record.
type Slide struct {
	AwardeeID           int
	Theme               model.SlideTheme
	PhotoScale          float64
	DescriptionTextSize int
	Elements            []Element
}

// Project turns one record into a slide. Hidden elements are dropped, rects
// come from the override layout when given, else the record's own layout,
// else the defaults, and numeric overrides are clamped into their bounds.
// The input record is not modified.
func Project(a model.Awardee, override model.Layout) Slide {
	rec := a.Clone()
	rec.Normalize()

	layout := override
	if len(layout) == 0 {
		layout = rec.Layout
	}
	if len(layout) == 0 {
		layout = model.DefaultLayout()
	}

	theme := rec.SlideTheme
	if theme == nil {
		theme = model.DefaultTheme()
	}

	slide := Slide{
		AwardeeID:           rec.ID,
		Theme:               *theme,
		PhotoScale:          rec.PhotoScale,
		DescriptionTextSize: rec.DescriptionTextSize,
	}

	for _, id := range model.ElementIDs {
		if !rec.Shows(id) {
			continue
		}
		rect, ok := layout[id]
		if !ok {
			rect = model.DefaultLayout()[id]
		}
		slide.Elements = append(slide.Elements, Element{
			ID:   id,
			Rect: rect,
			Text: elementText(&rec, id),
		})
	}
	return slide
}

func elementText(a *model.Awardee, id string) string {
	switch id {
	case model.ElementPhoto:
		return a.Photo
	case model.ElementName:
		return a.Name
	case model.ElementTitle:
		return a.Title
	case model.ElementCategory:
		return a.Category
	case model.ElementDescription:
		return a.Description
	case model.ElementDate:
		return a.Date
	}
	return ""
}

// Key is a navigation key press inside the preview.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyEscape
)

// Deck supplies the records to present; the editor session satisfies it.
type Deck interface {
	Deck() []model.Awardee
}

// Preview walks the visible (non-hidden) slides with wraparound. Navigation
// is inert while the editor panel is open.
type Preview struct {
	deck Deck

	open       bool
	editorOpen bool
	index      int
}

func NewPreview(deck Deck) *Preview {
	return &Preview{deck: deck}
}

func (p *Preview) Open() {
	if len(p.visible()) == 0 {
		return
	}
	p.open = true
	p.index = 0
}

func (p *Preview) Close() { p.open = false }

func (p *Preview) Active() bool { return p.open }

// SetEditorOpen tells the preview whether the editor panel currently has the
// keyboard, so key events are not applied to both at once. The terminal
// frontend runs the preview as a modal loop and never sets this; it exists
// for hosts that show the editor panel and the preview side by side.
func (p *Preview) SetEditorOpen(open bool) { p.editorOpen = open }

// Current returns the slide under the cursor, or false when the preview is
// closed or nothing is visible.
func (p *Preview) Current() (Slide, bool) {
	visible := p.visible()
	if !p.open || len(visible) == 0 {
		return Slide{}, false
	}
	if p.index >= len(visible) {
		p.index = len(visible) - 1
	}
	return Project(visible[p.index], nil), true
}

// HandleKey advances, rewinds or exits. Left and Right wrap around modulo
// the visible slide count.
func (p *Preview) HandleKey(k Key) {
	if !p.open || p.editorOpen {
		return
	}
	if k == KeyEscape {
		p.open = false
		return
	}
	n := len(p.visible())
	if n == 0 {
		return
	}
	switch k {
	case KeyLeft:
		p.index = (p.index - 1 + n) % n
	case KeyRight:
		p.index = (p.index + 1) % n
	}
}

func (p *Preview) visible() []model.Awardee {
	var out []model.Awardee
	for _, a := range p.deck.Deck() {
		if !a.IsHidden {
			out = append(out, a)
		}
	}
	return out
}
