package layout

import (
	"testing"

	"github.com/dmitrijs2005/awarddeck/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDeck struct {
	deck []model.Awardee
}

func (f *fakeDeck) Deck() []model.Awardee { return f.deck }

func (f *fakeDeck) SetLayout(i int, l model.Layout) { f.deck[i].Layout = l }

func newTestEditor(slides int) (*Editor, *fakeDeck) {
	deck := &fakeDeck{deck: make([]model.Awardee, slides)}
	for i := range deck.deck {
		deck.deck[i] = model.Awardee{ID: i + 1}
	}
	return NewEditor(deck), deck
}

func TestEnter_SeedsDefaultsOnce(t *testing.T) {
	e, deck := newTestEditor(2)

	e.Enter(0)
	require.Equal(t, model.DefaultLayout(), deck.deck[0].Layout)
	assert.Nil(t, deck.deck[1].Layout, "only the entered slide is seeded")

	// a user edit must survive leaving and re-entering
	moved := deck.deck[0].Layout.Clone()
	r := moved[model.ElementPhoto]
	r.X = 5
	moved[model.ElementPhoto] = r
	deck.SetLayout(0, moved)

	e.Enter(1)
	e.Enter(0)
	assert.Equal(t, 5.0, deck.deck[0].Layout[model.ElementPhoto].X)
}

func TestPointerDown_SelectsElement(t *testing.T) {
	e, _ := newTestEditor(1)
	e.Enter(0)

	// inside the photo rect
	e.PointerDown(100, 200)
	assert.Equal(t, model.ElementPhoto, e.Selected())
	e.PointerUp()

	// background press clears the selection
	e.PointerDown(10, 10)
	assert.Empty(t, e.Selected())
}

func TestDrag_MovesWithoutResizing(t *testing.T) {
	e, deck := newTestEditor(1)
	e.Enter(0)

	e.PointerDown(100, 200)
	e.PointerMove(130, 190)
	e.PointerUp()

	got := deck.deck[0].Layout[model.ElementPhoto]
	want := model.Rect{X: 110, Y: 110, Width: 280, Height: 320}
	assert.Equal(t, want, got)
}

func TestResize_SouthEastGrowsFromFixedAnchor(t *testing.T) {
	e, deck := newTestEditor(1)
	e.Enter(0)

	e.PointerDown(100, 200)
	e.PointerUp()
	require.Equal(t, model.ElementPhoto, e.Selected())

	// SE grip of the photo rect sits at (360, 440)
	e.PointerDown(360, 440)
	e.PointerMove(380, 450)
	e.PointerUp()

	got := deck.deck[0].Layout[model.ElementPhoto]
	want := model.Rect{X: 80, Y: 120, Width: 300, Height: 330}
	assert.Equal(t, want, got)
}

func TestResize_NorthWestMovesAnchor(t *testing.T) {
	e, deck := newTestEditor(1)
	e.Enter(0)

	e.PointerDown(100, 200)
	e.PointerUp()

	// NW grip at (80, 120)
	e.PointerDown(80, 120)
	e.PointerMove(90, 140)
	e.PointerUp()

	got := deck.deck[0].Layout[model.ElementPhoto]
	want := model.Rect{X: 90, Y: 140, Width: 270, Height: 300}
	assert.Equal(t, want, got)
}

func TestResize_ClampsToMinimumSize(t *testing.T) {
	e, deck := newTestEditor(1)
	e.Enter(0)

	e.PointerDown(100, 200)
	e.PointerUp()

	// drag the E grip far past the left edge
	e.PointerDown(360, 280)
	e.PointerMove(-1000, 280)
	e.PointerUp()

	got := deck.deck[0].Layout[model.ElementPhoto]
	assert.Equal(t, minElementSize, got.Width)
	assert.Equal(t, 80.0, got.X, "opposite edge stays put")
}

func TestCopyAll_FansOutAndLocksOtherSlides(t *testing.T) {
	e, deck := newTestEditor(3)
	e.Enter(0)

	e.SetCopyAll(true)
	for i := range deck.deck {
		assert.Equal(t, model.DefaultLayout(), deck.deck[i].Layout, "slide %d", i)
	}

	// an edit on slide 0 propagates on release
	e.PointerDown(100, 200)
	e.PointerMove(150, 200)
	e.PointerUp()
	for i := range deck.deck {
		assert.Equal(t, 130.0, deck.deck[i].Layout[model.ElementPhoto].X, "slide %d", i)
	}

	// fanned-out copies are independent maps
	l0 := deck.deck[0].Layout
	l1 := deck.deck[1].Layout
	r := l1[model.ElementPhoto]
	r.X = 999
	l1[model.ElementPhoto] = r
	assert.NotEqual(t, 999.0, l0[model.ElementPhoto].X)

	// while the toggle is on, other slides ignore pointer input
	e.Enter(1)
	e.PointerDown(150, 200)
	assert.Empty(t, e.Selected())
	e.PointerMove(500, 200)
	e.PointerUp()
	assert.Equal(t, deck.deck[0].Layout[model.ElementPhoto], deck.deck[1].Layout[model.ElementPhoto])
}

func TestReset_ClearsLayoutAndReseedsOnReentry(t *testing.T) {
	e, deck := newTestEditor(1)
	e.Enter(0)

	e.PointerDown(100, 200)
	e.PointerMove(200, 200)
	e.PointerUp()
	require.NotEqual(t, model.DefaultLayout(), deck.deck[0].Layout)

	e.Reset()
	assert.Nil(t, deck.deck[0].Layout)
	assert.Equal(t, model.DefaultLayout(), e.Layout(), "render falls back to defaults")

	e.Enter(0)
	assert.Equal(t, model.DefaultLayout(), deck.deck[0].Layout)
}

func TestParseHandle(t *testing.T) {
	h, ok := ParseHandle("se")
	require.True(t, ok)
	assert.Equal(t, HandleSE, h)

	_, ok = ParseHandle("center")
	assert.False(t, ok)
}

func TestHandlePoint(t *testing.T) {
	r := model.Rect{X: 80, Y: 120, Width: 280, Height: 320}

	x, y := HandlePoint(r, HandleSE)
	assert.Equal(t, 360.0, x)
	assert.Equal(t, 440.0, y)

	x, y = HandlePoint(r, HandleN)
	assert.Equal(t, 220.0, x)
	assert.Equal(t, 120.0, y)

	x, y = HandlePoint(r, HandleNone)
	assert.Equal(t, 220.0, x)
	assert.Equal(t, 280.0, y)
}
