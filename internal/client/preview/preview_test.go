package preview

import (
	"testing"

	"github.com/dmitrijs2005/awarddeck/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedDeck []model.Awardee

func (d fixedDeck) Deck() []model.Awardee { return d }

func elementIDs(s Slide) []string {
	ids := make([]string, len(s.Elements))
	for i, e := range s.Elements {
		ids[i] = e.ID
	}
	return ids
}

func TestProject_UsesDefaultsForMissingLayout(t *testing.T) {
	a := model.NewAwardee(1)
	a.Name = "Alice Rivera"

	s := Project(a, nil)

	assert.Equal(t, 1, s.AwardeeID)
	assert.Equal(t, model.ElementIDs, elementIDs(s))

	for _, e := range s.Elements {
		assert.Equal(t, model.DefaultLayout()[e.ID], e.Rect, e.ID)
		if e.ID == model.ElementName {
			assert.Equal(t, "Alice Rivera", e.Text)
		}
	}
}

func TestProject_FiltersHiddenElements(t *testing.T) {
	a := model.NewAwardee(1)
	a.Visibility.Date = false
	a.Visibility.Category = false

	s := Project(a, nil)

	ids := elementIDs(s)
	assert.NotContains(t, ids, model.ElementDate)
	assert.NotContains(t, ids, model.ElementCategory)
	assert.Contains(t, ids, model.ElementName)
}

func TestProject_PrefersOverrideLayout(t *testing.T) {
	a := model.NewAwardee(1)
	a.Layout = model.Layout{model.ElementName: {X: 1, Y: 2, Width: 3, Height: 4}}

	override := model.Layout{model.ElementName: {X: 9, Y: 9, Width: 9, Height: 9}}
	s := Project(a, override)

	for _, e := range s.Elements {
		if e.ID == model.ElementName {
			assert.Equal(t, model.Rect{X: 9, Y: 9, Width: 9, Height: 9}, e.Rect)
		}
	}
}

func TestProject_ClampsNumericOverrides(t *testing.T) {
	a := model.NewAwardee(1)
	a.PhotoScale = 99
	a.DescriptionTextSize = 1

	s := Project(a, nil)

	assert.Equal(t, model.MaxPhotoScale, s.PhotoScale)
	assert.Equal(t, model.MinDescriptionTextSize, s.DescriptionTextSize)
	assert.Equal(t, 99.0, a.PhotoScale, "input record untouched")
}

func TestPreview_SkipsHiddenSlides(t *testing.T) {
	deck := fixedDeck{
		{ID: 1},
		{ID: 2, IsHidden: true},
		{ID: 3},
	}
	p := NewPreview(deck)
	p.Open()
	require.True(t, p.Active())

	s, ok := p.Current()
	require.True(t, ok)
	assert.Equal(t, 1, s.AwardeeID)

	p.HandleKey(KeyRight)
	s, _ = p.Current()
	assert.Equal(t, 3, s.AwardeeID, "hidden slide 2 is skipped")

	p.HandleKey(KeyRight)
	s, _ = p.Current()
	assert.Equal(t, 1, s.AwardeeID, "right wraps past the end")

	p.HandleKey(KeyLeft)
	s, _ = p.Current()
	assert.Equal(t, 3, s.AwardeeID, "left wraps past the start")
}

func TestPreview_EscapeExits(t *testing.T) {
	p := NewPreview(fixedDeck{{ID: 1}})
	p.Open()

	p.HandleKey(KeyEscape)
	assert.False(t, p.Active())

	_, ok := p.Current()
	assert.False(t, ok)
}

func TestPreview_KeysIgnoredWhileEditorOpen(t *testing.T) {
	p := NewPreview(fixedDeck{{ID: 1}, {ID: 2}})
	p.Open()
	p.SetEditorOpen(true)

	p.HandleKey(KeyRight)
	s, _ := p.Current()
	assert.Equal(t, 1, s.AwardeeID)

	p.HandleKey(KeyEscape)
	assert.True(t, p.Active())

	p.SetEditorOpen(false)
	p.HandleKey(KeyRight)
	s, _ = p.Current()
	assert.Equal(t, 2, s.AwardeeID)
}

func TestPreview_OpenWithNothingVisible(t *testing.T) {
	p := NewPreview(fixedDeck{{ID: 1, IsHidden: true}})
	p.Open()
	assert.False(t, p.Active())
}
