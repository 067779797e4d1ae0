package model

import (
	"encoding/json"
	"testing"

	"github.com/dmitrijs2005/awarddeck/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisibility_AbsentObjectShowsEverything(t *testing.T) {
	var a Awardee
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"name":"A"}`), &a))

	for _, element := range ElementIDs {
		assert.True(t, a.Shows(element), "element %s should default to visible", element)
	}
}

func TestVisibility_AbsentFlagsDefaultTrue(t *testing.T) {
	var a Awardee
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"visibility":{"photo":false}}`), &a))

	assert.False(t, a.Shows(ElementPhoto))
	for _, element := range []string{ElementName, ElementTitle, ElementCategory, ElementDescription, ElementDate} {
		assert.True(t, a.Shows(element), "element %s should stay visible", element)
	}
}

func TestNextID(t *testing.T) {
	tests := []struct {
		name string
		deck []Awardee
		want int
	}{
		{name: "empty deck starts at 1", deck: nil, want: 1},
		{name: "max plus one", deck: []Awardee{{ID: 3}, {ID: 7}, {ID: 2}}, want: 8},
		{name: "gap after deletion is not reused", deck: []Awardee{{ID: 1}, {ID: 5}}, want: 6},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NextID(tc.deck))
		})
	}
}

func TestClone_IsDeep(t *testing.T) {
	orig := NewAwardee(1)
	orig.Layout = DefaultLayout()

	cp := orig.Clone()
	cp.SlideTheme.AccentColor = "#000000"
	cp.Visibility.Photo = false
	r := cp.Layout[ElementPhoto]
	r.X = 999
	cp.Layout[ElementPhoto] = r

	assert.NotEqual(t, orig.SlideTheme.AccentColor, cp.SlideTheme.AccentColor)
	assert.True(t, orig.Visibility.Photo)
	assert.NotEqual(t, orig.Layout[ElementPhoto].X, cp.Layout[ElementPhoto].X)
}

func TestNormalize_Clamps(t *testing.T) {
	a := Awardee{
		ID:                  1,
		PhotoScale:          5.0,
		DescriptionTextSize: 2,
		SelectedIcon:        "dragon",
		LogoBadgeColor:      "notacolor",
		SlideTheme:          &SlideTheme{AccentColor: "#FFAA00", AccentColorType: "neon"},
	}
	a.Normalize()

	assert.Equal(t, MaxPhotoScale, a.PhotoScale)
	assert.Equal(t, MinDescriptionTextSize, a.DescriptionTextSize)
	assert.Equal(t, IconStar, a.SelectedIcon)
	assert.Equal(t, LogoSmall, a.OrganizationLogoSize)
	assert.Empty(t, a.LogoBadgeColor)
	assert.Equal(t, "#ffaa00", a.SlideTheme.AccentColor)
	assert.Equal(t, AccentFlat, a.SlideTheme.AccentColorType)
}

func TestNormalize_ZeroValuesGetDefaults(t *testing.T) {
	a := Awardee{ID: 1}
	a.Normalize()

	assert.Equal(t, DefaultPhotoScale, a.PhotoScale)
	assert.Equal(t, DefaultDescriptionTextSize, a.DescriptionTextSize)
}

func TestValidate(t *testing.T) {
	a := Awardee{ID: 0}
	require.ErrorIs(t, a.Validate(), common.ErrValidation)

	b := Awardee{ID: 1, Layout: Layout{"banner": {}}}
	require.ErrorIs(t, b.Validate(), common.ErrValidation)

	c := Awardee{ID: 1, Layout: DefaultLayout()}
	require.NoError(t, c.Validate())
}

func TestSortDeck_OrderBeatsID(t *testing.T) {
	two, zero := 2, 0
	deck := []Awardee{
		{ID: 1, Order: &two},
		{ID: 9, Order: &zero},
		{ID: 5}, // no order: falls back to id
	}
	SortDeck(deck)

	assert.Equal(t, []int{9, 1, 5}, []int{deck[0].ID, deck[1].ID, deck[2].ID})
}

func TestDefaultDeck_HasFourVisibleSlides(t *testing.T) {
	deck := DefaultDeck()
	require.Len(t, deck, 4)
	for _, a := range deck {
		assert.False(t, a.IsHidden)
		require.NoError(t, a.Validate())
	}
	assert.Equal(t, 5, NextID(deck))
}
