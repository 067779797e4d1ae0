// Package model defines the Awardee slide record and its nested theme,
// visibility and layout sub-structures, shared by the server and the editor
// client.
package model

import "encoding/json"

// Layout element identifiers. Each names one customizable region of a slide.
const (
	ElementPhoto       = "photo"
	ElementName        = "name"
	ElementTitle       = "title"
	ElementCategory    = "category"
	ElementDescription = "description"
	ElementDate        = "date"
)

// ElementIDs lists all layout elements in render order.
var ElementIDs = []string{
	ElementPhoto,
	ElementName,
	ElementTitle,
	ElementCategory,
	ElementDescription,
	ElementDate,
}

// Icon names selectable for the award badge.
const (
	IconStar     = "star"
	IconTrophy   = "trophy"
	IconAward    = "award"
	IconSparkles = "sparkles"
)

// Organization logo sizes.
const (
	LogoSmall  = "small"
	LogoMedium = "medium"
)

// Accent color fill types.
const (
	AccentFlat     = "flat"
	AccentGradient = "gradient"
)

// Rect is a pixel rectangle on the slide canvas.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Layout maps element ids to their rectangles. A nil Layout means the slide
// uses the built-in default rectangles.
type Layout map[string]Rect

// Clone returns a deep copy of the layout.
func (l Layout) Clone() Layout {
	if l == nil {
		return nil
	}
	out := make(Layout, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}

// SlideTheme holds the per-slide color styling.
type SlideTheme struct {
	BackgroundColor string `json:"backgroundColor,omitempty"`
	AccentColor     string `json:"accentColor,omitempty"`
	AccentColorEnd  string `json:"accentColorEnd,omitempty"`
	AccentColorType string `json:"accentColorType,omitempty"`
}

// Visibility carries the six element show-flags. A flag that is absent in the
// stored JSON defaults to true, so records written before a flag existed keep
// rendering every element.
type Visibility struct {
	Photo       bool `json:"photo"`
	Name        bool `json:"name"`
	Title       bool `json:"title"`
	Category    bool `json:"category"`
	Description bool `json:"description"`
	Date        bool `json:"date"`
}

// NewVisibility returns a Visibility with every flag set.
func NewVisibility() *Visibility {
	return &Visibility{Photo: true, Name: true, Title: true, Category: true, Description: true, Date: true}
}

// UnmarshalJSON starts from all-true and lets the stored object override
// individual flags, giving absent flags their documented default.
func (v *Visibility) UnmarshalJSON(b []byte) error {
	type plain Visibility
	p := plain(*NewVisibility())
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*v = Visibility(p)
	return nil
}

// Shows reports whether the flag for the given element id is set.
func (v *Visibility) Shows(element string) bool {
	if v == nil {
		return true
	}
	switch element {
	case ElementPhoto:
		return v.Photo
	case ElementName:
		return v.Name
	case ElementTitle:
		return v.Title
	case ElementCategory:
		return v.Category
	case ElementDescription:
		return v.Description
	case ElementDate:
		return v.Date
	}
	return false
}

// Awardee is one slide's full content and style record.
//
// ID is unique within a deck and stable across reorder; the position of the
// record in the deck slice is the slide order, persisted in Order on save.
type Awardee struct {
	ID                   int         `json:"id"`
	Name                 string      `json:"name"`
	Title                string      `json:"title"`
	Award                string      `json:"award"`
	Description          string      `json:"description"`
	Date                 string      `json:"date"`
	Category             string      `json:"category"`
	Photo                string      `json:"photo,omitempty"`
	PhotoPath            string      `json:"photoPath,omitempty"`
	OrganizationLogo     string      `json:"organizationLogo,omitempty"`
	OrganizationLogoPath string      `json:"organizationLogoPath,omitempty"`
	OrganizationLogoSize string      `json:"organizationLogoSize,omitempty"`
	SelectedIcon         string      `json:"selectedIcon,omitempty"`
	LogoBadgeColor       string      `json:"logoBadgeColor,omitempty"`
	PhotoScale           float64     `json:"photoScale,omitempty"`
	DescriptionTextSize  int         `json:"descriptionTextSize,omitempty"`
	TabName              string      `json:"tabName,omitempty"`
	IsHidden             bool        `json:"isHidden,omitempty"`
	SlideTheme           *SlideTheme `json:"slideTheme,omitempty"`
	Visibility           *Visibility `json:"visibility,omitempty"`
	Layout               Layout      `json:"layout,omitempty"`
	Order                *int        `json:"order,omitempty"`
}

// Clone returns a deep copy of the record.
func (a Awardee) Clone() Awardee {
	out := a
	if a.SlideTheme != nil {
		theme := *a.SlideTheme
		out.SlideTheme = &theme
	}
	if a.Visibility != nil {
		vis := *a.Visibility
		out.Visibility = &vis
	}
	out.Layout = a.Layout.Clone()
	if a.Order != nil {
		order := *a.Order
		out.Order = &order
	}
	return out
}

// Shows reports whether the given element is visible on this slide.
func (a *Awardee) Shows(element string) bool {
	return a.Visibility.Shows(element)
}

// Label returns the tab display label: TabName when set, else Name, else the id.
func (a *Awardee) Label() string {
	if a.TabName != "" {
		return a.TabName
	}
	if a.Name != "" {
		return a.Name
	}
	return "Slide"
}

// MaxID returns the largest id in the deck, or 0 for an empty deck.
func MaxID(deck []Awardee) int {
	max := 0
	for _, a := range deck {
		if a.ID > max {
			max = a.ID
		}
	}
	return max
}

// NextID returns the id for a newly added record: max(existing ids, 0) + 1.
// Ids are never reused after deletion.
func NextID(deck []Awardee) int {
	return MaxID(deck) + 1
}
