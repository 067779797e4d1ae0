package model

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/dmitrijs2005/awarddeck/internal/common"
)

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate rejects records the store must not accept. Records are otherwise
// coerced into shape by Normalize rather than rejected.
func (a *Awardee) Validate() error {
	if a.ID < 1 {
		return fmt.Errorf("%w: id must be a positive integer", common.ErrValidation)
	}
	for element := range a.Layout {
		if !isKnownElement(element) {
			return fmt.Errorf("%w: unknown layout element %q", common.ErrValidation, element)
		}
	}
	return nil
}

// Normalize coerces out-of-range or unknown values to safe ones instead of
// storing them verbatim: numeric fields are clamped, enum fields fall back to
// defaults, malformed colors are dropped.
func (a *Awardee) Normalize() {
	if a.PhotoScale == 0 {
		a.PhotoScale = DefaultPhotoScale
	}
	a.PhotoScale = clampFloat(a.PhotoScale, MinPhotoScale, MaxPhotoScale)

	if a.DescriptionTextSize == 0 {
		a.DescriptionTextSize = DefaultDescriptionTextSize
	}
	a.DescriptionTextSize = clampInt(a.DescriptionTextSize, MinDescriptionTextSize, MaxDescriptionTextSize)

	switch a.SelectedIcon {
	case IconStar, IconTrophy, IconAward, IconSparkles:
	default:
		a.SelectedIcon = IconStar
	}

	switch a.OrganizationLogoSize {
	case LogoSmall, LogoMedium:
	default:
		a.OrganizationLogoSize = LogoSmall
	}

	a.LogoBadgeColor = normalizeColor(a.LogoBadgeColor)

	if a.SlideTheme != nil {
		a.SlideTheme.BackgroundColor = normalizeColor(a.SlideTheme.BackgroundColor)
		a.SlideTheme.AccentColor = normalizeColor(a.SlideTheme.AccentColor)
		a.SlideTheme.AccentColorEnd = normalizeColor(a.SlideTheme.AccentColorEnd)
		switch a.SlideTheme.AccentColorType {
		case AccentFlat, AccentGradient:
		default:
			a.SlideTheme.AccentColorType = AccentFlat
		}
	}
}

func normalizeColor(c string) string {
	if c == "" {
		return ""
	}
	if !hexColorRe.MatchString(c) {
		return ""
	}
	return strings.ToLower(c)
}

func isKnownElement(element string) bool {
	for _, id := range ElementIDs {
		if id == element {
			return true
		}
	}
	return false
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SortDeck orders records by their persisted Order field when present, else
// by id. The sort is stable so equal keys keep their stored ordering.
func SortDeck(deck []Awardee) {
	sort.SliceStable(deck, func(i, j int) bool {
		return sortKey(deck[i]) < sortKey(deck[j])
	})
}

func sortKey(a Awardee) int {
	if a.Order != nil {
		return *a.Order
	}
	return a.ID
}
