package model

// Bounds applied by Normalize.
const (
	MinPhotoScale = 1.0
	MaxPhotoScale = 2.0

	MinDescriptionTextSize = 10
	MaxDescriptionTextSize = 20

	DefaultPhotoScale          = 1.0
	DefaultDescriptionTextSize = 14
)

// DefaultCategories are the built-in award categories; user-added custom
// categories are stored separately.
var DefaultCategories = []string{
	"Employee of the Month",
	"Outstanding Achievement",
	"Leadership Excellence",
	"Team Spirit",
}

// DefaultLayout returns the built-in rectangle set used for slides without a
// stored layout. Coordinates are canvas pixels on a 960x540 slide.
func DefaultLayout() Layout {
	return Layout{
		ElementPhoto:       {X: 80, Y: 120, Width: 280, Height: 320},
		ElementName:        {X: 420, Y: 140, Width: 460, Height: 60},
		ElementTitle:       {X: 420, Y: 210, Width: 460, Height: 40},
		ElementCategory:    {X: 420, Y: 70, Width: 300, Height: 36},
		ElementDescription: {X: 420, Y: 270, Width: 460, Height: 160},
		ElementDate:        {X: 420, Y: 450, Width: 240, Height: 32},
	}
}

// DefaultTheme returns the starting color theme for a new slide.
func DefaultTheme() *SlideTheme {
	return &SlideTheme{
		BackgroundColor: "#1a1a2e",
		AccentColor:     "#e94560",
		AccentColorEnd:  "#903749",
		AccentColorType: AccentFlat,
	}
}

// NewAwardee returns a fresh record with default field values.
func NewAwardee(id int) Awardee {
	return Awardee{
		ID:                   id,
		Name:                 "New Awardee",
		Title:                "Title",
		Award:                "Award",
		Description:          "Description",
		Category:             DefaultCategories[0],
		SelectedIcon:         IconStar,
		OrganizationLogoSize: LogoSmall,
		PhotoScale:           DefaultPhotoScale,
		DescriptionTextSize:  DefaultDescriptionTextSize,
		SlideTheme:           DefaultTheme(),
		Visibility:           NewVisibility(),
	}
}

// DefaultDeck is the hardcoded fallback set used when the backend is empty or
// unreachable at application start.
func DefaultDeck() []Awardee {
	deck := []Awardee{
		{
			ID:          1,
			Name:        "Alice Rivera",
			Title:       "Senior Engineer",
			Award:       "Employee of the Month",
			Description: "Led the platform migration without a minute of downtime.",
			Date:        "January 2025",
			Category:    "Employee of the Month",
		},
		{
			ID:          2,
			Name:        "Ben Okafor",
			Title:       "Product Designer",
			Award:       "Outstanding Achievement",
			Description: "Redesigned onboarding and doubled activation.",
			Date:        "February 2025",
			Category:    "Outstanding Achievement",
		},
		{
			ID:          3,
			Name:        "Carmen Diaz",
			Title:       "Engineering Manager",
			Award:       "Leadership Excellence",
			Description: "Grew the team from four to eleven while shipping every quarter.",
			Date:        "March 2025",
			Category:    "Leadership Excellence",
		},
		{
			ID:          4,
			Name:        "Dmitri Volkov",
			Title:       "Support Lead",
			Award:       "Team Spirit",
			Description: "Kept customer satisfaction above 98% through the busiest season yet.",
			Date:        "April 2025",
			Category:    "Team Spirit",
		},
	}

	for i := range deck {
		deck[i].SelectedIcon = IconStar
		deck[i].OrganizationLogoSize = LogoSmall
		deck[i].PhotoScale = DefaultPhotoScale
		deck[i].DescriptionTextSize = DefaultDescriptionTextSize
		deck[i].SlideTheme = DefaultTheme()
		deck[i].Visibility = NewVisibility()
	}
	return deck
}
