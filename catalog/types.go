package catalog

// ─── Tag vocabularies ─────────────────────────────────────────────────────────

type Climate string

const (
	ClimateTropical  Climate = "tropical"
	ClimateTemperate Climate = "temperate"
	ClimateCold      Climate = "cold"
	ClimateDry       Climate = "dry"
)

type Activity string

const (
	ActivityCulture    Activity = "culture"
	ActivityFood       Activity = "food"
	ActivityAdventure  Activity = "adventure"
	ActivityRelaxation Activity = "relaxation"
	ActivityNature     Activity = "nature"
	ActivityNightlife  Activity = "nightlife"
)

type AccommodationStyle string

const (
	StyleBoutique AccommodationStyle = "boutique"
	StyleResort   AccommodationStyle = "resort"
	StyleEco      AccommodationStyle = "eco"
	StyleHotel    AccommodationStyle = "hotel"
	StyleVilla    AccommodationStyle = "villa"
)

// BudgetTier is ordered: budget < moderate < luxury.
type BudgetTier string

const (
	TierBudget   BudgetTier = "budget"
	TierModerate BudgetTier = "moderate"
	TierLuxury   BudgetTier = "luxury"
)

var (
	Climates            = []Climate{ClimateTropical, ClimateTemperate, ClimateCold, ClimateDry}
	Activities          = []Activity{ActivityCulture, ActivityFood, ActivityAdventure, ActivityRelaxation, ActivityNature, ActivityNightlife}
	AccommodationStyles = []AccommodationStyle{StyleBoutique, StyleResort, StyleEco, StyleHotel, StyleVilla}
	BudgetTiers         = []BudgetTier{TierBudget, TierModerate, TierLuxury}
)

func (c Climate) Valid() bool {
	for _, v := range Climates {
		if v == c {
			return true
		}
	}
	return false
}

func (a Activity) Valid() bool {
	for _, v := range Activities {
		if v == a {
			return true
		}
	}
	return false
}

func (s AccommodationStyle) Valid() bool {
	for _, v := range AccommodationStyles {
		if v == s {
			return true
		}
	}
	return false
}

// Rank returns the tier's position in the budget ordering, or -1 if unknown.
func (t BudgetTier) Rank() int {
	for i, v := range BudgetTiers {
		if v == t {
			return i
		}
	}
	return -1
}

func (t BudgetTier) Valid() bool { return t.Rank() >= 0 }

// ─── Destination ──────────────────────────────────────────────────────────────

type DurationRange struct {
	MinDays int `json:"minDays"`
	MaxDays int `json:"maxDays"`
}

type Accommodation struct {
	Name        string             `json:"name"`
	Style       AccommodationStyle `json:"style"`
	NightlyRate float64            `json:"nightlyRate"`
	Blurb       string             `json:"blurb"`
}

type Experience struct {
	Name     string   `json:"name"`
	Category Activity `json:"category"`
	Summary  string   `json:"summary"`
}

type Destination struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Country            string          `json:"country"`
	Description        string          `json:"description"`
	IdealSeasons       []string        `json:"idealSeasons"`
	Climate            []Climate       `json:"climate"`
	ActivityHighlights []Activity      `json:"activityHighlights"`
	BudgetLevel        BudgetTier      `json:"budgetLevel"`
	DurationIdeal      DurationRange   `json:"durationIdeal"`
	Accommodations     []Accommodation `json:"accommodations"`
	Experiences        []Experience    `json:"experiences"`
	TravelTips         []string        `json:"travelTips"`
}
