package planner

import "tripplanner/catalog"

// ─── Input ────────────────────────────────────────────────────────────────────

type Pace string

const (
	PaceRelaxed  Pace = "relaxed"
	PaceBalanced Pace = "balanced"
	PaceFast     Pace = "fast-paced"
)

type TravelDates struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

// Profile is one traveler's submission. The binding tags are the request
// validation rules; gin and the CLI both run them before anything is scored.
type Profile struct {
	FullName            string                       `json:"fullName" binding:"required"`
	Email               string                       `json:"email" binding:"required"`
	Phone               string                       `json:"phone" binding:"required"`
	DepartureCity       string                       `json:"departureCity" binding:"required"`
	TravelDates         TravelDates                  `json:"travelDates"`
	TravelerCount       int                          `json:"travelerCount" binding:"required,gt=0"`
	BudgetPerPerson     float64                      `json:"budgetPerPerson" binding:"required,gt=0"`
	TravelStyle         Pace                         `json:"travelStyle" binding:"required,oneof=relaxed balanced fast-paced"`
	ClimatePreference   []catalog.Climate            `json:"climatePreference" binding:"required,dive,oneof=tropical temperate cold dry"`
	ActivityPreferences []catalog.Activity           `json:"activityPreferences" binding:"required,dive,oneof=culture food adventure relaxation nature nightlife"`
	AccommodationStyle  []catalog.AccommodationStyle `json:"accommodationStyle" binding:"required,dive,oneof=boutique resort eco hotel villa"`
	SpecialNotes        string                       `json:"specialNotes,omitempty"`
}

// ─── Output ───────────────────────────────────────────────────────────────────

// Status says whether a line item is held (reserved) or only suggested (requested).
type Status string

const (
	StatusReserved  Status = "reserved"
	StatusRequested Status = "requested"
)

type AccommodationItem struct {
	Name              string                     `json:"name"`
	Style             catalog.AccommodationStyle `json:"style"`
	TotalCostEstimate float64                    `json:"totalCostEstimate"`
	Blurb             string                     `json:"blurb"`
	Status            Status                     `json:"status"`
}

type ExperienceItem struct {
	Name    string `json:"name"`
	Day     int    `json:"day"`
	Summary string `json:"summary"`
	Status  Status `json:"status"`
}

type TravelPlan struct {
	StayLength        int                 `json:"stayLength"`
	Accommodations    []AccommodationItem `json:"accommodations"`
	Experiences       []ExperienceItem    `json:"experiences"`
	Notes             []string            `json:"notes"`
	TotalTripEstimate int                 `json:"totalTripEstimate"`
}

type ProposedBooking struct {
	Destination    catalog.Destination `json:"destination"`
	Confidence     int                 `json:"confidence"`
	MatchedReasons []string            `json:"matchedReasons"`
	TravelPlan     TravelPlan          `json:"travelPlan"`
}
