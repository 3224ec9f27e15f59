package planner

import (
	"fmt"
	"math"
	"strings"
	"time"

	"tripplanner/catalog"
)

const defaultTripDays = 5

// Points awarded by each scoring check.
const (
	pacePoints          = 10
	climatePoints       = 8 // per matched climate
	activityPoints      = 6 // per matched activity
	budgetMatchPoints   = 12
	budgetStretchPoints = 6
	stylePoints         = 5
)

var dateLayouts = []string{"2006-01-02", time.RFC3339Nano, time.RFC3339}

// TripLength returns the whole days between start and end. Unparseable dates
// and ranges that are empty or inverted fall back to five days.
func TripLength(start, end string) int {
	s, ok := parseDate(start)
	if !ok {
		return defaultTripDays
	}
	e, ok := parseDate(end)
	if !ok {
		return defaultTripDays
	}

	days := int(math.Round(e.Sub(s).Hours() / 24))
	if days <= 0 {
		return defaultTripDays
	}
	return days
}

func parseDate(v string) (time.Time, bool) {
	v = strings.TrimSpace(v)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// BudgetBandFor maps a per-person budget onto a tier: up to 200 is budget,
// up to 400 moderate, anything above luxury.
func BudgetBandFor(perPerson float64) catalog.BudgetTier {
	switch {
	case perPerson <= 200:
		return catalog.TierBudget
	case perPerson <= 400:
		return catalog.TierModerate
	default:
		return catalog.TierLuxury
	}
}

// isStretch reports whether the destination sits exactly one tier above the
// traveler. Cheaper destinations never count.
func isStretch(destination, traveler catalog.BudgetTier) bool {
	return destination.Rank() == traveler.Rank()+1 && traveler.Valid()
}

// Score rates how well a destination fits a profile. Reasons are returned in
// the order the checks run; the pace check contributes points but no reason.
func Score(p Profile, d catalog.Destination) (int, []string) {
	score := 0
	reasons := []string{}

	if paceFits(p.TravelStyle, d.DurationIdeal, TripLength(p.TravelDates.Start, p.TravelDates.End)) {
		score += pacePoints
	}

	if matched := intersect(p.ClimatePreference, d.Climate); len(matched) > 0 {
		score += len(matched) * climatePoints
		reasons = append(reasons, fmt.Sprintf("Matches your climate preference for %s escapes.", join(matched)))
	}

	if matched := intersect(p.ActivityPreferences, d.ActivityHighlights); len(matched) > 0 {
		score += len(matched) * activityPoints
		reasons = append(reasons, fmt.Sprintf("Offers standout %s experiences you requested.", join(matched)))
	}

	band := BudgetBandFor(p.BudgetPerPerson)
	switch {
	case d.BudgetLevel == band:
		score += budgetMatchPoints
		reasons = append(reasons, "Aligned with the budget level you indicated.")
	case isStretch(d.BudgetLevel, band):
		score += budgetStretchPoints
		reasons = append(reasons, "Slight stretch on budget but still within a manageable range.")
	}

	for _, stay := range d.Accommodations {
		if contains(p.AccommodationStyle, stay.Style) {
			score += stylePoints
			reasons = append(reasons, fmt.Sprintf("Includes %s stays that suit your style.", stay.Style))
			break
		}
	}

	return score, reasons
}

func paceFits(pace Pace, ideal catalog.DurationRange, tripDays int) bool {
	switch pace {
	case PaceRelaxed:
		return ideal.MaxDays >= tripDays
	case PaceFast:
		return ideal.MinDays <= tripDays
	default:
		return true
	}
}

// intersect keeps the wanted values present in have, in wanted's order.
func intersect[T comparable](wanted, have []T) []T {
	var out []T
	for _, w := range wanted {
		if contains(have, w) {
			out = append(out, w)
		}
	}
	return out
}

func contains[T comparable](list []T, v T) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func join[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
