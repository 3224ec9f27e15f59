package planner

import (
	"fmt"
	"math"
	"strings"

	"tripplanner/catalog"
)

const (
	dailySpendBuffer     = 120
	experienceCostPerPax = 180
	dailySpendShare      = 0.35
	fallbackExperiences  = 2
)

type staySelector func(p Profile, d catalog.Destination, nights int) []AccommodationItem

type experienceSelector func(p Profile, d catalog.Destination) []ExperienceItem

// Selectors are tried in order; the first non-empty result wins.
var (
	staySelectors       = []staySelector{preferredStays, allStaysOnRequest}
	experienceSelectors = []experienceSelector{preferredExperiences, openingExperiences}
)

// BuildPlan drafts a concrete trip to d for the traveler. Confidence and
// reasons are left to the caller.
func BuildPlan(p Profile, d catalog.Destination) TravelPlan {
	nights := TripLength(p.TravelDates.Start, p.TravelDates.End)
	if nights < d.DurationIdeal.MinDays {
		nights = d.DurationIdeal.MinDays
	}

	stays := selectStays(p, d, nights)
	experiences := selectExperiences(p, d)

	return TravelPlan{
		StayLength:        nights,
		Accommodations:    stays,
		Experiences:       experiences,
		Notes:             planNotes(p),
		TotalTripEstimate: estimateTotal(p, nights, stays, experiences),
	}
}

func selectStays(p Profile, d catalog.Destination, nights int) []AccommodationItem {
	for _, sel := range staySelectors {
		if items := sel(p, d, nights); len(items) > 0 {
			return items
		}
	}
	return []AccommodationItem{}
}

func selectExperiences(p Profile, d catalog.Destination) []ExperienceItem {
	for _, sel := range experienceSelectors {
		if items := sel(p, d); len(items) > 0 {
			return items
		}
	}
	return []ExperienceItem{}
}

// preferredStays holds the first stay in a preferred style and requests the rest.
func preferredStays(p Profile, d catalog.Destination, nights int) []AccommodationItem {
	var items []AccommodationItem
	for _, stay := range d.Accommodations {
		if !contains(p.AccommodationStyle, stay.Style) {
			continue
		}
		status := StatusRequested
		if len(items) == 0 {
			status = StatusReserved
		}
		items = append(items, stayItem(stay, nights, p.TravelerCount, status))
	}
	return items
}

func allStaysOnRequest(p Profile, d catalog.Destination, nights int) []AccommodationItem {
	items := make([]AccommodationItem, 0, len(d.Accommodations))
	for _, stay := range d.Accommodations {
		items = append(items, stayItem(stay, nights, p.TravelerCount, StatusRequested))
	}
	return items
}

func stayItem(stay catalog.Accommodation, nights, travelers int, status Status) AccommodationItem {
	return AccommodationItem{
		Name:              stay.Name,
		Style:             stay.Style,
		TotalCostEstimate: stay.NightlyRate * float64(nights) * float64(travelers),
		Blurb:             stay.Blurb,
		Status:            status,
	}
}

func preferredExperiences(p Profile, d catalog.Destination) []ExperienceItem {
	var items []ExperienceItem
	for _, exp := range d.Experiences {
		if contains(p.ActivityPreferences, exp.Category) {
			items = append(items, ExperienceItem{
				Name:    exp.Name,
				Day:     len(items) + 1,
				Summary: exp.Summary,
				Status:  StatusReserved,
			})
		}
	}
	return items
}

func openingExperiences(_ Profile, d catalog.Destination) []ExperienceItem {
	n := min(fallbackExperiences, len(d.Experiences))
	items := make([]ExperienceItem, 0, n)
	for i, exp := range d.Experiences[:n] {
		items = append(items, ExperienceItem{
			Name:    exp.Name,
			Day:     i + 1,
			Summary: exp.Summary,
			Status:  StatusRequested,
		})
	}
	return items
}

func planNotes(p Profile) []string {
	notes := []string{
		fmt.Sprintf("Flights from %s will be monitored for best fares.", p.DepartureCity),
		"Transfers and daily support arranged by the on-ground concierge partner.",
	}
	if strings.TrimSpace(p.SpecialNotes) != "" {
		notes = append(notes, p.SpecialNotes)
	}
	return notes
}

// estimateTotal charges the first stay line only, plus a flat rate for each
// reserved experience and a share of the daily budget for incidentals.
func estimateTotal(p Profile, nights int, stays []AccommodationItem, experiences []ExperienceItem) int {
	travelers := float64(p.TravelerCount)

	var stay float64
	if len(stays) > 0 {
		stay = stays[0].TotalCostEstimate
	}

	reserved := 0
	for _, e := range experiences {
		if e.Status == StatusReserved {
			reserved++
		}
	}
	activities := float64(reserved*experienceCostPerPax) * travelers

	daily := (p.BudgetPerPerson + dailySpendBuffer) * float64(nights) * travelers * dailySpendShare

	return int(math.Round(stay + activities + daily))
}
