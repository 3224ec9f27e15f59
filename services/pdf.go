package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"tripplanner/planner"
)

type PDFData struct {
	RequestID   string
	Profile     planner.Profile
	Proposals   []planner.ProposedBooking
	GeneratedAt time.Time
}

// GeneratePDFBytes renders the proposals as an A4 brochure and returns raw bytes.
func GeneratePDFBytes(data PDFData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 25)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-18)
		pdf.SetDrawColor(200, 200, 200)
		pdf.SetLineWidth(0.3)
		pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(150, 150, 150)
		pdf.CellFormat(0, 8,
			tr(fmt.Sprintf("Trip proposal %s · Not a booking confirmation · Page %d", data.RequestID, pdf.PageNo())),
			"", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	// ── Header Bar ───────────────────────────────────────────
	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "Trip Planner", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(212, 168, 67)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "Curated destination proposals", "", 1, "L", false, 0, "")

	pdf.SetY(35)

	// ── Disclaimer ───────────────────────────────────────────
	pdf.SetFillColor(255, 248, 225)
	pdf.SetDrawColor(212, 168, 67)
	pdf.SetTextColor(130, 90, 20)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetLineWidth(0.4)
	y := pdf.GetY()
	pdf.Rect(20, y, 170, 12, "FD")
	pdf.SetXY(23, y+2)
	pdf.MultiCell(164, 4,
		"This is NOT a booking confirmation. Costs are illustrative estimates; reserved items are staged holds pending concierge confirmation.",
		"", "C", false)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.2)
	pdf.Ln(6)

	// ── Section Helpers ──────────────────────────────────────
	sectionHeader := func(title string) {
		pdf.SetFillColor(13, 24, 37)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+tr(title), "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, tr(label), "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, tr(value), "", 1, "L", false, 0, "")
	}

	bullet := func(text string) {
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(40, 40, 40)
		pdf.SetX(24)
		pdf.MultiCell(166, 5, tr("- "+text), "", "L", false)
	}

	// ── Traveler Info ─────────────────────────────────────────
	p := data.Profile
	sectionHeader("Traveler")
	name := p.FullName
	if name == "" {
		name = "Guest Traveler"
	}
	row("Name", name)
	row("Departing from", p.DepartureCity)
	row("Dates", fmt.Sprintf("%s to %s", fmtDateReadable(p.TravelDates.Start), fmtDateReadable(p.TravelDates.End)))
	row("Party", fmt.Sprintf("%d traveler(s), %s pace", p.TravelerCount, p.TravelStyle))
	row("Budget", fmt.Sprintf("%.0f per person", p.BudgetPerPerson))
	row("Generated", data.GeneratedAt.UTC().Format("02 Jan 2006, 15:04 UTC"))
	pdf.Ln(4)

	// ── Proposals ─────────────────────────────────────────────
	for i, b := range data.Proposals {
		d := b.Destination
		plan := b.TravelPlan

		sectionHeader(fmt.Sprintf("%d. %s, %s (confidence %d)", i+1, d.Name, d.Country, b.Confidence))
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(80, 80, 80)
		pdf.MultiCell(170, 5, tr(d.Description), "", "L", false)
		pdf.Ln(1)

		row("Stay length", fmt.Sprintf("%d nights", plan.StayLength))
		row("Best seasons", strings.Join(d.IdealSeasons, ", "))

		for _, reason := range b.MatchedReasons {
			bullet(reason)
		}
		pdf.Ln(1)

		for _, a := range plan.Accommodations {
			row(fmt.Sprintf("Stay (%s)", a.Status), fmt.Sprintf("%s · %.0f", a.Name, a.TotalCostEstimate))
		}
		for _, e := range plan.Experiences {
			row(fmt.Sprintf("Day %d (%s)", e.Day, e.Status), e.Name)
		}
		for _, note := range plan.Notes {
			bullet(note)
		}

		pdf.SetFillColor(212, 168, 67)
		pdf.SetTextColor(13, 24, 37)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(55, 8, "TOTAL ESTIMATE", "", 0, "L", true, 0, "")
		pdf.CellFormat(115, 8, fmt.Sprintf("%d", plan.TotalTripEstimate), "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(5)
	}

	// ── Write to buffer ───────────────────────────────────────
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}

func fmtDateReadable(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("02 Jan 2006 (Mon)")
}
