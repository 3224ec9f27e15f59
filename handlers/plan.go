package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"tripplanner/planner"
	"tripplanner/services"
)

const missingFieldsMessage = "Missing required fields. Please complete every step before submitting."

type PlanResponse struct {
	RequestID string                    `json:"requestId"`
	Proposals []planner.ProposedBooking `json:"proposals"`
	Timestamp string                    `json:"timestamp"`
}

// Plan validates a traveler profile and returns ranked proposals.
func (h *Handler) Plan(c *gin.Context) {
	profile, ok := bindProfile(c)
	if !ok {
		return
	}

	id := c.GetString(requestIDKey)
	proposals, strategy := h.planner.RecommendWithStrategy(profile)
	log.Printf("✅ Plan %s: %d proposal(s) via %s strategy", id, len(proposals), strategy)

	c.JSON(http.StatusOK, PlanResponse{
		RequestID: id,
		Proposals: proposals,
		Timestamp: h.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	})
}

// PlanPDF runs the same recommendation and returns it as a PDF attachment.
// Nothing is stored; the document is rendered per request.
func (h *Handler) PlanPDF(c *gin.Context) {
	profile, ok := bindProfile(c)
	if !ok {
		return
	}

	id := c.GetString(requestIDKey)
	proposals := h.planner.Recommend(profile)

	pdfBytes, err := services.GeneratePDFBytes(services.PDFData{
		RequestID:   id,
		Profile:     profile,
		Proposals:   proposals,
		GeneratedAt: h.now(),
	})
	if err != nil {
		log.Printf("❌ PDF generation failed for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}

	log.Printf("✅ PDF generated for plan %s (%d bytes)", id, len(pdfBytes))

	c.Header("Content-Disposition", "attachment; filename=trip-proposals-"+id+".pdf")
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func bindProfile(c *gin.Context) (planner.Profile, bool) {
	var profile planner.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		log.Printf("⚠️  Rejected plan request %s: %v", c.GetString(requestIDKey), err)
		c.JSON(http.StatusBadRequest, gin.H{"error": validationMessage(err)})
		return planner.Profile{}, false
	}
	return profile, true
}

// validationMessage names the offending fields using their JSON spelling.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return missingFieldsMessage
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, jsonPath(fe.Namespace()))
	}
	return missingFieldsMessage + " (" + strings.Join(fields, ", ") + ")"
}

// jsonPath turns "Profile.TravelDates.Start" into "travelDates.start".
func jsonPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		if p == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(p)
		parts[i] = string(unicode.ToLower(r)) + p[size:]
	}
	return strings.Join(parts, ".")
}
