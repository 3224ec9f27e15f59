package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"tripplanner/catalog"
	"tripplanner/planner"
)

const validProfile = `{
	"fullName": "Ada Traveler",
	"email": "ada@example.com",
	"phone": "+1 555 0100",
	"departureCity": "Chicago",
	"travelDates": {"start": "2025-05-01", "end": "2025-05-09"},
	"travelerCount": 2,
	"budgetPerPerson": 300,
	"travelStyle": "balanced",
	"climatePreference": ["tropical"],
	"activityPreferences": ["adventure", "food"],
	"accommodationStyle": ["resort", "eco"],
	"specialNotes": "Anniversary trip"
}`

type fakeStore struct{ err error }

func (f fakeStore) Ping() error { return f.err }

func newTestRouter(store Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(planner.New(catalog.Builtin(), planner.DefaultOptions()), "builtin", store)
	h.now = func() time.Time { return time.Date(2025, 4, 2, 9, 30, 0, 0, time.UTC) }
	return NewRouter(h, []string{"http://localhost:3000"})
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPlanReturnsProposals(t *testing.T) {
	w := do(newTestRouter(nil), http.MethodPost, "/api/plan", validProfile)
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body %s)", w.Code, w.Body.String())
	}

	var resp PlanResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Timestamp != "2025-04-02T09:30:00.000Z" {
		t.Errorf("timestamp: got %q", resp.Timestamp)
	}
	if resp.RequestID == "" || resp.RequestID != w.Header().Get("X-Request-ID") {
		t.Errorf("requestId %q does not match header %q", resp.RequestID, w.Header().Get("X-Request-ID"))
	}
	if len(resp.Proposals) != 3 {
		t.Fatalf("proposals: got %d, want 3", len(resp.Proposals))
	}

	top := resp.Proposals[0]
	if top.Destination.ID != "bali" || top.Confidence != 47 {
		t.Errorf("top proposal: got %s/%d, want bali/47", top.Destination.ID, top.Confidence)
	}
	if top.Destination.Accommodations[0].NightlyRate != 320 {
		t.Error("destination should be embedded in full")
	}
	notes := top.TravelPlan.Notes
	if notes[len(notes)-1] != "Anniversary trip" {
		t.Errorf("special notes not appended: %q", notes)
	}
}

func TestPlanKeepsInboundRequestID(t *testing.T) {
	r := newTestRouter(nil)
	req := httptest.NewRequest(http.MethodPost, "/api/plan", strings.NewReader(validProfile))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", "6f1c2b8e-4a8e-4c1a-9a51-2d0f0c7b6f10")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp PlanResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.RequestID != "6f1c2b8e-4a8e-4c1a-9a51-2d0f0c7b6f10" {
		t.Errorf("requestId: got %q", resp.RequestID)
	}
}

func TestPlanRejectsInvalidProfiles(t *testing.T) {
	mutate := func(field string, value any) string {
		var m map[string]any
		_ = json.Unmarshal([]byte(validProfile), &m)
		if value == nil {
			delete(m, field)
		} else {
			m[field] = value
		}
		b, _ := json.Marshal(m)
		return string(b)
	}

	cases := []struct {
		name string
		body string
		want string
	}{
		{"missing name", mutate("fullName", nil), "fullName"},
		{"empty email", mutate("email", ""), "email"},
		{"missing end date", mutate("travelDates", map[string]string{"start": "2025-05-01"}), "travelDates.end"},
		{"zero travelers", mutate("travelerCount", 0), "travelerCount"},
		{"budget as string", mutate("budgetPerPerson", "300"), ""},
		{"unknown pace", mutate("travelStyle", "leisurely"), "travelStyle"},
		{"climate not an array", mutate("climatePreference", "tropical"), ""},
		{"missing activities", mutate("activityPreferences", nil), "activityPreferences"},
		{"unknown style", mutate("accommodationStyle", []string{"castle"}), "accommodationStyle[0]"},
		{"not json", "{", ""},
	}

	r := newTestRouter(nil)
	for _, tc := range cases {
		w := do(r, http.MethodPost, "/api/plan", tc.body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status got %d, want 400", tc.name, w.Code)
			continue
		}
		var resp map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Errorf("%s: decode: %v", tc.name, err)
			continue
		}
		if len(resp) != 1 || !strings.HasPrefix(resp["error"], missingFieldsMessage) {
			t.Errorf("%s: unexpected body %v", tc.name, resp)
		}
		if tc.want != "" && !strings.Contains(resp["error"], tc.want) {
			t.Errorf("%s: error %q does not name %q", tc.name, resp["error"], tc.want)
		}
	}
}

func TestPlanAcceptsEmptyPreferences(t *testing.T) {
	body := `{
		"fullName": "Sam", "email": "sam@example.com", "phone": "1", "departureCity": "Austin",
		"travelDates": {"start": "2025-05-01", "end": "2025-05-01"},
		"travelerCount": 1, "budgetPerPerson": 250, "travelStyle": "relaxed",
		"climatePreference": [], "activityPreferences": [], "accommodationStyle": []
	}`
	w := do(newTestRouter(nil), http.MethodPost, "/api/plan", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	var resp PlanResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Proposals) == 0 {
		t.Error("expected at least one proposal")
	}
	for _, p := range resp.Proposals {
		if p.TravelPlan.StayLength < 5 {
			t.Errorf("%s: stay %d shorter than default trip length", p.Destination.ID, p.TravelPlan.StayLength)
		}
	}
}

func TestPlanPDF(t *testing.T) {
	w := do(newTestRouter(nil), http.MethodPost, "/api/plan/pdf", validProfile)
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type: got %q", ct)
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), "trip-proposals-") {
		t.Errorf("Content-Disposition: got %q", w.Header().Get("Content-Disposition"))
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")) {
		t.Error("body is not a PDF")
	}

	if w := do(newTestRouter(nil), http.MethodPost, "/api/plan/pdf", `{}`); w.Code != http.StatusBadRequest {
		t.Errorf("invalid profile: got %d, want 400", w.Code)
	}
}

func TestDestinations(t *testing.T) {
	r := newTestRouter(nil)

	w := do(r, http.MethodGet, "/api/destinations", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list status: got %d", w.Code)
	}
	var list struct {
		Destinations []catalog.Destination `json:"destinations"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list.Destinations) != 6 || list.Destinations[0].ID != "bali" {
		t.Errorf("list: got %d destinations", len(list.Destinations))
	}

	w = do(r, http.MethodGet, "/api/destinations/iceland", "")
	if w.Code != http.StatusOK {
		t.Fatalf("get status: got %d", w.Code)
	}
	var d catalog.Destination
	if err := json.Unmarshal(w.Body.Bytes(), &d); err != nil {
		t.Fatalf("decode destination: %v", err)
	}
	if d.Name != "South Coast Iceland" {
		t.Errorf("name: got %q", d.Name)
	}

	if w := do(r, http.MethodGet, "/api/destinations/atlantis", ""); w.Code != http.StatusNotFound {
		t.Errorf("unknown id: got %d, want 404", w.Code)
	}
}

func TestOptions(t *testing.T) {
	w := do(newTestRouter(nil), http.MethodGet, "/api/options", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d", w.Code)
	}
	var opts catalog.Options
	if err := json.Unmarshal(w.Body.Bytes(), &opts); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if opts.Climate[0].Label != "Tropical & Humid" || len(opts.Pace) != 3 {
		t.Errorf("unexpected options: %+v", opts)
	}
}

func TestHealth(t *testing.T) {
	cases := []struct {
		name  string
		store Pinger
		want  string
	}{
		{"no database", nil, "not configured"},
		{"healthy database", fakeStore{}, "ok"},
		{"broken database", fakeStore{err: errors.New("connection refused")}, "error: connection refused"},
	}
	for _, tc := range cases {
		w := do(newTestRouter(tc.store), http.MethodGet, "/api/health", "")
		var resp struct {
			Status   string `json:"status"`
			Database string `json:"database"`
			Catalog  struct {
				Source       string `json:"source"`
				Destinations int    `json:"destinations"`
			} `json:"catalog"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s: decode: %v", tc.name, err)
		}
		if resp.Database != tc.want {
			t.Errorf("%s: database got %q, want %q", tc.name, resp.Database, tc.want)
		}
		if resp.Catalog.Destinations != 6 || resp.Catalog.Source != "builtin" {
			t.Errorf("%s: catalog got %+v", tc.name, resp.Catalog)
		}
	}
}

func TestJSONPath(t *testing.T) {
	cases := map[string]string{
		"Profile.TravelDates.Start":     "travelDates.start",
		"Profile.AccommodationStyle[0]": "accommodationStyle[0]",
		"Email":                         "email",
	}
	for in, want := range cases {
		if got := jsonPath(in); got != want {
			t.Errorf("jsonPath(%q): got %q, want %q", in, got, want)
		}
	}
}
