package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuiltinIsValid(t *testing.T) {
	c := Builtin()
	if err := c.Validate(); err != nil {
		t.Fatalf("builtin catalog invalid: %v", err)
	}
	if c.Len() != 6 {
		t.Errorf("Len: got %d, want 6", c.Len())
	}

	wantOrder := []string{"bali", "lisbon", "banff", "kyoto", "costa-rica", "iceland"}
	for i, d := range c.All() {
		if d.ID != wantOrder[i] {
			t.Errorf("position %d: got %s, want %s", i, d.ID, wantOrder[i])
		}
	}
}

func TestFind(t *testing.T) {
	c := Builtin()

	d, err := c.Find("kyoto")
	if err != nil {
		t.Fatalf("Find kyoto: %v", err)
	}
	if d.BudgetLevel != TierLuxury {
		t.Errorf("kyoto budget: got %s, want luxury", d.BudgetLevel)
	}

	if _, err := c.Find("atlantis"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Find atlantis: got %v, want ErrNotFound", err)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	c := Builtin()
	all := c.All()
	all[0].Name = "Changed"

	d, _ := c.Find("bali")
	if d.Name != "Bali" {
		t.Errorf("catalog mutated through All(): got %q", d.Name)
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	c := New([]Destination{
		{
			ID:            "broken",
			Name:          "Broken",
			BudgetLevel:   "premium",
			DurationIdeal: DurationRange{MinDays: 9, MaxDays: 3},
			Climate:       []Climate{"arctic"},
			Accommodations: []Accommodation{
				{Name: "Shack", Style: StyleHotel, NightlyRate: 0},
			},
		},
		{ID: "broken", Name: "Again", BudgetLevel: TierBudget, DurationIdeal: DurationRange{MinDays: 1, MaxDays: 2}},
	})

	err := c.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"ideal duration", "budget level", "climate", "nightly rate", "duplicate id"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestBudgetTierRank(t *testing.T) {
	if !(TierBudget.Rank() < TierModerate.Rank() && TierModerate.Rank() < TierLuxury.Rank()) {
		t.Error("tiers are not ordered budget < moderate < luxury")
	}
	if BudgetTier("premium").Rank() != -1 {
		t.Error("unknown tier should rank -1")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "catalog.json")
	b, err := Builtin().MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(good, b, 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadFile(good)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c.Len() != 6 {
		t.Errorf("Len: got %d, want 6", c.Len())
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`[{"id":"x","name":"X","budgetLevel":"luxury","durationIdeal":{"minDays":5,"maxDays":2}}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(bad); err == nil {
		t.Error("expected error for invalid duration range")
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWizardOptionsCoverVocabularies(t *testing.T) {
	opts := WizardOptions()
	if len(opts.Climate) != len(Climates) {
		t.Errorf("climate options: got %d, want %d", len(opts.Climate), len(Climates))
	}
	if len(opts.Activities) != len(Activities) {
		t.Errorf("activity options: got %d, want %d", len(opts.Activities), len(Activities))
	}
	for _, o := range opts.Accommodations {
		if !AccommodationStyle(o.Value).Valid() {
			t.Errorf("accommodation option %q is not a known style", o.Value)
		}
	}
}
