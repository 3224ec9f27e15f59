package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

var ErrNotFound = errors.New("destination not found")

// Catalog is an ordered, read-only set of destinations. It is safe to share
// between goroutines; nothing in this package mutates it after New.
type Catalog struct {
	destinations []Destination
	index        map[string]int
}

func New(destinations []Destination) *Catalog {
	c := &Catalog{
		destinations: make([]Destination, len(destinations)),
		index:        make(map[string]int, len(destinations)),
	}
	copy(c.destinations, destinations)
	for i, d := range c.destinations {
		if _, dup := c.index[d.ID]; !dup {
			c.index[d.ID] = i
		}
	}
	return c
}

// All returns the destinations in catalog order.
func (c *Catalog) All() []Destination {
	out := make([]Destination, len(c.destinations))
	copy(out, c.destinations)
	return out
}

func (c *Catalog) Len() int { return len(c.destinations) }

func (c *Catalog) Find(id string) (Destination, error) {
	i, ok := c.index[id]
	if !ok {
		return Destination{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return c.destinations[i], nil
}

// Validate checks every destination and returns all problems joined together.
func (c *Catalog) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(c.destinations))

	for i, d := range c.destinations {
		where := fmt.Sprintf("destination %d (%s)", i, d.ID)
		if d.ID == "" {
			errs = append(errs, fmt.Errorf("%s: missing id", where))
		} else if seen[d.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate id", where))
		}
		seen[d.ID] = true

		if d.Name == "" {
			errs = append(errs, fmt.Errorf("%s: missing name", where))
		}
		if d.DurationIdeal.MinDays <= 0 || d.DurationIdeal.MinDays > d.DurationIdeal.MaxDays {
			errs = append(errs, fmt.Errorf("%s: ideal duration %d-%d days is invalid",
				where, d.DurationIdeal.MinDays, d.DurationIdeal.MaxDays))
		}
		if !d.BudgetLevel.Valid() {
			errs = append(errs, fmt.Errorf("%s: unknown budget level %q", where, d.BudgetLevel))
		}
		for _, cl := range d.Climate {
			if !cl.Valid() {
				errs = append(errs, fmt.Errorf("%s: unknown climate %q", where, cl))
			}
		}
		for _, a := range d.ActivityHighlights {
			if !a.Valid() {
				errs = append(errs, fmt.Errorf("%s: unknown activity %q", where, a))
			}
		}
		for _, stay := range d.Accommodations {
			if !stay.Style.Valid() {
				errs = append(errs, fmt.Errorf("%s: %s has unknown style %q", where, stay.Name, stay.Style))
			}
			if stay.NightlyRate <= 0 {
				errs = append(errs, fmt.Errorf("%s: %s nightly rate must be positive", where, stay.Name))
			}
		}
		for _, exp := range d.Experiences {
			if !exp.Category.Valid() {
				errs = append(errs, fmt.Errorf("%s: %s has unknown category %q", where, exp.Name, exp.Category))
			}
		}
	}

	return errors.Join(errs...)
}

func (c *Catalog) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.destinations)
}

// LoadFile reads a JSON array of destinations and validates it.
func LoadFile(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var destinations []Destination
	if err := json.Unmarshal(b, &destinations); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}

	c := New(destinations)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	return c, nil
}
