package planner

import (
	"sort"

	"tripplanner/catalog"
)

const ExploratoryReason = "Curated as an exploratory option based on travel industry popularity."

// Options tunes how many proposals come back and how the exploratory
// fallback is presented.
type Options struct {
	MaxProposals       int
	FallbackCount      int
	FallbackConfidence int
}

func DefaultOptions() Options {
	return Options{
		MaxProposals:       3,
		FallbackCount:      2,
		FallbackConfidence: 45,
	}
}

// Strategy names reported by RecommendWithStrategy.
const (
	StrategyRanked      = "ranked"
	StrategyExploratory = "exploratory"
)

type proposalStrategy struct {
	name string
	run  func(pl *Planner, p Profile) []ProposedBooking
}

var proposalStrategies = []proposalStrategy{
	{StrategyRanked, (*Planner).ranked},
	{StrategyExploratory, (*Planner).exploratory},
}

// Planner turns a traveler profile into ranked proposals over a fixed
// catalog. It holds no per-request state and is safe for concurrent use.
type Planner struct {
	catalog *catalog.Catalog
	opts    Options
}

func New(c *catalog.Catalog, opts Options) *Planner {
	def := DefaultOptions()
	if opts.MaxProposals <= 0 {
		opts.MaxProposals = def.MaxProposals
	}
	if opts.FallbackCount <= 0 {
		opts.FallbackCount = def.FallbackCount
	}
	if opts.FallbackConfidence <= 0 {
		opts.FallbackConfidence = def.FallbackConfidence
	}
	return &Planner{catalog: c, opts: opts}
}

func (pl *Planner) Catalog() *catalog.Catalog { return pl.catalog }

// Recommend returns at most MaxProposals bookings sorted by confidence. When
// nothing scores above zero the first catalog entries are offered instead.
func (pl *Planner) Recommend(p Profile) []ProposedBooking {
	bookings, _ := pl.RecommendWithStrategy(p)
	return bookings
}

// RecommendWithStrategy is Recommend plus the name of the strategy that
// produced the result.
func (pl *Planner) RecommendWithStrategy(p Profile) ([]ProposedBooking, string) {
	for _, s := range proposalStrategies {
		if bookings := s.run(pl, p); len(bookings) > 0 {
			return bookings, s.name
		}
	}
	return []ProposedBooking{}, ""
}

func (pl *Planner) ranked(p Profile) []ProposedBooking {
	var out []ProposedBooking
	for _, d := range pl.catalog.All() {
		score, reasons := Score(p, d)
		confidence := min(100, score)
		if confidence <= 0 {
			continue
		}
		out = append(out, ProposedBooking{
			Destination:    d,
			Confidence:     confidence,
			MatchedReasons: reasons,
			TravelPlan:     BuildPlan(p, d),
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Confidence > out[j].Confidence })
	if len(out) > pl.opts.MaxProposals {
		out = out[:pl.opts.MaxProposals]
	}
	return out
}

func (pl *Planner) exploratory(p Profile) []ProposedBooking {
	all := pl.catalog.All()
	n := min(pl.opts.FallbackCount, len(all))

	out := make([]ProposedBooking, 0, n)
	for _, d := range all[:n] {
		out = append(out, ProposedBooking{
			Destination:    d,
			Confidence:     pl.opts.FallbackConfidence,
			MatchedReasons: []string{ExploratoryReason},
			TravelPlan:     BuildPlan(p, d),
		})
	}
	return out
}
