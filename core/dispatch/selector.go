// Package dispatch binds pending orders to idle robots: it scores the
// fleet, plans the pick route and reports the outcome as a typed result.
package dispatch

import "github.com/warebotics/waresim/core/model"

// Selector scores idle robots against an order's first pickup location
// using a weighted combination of proximity, battery level and historical
// efficiency.
type Selector struct {
	DistanceWeight   float64
	BatteryWeight    float64
	EfficiencyWeight float64
	// MinBattery is the hard dispatch threshold: at or below it a robot is
	// never selected, so it can always finish at least a minimal trip
	// before critical drain.
	MinBattery float64
}

// NewSelector returns a selector with the standard weights.
func NewSelector() Selector {
	return Selector{
		DistanceWeight:   0.4,
		BatteryWeight:    0.4,
		EfficiencyWeight: 0.2,
		MinBattery:       20,
	}
}

// Eligible reports whether a robot may be considered for dispatch at all.
func (s Selector) Eligible(r model.Robot) bool {
	return r.Status == model.RobotIdle && r.Battery > s.MinBattery
}

// Score computes the dispatch score of a robot for the given target.
// Closer, fuller and historically more efficient robots score higher.
func (s Selector) Score(r model.Robot, target model.Position) float64 {
	dist := float64(model.ManhattanDistance(r.Position, target))
	return s.DistanceWeight/(dist+1) +
		s.BatteryWeight*(r.Battery/100) +
		s.EfficiencyWeight*r.Efficiency()
}

// Select returns the eligible candidate with the highest score. Ties go to
// the first candidate encountered, so callers must pass candidates in a
// canonical order (the fleet store returns robots sorted by ID). The
// second return is false when no robot is eligible.
func (s Selector) Select(candidates []model.Robot, target model.Position) (model.Robot, bool) {
	var (
		best      model.Robot
		bestScore float64
		found     bool
	)
	for _, r := range candidates {
		if !s.Eligible(r) {
			continue
		}
		score := s.Score(r, target)
		if !found || score > bestScore {
			best, bestScore, found = r, score, true
		}
	}
	return best, found
}
