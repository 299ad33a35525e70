package route

import "github.com/warebotics/waresim/core/model"

// Time and energy cost per traversed cell. These are fixed characteristics
// of the simulated robots, not tunables.
const (
	timePerCell   = 2.0 // time units
	energyPerCell = 0.5 // battery percent
)

// Metrics summarizes a planned route. All values derive from the step
// count alone and are never negative.
type Metrics struct {
	TotalDistance     int     `json:"total_distance"`
	EstimatedTime     float64 `json:"estimated_time"`
	EnergyConsumption float64 `json:"energy_consumption"`
	OptimizationScore float64 `json:"optimization_score"`
}

// ComputeMetrics derives the distance, time, energy and score estimates for
// a route. Shorter routes score higher; the score floors at zero.
func ComputeMetrics(r model.Route) Metrics {
	distance := len(r)
	score := 100 - float64(distance)*2
	if score < 0 {
		score = 0
	}
	return Metrics{
		TotalDistance:     distance,
		EstimatedTime:     float64(distance) * timePerCell,
		EnergyConsumption: float64(distance) * energyPerCell,
		OptimizationScore: score,
	}
}
