package dispatch

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/warebotics/waresim/core/model"
)

// FleetAnalysis summarizes fleet health for sizing decisions.
type FleetAnalysis struct {
	AverageBattery    float64  `json:"average_battery"`
	AverageEfficiency float64  `json:"average_efficiency"`
	Ranking           []string `json:"ranking"` // robot IDs, best first
}

// OptimalFleetSize estimates the robot count needed for the given pending
// order volume: one robot per ten orders, clamped to [2, 10].
func OptimalFleetSize(orderCount int) int {
	size := orderCount / 10
	if size < 2 {
		size = 2
	}
	if size > 10 {
		size = 10
	}
	return size
}

// AnalyzeFleet computes battery and efficiency aggregates and ranks robots
// by historical efficiency, best first. Ties keep ascending ID order.
func AnalyzeFleet(robots []model.Robot) FleetAnalysis {
	if len(robots) == 0 {
		return FleetAnalysis{}
	}
	batteries := make([]float64, len(robots))
	efficiencies := make([]float64, len(robots))
	ranked := make([]model.Robot, len(robots))
	copy(ranked, robots)
	for i, r := range robots {
		batteries[i] = r.Battery
		efficiencies[i] = r.Efficiency()
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Efficiency() > ranked[j].Efficiency()
	})
	ids := make([]string, len(ranked))
	for i, r := range ranked {
		ids[i] = r.ID
	}
	return FleetAnalysis{
		AverageBattery:    stat.Mean(batteries, nil),
		AverageEfficiency: stat.Mean(efficiencies, nil),
		Ranking:           ids,
	}
}
