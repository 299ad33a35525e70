package layout

import (
	"fmt"
	"sort"

	"github.com/warebotics/waresim/core/logger"
	"github.com/warebotics/waresim/core/model"
)

// Optimizer repositions shelves to minimize frequency-weighted travel
// distance from the primary entry point.
type Optimizer struct {
	log logger.Logger
}

// NewOptimizer creates an Optimizer.
func NewOptimizer(log logger.Logger) *Optimizer {
	return &Optimizer{log: log}
}

// OptimizeResult carries the revised layout, the before/after metrics, the
// per-iteration reward trace and human-readable insights.
type OptimizeResult struct {
	Layout      Layout    `json:"optimized_layout"`
	Original    Metrics   `json:"original_metrics"`
	Optimized   Metrics   `json:"optimized_metrics"`
	RewardTrace []float64 `json:"reward_trace"`
	Insights    []string  `json:"insights"`
}

// Optimize reorders shelves so that high-score shelves (demand weight over
// distance from the primary entry) occupy the grid slots closest to that
// entry. The reorder is deterministic, so the reward trace typically
// converges after the first iteration; that is expected behavior.
//
// A layout missing entry points or packing stations cannot be scored and
// comes back unchanged with zeroed metrics.
func (o *Optimizer) Optimize(l Layout, freq map[string]float64, iterations int) OptimizeResult {
	res := OptimizeResult{Layout: l, Original: CalculateMetrics(l, freq)}
	if iterations <= 0 {
		iterations = 1
	}
	if len(l.Shelves) == 0 || len(l.EntryPoints) == 0 || len(l.PackingStations) == 0 {
		o.log.Warnf("layout optimize: missing shelves or reference points, nothing to do")
		res.Optimized = res.Original
		res.RewardTrace = make([]float64, iterations)
		return res
	}

	current := cloneLayout(l)
	for i := 0; i < iterations; i++ {
		current = o.reorder(current, freq)
		res.RewardTrace = append(res.RewardTrace, reward(current, freq))
	}

	res.Layout = current
	res.Optimized = CalculateMetrics(current, freq)
	res.Insights = insights(freq, res.Original, res.Optimized)
	o.log.Infof("layout optimized: efficiency %.2f -> %.2f over %d iterations",
		res.Original.Efficiency, res.Optimized.Efficiency, iterations)
	return res
}

// reorder sorts shelves by demand-over-distance score and walks them onto
// strided grid slots in increasing distance from the primary entry, so the
// top of the ranking lands closest.
func (o *Optimizer) reorder(l Layout, freq map[string]float64) Layout {
	entry := l.EntryPoints[0]

	ranked := make([]CategoryShelf, len(l.Shelves))
	copy(ranked, l.Shelves)
	sort.SliceStable(ranked, func(i, j int) bool {
		si := Weight(freq, ranked[i].Category) / float64(model.ManhattanDistance(ranked[i].Position, entry)+1)
		sj := Weight(freq, ranked[j].Category) / float64(model.ManhattanDistance(ranked[j].Position, entry)+1)
		return si > sj
	})

	slots := shelfSlots(l.GridSize, len(ranked), entry)
	out := cloneLayout(l)
	out.Shelves = make([]CategoryShelf, len(ranked))
	for i, s := range ranked {
		if i < len(slots) {
			s.Position = slots[i]
		}
		out.Shelves[i] = s
	}
	return out
}

// shelfSlots enumerates candidate shelf positions on a stride-2 lattice
// (stride 1 when the lattice is too small for the shelf count), ordered by
// Manhattan distance from the entry with row-major tie-breaking.
func shelfSlots(gridSize, count int, entry model.Position) []model.Position {
	for _, stride := range []int{2, 1} {
		var slots []model.Position
		for r := 0; r < gridSize; r += stride {
			for c := 0; c < gridSize; c += stride {
				slots = append(slots, model.Position{Row: r, Col: c})
			}
		}
		if len(slots) < count && stride == 2 {
			continue
		}
		sort.SliceStable(slots, func(i, j int) bool {
			return model.ManhattanDistance(slots[i], entry) < model.ManhattanDistance(slots[j], entry)
		})
		return slots
	}
	return nil
}

func insights(freq map[string]float64, before, after Metrics) []string {
	var out []string
	if top, ok := topCategory(freq); ok {
		out = append(out, fmt.Sprintf("Move %s shelves closer to the shipping area; they carry the highest demand share", top))
	}
	if after.Efficiency > before.Efficiency {
		out = append(out, fmt.Sprintf("Reordering improves layout efficiency from %.1f to %.1f", before.Efficiency, after.Efficiency))
	} else {
		out = append(out, "Current shelf arrangement already matches the demand profile")
	}
	out = append(out, "Keep cross-aisle connections clear so robots can reach reassigned shelves directly")
	return out
}

func topCategory(freq map[string]float64) (string, bool) {
	var (
		best  string
		bestW float64
		found bool
	)
	for cat, w := range freq {
		if !found || w > bestW || (w == bestW && cat < best) {
			best, bestW, found = cat, w, true
		}
	}
	return best, found
}

func cloneLayout(l Layout) Layout {
	out := l
	out.Shelves = append([]CategoryShelf(nil), l.Shelves...)
	out.EntryPoints = append([]model.Position(nil), l.EntryPoints...)
	out.PackingStations = append([]model.Position(nil), l.PackingStations...)
	return out
}
