// Package layout scores warehouse layouts and repositions shelves so that
// high-demand categories sit near the primary entry point. The optimizer
// is a deterministic frequency-weighted greedy reorder; the per-iteration
// reward trace exists for observability, not because anything is learned.
package layout

import "github.com/warebotics/waresim/core/model"

// CategoryShelf is a shelf slot tagged with the product category stored on
// it.
type CategoryShelf struct {
	Position model.Position `json:"position"`
	Category string         `json:"category"`
}

// Layout is a snapshot of shelf placement plus the fixed reference points
// used for scoring.
type Layout struct {
	Shelves         []CategoryShelf  `json:"shelves"`
	EntryPoints     []model.Position `json:"entry_points"`
	PackingStations []model.Position `json:"packing_stations"`
	GridSize        int              `json:"grid_size"`
}

// Weight returns the normalized demand weight for a category: the table
// value divided by 100, with unknown categories defaulting to weight 1
// before normalization.
func Weight(freq map[string]float64, category string) float64 {
	w, ok := freq[category]
	if !ok {
		w = 1
	}
	return w / 100
}

func nearestDistance(pos model.Position, points []model.Position) int {
	best := model.ManhattanDistance(pos, points[0])
	for _, p := range points[1:] {
		if d := model.ManhattanDistance(pos, p); d < best {
			best = d
		}
	}
	return best
}
