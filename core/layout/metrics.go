package layout

import "gonum.org/v1/gonum/stat"

// Metrics summarizes how well a layout serves the demand profile.
type Metrics struct {
	Efficiency     float64 `json:"efficiency"`
	DistanceScore  float64 `json:"distance_score"`
	FrequencyScore float64 `json:"frequency_score"`
	ShelfCount     int     `json:"shelf_count"`
}

// CalculateMetrics scores a layout. The frequency score weights each shelf
// by its category demand, the distance score ignores demand, and the
// combined efficiency leans on the frequency-weighted view.
//
// A layout with no shelves, entry points or packing stations has no
// well-defined score and yields zeroed metrics rather than an error.
func CalculateMetrics(l Layout, freq map[string]float64) Metrics {
	if len(l.Shelves) == 0 || len(l.EntryPoints) == 0 || len(l.PackingStations) == 0 {
		return Metrics{ShelfCount: len(l.Shelves)}
	}
	weighted := make([]float64, len(l.Shelves))
	raw := make([]float64, len(l.Shelves))
	for i, s := range l.Shelves {
		d := nearestDistance(s.Position, l.EntryPoints) + nearestDistance(s.Position, l.PackingStations)
		raw[i] = 100 / float64(d+1)
		weighted[i] = Weight(freq, s.Category) * raw[i]
	}
	freqScore := stat.Mean(weighted, nil)
	distScore := stat.Mean(raw, nil)
	return Metrics{
		Efficiency:     0.7*freqScore + 0.3*distScore,
		DistanceScore:  distScore,
		FrequencyScore: freqScore,
		ShelfCount:     len(l.Shelves),
	}
}

// reward is the per-iteration observability sample: the frequency-weighted
// mean proximity score of the current arrangement.
func reward(l Layout, freq map[string]float64) float64 {
	if len(l.Shelves) == 0 || len(l.EntryPoints) == 0 || len(l.PackingStations) == 0 {
		return 0
	}
	samples := make([]float64, len(l.Shelves))
	for i, s := range l.Shelves {
		d := nearestDistance(s.Position, l.EntryPoints) + nearestDistance(s.Position, l.PackingStations)
		samples[i] = Weight(freq, s.Category) * 100 / float64(d+1)
	}
	return stat.Mean(samples, nil)
}
