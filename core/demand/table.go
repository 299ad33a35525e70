// Package demand holds the historical order-frequency table: relative
// demand share per product category, plus the seasonal and time-of-day
// multipliers derived from it. The table biases both order generation in
// the simulator and shelf placement in the layout optimizer.
package demand

import (
	"strconv"
	"strings"
	"time"
)

// Category describes the demand profile of one product category.
type Category struct {
	// Frequency is the relative demand weight. Weights do not need to sum
	// to 100; they are normalized where percentages are required.
	Frequency       float64  `json:"frequency"`
	PopularProducts []string `json:"popular_products"`
	PeakHours       []string `json:"peak_hours,omitempty"` // "HH:MM"
}

// Table maps categories to demand data plus season multipliers.
type Table struct {
	Categories map[string]Category `json:"order_frequency"`
	Seasonal   map[string]float64  `json:"seasonal_multipliers,omitempty"`
}

// DefaultTable returns the built-in demand profile used when no data file
// is configured.
func DefaultTable() Table {
	return Table{
		Categories: map[string]Category{
			"mobile-phones":          {Frequency: 35, PopularProducts: []string{"iPhone", "Samsung", "OnePlus"}},
			"laptops-tablets":        {Frequency: 25, PopularProducts: []string{"MacBook", "Dell", "iPad"}},
			"packaged-food":          {Frequency: 50, PopularProducts: []string{"Chips", "Biscuits", "Snacks"}},
			"headphones-accessories": {Frequency: 20, PopularProducts: []string{"AirPods", "Sony", "Cases"}},
			"mens-clothing":          {Frequency: 15, PopularProducts: []string{"T-shirts", "Jeans", "Shirts"}},
			"toys-games":             {Frequency: 12, PopularProducts: []string{"Toys", "Games", "Puzzles"}},
			"pet-supplies":           {Frequency: 8, PopularProducts: []string{"Pet Food", "Toys", "Beds"}},
			"kitchen-appliances":     {Frequency: 5, PopularProducts: []string{"Microwave", "Blender", "Toaster"}},
		},
	}
}

// Weights returns the raw frequency weight per category, the shape the
// layout optimizer consumes.
func (t Table) Weights() map[string]float64 {
	out := make(map[string]float64, len(t.Categories))
	for name, c := range t.Categories {
		out[name] = c.Frequency
	}
	return out
}

// Frequencies returns each category's demand share as a percentage of the
// total.
func (t Table) Frequencies() map[string]float64 {
	total := 0.0
	for _, c := range t.Categories {
		total += c.Frequency
	}
	out := make(map[string]float64, len(t.Categories))
	if total == 0 {
		return out
	}
	for name, c := range t.Categories {
		out[name] = c.Frequency / total * 100
	}
	return out
}

// SeasonalMultiplier returns the demand multiplier for the month of ts.
// December through February count as the holiday season, August and
// September as back-to-school, June and July as summer sales.
func (t Table) SeasonalMultiplier(ts time.Time) float64 {
	key := "regular_season"
	switch ts.Month() {
	case time.December, time.January, time.February:
		key = "holiday_season"
	case time.August, time.September:
		key = "back_to_school"
	case time.June, time.July:
		key = "summer_sales"
	}
	if m, ok := t.Seasonal[key]; ok {
		return m
	}
	return 1.0
}

// DemandScore combines a category's base frequency with the seasonal
// multiplier for ts and a 1.3x boost when the hour falls within two hours
// of one of the category's peak hours. Unknown categories score 1.
func (t Table) DemandScore(category string, ts time.Time) float64 {
	c, ok := t.Categories[category]
	if !ok {
		return 1.0
	}
	score := c.Frequency * t.SeasonalMultiplier(ts)
	hour := ts.Hour()
	for _, peak := range c.PeakHours {
		ph, ok := parseHour(peak)
		if !ok {
			continue
		}
		diff := hour - ph
		if diff < 0 {
			diff = -diff
		}
		if diff <= 2 {
			score *= 1.3
			break
		}
	}
	return score
}

func parseHour(s string) (int, bool) {
	h, _, found := strings.Cut(s, ":")
	if !found {
		h = s
	}
	n, err := strconv.Atoi(h)
	if err != nil || n < 0 || n > 23 {
		return 0, false
	}
	return n, true
}
