package dispatch

import (
	"sort"

	"github.com/warebotics/waresim/core/model"
)

// SequenceScore rates how soon an order should be processed. Priority
// dominates, order value adds up to 50 points, and simpler orders (fewer
// lines) edge out complex ones.
func SequenceScore(o model.Order) float64 {
	score := 60.0
	switch o.Priority {
	case model.PriorityUrgent:
		score = 100
	case model.PriorityHigh:
		score = 80
	case model.PriorityNormal:
		score = 60
	case model.PriorityLow:
		score = 40
	}
	value := o.TotalValue / 100
	if value > 50 {
		value = 50
	}
	score += value
	if complexity := 50 - float64(len(o.Lines))*5; complexity > 0 {
		score += complexity
	}
	return score
}

// Sequence returns the orders sorted by descending sequence score. The
// sort is stable so equally scored orders keep their arrival (FIFO) order.
func Sequence(orders []model.Order) []model.Order {
	out := make([]model.Order, len(orders))
	copy(out, orders)
	sort.SliceStable(out, func(i, j int) bool {
		return SequenceScore(out[i]) > SequenceScore(out[j])
	})
	return out
}
