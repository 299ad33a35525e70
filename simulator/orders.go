package simulator

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/warebotics/waresim/core/demand"
	"github.com/warebotics/waresim/core/model"
)

var customers = []string{
	"Acme Retail", "Northwind Traders", "Globex", "Initech",
	"Umbrella Logistics", "Stark Distribution",
}

// GenerateOrder produces one order whose category is drawn according to
// the demand table's frequency weights, restricted to the categories the
// warehouse actually stocks. The product is one of the category's popular
// products. Returns false when no stocked category matches the table.
func GenerateOrder(rng *rand.Rand, table demand.Table, stocked []string, now time.Time) (model.Order, bool) {
	category, ok := pickCategory(rng, table, stocked)
	if !ok {
		return model.Order{}, false
	}
	products := table.Categories[category].PopularProducts
	if len(products) == 0 {
		return model.Order{}, false
	}
	product := products[rng.Intn(len(products))]

	order := model.Order{
		ID:       uuid.NewString(),
		Customer: customers[rng.Intn(len(customers))],
		Lines: []model.OrderLine{
			{Product: product, Quantity: 1 + rng.Intn(3)},
		},
		Priority:  pickPriority(rng),
		Status:    model.OrderPending,
		CreatedAt: now,
	}
	// Occasionally bundle a second line from the same category.
	if len(products) > 1 && rng.Float64() < 0.3 {
		other := products[rng.Intn(len(products))]
		if other != product {
			order.Lines = append(order.Lines, model.OrderLine{Product: other, Quantity: 1})
		}
	}
	return order, true
}

// pickCategory draws a stocked category with probability proportional to
// its frequency weight. Stocked must be in a stable order for reproducible
// draws under a fixed seed.
func pickCategory(rng *rand.Rand, table demand.Table, stocked []string) (string, bool) {
	total := 0.0
	for _, c := range stocked {
		if cat, ok := table.Categories[c]; ok {
			total += cat.Frequency
		}
	}
	if total == 0 {
		if len(stocked) == 0 {
			return "", false
		}
		return stocked[rng.Intn(len(stocked))], true
	}
	roll := rng.Float64() * total
	for _, c := range stocked {
		cat, ok := table.Categories[c]
		if !ok {
			continue
		}
		roll -= cat.Frequency
		if roll < 0 {
			return c, true
		}
	}
	return stocked[len(stocked)-1], true
}

func pickPriority(rng *rand.Rand) model.OrderPriority {
	switch roll := rng.Float64(); {
	case roll < 0.05:
		return model.PriorityUrgent
	case roll < 0.2:
		return model.PriorityHigh
	case roll < 0.85:
		return model.PriorityNormal
	default:
		return model.PriorityLow
	}
}
