package dispatch

import (
	"github.com/warebotics/waresim/core/model"
	"github.com/warebotics/waresim/core/route"
)

// Outcome classifies why a plan attempt did or did not produce a route.
// Every value is a recoverable, local condition: the order simply stays
// pending when no route was planned.
type Outcome int

const (
	// OutcomePlanned means a robot was selected and a route built.
	OutcomePlanned Outcome = iota
	// OutcomeNoResolvableItems means none of the order lines matched a
	// known inventory item.
	OutcomeNoResolvableItems
	// OutcomeNoEligibleRobot means no idle robot above the battery
	// threshold was available.
	OutcomeNoEligibleRobot
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlanned:
		return "planned"
	case OutcomeNoResolvableItems:
		return "no_resolvable_items"
	case OutcomeNoEligibleRobot:
		return "no_eligible_robot"
	default:
		return "unknown"
	}
}

// Result is the outcome of planning one order.
type Result struct {
	Outcome Outcome
	RobotID string
	Route   model.Route
	Metrics route.Metrics
}

// Inventory resolves product names to stocked items. Resolution returns
// the first item matching by name in store iteration order; duplicate
// names therefore resolve to the earliest entry.
type Inventory interface {
	Resolve(name string) (model.InventoryItem, bool)
}
