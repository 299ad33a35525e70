package dispatch

import (
	"testing"

	"github.com/warebotics/waresim/core/grid"
	"github.com/warebotics/waresim/core/model"
	"github.com/warebotics/waresim/infra/logger"
)

// mapInventory is a minimal Inventory for engine tests.
type mapInventory map[string]model.InventoryItem

func (m mapInventory) Resolve(name string) (model.InventoryItem, bool) {
	item, ok := m[name]
	return item, ok
}

func engineGrid(t *testing.T) *grid.Grid {
	t.Helper()
	cells := make([][]grid.CellKind, 5)
	for r := range cells {
		cells[r] = make([]grid.CellKind, 5)
	}
	cells[4][4] = grid.CellExit
	g, err := grid.New(cells)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	return g
}

func TestPlanOrderHappyPath(t *testing.T) {
	g := engineGrid(t)
	inv := mapInventory{
		"Widget": {Name: "Widget", Location: model.Position{Row: 2, Col: 2}},
	}
	robots := []model.Robot{
		{ID: "rob001", Status: model.RobotIdle, Battery: 100, Position: model.Position{Row: 0, Col: 0}},
	}
	order := model.Order{ID: "o1", Lines: []model.OrderLine{{Product: "Widget", Quantity: 2}}}

	e := NewEngine(logger.NopLogger{})
	res := e.PlanOrder(order, g, inv, robots)
	if res.Outcome != OutcomePlanned {
		t.Fatalf("outcome %s, want planned", res.Outcome)
	}
	if res.RobotID != "rob001" {
		t.Fatalf("robot %s", res.RobotID)
	}
	if len(res.Route) != 9 {
		t.Fatalf("route length %d, want 9", len(res.Route))
	}
	if res.Metrics.OptimizationScore != 82 {
		t.Fatalf("score %v, want 82", res.Metrics.OptimizationScore)
	}
	pickups := res.Route.Pickups()
	if len(pickups) != 1 || pickups[0].Quantity != 2 {
		t.Fatalf("pickups %v", pickups)
	}
	// Planning never mutates the candidate fleet.
	if robots[0].Status != model.RobotIdle || robots[0].Route != nil {
		t.Fatal("PlanOrder mutated a robot")
	}
}

func TestPlanOrderNoResolvableItems(t *testing.T) {
	g := engineGrid(t)
	e := NewEngine(logger.NopLogger{})
	order := model.Order{ID: "o1", Lines: []model.OrderLine{{Product: "Unknown"}}}
	robots := []model.Robot{{ID: "rob001", Status: model.RobotIdle, Battery: 100}}
	res := e.PlanOrder(order, g, mapInventory{}, robots)
	if res.Outcome != OutcomeNoResolvableItems {
		t.Fatalf("outcome %s, want no_resolvable_items", res.Outcome)
	}
	if res.Route != nil || res.RobotID != "" {
		t.Fatalf("unexpected plan data: %+v", res)
	}
}

func TestPlanOrderNoEligibleRobot(t *testing.T) {
	g := engineGrid(t)
	inv := mapInventory{"Widget": {Name: "Widget", Location: model.Position{Row: 1, Col: 1}}}
	order := model.Order{ID: "o1", Lines: []model.OrderLine{{Product: "Widget"}}}
	robots := []model.Robot{
		{ID: "rob001", Status: model.RobotBusy, Battery: 100},
		{ID: "rob002", Status: model.RobotIdle, Battery: 10},
	}
	e := NewEngine(logger.NopLogger{})
	res := e.PlanOrder(order, g, inv, robots)
	if res.Outcome != OutcomeNoEligibleRobot {
		t.Fatalf("outcome %s, want no_eligible_robot", res.Outcome)
	}
}

func TestPlanOrderSkipsUnknownLines(t *testing.T) {
	g := engineGrid(t)
	inv := mapInventory{"Widget": {Name: "Widget", Location: model.Position{Row: 1, Col: 1}}}
	order := model.Order{ID: "o1", Lines: []model.OrderLine{
		{Product: "Ghost", Quantity: 1},
		{Product: "Widget", Quantity: 0}, // quantity floors at 1
	}}
	robots := []model.Robot{{ID: "rob001", Status: model.RobotIdle, Battery: 100}}
	e := NewEngine(logger.NopLogger{})
	res := e.PlanOrder(order, g, inv, robots)
	if res.Outcome != OutcomePlanned {
		t.Fatalf("outcome %s, want planned", res.Outcome)
	}
	pickups := res.Route.Pickups()
	if len(pickups) != 1 || pickups[0].Item != "Widget" || pickups[0].Quantity != 1 {
		t.Fatalf("pickups %v", pickups)
	}
}

func TestOutcomeStrings(t *testing.T) {
	cases := map[Outcome]string{
		OutcomePlanned:           "planned",
		OutcomeNoResolvableItems: "no_resolvable_items",
		OutcomeNoEligibleRobot:   "no_eligible_robot",
		Outcome(99):              "unknown",
	}
	for o, want := range cases {
		if got := o.String(); got != want {
			t.Errorf("%d: %q, want %q", int(o), got, want)
		}
	}
}
