package route

import (
	"testing"

	"github.com/warebotics/waresim/core/grid"
	"github.com/warebotics/waresim/core/model"
)

// pickGrid builds an open rows x cols floor with a single exit in the
// bottom-right corner.
func pickGrid(t *testing.T, rows, cols int) *grid.Grid {
	t.Helper()
	cells := make([][]grid.CellKind, rows)
	for r := range cells {
		cells[r] = make([]grid.CellKind, cols)
	}
	cells[rows-1][cols-1] = grid.CellExit
	g, err := grid.New(cells)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	return g
}

func TestBuildRouteSingleTarget(t *testing.T) {
	g := pickGrid(t, 5, 5)
	robot := model.Robot{ID: "rob001", Position: model.Position{Row: 0, Col: 0}}
	targets := []Target{{Position: model.Position{Row: 2, Col: 2}, Item: "Widget", Quantity: 1}}

	var p Planner
	r := p.BuildRoute(robot, targets, g)

	// Start, three moves, pickup at the target, three moves, deliver at
	// the exit: each visited cell appears exactly once.
	if len(r) != 9 {
		t.Fatalf("route length %d, want 9: %v", len(r), r)
	}
	if r[0].Action != model.ActionStart || r[0].Position != robot.Position {
		t.Fatalf("route must open with a start step at the robot, got %v", r[0])
	}
	pickups := r.Pickups()
	if len(pickups) != 1 || pickups[0].Position != targets[0].Position {
		t.Fatalf("pickups = %v", pickups)
	}
	if pickups[0].Item != "Widget" || pickups[0].Quantity != 1 {
		t.Fatalf("pickup step lost item data: %+v", pickups[0])
	}
	last := r[len(r)-1]
	if last.Action != model.ActionDeliver || last.Position != (model.Position{Row: 4, Col: 4}) {
		t.Fatalf("route must end with deliver at the exit, got %v", last)
	}

	m := ComputeMetrics(r)
	if m.TotalDistance != 9 {
		t.Errorf("total distance %d, want 9", m.TotalDistance)
	}
	if m.EstimatedTime != 18 {
		t.Errorf("estimated time %v, want 18", m.EstimatedTime)
	}
	if m.EnergyConsumption != 4.5 {
		t.Errorf("energy %v, want 4.5", m.EnergyConsumption)
	}
	if m.OptimizationScore != 82 {
		t.Errorf("score %v, want 82", m.OptimizationScore)
	}
}

func TestBuildRouteIsContiguous(t *testing.T) {
	g := pickGrid(t, 6, 6)
	robot := model.Robot{Position: model.Position{Row: 5, Col: 0}}
	targets := []Target{
		{Position: model.Position{Row: 0, Col: 3}, Item: "A"},
		{Position: model.Position{Row: 3, Col: 5}, Item: "B"},
	}
	var p Planner
	r := p.BuildRoute(robot, targets, g)
	for i := 1; i < len(r); i++ {
		if d := model.ManhattanDistance(r[i-1].Position, r[i].Position); d > 1 {
			t.Fatalf("step %d jumps %d cells: %v -> %v", i, d, r[i-1], r[i])
		}
	}
}

func TestBuildRouteNearestNeighborOrder(t *testing.T) {
	g := pickGrid(t, 5, 5)
	robot := model.Robot{Position: model.Position{Row: 0, Col: 0}}
	targets := []Target{
		{Position: model.Position{Row: 0, Col: 4}, Item: "Far"},
		{Position: model.Position{Row: 0, Col: 2}, Item: "Near"},
	}
	var p Planner
	r := p.BuildRoute(robot, targets, g)
	pickups := r.Pickups()
	if len(pickups) != 2 {
		t.Fatalf("got %d pickups, want 2", len(pickups))
	}
	if pickups[0].Item != "Near" || pickups[1].Item != "Far" {
		t.Fatalf("visit order %q then %q, want nearest first", pickups[0].Item, pickups[1].Item)
	}
}

func TestBuildRouteTiesKeepListOrder(t *testing.T) {
	g := pickGrid(t, 5, 5)
	robot := model.Robot{Position: model.Position{Row: 0, Col: 0}}
	// Both targets are distance 2 from the robot.
	targets := []Target{
		{Position: model.Position{Row: 0, Col: 2}, Item: "First"},
		{Position: model.Position{Row: 2, Col: 0}, Item: "Second"},
	}
	var p Planner
	r := p.BuildRoute(robot, targets, g)
	pickups := r.Pickups()
	if pickups[0].Item != "First" {
		t.Fatalf("tie broken against list order: %v", pickups)
	}
}

func TestBuildRouteEmptyTargets(t *testing.T) {
	g := pickGrid(t, 3, 3)
	var p Planner
	if r := p.BuildRoute(model.Robot{}, nil, g); r != nil {
		t.Fatalf("expected nil route, got %v", r)
	}
}

func TestBuildRouteShelfTargetGetsDirectPickup(t *testing.T) {
	// Items sit on shelf cells, which are not walkable: the segment to
	// them degrades to the pickup marker on the shelf itself.
	cells := make([][]grid.CellKind, 3)
	for r := range cells {
		cells[r] = make([]grid.CellKind, 3)
	}
	cells[1][1] = grid.CellShelf
	cells[2][2] = grid.CellExit
	g, err := grid.New(cells)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	robot := model.Robot{Position: model.Position{Row: 0, Col: 0}}
	var p Planner
	r := p.BuildRoute(robot, []Target{{Position: model.Position{Row: 1, Col: 1}, Item: "Boxed"}}, g)
	if len(r.Pickups()) != 1 {
		t.Fatalf("expected a pickup, got %v", r)
	}
	if r[1].Action != model.ActionPickup {
		t.Fatalf("expected pickup immediately after start, got %v", r[1])
	}
}

func TestBuildRouteBeatsOneTripPerTargetBaseline(t *testing.T) {
	g := pickGrid(t, 7, 7)
	start := model.Position{Row: 0, Col: 0}
	targets := []Target{
		{Position: model.Position{Row: 1, Col: 5}, Item: "A"},
		{Position: model.Position{Row: 3, Col: 3}, Item: "B"},
		{Position: model.Position{Row: 5, Col: 1}, Item: "C"},
	}

	var p Planner
	multi := p.BuildRoute(model.Robot{Position: start}, targets, g)
	if len(multi) == 0 {
		t.Fatal("expected a route")
	}

	// Naive baseline: one full trip (start, pickup, deliver at the exit)
	// per target, each next trip starting from the exit.
	baseline := 0
	cursor := start
	for _, target := range targets {
		trip := p.BuildRoute(model.Robot{Position: cursor}, []Target{target}, g)
		baseline += len(trip)
		cursor = trip[len(trip)-1].Position
	}
	if len(multi) > baseline {
		t.Fatalf("multi-stop route %d steps, baseline %d", len(multi), baseline)
	}
}
