package dispatch

import (
	"github.com/warebotics/waresim/core/grid"
	"github.com/warebotics/waresim/core/logger"
	"github.com/warebotics/waresim/core/model"
	"github.com/warebotics/waresim/core/route"
)

// Engine is the top-level order-planning entry point. It resolves order
// lines against inventory, picks a robot, builds the route and scores it.
// The engine holds no fleet or grid state of its own; everything it reads
// is passed in per call, and the only shared-state write (the robot claim)
// belongs to the caller.
type Engine struct {
	selector Selector
	planner  route.Planner
	log      logger.Logger
}

// NewEngine creates an engine with the standard selector weights.
func NewEngine(log logger.Logger) *Engine {
	return &Engine{selector: NewSelector(), log: log}
}

// PlanOrder computes a fulfillment plan for the order. Robots must be
// passed in canonical (ascending ID) order for deterministic selection.
//
// The plan does not mutate any robot or order state: committing the claim
// (idle to busy, route assignment) is the caller's atomic step.
func (e *Engine) PlanOrder(order model.Order, g *grid.Grid, inv Inventory, robots []model.Robot) Result {
	targets := e.resolveTargets(order, inv)
	if len(targets) == 0 {
		e.log.Warnf("order %s: no order line resolved to inventory", order.ID)
		return Result{Outcome: OutcomeNoResolvableItems}
	}

	// Candidates are ranked against the first resolved pickup location.
	robot, ok := e.selector.Select(robots, targets[0].Position)
	if !ok {
		e.log.Infof("order %s: no eligible robot, order stays pending", order.ID)
		return Result{Outcome: OutcomeNoEligibleRobot}
	}

	r := e.planner.BuildRoute(robot, targets, g)
	m := route.ComputeMetrics(r)
	e.log.Debugw("order planned", map[string]any{
		"order":    order.ID,
		"robot":    robot.ID,
		"stops":    len(targets),
		"distance": m.TotalDistance,
		"score":    m.OptimizationScore,
	})
	return Result{Outcome: OutcomePlanned, RobotID: robot.ID, Route: r, Metrics: m}
}

// resolveTargets maps order lines to shelf locations, keeping the order's
// line order. Lines naming unknown products are skipped.
func (e *Engine) resolveTargets(order model.Order, inv Inventory) []route.Target {
	var targets []route.Target
	for _, line := range order.Lines {
		item, ok := inv.Resolve(line.Product)
		if !ok {
			e.log.Debugf("order %s: product %q not in inventory", order.ID, line.Product)
			continue
		}
		qty := line.Quantity
		if qty <= 0 {
			qty = 1
		}
		targets = append(targets, route.Target{
			Position: item.Location,
			Item:     item.Name,
			Quantity: qty,
		})
	}
	return targets
}
