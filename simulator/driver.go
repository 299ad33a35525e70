// Package simulator runs the warehouse simulation loop: it admits orders,
// dispatches them through the routing engine and advances robots along
// their routes one step per tick.
package simulator

import (
	"context"
	"math/rand"
	"time"

	"github.com/warebotics/waresim/core/demand"
	"github.com/warebotics/waresim/core/dispatch"
	"github.com/warebotics/waresim/core/events"
	"github.com/warebotics/waresim/core/grid"
	"github.com/warebotics/waresim/core/logger"
	"github.com/warebotics/waresim/core/model"
	"github.com/warebotics/waresim/internal/eventbus"
	"github.com/warebotics/waresim/metrics"
	"github.com/warebotics/waresim/store"
)

// Driver owns the tick loop. All engine calls happen on the tick
// goroutine, so the robot claim is the only cross-goroutine critical
// section and it lives in the fleet store.
type Driver struct {
	cfg       Config
	grid      *grid.Grid
	fleet     *store.FleetStore
	inventory *store.InventoryStore
	engine    *dispatch.Engine
	table     demand.Table
	bus       eventbus.EventBus
	steps     *eventbus.TypedBus[events.StepEvent]
	sink      metrics.Sink
	log       logger.Logger
	rng       *rand.Rand

	pending   []model.Order
	active    map[string]model.Order // robot ID -> order in flight
	completed int
	ticks     int
}

// New creates a Driver. A nil bus or sink is replaced with a no-op.
func New(cfg Config, g *grid.Grid, fleet *store.FleetStore, inv *store.InventoryStore, engine *dispatch.Engine, table demand.Table, bus eventbus.EventBus, sink metrics.Sink, log logger.Logger) *Driver {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Driver{
		cfg:       cfg,
		grid:      g,
		fleet:     fleet,
		inventory: inv,
		engine:    engine,
		table:     table,
		bus:       bus,
		steps:     eventbus.NewTyped[events.StepEvent](64),
		sink:      sink,
		log:       log,
		rng:       rand.New(rand.NewSource(seed)),
		active:    make(map[string]model.Order),
	}
}

// Run ticks until the context is canceled.
func (d *Driver) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Duration(d.cfg.TickSeconds * float64(time.Second)))
	defer ticker.Stop()
	for {
		select {
		case now := <-ticker.C:
			d.Tick(now)
		case <-ctx.Done():
			return
		}
	}
}

// Tick runs one simulation step: admit, dispatch, advance, recharge.
func (d *Driver) Tick(now time.Time) {
	d.ticks++
	d.admitOrders(now)
	d.dispatchPending()
	d.advanceRobots()
	d.rechargeRobots()
	if d.bus != nil {
		d.bus.Publish(events.TickEvent{Seq: d.ticks, Time: now})
	}
}

// Steps returns the per-step progress feed. It carries one event per
// robot movement, so it is buffered deeper than the general bus;
// subscribers that still fall behind miss steps rather than blocking
// the tick loop.
func (d *Driver) Steps() *eventbus.TypedBus[events.StepEvent] { return d.steps }

// Close shuts down the step feed. The general bus is owned by the
// caller that supplied it.
func (d *Driver) Close() { d.steps.Close() }

// Completed returns how many orders have been fulfilled so far.
func (d *Driver) Completed() int { return d.completed }

// Pending returns a snapshot of orders waiting for dispatch.
func (d *Driver) Pending() []model.Order {
	return append([]model.Order(nil), d.pending...)
}

func (d *Driver) admitOrders(now time.Time) {
	stocked := d.inventory.Categories()
	for i := 0; i < d.cfg.OrdersPerTick; i++ {
		order, ok := GenerateOrder(d.rng, d.table, stocked, now)
		if !ok {
			return
		}
		d.pending = append(d.pending, order)
		if d.bus != nil {
			d.bus.Publish(events.OrderEvent{Order: order})
		}
		d.log.Debugf("order %s admitted (%s, %d lines)", order.ID, order.Priority, len(order.Lines))
	}
}

// dispatchPending walks the pending queue in sequence-score order and
// tries to plan and claim each order. Orders without an eligible robot
// stay pending for the next tick; orders whose items cannot be resolved
// are cancelled since they can never succeed.
func (d *Driver) dispatchPending() {
	queue := dispatch.Sequence(d.pending)
	var remaining []model.Order
	for _, order := range queue {
		res := d.engine.PlanOrder(order, d.grid, d.inventory, d.fleet.Robots())
		switch res.Outcome {
		case dispatch.OutcomePlanned:
			if err := d.fleet.Claim(res.RobotID, order.ID, res.Route); err != nil {
				// Lost the claim race; retry next tick.
				d.log.Warnf("order %s: claim failed: %v", order.ID, err)
				remaining = append(remaining, order)
				continue
			}
			order.Status = model.OrderProcessing
			order.AssignedRobot = res.RobotID
			d.active[res.RobotID] = order
			d.record(order, res)
			if d.bus != nil {
				d.bus.Publish(events.DispatchEvent{
					OrderID: order.ID,
					RobotID: res.RobotID,
					Outcome: res.Outcome.String(),
					Steps:   len(res.Route),
				})
			}
		case dispatch.OutcomeNoEligibleRobot:
			remaining = append(remaining, order)
			d.record(order, res)
		case dispatch.OutcomeNoResolvableItems:
			order.Status = model.OrderCancelled
			d.log.Warnf("order %s cancelled: no resolvable items", order.ID)
			d.record(order, res)
		}
	}
	d.pending = remaining
}

func (d *Driver) advanceRobots() {
	for _, robot := range d.fleet.Robots() {
		if robot.Status != model.RobotBusy {
			continue
		}
		step, done, err := d.fleet.Advance(robot.ID)
		if err != nil {
			d.log.Errorf("advance %s: %v", robot.ID, err)
			continue
		}
		if step.Action == model.ActionPickup {
			d.inventory.Deduct(step.Item, step.Quantity)
		}
		ev := events.StepEvent{RobotID: robot.ID, Step: step, Completed: done}
		d.steps.Publish(ev)
		if d.bus != nil {
			d.bus.Publish(ev)
		}
		if done {
			order := d.active[robot.ID]
			delete(d.active, robot.ID)
			d.completed++
			d.log.Infof("order %s delivered by %s", order.ID, robot.ID)
		}
	}
}

func (d *Driver) rechargeRobots() {
	for _, robot := range d.fleet.Robots() {
		if robot.Status == model.RobotCharging {
			d.fleet.Recharge(robot.ID)
		}
	}
}

func (d *Driver) record(order model.Order, res dispatch.Result) {
	rec := metrics.DispatchRecord{
		OrderID:           order.ID,
		RobotID:           res.RobotID,
		Outcome:           res.Outcome.String(),
		TotalDistance:     res.Metrics.TotalDistance,
		EstimatedTime:     res.Metrics.EstimatedTime,
		EnergyConsumption: res.Metrics.EnergyConsumption,
		OptimizationScore: res.Metrics.OptimizationScore,
		DispatchTime:      time.Now(),
	}
	if err := d.sink.RecordDispatch([]metrics.DispatchRecord{rec}); err != nil {
		d.log.Errorf("metrics error: %v", err)
	}
}
