// Package store owns the shared mutable warehouse state: the robot fleet
// and the inventory. The dispatch engine only ever reads snapshots from
// here; all mutation, including the atomic robot claim, goes through the
// store so concurrent dispatch attempts cannot double-book a robot.
package store

import (
	"fmt"
	"sort"
	"sync"

	"github.com/warebotics/waresim/core/model"
)

// Battery management thresholds. A robot finishing a trip at or below the
// charge threshold parks itself for charging until it reaches the resume
// level.
const (
	chargeBelow   = 20.0
	resumeAt      = 80.0
	drainPerCell  = 0.5
	chargePerTick = 5.0
)

// FleetStore is the mutex-guarded robot registry.
type FleetStore struct {
	mu     sync.RWMutex
	robots map[string]*model.Robot
}

// NewFleetStore creates a store seeded with the given robots.
func NewFleetStore(robots ...model.Robot) *FleetStore {
	s := &FleetStore{robots: make(map[string]*model.Robot, len(robots))}
	for _, r := range robots {
		rc := r
		s.robots[r.ID] = &rc
	}
	return s
}

// Robots returns a snapshot of the fleet sorted by ascending ID. That
// ordering is the canonical candidate order for dispatch, keeping
// selection deterministic.
func (s *FleetStore) Robots() []model.Robot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Robot, 0, len(s.robots))
	for _, r := range s.robots {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Get returns a copy of one robot.
func (s *FleetStore) Get(id string) (model.Robot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.robots[id]
	if !ok {
		return model.Robot{}, false
	}
	return *r, true
}

// Claim atomically transitions a robot from idle to busy and assigns the
// order and route. It fails if the robot is unknown or no longer idle, so
// two orders can never claim the same robot: exactly one caller wins the
// transition.
func (s *FleetStore) Claim(robotID, orderID string, r model.Route) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	robot, ok := s.robots[robotID]
	if !ok {
		return fmt.Errorf("fleet: unknown robot %s", robotID)
	}
	if robot.Status != model.RobotIdle {
		return fmt.Errorf("fleet: robot %s is %s, not idle", robotID, robot.Status)
	}
	robot.Status = model.RobotBusy
	robot.CurrentOrder = orderID
	robot.Route = r
	robot.RouteCursor = 0
	return nil
}

// Advance moves a busy robot one route step: position follows the step,
// battery drains per cell, distance accumulates. Completing the final
// (deliver) step finishes the trip; the robot goes back to idle, or to
// charging when its battery has fallen to the charge threshold. The
// executed step and whether the trip completed are returned.
func (s *FleetStore) Advance(id string) (model.RouteStep, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	robot, ok := s.robots[id]
	if !ok {
		return model.RouteStep{}, false, fmt.Errorf("fleet: unknown robot %s", id)
	}
	if robot.Status != model.RobotBusy || robot.RouteCursor >= len(robot.Route) {
		return model.RouteStep{}, false, fmt.Errorf("fleet: robot %s has no route to advance", id)
	}

	step := robot.Route[robot.RouteCursor]
	robot.Position = step.Position
	robot.RouteCursor++
	if step.Action != model.ActionStart {
		robot.TotalDistance++
		robot.Battery -= drainPerCell
		if robot.Battery < 0 {
			robot.Battery = 0
		}
	}

	done := robot.RouteCursor >= len(robot.Route)
	if done {
		robot.OrdersDone++
		robot.CurrentOrder = ""
		robot.Route = nil
		robot.RouteCursor = 0
		if robot.Battery <= chargeBelow {
			robot.Status = model.RobotCharging
		} else {
			robot.Status = model.RobotIdle
		}
	}
	return step, done, nil
}

// Recharge tops up a charging robot by one tick's worth of charge and
// returns it to idle once it reaches the resume level.
func (s *FleetStore) Recharge(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	robot, ok := s.robots[id]
	if !ok || robot.Status != model.RobotCharging {
		return
	}
	robot.Battery += chargePerTick
	if robot.Battery >= 100 {
		robot.Battery = 100
	}
	if robot.Battery >= resumeAt {
		robot.Status = model.RobotIdle
	}
}
