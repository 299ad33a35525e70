package model

import "time"

// RobotStatus describes what a robot is currently doing.
type RobotStatus int

const (
	RobotIdle RobotStatus = iota
	RobotBusy
	RobotCharging
	RobotMaintenance
)

func (s RobotStatus) String() string {
	switch s {
	case RobotIdle:
		return "idle"
	case RobotBusy:
		return "busy"
	case RobotCharging:
		return "charging"
	case RobotMaintenance:
		return "maintenance"
	default:
		return "unknown"
	}
}

// Robot represents a mobile picking robot. The dispatch engine only reads
// robot state; mutation happens in the fleet store which owns the atomic
// idle-to-busy claim and the per-tick advancement.
type Robot struct {
	ID            string      `json:"id"`
	Position      Position    `json:"position"`
	Status        RobotStatus `json:"status"`
	Battery       float64     `json:"battery"` // percent, 0-100
	Speed         float64     `json:"speed"`
	Capacity      float64     `json:"capacity"`
	CurrentOrder  string      `json:"current_order,omitempty"`
	Route         Route       `json:"route,omitempty"`
	RouteCursor   int         `json:"route_cursor"`
	TotalDistance float64     `json:"total_distance_traveled"`
	OrdersDone    int         `json:"orders_completed"`
	LastService   time.Time   `json:"last_maintenance"`
}

// BatteryStatus buckets the battery level into operator-facing bands.
func (r Robot) BatteryStatus() string {
	switch {
	case r.Battery > 80:
		return "excellent"
	case r.Battery > 50:
		return "good"
	case r.Battery > 20:
		return "low"
	default:
		return "critical"
	}
}

// Efficiency is the historical orders-per-distance ratio used by the
// dispatch score. A robot that has never moved counts distance 1 so fresh
// robots are not infinitely efficient.
func (r Robot) Efficiency() float64 {
	dist := r.TotalDistance
	if dist < 1 {
		dist = 1
	}
	return float64(r.OrdersDone) / dist
}
