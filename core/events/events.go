// Package events defines the event types published on the internal bus by
// the simulation driver and the dispatch path.
package events

import (
	"time"

	"github.com/warebotics/waresim/core/model"
)

// OrderEvent signals an order entering the system.
type OrderEvent struct {
	Order model.Order
}

// DispatchEvent reports the outcome of a dispatch attempt for an order.
type DispatchEvent struct {
	OrderID string
	RobotID string
	Outcome string
	Steps   int
}

// StepEvent reports one robot route step executed by the driver.
type StepEvent struct {
	RobotID   string
	Step      model.RouteStep
	Completed bool // true when this step finished the trip
}

// TickEvent marks one simulation tick.
type TickEvent struct {
	Seq  int
	Time time.Time
}
