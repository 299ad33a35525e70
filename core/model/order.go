package model

import "time"

// OrderPriority ranks how urgently an order should be serviced.
type OrderPriority int

const (
	PriorityLow OrderPriority = iota
	PriorityNormal
	PriorityHigh
	PriorityUrgent
)

func (p OrderPriority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityNormal:
		return "normal"
	case PriorityHigh:
		return "high"
	case PriorityUrgent:
		return "urgent"
	default:
		return "unknown"
	}
}

// OrderStatus tracks an order through its lifecycle.
type OrderStatus int

const (
	OrderPending OrderStatus = iota
	OrderProcessing
	OrderCompleted
	OrderCancelled
)

func (s OrderStatus) String() string {
	switch s {
	case OrderPending:
		return "pending"
	case OrderProcessing:
		return "processing"
	case OrderCompleted:
		return "completed"
	case OrderCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// OrderLine is one requested product within an order.
type OrderLine struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

// Order is a customer order to be fulfilled by a single robot trip.
// The dispatch engine reads the line items and writes AssignedRobot and
// Status on a successful dispatch; everything else belongs to the caller.
type Order struct {
	ID            string        `json:"id"`
	Customer      string        `json:"customer_name"`
	Lines         []OrderLine   `json:"items"`
	Priority      OrderPriority `json:"priority"`
	Status        OrderStatus   `json:"status"`
	AssignedRobot string        `json:"assigned_robot,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	TotalValue    float64       `json:"total_value"`
}
