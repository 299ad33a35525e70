package model

// Action marks what a robot does at a route step.
type Action int

const (
	ActionStart Action = iota
	ActionMove
	ActionPickup
	ActionDeliver
)

func (a Action) String() string {
	switch a {
	case ActionStart:
		return "start"
	case ActionMove:
		return "move"
	case ActionPickup:
		return "pickup"
	case ActionDeliver:
		return "deliver"
	default:
		return "unknown"
	}
}

// RouteStep is one cell-level instruction in a route. Item and Quantity are
// set only for pickup steps.
type RouteStep struct {
	Position Position `json:"position"`
	Action   Action   `json:"action"`
	Item     string   `json:"item,omitempty"`
	Quantity int      `json:"quantity,omitempty"`
}

// Route is an ordered sequence of steps, starting with a start step at the
// robot position and ending with a single deliver step at an exit. An empty
// route means nothing could be planned, not a zero-length trip.
type Route []RouteStep

// Pickups returns the pickup steps in visit order.
func (r Route) Pickups() []RouteStep {
	var steps []RouteStep
	for _, s := range r {
		if s.Action == ActionPickup {
			steps = append(steps, s)
		}
	}
	return steps
}
