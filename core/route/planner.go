// Package route builds multi-stop pick routes and derives their metrics.
package route

import (
	"github.com/warebotics/waresim/core/grid"
	"github.com/warebotics/waresim/core/model"
	"github.com/warebotics/waresim/core/pathfind"
)

// Target is one required pickup: a shelf position plus the item to collect
// there.
type Target struct {
	Position model.Position
	Item     string
	Quantity int
}

// Planner sequences pickups with a nearest-neighbor heuristic. This is
// greedy multi-stop routing, not optimal TSP; downstream scoring and tests
// assume the greedy behavior, so do not replace it with an exact solver
// without changing the contract.
type Planner struct{}

// BuildRoute returns a route starting at the robot's position, visiting
// every target (always the closest unvisited one next, ties by target list
// order) and ending with a deliver step at the nearest exit.
//
// The move segment to each stop ends in the stop's action marker rather
// than a separate arrival move, so each visited cell appears once in the
// route. An empty target list yields an empty route, meaning nothing was
// fulfillable rather than a zero-length trip.
func (Planner) BuildRoute(robot model.Robot, targets []Target, g *grid.Grid) model.Route {
	if len(targets) == 0 {
		return nil
	}

	route := model.Route{{Position: robot.Position, Action: model.ActionStart}}
	cursor := robot.Position

	unvisited := make([]Target, len(targets))
	copy(unvisited, targets)

	for len(unvisited) > 0 {
		best := 0
		bestDist := model.ManhattanDistance(cursor, unvisited[0].Position)
		for i, t := range unvisited[1:] {
			if d := model.ManhattanDistance(cursor, t.Position); d < bestDist {
				best, bestDist = i+1, d
			}
		}
		next := unvisited[best]
		unvisited = append(unvisited[:best], unvisited[best+1:]...)

		route = appendSegment(route, cursor, next.Position, g)
		route = append(route, model.RouteStep{
			Position: next.Position,
			Action:   model.ActionPickup,
			Item:     next.Item,
			Quantity: next.Quantity,
		})
		cursor = next.Position
	}

	exit := g.NearestExit(cursor)
	route = appendSegment(route, cursor, exit, g)
	route = append(route, model.RouteStep{Position: exit, Action: model.ActionDeliver})
	return route
}

// appendSegment adds the A* moves from cursor to goal, dropping the final
// arrival move since the caller lands an action marker on the goal cell.
func appendSegment(route model.Route, cursor, goal model.Position, g *grid.Grid) model.Route {
	segment := pathfind.FindPath(cursor, goal, g)
	if n := len(segment); n > 0 && segment[n-1].Position == goal {
		segment = segment[:n-1]
	}
	return append(route, segment...)
}
