// Package pathfind implements A* shortest-path search on the warehouse
// grid. Search is 4-connected with unit edge cost and a Manhattan
// heuristic, which is admissible on that graph, so returned paths are
// shortest paths.
package pathfind

import (
	"container/heap"

	"github.com/warebotics/waresim/core/model"
)

// Walkable is the grid predicate the search needs. *grid.Grid satisfies it.
type Walkable interface {
	IsWalkable(pos model.Position) bool
}

// Neighbor expansion order is fixed (N, E, S, W) so equal-cost paths come
// out the same way every run.
var neighborOffsets = [4]model.Position{
	{Row: -1, Col: 0},
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
}

type searchNode struct {
	pos model.Position
	f   int
	seq int // insertion order, breaks f ties first-in-first-out
	idx int
}

type openHeap []*searchNode

func (h openHeap) Len() int { return len(h) }
func (h openHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}
func (h openHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].idx = i
	h[j].idx = j
}
func (h *openHeap) Push(x any) {
	n := x.(*searchNode)
	n.idx = len(*h)
	*h = append(*h, n)
}
func (h *openHeap) Pop() any {
	old := *h
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*h = old[:len(old)-1]
	return n
}

// FindPath returns the move steps from the cell after start up to and
// including goal. Callers emit the start cell themselves as a start, pickup
// or deliver marker, so it is not repeated here.
//
// When the goal is unreachable the search degrades to a single direct step
// at the goal instead of failing; callers treat that as best effort. This
// also covers goals on non-walkable cells such as shelf faces.
func FindPath(start, goal model.Position, w Walkable) []model.RouteStep {
	if start == goal {
		return nil
	}

	open := &openHeap{}
	heap.Init(open)
	seq := 0
	heap.Push(open, &searchNode{pos: start, f: model.ManhattanDistance(start, goal), seq: seq})

	gScore := map[model.Position]int{start: 0}
	cameFrom := map[model.Position]model.Position{}

	for open.Len() > 0 {
		current := heap.Pop(open).(*searchNode)
		if current.pos == goal {
			return reconstruct(cameFrom, goal)
		}
		for _, off := range neighborOffsets {
			next := model.Position{Row: current.pos.Row + off.Row, Col: current.pos.Col + off.Col}
			if !w.IsWalkable(next) {
				continue
			}
			tentative := gScore[current.pos] + 1
			if prev, seen := gScore[next]; !seen || tentative < prev {
				cameFrom[next] = current.pos
				gScore[next] = tentative
				seq++
				heap.Push(open, &searchNode{
					pos: next,
					f:   tentative + model.ManhattanDistance(next, goal),
					seq: seq,
				})
			}
		}
	}

	// Unreachable: degrade to a direct step at the goal.
	return []model.RouteStep{{Position: goal, Action: model.ActionMove}}
}

func reconstruct(cameFrom map[model.Position]model.Position, goal model.Position) []model.RouteStep {
	var rev []model.Position
	cur := goal
	for {
		prev, ok := cameFrom[cur]
		if !ok {
			break
		}
		rev = append(rev, cur)
		cur = prev
	}
	steps := make([]model.RouteStep, len(rev))
	for i := range rev {
		steps[i] = model.RouteStep{Position: rev[len(rev)-1-i], Action: model.ActionMove}
	}
	return steps
}
