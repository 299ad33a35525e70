// Package grid owns the warehouse occupancy grid: cell kinds, the
// walkability predicate and the shelf/entrance/exit registries consumed by
// the routing engine.
package grid

import (
	"fmt"

	"github.com/warebotics/waresim/core/model"
)

// CellKind classifies a grid cell.
type CellKind int

const (
	CellWalkable CellKind = iota
	CellShelf
	CellEntrance
	CellExit
)

func (k CellKind) String() string {
	switch k {
	case CellWalkable:
		return "walkable"
	case CellShelf:
		return "shelf"
	case CellEntrance:
		return "entrance"
	case CellExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Shelf is a storage cell with descriptive capacity metadata. Capacity and
// utilization are reporting attributes only; routing never consults them.
type Shelf struct {
	Position    model.Position `json:"position"`
	Capacity    int            `json:"capacity"`
	Utilization float64        `json:"utilization"`
}

// Grid is the static warehouse layout. It is immutable after construction;
// concurrent readers need no locking.
type Grid struct {
	rows      int
	cols      int
	cells     [][]CellKind
	shelves   []Shelf
	entrances []model.Position
	exits     []model.Position
}

// New builds a Grid from a populated cell matrix and derives the shelf,
// entrance and exit registries in row-major scan order. Registry order is
// what breaks nearest-* ties, so it must stay deterministic.
// A grid without at least one exit cannot terminate any route and is
// rejected as a contract violation.
func New(cells [][]CellKind) (*Grid, error) {
	rows := len(cells)
	if rows == 0 || len(cells[0]) == 0 {
		return nil, fmt.Errorf("grid: dimensions must be positive")
	}
	cols := len(cells[0])
	g := &Grid{rows: rows, cols: cols, cells: cells}
	for r := 0; r < rows; r++ {
		if len(cells[r]) != cols {
			return nil, fmt.Errorf("grid: row %d has %d cells, want %d", r, len(cells[r]), cols)
		}
		for c := 0; c < cols; c++ {
			pos := model.Position{Row: r, Col: c}
			switch cells[r][c] {
			case CellShelf:
				g.shelves = append(g.shelves, Shelf{Position: pos})
			case CellEntrance:
				g.entrances = append(g.entrances, pos)
			case CellExit:
				g.exits = append(g.exits, pos)
			}
		}
	}
	if len(g.exits) == 0 {
		return nil, fmt.Errorf("grid: layout has no exit")
	}
	return g, nil
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// Shelves returns the shelf registry in scan order.
func (g *Grid) Shelves() []Shelf { return g.shelves }

// Entrances returns the entrance positions in scan order.
func (g *Grid) Entrances() []model.Position { return g.entrances }

// Exits returns the exit positions in scan order.
func (g *Grid) Exits() []model.Position { return g.exits }

// KindAt returns the kind of the cell at pos. Out-of-bounds positions
// report as shelves so they read as blocked.
func (g *Grid) KindAt(pos model.Position) CellKind {
	if !g.inBounds(pos) {
		return CellShelf
	}
	return g.cells[pos.Row][pos.Col]
}

// IsWalkable reports whether a robot may occupy pos. Entrance and exit
// cells are not marked walkable in the raw kind enum but are traversable
// endpoints, so they count here.
func (g *Grid) IsWalkable(pos model.Position) bool {
	if !g.inBounds(pos) {
		return false
	}
	switch g.cells[pos.Row][pos.Col] {
	case CellWalkable, CellEntrance, CellExit:
		return true
	default:
		return false
	}
}

func (g *Grid) inBounds(pos model.Position) bool {
	return pos.Row >= 0 && pos.Row < g.rows && pos.Col >= 0 && pos.Col < g.cols
}

// NearestShelf returns the shelf position closest to pos by Manhattan
// distance, ties going to the first shelf in registry order. The second
// return is false when the grid has no shelves.
func (g *Grid) NearestShelf(pos model.Position) (model.Position, bool) {
	if len(g.shelves) == 0 {
		return model.Position{}, false
	}
	best := g.shelves[0].Position
	bestDist := model.ManhattanDistance(pos, best)
	for _, s := range g.shelves[1:] {
		if d := model.ManhattanDistance(pos, s.Position); d < bestDist {
			best, bestDist = s.Position, d
		}
	}
	return best, true
}

// NearestExit returns the exit closest to pos. Grids always carry at least
// one exit, so this never fails.
func (g *Grid) NearestExit(pos model.Position) model.Position {
	return nearest(pos, g.exits)
}

// NearestEntrance returns the entrance closest to pos, or false when the
// layout has none.
func (g *Grid) NearestEntrance(pos model.Position) (model.Position, bool) {
	if len(g.entrances) == 0 {
		return model.Position{}, false
	}
	return nearest(pos, g.entrances), true
}

func nearest(pos model.Position, candidates []model.Position) model.Position {
	best := candidates[0]
	bestDist := model.ManhattanDistance(pos, best)
	for _, c := range candidates[1:] {
		if d := model.ManhattanDistance(pos, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
