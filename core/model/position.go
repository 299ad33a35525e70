package model

import "fmt"

// Position identifies a cell on the warehouse grid. Row grows downward,
// Col grows to the right. Grid bounds are [0, rows) x [0, cols).
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// ManhattanDistance returns |dRow| + |dCol| between two cells. All routing
// and scoring heuristics in the engine use this metric.
func ManhattanDistance(a, b Position) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}
