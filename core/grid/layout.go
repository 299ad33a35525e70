package grid

import (
	"math/rand"
	"time"
)

var layoutRng = rand.New(rand.NewSource(time.Now().UnixNano()))

// GenerateLayout builds a periodic aisle/shelf warehouse layout: horizontal
// shelf bands every 8 rows (2 aisle rows then 4 shelf rows) crossed by
// vertical aisles every 10 columns, entrances down the left edge and exits
// down the right edge. Shelf capacity and utilization metadata are drawn
// randomly for reporting.
func GenerateLayout(rows, cols int) (*Grid, error) {
	cells := make([][]CellKind, rows)
	for r := range cells {
		cells[r] = make([]CellKind, cols)
	}

	for r := 5; r < rows; r += 8 {
		for rr := r + 2; rr < r+6 && rr < rows; rr++ {
			for c := 0; c < cols; c++ {
				cells[rr][c] = CellShelf
			}
		}
	}
	// Vertical aisles cut through the horizontal shelf bands.
	for c := 5; c < cols; c += 10 {
		for r := 0; r < rows; r++ {
			cells[r][c] = CellWalkable
			if c+1 < cols {
				cells[r][c+1] = CellWalkable
			}
		}
	}

	placed := false
	for r := 5; r < rows; r += 10 {
		cells[r][0] = CellEntrance
		cells[r][cols-1] = CellExit
		placed = true
	}
	if !placed {
		// Grid too small for the periodic pattern; pin endpoints to row 0.
		cells[0][0] = CellEntrance
		cells[0][cols-1] = CellExit
	}

	g, err := New(cells)
	if err != nil {
		return nil, err
	}
	for i := range g.shelves {
		g.shelves[i].Capacity = 50 + layoutRng.Intn(151)
		g.shelves[i].Utilization = 0.3 + layoutRng.Float64()*0.6
	}
	return g, nil
}
