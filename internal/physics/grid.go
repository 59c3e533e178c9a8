package physics

import "math"

// SpatialGrid is a uniform grid for broad-phase collision detection.
// Items are inserted by position and index, then nearby items can be queried
// through a 3x3 neighborhood lookup.
//
// Cell size must be >= the largest interaction distance between any two
// colliding items so that every potential pair is found within the 3x3
// neighborhood. Positions outside the covered area are clamped to the edge
// cells, which can only add candidates, never lose them.
type SpatialGrid struct {
	originX     float64
	originY     float64
	invCellSize float64 // 1 / cellSize (precomputed to avoid division)
	cols        int
	rows        int
	cells       []gridCell
}

// gridCell stores the indices of items that fall within a grid cell.
// The slice is reused between frames (reset to [:0]) to avoid allocations.
type gridCell struct {
	items []int
}

// NewSpatialGrid creates a grid covering the rectangle starting at (minX, minY)
// with the given width and height.
func NewSpatialGrid(minX, minY, width, height, cellSize float64) *SpatialGrid {
	cols := int(math.Ceil(width / cellSize))
	rows := int(math.Ceil(height / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	return &SpatialGrid{
		originX:     minX,
		originY:     minY,
		invCellSize: 1.0 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       make([]gridCell, cols*rows),
	}
}

// Clear removes all items from the grid without deallocating cell memory.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i].items = g.cells[i].items[:0]
	}
}

// Insert adds an item (identified by index) at the given position.
func (g *SpatialGrid) Insert(p Vector2, index int) {
	col, row := g.posToCell(p)
	idx := row*g.cols + col
	g.cells[idx].items = append(g.cells[idx].items, index)
}

// QueryAround calls fn for each item index in the 3x3 cell neighborhood around p.
// If fn returns true, iteration stops early.
func (g *SpatialGrid) QueryAround(p Vector2, fn func(index int) bool) {
	col, row := g.posToCell(p)

	for r := max(row-1, 0); r <= min(row+1, g.rows-1); r++ {
		rowOffset := r * g.cols
		for c := max(col-1, 0); c <= min(col+1, g.cols-1); c++ {
			for _, itemIdx := range g.cells[rowOffset+c].items {
				if fn(itemIdx) {
					return
				}
			}
		}
	}
}

// posToCell converts a position to grid cell coordinates, clamped to the grid.
func (g *SpatialGrid) posToCell(p Vector2) (col, row int) {
	col = int(math.Floor((p.X - g.originX) * g.invCellSize))
	row = int(math.Floor((p.Y - g.originY) * g.invCellSize))
	col = min(max(col, 0), g.cols-1)
	row = min(max(row, 0), g.rows-1)
	return col, row
}
