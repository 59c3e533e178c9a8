// Package draw renders field geometry onto a terminal using half-block characters.
package draw

// Point is a position in canvas coordinates: x grows right, y grows down.
type Point struct {
	X, Y float64
}

// Half-block characters give each terminal cell two vertical sub-pixels.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
