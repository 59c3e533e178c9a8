package draw

import (
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Canvas is a boolean pixel buffer with two sub-pixels per terminal row.
// Callers draw in logical coordinates (the play field); the canvas scales them
// onto however many cells the terminal gives it.
type Canvas struct {
	cols, rows int
	subRows    int    // rows * 2
	pixels     []bool // [y*cols + x]

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64
	scaleY        float64

	// 0-based terminal offset of the render area, for centering on large terminals.
	offsetCol int
	offsetRow int

	out       strings.Builder
	num       [20]byte
	scaled    []Point
	crossings []float64
}

// NewCanvas creates a canvas of cols x rows terminal cells showing a logical
// area of logicalWidth x logicalHeight.
func NewCanvas(cols, rows int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{logicalWidth: logicalWidth, logicalHeight: logicalHeight}
	c.Resize(cols, rows)
	return c
}

// Resize changes the terminal area, keeping the logical size.
func (c *Canvas) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	if cols != c.cols || rows != c.rows || c.pixels == nil {
		c.cols = cols
		c.rows = rows
		c.subRows = rows * 2
		c.pixels = make([]bool, c.subRows*cols)
	}
	c.scaleX = float64(cols) / c.logicalWidth
	c.scaleY = float64(c.subRows) / c.logicalHeight
}

// SetOffset places the render area at 0-based terminal offset (col, row).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// Cols returns the width of the render area in terminal cells.
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the height of the render area in terminal cells.
func (c *Canvas) Rows() int { return c.rows }

// Clear resets every pixel.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.cols && y >= 0 && y < c.subRows {
		c.pixels[y*c.cols+x] = true
	}
}

// Pixel reports whether the sub-pixel at (x, y) is set.
func (c *Canvas) Pixel(x, y int) bool {
	if x < 0 || x >= c.cols || y < 0 || y >= c.subRows {
		return false
	}
	return c.pixels[y*c.cols+x]
}

func (c *Canvas) toPixel(p Point) (int, int) {
	return int(math.Round(p.X * c.scaleX)), int(math.Round(p.Y * c.scaleY))
}

// SetFloat sets the pixel under logical point (x, y).
func (c *Canvas) SetFloat(x, y float64) {
	c.setPixel(c.toPixel(Point{X: x, Y: y}))
}

// DrawLine draws a line between two logical points (Bresenham).
func (c *Canvas) DrawLine(p1, p2 Point) {
	x1, y1 := c.toPixel(p1)
	x2, y2 := c.toPixel(p2)

	dx, dy := abs(x2-x1), abs(y2-y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	e := dx - dy
	for {
		c.setPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * e
		if e2 > -dy {
			e -= dy
			x1 += sx
		}
		if e2 < dx {
			e += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws the closed outline through points, filling the interior
// when filled is set. Fewer than three points draw nothing.
func (c *Canvas) DrawPolygon(points []Point, filled bool) {
	n := len(points)
	if n < 3 {
		return
	}
	if filled {
		c.fill(points)
	}
	for i := range points {
		c.DrawLine(points[i], points[(i+1)%n])
	}
}

// fill rasterizes the polygon interior with an even-odd scanline in pixel space.
func (c *Canvas) fill(points []Point) {
	if cap(c.scaled) < len(points) {
		c.scaled = make([]Point, len(points))
	}
	px := c.scaled[:len(points)]
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i, p := range points {
		px[i] = Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
		minY = math.Min(minY, px[i].Y)
		maxY = math.Max(maxY, px[i].Y)
	}

	n := len(px)
	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scan := float64(y) + 0.5
		xs := c.crossings[:0]
		for i := range px {
			a, b := px[i], px[(i+1)%n]
			if (a.Y <= scan) != (b.Y <= scan) {
				t := (scan - a.Y) / (b.Y - a.Y)
				xs = append(xs, a.X+t*(b.X-a.X))
			}
		}
		c.crossings = xs
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(math.Ceil(xs[i])); x <= int(math.Floor(xs[i+1])); x++ {
				c.setPixel(x, y)
			}
		}
	}
}

func (c *Canvas) moveTo(col, row int) {
	c.out.WriteString("\033[")
	c.out.Write(strconv.AppendInt(c.num[:0], int64(row), 10))
	c.out.WriteByte(';')
	c.out.Write(strconv.AppendInt(c.num[:0], int64(col), 10))
	c.out.WriteByte('H')
}

// Render writes every non-empty cell to w as a positioned half-block character.
// Empty cells are skipped; callers clear the screen between frames.
func (c *Canvas) Render(w io.Writer) error {
	c.out.Reset()
	for row := 0; row < c.rows; row++ {
		top := c.pixels[row*2*c.cols : (row*2+1)*c.cols]
		bottom := c.pixels[(row*2+1)*c.cols : (row*2+2)*c.cols]
		for col := 0; col < c.cols; col++ {
			var ch rune
			switch {
			case top[col] && bottom[col]:
				ch = BlockFull
			case top[col]:
				ch = BlockUpperHalf
			case bottom[col]:
				ch = BlockLowerHalf
			default:
				continue
			}
			c.moveTo(col+1+c.offsetCol, row+1+c.offsetRow)
			c.out.WriteRune(ch)
		}
	}
	_, err := io.WriteString(w, c.out.String())
	return err
}

// RenderBorder frames the render area when the terminal is larger than it.
// Horizontal bars need a spare row above, vertical bars a spare column to the left.
func (c *Canvas) RenderBorder(w io.Writer) error {
	hasSides := c.offsetCol >= 1
	hasBars := c.offsetRow >= 1
	if !hasSides && !hasBars {
		return nil
	}

	left, right := c.offsetCol, c.offsetCol+c.cols+1
	top, bottom := c.offsetRow, c.offsetRow+c.rows+1
	bar := strings.Repeat("─", c.cols)

	c.out.Reset()
	if hasBars {
		if hasSides {
			c.moveTo(left, top)
			c.out.WriteString("┌" + bar + "┐")
			c.moveTo(left, bottom)
			c.out.WriteString("└" + bar + "┘")
		} else {
			c.moveTo(left+1, top)
			c.out.WriteString(bar)
			c.moveTo(left+1, bottom)
			c.out.WriteString(bar)
		}
	}
	if hasSides {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.rows; row++ {
			c.moveTo(left, row)
			c.out.WriteString("│")
			c.moveTo(right, row)
			c.out.WriteString("│")
		}
	}
	_, err := io.WriteString(w, c.out.String())
	return err
}

// LogicalToTerminal maps a logical point to the 1-based cell (col, row) inside
// the render area, without the centering offset. Use with ChunkWriter.WriteAt.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px, py := c.toPixel(Point{X: x, Y: y})
	return px + 1, py/2 + 1
}
