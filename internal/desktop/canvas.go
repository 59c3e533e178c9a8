package desktop

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/planetoids/internal/draw"
)

var (
	strokeColor = color.RGBA{220, 220, 230, 255}
	bulletColor = color.RGBA{255, 210, 90, 255}
)

const (
	strokeWidth  = 2
	bulletRadius = 3
)

// screenCanvas draws field geometry onto an ebiten image with the vector package.
type screenCanvas struct {
	dst *ebiten.Image
}

func newScreenCanvas(dst *ebiten.Image) *screenCanvas {
	return &screenCanvas{dst: dst}
}

// DrawPolygon strokes the outline; filled polygons are filled with horizontal spans.
func (c *screenCanvas) DrawPolygon(points []draw.Point, filled bool) {
	n := len(points)
	if n < 3 {
		return
	}
	if filled {
		c.fill(points)
	}
	for i := range points {
		a, b := points[i], points[(i+1)%n]
		vector.StrokeLine(c.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), strokeWidth, strokeColor, true)
	}
}

func (c *screenCanvas) fill(points []draw.Point) {
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	for _, span := range spans(points, minY, maxY) {
		vector.StrokeLine(c.dst, float32(span.x0), float32(span.y), float32(span.x1), float32(span.y), 1, strokeColor, false)
	}
}

// SetFloat draws a bullet.
func (c *screenCanvas) SetFloat(x, y float64) {
	vector.DrawFilledCircle(c.dst, float32(x), float32(y), bulletRadius, bulletColor, true)
}

type span struct {
	y, x0, x1 float64
}

// spans returns the even-odd interior of the polygon as one-pixel-high
// horizontal segments sampled at pixel centers.
func spans(points []draw.Point, minY, maxY float64) []span {
	var out []span
	var xs []float64
	n := len(points)
	for y := math.Floor(minY) + 0.5; y <= maxY; y++ {
		xs = xs[:0]
		for i := range points {
			a, b := points[i], points[(i+1)%n]
			if (a.Y <= y) != (b.Y <= y) {
				t := (y - a.Y) / (b.Y - a.Y)
				xs = append(xs, a.X+t*(b.X-a.X))
			}
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			out = append(out, span{y: y, x0: xs[i], x1: xs[i+1]})
		}
	}
	return out
}
