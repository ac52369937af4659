package drawing

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/benoitkugler/okdraw/shapelib"
)

// Polygon is the integer working copy of a template, mutated in place by
// the transform pipeline.
type Polygon struct {
	Xs, Ys []int
}

// NewPolygon scales the vertices of s by scalePercent/100, truncating
// toward zero.
func NewPolygon(s *shapelib.Shape, scalePercent int) Polygon {
	factor := float64(scalePercent) / 100.0
	p := Polygon{Xs: make([]int, s.Len()), Ys: make([]int, s.Len())}
	for i := range p.Xs {
		pt := s.At(i)
		p.Xs[i] = int(pt.X * factor)
		p.Ys[i] = int(pt.Y * factor)
	}
	return p
}

// Len returns the number of vertices.
func (p Polygon) Len() int { return len(p.Xs) }

// Clone returns a deep copy of p.
func (p Polygon) Clone() Polygon {
	return Polygon{Xs: append([]int(nil), p.Xs...), Ys: append([]int(nil), p.Ys...)}
}

// Translate adds (dx, dy) to every vertex.
func (p Polygon) Translate(dx, dy int) {
	for i := range p.Xs {
		p.Xs[i] += dx
		p.Ys[i] += dy
	}
}

// radians converts with float64 arithmetic, so that the rounding of pi/180
// is the one of a runtime division.
func radians(degrees int) float64 {
	pi := math.Pi
	return float64(degrees) * (pi / 180)
}

// Rotate turns every vertex by degrees around (cx, cy), truncating the
// results toward zero. Positive angles turn clockwise on a y-down surface.
func (p Polygon) Rotate(cx, cy, degrees int) {
	angle := radians(degrees)
	cos, sin := math.Cos(angle), math.Sin(angle)
	for i := range p.Xs {
		dx, dy := float64(p.Xs[i]-cx), float64(p.Ys[i]-cy)
		p.Xs[i] = int(cos*dx - sin*dy + float64(cx))
		p.Ys[i] = int(sin*dx + cos*dy + float64(cy))
	}
}

// Bounds returns the smallest rectangle containing every vertex.
// Max is inclusive of the extreme vertices, so a single point yields an
// empty rectangle.
func (p Polygon) Bounds() image.Rectangle {
	if len(p.Xs) == 0 {
		return image.Rectangle{}
	}
	r := image.Rect(p.Xs[0], p.Ys[0], p.Xs[0], p.Ys[0])
	for i := 1; i < len(p.Xs); i++ {
		r.Min.X = min(r.Min.X, p.Xs[i])
		r.Min.Y = min(r.Min.Y, p.Ys[i])
		r.Max.X = max(r.Max.X, p.Xs[i])
		r.Max.Y = max(r.Max.Y, p.Ys[i])
	}
	return r
}

// String returns the polygon as an SVG path description.
func (p Polygon) String() string {
	chunks := make([]string, 0, len(p.Xs)+1)
	for i := range p.Xs {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		chunks = append(chunks, fmt.Sprintf("%s%d,%d", cmd, p.Xs[i], p.Ys[i]))
	}
	chunks = append(chunks, "Z")
	return strings.Join(chunks, " ")
}
