package shapelib

import (
	"testing"

	"github.com/cheekybits/is"
)

func TestPoint(t *testing.T) {
	is := is.New(t)

	p, q := Pt(3, 4), Pt(6, 8)
	is.Equal(p.DistanceToOrigin(), 5.0)
	is.Equal(p.Distance(q), 5.0)
	is.Equal(p.Midpoint(q), Pt(4.5, 6))
	is.Equal(p, Point{X: 3, Y: 4})
	is.True(p != q)
	is.Equal(Pt(2.5, -1).String(), "(2.5, -1)")
}
