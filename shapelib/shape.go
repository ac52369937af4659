package shapelib

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidArgument is returned when a shape is built from an empty name
	// or without points.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrShapeNotFound is returned by Library.Lookup for unknown names.
	ErrShapeNotFound = errors.New("shape not found")
)

// Shape is a named closed polygon, expressed in a 100x100 reference frame.
// The closing edge from the last point back to the first is implicit.
// A Shape is immutable once built.
type Shape struct {
	name   string
	points []Point
}

// NewShape returns a shape holding a copy of points.
func NewShape(name string, points ...Point) (*Shape, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: shape names must not be empty", ErrInvalidArgument)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: shape %q has no points", ErrInvalidArgument, name)
	}
	return &Shape{name: name, points: append([]Point(nil), points...)}, nil
}

// mustShape is used for the built-in tables, which are known to be valid.
func mustShape(name string, points ...Point) *Shape {
	s, err := NewShape(name, points...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Shape) Name() string { return s.name }

// Len returns the number of vertices.
func (s *Shape) Len() int { return len(s.points) }

// At returns the vertex at index i.
func (s *Shape) At(i int) Point { return s.points[i] }

// Points returns a copy of the vertices.
func (s *Shape) Points() []Point { return append([]Point(nil), s.points...) }

func (s *Shape) String() string {
	var b strings.Builder
	b.WriteString("Shape name : " + s.name + "\npoints:\n")
	for _, p := range s.points {
		b.WriteString(p.String())
		b.WriteByte('\n')
	}
	return b.String()
}
