package drawing

import (
	"errors"
	"image/color"
)

// Surface knows how to do the actual paint operations, without any
// knowledge of instructions. Coordinates are pixels, with the origin at the
// top-left corner and y increasing downward. xs and ys always have the same
// length, and implementations must not retain them.
type Surface interface {
	// SetBackground fills the whole surface with c.
	SetBackground(c color.Color) error

	// SetColor sets the color used by the following polygons.
	SetColor(c color.Color)

	// FillPolygon fills the closed polygon with vertices (xs[i], ys[i]).
	FillPolygon(xs, ys []int) error

	// DrawPolygon strokes the outline of the closed polygon.
	DrawPolygon(xs, ys []int) error
}

// Factory creates a surface of the given size, in pixels.
type Factory func(width, height int) (Surface, error)

// ErrSurface is matched by every *SurfaceError.
var ErrSurface = errors.New("surface error")

// SurfaceError wraps an error returned by a Surface.
type SurfaceError struct {
	Op  string
	Err error
}

func (e *SurfaceError) Error() string {
	return "surface: " + e.Op + ": " + e.Err.Error()
}

func (e *SurfaceError) Unwrap() error { return e.Err }

func (e *SurfaceError) Is(target error) bool { return target == ErrSurface }

func surfaceErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &SurfaceError{Op: op, Err: err}
}
