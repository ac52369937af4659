// Package drawgg implements a drawing surface on top of a gogpu/gg
// context, using its software rasterizer.
package drawgg

import (
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"

	"github.com/benoitkugler/okdraw/drawing"
	"github.com/benoitkugler/okdraw/internal/logging"
)

var _ drawing.Surface = (*Surface)(nil)

// coordLimit keeps vertices within the float32 precision of the rasterizer.
const coordLimit = 1 << 24

type Surface struct {
	dc *gg.Context
}

// New returns a transparent surface of the given size.
// Outlines are one pixel wide.
func New(width, height int) *Surface {
	dc := gg.NewContext(width, height)
	dc.SetLineWidth(1)
	return &Surface{dc: dc}
}

// NewSurface is a drawing.Factory.
func NewSurface(width, height int) (drawing.Surface, error) {
	return New(width, height), nil
}

// Context exposes the underlying context, for instance to draw on top of
// a rendered drawing.
func (s *Surface) Context() *gg.Context { return s.dc }

// Image returns the image drawn so far. A failed flush of pending GPU work
// is logged, and the image is returned as is.
func (s *Surface) Image() image.Image {
	if err := s.dc.FlushGPU(); err != nil {
		logging.Get().Warn("flushing gg context", "err", err)
	}
	return s.dc.Image()
}

// EncodePNG writes the image as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	if err := s.dc.FlushGPU(); err != nil {
		return err
	}
	return s.dc.EncodePNG(w)
}

// Close releases the context.
func (s *Surface) Close() error { return s.dc.Close() }

func (s *Surface) SetBackground(c color.Color) error {
	s.dc.ClearWithColor(gg.FromColor(c))
	return nil
}

func (s *Surface) SetColor(c color.Color) { s.dc.SetColor(c) }

func clampCoord(v int) float64 {
	return float64(min(coordLimit, max(-coordLimit, v)))
}

func (s *Surface) path(xs, ys []int) {
	if len(xs) == 0 {
		return
	}
	s.dc.MoveTo(clampCoord(xs[0]), clampCoord(ys[0]))
	for i := 1; i < len(xs); i++ {
		s.dc.LineTo(clampCoord(xs[i]), clampCoord(ys[i]))
	}
	s.dc.ClosePath()
}

func (s *Surface) FillPolygon(xs, ys []int) error {
	s.path(xs, ys)
	return s.dc.Fill()
}

func (s *Surface) DrawPolygon(xs, ys []int) error {
	s.path(xs, ys)
	return s.dc.Stroke()
}
