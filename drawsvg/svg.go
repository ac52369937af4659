// Package drawsvg writes drawings as SVG documents, using svgo.
//
// Polygons are written in order as they are received, so the document is
// streamed: a Surface must be closed to terminate it.
package drawsvg

import (
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/benoitkugler/okdraw/drawing"
)

var _ drawing.Surface = (*Surface)(nil)

// errWriter remembers the first write error, since svgo ignores them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

type Surface struct {
	out           *errWriter
	canvas        *svg.SVG
	width, height int
	color         string
	closed        bool
}

// New starts a width x height document on w.
func New(w io.Writer, width, height int) *Surface {
	out := &errWriter{w: w}
	s := &Surface{
		out:    out,
		canvas: svg.New(out),
		width:  width,
		height: height,
		color:  "rgb(0,0,0)",
	}
	s.canvas.Start(width, height)
	return s
}

// Factory returns a drawing.Factory writing its document to w.
func Factory(w io.Writer) drawing.Factory {
	return func(width, height int) (drawing.Surface, error) {
		s := New(w, width, height)
		return s, s.out.err
	}
}

// rgb formats c as an SVG color, with an opacity when c is translucent.
func rgb(c color.Color) (string, string) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	value := fmt.Sprintf("rgb(%d,%d,%d)", n.R, n.G, n.B)
	if n.A == 0xff {
		return value, ""
	}
	return value, fmt.Sprintf("%.3f", float64(n.A)/0xff)
}

func style(property string, c color.Color) string {
	value, opacity := rgb(c)
	out := property + ":" + value
	if opacity != "" {
		out += ";" + property + "-opacity:" + opacity
	}
	return out
}

func (s *Surface) SetBackground(c color.Color) error {
	s.canvas.Rect(0, 0, s.width, s.height, style("fill", c))
	return s.out.err
}

func (s *Surface) SetColor(c color.Color) {
	value, opacity := rgb(c)
	s.color = value
	if opacity != "" {
		s.color += ";opacity:" + opacity
	}
}

func (s *Surface) FillPolygon(xs, ys []int) error {
	if len(xs) == 0 {
		return s.out.err
	}
	s.canvas.Polygon(xs, ys, "fill:"+s.color)
	return s.out.err
}

func (s *Surface) DrawPolygon(xs, ys []int) error {
	if len(xs) == 0 {
		return s.out.err
	}
	s.canvas.Polygon(xs, ys, "fill:none;stroke-width:1;stroke:"+s.color)
	return s.out.err
}

// Close terminates the document. It returns the first write error, if any.
func (s *Surface) Close() error {
	if !s.closed {
		s.closed = true
		s.canvas.End()
	}
	return s.out.err
}
