// Implements a PDF backend for drawings,
// by wrapping github.com/jung-kurt/gofpdf.
package drawpdf

import (
	"image/color"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/benoitkugler/okdraw/drawing"
)

var _ drawing.Surface = (*Surface)(nil) // assert interface conformance

// Surface draws on a single page document whose size, in points, is the
// canvas size: one pixel is one point.
type Surface struct {
	pdf           *gofpdf.Fpdf
	width, height float64
	alpha         float64 // current opacity, to avoid redundant graphic states
}

// New returns a document with one empty page of the given size.
func New(width, height int) *Surface {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: float64(width), Ht: float64(height)},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetLineWidth(1)
	pdf.SetLineJoinStyle("miter")
	return &Surface{pdf: pdf, width: float64(width), height: float64(height), alpha: 1}
}

// NewSurface is a drawing.Factory.
func NewSurface(width, height int) (drawing.Surface, error) {
	s := New(width, height)
	return s, s.pdf.Error()
}

// PDF exposes the underlying document.
func (s *Surface) PDF() *gofpdf.Fpdf { return s.pdf }

// Output writes the document to w. The surface must not be used afterwards.
func (s *Surface) Output(w io.Writer) error { return s.pdf.Output(w) }

// OutputFile writes the document to the named file.
// The surface must not be used afterwards.
func (s *Surface) OutputFile(path string) error { return s.pdf.OutputFileAndClose(path) }

func (s *Surface) setAlpha(a uint8) {
	alpha := float64(a) / 0xff
	if alpha != s.alpha {
		s.pdf.SetAlpha(alpha, "")
		s.alpha = alpha
	}
}

func (s *Surface) SetBackground(c color.Color) error {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	s.pdf.SetFillColor(int(n.R), int(n.G), int(n.B))
	s.setAlpha(n.A)
	s.pdf.Rect(0, 0, s.width, s.height, "F")
	return s.pdf.Error()
}

func (s *Surface) SetColor(c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	s.pdf.SetFillColor(int(n.R), int(n.G), int(n.B))
	s.pdf.SetDrawColor(int(n.R), int(n.G), int(n.B))
	s.setAlpha(n.A)
}

func (s *Surface) path(xs, ys []int) {
	s.pdf.MoveTo(float64(xs[0]), float64(ys[0]))
	for i := 1; i < len(xs); i++ {
		s.pdf.LineTo(float64(xs[i]), float64(ys[i]))
	}
	s.pdf.ClosePath()
}

// FillPolygon uses the even-odd rule.
func (s *Surface) FillPolygon(xs, ys []int) error {
	if len(xs) == 0 {
		return s.pdf.Error()
	}
	s.path(xs, ys)
	s.pdf.DrawPath("F*")
	return s.pdf.Error()
}

func (s *Surface) DrawPolygon(xs, ys []int) error {
	if len(xs) == 0 {
		return s.pdf.Error()
	}
	s.path(xs, ys)
	s.pdf.DrawPath("D")
	return s.pdf.Error()
}
