// Implements a raster backend for drawings,
// by wrapping rasterx.
package drawraster

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"

	"github.com/benoitkugler/okdraw/drawing"
)

var _ drawing.Surface = (*Surface)(nil) // assert interface conformance

// coordLimit bounds the vertices sent to the scanner: fixed.Int26_6
// overflows beyond 1<<25 pixels.
const coordLimit = 1 << 24

type Surface struct {
	img    *image.RGBA
	filler *rasterx.Filler // we use separated instances
	dasher *rasterx.Dasher // to avoid shared state
}

// New returns a transparent surface of the given size, backed by an
// image.RGBA and a rasterx.ScannerGV.
// Outlines are one pixel wide.
func New(width, height int) *Surface {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fillScanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	strokeScanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	s := &Surface{
		img:    img,
		filler: rasterx.NewFiller(width, height, fillScanner),
		dasher: rasterx.NewDasher(width, height, strokeScanner),
	}
	s.SetLineWidth(1)
	return s
}

// NewSurface is a drawing.Factory.
func NewSurface(width, height int) (drawing.Surface, error) {
	return New(width, height), nil
}

// RenderToImage renders d on a new surface and returns the image.
func RenderToImage(d *drawing.Drawing) (*image.RGBA, error) {
	s := New(d.Canvas.Width, d.Canvas.Height)
	if err := d.DrawTo(s); err != nil {
		return nil, err
	}
	return s.Image(), nil
}

// SetLineWidth sets the width of the outlines, in pixels.
func (s *Surface) SetLineWidth(width float64) {
	s.dasher.SetStroke(fixed.Int26_6(width*64), 4*64, rasterx.ButtCap, nil,
		rasterx.FlatGap, rasterx.MiterClip, nil, 0)
}

// Image returns the image drawn so far. It is not copied.
func (s *Surface) Image() *image.RGBA { return s.img }

// EncodePNG writes the image as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}

func (s *Surface) SetBackground(c color.Color) error {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return nil
}

func (s *Surface) SetColor(c color.Color) {
	s.filler.SetColor(c)
	s.dasher.SetColor(c)
}

func clampCoord(v int) fixed.Int26_6 {
	return fixed.Int26_6(min(coordLimit, max(-coordLimit, v)) << 6)
}

// addPolygon adds the closed polygon to the given adder
func addPolygon(xs, ys []int, p rasterx.Adder) {
	if len(xs) == 0 {
		return
	}
	p.Start(fixed.Point26_6{X: clampCoord(xs[0]), Y: clampCoord(ys[0])})
	for i := 1; i < len(xs); i++ {
		p.Line(fixed.Point26_6{X: clampCoord(xs[i]), Y: clampCoord(ys[i])})
	}
	p.Stop(true)
}

func (s *Surface) FillPolygon(xs, ys []int) error {
	addPolygon(xs, ys, s.filler)
	s.filler.Draw()
	s.filler.Clear()
	return nil
}

func (s *Surface) DrawPolygon(xs, ys []int) error {
	addPolygon(xs, ys, s.dasher)
	s.dasher.Draw()
	s.dasher.Clear()
	return nil
}
