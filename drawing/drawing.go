package drawing

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/benoitkugler/okdraw/instruct"
	"github.com/benoitkugler/okdraw/shapelib"
)

// ErrShapeNotFound is returned when an instruction names a shape missing
// from the library.
var ErrShapeNotFound = shapelib.ErrShapeNotFound

// Drawing is a canvas with an ordered list of draw instructions, ready to
// be rendered against a shape library.
// Instructions are not modified by rendering, so a Drawing may be
// rendered several times, on distinct surfaces.
type Drawing struct {
	Canvas instruct.CanvasInstruction
	Draws  []instruct.DrawInstruction

	lib  *shapelib.Library
	opts options
}

// New returns a drawing of the instructions in file. A nil lib means
// shapelib.Default().
func New(lib *shapelib.Library, file *instruct.File, opts ...Option) *Drawing {
	d := &Drawing{
		Canvas: file.Canvas,
		Draws:  file.Draws,
		lib:    lib,
		opts:   defaultOptions(),
	}
	if d.lib == nil {
		d.lib = shapelib.Default()
	}
	for _, opt := range opts {
		opt(&d.opts)
	}
	return d
}

// Open reads the instruction file at path, using the error mode and the
// encoding set by opts, and returns the corresponding drawing.
func Open(lib *shapelib.Library, path string, opts ...Option) (*Drawing, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var (
		file *instruct.File
		err  error
	)
	if o.encoding == "" {
		file, err = instruct.ReadFile(path, o.errMode)
	} else {
		var fin *os.File
		fin, err = os.Open(path)
		if err != nil {
			return nil, err
		}
		defer fin.Close()
		file, err = instruct.ReadStreamEncoding(fin, o.encoding, o.errMode)
		if err != nil {
			err = fmt.Errorf("%s: %w", path, err)
		}
	}
	if err != nil {
		return nil, err
	}
	return New(lib, file, opts...), nil
}

// Render creates a surface of the canvas size with newSurface and draws on
// it. The surface is returned even when drawing fails midway, so that the
// caller may release it.
func (d *Drawing) Render(newSurface Factory) (Surface, error) {
	s, err := newSurface(d.Canvas.Width, d.Canvas.Height)
	if err != nil {
		return nil, surfaceErr("create", err)
	}
	return s, d.DrawTo(s)
}

// DrawTo paints the background then every instruction on s, which is
// expected to have the canvas size.
func (d *Drawing) DrawTo(s Surface) error {
	log := d.opts.log()
	log.Info("rendering drawing", "width", d.Canvas.Width, "height", d.Canvas.Height,
		"gradient", d.Canvas.Gradient, "instructions", len(d.Draws))

	if d.Canvas.Gradient {
		if err := paintGradient(s, d.Canvas); err != nil {
			return err
		}
	} else if err := s.SetBackground(d.Canvas.Solid); err != nil {
		return surfaceErr("set background", err)
	}

	for i, di := range d.Draws {
		if err := d.draw(s, di); err != nil {
			return fmt.Errorf("instruction %d (%s): %w", i+1, di.Shape, err)
		}
	}
	return nil
}

func (d *Drawing) lookup(name string) (*shapelib.Shape, error) {
	shape, err := d.lib.Lookup(name)
	if err == nil || !d.opts.fallback || !errors.Is(err, ErrShapeNotFound) || d.lib.Count() == 0 {
		return shape, err
	}
	shape = d.lib.At(0)
	d.opts.log().Warn("unknown shape, using fallback", "shape", name, "fallback", shape.Name())
	return shape, nil
}

// emit sends p to s, filled or stroked.
func emit(s Surface, filled bool, p Polygon) error {
	if filled {
		return surfaceErr("fill polygon", s.FillPolygon(p.Xs, p.Ys))
	}
	return surfaceErr("draw polygon", s.DrawPolygon(p.Xs, p.Ys))
}

// draw runs the transform pipeline of one instruction. The working polygon
// is mutated in place: a rotation is seen by every following copy.
func (d *Drawing) draw(s Surface, di instruct.DrawInstruction) error {
	shape, err := d.lookup(di.Shape)
	if err != nil {
		return err
	}
	p := NewPolygon(shape, di.Scale)

	startX, startY := di.X.Sentinel(), di.Y.Sentinel()
	randomX, randomY := di.X.IsRandom(), di.Y.IsRandom()
	// a single random axis still translates by the sentinel on that axis
	if !randomX || !randomY {
		p.Translate(startX, startY)
	}
	cx, cy := startX+di.Scale/2, startY+di.Scale/2

	d.opts.log().Debug("drawing shape", "shape", shape.Name(), "vertices", p.Len(),
		"bounds", p.Bounds(), "repeats", di.Repeats, "filled", di.Filled)

	s.SetColor(di.Color)
	if err := emit(s, di.Filled, p); err != nil {
		return err
	}

	for k := 1; k < di.Repeats; k++ {
		// the rotated copy is drawn before being offset
		if di.RepeatRotate > 0 {
			p.Rotate(cx, cy, di.RepeatRotate)
			if err := emit(s, di.Filled, p); err != nil {
				return err
			}
		}
		ox, oy := di.RepeatOffsetX, di.RepeatOffsetY
		if randomX {
			ox = d.opts.rand.Intn(d.Canvas.Width)
		}
		if randomY {
			oy = d.opts.rand.Intn(d.Canvas.Height)
		}
		p.Translate(ox, oy)
		if err := emit(s, di.Filled, p); err != nil {
			return err
		}
		if randomX || randomY {
			p.Translate(-ox, -oy)
		}
	}

	if di.Rotate > 1 {
		p.Rotate(cx, cy, di.Rotate)
		return emit(s, di.Filled, p)
	}
	return nil
}

func (d *Drawing) String() string {
	var b strings.Builder
	b.WriteString(d.Canvas.String())
	b.WriteByte('\n')
	for _, di := range d.Draws {
		b.WriteString(di.String())
	}
	return b.String()
}
