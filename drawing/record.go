package drawing

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/benoitkugler/okdraw/instruct"
)

// OpKind is the kind of a recorded surface operation.
type OpKind uint8

const (
	OpBackground OpKind = iota
	OpFill
	OpStroke
)

func (k OpKind) String() string {
	switch k {
	case OpBackground:
		return "background"
	case OpFill:
		return "fill"
	case OpStroke:
		return "stroke"
	default:
		return "<unknown OpKind>"
	}
}

// Op is one recorded surface operation. Xs and Ys are nil for OpBackground.
type Op struct {
	Kind   OpKind
	Color  instruct.Color
	Xs, Ys []int
}

// Polygon returns the vertices of the operation.
func (op Op) Polygon() Polygon { return Polygon{Xs: op.Xs, Ys: op.Ys} }

func (op Op) String() string {
	if op.Kind == OpBackground {
		return fmt.Sprintf("%s %s", op.Kind, op.Color)
	}
	return fmt.Sprintf("%s %s %s", op.Kind, op.Color, op.Polygon())
}

// Recorder is a Surface storing the operations it receives, useful to
// inspect or replay a rendering.
type Recorder struct {
	Width, Height int
	Ops           []Op

	current instruct.Color
}

var _ Surface = (*Recorder)(nil)

// NewRecorder returns an empty recorder. The current color is black.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height, current: instruct.Black}
}

// Recording is a Factory for Recorder surfaces.
func Recording(width, height int) (Surface, error) {
	return NewRecorder(width, height), nil
}

func toColor(c color.Color) instruct.Color {
	if ic, ok := c.(instruct.Color); ok {
		return ic
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return instruct.Color{R: n.R, G: n.G, B: n.B}
}

func (r *Recorder) SetBackground(c color.Color) error {
	r.Ops = append(r.Ops, Op{Kind: OpBackground, Color: toColor(c)})
	return nil
}

func (r *Recorder) SetColor(c color.Color) { r.current = toColor(c) }

func (r *Recorder) FillPolygon(xs, ys []int) error {
	r.record(OpFill, xs, ys)
	return nil
}

func (r *Recorder) DrawPolygon(xs, ys []int) error {
	r.record(OpStroke, xs, ys)
	return nil
}

func (r *Recorder) record(kind OpKind, xs, ys []int) {
	r.Ops = append(r.Ops, Op{
		Kind:  kind,
		Color: r.current,
		Xs:    append([]int(nil), xs...),
		Ys:    append([]int(nil), ys...),
	})
}

// Polygons returns the fill and stroke operations, skipping the
// backgrounds.
func (r *Recorder) Polygons() []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind != OpBackground {
			out = append(out, op)
		}
	}
	return out
}

// Replay sends the recorded operations to s, in order.
func (r *Recorder) Replay(s Surface) error {
	for _, op := range r.Ops {
		var err error
		switch op.Kind {
		case OpBackground:
			err = surfaceErr("set background", s.SetBackground(op.Color))
		case OpFill:
			s.SetColor(op.Color)
			err = surfaceErr("fill polygon", s.FillPolygon(op.Xs, op.Ys))
		case OpStroke:
			s.SetColor(op.Color)
			err = surfaceErr("draw polygon", s.DrawPolygon(op.Xs, op.Ys))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Recorder) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "surface %dx%d\n", r.Width, r.Height)
	for _, op := range r.Ops {
		b.WriteString(op.String())
		b.WriteByte('\n')
	}
	return b.String()
}
