package instruct

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// This file implements the record grammar:
//
//	record := field ("," field)*
//	field  := key "=" value
//
// Keys are case folded, blanks around keys and values are ignored and
// unknown keys are skipped.

var (
	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("malformed record")

	errMissingValue = errors.New("missing value")
)

// ParseError reports a malformed field. The whole record is discarded.
type ParseError struct {
	Line  int // 1-based line number, or 0 when unknown
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, "field %q: ", e.Field)
	}
	b.WriteString(ErrParse.Error())
	if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

type field struct {
	key, value string
}

// splitRecord cuts a record into its fields. Empty fields are skipped.
func splitRecord(record string) ([]field, error) {
	fold := cases.Fold()
	var out []field
	for _, chunk := range strings.Split(record, ",") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		key, value, ok := strings.Cut(chunk, "=")
		key = fold.String(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		if !ok || key == "" || value == "" {
			return nil, &ParseError{Field: key, Err: errMissingValue}
		}
		out = append(out, field{key: key, value: value})
	}
	return out, nil
}

// Integers are 32 bits wide, so that the random sentinel is the smallest value.
func (f field) int() (int, error) {
	n, err := strconv.ParseInt(f.value, 10, 32)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok {
			err = ne.Err
		}
		return 0, &ParseError{Field: f.key, Err: fmt.Errorf("%q: %w", f.value, err)}
	}
	return int(n), nil
}

// channels accumulates a color given channel by channel.
// Channels not supplied default to 255.
type channels struct {
	r, g, b int
	seen    bool
}

func newChannels() channels { return channels{r: 255, g: 255, b: 255} }

func (c *channels) set(dst *int, f field) error {
	v, err := f.int()
	if err != nil {
		return err
	}
	*dst = v
	c.seen = true
	return nil
}

// color returns nil when no channel was supplied.
func (c channels) color() *Color {
	if !c.seen {
		return nil
	}
	col := RGB(c.r, c.g, c.b)
	return &col
}

// ParseCanvas parses a canvas record.
func ParseCanvas(record string) (CanvasInstruction, error) {
	fields, err := splitRecord(record)
	if err != nil {
		return CanvasInstruction{}, err
	}

	width, height := DefaultWidth, DefaultHeight
	solid, start, end := newChannels(), newChannels(), newChannels()
	dir := 0
	for _, f := range fields {
		switch f.key {
		case "width":
			width, err = f.int()
		case "height":
			height, err = f.int()
		case "red":
			err = solid.set(&solid.r, f)
		case "green":
			err = solid.set(&solid.g, f)
		case "blue":
			err = solid.set(&solid.b, f)
		case "gradstartred":
			err = start.set(&start.r, f)
		case "gradstartgreen":
			err = start.set(&start.g, f)
		case "gradstartblue":
			err = start.set(&start.b, f)
		case "gradendred":
			err = end.set(&end.r, f)
		case "gradendgreen":
			err = end.set(&end.g, f)
		case "gradendblue":
			err = end.set(&end.b, f)
		case "graddir":
			dir, err = f.int()
		}
		if err != nil {
			return CanvasInstruction{}, err
		}
	}
	return NewCanvas(width, height, solid.color(), start.color(), end.color(), GradientDirection(dir)), nil
}

// ParseDraw parses a draw record.
func ParseDraw(record string) (DrawInstruction, error) {
	fields, err := splitRecord(record)
	if err != nil {
		return DrawInstruction{}, err
	}

	d := DefaultDraw()
	var x, y, r, g, b int
	ints := map[string]*int{
		"scale":   &d.Scale,
		"x":       &x,
		"y":       &y,
		"rep":     &d.Repeats,
		"repoffx": &d.RepeatOffsetX,
		"repoffy": &d.RepeatOffsetY,
		"rotate":  &d.Rotate,
		"reprot":  &d.RepeatRotate,
		"red":     &r,
		"green":   &g,
		"blue":    &b,
	}
	for _, f := range fields {
		switch f.key {
		case "shape":
			d.Shape = cases.Fold().String(f.value)
		case "filled":
			d.Filled = !strings.EqualFold(f.value, "false")
		default:
			dst, ok := ints[f.key]
			if !ok {
				continue
			}
			if *dst, err = f.int(); err != nil {
				return DrawInstruction{}, err
			}
		}
	}
	d.X, d.Y = PositionOf(x), PositionOf(y)
	d.Color = RGB(r, g, b)
	if err := d.Normalize(); err != nil {
		return DrawInstruction{}, &ParseError{Field: "shape", Err: err}
	}
	return d, nil
}
