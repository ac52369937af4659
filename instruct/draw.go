package instruct

import (
	"fmt"

	"github.com/benoitkugler/okdraw/shapelib"
)

// ErrInvalidArgument is shared with shapelib so that callers match a single value.
var ErrInvalidArgument = shapelib.ErrInvalidArgument

// DefaultShape is the shape name of a draw record without a shape key.
const DefaultShape = "none"

// DrawInstruction describes the drawing of one library shape, possibly
// repeated.
type DrawInstruction struct {
	Shape string
	// Scale is a percentage of the 100x100 template size.
	Scale int
	X, Y  Position

	// Repeats is the total number of copies drawn.
	Repeats                      int
	RepeatOffsetX, RepeatOffsetY int

	Filled bool
	Color  Color

	// Rotate and RepeatRotate are angles in degrees.
	Rotate       int
	RepeatRotate int
}

// DefaultDraw returns the instruction used for the keys absent from a record.
func DefaultDraw() DrawInstruction {
	return DrawInstruction{
		Shape:   DefaultShape,
		Scale:   100,
		X:       Fixed(0),
		Y:       Fixed(0),
		Repeats: 1,
		Filled:  true,
		Color:   Black,
	}
}

// Normalize lifts Scale and Repeats to at least 1. It fails on an empty
// shape name.
func (d *DrawInstruction) Normalize() error {
	if d.Shape == "" {
		return fmt.Errorf("%w: shape names must not be empty", ErrInvalidArgument)
	}
	d.Scale = max(1, d.Scale)
	d.Repeats = max(1, d.Repeats)
	return nil
}

func (d DrawInstruction) String() string {
	return fmt.Sprintf("shapeName: %s scalePercent: %d startingX: %s\n"+
		"startingY: %s repeats: %d repeatOffSetX: %d\n"+
		"repeatOffSetY: %d filled: %t color: %s\n"+
		"rotate: %d repeatRotate: %d\n\n",
		d.Shape, d.Scale, d.X,
		d.Y, d.Repeats, d.RepeatOffsetX,
		d.RepeatOffsetY, d.Filled, d.Color,
		d.Rotate, d.RepeatRotate)
}
