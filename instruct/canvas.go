package instruct

import (
	"fmt"
	"strings"
)

// GradientDirection selects how the canvas gradient is laid out.
type GradientDirection int

const (
	Vertical     GradientDirection = iota // top to bottom
	Horizontal                            // left to right
	DiagonalDown                          // top-left to bottom-right, rotated bands
	DiagonalUp                            // top-right to bottom-left, rotated bands
)

// Bounds of a valid gradient direction.
const (
	MinGradientDirection = Vertical
	MaxGradientDirection = DiagonalUp
)

func (d GradientDirection) String() string {
	switch d {
	case Vertical:
		return "Vertical"
	case Horizontal:
		return "Horizontal"
	case DiagonalDown:
		return "DiagonalDown"
	case DiagonalUp:
		return "DiagonalUp"
	default:
		return "<unknown GradientDirection>"
	}
}

// Default canvas dimensions.
const (
	DefaultWidth  = 100
	DefaultHeight = 100
)

// CanvasInstruction describes the background of a drawing.
//
// When Gradient is false, Solid holds the background color and Start, End
// are zero. When Gradient is true, Start and End differ and Solid is zero.
type CanvasInstruction struct {
	Width, Height int

	Gradient   bool
	Solid      Color
	Start, End Color
	Direction  GradientDirection
}

// NewCanvas builds a normalized canvas. Nil colors are colors that were not
// supplied:
//   - a lone start or end color becomes the solid color;
//   - equal start and end colors collapse to a solid fill;
//   - without gradient nor solid color, the canvas is solid white.
//
// Dimensions are lifted to at least 1 and an out of range direction is reset
// to Vertical.
func NewCanvas(width, height int, solid, start, end *Color, dir GradientDirection) CanvasInstruction {
	c := CanvasInstruction{Width: max(1, width), Height: max(1, height)}

	if dir < MinGradientDirection || dir > MaxGradientDirection {
		dir = Vertical
	}
	c.Direction = dir

	switch {
	case start == nil && end != nil:
		solid, end = end, nil
	case end == nil && start != nil:
		solid, start = start, nil
	}

	if start != nil && end != nil {
		if *start == *end {
			solid = start
		} else {
			c.Gradient = true
			c.Start, c.End = *start, *end
			return c
		}
	}

	if solid == nil {
		c.Solid = White
	} else {
		c.Solid = *solid
	}
	return c
}

// DefaultCanvas returns the 100x100 solid white canvas.
func DefaultCanvas() CanvasInstruction {
	return NewCanvas(DefaultWidth, DefaultHeight, nil, nil, nil, Vertical)
}

func (c CanvasInstruction) String() string {
	var b strings.Builder
	b.WriteString("Canvas:\n")
	fmt.Fprintf(&b, "Width: %d Height: %d\n", c.Width, c.Height)
	if c.Gradient {
		fmt.Fprintf(&b, "colorStart: %s colorEnd: %s gradDirection: %d\n", c.Start, c.End, c.Direction)
	} else {
		fmt.Fprintf(&b, "colorSolid: %s\n", c.Solid)
	}
	fmt.Fprintf(&b, "isGradient: %t\n", c.Gradient)
	return b.String()
}
