package instruct

import (
	"fmt"
	"image/color"
)

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

var (
	White = Color{255, 255, 255}
	Black = Color{0, 0, 0}
)

var _ color.Color = Color{}

// Clamp limits an RGB channel value to [0, 255].
func Clamp(n int) int {
	return min(255, max(0, n))
}

// RGB builds a Color, clamping each channel.
func RGB(r, g, b int) Color {
	return Color{R: uint8(Clamp(r)), G: uint8(Clamp(g)), B: uint8(Clamp(b))}
}

// RGBA implements color.Color. The alpha channel is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA converts c to the standard library representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

func (c Color) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}
