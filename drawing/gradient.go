package drawing

import (
	"math"

	"github.com/benoitkugler/okdraw/instruct"
)

// bandSteps returns the number of gradient bands for dir.
// Rotated bands need more steps to cover the corners of the canvas.
func bandSteps(dir instruct.GradientDirection) int {
	switch dir {
	case instruct.DiagonalDown:
		return 150
	case instruct.DiagonalUp:
		return 110
	default:
		return 100
	}
}

// bandColor interpolates between start and end, truncating each channel.
func bandColor(start, end instruct.Color, i, steps int) instruct.Color {
	ratio := float64(i) / float64(steps)
	lerp := func(s, e uint8) int {
		return int(float64(e)*ratio + float64(s)*(1-ratio))
	}
	return instruct.RGB(lerp(start.R, end.R), lerp(start.G, end.G), lerp(start.B, end.B))
}

// band returns the polygon of step i of a gradient on a width x height canvas.
// Later bands overlap the earlier ones.
func band(dir instruct.GradientDirection, width, height, i int) Polygon {
	switch dir {
	case instruct.Horizontal:
		left := width * (i - 1) / 100
		return Polygon{
			Xs: []int{left, width, width, left},
			Ys: []int{0, 0, height, height},
		}
	case instruct.DiagonalDown, instruct.DiagonalUp:
		diag := int(math.Sqrt(math.Pow(float64(width), 2) + math.Pow(float64(height), 2)))
		shift, angle := 40, -15
		if dir == instruct.DiagonalUp {
			shift, angle = 5, 110
		}
		top := height * (i - shift) / 100
		p := Polygon{
			Xs: []int{0, diag, diag, 0},
			Ys: []int{top, top, 2 * height, 2 * height},
		}
		// pivot at half a canvas below the band top, not at the band centroid
		p.Rotate(diag/2, top+height/2, angle)
		return p
	default: // Vertical
		top := height * (i - 1) / 100
		return Polygon{
			Xs: []int{0, width, width, 0},
			Ys: []int{top, top, height, height},
		}
	}
}

// paintGradient fills the canvas with the start color, then with the
// overlapping bands of c.
func paintGradient(s Surface, c instruct.CanvasInstruction) error {
	if err := s.SetBackground(c.Start); err != nil {
		return surfaceErr("set background", err)
	}
	steps := bandSteps(c.Direction)
	for i := 0; i < steps; i++ {
		s.SetColor(bandColor(c.Start, c.End, i, steps))
		p := band(c.Direction, c.Width, c.Height, i)
		if err := s.FillPolygon(p.Xs, p.Ys); err != nil {
			return surfaceErr("fill polygon", err)
		}
	}
	return nil
}
