package instruct

import (
	"math"
	"strconv"
)

// RandomSentinel is the coordinate value which, in an instruction file,
// requests a random placement on that axis.
const RandomSentinel = math.MinInt32

// Position is a starting coordinate on one axis: either a fixed value or
// a request for random placement.
type Position struct {
	value  int
	random bool
}

// Fixed returns a fixed position.
func Fixed(v int) Position { return Position{value: v} }

// Random returns a position placed randomly on every draw.
func Random() Position { return Position{random: true} }

// PositionOf decodes the file representation, where RandomSentinel means random.
func PositionOf(v int) Position {
	if v == RandomSentinel {
		return Random()
	}
	return Fixed(v)
}

// IsRandom reports whether the position requests random placement.
func (p Position) IsRandom() bool { return p.random }

// Value returns the fixed coordinate, or 0 for a random position.
func (p Position) Value() int { return p.value }

// Sentinel returns the file representation: RandomSentinel for a random
// position, the coordinate otherwise.
func (p Position) Sentinel() int {
	if p.random {
		return RandomSentinel
	}
	return p.value
}

func (p Position) String() string {
	if p.random {
		return "random"
	}
	return strconv.Itoa(p.Value())
}
