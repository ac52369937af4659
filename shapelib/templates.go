package shapelib

// This file holds the coordinate tables of the built-in templates.
// They are part of the instruction file contract and must not change.

// Names of the built-in templates, in library order.
const (
	Square   = "square"
	Star     = "star"
	Circle   = "circle"
	Heart    = "heart"
	Rhombus  = "rhombus"
	Triangle = "triangle"
)

// starInner and starOuter are the radii of the four-point star.
const (
	starInner = 10
	starOuter = 50
)

func squareTemplate() *Shape {
	return mustShape(Square,
		Pt(0, 0), Pt(100, 0), Pt(100, 100), Pt(0, 100))
}

func starTemplate() *Shape {
	const c = 50
	return mustShape(Star,
		Pt(c, c-starOuter),
		Pt(c+starInner, c-starInner),
		Pt(c+starOuter, c),
		Pt(c+starInner, c+starInner),
		Pt(c, c+starOuter),
		Pt(c-starInner, c+starInner),
		Pt(c-starOuter, c),
		Pt(c-starInner, c-starInner),
	)
}

// circleTemplate approximates a circle of radius 50 with 24 segments.
// The last vertex repeats the first one.
func circleTemplate() *Shape {
	return mustShape(Circle,
		Pt(100, 50), Pt(98, 37), Pt(93, 25), Pt(85, 15), Pt(75, 7), Pt(63, 2),
		Pt(50, 0), Pt(37, 2), Pt(25, 7), Pt(15, 15), Pt(7, 25), Pt(2, 37),
		Pt(0, 50), Pt(2, 63), Pt(7, 75), Pt(15, 85), Pt(25, 93), Pt(37, 98),
		Pt(50, 100), Pt(63, 98), Pt(75, 93), Pt(85, 85), Pt(93, 75), Pt(98, 63),
		Pt(100, 50),
	)
}

// heartTemplate is two lobes above the apex (50, 100).
func heartTemplate() *Shape {
	return mustShape(Heart,
		// right lobe
		Pt(100, 25), Pt(99, 19), Pt(97, 13), Pt(93, 7), Pt(88, 3), Pt(81, 1),
		Pt(75, 0), Pt(69, 1), Pt(63, 3), Pt(57, 7), Pt(53, 13), Pt(51, 19),
		Pt(50, 25),
		// left lobe
		Pt(49, 19), Pt(47, 13), Pt(43, 7), Pt(38, 3), Pt(31, 1), Pt(25, 0),
		Pt(19, 1), Pt(13, 3), Pt(7, 7), Pt(3, 13), Pt(1, 19), Pt(0, 25),
		// apex
		Pt(50, 100), Pt(100, 25),
	)
}

func rhombusTemplate() *Shape {
	return mustShape(Rhombus,
		Pt(50, 0), Pt(100, 50), Pt(50, 100), Pt(0, 50))
}

func triangleTemplate() *Shape {
	return mustShape(Triangle,
		Pt(0, 100), Pt(50, 0), Pt(100, 100))
}

// Builtins returns freshly built copies of the six built-in templates.
func Builtins() []*Shape {
	return []*Shape{
		squareTemplate(),
		starTemplate(),
		circleTemplate(),
		heartTemplate(),
		rhombusTemplate(),
		triangleTemplate(),
	}
}
