package instruct

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	for _, n := range []int{-1000, -1, 0, 1, 128, 254, 255, 256, 1 << 30} {
		c := Clamp(n)
		assert.True(t, 0 <= c && c <= 255, "Clamp(%d) = %d", n, c)
		assert.Equal(t, c, Clamp(c), "idempotent for %d", n)
	}
	assert.Equal(t, Color{0, 128, 255}, RGB(-5, 128, 999))
}

func TestParseCanvas(t *testing.T) {
	red, blue, gray := Color{255, 0, 0}, Color{0, 0, 255}, Color{128, 128, 128}

	tests := []struct {
		description string
		record      string
		want        CanvasInstruction
	}{
		{
			"solid white default",
			"width=50,height=50",
			CanvasInstruction{Width: 50, Height: 50, Solid: White},
		},
		{
			"defaults",
			"",
			CanvasInstruction{Width: 100, Height: 100, Solid: White},
		},
		{
			"explicit solid",
			"width=200,height=200,red=255,green=255,blue=255",
			CanvasInstruction{Width: 200, Height: 200, Solid: White},
		},
		{
			"partial solid channels default to 255",
			"red=0",
			CanvasInstruction{Width: 100, Height: 100, Solid: Color{0, 255, 255}},
		},
		{
			"dimensions lifted",
			"width=0,height=-40",
			CanvasInstruction{Width: 1, Height: 1, Solid: White},
		},
		{
			"vertical gradient",
			"width=100,height=100,gradstartred=255,gradstartgreen=0,gradstartblue=0,gradendred=0,gradendgreen=0,gradendblue=255,graddir=0",
			CanvasInstruction{Width: 100, Height: 100, Gradient: true, Start: red, End: blue, Direction: Vertical},
		},
		{
			"same color gradient collapses",
			"gradstartred=128,gradstartgreen=128,gradstartblue=128,gradendred=128,gradendgreen=128,gradendblue=128,graddir=2",
			CanvasInstruction{Width: 100, Height: 100, Solid: gray, Direction: DiagonalDown},
		},
		{
			"lone start becomes solid",
			"red=1,green=2,blue=3,gradstartred=255,gradstartgreen=0,gradstartblue=0",
			CanvasInstruction{Width: 100, Height: 100, Solid: red},
		},
		{
			"lone end becomes solid",
			"gradendred=0,gradendgreen=0,gradendblue=255",
			CanvasInstruction{Width: 100, Height: 100, Solid: blue},
		},
		{
			"direction out of range",
			"gradstartred=0,gradendred=255,graddir=7",
			CanvasInstruction{Width: 100, Height: 100, Gradient: true,
				Start: Color{0, 255, 255}, End: White, Direction: Vertical},
		},
		{
			"channels clamped",
			"gradstartred=-20,gradstartgreen=300,gradstartblue=0,gradendred=0,gradendgreen=0,gradendblue=0,graddir=3",
			CanvasInstruction{Width: 100, Height: 100, Gradient: true,
				Start: Color{0, 255, 0}, End: Black, Direction: DiagonalUp},
		},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			got, err := ParseCanvas(tt.record)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCanvasCaseAndUnknownKeys(t *testing.T) {
	base, err := ParseCanvas("width=50,height=60,red=10")
	require.NoError(t, err)

	for _, record := range []string{
		"Width=50,HEIGHT=60,Red=10",
		"  width = 50 ,height=60 , red=10  ",
		"width=50,foo=bar,height=60,red=10,gradient=yes",
		"width=50,height=60,red=10,",
	} {
		got, err := ParseCanvas(record)
		require.NoError(t, err, record)
		assert.Equal(t, base, got, record)
	}
}

func TestParseDraw(t *testing.T) {
	tests := []struct {
		description string
		record      string
		want        DrawInstruction
	}{
		{
			"defaults",
			"",
			DefaultDraw(),
		},
		{
			"filled square",
			"shape=square,x=10,y=10,scale=50,red=255,green=0,blue=0",
			DrawInstruction{Shape: "square", Scale: 50, X: Fixed(10), Y: Fixed(10), Repeats: 1,
				Filled: true, Color: Color{255, 0, 0}},
		},
		{
			"outline triangle",
			"shape=triangle,filled=false,scale=100,red=0,green=0,blue=0",
			DrawInstruction{Shape: "triangle", Scale: 100, X: Fixed(0), Y: Fixed(0), Repeats: 1,
				Filled: false, Color: Black},
		},
		{
			"repeats and offsets",
			"shape=rhombus,x=0,y=0,scale=20,rep=3,repoffx=25,repoffy=-4,reprot=15,rotate=30,blue=255",
			DrawInstruction{Shape: "rhombus", Scale: 20, X: Fixed(0), Y: Fixed(0), Repeats: 3,
				RepeatOffsetX: 25, RepeatOffsetY: -4, RepeatRotate: 15, Rotate: 30,
				Filled: true, Color: Color{0, 0, 255}},
		},
		{
			"random sentinel",
			"shape=circle,x=-2147483648,y=-2147483648,rep=5",
			DrawInstruction{Shape: "circle", Scale: 100, X: Random(), Y: Random(), Repeats: 5,
				Filled: true, Color: Black},
		},
		{
			"lifted and clamped",
			"shape=star,scale=0,rep=-3,red=400,green=-1",
			DrawInstruction{Shape: "star", Scale: 1, X: Fixed(0), Y: Fixed(0), Repeats: 1,
				Filled: true, Color: Color{255, 0, 0}},
		},
		{
			"values folded",
			"SHAPE=Heart,Filled=FALSE",
			DrawInstruction{Shape: "heart", Scale: 100, X: Fixed(0), Y: Fixed(0), Repeats: 1, Color: Black},
		},
		{
			"any other filled value fills",
			"shape=heart,filled=no",
			DrawInstruction{Shape: "heart", Scale: 100, X: Fixed(0), Y: Fixed(0), Repeats: 1,
				Filled: true, Color: Black},
		},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			got, err := ParseDraw(tt.record)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			withUnknown, err := ParseDraw(tt.record + ",foo=bar")
			require.NoError(t, err)
			assert.Equal(t, got, withUnknown)
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, record := range []string{
		"width",
		"width=",
		"width=abc",
		"width=12.5",
		"=5",
		"height=99999999999",
	} {
		_, err := ParseCanvas(record)
		require.Error(t, err, record)
		assert.True(t, errors.Is(err, ErrParse), record)
	}

	_, err := ParseDraw("shape=square,scale=big")
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "scale", pe.Field)
	assert.Contains(t, pe.Error(), `"big"`)

	_, err = ParseDraw("shape=square,foo")
	assert.True(t, errors.Is(err, ErrParse))
}

func TestPosition(t *testing.T) {
	assert.True(t, PositionOf(RandomSentinel).IsRandom())
	assert.False(t, PositionOf(RandomSentinel+1).IsRandom())
	assert.Equal(t, RandomSentinel, Random().Sentinel())
	assert.Equal(t, -7, Fixed(-7).Sentinel())
	assert.Equal(t, "random", Random().String())
	assert.Equal(t, "12", Fixed(12).String())
	assert.Equal(t, 12, Fixed(12).Value())
	assert.Equal(t, 0, Random().Value())
}

func TestColorConversions(t *testing.T) {
	c := RGB(10, 200, 30)
	assert.Equal(t, color.NRGBA{R: 10, G: 200, B: 30, A: 0xff}, c.NRGBA())
	assert.Equal(t, color.NRGBA{R: 10, G: 200, B: 30, A: 0xff}, color.NRGBAModel.Convert(c))
	_, _, _, a := c.RGBA()
	assert.Equal(t, uint32(0xffff), a)
}

func TestNormalize(t *testing.T) {
	d := DefaultDraw()
	d.Shape = ""
	assert.True(t, errors.Is(d.Normalize(), ErrInvalidArgument))

	d = DrawInstruction{Shape: "x", Scale: -1, Repeats: 0}
	require.NoError(t, d.Normalize())
	assert.Equal(t, 1, d.Scale)
	assert.Equal(t, 1, d.Repeats)
}

func TestCanvasString(t *testing.T) {
	solid := DefaultCanvas().String()
	assert.Contains(t, solid, "colorSolid: rgb(255,255,255)")
	assert.Contains(t, solid, "isGradient: false")

	grad, err := ParseCanvas("gradstartred=0,gradendred=10")
	require.NoError(t, err)
	assert.Contains(t, grad.String(), "colorStart: rgb(0,255,255) colorEnd: rgb(10,255,255)")
}
