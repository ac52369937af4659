package drawsvg

import (
	"bytes"
	"encoding/xml"
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benoitkugler/okdraw/drawing"
	"github.com/benoitkugler/okdraw/instruct"
)

func TestRenderDocument(t *testing.T) {
	file, err := instruct.ReadStream(strings.NewReader("width=200,height=100,red=255,green=255,blue=255\n"+
		"shape=square,x=10,y=10,scale=50,red=255,green=0,blue=0\n"+
		"shape=triangle,filled=false\n"), instruct.StrictErrorMode)
	require.NoError(t, err)

	var buf bytes.Buffer
	s, err := drawing.New(nil, file).Render(Factory(&buf))
	require.NoError(t, err)
	require.NoError(t, s.(*Surface).Close())

	out := buf.String()
	assert.Contains(t, out, `width="200" height="100"`)
	assert.Contains(t, out, `<rect x="0" y="0" width="200" height="100" style="fill:rgb(255,255,255)" />`)
	assert.Contains(t, out, `<polygon points="10,10 60,10 60,60 10,60" style="fill:rgb(255,0,0)" />`)
	assert.Contains(t, out, `<polygon points="0,100 50,0 100,100" style="fill:none;stroke-width:1;stroke:rgb(0,0,0)" />`)
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))

	// the document is well formed
	dec := xml.NewDecoder(&buf)
	for {
		_, err := dec.Token()
		if err != nil {
			assert.Equal(t, "EOF", err.Error())
			break
		}
	}
}

func TestCloseTwice(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, 1, 1)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	assert.Equal(t, 1, strings.Count(buf.String(), "</svg>"))
}

func TestTranslucentColor(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, 10, 10)
	require.NoError(t, s.SetBackground(color.NRGBA{0, 0, 255, 128}))
	s.SetColor(color.NRGBA{10, 20, 30, 255})
	require.NoError(t, s.FillPolygon([]int{0, 1, 1}, []int{0, 0, 1}))
	require.NoError(t, s.FillPolygon(nil, nil))

	out := buf.String()
	assert.Contains(t, out, `style="fill:rgb(0,0,255);fill-opacity:0.502"`)
	assert.Contains(t, out, `style="fill:rgb(10,20,30)"`)
}

type failingWriter struct{ calls int }

var errDiskFull = errors.New("disk full")

func (f *failingWriter) Write(p []byte) (int, error) {
	f.calls++
	if f.calls > 3 {
		return 0, errDiskFull
	}
	return len(p), nil
}

func TestWriteError(t *testing.T) {
	file, err := instruct.ReadStream(strings.NewReader("width=10,height=10\nshape=star\nshape=heart\n"), instruct.StrictErrorMode)
	require.NoError(t, err)

	_, err = drawing.New(nil, file).Render(Factory(&failingWriter{}))
	assert.ErrorIs(t, err, drawing.ErrSurface)
	assert.ErrorIs(t, err, errDiskFull)
}
