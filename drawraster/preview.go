package drawraster

import (
	"bufio"
	"fmt"
	"image"
	"io"

	"golang.org/x/image/draw"
)

// WritePreview prints img on a true color terminal, columns characters
// wide. Each character cell shows two vertically stacked pixels, using the
// upper half block glyph with distinct foreground and background colors.
func WritePreview(w io.Writer, img image.Image, columns int) error {
	src := img.Bounds()
	if columns <= 0 || src.Empty() {
		return nil
	}
	rows := max(1, src.Dy()*columns/src.Dx()/2)
	dst := image.NewNRGBA(image.Rect(0, 0, columns, 2*rows))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)

	out := bufio.NewWriter(w)
	for y := 0; y < 2*rows; y += 2 {
		for x := 0; x < columns; x++ {
			top, bottom := dst.NRGBAAt(x, y), dst.NRGBAAt(x, y+1)
			fmt.Fprintf(out, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
				top.R, top.G, top.B, bottom.R, bottom.G, bottom.B)
		}
		out.WriteString("\x1b[0m\n")
	}
	return out.Flush()
}
