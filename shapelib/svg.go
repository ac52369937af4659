package shapelib

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/cases"

	"github.com/benoitkugler/okdraw/internal/logging"
)

// LoadSVG reads templates from an SVG document. Every polygon, polyline,
// rect and path element carrying an id becomes a shape named after the
// folded id. Paths may only use straight segments (M, L, H, V and Z
// commands, absolute or relative) and a single subpath.
// Other elements, and elements without id, are skipped.
func LoadSVG(stream io.Reader) ([]*Shape, error) {
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	fold := cases.Fold()

	var (
		out     []*Shape
		seenTag bool
	)
	for {
		t, err := decoder.Token()
		if err == io.EOF {
			if !seenTag {
				return nil, errors.New("invalid svg document")
			}
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		se, ok := t.(xml.StartElement)
		if !ok {
			continue
		}
		seenTag = true

		read, ok := svgElements[se.Name.Local]
		if !ok {
			continue
		}
		id := attr(se.Attr, "id")
		if id == "" {
			logging.Get().Debug("skipping svg element without id", "element", se.Name.Local)
			continue
		}
		points, err := read(se.Attr)
		if err != nil {
			return nil, fmt.Errorf("svg %s %q: %w", se.Name.Local, id, err)
		}
		s, err := NewShape(fold.String(id), points...)
		if err != nil {
			return nil, fmt.Errorf("svg %s %q: %w", se.Name.Local, id, err)
		}
		out = append(out, s)
	}
}

type svgFunc func(attrs []xml.Attr) ([]Point, error)

var svgElements = map[string]svgFunc{
	"polygon":  polygonF,
	"polyline": polygonF, // closed anyway
	"rect":     rectF,
	"path":     pathF,
}

func attr(attrs []xml.Attr, name string) string {
	for _, a := range attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// splitOnCommaOrSpace returns a list of strings after splitting the input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

func polygonF(attrs []xml.Attr) ([]Point, error) {
	fields := splitOnCommaOrSpace(attr(attrs, "points"))
	if len(fields)%2 != 0 {
		return nil, errors.New("odd number of coordinates")
	}
	points := make([]Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, err
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, err
		}
		points = append(points, Pt(x, y))
	}
	return points, nil
}

func rectF(attrs []xml.Attr) ([]Point, error) {
	var dims [4]float64 // x, y, width, height
	for i, name := range [...]string{"x", "y", "width", "height"} {
		v := attr(attrs, name)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, err
		}
		dims[i] = f
	}
	x, y, w, h := dims[0], dims[1], dims[2], dims[3]
	if w <= 0 || h <= 0 {
		return nil, errors.New("rect needs a positive width and height")
	}
	return []Point{Pt(x, y), Pt(x+w, y), Pt(x+w, y+h), Pt(x, y+h)}, nil
}

func pathF(attrs []xml.Attr) ([]Point, error) {
	return parsePathData(attr(attrs, "d"))
}

// pathLexer splits SVG path data into commands and numbers.
type pathLexer struct {
	src string
	pos int
}

func (l *pathLexer) skipSeparators() {
	for l.pos < len(l.src) && (l.src[l.pos] == ',' || unicode.IsSpace(rune(l.src[l.pos]))) {
		l.pos++
	}
}

func (l *pathLexer) done() bool {
	l.skipSeparators()
	return l.pos >= len(l.src)
}

// nextIsNumber reports whether a number follows, as opposed to a command
// or the end of data.
func (l *pathLexer) nextIsNumber() bool {
	if l.done() {
		return false
	}
	c := l.src[l.pos]
	return c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9')
}

func (l *pathLexer) command() (byte, error) {
	if l.done() {
		return 0, io.ErrUnexpectedEOF
	}
	c := l.src[l.pos]
	if !unicode.IsLetter(rune(c)) {
		return 0, fmt.Errorf("expected a command at offset %d", l.pos)
	}
	l.pos++
	return c, nil
}

func (l *pathLexer) number() (float64, error) {
	if !l.nextIsNumber() {
		return 0, fmt.Errorf("expected a number at offset %d", l.pos)
	}
	start := l.pos
	if c := l.src[l.pos]; c == '-' || c == '+' {
		l.pos++
	}
	seenDot := false
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c >= '0' && c <= '9':
		case c == '.' && !seenDot:
			seenDot = true
		case (c == 'e' || c == 'E') && l.pos > start:
			l.pos++
			if l.pos < len(l.src) && (l.src[l.pos] == '-' || l.src[l.pos] == '+') {
				l.pos++
			}
			continue
		default:
			return strconv.ParseFloat(l.src[start:l.pos], 64)
		}
		l.pos++
	}
	return strconv.ParseFloat(l.src[start:l.pos], 64)
}

func (l *pathLexer) pair() (float64, float64, error) {
	x, err := l.number()
	if err != nil {
		return 0, 0, err
	}
	y, err := l.number()
	return x, y, err
}

// parsePathData returns the vertices of a single closed subpath made of
// straight segments.
func parsePathData(d string) ([]Point, error) {
	lex := pathLexer{src: d}
	var (
		points []Point
		cur    Point
		closed bool
	)
	for !lex.done() {
		cmd, err := lex.command()
		if err != nil {
			return nil, err
		}
		if closed {
			return nil, errors.New("only one subpath is supported")
		}
		relative := unicode.IsLower(rune(cmd))
		first := true
		for first || lex.nextIsNumber() {
			switch unicode.ToUpper(rune(cmd)) {
			case 'M', 'L':
				if cmd == 'M' || cmd == 'm' {
					if len(points) > 0 && first {
						return nil, errors.New("only one subpath is supported")
					}
				}
				x, y, err := lex.pair()
				if err != nil {
					return nil, err
				}
				if relative {
					x, y = x+cur.X, y+cur.Y
				}
				cur = Pt(x, y)
			case 'H':
				x, err := lex.number()
				if err != nil {
					return nil, err
				}
				if relative {
					x += cur.X
				}
				cur.X = x
			case 'V':
				y, err := lex.number()
				if err != nil {
					return nil, err
				}
				if relative {
					y += cur.Y
				}
				cur.Y = y
			case 'Z':
				closed = true
			default:
				return nil, fmt.Errorf("unsupported path command %q", cmd)
			}
			if closed {
				break
			}
			points = append(points, cur)
			first = false
		}
	}
	return points, nil
}
