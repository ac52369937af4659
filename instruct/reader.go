package instruct

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/benoitkugler/okdraw/internal/logging"
)

// ErrorMode determines how a malformed record is handled.
type ErrorMode uint8

const (
	IgnoreErrorMode ErrorMode = iota // skip the record silently
	WarnErrorMode                    // skip the record and log a warning
	StrictErrorMode                  // abort reading with the error
)

func (m ErrorMode) String() string {
	switch m {
	case IgnoreErrorMode:
		return "ignore"
	case WarnErrorMode:
		return "warn"
	case StrictErrorMode:
		return "strict"
	default:
		return "<unknown ErrorMode>"
	}
}

// ParseErrorMode is the inverse of ErrorMode.String.
func ParseErrorMode(s string) (ErrorMode, error) {
	switch strings.ToLower(s) {
	case "ignore":
		return IgnoreErrorMode, nil
	case "warn":
		return WarnErrorMode, nil
	case "strict":
		return StrictErrorMode, nil
	}
	return 0, fmt.Errorf("unknown error mode %q", s)
}

// ErrMissingCanvas is returned when a stream holds no record at all.
var ErrMissingCanvas = errors.New("missing canvas record")

// maxRecordSize bounds the length of a single line.
const maxRecordSize = 1 << 20

// File is the parsed content of an instruction file.
type File struct {
	Canvas CanvasInstruction
	Draws  []DrawInstruction

	// Skipped holds the errors of the records discarded in
	// IgnoreErrorMode and WarnErrorMode.
	Skipped []error
}

func (f *File) String() string {
	var b strings.Builder
	b.WriteString(f.Canvas.String())
	b.WriteByte('\n')
	for _, d := range f.Draws {
		b.WriteString(d.String())
	}
	return b.String()
}

// ReadStream reads an UTF-8 instruction stream: the first non-empty line is
// the canvas record, each following non-empty line a draw record.
// errMode determines if a malformed record is skipped, logged or aborts the read.
// A discarded canvas record is replaced by DefaultCanvas.
func ReadStream(stream io.Reader, errMode ErrorMode) (*File, error) {
	scanner := bufio.NewScanner(stream)
	scanner.Buffer(make([]byte, 0, 4096), maxRecordSize)

	var (
		file      File
		seenFirst bool
		lineNo    int
	)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		if line == "" {
			continue
		}

		var err error
		if !seenFirst {
			seenFirst = true
			file.Canvas, err = ParseCanvas(line)
			if err != nil {
				file.Canvas = DefaultCanvas()
			}
		} else {
			var d DrawInstruction
			d, err = ParseDraw(line)
			if err == nil {
				file.Draws = append(file.Draws, d)
			}
		}
		if err == nil {
			continue
		}

		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Line = lineNo
		}
		switch errMode {
		case StrictErrorMode:
			return nil, err
		case WarnErrorMode:
			logging.Get().Warn("skipping malformed record", "line", lineNo, "err", err)
		}
		file.Skipped = append(file.Skipped, err)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading instructions: %w", err)
	}
	if !seenFirst {
		return nil, ErrMissingCanvas
	}
	logging.Get().Debug("instructions read", "draws", len(file.Draws), "skipped", len(file.Skipped))
	return &file, nil
}

// ReadStreamEncoding is like ReadStream for a stream encoded with the charset
// named by label, such as "latin1" or "utf-16le".
func ReadStreamEncoding(stream io.Reader, label string, errMode ErrorMode) (*File, error) {
	decoded, err := charset.NewReaderLabel(label, stream)
	if err != nil {
		return nil, err
	}
	return ReadStream(decoded, errMode)
}

// ReadFile reads the named instruction file. The file is closed before returning.
func ReadFile(path string, errMode ErrorMode) (*File, error) {
	fin, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	file, err := ReadStream(fin, errMode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}
