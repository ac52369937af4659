package drawing

import (
	"log/slog"
	"math/rand"

	"github.com/benoitkugler/okdraw/instruct"
)

// Intner is the source of the random offsets used for random positions.
// *rand.Rand implements it.
type Intner interface {
	// Intn returns a value in [0, n). n is always positive.
	Intn(n int) int
}

type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }

// Option configures a Drawing.
//
// Example:
//
//	d := drawing.New(nil, file, drawing.WithSeed(42), drawing.WithShapeFallback())
type Option func(*options)

type options struct {
	rand     Intner
	logger   *slog.Logger // nil means the package logger
	fallback bool

	// only used by Open
	errMode  instruct.ErrorMode
	encoding string
}

func defaultOptions() options {
	return options{rand: globalRand{}, errMode: instruct.WarnErrorMode}
}

func (o *options) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return Logger()
}

// WithRand sets the source of random offsets. A nil source restores the
// global math/rand source.
func WithRand(r Intner) Option {
	return func(o *options) {
		if r == nil {
			r = globalRand{}
		}
		o.rand = r
	}
}

// WithSeed uses a deterministic source seeded with seed, so that two renders
// of the same drawing emit the same polygons.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rand = rand.New(rand.NewSource(seed))
	}
}

// WithLogger overrides the package logger for one drawing.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithShapeFallback draws the first library shape instead of failing
// when an instruction names an unknown shape.
func WithShapeFallback() Option {
	return func(o *options) {
		o.fallback = true
	}
}

// WithErrorMode sets how Open handles malformed records.
// The default is instruct.WarnErrorMode.
func WithErrorMode(mode instruct.ErrorMode) Option {
	return func(o *options) {
		o.errMode = mode
	}
}

// WithEncoding makes Open decode the file with the charset named by label.
// The default is UTF-8.
func WithEncoding(label string) Option {
	return func(o *options) {
		o.encoding = label
	}
}
