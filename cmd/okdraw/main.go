// Command okdraw renders instruction files.
//
// Usage:
//
//	okdraw [flags] FILE...
//
// Each FILE is rendered to OUT/NAME.EXT, where NAME is the base name of FILE
// without its extension and EXT depends on -format.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/benoitkugler/okdraw/drawgg"
	"github.com/benoitkugler/okdraw/drawing"
	"github.com/benoitkugler/okdraw/drawpdf"
	"github.com/benoitkugler/okdraw/drawraster"
	"github.com/benoitkugler/okdraw/drawsvg"
	"github.com/benoitkugler/okdraw/instruct"
	"github.com/benoitkugler/okdraw/shapelib"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type config struct {
	format   string
	outDir   string
	preview  bool
	columns  int
	drawOpts []drawing.Option
}

var extensions = map[string]string{
	"raster": ".png",
	"gg":     ".png",
	"svg":    ".svg",
	"pdf":    ".pdf",
	"none":   "",
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("okdraw", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		format   = fs.String("format", "raster", "output format: raster, gg, svg, pdf or none (dump the primitives)")
		outDir   = fs.String("out", ".", "output directory")
		errMode  = fs.String("errors", "warn", "malformed records: ignore, warn or strict")
		seed     = fs.Int64("seed", 0, "seed of the random placements (default: random)")
		shapes   = fs.String("shapes", "", "templates file (JSON, or SVG with a .svg extension), merged over the built-in shapes")
		encoding = fs.String("encoding", "", "charset of the instruction files (default: UTF-8)")
		preview  = fs.Bool("preview", false, "print a preview on the terminal")
		columns  = fs.Int("columns", 80, "width of the preview, in characters")
		verbose  = fs.Bool("v", false, "debug logging")
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: okdraw [flags] FILE...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}
	if _, ok := extensions[*format]; !ok {
		fmt.Fprintf(stderr, "okdraw: unknown format %q\n", *format)
		return 2
	}
	mode, err := instruct.ParseErrorMode(*errMode)
	if err != nil {
		fmt.Fprintln(stderr, "okdraw:", err)
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	drawing.SetLogger(logger)
	defer drawing.SetLogger(nil)

	lib := shapelib.NewLibrary()
	if *shapes != "" {
		if err := lib.LoadFile(*shapes); err != nil {
			logger.Error("loading shapes", "file", *shapes, "err", err)
			return 1
		}
	}

	cfg := config{
		format:   *format,
		outDir:   *outDir,
		preview:  *preview,
		columns:  *columns,
		drawOpts: []drawing.Option{drawing.WithErrorMode(mode), drawing.WithEncoding(*encoding)},
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.drawOpts = append(cfg.drawOpts, drawing.WithSeed(*seed))
		}
	})

	exitCode := 0
	for _, path := range fs.Args() {
		output, err := renderFile(lib, path, cfg, stdout)
		if err != nil {
			logger.Error("rendering failed", "file", path, "err", err)
			exitCode = 1
			continue
		}
		if output != "" {
			logger.Info("drawing saved", "file", path, "output", output)
		}
	}
	return exitCode
}

// renderFile renders the instruction file at path and returns the path of
// the written output, if any.
func renderFile(lib *shapelib.Library, path string, cfg config, stdout io.Writer) (string, error) {
	d, err := drawing.Open(lib, path, cfg.drawOpts...)
	if err != nil {
		return "", err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	output := filepath.Join(cfg.outDir, name+extensions[cfg.format])
	width, height := d.Canvas.Width, d.Canvas.Height

	// rendered once, so that every output shows the same random placements
	rec := drawing.NewRecorder(width, height)
	if err := d.DrawTo(rec); err != nil {
		return "", err
	}

	var previewSource *drawraster.Surface
	switch cfg.format {
	case "raster":
		s := drawraster.New(width, height)
		if err := rec.Replay(s); err != nil {
			return "", err
		}
		previewSource = s
		err = writeFile(output, s.EncodePNG)
	case "gg":
		s := drawgg.New(width, height)
		defer s.Close()
		if err := rec.Replay(s); err != nil {
			return "", err
		}
		err = writeFile(output, s.EncodePNG)
	case "svg":
		err = writeFile(output, func(w io.Writer) error {
			s := drawsvg.New(w, width, height)
			if err := rec.Replay(s); err != nil {
				return err
			}
			return s.Close()
		})
	case "pdf":
		s := drawpdf.New(width, height)
		if err := rec.Replay(s); err != nil {
			return "", err
		}
		err = s.OutputFile(output)
	case "none":
		output = ""
		_, err = io.WriteString(stdout, rec.String())
	}
	if err != nil {
		return "", err
	}

	if cfg.preview {
		if previewSource == nil {
			previewSource = drawraster.New(width, height)
			if err := rec.Replay(previewSource); err != nil {
				return "", err
			}
		}
		if err := drawraster.WritePreview(stdout, previewSource.Image(), cfg.columns); err != nil {
			return "", err
		}
	}
	return output, nil
}

// writeFile creates the named file and fills it with write.
// A failed write removes the partial file.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return errors.Join(err, os.Remove(path))
	}
	return nil
}
