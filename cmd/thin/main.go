// Command thin computes thinned contours of a shape from its axis graph.
//
// Usage:
//
//	thin [flags] shape.{yaml,toml,json}
//
// By default, the shape thinned by -c is printed as a string of SVG path
// commands. With -steps n, n+1 evenly spaced fractions from 0 to 1 are
// computed instead, one path per line. With -format svg, a complete SVG
// document is written, showing the original outline, the axis, and every
// computed contour.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"honnef.co/go/thin"
	"honnef.co/go/thin/bez"
	"honnef.co/go/thin/internal/shapefile"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

type config struct {
	c         float64
	steps     int
	format    string
	precision int
	output    string
	verbose   bool
	input     string
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("thin", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Float64Var(&cfg.c, "c", 0.5, "thinning fraction in [0, 1]")
	fs.IntVar(&cfg.steps, "steps", 0, "compute `n`+1 evenly spaced fractions instead of -c")
	fs.StringVar(&cfg.format, "format", "path", "output format: path or svg")
	fs.IntVar(&cfg.precision, "precision", 3, "maximum number of decimals, 0 for shortest exact")
	fs.StringVar(&cfg.output, "o", "", "output file (default stdout)")
	fs.BoolVar(&cfg.verbose, "v", false, "log debug output")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: thin [flags] shape.{yaml,toml,json}")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return config{}, fmt.Errorf("expected one input file, got %d", fs.NArg())
	}
	cfg.input = fs.Arg(0)
	if cfg.format != "path" && cfg.format != "svg" {
		return config{}, fmt.Errorf("unknown format %q", cfg.format)
	}
	if cfg.steps < 0 {
		return config{}, fmt.Errorf("-steps must not be negative, got %d", cfg.steps)
	}
	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	thin.SetLogger(logger)
	defer thin.SetLogger(nil)

	g, err := shapefile.Load(cfg.input)
	if err != nil {
		return err
	}
	logger.Debug("loaded shape", "file", cfg.input, "nodes", len(g.Nodes), "roots", len(g.Roots), "thickest", thin.ThickestWidth(g))

	fracs := fractions(cfg.c, cfg.steps)
	contours, err := frames(context.Background(), g, fracs)
	if err != nil {
		return err
	}

	out := stdout
	var file *os.File
	if cfg.output != "" {
		file, err = os.Create(cfg.output)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}
	w := bufio.NewWriter(out)
	opts := bez.SVGOptions{MaxPrecision: cfg.precision}
	switch cfg.format {
	case "path":
		err = writePaths(w, contours, opts)
	case "svg":
		err = writeDocument(w, g, contours, opts)
	}
	if err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if file != nil {
		return file.Close()
	}
	return nil
}

// fractions returns c if steps is zero, and steps+1 evenly spaced fractions
// from 0 to 1 otherwise.
func fractions(c float64, steps int) []float64 {
	if steps <= 0 {
		return []float64{c}
	}
	out := make([]float64, steps+1)
	for i := range out {
		out[i] = float64(i) / float64(steps)
	}
	return out
}

// frames thins g by each fraction concurrently. The contours are returned in
// the order of fracs.
func frames(ctx context.Context, g *thin.AxisGraph, fracs []float64) ([]thin.Contour, error) {
	out := make([]thin.Contour, len(fracs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, c := range fracs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			contour, err := thin.Thin(g, c)
			if err != nil {
				return fmt.Errorf("thinning by %g: %w", c, err)
			}
			out[i] = contour
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func writePaths(w io.Writer, contours []thin.Contour, opts bez.SVGOptions) error {
	for _, c := range contours {
		if err := c.WriteSVG(w, opts); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// writeDocument writes an SVG document showing the outline of g, its axis,
// and the contours.
func writeDocument(w io.Writer, g *thin.AxisGraph, contours []thin.Contour, opts bez.SVGOptions) error {
	outline, err := thin.BoundaryPath(g)
	if err != nil {
		return err
	}
	axis, err := thin.AxisPath(g)
	if err != nil {
		return err
	}
	box := outline.ControlBox()
	margin := max(box.Width(), box.Height()) * 0.05
	box = box.Inflate(margin, margin)

	bw := &errWriter{w: w}
	bw.printf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s">`+"\n",
		opts.Format(box.X0), opts.Format(box.Y0), opts.Format(box.Width()), opts.Format(box.Height()))
	bw.printf(`<path d="%s" fill="none" stroke="#888" stroke-width="%s"/>`+"\n", outline.SVG(opts), opts.Format(margin/5))
	bw.printf(`<path d="%s" fill="none" stroke="#36c" stroke-width="%s"/>`+"\n", axis.SVG(opts), opts.Format(margin/10))
	for _, c := range contours {
		bw.printf(`<path d="%s" fill="none" stroke="#000" stroke-width="%s"/>`+"\n", c.SVG(opts), opts.Format(margin/10))
	}
	bw.printf("</svg>\n")
	return bw.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
