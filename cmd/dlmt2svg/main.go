// Command dlmt2svg converts the Dalmatian media of a directory
// to SVG, and optionally PNG, images.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/benoitkugler/dalmatian/dlmt"
	"github.com/benoitkugler/dalmatian/dlmtraster"
	"github.com/benoitkugler/dalmatian/scene"
	"github.com/benoitkugler/dalmatian/svgwrite"
)

type options struct {
	inDir, outDir string
	format        string
	prefix        string
	width         int
	view          string
	raster        dlmtraster.Options
}

func main() {
	var (
		opts    options
		verbose bool
	)
	flag.StringVar(&opts.inDir, "i", "", "directory containing the Dalmatian media files (required)")
	flag.StringVar(&opts.outDir, "o", "", "output directory (required)")
	flag.StringVar(&opts.format, "f", "svg", "image format (svg, png)")
	flag.StringVar(&opts.prefix, "p", "", "prefix for the generated media files")
	flag.IntVar(&opts.width, "W", 0, "width of the generated images, in pixels (required)")
	flag.StringVar(&opts.view, "v", scene.PolicyDefault, "the view to export (default, cropped, i:1...)")
	flag.StringVar(&opts.raster.Background, "b", "white", "background colour of PNG images")
	flag.StringVar(&opts.raster.Inkscape, "inkscape", "inkscape", "inkscape binary used for PNG images")
	flag.BoolVar(&verbose, "verbose", false, "log debug information")
	flag.Parse()

	if opts.inDir == "" || opts.outDir == "" || opts.width <= 0 {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	dlmt.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	files, err := filepath.Glob(filepath.Join(opts.inDir, "*.dlmt"))
	if err != nil {
		log.Fatal(err)
	}
	if len(files) == 0 {
		log.Fatalf("no .dlmt file in %s", opts.inDir)
	}

	started := time.Now()
	for _, file := range files {
		if err := convert(context.Background(), file, opts); err != nil {
			log.Fatal(err)
		}
		fmt.Print(".")
	}
	took := time.Since(started)
	fmt.Printf("\nTook %s thus %s per specimen\n", took, took/time.Duration(len(files)))
}

// outputName returns the SVG file name for the media read from file.
func outputName(m dlmt.Media, file string, opts options) string {
	name, ok := m.Headers().Text(dlmt.Name, "en")
	if !ok || name == "" {
		name = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	}
	return filepath.Join(opts.outDir, opts.prefix+name+".svg")
}

func convert(ctx context.Context, file string, opts options) error {
	m, err := dlmt.ReadFile(file, dlmt.ParseOptions{ErrorMode: dlmt.WarnErrorMode})
	if err != nil {
		return err
	}
	for _, defect := range m.CheckReferences() {
		dlmt.Logger().Warn(defect, "file", file)
	}

	view, err := scene.SelectView(m, opts.view)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	cfg, err := svgwrite.NewConfig(m.Headers(), view, opts.width)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	out := outputName(m, file, opts)
	if err = svgwrite.WriteFile(out, m, cfg); err != nil {
		return err
	}
	dlmt.Logger().Debug("converted", "file", file, "output", out, "summary", m.Summary())

	if strings.Contains(opts.format, "png") {
		if _, err = dlmtraster.Rasterize(ctx, out, opts.raster); err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
	}
	return nil
}
