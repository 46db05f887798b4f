// Implements a raster backend for the SVG files written by svgwrite,
// by wrapping the inkscape command line.
package dlmtraster

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/color"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var (
	// ErrInvalidColor is returned for background colours which are neither
	// an SVG colour name nor an hexadecimal `#rgb` or `#rrggbb` value.
	ErrInvalidColor = errors.New("invalid colour")
	// ErrNoOutput is returned when the tool succeeded without writing the image.
	ErrNoOutput = errors.New("no image written")
)

// Options configures the rasterizer. Zero fields use the defaults.
type Options struct {
	Inkscape   string // path to the binary, "inkscape" by default
	Background string // "white" by default
}

// RunError wraps a failure of the external tool.
type RunError struct {
	Stderr string
	Err    error
}

func (e *RunError) Error() string {
	if e.Stderr == "" {
		return "inkscape: " + e.Err.Error()
	}
	return fmt.Sprintf("inkscape: %s: %s", e.Err, e.Stderr)
}

func (e *RunError) Unwrap() error { return e.Err }

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// NormalizeColor returns the `#rrggbb` form of an SVG colour name
// or an hexadecimal colour.
func NormalizeColor(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return hex(c), nil
	}
	digits, ok := strings.CutPrefix(s, "#")
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	if len(digits) != 6 {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return hex(color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}), nil
}

// PNGName returns the name of the image written for svgFile.
func PNGName(svgFile string) string {
	return strings.TrimSuffix(svgFile, ".svg") + ".png"
}

// Args returns the command line arguments converting svgFile.
func Args(svgFile, background string) []string {
	return []string{
		"--export-type=png",
		"--export-background=" + background,
		"--export-filename=" + PNGName(svgFile),
		svgFile,
	}
}

// Rasterize writes the PNG version of svgFile, next to it,
// and returns its name.
func Rasterize(ctx context.Context, svgFile string, opts Options) (string, error) {
	bin := opts.Inkscape
	if bin == "" {
		bin = "inkscape"
	}
	background := opts.Background
	if background == "" {
		background = "white"
	}
	background, err := NormalizeColor(background)
	if err != nil {
		return "", err
	}

	cmd := exec.CommandContext(ctx, bin, Args(svgFile, background)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err = cmd.Run(); err != nil {
		return "", &RunError{Stderr: strings.TrimSpace(stderr.String()), Err: err}
	}

	out := PNGName(svgFile)
	if _, err = os.Stat(out); err != nil {
		return "", fmt.Errorf("%w: %s", ErrNoOutput, out)
	}
	return out, nil
}
