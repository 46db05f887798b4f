package dlmtraster

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestNormalizeColor(t *testing.T) {
	for in, want := range map[string]string{
		"white":    "#ffffff",
		"Black":    "#000000",
		" orange ": "#ffa500",
		"#abc":     "#aabbcc",
		"#A0B1C2":  "#a0b1c2",
	} {
		got, err := NormalizeColor(in)
		if err != nil {
			t.Errorf("NormalizeColor(%q): %s", in, err)
		} else if got != want {
			t.Errorf("NormalizeColor(%q): expected %s, got %s", in, want, got)
		}
	}

	for _, in := range []string{"", "notacolour", "#12345", "#ggghhh", "ffffff"} {
		if _, err := NormalizeColor(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("NormalizeColor(%q): expected ErrInvalidColor, got %v", in, err)
		}
	}
}

func TestArgs(t *testing.T) {
	got := strings.Join(Args("out/bird.svg", "#ffffff"), " ")
	want := "--export-type=png --export-background=#ffffff --export-filename=out/bird.png out/bird.svg"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestRasterizeInvalidColor(t *testing.T) {
	_, err := Rasterize(context.Background(), "bird.svg", Options{Inkscape: "inkscape", Background: "nope"})
	if !errors.Is(err, ErrInvalidColor) {
		t.Errorf("expected ErrInvalidColor, got %v", err)
	}
}

func TestRasterizeFailures(t *testing.T) {
	svg := filepath.Join(t.TempDir(), "bird.svg")

	if bin, err := exec.LookPath("false"); err == nil {
		_, err = Rasterize(context.Background(), svg, Options{Inkscape: bin})
		var re *RunError
		if !errors.As(err, &re) {
			t.Errorf("expected a RunError, got %v", err)
		}
	}

	if bin, err := exec.LookPath("true"); err == nil {
		_, err = Rasterize(context.Background(), svg, Options{Inkscape: bin})
		if !errors.Is(err, ErrNoOutput) {
			t.Errorf("expected ErrNoOutput, got %v", err)
		}
	}
}
