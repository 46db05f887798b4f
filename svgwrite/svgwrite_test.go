package svgwrite

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benoitkugler/dalmatian/dlmt"
	"github.com/benoitkugler/dalmatian/scene"
)

const minimal = `section header
id-urn: urn:test:minimal
brush-page-ratio: 1
title en: Line
title fr: Ligne
description en: A single line
author en: Someone
--------
section views
view i:9 lang fr xy 0 0 width 1 height 1 flags O tags all but [  ] -> tout
--------
section tag-descriptions
--------
section brushes
brush b:1 ext-id github:line path [ M 0 0,L 1/2 1/2 ]
--------
section brushstrokes
brushstroke b:1 xy 0 0 scale 1 angle 0 tags [  ]
`

func parseMinimal(t *testing.T) dlmt.Media {
	t.Helper()
	m, err := dlmt.Parse(minimal, dlmt.ParseOptions{})
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func render(t *testing.T, m dlmt.Media, v dlmt.View, width int) (string, Summary) {
	t.Helper()
	cfg, err := NewConfig(m.Headers(), v, width)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err = Write(&buf, m, cfg); err != nil {
		t.Fatal(err)
	}
	summary, err := ReadSummary(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	return buf.String(), summary
}

func TestEndToEnd(t *testing.T) {
	out, summary := render(t, parseMinimal(t), scene.DefaultView(), 100)

	if !strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Errorf("missing xml declaration in %s", out)
	}
	if n := strings.Count(out, "<path "); n != 1 {
		t.Errorf("expected exactly one path element, got %d", n)
	}
	if len(summary.Paths) != 1 || summary.Paths[0] != "M 0.000 100.000 L 50.000 50.000" {
		t.Errorf("unexpected paths %v", summary.Paths)
	}
	if summary.ViewBox != "0 0 100.000 100.000" {
		t.Errorf("unexpected view box %s", summary.ViewBox)
	}
}

func TestNamespaces(t *testing.T) {
	out, _ := render(t, parseMinimal(t), scene.DefaultView(), 10)
	for _, ns := range []string{
		`xmlns="http://www.w3.org/2000/svg"`,
		`xmlns:xlink="http://www.w3.org/1999/xlink"`,
		`xmlns:dc="http://purl.org/dc/elements/1.1/"`,
		`xmlns:cc="http://creativecommons.org/ns#"`,
		`xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"`,
		`xmlns:svg="http://www.w3.org/2000/svg"`,
		`<dc:format>image/svg+xml</dc:format>`,
		`rdf:resource="http://purl.org/dc/dcmitype/StillImage"`,
	} {
		if !strings.Contains(out, ns) {
			t.Errorf("missing %s", ns)
		}
	}
}

func TestMetadata(t *testing.T) {
	m := parseMinimal(t)
	_, summary := render(t, m, scene.DefaultView(), 10)
	want := Summary{
		ViewBox:     "0 0 10.000 10.000",
		Title:       "Line",
		Description: "A single line",
		Language:    "en",
		Identifier:  "urn:test:minimal",
		Date:        "3000",
		Creator:     "Someone",
		License:     DefaultLicense,
		Paths:       []string{"M 0.000 10.000 L 5.000 5.000"},
	}
	if summary.Title != want.Title || summary.Description != want.Description ||
		summary.Language != want.Language || summary.Identifier != want.Identifier ||
		summary.Date != want.Date || summary.Creator != want.Creator || summary.License != want.License {
		t.Errorf("expected %+v, got %+v", want, summary)
	}

	// the view language selects the texts
	v, _ := m.View("i:9")
	_, summary = render(t, m, v, 10)
	if summary.Title != "Ligne" || summary.Language != "fr" {
		t.Errorf("unexpected localized metadata %+v", summary)
	}
	if summary.Description != "A single line" {
		t.Errorf("expected a fallback description, got %q", summary.Description)
	}
}

func TestLicenseHeader(t *testing.T) {
	content := strings.Replace(minimal, "author en: Someone\n",
		"author en: Someone\nlicense-url html en: https://creativecommons.org/licenses/by/4.0/\n", 1)
	m, err := dlmt.Parse(content, dlmt.ParseOptions{})
	if err != nil {
		t.Fatal(err)
	}
	_, summary := render(t, m, scene.DefaultView(), 10)
	if summary.License != "https://creativecommons.org/licenses/by/4.0/" {
		t.Errorf("unexpected license %s", summary.License)
	}
}

func TestUnsupportedSegmentsAreSkipped(t *testing.T) {
	content := strings.Replace(minimal, "path [ M 0 0,L 1/2 1/2 ]", "path [ M 0 0,X 1 1,L 1/2 1/2 ]", 1)
	m, err := dlmt.Parse(content, dlmt.ParseOptions{})
	if err != nil {
		t.Fatal(err)
	}
	_, summary := render(t, m, scene.DefaultView(), 100)
	if len(summary.Paths) != 1 || summary.Paths[0] != "M 0.000 100.000 L 50.000 50.000" {
		t.Errorf("unexpected paths %v", summary.Paths)
	}
}

func TestConfig(t *testing.T) {
	v, err := dlmt.ParseView("view v lang en xy 0 0 width 2 height 1 flags O tags all but [  ] -> wide")
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := NewConfig(dlmt.NewHeaders(), v, 200)
	if err != nil {
		t.Fatal(err)
	}
	for _, tt := range [][2]string{
		{cfg.Zoom().RatString(), "1/2"},
		{cfg.PixelHeight().RatString(), "100"},
		{cfg.BrushWidthString(), "2.000"},
		{cfg.PageViewBox(), "0 0 200.000 100.000"},
		{cfg.BrushViewBox(), "-1.000 -1.000 2.000 2.000"},
	} {
		if tt[0] != tt[1] {
			t.Errorf("expected %s, got %s", tt[1], tt[0])
		}
	}
	if p := cfg.Projection(); p.DPU != 200 || p.YOffset != 100 {
		t.Errorf("unexpected projection %+v", p)
	}

	if _, err = NewConfig(dlmt.NewHeaders(), v, 0); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
	v.Width = nil
	if _, err = NewConfig(dlmt.NewHeaders(), v, 10); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestWriteFile(t *testing.T) {
	m := parseMinimal(t)
	cfg, err := NewConfig(m.Headers(), scene.DefaultView(), 50)
	if err != nil {
		t.Fatal(err)
	}
	name := filepath.Join(t.TempDir(), "line.svg")
	if err = WriteFile(name, m, cfg); err != nil {
		t.Fatal(err)
	}
	summary, err := ReadSummaryFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if len(summary.Paths) != 1 {
		t.Errorf("unexpected paths %v", summary.Paths)
	}
}

func TestReadSummaryInvalid(t *testing.T) {
	if _, err := ReadSummary(strings.NewReader("")); err == nil {
		t.Error("expected an error for an empty document")
	}
	if _, err := ReadSummary(strings.NewReader("<svg><path></svg>")); err == nil {
		t.Error("expected an error for a broken document")
	}
}
