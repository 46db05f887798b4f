package scene

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/benoitkugler/dalmatian/dlmt"
)

func buildMedia(t *testing.T, brushes []string, strokes ...string) dlmt.Media {
	t.Helper()
	b := dlmt.NewBuilder(dlmt.NewHeaders())
	for _, line := range brushes {
		b.AddBrushString(line)
	}
	for _, line := range strokes {
		b.AddBrushstrokeString(line)
	}
	m, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func mustView(t *testing.T, line string) dlmt.View {
	t.Helper()
	v, err := dlmt.ParseView(line)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func mustForView(t *testing.T, m dlmt.Media, v dlmt.View) []PageBrushstroke {
	t.Helper()
	out, err := ForView(m, v)
	if err != nil {
		t.Fatal(err)
	}
	return out
}

var dot = []string{"brush b:1 ext-id github:dot path [ M 0 0 ]"}

func TestCompose(t *testing.T) {
	m := buildMedia(t, []string{"brush b:1 ext-id github:a path [ M 0 0,L 1 0 ]"},
		"brushstroke b:1 xy 1 1 scale 10 angle 1/4 tags [ x ]",
		"brushstroke b:1 xy 0 0 scale 50 angle 0 tags [  ]",
	)
	got := Compose(m)
	if len(got) != 2 {
		t.Fatalf("expected 2 strokes, got %d", len(got))
	}
	if s := got[0].Path.String(); s != "[ M 1 1,L 1 6/5 ]" {
		t.Errorf("unexpected world path %s", s)
	}
	if s := got[1].Path.String(); s != "[ M 0 0,L 1 0 ]" {
		t.Errorf("unexpected world path %s", s)
	}
	if !got[0].Tags.Has("x") {
		t.Errorf("missing tags in %s", got[0])
	}
}

func TestComposeSkipsDanglingBrushstrokes(t *testing.T) {
	var logs bytes.Buffer
	dlmt.SetLogger(slog.New(slog.NewTextHandler(&logs, nil)))
	defer dlmt.SetLogger(nil)

	m := buildMedia(t, dot,
		"brushstroke b:1 xy 0 0 scale 1 angle 0 tags [  ]",
		"brushstroke b:404 xy 1/2 1/2 scale 1 angle 0 tags [  ]",
		"brushstroke b:1 xy 1/4 1/4 scale 1 angle 0 tags [  ]",
	)
	got := Compose(m)
	if len(got) != 2 {
		t.Fatalf("expected the dangling stroke to be skipped, got %v", got)
	}
	if got[1].Path.String() != "[ M 1/4 1/4 ]" {
		t.Errorf("painting order not preserved: %v", got)
	}
	if !strings.Contains(logs.String(), "b:404") {
		t.Errorf("expected a warning, got %q", logs.String())
	}
	if refs := m.CheckReferences(); len(refs) != 1 {
		t.Errorf("expected the dangling stroke to be reported, got %v", refs)
	}
}

func TestTagFilter(t *testing.T) {
	m := buildMedia(t, dot,
		"brushstroke b:1 xy 0 0 scale 1 angle 0 tags [ x ]",
		"brushstroke b:1 xy 1/2 0 scale 1 angle 0 tags [ y ]",
	)
	for _, tt := range []struct {
		view string
		want string // position of the kept stroke
	}{
		{"view v lang en xy 0 0 width 1 height 1 flags o tags all but [ x ] -> all but x", "[ M 1/2 0 ]"},
		{"view v lang en xy 0 0 width 1 height 1 flags o tags none but [ x ] -> only x", "[ M 0 0 ]"},
	} {
		t.Run(tt.view, func(t *testing.T) {
			got := mustForView(t, m, mustView(t, tt.view))
			if len(got) != 1 || got[0].Path.String() != tt.want {
				t.Errorf("expected %s, got %v", tt.want, got)
			}
		})
	}
}

func TestBoundingFilter(t *testing.T) {
	m := buildMedia(t, dot,
		"brushstroke b:1 xy 2 2 scale 1 angle 0 tags [  ]",
		"brushstroke b:1 xy 1/2 1/2 scale 1 angle 0 tags [  ]",
	)
	got := mustForView(t, m, mustView(t, "view v lang en xy 0 0 width 1 height 1 flags O tags all but [  ] -> unit"))
	if len(got) != 1 || got[0].Path.String() != "[ M 1/2 1/2 ]" {
		t.Errorf("unexpected strokes %v", got)
	}

	// the flag is case sensitive
	got = mustForView(t, m, mustView(t, "view v lang en xy 0 0 width 1 height 1 flags o tags all but [  ] -> unit"))
	if len(got) != 2 {
		t.Errorf("expected no bounding filter, got %v", got)
	}
}

// The reprojection only uses the view width: a view taller than wide
// is not normalized in height.
func TestZoomToUsesWidthOnly(t *testing.T) {
	m := buildMedia(t, dot, "brushstroke b:1 xy 3 5 scale 1 angle 0 tags [  ]")
	got := mustForView(t, m, mustView(t, "view v lang en xy 1 1 width 2 height 8 flags O tags all but [  ] -> tall"))
	if len(got) != 1 || got[0].Path.String() != "[ M 1 2 ]" {
		t.Errorf("unexpected strokes %v", got)
	}
}

func TestForViewEmpty(t *testing.T) {
	m := buildMedia(t, dot)
	_, err := ForView(m, mustView(t, "view v lang en xy 0 0 width 0 height 1 flags O tags all but [  ] -> flat"))
	if !errors.Is(err, ErrEmptyView) {
		t.Errorf("expected ErrEmptyView, got %v", err)
	}
}

func TestViews(t *testing.T) {
	want := "view i:1 lang en xy 0 0 width 1 height 1 flags o tags all but [  ] -> everything"
	if s := DefaultView().String(); s != want {
		t.Errorf("expected %s, got %s", want, s)
	}

	m := buildMedia(t, dot,
		"brushstroke b:1 xy 0 0 scale 1 angle 0 tags [  ]",
		"brushstroke b:1 xy 2 1 scale 1 angle 0 tags [  ]",
		"brushstroke b:1 xy 1 3 scale 1 angle 0 tags [  ]",
	)
	v, err := SelectView(m, PolicyCropped)
	if err != nil {
		t.Fatal(err)
	}
	want = "view i:2 lang en xy 0 0 width 2 height 3 flags o tags all but [  ] -> cropped"
	if v.String() != want {
		t.Errorf("expected %s, got %s", want, v)
	}

	if _, err = SelectView(m, "i:42"); !errors.Is(err, ErrUnknownView) {
		t.Errorf("expected ErrUnknownView, got %v", err)
	}
	if _, err = CroppedView(buildMedia(t, dot)); !errors.Is(err, ErrEmptyView) {
		t.Errorf("expected ErrEmptyView, got %v", err)
	}
}

func TestSelectDeclaredView(t *testing.T) {
	b := dlmt.NewBuilder(dlmt.NewHeaders()).
		AddViewString("view i:3 lang fr xy 0 0 width 1/2 height 1/2 flags O tags all but [  ] -> moitié")
	m, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	v, err := SelectView(m, "i:3")
	if err != nil {
		t.Fatal(err)
	}
	if v.Lang != "fr" {
		t.Errorf("unexpected view %s", v)
	}
}
