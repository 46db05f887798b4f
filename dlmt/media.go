package dlmt

import (
	"fmt"
	"sort"
	"strings"

	"github.com/benoitkugler/dalmatian/geom"
)

// Media is a parsed Dalmatian document. It is built by a Builder
// (or Parse) and is not modified afterwards.
type Media struct {
	headers      Headers
	views        map[string]View
	tags         []TagDescription
	brushes      map[string]Brush
	brushstrokes []Brushstroke
}

func (m Media) Headers() Headers { return m.headers }

// View returns the view with the given id.
func (m Media) View(id string) (View, bool) {
	v, ok := m.views[id]
	return v, ok
}

// Brush returns the brush with the given id.
func (m Media) Brush(id string) (Brush, bool) {
	b, ok := m.brushes[id]
	return b, ok
}

// SortedViews returns the views ordered by id.
func (m Media) SortedViews() []View {
	out := make([]View, 0, len(m.views))
	for _, v := range m.views {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// SortedBrushes returns the brushes ordered by id.
func (m Media) SortedBrushes() []Brush {
	out := make([]Brush, 0, len(m.brushes))
	for _, b := range m.brushes {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// TagDescriptions returns the tag descriptions in document order.
func (m Media) TagDescriptions() []TagDescription {
	return append([]TagDescription(nil), m.tags...)
}

// Brushstrokes returns the brushstrokes in painting order.
func (m Media) Brushstrokes() []Brushstroke {
	return append([]Brushstroke(nil), m.brushstrokes...)
}

func (m Media) ViewIDs() IDSet {
	out := make(IDSet, len(m.views))
	for id := range m.views {
		out[id] = struct{}{}
	}
	return out
}

func (m Media) BrushIDs() IDSet {
	out := make(IDSet, len(m.brushes))
	for id := range m.brushes {
		out[id] = struct{}{}
	}
	return out
}

func (m Media) TagIDs() IDSet {
	out := make(IDSet, len(m.tags))
	for _, t := range m.tags {
		out[t.ID] = struct{}{}
	}
	return out
}

// UsedBrushIDs returns the brush ids referenced by brushstrokes.
func (m Media) UsedBrushIDs() IDSet {
	out := make(IDSet)
	for _, bs := range m.brushstrokes {
		out[bs.BrushID] = struct{}{}
	}
	return out
}

// UsedTagIDs returns the tag ids referenced by brushstrokes.
func (m Media) UsedTagIDs() IDSet {
	out := make(IDSet)
	for _, bs := range m.brushstrokes {
		for _, t := range bs.Tags {
			out[t] = struct{}{}
		}
	}
	return out
}

// BrushstrokePoints returns the position of every brushstroke.
func (m Media) BrushstrokePoints() geom.VecList {
	out := make(geom.VecList, len(m.brushstrokes))
	for i, bs := range m.brushstrokes {
		out[i] = bs.XY
	}
	return out
}

// Summary returns a one line description of the media.
func (m Media) Summary() string {
	return fmt.Sprintf("id: %s, views:%d, tags:%d, brushes:%d, brushstrokes:%d",
		m.headers.IDURN, len(m.views), len(m.tags), len(m.brushes), len(m.brushstrokes))
}

const separator = "--------"

// Lines returns the DLMT text of the media, views and brushes being
// sorted by id.
func (m Media) Lines() []string {
	lines := []string{"section header"}
	lines = append(lines, m.headers.Lines()...)
	lines = append(lines, separator, "section views")
	for _, v := range m.SortedViews() {
		lines = append(lines, v.String())
	}
	lines = append(lines, separator, "section tag-descriptions")
	for _, t := range m.tags {
		lines = append(lines, t.String())
	}
	lines = append(lines, separator, "section brushes")
	for _, b := range m.SortedBrushes() {
		lines = append(lines, b.String())
	}
	lines = append(lines, separator, "section brushstrokes")
	for _, bs := range m.brushstrokes {
		lines = append(lines, bs.String())
	}
	return lines
}

func (m Media) String() string { return strings.Join(m.Lines(), "\n") }

// Builder accumulates the records of a media. The first parsing error
// is kept and returned by Build, later calls are then ignored.
type Builder struct {
	media Media
	err   error
}

// NewBuilder starts a media with the given headers.
func NewBuilder(headers Headers) *Builder {
	return &Builder{media: Media{
		headers: headers,
		views:   make(map[string]View),
		brushes: make(map[string]Brush),
	}}
}

func (b *Builder) SetHeaders(h Headers) *Builder {
	b.media.headers = h
	return b
}

// AddView adds or replaces the view with the same id.
func (b *Builder) AddView(v View) *Builder {
	b.media.views[v.ID] = v
	return b
}

func (b *Builder) AddViewString(line string) *Builder {
	if b.err != nil {
		return b
	}
	v, err := ParseView(line)
	if err != nil {
		b.err = err
		return b
	}
	return b.AddView(v)
}

// AddTagDescription appends a tag description. Duplicated ids are kept.
func (b *Builder) AddTagDescription(t TagDescription) *Builder {
	b.media.tags = append(b.media.tags, t)
	return b
}

func (b *Builder) AddTagDescriptionString(line string) *Builder {
	if b.err != nil {
		return b
	}
	t, err := ParseTagDescription(line)
	if err != nil {
		b.err = err
		return b
	}
	return b.AddTagDescription(t)
}

// AddBrush adds or replaces the brush with the same id.
func (b *Builder) AddBrush(br Brush) *Builder {
	b.media.brushes[br.ID] = br
	return b
}

func (b *Builder) AddBrushString(line string) *Builder {
	if b.err != nil {
		return b
	}
	br, err := ParseBrush(line)
	if err != nil {
		b.err = err
		return b
	}
	return b.AddBrush(br)
}

// AddBrushstroke appends a brushstroke, painted over the previous ones.
func (b *Builder) AddBrushstroke(bs Brushstroke) *Builder {
	b.media.brushstrokes = append(b.media.brushstrokes, bs)
	return b
}

func (b *Builder) AddBrushstrokeString(line string) *Builder {
	if b.err != nil {
		return b
	}
	bs, err := ParseBrushstroke(line)
	if err != nil {
		b.err = err
		return b
	}
	return b.AddBrushstroke(bs)
}

// Build returns a copy of the accumulated media, so that the builder
// may still be used without affecting it.
func (b *Builder) Build() (Media, error) {
	if b.err != nil {
		return Media{}, b.err
	}
	m := Media{
		headers:      b.media.headers,
		views:        make(map[string]View, len(b.media.views)),
		tags:         append([]TagDescription(nil), b.media.tags...),
		brushes:      make(map[string]Brush, len(b.media.brushes)),
		brushstrokes: append([]Brushstroke(nil), b.media.brushstrokes...),
	}
	for id, v := range b.media.views {
		m.views[id] = v
	}
	for id, br := range b.media.brushes {
		m.brushes[id] = br
	}
	return m, nil
}
