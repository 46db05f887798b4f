package dlmt

import "fmt"

// DefectKind is the kind of a referential integrity defect.
type DefectKind uint8

const (
	UndeclaredPrefix DefectKind = iota
	UndeclaredBrush
	UndeclaredTag
	MalformedPath
)

// Defect is a non fatal finding: the document parsed, but
// some references can't be resolved.
type Defect struct {
	Kind DefectKind
	// Where is the section holding the references: "tags",
	// "brushes", "brushstrokes" or "views".
	Where string
	IDs   []string // sorted
}

func (d Defect) String() string {
	switch d.Kind {
	case UndeclaredPrefix:
		return fmt.Sprintf("Prefixes in %s are not declared: %v", d.Where, d.IDs)
	case UndeclaredBrush:
		return fmt.Sprintf("Brush ids in %s are not declared: %v", d.Where, d.IDs)
	case UndeclaredTag:
		return fmt.Sprintf("Tag ids in %s are not declared: %v", d.Where, d.IDs)
	case MalformedPath:
		return fmt.Sprintf("Brushes with malformed path segments: %v", d.IDs)
	default:
		return fmt.Sprintf("Unknown defect in %s: %v", d.Where, d.IDs)
	}
}

// missing returns the sorted elements of used not in declared.
func missing(used, declared IDSet) []string {
	out := make(IDSet)
	for id := range used {
		if !declared.Has(id) {
			out[id] = struct{}{}
		}
	}
	return out.Sorted()
}

// UsedShortPrefixes returns the namespaces of the tag same-as targets.
func (m Media) UsedShortPrefixes() IDSet {
	out := make(IDSet)
	for _, t := range m.tags {
		for _, id := range t.SameAs {
			out[prefix(id)] = struct{}{}
		}
	}
	return out
}

func (m Media) usedBrushPrefixes() IDSet {
	out := make(IDSet)
	for _, b := range m.brushes {
		out[prefix(b.ExtID)] = struct{}{}
	}
	return out
}

func (m Media) viewTagIDs() IDSet {
	out := make(IDSet)
	for _, v := range m.views {
		for _, t := range v.Tags {
			out[t] = struct{}{}
		}
	}
	return out
}

// Defects checks the references between records. It returns
// nil for a complete document.
func (m Media) Defects() []Defect {
	var out []Defect
	add := func(kind DefectKind, where string, ids []string) {
		if len(ids) > 0 {
			out = append(out, Defect{Kind: kind, Where: where, IDs: ids})
		}
	}
	prefixes := m.headers.ShortPrefixes()
	tagIDs := m.TagIDs()
	add(UndeclaredPrefix, "tags", missing(m.UsedShortPrefixes(), prefixes))
	add(UndeclaredPrefix, "brushes", missing(m.usedBrushPrefixes(), prefixes))
	add(UndeclaredBrush, "brushstrokes", missing(m.UsedBrushIDs(), m.BrushIDs()))
	add(UndeclaredTag, "brushstrokes", missing(m.UsedTagIDs(), tagIDs))
	add(UndeclaredTag, "views", missing(m.viewTagIDs(), tagIDs))

	broken := make(IDSet)
	for id, b := range m.brushes {
		if len(b.Path.Malformed()) > 0 {
			broken[id] = struct{}{}
		}
	}
	add(MalformedPath, "brushes", broken.Sorted())
	return out
}

// CheckReferences returns the defects as human readable strings.
func (m Media) CheckReferences() []string {
	defects := m.Defects()
	out := make([]string, len(defects))
	for i, d := range defects {
		out[i] = d.String()
	}
	return out
}
