package dlmt

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/benoitkugler/dalmatian/geom"
)

// View is a named viewport on the page, with a tag filter.
//
//	view i:1 lang en xy 0 0 width 1 height 1 flags O tags all but [ i:2 ] -> everything
type View struct {
	ID    string
	Lang  string
	XY    geom.Vec2 // lower left corner
	Width *big.Rat
	// Height follows the scale of Width when the view is rendered.
	Height *big.Rat
	Flags  string
	// Everything selects all the brushstrokes except the ones with Tags,
	// otherwise only the ones with Tags are selected.
	Everything  bool
	Tags        []string
	Description string
}

// ParseView reads a view record.
func ParseView(line string) (View, error) {
	head, description, found := strings.Cut(line, "->")
	fields, err := fieldsOf(head, "view", 17)
	if err != nil {
		return View{}, err
	}
	if !found {
		return View{}, malformed(line, "missing -> description")
	}
	if err = expectKeys(line, fields, "view", "", "lang", "", "xy", "", "", "width", "", "height", "", "flags", "", "tags", "", "but", ""); err != nil {
		return View{}, err
	}
	xy, err := geom.ParseVec2(fields[5] + " " + fields[6])
	if err != nil {
		return View{}, invalidField(line, err)
	}
	width, err := geom.ParseRat(fields[8])
	if err != nil {
		return View{}, invalidField(line, err)
	}
	height, err := geom.ParseRat(fields[10])
	if err != nil {
		return View{}, invalidField(line, err)
	}
	return View{
		ID:          fields[1],
		Lang:        fields[3],
		XY:          xy,
		Width:       width,
		Height:      height,
		Flags:       fields[12],
		Everything:  fields[14] == "all",
		Tags:        parseList(fields[16]),
		Description: strings.TrimSpace(description),
	}, nil
}

func (v View) String() string {
	everything := "none"
	if v.Everything {
		everything = "all"
	}
	return fmt.Sprintf("view %s lang %s xy %s width %s height %s flags %s tags %s but %s -> %s",
		v.ID, v.Lang, v.XY, geom.FormatRat(v.Width), geom.FormatRat(v.Height), v.Flags,
		everything, formatList(v.Tags, ", "), v.Description)
}

// HasFlag is case sensitive.
func (v View) HasFlag(flag rune) bool { return strings.ContainsRune(v.Flags, flag) }

// OmitsOutOfView returns true if the brushstrokes not mostly inside the
// view should be discarded (flag O).
func (v View) OmitsOutOfView() bool { return v.HasFlag('O') }

func (v View) Rect() geom.Rect { return geom.NewRect(v.XY, v.Width, v.Height) }

// AcceptPoint returns true if pt is inside the view, bounds included.
func (v View) AcceptPoint(pt geom.Vec2) bool {
	return pt.IsInsideRect(v.XY, v.Width, v.Height)
}

// AcceptTags applies the tag filter of the view to the tags of a brushstroke.
func (v View) AcceptTags(tags IDSet) bool {
	common := tags.Intersects(NewIDSet(v.Tags...))
	if v.Everything {
		return !common
	}
	return common
}
