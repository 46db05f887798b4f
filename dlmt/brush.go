package dlmt

import (
	"fmt"
	"math/big"

	"github.com/benoitkugler/dalmatian/dlmtpath"
	"github.com/benoitkugler/dalmatian/geom"
)

// Brush is a reusable shape, drawn in the brush coordinate system.
//
//	brush i:1 ext-id brushes:abc3F path [ M -1/3 1/3,L 2/3 0,L 0 2/3 ]
type Brush struct {
	ID    string
	ExtID string // prefixed identifier `ns:id`
	Path  dlmtpath.Path
}

// ParseBrush reads a brush record. Unknown path segments are kept as
// dlmtpath.Unsupported; see Media.Defects.
func ParseBrush(line string) (Brush, error) {
	fields, err := fieldsOf(line, "brush", 6)
	if err != nil {
		return Brush{}, err
	}
	if err = expectKeys(line, fields, "brush", "", "ext-id", "", "path", ""); err != nil {
		return Brush{}, err
	}
	path, err := dlmtpath.ParsePath(fields[5])
	if err != nil {
		return Brush{}, invalidField(line, err)
	}
	return Brush{ID: fields[1], ExtID: fields[3], Path: path}, nil
}

func (b Brush) String() string {
	return fmt.Sprintf("brush %s ext-id %s path %s", b.ID, b.ExtID, b.Path)
}

// TidyID returns the id usable as a file or element name.
func (b Brush) TidyID() string { return tidyName(b.ID) }

// Brushstroke places a brush on the page.
//
//	brushstroke i:1 xy 1/15 1/100 scale 1/10 angle 0 tags [ i:1 ]
type Brushstroke struct {
	BrushID string
	XY      geom.Vec2
	Scale   *big.Rat
	Angle   *big.Rat // turn fraction, 1 is a full rotation
	Tags    []string
}

// ParseBrushstroke reads a brushstroke record.
func ParseBrushstroke(line string) (Brushstroke, error) {
	fields, err := fieldsOf(line, "brushstroke", 11)
	if err != nil {
		return Brushstroke{}, err
	}
	if err = expectKeys(line, fields, "brushstroke", "", "xy", "", "", "scale", "", "angle", "", "tags", ""); err != nil {
		return Brushstroke{}, err
	}
	xy, err := geom.ParseVec2(fields[3] + " " + fields[4])
	if err != nil {
		return Brushstroke{}, invalidField(line, err)
	}
	scale, err := geom.ParseRat(fields[6])
	if err != nil {
		return Brushstroke{}, invalidField(line, err)
	}
	angle, err := geom.ParseRat(fields[8])
	if err != nil {
		return Brushstroke{}, invalidField(line, err)
	}
	return Brushstroke{
		BrushID: fields[1],
		XY:      xy,
		Scale:   scale,
		Angle:   angle,
		Tags:    parseList(fields[10]),
	}, nil
}

func (bs Brushstroke) String() string {
	return fmt.Sprintf("brushstroke %s xy %s scale %s angle %s tags %s",
		bs.BrushID, bs.XY, geom.FormatRat(bs.Scale), geom.FormatRat(bs.Angle), formatList(bs.Tags, ", "))
}

func (bs Brushstroke) TagSet() IDSet { return NewIDSet(bs.Tags...) }

// DegreeAngleString returns the angle in degrees, with 3 decimals.
func (bs Brushstroke) DegreeAngleString() string {
	return geom.FormatFloat(geom.Mul(bs.Angle, geom.Int(360)))
}

// ScaleString returns the scale with 3 decimals.
func (bs Brushstroke) ScaleString() string { return geom.FormatFloat(bs.Scale) }

// TidyBrushID returns the brush id usable as a file or element name.
func (bs Brushstroke) TidyBrushID() string { return tidyName(bs.BrushID) }
