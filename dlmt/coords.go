package dlmt

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/benoitkugler/dalmatian/geom"
)

// AxisDir is the orientation of an axis.
type AxisDir uint8

const (
	AxisPositive AxisDir = iota
	AxisNegative
	AxisUnsupported
)

func parseAxisDir(s string) AxisDir {
	switch s {
	case "+":
		return AxisPositive
	case "-":
		return AxisNegative
	default:
		return AxisUnsupported
	}
}

func (a AxisDir) String() string {
	switch a {
	case AxisPositive:
		return "+"
	case AxisNegative:
		return "-"
	default:
		return "E"
	}
}

// CoordinateType is the kind of coordinate system.
type CoordinateType uint8

const (
	Cartesian CoordinateType = iota
	Polar
	CoordinateUnsupported
)

func parseCoordinateType(s string) CoordinateType {
	switch s {
	case "cartesian":
		return Cartesian
	case "polar":
		return Polar
	default:
		return CoordinateUnsupported
	}
}

func (c CoordinateType) String() string {
	switch c {
	case Cartesian:
		return "cartesian"
	case Polar:
		return "polar"
	default:
		return "E"
	}
}

// CoordinateSystem describes the page axes.
//
//	system cartesian right-dir + up-dir -
type CoordinateSystem struct {
	Type     CoordinateType
	RightDir AxisDir
	UpDir    AxisDir
}

// PageCoordinateSystem is the only page system currently supported.
var PageCoordinateSystem = CoordinateSystem{Type: Cartesian, RightDir: AxisPositive, UpDir: AxisNegative}

func (cs CoordinateSystem) String() string {
	return fmt.Sprintf("system %s right-dir %s up-dir %s", cs.Type, cs.RightDir, cs.UpDir)
}

func parseSystemFields(s string, fields []string) (CoordinateSystem, error) {
	if fields[0] != "system" || fields[2] != "right-dir" || fields[4] != "up-dir" {
		return CoordinateSystem{}, fmt.Errorf("%w: %q", ErrUnsupportedCoordinateSystem, s)
	}
	return CoordinateSystem{
		Type:     parseCoordinateType(fields[1]),
		RightDir: parseAxisDir(fields[3]),
		UpDir:    parseAxisDir(fields[5]),
	}, nil
}

// ParseCoordinateSystem reads a page coordinate system. Only
// PageCoordinateSystem is accepted.
func ParseCoordinateSystem(s string) (CoordinateSystem, error) {
	fields := strings.Fields(s)
	if len(fields) != 6 {
		return CoordinateSystem{}, fmt.Errorf("%w: %q", ErrUnsupportedCoordinateSystem, s)
	}
	cs, err := parseSystemFields(s, fields)
	if err != nil {
		return cs, err
	}
	if cs != PageCoordinateSystem {
		return cs, fmt.Errorf("%w: page %q", ErrUnsupportedCoordinateSystem, s)
	}
	return cs, nil
}

// BrushCoordinateSystem describes the brush axes and the position
// of the brush origin.
//
//	system cartesian right-dir + up-dir - origin-x 1/2 origin-y 1/2
type BrushCoordinateSystem struct {
	CoordinateSystem
	OriginX, OriginY *big.Rat
}

// DefaultBrushCoordinateSystem returns the only brush system currently supported.
func DefaultBrushCoordinateSystem() BrushCoordinateSystem {
	return BrushCoordinateSystem{CoordinateSystem: PageCoordinateSystem, OriginX: geom.R(1, 2), OriginY: geom.R(1, 2)}
}

func (cs BrushCoordinateSystem) String() string {
	return fmt.Sprintf("%s origin-x %s origin-y %s", cs.CoordinateSystem, geom.FormatRat(cs.OriginX), geom.FormatRat(cs.OriginY))
}

func (cs BrushCoordinateSystem) Equal(o BrushCoordinateSystem) bool {
	return cs.CoordinateSystem == o.CoordinateSystem &&
		geom.V(cs.OriginX, cs.OriginY).Equal(geom.V(o.OriginX, o.OriginY))
}

// ParseBrushCoordinateSystem reads a brush coordinate system. Only
// DefaultBrushCoordinateSystem is accepted.
func ParseBrushCoordinateSystem(s string) (BrushCoordinateSystem, error) {
	fields := strings.Fields(s)
	if len(fields) != 10 || fields[6] != "origin-x" || fields[8] != "origin-y" {
		return BrushCoordinateSystem{}, fmt.Errorf("%w: %q", ErrUnsupportedCoordinateSystem, s)
	}
	base, err := parseSystemFields(s, fields)
	if err != nil {
		return BrushCoordinateSystem{}, err
	}
	origin, err := geom.ParseVec2(fields[7] + " " + fields[9])
	if err != nil {
		return BrushCoordinateSystem{}, fmt.Errorf("%w: %w", ErrUnsupportedCoordinateSystem, err)
	}
	cs := BrushCoordinateSystem{CoordinateSystem: base, OriginX: origin.X, OriginY: origin.Y}
	if !cs.Equal(DefaultBrushCoordinateSystem()) {
		return cs, fmt.Errorf("%w: brush %q", ErrUnsupportedCoordinateSystem, s)
	}
	return cs, nil
}
