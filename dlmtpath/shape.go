// Implements the path representation of Dalmatian brushes:
// an ordered list of segments whose points are exact rationals.
package dlmtpath

// Shape identifies the kind of a path segment.
type Shape uint8

const (
	ShapeClose Shape = iota
	ShapeMoveTo
	ShapeLineTo
	ShapeCubic
	ShapeSmooth
	ShapeQuadratic
	ShapeFluid
	ShapeUnsupported
)

// ParseShape maps a one letter opcode to its shape.
func ParseShape(op string) Shape {
	switch op {
	case "Z":
		return ShapeClose
	case "M":
		return ShapeMoveTo
	case "L":
		return ShapeLineTo
	case "C":
		return ShapeCubic
	case "S":
		return ShapeSmooth
	case "Q":
		return ShapeQuadratic
	case "T":
		return ShapeFluid
	default:
		return ShapeUnsupported
	}
}

// String returns the opcode, "E" for unsupported segments.
func (s Shape) String() string {
	switch s {
	case ShapeClose:
		return "Z"
	case ShapeMoveTo:
		return "M"
	case ShapeLineTo:
		return "L"
	case ShapeCubic:
		return "C"
	case ShapeSmooth:
		return "S"
	case ShapeQuadratic:
		return "Q"
	case ShapeFluid:
		return "T"
	default:
		return "E"
	}
}

// PointCount is the number of points following the opcode.
func (s Shape) PointCount() int {
	switch s {
	case ShapeMoveTo, ShapeLineTo, ShapeFluid:
		return 1
	case ShapeSmooth, ShapeQuadratic:
		return 2
	case ShapeCubic:
		return 3
	default:
		return 0
	}
}
