package dlmtpath

import (
	"math/big"
	"strings"

	"github.com/benoitkugler/dalmatian/geom"
)

// This file defines the basic path structure

// Segment groups the different path commands
type Segment interface {
	Shape() Shape
	// Anchor returns the end point of the segment, which is the only
	// point used for visibility. Close and Unsupported have none.
	Anchor() (geom.Vec2, bool)
	// points returns the points in text order
	points() geom.VecList
	// mapPoints applies f to every point
	mapPoints(f func(geom.Vec2) geom.Vec2) Segment
}

type Close struct{}

type MoveTo geom.Vec2

type LineTo geom.Vec2

// CubicTo holds the two control points, then the end point.
type CubicTo [3]geom.Vec2

// SmoothTo holds the control point, then the end point.
type SmoothTo [2]geom.Vec2

// QuadTo holds the control point, then the end point.
type QuadTo [2]geom.Vec2

type FluidTo geom.Vec2

// Unsupported is the sentinel for segments with an unknown opcode or
// the wrong number of points. Raw is the segment text as read.
type Unsupported struct {
	Raw string
}

func (Close) Shape() Shape       { return ShapeClose }
func (MoveTo) Shape() Shape      { return ShapeMoveTo }
func (LineTo) Shape() Shape      { return ShapeLineTo }
func (CubicTo) Shape() Shape     { return ShapeCubic }
func (SmoothTo) Shape() Shape    { return ShapeSmooth }
func (QuadTo) Shape() Shape      { return ShapeQuadratic }
func (FluidTo) Shape() Shape     { return ShapeFluid }
func (Unsupported) Shape() Shape { return ShapeUnsupported }

func (Close) Anchor() (geom.Vec2, bool)       { return geom.Vec2{}, false }
func (op MoveTo) Anchor() (geom.Vec2, bool)   { return geom.Vec2(op), true }
func (op LineTo) Anchor() (geom.Vec2, bool)   { return geom.Vec2(op), true }
func (op CubicTo) Anchor() (geom.Vec2, bool)  { return op[2], true }
func (op SmoothTo) Anchor() (geom.Vec2, bool) { return op[1], true }
func (op QuadTo) Anchor() (geom.Vec2, bool)   { return op[1], true }
func (op FluidTo) Anchor() (geom.Vec2, bool)  { return geom.Vec2(op), true }
func (Unsupported) Anchor() (geom.Vec2, bool) { return geom.Vec2{}, false }

func (Close) points() geom.VecList       { return nil }
func (op MoveTo) points() geom.VecList   { return geom.VecList{geom.Vec2(op)} }
func (op LineTo) points() geom.VecList   { return geom.VecList{geom.Vec2(op)} }
func (op CubicTo) points() geom.VecList  { return op[:] }
func (op SmoothTo) points() geom.VecList { return op[:] }
func (op QuadTo) points() geom.VecList   { return op[:] }
func (op FluidTo) points() geom.VecList  { return geom.VecList{geom.Vec2(op)} }
func (Unsupported) points() geom.VecList { return nil }

func (op Close) mapPoints(func(geom.Vec2) geom.Vec2) Segment { return op }

func (op MoveTo) mapPoints(f func(geom.Vec2) geom.Vec2) Segment {
	return MoveTo(f(geom.Vec2(op)))
}

func (op LineTo) mapPoints(f func(geom.Vec2) geom.Vec2) Segment {
	return LineTo(f(geom.Vec2(op)))
}

func (op CubicTo) mapPoints(f func(geom.Vec2) geom.Vec2) Segment {
	return CubicTo{f(op[0]), f(op[1]), f(op[2])}
}

func (op SmoothTo) mapPoints(f func(geom.Vec2) geom.Vec2) Segment {
	return SmoothTo{f(op[0]), f(op[1])}
}

func (op QuadTo) mapPoints(f func(geom.Vec2) geom.Vec2) Segment {
	return QuadTo{f(op[0]), f(op[1])}
}

func (op FluidTo) mapPoints(f func(geom.Vec2) geom.Vec2) Segment {
	return FluidTo(f(geom.Vec2(op)))
}

func (op Unsupported) mapPoints(func(geom.Vec2) geom.Vec2) Segment { return op }

// ParseSegment reads one segment such as `C 0 1 1 1 1 0`.
// Unknown opcodes and wrong point counts give an Unsupported segment;
// an error is only returned for invalid numbers.
func ParseSegment(s string) (Segment, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unsupported{}, nil
	}
	shape := ParseShape(s[:1])
	if shape == ShapeUnsupported {
		return Unsupported{Raw: s}, nil
	}
	rest := s[1:]
	if len(strings.Fields(rest)) != 2*shape.PointCount() {
		return Unsupported{Raw: s}, nil
	}
	pts, err := geom.ParseVecList(rest, " ")
	if err != nil {
		return nil, err
	}
	switch shape {
	case ShapeClose:
		return Close{}, nil
	case ShapeMoveTo:
		return MoveTo(pts[0]), nil
	case ShapeLineTo:
		return LineTo(pts[0]), nil
	case ShapeFluid:
		return FluidTo(pts[0]), nil
	case ShapeSmooth:
		return SmoothTo{pts[0], pts[1]}, nil
	case ShapeQuadratic:
		return QuadTo{pts[0], pts[1]}, nil
	case ShapeCubic:
		return CubicTo{pts[0], pts[1], pts[2]}, nil
	}
	return Unsupported{Raw: s}, nil
}

// SegmentString returns the DLMT text of seg.
func SegmentString(seg Segment) string {
	if u, ok := seg.(Unsupported); ok {
		if u.Raw == "" {
			return "E"
		}
		return u.Raw
	}
	pts := seg.points()
	if len(pts) == 0 {
		return seg.Shape().String()
	}
	return seg.Shape().String() + " " + strings.Join(pts.DLMTStrings(), " ")
}

// Path describes a sequence of segments.
type Path []Segment

// ParsePath reads a bracketed, comma separated list of segments.
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(strings.NewReplacer("[", "", "]", "").Replace(s))
	if s == "" {
		return Path{}, nil
	}
	parts := strings.Split(s, ",")
	p := make(Path, len(parts))
	for i, part := range parts {
		seg, err := ParseSegment(part)
		if err != nil {
			return nil, err
		}
		p[i] = seg
	}
	return p, nil
}

// String returns the DLMT text `[ M 0 0,L 1 1 ]`.
func (p Path) String() string {
	chunks := make([]string, len(p))
	for i, seg := range p {
		chunks[i] = SegmentString(seg)
	}
	return "[ " + strings.Join(chunks, ",") + " ]"
}

func (p Path) Equal(o Path) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i].Shape() != o[i].Shape() || !p[i].points().Equal(o[i].points()) {
			return false
		}
	}
	return true
}

func (p Path) mapPoints(f func(geom.Vec2) geom.Vec2) Path {
	out := make(Path, len(p))
	for i, seg := range p {
		out[i] = seg.mapPoints(f)
	}
	return out
}

// Rotate turns every point around the origin by the turn fraction angle.
func (p Path) Rotate(angle *big.Rat) Path {
	if angle == nil || angle.Sign() == 0 {
		return p
	}
	return p.mapPoints(func(v geom.Vec2) geom.Vec2 { return v.Rotate(angle) })
}

func (p Path) Translate(offset geom.Vec2) Path {
	return p.mapPoints(func(v geom.Vec2) geom.Vec2 { return v.Add(offset) })
}

func (p Path) Scale(k *big.Rat) Path {
	return p.mapPoints(func(v geom.Vec2) geom.Vec2 { return v.Scale(k) })
}

// IsMostlyInsideRect reports whether the anchor of every segment lies in
// the rectangle. Control points are ignored, and segments without anchor
// count as inside. An empty path is never inside.
func (p Path) IsMostlyInsideRect(xy geom.Vec2, width, height *big.Rat) bool {
	if len(p) == 0 {
		return false
	}
	for _, seg := range p {
		if pt, ok := seg.Anchor(); ok && !pt.IsInsideRect(xy, width, height) {
			return false
		}
	}
	return true
}

// CorePoints returns the anchors of the segments.
func (p Path) CorePoints() geom.VecList {
	var out geom.VecList
	for _, seg := range p {
		if pt, ok := seg.Anchor(); ok {
			out = append(out, pt)
		}
	}
	return out
}

// Malformed returns the sentinel segments whose opcode is known,
// that is segments with a wrong number of points.
func (p Path) Malformed() []Unsupported {
	var out []Unsupported
	for _, seg := range p {
		if u, ok := seg.(Unsupported); ok && u.Raw != "" && ParseShape(u.Raw[:1]) != ShapeUnsupported {
			out = append(out, u)
		}
	}
	return out
}

// ActionFrequency counts the segments per opcode, plus the "Total".
func (p Path) ActionFrequency() map[string]int {
	out := map[string]int{"Total": len(p)}
	for _, s := range [...]Shape{ShapeMoveTo, ShapeLineTo, ShapeCubic, ShapeSmooth, ShapeQuadratic, ShapeFluid, ShapeClose, ShapeUnsupported} {
		out[s.String()] = 0
	}
	for _, seg := range p {
		out[seg.Shape().String()]++
	}
	return out
}
