package dlmtpath

import (
	"strings"

	"github.com/benoitkugler/dalmatian/geom"
)

// Projection maps world units to SVG pixels: coordinates are scaled by DPU
// and the y axis is flipped around YOffset, the pixel height of the page.
type Projection struct {
	DPU     float64
	YOffset float64
}

func (pr Projection) point(v geom.Vec2) string {
	return v.SVGString(pr.DPU, pr.YOffset)
}

// SVGString returns the `d` attribute of the path. Unsupported segments
// are skipped.
func (p Path) SVGString(pr Projection) string {
	chunks := make([]string, 0, len(p))
	for _, seg := range p {
		switch seg := seg.(type) {
		case Close:
			chunks = append(chunks, "Z")
		case MoveTo:
			chunks = append(chunks, "M "+pr.point(geom.Vec2(seg)))
		case LineTo:
			chunks = append(chunks, "L "+pr.point(geom.Vec2(seg)))
		case FluidTo:
			chunks = append(chunks, "T "+pr.point(geom.Vec2(seg)))
		case SmoothTo:
			chunks = append(chunks, "S "+pr.point(seg[0])+" "+pr.point(seg[1]))
		case QuadTo:
			chunks = append(chunks, "Q "+pr.point(seg[0])+" "+pr.point(seg[1]))
		case CubicTo:
			chunks = append(chunks, "C "+pr.point(seg[0])+" "+pr.point(seg[1])+" "+pr.point(seg[2]))
		}
	}
	return strings.Join(chunks, " ")
}

// CoreSVGString returns a closed polygon through the anchors of p.
// Curves are replaced by straight lines, so the outline is only an
// approximation of the drawn shape.
func (p Path) CoreSVGString(pr Projection) string {
	return p.CorePolygon().SVGString(pr)
}

// CorePolygon returns the closed polyline joining the anchors of p.
// An empty path gives a lone Close.
func (p Path) CorePolygon() Path {
	pts := p.CorePoints()
	out := make(Path, 0, len(pts)+1)
	for i, pt := range pts {
		if i == 0 {
			out.Start(pt)
		} else {
			out.Line(pt)
		}
	}
	out.Stop(true)
	return out
}

// CoreCartesianString returns the anchors as `(x,y)` pairs scaled by dpu.
func (p Path) CoreCartesianString(dpu float64) string {
	return p.CorePoints().CartesianString(dpu)
}

// Start opens a subpath at a.
func (p *Path) Start(a geom.Vec2) {
	*p = append(*p, MoveTo(a))
}

// Line appends a straight segment ending at b.
func (p *Path) Line(b geom.Vec2) {
	*p = append(*p, LineTo(b))
}

// Stop ends the subpath, closing it back to its start when closeLoop is set.
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}
