// Composes the brushstrokes of a Dalmatian media as seen through a view.
//
// Brush paths are placed on the page (rotated, scaled then translated),
// filtered by the view tags and bounds, and reprojected so that
// the view width becomes the unit length.
package scene

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/benoitkugler/dalmatian/dlmt"
	"github.com/benoitkugler/dalmatian/dlmtpath"
	"github.com/benoitkugler/dalmatian/geom"
)

var (
	// ErrUnknownView is returned when selecting a view id not declared by the media.
	ErrUnknownView = errors.New("unknown view")
	// ErrEmptyView is returned for views without extent, which can't be
	// reprojected.
	ErrEmptyView = errors.New("empty view")
)

// PageBrushstroke is a brushstroke path in page coordinates.
type PageBrushstroke struct {
	Path dlmtpath.Path
	Tags dlmt.IDSet
}

// ZoomTo moves origin to zero and scales the path so that width becomes 1.
// The height is scaled by the same factor.
func (pbs PageBrushstroke) ZoomTo(origin geom.Vec2, width *big.Rat) PageBrushstroke {
	return PageBrushstroke{Path: pbs.Path.Translate(origin.Neg()).Scale(geom.Inv(width)), Tags: pbs.Tags}
}

func (pbs PageBrushstroke) String() string {
	return fmt.Sprintf("pbs path %s tags %v", pbs.Path, pbs.Tags.Sorted())
}

// Compose places every brushstroke of m on the page, in painting order.
// Brushstrokes referencing an unknown brush are skipped.
func Compose(m dlmt.Media) []PageBrushstroke {
	ratio := m.Headers().BrushPageRatio
	strokes := m.Brushstrokes()
	out := make([]PageBrushstroke, 0, len(strokes))
	for i, bs := range strokes {
		brush, ok := m.Brush(bs.BrushID)
		if !ok {
			dlmt.Logger().Warn("skipping brushstroke with undeclared brush", "index", i, "brush", bs.BrushID)
			continue
		}
		path := brush.Path.Rotate(bs.Angle).Scale(geom.Mul(ratio, bs.Scale)).Translate(bs.XY)
		out = append(out, PageBrushstroke{Path: path, Tags: bs.TagSet()})
	}
	return out
}

// ForView returns the brushstrokes accepted by v, reprojected in the
// view space. With flag O, strokes not mostly inside the view are dropped.
// An error is returned if v has no positive width.
func ForView(m dlmt.Media, v dlmt.View) ([]PageBrushstroke, error) {
	if v.Width == nil || v.Width.Sign() <= 0 {
		return nil, fmt.Errorf("%w: view %s has width %s", ErrEmptyView, v.ID, geom.FormatRat(v.Width))
	}
	var out []PageBrushstroke
	omit := v.OmitsOutOfView()
	for _, pbs := range Compose(m) {
		if !v.AcceptTags(pbs.Tags) {
			continue
		}
		if omit && !pbs.Path.IsMostlyInsideRect(v.XY, v.Width, v.Height) {
			continue
		}
		out = append(out, pbs.ZoomTo(v.XY, v.Width))
	}
	return out, nil
}
