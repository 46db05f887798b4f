package geom

import (
	"fmt"
	"math/big"
)

// Rect is an axis aligned rectangle given by its lower left corner.
type Rect struct {
	Origin        Vec2
	Width, Height *big.Rat
}

func NewRect(origin Vec2, width, height *big.Rat) Rect {
	return Rect{Origin: origin, Width: width, Height: height}
}

// RectFromOppositePoints returns the rectangle spanning from leftBottom
// to rightTop.
func RectFromOppositePoints(leftBottom, rightTop Vec2) Rect {
	return Rect{
		Origin: leftBottom,
		Width:  sub(rightTop.X, leftBottom.X),
		Height: sub(rightTop.Y, leftBottom.Y),
	}
}

// Contains reports whether p is inside r, bounds included.
func (r Rect) Contains(p Vec2) bool {
	return p.IsInsideRect(r.Origin, r.Width, r.Height)
}

func (r Rect) Equal(o Rect) bool {
	return r.Origin.Equal(o.Origin) && cmp(r.Width, o.Width) == 0 && cmp(r.Height, o.Height) == 0
}

// String returns the DLMT fragment `xy x y width w height h`.
func (r Rect) String() string {
	return fmt.Sprintf("xy %s width %s height %s", r.Origin, FormatRat(r.Width), FormatRat(r.Height))
}
