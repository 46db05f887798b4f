package geom

import (
	"fmt"
	"math/big"
	"strings"
)

// Vec2 is a point or a displacement in the plane.
type Vec2 struct {
	X, Y *big.Rat
}

// V returns the vector (x, y).
func V(x, y *big.Rat) Vec2 { return Vec2{X: x, Y: y} }

// Zero returns the null vector.
func Zero() Vec2 { return Vec2{X: new(big.Rat), Y: new(big.Rat)} }

// ParseVec2 parses two whitespace separated rationals.
func ParseVec2(s string) (Vec2, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Vec2{}, fmt.Errorf("%w: expected 2 coordinates in %q", ErrInvalidNumber, s)
	}
	x, err := ParseRat(fields[0])
	if err != nil {
		return Vec2{}, err
	}
	y, err := ParseRat(fields[1])
	if err != nil {
		return Vec2{}, err
	}
	return Vec2{X: x, Y: y}, nil
}

// FromAmplitudeAngle returns the vector of length amplitude pointing
// at the turn fraction angle.
func FromAmplitudeAngle(amplitude, angle *big.Rat) Vec2 {
	return Vec2{X: mul(amplitude, CosFraction(angle)), Y: mul(amplitude, SinFraction(angle))}
}

func (v Vec2) Add(b Vec2) Vec2 { return Vec2{X: add(v.X, b.X), Y: add(v.Y, b.Y)} }

func (v Vec2) Sub(b Vec2) Vec2 { return Vec2{X: sub(v.X, b.X), Y: sub(v.Y, b.Y)} }

// Scale multiplies both coordinates by k.
func (v Vec2) Scale(k *big.Rat) Vec2 { return Vec2{X: mul(v.X, k), Y: mul(v.Y, k)} }

func (v Vec2) Neg() Vec2 { return Vec2{X: neg(v.X), Y: neg(v.Y)} }

// NegX mirrors v across the vertical axis.
func (v Vec2) NegX() Vec2 { return Vec2{X: neg(v.X), Y: val(v.Y)} }

// NegY mirrors v across the horizontal axis.
func (v Vec2) NegY() Vec2 { return Vec2{X: val(v.X), Y: neg(v.Y)} }

func (v Vec2) SquareMagnitude() *big.Rat {
	return add(mul(v.X, v.X), mul(v.Y, v.Y))
}

// Angle returns the quantized turn fraction of the slope y/x.
// A zero x is replaced by 1/1000000.
func (v Vec2) Angle() *big.Rat {
	x := val(v.X)
	if x.Sign() == 0 {
		x = R(1, 1000000)
	}
	return AtanFraction(new(big.Rat).Quo(val(v.Y), x))
}

// Rotate turns v around the origin by the turn fraction angle.
// A zero angle returns v itself.
func (v Vec2) Rotate(angle *big.Rat) Vec2 {
	if val(angle).Sign() == 0 {
		return v
	}
	c, s := CosFraction(angle), SinFraction(angle)
	return Vec2{
		X: sub(mul(v.X, c), mul(v.Y, s)),
		Y: add(mul(v.X, s), mul(v.Y, c)),
	}
}

func (v Vec2) Equal(b Vec2) bool {
	return cmp(v.X, b.X) == 0 && cmp(v.Y, b.Y) == 0
}

// IsInsideRect reports whether v lies in the rectangle with lower left
// corner xy, bounds included.
func (v Vec2) IsInsideRect(xy Vec2, width, height *big.Rat) bool {
	return cmp(v.X, xy.X) >= 0 && cmp(v.X, add(xy.X, width)) <= 0 &&
		cmp(v.Y, xy.Y) >= 0 && cmp(v.Y, add(xy.Y, height)) <= 0
}

// String returns the DLMT form `x y`.
func (v Vec2) String() string {
	return FormatRat(v.X) + " " + FormatRat(v.Y)
}

// FloatString returns `x y` rounded to three decimals.
func (v Vec2) FloatString() string {
	return fmt.Sprintf("%.3f %.3f", toFloat(v.X), toFloat(v.Y))
}

// CartesianString returns `(x,y)` scaled by dpu.
func (v Vec2) CartesianString(dpu float64) string {
	return fmt.Sprintf("(%.3f,%.3f)", toFloat(v.X)*dpu, toFloat(v.Y)*dpu)
}

// SVGString returns the pixel coordinates of v scaled by dpu, with the y
// axis flipped so that yOffset is the bottom of the picture.
func (v Vec2) SVGString(dpu, yOffset float64) string {
	x, y := v.Pixel(dpu, yOffset)
	return fmt.Sprintf("%.3f %.3f", x, y)
}

// Pixel is the float form of SVGString.
func (v Vec2) Pixel(dpu, yOffset float64) (x, y float64) {
	return toFloat(v.X) * dpu, yOffset - toFloat(v.Y)*dpu
}
