package geom

import (
	"math"
	"math/big"
)

// Angles are turn fractions: 1 is a full rotation.
//
// Circular functions are quantized to three decimals so that rotated
// coordinates stay exact rationals.

const trigUnit = 1000

func quantize(f float64) *big.Rat {
	return big.NewRat(int64(math.Round(trigUnit*f)), trigUnit)
}

// reduceTurn returns t reduced to [0, 1) as a float, so that huge angles stay
// finite once converted.
func reduceTurn(t *big.Rat) float64 {
	t = val(t)
	whole := new(big.Int).Div(t.Num(), t.Denom()) // floor, the denominator is positive
	return toFloat(new(big.Rat).Sub(t, new(big.Rat).SetInt(whole)))
}

// CosFraction returns round(1000·cos(2π·t))/1000.
func CosFraction(t *big.Rat) *big.Rat {
	return quantize(math.Cos(2 * math.Pi * reduceTurn(t)))
}

// SinFraction returns round(1000·sin(2π·t))/1000.
func SinFraction(t *big.Rat) *big.Rat {
	return quantize(math.Sin(2 * math.Pi * reduceTurn(t)))
}

// AtanFraction returns the turn fraction whose tangent is slope,
// quantized to 1/1000 of a turn.
func AtanFraction(slope *big.Rat) *big.Rat {
	return quantize(math.Atan(toFloat(slope)) / (2 * math.Pi))
}
