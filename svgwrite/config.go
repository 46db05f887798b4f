package svgwrite

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/benoitkugler/dalmatian/dlmt"
	"github.com/benoitkugler/dalmatian/dlmtpath"
	"github.com/benoitkugler/dalmatian/geom"
)

// ErrInvalidConfig is returned for non positive sizes.
var ErrInvalidConfig = errors.New("invalid rendering configuration")

// Config is the rendering configuration of a view.
// Sizes are kept exact until the final projection.
type Config struct {
	View           dlmt.View
	PixelWidth     int
	BrushPageRatio *big.Rat
}

// NewConfig renders v with the given pixel width.
func NewConfig(h dlmt.Headers, v dlmt.View, pixelWidth int) (Config, error) {
	if pixelWidth <= 0 {
		return Config{}, fmt.Errorf("%w: pixel width %d", ErrInvalidConfig, pixelWidth)
	}
	if v.Width == nil || v.Width.Sign() <= 0 {
		return Config{}, fmt.Errorf("%w: view %s has width %s", ErrInvalidConfig, v.ID, geom.FormatRat(v.Width))
	}
	return Config{View: v, PixelWidth: pixelWidth, BrushPageRatio: h.BrushPageRatio}, nil
}

// Zoom normalizes the view width to 1.
func (c Config) Zoom() *big.Rat { return geom.Inv(c.View.Width) }

func (c Config) width() *big.Rat { return geom.Int(int64(c.PixelWidth)) }

// PixelHeight is the height of the picture, keeping the view aspect ratio.
func (c Config) PixelHeight() *big.Rat {
	return geom.Mul(geom.Mul(c.Zoom(), c.View.Height), c.width())
}

// BrushWidth is the size of the brush unit, in pixels.
func (c Config) BrushWidth() *big.Rat {
	return geom.Mul(geom.Mul(c.Zoom(), c.BrushPageRatio), c.width())
}

// PageViewBox returns the `viewBox` of the picture.
func (c Config) PageViewBox() string {
	return "0 0 " + geom.V(c.width(), c.PixelHeight()).FloatString()
}

// BrushViewBox returns the `viewBox` of a brush centered on the origin.
func (c Config) BrushViewBox() string {
	bw := c.BrushWidth()
	half := geom.Mul(bw, geom.R(-1, 2))
	return geom.V(half, half).FloatString() + " " + geom.V(bw, bw).FloatString()
}

func (c Config) BrushWidthString() string { return geom.FormatFloat(c.BrushWidth()) }

// Projection maps the normalized view space to pixels, flipping the y axis.
func (c Config) Projection() dlmtpath.Projection {
	h, _ := c.PixelHeight().Float64()
	return dlmtpath.Projection{DPU: float64(c.PixelWidth), YOffset: h}
}
