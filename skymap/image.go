// Public domain.

package skymap

import (
	"image"
	"image/color"

	"github.com/js-arias/blind"
)

// A Gradienter maps a value in [0, 1] to a color.
type Gradienter interface {
	Gradient(v float64) color.Color
}

// Image renders a grid as a plate carrée image.
type Image struct {
	Grid *Grid

	// VMax is the value mapped to the top of the gradient.  Larger
	// values saturate.  Zero means the 0.99 quantile of the grid.
	VMax float64

	// Gradient is the color scheme, RainbowPurpleToRed if nil.
	Gradient Gradienter
}

// Format fills the zero-value defaults.  Call it before using Image as
// an image.Image.
func (i *Image) Format() {
	if i.Gradient == nil {
		i.Gradient = RainbowPurpleToRed{}
	}
	if i.VMax <= 0 {
		i.VMax = i.Grid.Quantile(0.99)
	}
	if i.VMax <= 0 {
		// all-zero grid, the stand-in model for instance
		i.VMax = 1
	}
}

func (i *Image) ColorModel() color.Model { return color.RGBAModel }
func (i *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, i.Grid.Cols, i.Grid.Rows())
}
func (i *Image) At(x, y int) color.Color {
	return i.Gradient.Gradient(i.Grid.At(x, y) / i.VMax)
}

// Incandescent is the incandescent color scheme of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_incandescent>.
type Incandescent struct{}

func (Incandescent) Gradient(v float64) color.Color {
	return blind.Sequential(blind.Incandescent, clamp(v))
}

// RainbowPurpleToRed is the smooth rainbow color scheme of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_rainbow_smooth>
// starting at purple and ending at red.
type RainbowPurpleToRed struct{}

func (RainbowPurpleToRed) Gradient(v float64) color.Color {
	return blind.Sequential(blind.RainbowPurpleToRed, clamp(v))
}

// LightGrayScale returns a gray scale from light gray (0) to black (1).
type LightGrayScale struct{}

func (LightGrayScale) Gradient(v float64) color.Color {
	c := 200 - uint8(clamp(v)*200)
	return color.RGBA{c, c, c, 255}
}

// Scales names the gradients for command line use.
var Scales = map[string]Gradienter{
	"rainbow":      RainbowPurpleToRed{},
	"incandescent": Incandescent{},
	"gray":         LightGrayScale{},
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
