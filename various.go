package remath

import (
	"image/color"
	"math"

	"github.com/Flokey82/go_gens/utils"
)

var minMax = utils.MinMax[float64]

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// genBlue returns a blue color with the given intensity (0.0-1.0).
func genBlue(intensity float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(intensity * 255),
		G: uint8(intensity * 255),
		B: 255,
		A: 255,
	}
}

// genGray returns a gray color with the given intensity (0.0-1.0).
func genGray(intensity float64) color.NRGBA {
	v := uint8(intensity * 255)
	return color.NRGBA{R: v, G: v, B: v, A: 255}
}

// genColor converts the given color to NRGBA and scales it by the given
// intensity (0.0-1.0).
func genColor(col color.Color, intensity float64) color.Color {
	var col2 color.NRGBA
	cr, cg, cb, _ := col.RGBA()
	col2.R = uint8(intensity * float64(255) * float64(cr) / float64(0xffff))
	col2.G = uint8(intensity * float64(255) * float64(cg) / float64(0xffff))
	col2.B = uint8(intensity * float64(255) * float64(cb) / float64(0xffff))
	col2.A = 255
	return col2
}
