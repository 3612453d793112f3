// Package noise implements deterministic lattice noise: value noise,
// classic Perlin gradient noise, OpenSimplex2 in its Fast and Smooth
// variants, and fbm / turbulence / ridged fractal compositors on top.
//
// Every function in this package is pure and safe for unrestricted
// concurrent use. There is no seed: identical inputs always produce
// identical outputs, and callers that want seed variation offset their
// coordinates instead (see the remath root package). NaN and Inf inputs
// are not trapped and propagate through per IEEE semantics.
package noise

// Empirical normalization scales that bring the OpenSimplex2 output into
// roughly [-1, 1]. Calibration constants, not derived values.
const (
	scale2 = 70.0
	scale3 = 32.0
)

// fastFloor is a floor that stays correct for negative inputs without
// going through math.Floor.
func fastFloor(x float64) int32 {
	xi := int32(x)
	if x < float64(xi) {
		return xi - 1
	}
	return xi
}

// fade is the quintic Perlin S-curve 6t^5 - 15t^4 + 10t^3. Its first and
// second derivatives vanish at t=0 and t=1, which is what keeps the
// interpolated field smooth across cell boundaries.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
