package noise

import "math"

// Sampler2 is a 2D base noise function driven by the fractal
// compositors. Any of the package's 2D noise functions (or a closure
// over them) qualifies.
type Sampler2 func(x, y float64) float64

// Sampler3 is the 3D counterpart of Sampler2.
type Sampler3 func(x, y, z float64) float64

// FBM3 sums octaves of the base sampler, multiplying the coordinates by
// lacunarity and the amplitude by gain after each octave. The sum is
// deliberately not normalized: with gain close to 1 it can leave
// [-1, 1], and callers that need a fixed range rescale it themselves.
// Zero octaves yield 0.
func FBM3(sample Sampler3, x, y, z float64, octaves int, lacunarity, gain float64) float64 {
	var sum float64
	amp := 1.0
	for i := 0; i < octaves; i++ {
		sum += sample(x, y, z) * amp
		x *= lacunarity
		y *= lacunarity
		z *= lacunarity
		amp *= gain
	}
	return sum
}

// Turbulence3 is FBM3 over the absolute value of the base sampler; the
// result is non-negative.
func Turbulence3(sample Sampler3, x, y, z float64, octaves int, lacunarity, gain float64) float64 {
	var sum float64
	amp := 1.0
	for i := 0; i < octaves; i++ {
		sum += math.Abs(sample(x, y, z)) * amp
		x *= lacunarity
		y *= lacunarity
		z *= lacunarity
		amp *= gain
	}
	return sum
}

// Ridged3 folds each octave around the offset and squares it, producing
// sharp non-negative ridge lines. The amplitude starts at 0.5 and
// decays by gain.
func Ridged3(sample Sampler3, x, y, z float64, octaves int, lacunarity, gain, offset float64) float64 {
	var sum float64
	amp := 0.5
	for i := 0; i < octaves; i++ {
		n := offset - math.Abs(sample(x, y, z))
		sum += n * n * amp
		x *= lacunarity
		y *= lacunarity
		z *= lacunarity
		amp *= gain
	}
	return sum
}

// FBM2 is the 2D counterpart of FBM3.
func FBM2(sample Sampler2, x, y float64, octaves int, lacunarity, gain float64) float64 {
	var sum float64
	amp := 1.0
	for i := 0; i < octaves; i++ {
		sum += sample(x, y) * amp
		x *= lacunarity
		y *= lacunarity
		amp *= gain
	}
	return sum
}

// Turbulence2 is the 2D counterpart of Turbulence3.
func Turbulence2(sample Sampler2, x, y float64, octaves int, lacunarity, gain float64) float64 {
	var sum float64
	amp := 1.0
	for i := 0; i < octaves; i++ {
		sum += math.Abs(sample(x, y)) * amp
		x *= lacunarity
		y *= lacunarity
		amp *= gain
	}
	return sum
}

// Ridged2 is the 2D counterpart of Ridged3.
func Ridged2(sample Sampler2, x, y float64, octaves int, lacunarity, gain, offset float64) float64 {
	var sum float64
	amp := 0.5
	for i := 0; i < octaves; i++ {
		n := offset - math.Abs(sample(x, y))
		sum += n * n * amp
		x *= lacunarity
		y *= lacunarity
		amp *= gain
	}
	return sum
}
