// Package remath wraps the deterministic lattice noise in the noise
// subpackage into seeded, configured fields and renders them as map
// tiles and heightmaps. The lattice functions themselves take no seed;
// a Field derives a coordinate offset from its seed instead, so two
// fields with different seeds sample decorrelated regions of the same
// underlying lattice.
package remath

import (
	"fmt"

	"github.com/EntertainmentRoyal/ReMath/noise"
	"github.com/EntertainmentRoyal/ReMath/prng"
	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Algorithm selects the base noise function of a field.
type Algorithm int

const (
	AlgoValue Algorithm = iota
	AlgoPerlin
	AlgoOpenSimplex2Fast
	AlgoOpenSimplex2Smooth
	AlgoLegacySimplex // ojrac/opensimplex-go, kept for comparison
	AlgoLegacyPerlin  // aquilax/go-perlin, kept for comparison
)

func (a Algorithm) String() string {
	switch a {
	case AlgoValue:
		return "value"
	case AlgoPerlin:
		return "perlin"
	case AlgoOpenSimplex2Fast:
		return "os2-fast"
	case AlgoOpenSimplex2Smooth:
		return "os2-smooth"
	case AlgoLegacySimplex:
		return "legacy-simplex"
	case AlgoLegacyPerlin:
		return "legacy-perlin"
	}
	return fmt.Sprintf("algorithm(%d)", int(a))
}

// ParseAlgorithm returns the algorithm with the given name.
func ParseAlgorithm(s string) (Algorithm, error) {
	for a := AlgoValue; a <= AlgoLegacyPerlin; a++ {
		if a.String() == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown algorithm %q", s)
}

// FractalMode selects the octave compositor of a field.
type FractalMode int

const (
	FractalNone FractalMode = iota
	FractalFBM
	FractalTurbulence
	FractalRidged
)

func (m FractalMode) String() string {
	switch m {
	case FractalNone:
		return "none"
	case FractalFBM:
		return "fbm"
	case FractalTurbulence:
		return "turbulence"
	case FractalRidged:
		return "ridged"
	}
	return fmt.Sprintf("fractal(%d)", int(m))
}

// ParseFractalMode returns the fractal mode with the given name.
func ParseFractalMode(s string) (FractalMode, error) {
	for m := FractalNone; m <= FractalRidged; m++ {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown fractal mode %q", s)
}

// Field is a seeded noise field, initialized with a base algorithm,
// a fractal compositor, and the usual octave parameters.
type Field struct {
	*FieldConfig
	Seed       int64
	Amplitudes []float64 // Per-octave amplitudes (Gain^i)

	// Base samplers, bound once at construction.
	base2 noise.Sampler2
	base3 noise.Sampler3

	// Seed-derived domain offset.
	offX, offY, offZ float64
}

// NewField returns a new Field for the given seed and config.
func NewField(seed int64, cfg *FieldConfig) (*Field, error) {
	if cfg == nil {
		cfg = NewFieldConfig()
	}

	f := &Field{
		FieldConfig: cfg,
		Seed:        seed,
		Amplitudes:  make([]float64, cfg.Octaves),
	}

	// Initialize the amplitudes.
	amp := 1.0
	for i := range f.Amplitudes {
		f.Amplitudes[i] = amp
		amp *= cfg.Gain
	}

	// Bind the base samplers once. The legacy backends carry their own
	// seeding, so they skip the domain offset below.
	switch cfg.Algorithm {
	case AlgoValue:
		f.base2 = noise.Value2
		f.base3 = noise.Value3
	case AlgoPerlin:
		f.base2 = func(x, y float64) float64 { return noise.Perlin3(x, y, 0) }
		f.base3 = noise.Perlin3
	case AlgoOpenSimplex2Fast:
		f.base2 = noise.OpenSimplex2Fast2
		f.base3 = noise.OpenSimplex2Fast3
	case AlgoOpenSimplex2Smooth:
		f.base2 = noise.OpenSimplex2Smooth2
		f.base3 = noise.OpenSimplex2Smooth3
	case AlgoLegacySimplex:
		os := opensimplex.New(seed)
		f.base2 = os.Eval2
		f.base3 = os.Eval3
	case AlgoLegacyPerlin:
		p := perlin.NewPerlin(2, 2, int32(max(cfg.Octaves, 1)), seed)
		f.base2 = p.Noise2D
		f.base3 = p.Noise3D
	default:
		return nil, fmt.Errorf("unknown algorithm %v", cfg.Algorithm)
	}

	if cfg.Algorithm != AlgoLegacySimplex && cfg.Algorithm != AlgoLegacyPerlin {
		// Derive a stable domain offset from the seed. The range is
		// large enough to land in unrelated lattice neighborhoods but
		// small enough to keep full float precision per cell.
		rng := prng.NewPCG32(uint64(seed), 54)
		f.offX = rng.Float64Range(-10000, 10000)
		f.offY = rng.Float64Range(-10000, 10000)
		f.offZ = rng.Float64Range(-10000, 10000)
	}

	return f, nil
}

// Eval2 returns the field value at the given 2D point.
func (f *Field) Eval2(x, y float64) float64 {
	x = x*f.Frequency + f.offX
	y = y*f.Frequency + f.offY

	switch f.Fractal {
	case FractalFBM:
		return noise.FBM2(f.base2, x, y, f.Octaves, f.Lacunarity, f.Gain)
	case FractalTurbulence:
		return noise.Turbulence2(f.base2, x, y, f.Octaves, f.Lacunarity, f.Gain)
	case FractalRidged:
		return noise.Ridged2(f.base2, x, y, f.Octaves, f.Lacunarity, f.Gain, f.RidgeOffset)
	}
	return f.base2(x, y)
}

// Eval3 returns the field value at the given 3D point.
func (f *Field) Eval3(x, y, z float64) float64 {
	x = x*f.Frequency + f.offX
	y = y*f.Frequency + f.offY
	z = z*f.Frequency + f.offZ

	switch f.Fractal {
	case FractalFBM:
		return noise.FBM3(f.base3, x, y, z, f.Octaves, f.Lacunarity, f.Gain)
	case FractalTurbulence:
		return noise.Turbulence3(f.base3, x, y, z, f.Octaves, f.Lacunarity, f.Gain)
	case FractalRidged:
		return noise.Ridged3(f.base3, x, y, z, f.Octaves, f.Lacunarity, f.Gain, f.RidgeOffset)
	}
	return f.base3(x, y, z)
}

// EvalNormalized3 returns the fbm value at the given point divided by
// the sum of the octave amplitudes, which keeps the result in the base
// noise range regardless of gain.
func (f *Field) EvalNormalized3(x, y, z float64) float64 {
	var sum float64
	for _, a := range f.Amplitudes {
		sum += a
	}
	if sum == 0 {
		return 0
	}
	x = x*f.Frequency + f.offX
	y = y*f.Frequency + f.offY
	z = z*f.Frequency + f.offZ
	return noise.FBM3(f.base3, x, y, z, f.Octaves, f.Lacunarity, f.Gain) / sum
}

// PlusOneOctave returns a new Field with one more octave.
func (f *Field) PlusOneOctave() (*Field, error) {
	cfg := *f.FieldConfig
	cfg.Octaves++
	return NewField(f.Seed, &cfg)
}

// Map bundles the fields and rendering state for the tile server: an
// elevation field plus a companion moisture field for the biome display
// mode.
type Map struct {
	Elevation *Field
	Moisture  *Field
	*RenderConfig
}

// NewMapFromConfig returns a new Map for the given seed and config.
func NewMapFromConfig(seed int64, cfg *Config) (*Map, error) {
	if cfg == nil {
		cfg = NewConfig()
	}

	elev, err := NewField(seed, cfg.FieldConfig)
	if err != nil {
		return nil, err
	}

	// The moisture field always runs turbulence over the same base
	// algorithm, seeded apart from the elevation field.
	moisCfg := *cfg.FieldConfig
	moisCfg.Fractal = FractalTurbulence
	mois, err := NewField(seed+cfg.MoistureSeedDelta, &moisCfg)
	if err != nil {
		return nil, err
	}

	return &Map{
		Elevation:    elev,
		Moisture:     mois,
		RenderConfig: cfg.RenderConfig,
	}, nil
}
