package remath

// Config is a struct that holds all configuration options for the noise map.
type Config struct {
	*FieldConfig
	*RenderConfig
}

// NewConfig returns a new Config with default values.
func NewConfig() *Config {
	return &Config{
		FieldConfig:  NewFieldConfig(),
		RenderConfig: NewRenderConfig(),
	}
}

// FieldConfig is a struct that holds all configuration options for a noise field.
type FieldConfig struct {
	Algorithm   Algorithm   // Base noise algorithm
	Fractal     FractalMode // Octave compositor (or FractalNone for raw noise)
	Octaves     int         // Number of octaves for the compositor
	Lacunarity  float64     // Frequency multiplier per octave
	Gain        float64     // Amplitude multiplier per octave
	RidgeOffset float64     // Fold offset for FractalRidged
	Frequency   float64     // Base sample frequency
}

// NewFieldConfig returns a new config for a noise field.
func NewFieldConfig() *FieldConfig {
	return &FieldConfig{
		Algorithm:   AlgoOpenSimplex2Fast,
		Fractal:     FractalFBM,
		Octaves:     6,
		Lacunarity:  2.0,
		Gain:        0.5,
		RidgeOffset: 1.0,
		Frequency:   1.0,
	}
}

// RenderConfig is a struct that holds all configuration options for tile rendering.
type RenderConfig struct {
	MoistureSeedDelta int64 // Seed delta for the companion moisture field (biome mode)
	ShadeZScale       float64
	DrawLatticeGrid   bool // Overlay unit-cell boundaries on rendered tiles
}

// NewRenderConfig returns a new config for tile rendering.
func NewRenderConfig() *RenderConfig {
	return &RenderConfig{
		MoistureSeedDelta: 7919,
		ShadeZScale:       18.0,
		DrawLatticeGrid:   false,
	}
}
