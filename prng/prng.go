// Package prng provides the small deterministic generators the rest of
// the module seeds itself with: a PCG32 stream generator and a minimal
// xorshift32. Both are reproducible across platforms, unlike math/rand's
// unspecified default source, which is why they exist at all.
package prng

import "math"

// PCG32 is a permuted congruential generator with 64 bits of state and
// a selectable stream. Not safe for concurrent use; give each goroutine
// its own instance.
type PCG32 struct {
	state uint64
	inc   uint64
}

// NewPCG32 returns a generator seeded with the given seed and stream
// sequence. The warm-up advance matches the PCG reference seeding, so a
// given (seed, seq) pair produces the same stream everywhere.
func NewPCG32(seed, seq uint64) *PCG32 {
	p := &PCG32{
		state: 0,
		inc:   (seq << 1) | 1,
	}
	p.Uint32()
	p.state += seed
	p.Uint32()
	return p
}

// Uint32 advances the generator and returns the next 32 random bits.
func (p *PCG32) Uint32() uint32 {
	old := p.state
	p.state = old*6364136223846793005 + (p.inc | 1)

	xorshift := uint32(((old >> 18) ^ old) >> 27)
	rot := uint32(old >> 59)
	return (xorshift >> rot) | (xorshift << ((-rot) & 31))
}

// Float64 returns a random float in [0, 1).
func (p *PCG32) Float64() float64 {
	return float64(p.Uint32()) * (1.0 / 4294967296.0)
}

// Float32 returns a random float in [0, 1).
func (p *PCG32) Float32() float32 {
	return float32(p.Uint32()) * (1.0 / 4294967296.0)
}

// Uint32Range returns a random integer in [min, max].
func (p *PCG32) Uint32Range(min, max uint32) uint32 {
	return min + p.Uint32()%(max-min+1)
}

// Float64Range returns a random float in [min, max).
func (p *PCG32) Float64Range(min, max float64) float64 {
	return min + (max-min)*p.Float64()
}

// UnitVec2 returns a uniformly distributed point on the unit circle.
func (p *PCG32) UnitVec2() (x, y float64) {
	a := p.Float64Range(0, 2*math.Pi)
	return math.Cos(a), math.Sin(a)
}

// UnitVec3 returns a uniformly distributed point on the unit sphere.
func (p *PCG32) UnitVec3() (x, y, z float64) {
	z = p.Float64Range(-1, 1)
	a := p.Float64Range(0, 2*math.Pi)
	r := math.Sqrt(1 - z*z)
	return r * math.Cos(a), r * math.Sin(a), z
}

// Xorshift32 is the classic 13/17/5 xorshift generator. It is weaker
// than PCG32 but a single register of state, which makes it handy for
// per-cell decoration streams.
type Xorshift32 struct {
	state uint32
}

// NewXorshift32 returns a generator seeded with the given value. A zero
// seed would lock the generator at zero, so it is replaced with a fixed
// nonzero constant.
func NewXorshift32(seed uint32) *Xorshift32 {
	if seed == 0 {
		seed = 0x9e3779b9
	}
	return &Xorshift32{state: seed}
}

// Uint32 advances the generator and returns the next 32 random bits.
func (x *Xorshift32) Uint32() uint32 {
	s := x.state
	s ^= s << 13
	s ^= s >> 17
	s ^= s << 5
	x.state = s
	return s
}

// Float64 returns a random float in [0, 1).
func (x *Xorshift32) Float64() float64 {
	return float64(x.Uint32()) * (1.0 / 4294967296.0)
}
