package prng

import (
	"math"
	"testing"
)

func TestPCG32Determinism(t *testing.T) {
	a := NewPCG32(1234, 5678)
	b := NewPCG32(1234, 5678)
	for i := 0; i < 8; i++ {
		if va, vb := a.Uint32(), b.Uint32(); va != vb {
			t.Fatalf("draw %d differs for identical seeds: %d != %d", i, va, vb)
		}
	}
}

func TestPCG32SeedVariation(t *testing.T) {
	a := NewPCG32(1, 1)
	b := NewPCG32(2, 2)
	if va, vb := a.Uint32(), b.Uint32(); va == vb {
		t.Errorf("different seeds produced the same first draw: %d", va)
	}
}

func TestPCG32Float64(t *testing.T) {
	rng := NewPCG32(1337, 1)
	for i := 0; i < 1000; i++ {
		if v := rng.Float64(); v < 0 || v >= 1 {
			t.Fatalf("Float64 = %f, want [0, 1)", v)
		}
	}
}

func TestPCG32Ranges(t *testing.T) {
	rng := NewPCG32(999, 123)
	for i := 0; i < 500; i++ {
		if u := rng.Uint32Range(10, 20); u < 10 || u > 20 {
			t.Fatalf("Uint32Range(10, 20) = %d", u)
		}
		if f := rng.Float64Range(-5, 5); f < -5 || f > 5 {
			t.Fatalf("Float64Range(-5, 5) = %f", f)
		}
	}
}

func TestPCG32Distribution(t *testing.T) {
	rng := NewPCG32(12345, 6789)
	const samples = 20000
	var sum float64
	for i := 0; i < samples; i++ {
		sum += rng.Float64()
	}
	if mean := sum / samples; math.Abs(mean-0.5) > 0.05 {
		t.Errorf("mean of %d draws = %f, want ~0.5", samples, mean)
	}
}

func TestPCG32UnitVectors(t *testing.T) {
	rng := NewPCG32(777, 999)

	x, y := rng.UnitVec2()
	if l := math.Sqrt(x*x + y*y); math.Abs(l-1) > 1e-9 {
		t.Errorf("UnitVec2 length = %f", l)
	}

	x, y, z := rng.UnitVec3()
	if l := math.Sqrt(x*x + y*y + z*z); math.Abs(l-1) > 1e-9 {
		t.Errorf("UnitVec3 length = %f", l)
	}
}

func TestXorshift32(t *testing.T) {
	a := NewXorshift32(42)
	b := NewXorshift32(42)
	for i := 0; i < 8; i++ {
		if va, vb := a.Uint32(), b.Uint32(); va != vb {
			t.Fatalf("draw %d differs for identical seeds: %d != %d", i, va, vb)
		}
	}

	// A zero seed would trap the generator at zero, so it gets replaced
	// with a fixed constant.
	z := NewXorshift32(0)
	r := NewXorshift32(0x9e3779b9)
	if z.Uint32() != r.Uint32() {
		t.Error("zero seed does not map to the replacement constant")
	}

	x := NewXorshift32(7)
	for i := 0; i < 1000; i++ {
		if v := x.Float64(); v < 0 || v >= 1 {
			t.Fatalf("Float64 = %f, want [0, 1)", v)
		}
	}
}
