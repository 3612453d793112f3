package noise

import (
	"math"
	"testing"

	"github.com/EntertainmentRoyal/ReMath/prng"
)

func TestOpenSimplex2Deterministic(t *testing.T) {
	for _, tc := range []struct {
		name string
		a, b float64
	}{
		{"fast2", OpenSimplex2Fast2(1.1, 2.2), OpenSimplex2Fast2(1.1, 2.2)},
		{"smooth2", OpenSimplex2Smooth2(1.1, 2.2), OpenSimplex2Smooth2(1.1, 2.2)},
		{"fast3", OpenSimplex2Fast3(1, 2, 3), OpenSimplex2Fast3(1, 2, 3)},
		{"smooth3", OpenSimplex2Smooth3(0.5, 0.25, 0.75), OpenSimplex2Smooth3(0.5, 0.25, 0.75)},
	} {
		if math.Abs(tc.a-tc.b) > 1e-6 {
			t.Errorf("%s not deterministic: %f != %f", tc.name, tc.a, tc.b)
		}
	}
}

func TestOpenSimplex2FastVsSmooth(t *testing.T) {
	f := OpenSimplex2Fast3(0.3, 0.7, 0.9)
	s := OpenSimplex2Smooth3(0.3, 0.7, 0.9)
	if math.Abs(f-s) <= 1e-6 {
		t.Errorf("fast and smooth variants identical at (0.3, 0.7, 0.9): %f", f)
	}
}

func TestOpenSimplex2Range(t *testing.T) {
	rng := prng.NewPCG32(3, 1)
	var nonzero bool
	for i := 0; i < 10000; i++ {
		x := rng.Float64Range(-50, 50)
		y := rng.Float64Range(-50, 50)
		z := rng.Float64Range(-50, 50)
		for _, v := range []float64{
			OpenSimplex2Fast2(x, y),
			OpenSimplex2Smooth2(x, y),
			OpenSimplex2Fast3(x, y, z),
			OpenSimplex2Smooth3(x, y, z),
		} {
			if math.IsNaN(v) || math.Abs(v) > 3 {
				t.Fatalf("sample at (%f, %f, %f) out of range: %f", x, y, z, v)
			}
			if v != 0 {
				nonzero = true
			}
		}
	}
	if !nonzero {
		t.Error("all samples zero")
	}
}

func TestOpenSimplex2Continuity(t *testing.T) {
	// Walk a diagonal line in small steps across several lattice cells;
	// simplex noise has no cell boundary discontinuities, so consecutive
	// samples must stay close. The sweep also asserts the field is not
	// flat over the walked region, so a degenerate all-zero variant
	// cannot pass by never producing a jump.
	const (
		step = 1e-4
		n    = 40000 // covers u in [-2, 2], many cells on each axis
	)
	for _, tc := range []struct {
		name   string
		sample func(u float64) float64
	}{
		{"fast2", func(u float64) float64 { return OpenSimplex2Fast2(u, 0.7*u+0.2) }},
		{"smooth2", func(u float64) float64 { return OpenSimplex2Smooth2(u, 0.7*u+0.2) }},
		{"fast3", func(u float64) float64 { return OpenSimplex2Fast3(u, 0.7*u+0.2, 1.3*u+0.5) }},
		{"smooth3", func(u float64) float64 { return OpenSimplex2Smooth3(u, 0.7*u+0.2, 1.3*u+0.5) }},
	} {
		prev := tc.sample(-2)
		var maxAbs float64
		for i := 1; i <= n; i++ {
			u := -2 + float64(i)*step
			v := tc.sample(u)
			if d := math.Abs(v - prev); d > 0.05 {
				t.Fatalf("%s jumps by %f at u=%f", tc.name, d, u)
			}
			if a := math.Abs(v); a > maxAbs {
				maxAbs = a
			}
			prev = v
		}
		if maxAbs < 1e-3 {
			t.Errorf("%s nearly flat over the sweep: max |v| = %g", tc.name, maxAbs)
		}
	}
}

func TestOpenSimplex2NonDegenerate(t *testing.T) {
	// The 3D variants must produce signal over a generic patch of the
	// plane z = 2.5, not just in a band near the origin.
	if v := OpenSimplex2Fast3(0.3, 0.7, 0.9); v == 0 {
		t.Error("fast3 zero at (0.3, 0.7, 0.9)")
	}
	if v := OpenSimplex2Smooth3(0.3, 0.7, 0.9); v == 0 {
		t.Error("smooth3 zero at (0.3, 0.7, 0.9)")
	}
	var zero, total int
	for i := 0; i < 100; i++ {
		for j := 0; j < 100; j++ {
			x := float64(i) * 0.13
			y := float64(j) * 0.17
			total += 2
			if OpenSimplex2Fast3(x, y, 2.5) == 0 {
				zero++
			}
			if OpenSimplex2Smooth3(x, y, 2.5) == 0 {
				zero++
			}
		}
	}
	if zero > total/10 {
		t.Errorf("3D noise exactly zero at %d of %d samples", zero, total)
	}
}
