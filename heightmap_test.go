package remath

import (
	"math"
	"testing"
)

func testField(t *testing.T) *Field {
	t.Helper()
	cfg := NewFieldConfig()
	cfg.Algorithm = AlgoValue
	f, err := NewField(42, cfg)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestHeightmap(t *testing.T) {
	f := testField(t)
	h := f.Heightmap(32, 16, -1, -1, 1, 1)

	if h.Width != 32 || h.Height != 16 {
		t.Fatalf("dimensions = %dx%d, want 32x16", h.Width, h.Height)
	}
	if len(h.Values) != 32*16 {
		t.Fatalf("len(Values) = %d, want %d", len(h.Values), 32*16)
	}

	// Cells hold the field sampled at cell centers.
	dx := 2.0 / 32
	dy := 2.0 / 16
	want := f.Eval2(-1+(5+0.5)*dx, -1+(3+0.5)*dy)
	if got := h.At(5, 3); got != want {
		t.Errorf("At(5, 3) = %f, want %f", got, want)
	}

	min, max := h.MinMax()
	if min > max {
		t.Errorf("MinMax returned min %f > max %f", min, max)
	}
}

func TestHeightmapNormal(t *testing.T) {
	f := testField(t)
	h := f.Heightmap(16, 16, 0, 0, 4, 4)

	for _, c := range [][2]int{{8, 8}, {0, 0}, {15, 15}} {
		n := h.Normal(c[0], c[1], 18)
		if l := n.Len(); math.Abs(l-1) > 1e-9 {
			t.Errorf("Normal(%d, %d) length = %f", c[0], c[1], l)
		}
	}
}

func TestHeightmapShade(t *testing.T) {
	f := testField(t)
	h := f.Heightmap(16, 16, 0, 0, 4, 4)

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if s := h.Shade(x, y, 18); s < 0 || s > 1 {
				t.Fatalf("Shade(%d, %d) = %f, want [0, 1]", x, y, s)
			}
		}
	}
}
