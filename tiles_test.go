package remath

import (
	"bytes"
	"testing"

	"github.com/EntertainmentRoyal/ReMath/various"
)

func testMap(t *testing.T) *Map {
	t.Helper()
	m, err := NewMapFromConfig(12345, nil)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestGetTile(t *testing.T) {
	m := testMap(t)
	for _, mode := range []int{DisplayGray, DisplayGradient, DisplayBiome, DisplayShaded} {
		img := m.GetTile(1, 1, 2, mode)
		if img == nil {
			t.Fatalf("mode %d: nil image", mode)
		}
		b := img.Bounds()
		if b.Dx() != tileSize || b.Dy() != tileSize {
			t.Errorf("mode %d: bounds = %v, want %dx%d", mode, b, tileSize, tileSize)
		}
	}
}

func TestGetTileDeterminism(t *testing.T) {
	m := testMap(t)
	a := m.GetTile(0, 0, 1, DisplayGray)
	b := m.GetTile(0, 0, 1, DisplayGray)

	for y := 0; y < tileSize; y += 16 {
		for x := 0; x < tileSize; x += 16 {
			ra, ga, ba, _ := a.At(x, y).RGBA()
			rb, gb, bb, _ := b.At(x, y).RGBA()
			if ra != rb || ga != gb || ba != bb {
				t.Fatalf("pixel (%d, %d) differs between renders", x, y)
			}
		}
	}
}

func TestGetTileLatticeGrid(t *testing.T) {
	m := testMap(t)
	m.DrawLatticeGrid = true
	if img := m.GetTile(1, 1, 2, DisplayGray); img == nil {
		t.Fatal("nil image with lattice grid enabled")
	}
}

func TestGetTileLatticeGridNonPositiveFrequency(t *testing.T) {
	// A zero or negative base frequency has no drawable lattice; the
	// overlay must be skipped rather than walking the lattice forever.
	for _, freq := range []float64{0, -1} {
		cfg := NewConfig()
		cfg.Frequency = freq
		cfg.DrawLatticeGrid = true
		m, err := NewMapFromConfig(99, cfg)
		if err != nil {
			t.Fatal(err)
		}
		if img := m.GetTile(1, 1, 2, DisplayGray); img == nil {
			t.Fatalf("frequency %f: nil image", freq)
		}
	}
}

func TestGetHeightMapTile(t *testing.T) {
	m := testMap(t)
	dat := m.GetHeightMapTile(1, 1, 2)
	if dat == nil {
		t.Fatal("nil heightmap tile")
	}

	vals, err := various.ReadFloatSlice(bytes.NewReader(dat))
	if err != nil {
		t.Fatal(err)
	}
	if len(vals) != tileSize*tileSize {
		t.Fatalf("len = %d, want %d", len(vals), tileSize*tileSize)
	}

	// The tile payload is the elevation heightmap of the tile bounds.
	tbb := newTileBoundingBox(1, 1, 2)
	la1, lo1, la2, lo2 := tbb.toLatLon()
	h := m.Elevation.Heightmap(tileSize, tileSize, lo1, la1, lo2, la2)
	if vals[100] != h.Values[100] {
		t.Errorf("sample 100 = %f, want %f", vals[100], h.Values[100])
	}
}

func TestTileBoundingBox(t *testing.T) {
	tbb := newTileBoundingBox(0, 0, 0)
	la1, lo1, la2, lo2 := tbb.toLatLon()
	if lo1 >= lo2 {
		t.Errorf("lon bounds not increasing: %f, %f", lo1, lo2)
	}
	if la1 == la2 {
		t.Errorf("lat bounds collapsed: %f", la1)
	}

	// Zoom 0 holds the whole world in one tile.
	if lo1 > -179 || lo2 < 179 {
		t.Errorf("zoom 0 lon bounds = [%f, %f], want roughly [-180, 180]", lo1, lo2)
	}
}
