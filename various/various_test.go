package various

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestFloatSliceRoundTrip(t *testing.T) {
	want := []float64{1.5, -2.25, 0, 1e-9, 12345.6789}

	var buf bytes.Buffer
	if err := WriteFloatSlice(&buf, want); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFloatSlice(&buf)
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value %d = %f, want %f", i, got[i], want[i])
		}
	}
}

func TestReadFloatSliceBadLength(t *testing.T) {
	// A corrupt length prefix must error out instead of allocating.
	for _, n := range []int64{-1, 1 << 40} {
		var buf bytes.Buffer
		if err := binary.Write(&buf, binary.LittleEndian, n); err != nil {
			t.Fatal(err)
		}
		if _, err := ReadFloatSlice(&buf); err == nil {
			t.Errorf("no error for length prefix %d", n)
		}
	}
}

func TestClamp(t *testing.T) {
	for _, tc := range []struct {
		v, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0, 0, 1, 0},
	} {
		if got := Clamp(tc.v, tc.min, tc.max); got != tc.want {
			t.Errorf("Clamp(%f, %f, %f) = %f, want %f", tc.v, tc.min, tc.max, got, tc.want)
		}
	}
}

func TestRoundToDecimals(t *testing.T) {
	if got := RoundToDecimals(1.2345, 2); got != 1.23 {
		t.Errorf("RoundToDecimals(1.2345, 2) = %f", got)
	}
}
