package remath

import (
	"github.com/Flokey82/go_gens/vectors"
	"github.com/dgravesa/go-parallel/parallel"
)

// Heightmap is a dense grid of field samples covering a rectangle of
// the sample plane.
type Heightmap struct {
	Width  int
	Height int
	Values []float64 // Row-major, len Width*Height.
}

// Heightmap samples the field over the rectangle (x0,y0)-(x1,y1) on a
// width x height grid. Rows are filled in parallel; the field is pure,
// so the workers share nothing but the output slice.
func (f *Field) Heightmap(width, height int, x0, y0, x1, y1 float64) *Heightmap {
	h := &Heightmap{
		Width:  width,
		Height: height,
		Values: make([]float64, width*height),
	}

	dx := (x1 - x0) / float64(width)
	dy := (y1 - y0) / float64(height)

	parallel.For(height, func(j, _ int) {
		y := y0 + (float64(j)+0.5)*dy
		row := h.Values[j*width : (j+1)*width]
		for i := range row {
			row[i] = f.Eval2(x0+(float64(i)+0.5)*dx, y)
		}
	})

	return h
}

// At returns the sample at the given grid cell.
func (h *Heightmap) At(x, y int) float64 {
	return h.Values[y*h.Width+x]
}

// MinMax returns the smallest and largest sample in the heightmap.
func (h *Heightmap) MinMax() (float64, float64) {
	return minMax(h.Values)
}

// Normal returns the surface normal at the given grid cell, treating
// the samples as elevations scaled by zScale grid units. Edge cells
// fall back to one-sided differences.
func (h *Heightmap) Normal(x, y int, zScale float64) vectors.Vec3 {
	xl := h.At(max(x-1, 0), y)
	xr := h.At(min(x+1, h.Width-1), y)
	yu := h.At(x, max(y-1, 0))
	yd := h.At(x, min(y+1, h.Height-1))

	n := vectors.Vec3{
		X: (xl - xr) * zScale,
		Y: (yu - yd) * zScale,
		Z: 2,
	}
	return n.Normalize()
}

// lightDir is the fixed light direction used for hillshading (upper
// left, fairly high sun).
var lightDir = vectors.Vec3{X: -0.5, Y: -0.5, Z: 1}.Normalize()

// Shade returns the hillshade intensity in [0, 1] at the given grid
// cell.
func (h *Heightmap) Shade(x, y int, zScale float64) float64 {
	d := vectors.Dot3(h.Normal(x, y, zScale), lightDir)
	if d < 0 {
		return 0
	}
	return d
}
