package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"os"
	"runtime/pprof"

	remath "github.com/EntertainmentRoyal/ReMath"
)

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
var memprofile = flag.String("memprofile", "", "write memory profile to this file")

var (
	seed   int64 = 1234
	size         = 1024
	extent       = 8.0
)

func init() {
	flag.Int64Var(&seed, "seed", seed, "the field seed")
	flag.IntVar(&size, "size", size, "output image size in pixels")
	flag.Float64Var(&extent, "extent", extent, "sampled extent in lattice cells")
}

func main() {
	flag.Parse()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	field, err := remath.NewField(seed, remath.NewFieldConfig())
	if err != nil {
		log.Fatal(err)
	}

	h := field.Heightmap(size, size, 0, 0, extent, extent)

	exportPNG := true
	exportSnapshot := false
	if exportPNG {
		if err := exportHeightmapPNG(h, "test.png"); err != nil {
			log.Fatal(err)
		}
	}
	if exportSnapshot {
		if err := exportFieldSnapshot(field, "test.field"); err != nil {
			log.Fatal(err)
		}
	}

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
		return
	}
}

// exportHeightmapPNG writes the heightmap as a grayscale PNG, stretched
// to the full value range.
func exportHeightmapPNG(h *remath.Heightmap, name string) error {
	min, max := h.MinMax()
	span := max - min
	if span == 0 {
		span = 1
	}

	img := image.NewGray(image.Rect(0, 0, h.Width, h.Height))
	for y := 0; y < h.Height; y++ {
		for x := 0; x < h.Width; x++ {
			img.Pix[y*h.Width+x] = uint8(255 * (h.At(x, y) - min) / span)
		}
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// exportFieldSnapshot writes the field parameters so the render can be
// reproduced later with ReadField.
func exportFieldSnapshot(field *remath.Field, name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return field.WriteTo(f)
}
