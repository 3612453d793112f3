package main

import (
	"bytes"
	"compress/gzip"
	"flag"
	"image"
	"image/png"
	"log"
	"net/http"
	"strconv"

	remath "github.com/EntertainmentRoyal/ReMath"
	"github.com/gorilla/mux"
)

var noisemap *remath.Map

var (
	seed        int64   = 12345
	algorithm   string  = "os2-fast"
	fractal     string  = "fbm"
	octaves     int     = 6
	lacunarity  float64 = 2.0
	gain        float64 = 0.5
	ridgeOffset float64 = 1.0
	frequency   float64 = 1.0
	drawGrid    bool    = false
)

func init() {
	flag.Int64Var(&seed, "seed", seed, "the field seed")
	flag.StringVar(&algorithm, "algorithm", algorithm, "base noise (value, perlin, os2-fast, os2-smooth, legacy-simplex, legacy-perlin)")
	flag.StringVar(&fractal, "fractal", fractal, "octave compositor (none, fbm, turbulence, ridged)")
	flag.IntVar(&octaves, "octaves", octaves, "number of octaves")
	flag.Float64Var(&lacunarity, "lacunarity", lacunarity, "per-octave frequency multiplier")
	flag.Float64Var(&gain, "gain", gain, "per-octave amplitude multiplier")
	flag.Float64Var(&ridgeOffset, "ridge_offset", ridgeOffset, "offset for the ridged compositor")
	flag.Float64Var(&frequency, "frequency", frequency, "base frequency in lattice cells per degree")
	flag.BoolVar(&drawGrid, "grid", drawGrid, "overlay the lattice grid on tiles")
}

func main() {
	flag.Parse()

	// Initialize the config.
	cfg := remath.NewConfig()
	algo, err := remath.ParseAlgorithm(algorithm)
	if err != nil {
		log.Fatal(err)
	}
	frac, err := remath.ParseFractalMode(fractal)
	if err != nil {
		log.Fatal(err)
	}
	cfg.FieldConfig.Algorithm = algo
	cfg.FieldConfig.Fractal = frac
	cfg.FieldConfig.Octaves = octaves
	cfg.FieldConfig.Lacunarity = lacunarity
	cfg.FieldConfig.Gain = gain
	cfg.FieldConfig.RidgeOffset = ridgeOffset
	cfg.FieldConfig.Frequency = frequency
	cfg.RenderConfig.DrawLatticeGrid = drawGrid

	// Initialize the noise fields.
	m, err := remath.NewMapFromConfig(seed, cfg)
	if err != nil {
		log.Fatal(err)
	}
	noisemap = m

	// Start the server.
	router := mux.NewRouter()
	router.HandleFunc("/tiles/{z}/{x}/{y}", tileHandler)
	router.HandleFunc("/terrain/{z}/{x}/{y}", tileHeightMapHandler)
	router.PathPrefix("/").Handler(http.FileServer(http.Dir("static")))
	log.Fatal(http.ListenAndServe(":3333", router))
}

// parseTileCoords extracts the tile coordinates and zoom level from the
// request path.
func parseTileCoords(req *http.Request) (x, y, z int, err error) {
	vars := mux.Vars(req)
	x, err = strconv.Atoi(vars["x"])
	if err != nil {
		return
	}
	y, err = strconv.Atoi(vars["y"])
	if err != nil {
		return
	}
	z, err = strconv.Atoi(vars["z"])
	if err != nil {
		return
	}
	return
}

func tileHandler(res http.ResponseWriter, req *http.Request) {
	// Get the url parameter 'd'.
	d := req.URL.Query().Get("d")
	if d == "" {
		d = "0"
	}
	displayMode, err := strconv.Atoi(d)
	if err != nil {
		http.Error(res, err.Error(), http.StatusBadRequest)
		return
	}

	// Get the tile coordinates and zoom level.
	tileX, tileY, tileZ, err := parseTileCoords(req)
	if err != nil {
		http.Error(res, err.Error(), http.StatusBadRequest)
		return
	}

	// Get the tile image.
	img := noisemap.GetTile(tileX, tileY, tileZ, displayMode)
	writeImage(res, &img)
}

// writeImage writes the image to the response writer.
func writeImage(w http.ResponseWriter, img *image.Image) {
	buffer := new(bytes.Buffer)
	if err := png.Encode(buffer, *img); err != nil {
		log.Println("unable to encode image.")
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(buffer.Bytes())))
	if _, err := w.Write(buffer.Bytes()); err != nil {
		log.Println("unable to write image.")
	}
}

func tileHeightMapHandler(res http.ResponseWriter, req *http.Request) {
	// Get the tile coordinates and zoom level.
	tileX, tileY, tileZ, err := parseTileCoords(req)
	if err != nil {
		http.Error(res, err.Error(), http.StatusBadRequest)
		return
	}

	// Get the raw samples for the tile.
	dat := noisemap.GetHeightMapTile(tileX, tileY, tileZ)

	// GZIP the data.
	var b bytes.Buffer
	w := gzip.NewWriter(&b)
	if _, err := w.Write(dat); err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := w.Close(); err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}

	// Set the headers and write the data.
	data := b.Bytes()
	res.Header().Set("Content-Type", "application/octet-stream")
	res.Header().Set("Content-Encoding", "gzip")
	res.Header().Set("Content-Length", strconv.Itoa(len(data)))
	res.Header().Set("Access-Control-Allow-Origin", "*")
	res.Header().Set("Access-Control-Allow-Headers", "Origin, X-Requested-With, Content-Type, Accept")
	res.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	res.Write(data)
}
