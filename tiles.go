package remath

import (
	"bytes"
	"image"
	"image/color"
	"log"
	"math"

	"github.com/EntertainmentRoyal/ReMath/various"
	"github.com/Flokey82/genbiome"
	"github.com/davvo/mercator"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/mazznoer/colorgrad"
)

// Display modes for GetTile.
const (
	DisplayGray     = 0 // plain grayscale elevation
	DisplayGradient = 1 // blue-to-red elevation gradient
	DisplayBiome    = 2 // Whittaker biome colors from elevation + moisture
	DisplayShaded   = 3 // elevation gradient with hillshading
)

// GetTile returns the image of the tile at the given coordinates and zoom level.
func (m *Map) GetTile(x, y, zoom, displayMode int) image.Image {
	// Calculate the bounds of the tile.
	tbb := newTileBoundingBox(x, y, zoom)
	la1, lo1, la2, lo2 := tbb.toLatLon()

	// Sample the elevation field over the tile. Latitude is interpolated
	// linearly between the tile edges, which is close enough to the
	// mercator warp at tile granularity and keeps adjoining tiles
	// seam-free (shared edges sample identical coordinates).
	elev := m.Elevation.Heightmap(tileSize, tileSize, lo1, la1, lo2, la2)
	_, maxElev := elev.MinMax()
	if maxElev <= 0 {
		maxElev = 1
	}

	var mois *Heightmap
	if displayMode == DisplayBiome {
		mois = m.Moisture.Heightmap(tileSize, tileSize, lo1, la1, lo2, la2)
	}

	// Build the color gradient.
	var grad colorgrad.Gradient
	if displayMode == DisplayGradient || displayMode == DisplayShaded {
		grad = elevationGradient()
	}

	// Create a new image to draw the tile on.
	dest := image.NewRGBA(image.Rect(0, 0, tileSize, tileSize))

	for py := 0; py < tileSize; py++ {
		// Latitude of the pixel row (linear between tile edges).
		rowLat := la1 + (la2-la1)*(float64(py)+0.5)/tileSize
		for px := 0; px < tileSize; px++ {
			v := elev.At(px, py)

			// Map the raw field value into [0, 1]. Fractal sums are not
			// normalized, so clamp against the observed maximum.
			val := various.Clamp((v+maxElev)/(2*maxElev), 0, 1)

			switch displayMode {
			case DisplayGradient:
				dest.Set(px, py, genColor(grad.At(val), 1.0))
			case DisplayBiome:
				if v <= 0 {
					dest.Set(px, py, genBlue(val))
				} else {
					valMois := various.Clamp(mois.At(px, py), 0, 1)
					dest.Set(px, py, biomeColor(rowLat, v/maxElev, valMois, 1.0))
				}
			case DisplayShaded:
				dest.Set(px, py, genColor(grad.At(val), m.shadeIntensity(elev, px, py)))
			default:
				dest.Set(px, py, genGray(val))
			}
		}
	}

	if m.DrawLatticeGrid {
		m.drawLatticeGrid(dest, x, y, zoom, la1, lo1, la2, lo2)
	}

	return dest
}

// shadeIntensity maps the hillshade at the given cell into [0.4, 1] so
// shadowed slopes darken without going fully black.
func (m *Map) shadeIntensity(h *Heightmap, x, y int) float64 {
	return 0.4 + 0.6*h.Shade(x, y, m.ShadeZScale)
}

// elevationGradient returns a blue to red elevation gradient.
func elevationGradient() colorgrad.Gradient {
	colorGrad := colorgrad.NewGradient()
	colorGrad.Colors(
		color.RGBA{0, 0, 255, 255},
		color.RGBA{0, 255, 255, 255},
		color.RGBA{0, 255, 0, 255},
		color.RGBA{255, 255, 0, 255},
		color.RGBA{255, 0, 0, 255},
	)
	cb, err := colorGrad.Build()
	if err != nil {
		log.Fatal(err)
	}
	return cb
}

// Constants for the biome color lookup. Elevation 1.0 maps to the
// tallest mountain; temperature falls off with altitude at roughly
// 9.8 degC per 1000m.
const (
	maxAltitudeFactor   = 8849.0
	tempFalloffPerMeter = 0.0098

	minTemp          = genbiome.MinTemperatureC
	maxTemp          = genbiome.MaxTemperatureC
	rangeTemp        = maxTemp - minTemp
	maxPrecipitation = genbiome.MaxPrecipitationDM
)

// getTempFalloffFromAltitude returns the temperature falloff at a given
// altitude in meters above sea level.
func getTempFalloffFromAltitude(height float64) float64 {
	if height < 0 {
		return 0.0
	}
	return tempFalloffPerMeter * height
}

// getMeanAnnualTemp returns the temperature at a given latitude within
// the range the Whittaker biomes are defined for, assuming light hits
// the globe at a 90 degree angle with respect to the planetary axis.
func getMeanAnnualTemp(lat float64) float64 {
	return math.Sin(degToRad(90-math.Abs(lat)))*rangeTemp + minTemp
}

// biomeColor returns the Whittaker biome color for the given latitude,
// relative elevation (0-1), and moisture (0-1).
func biomeColor(latitude, elevation, moisture, intensity float64) color.NRGBA {
	return genbiome.GetWhittakerModBiomeColor(
		int(getMeanAnnualTemp(latitude)-getTempFalloffFromAltitude(maxAltitudeFactor*elevation)),
		int(moisture*maxPrecipitation), intensity)
}

// drawLatticeGrid overlays the integer lattice of the elevation field's
// sample space on the tile, which makes grid-aligned artifacts easy to
// spot.
func (m *Map) drawLatticeGrid(dest *image.RGBA, x, y, zoom int, la1, lo1, la2, lo2 float64) {
	gc := draw2dimg.NewGraphicContext(dest)
	gc.SetStrokeColor(color.NRGBA{0, 0, 0, 128})
	gc.SetLineWidth(1)

	// Since our mercator conversion gives us absolute pixel coordinates,
	// we need to remove the offset of the tile we are rendering.
	dx, _ := latLonToPixels(la1, lo1, zoom)
	_, dy := latLonToPixels(la2, lo2, zoom)

	// The ascending lattice walks below only terminate for a positive
	// frequency.
	freq := m.Elevation.Frequency
	if freq <= 0 {
		return
	}

	// Vertical lines: integer lattice coordinates along the lon axis.
	loA, loB := math.Min(lo1, lo2), math.Max(lo1, lo2)
	for k := math.Ceil(loA*freq + m.Elevation.offX); ; k++ {
		lon := (k - m.Elevation.offX) / freq
		if lon > loB {
			break
		}
		px, _ := latLonToPixels(la1, lon, zoom)
		gc.BeginPath()
		gc.MoveTo(px-dx, 0)
		gc.LineTo(px-dx, tileSize)
		gc.Stroke()
	}

	// Horizontal lines: integer lattice coordinates along the lat axis.
	laA, laB := math.Min(la1, la2), math.Max(la1, la2)
	for k := math.Ceil(laA*freq + m.Elevation.offY); ; k++ {
		lat := (k - m.Elevation.offY) / freq
		if lat > laB {
			break
		}
		_, py := latLonToPixels(lat, lo1, zoom)
		gc.BeginPath()
		gc.MoveTo(0, py-dy)
		gc.LineTo(tileSize, py-dy)
		gc.Stroke()
	}
}

// GetHeightMapTile returns the raw elevation samples of the tile at the
// given coordinates and zoom level as little-endian float64s.
func (m *Map) GetHeightMapTile(x, y, zoom int) []byte {
	tbb := newTileBoundingBox(x, y, zoom)
	la1, lo1, la2, lo2 := tbb.toLatLon()
	h := m.Elevation.Heightmap(tileSize, tileSize, lo1, la1, lo2, la2)

	buf := new(bytes.Buffer)
	if err := various.WriteFloatSlice(buf, h.Values); err != nil {
		log.Println("unable to encode heightmap tile:", err)
		return nil
	}
	return buf.Bytes()
}

const tileSize = 256

func latLonToPixels(lat, lon float64, zoom int) (float64, float64) {
	return mercator.LatLonToPixels(-1*lat, lon, zoom)
}

// tileBoundingBox represents a bounding box in pixels for a tile.
type tileBoundingBox struct {
	x1, y1 float64
	x2, y2 float64
	zoom   int
	*merc
}

// toLatLon returns the lat lon coordinates of the north-west and
// south-east corners of the bounding box.
func (t *tileBoundingBox) toLatLon() (lat1, lon1, lat2, lon2 float64) {
	lat1, lon1 = t.PixelsToLatLon(t.x1, t.y1, t.zoom)
	lat2, lon2 = t.PixelsToLatLon(t.x2, t.y2, t.zoom)
	return
}

// newTileBoundingBox returns a new tile bounding box for the given tile
// coordinates and zoom level.
func newTileBoundingBox(tx, ty, zoom int) tileBoundingBox {
	return tileBoundingBox{
		x1:   float64(tx * tileSize),
		y1:   float64(ty * tileSize),
		x2:   float64((tx + 1) * tileSize),
		y2:   float64((ty + 1) * tileSize),
		zoom: zoom,
		merc: merc256,
	}
}

var merc256 = newMerc(tileSize)

type merc struct {
	tileSize          float64
	initialResolution float64
	originShift       float64
}

func newMerc(tileSize float64) *merc {
	return &merc{
		tileSize:          tileSize,
		initialResolution: 2 * math.Pi * 6378137 / tileSize,
		originShift:       2 * math.Pi * 6378137 / 2,
	}
}

// Resolution calculates the resolution (meters/pixel) for given zoom
// level (measured at Equator).
func (m *merc) Resolution(zoom int) float64 {
	return m.initialResolution / math.Pow(2, float64(zoom))
}

// PixelsToMeters converts pixel coordinates in given zoom level of
// pyramid to EPSG:900913.
func (m *merc) PixelsToMeters(px, py float64, zoom int) (float64, float64) {
	res := m.Resolution(zoom)
	x := px*res - m.originShift
	y := py*res - m.originShift
	return x, y
}

// PixelsToLatLon converts pixel coordinates in given zoom level to
// lat/lon in WGS84 Datum.
func (m *merc) PixelsToLatLon(px, py float64, zoom int) (float64, float64) {
	x, y := m.PixelsToMeters(px, py, zoom)
	return m.MetersToLatLon(x, y)
}

// MetersToLatLon converts XY point from Spherical Mercator EPSG:900913
// to lat/lon in WGS84 Datum.
func (m *merc) MetersToLatLon(x, y float64) (float64, float64) {
	lon := (x / m.originShift) * 180
	lat := (y / m.originShift) * 180
	lat = 180 / math.Pi * (2*math.Atan(math.Exp(lat*math.Pi/180)) - math.Pi/2)
	return lat, lon
}
