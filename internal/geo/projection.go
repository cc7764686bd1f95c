package geo

import (
	"fmt"
	"math"

	"github.com/OCAP2/polysymbol/pkg/core"
	"github.com/wroge/wgs84"
)

const (
	// DefaultTileSize is the pixel width of one tile at zoom 0.
	DefaultTileSize = 256

	earthRadius = 6378137.0
	// MaxLatitude is the northern limit of the square Web Mercator world.
	MaxLatitude = 85.0511287798066
)

var (
	toMercator   = wgs84.EPSG().Transform(4326, 3857)
	fromMercator = wgs84.EPSG().Transform(3857, 4326)
)

// ProjectionError is returned when a coordinate cannot be moved between
// geographic and pixel space.
type ProjectionError struct {
	Op     string // "project" or "unproject"
	X, Y   float64
	Reason string
}

func (e *ProjectionError) Error() string {
	return fmt.Sprintf("%s (%f, %f): %s", e.Op, e.X, e.Y, e.Reason)
}

// WebMercator projects WGS84 longitude/latitude into the pixel space of a
// slippy map at a given zoom level. The 3857 conversion goes through wgs84;
// the result is scaled to a TileSize*2^Zoom square with Y growing downward.
type WebMercator struct {
	Zoom     float64
	TileSize float64
}

// NewWebMercator returns a WebMercator projection at zoom with the default tile size.
func NewWebMercator(zoom float64) WebMercator {
	return WebMercator{Zoom: zoom, TileSize: DefaultTileSize}
}

func (m WebMercator) worldSize() float64 {
	tile := m.TileSize
	if tile <= 0 {
		tile = DefaultTileSize
	}
	return tile * math.Exp2(m.Zoom)
}

// Project converts a longitude/latitude pair to pixel coordinates.
func (m WebMercator) Project(pos core.Position2D) (core.PixelPoint, error) {
	if !pos.IsFinite() {
		return core.PixelPoint{}, &ProjectionError{Op: "project", X: pos.X, Y: pos.Y, Reason: "non-finite coordinate"}
	}
	if math.Abs(pos.Y) > MaxLatitude {
		return core.PixelPoint{}, &ProjectionError{Op: "project", X: pos.X, Y: pos.Y, Reason: "latitude outside web mercator bounds"}
	}
	size := m.worldSize()
	if !isFinite(size) || size <= 0 {
		return core.PixelPoint{}, &ProjectionError{Op: "project", X: pos.X, Y: pos.Y, Reason: fmt.Sprintf("invalid zoom %v", m.Zoom)}
	}

	x, y, _ := toMercator(pos.X, pos.Y, 0)
	half := math.Pi * earthRadius
	return core.PixelPoint{
		X: (x + half) / (2 * half) * size,
		Y: (half - y) / (2 * half) * size,
	}, nil
}

// Unproject converts pixel coordinates back to longitude/latitude.
func (m WebMercator) Unproject(p core.PixelPoint) (core.Position2D, error) {
	if !isFinite(p.X) || !isFinite(p.Y) {
		return core.Position2D{}, &ProjectionError{Op: "unproject", X: p.X, Y: p.Y, Reason: "non-finite pixel"}
	}
	size := m.worldSize()
	if !isFinite(size) || size <= 0 {
		return core.Position2D{}, &ProjectionError{Op: "unproject", X: p.X, Y: p.Y, Reason: fmt.Sprintf("invalid zoom %v", m.Zoom)}
	}

	half := math.Pi * earthRadius
	x := p.X/size*2*half - half
	y := half - p.Y/size*2*half
	long, lat, _ := fromMercator(x, y, 0)
	return core.Position2D{X: long, Y: lat}, nil
}

// Planar projects flat world coordinates (metres on a game map) by a fixed
// scale, flipping Y so north is up on screen. Zoom is expressed through
// PixelsPerUnit; a zero value means one pixel per unit.
type Planar struct {
	PixelsPerUnit float64
}

func (p Planar) scale() float64 {
	if p.PixelsPerUnit == 0 {
		return 1
	}
	return p.PixelsPerUnit
}

// Project converts a world position to pixel coordinates.
func (p Planar) Project(pos core.Position2D) (core.PixelPoint, error) {
	k := p.scale()
	if !pos.IsFinite() || !isFinite(k) {
		return core.PixelPoint{}, &ProjectionError{Op: "project", X: pos.X, Y: pos.Y, Reason: "non-finite coordinate"}
	}
	return core.PixelPoint{X: pos.X * k, Y: -pos.Y * k}, nil
}

// Unproject converts pixel coordinates back to a world position.
func (p Planar) Unproject(px core.PixelPoint) (core.Position2D, error) {
	k := p.scale()
	if !isFinite(px.X) || !isFinite(px.Y) || !isFinite(k) {
		return core.Position2D{}, &ProjectionError{Op: "unproject", X: px.X, Y: px.Y, Reason: "non-finite pixel"}
	}
	return core.Position2D{X: px.X / k, Y: -px.Y / k}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
