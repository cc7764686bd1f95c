// Package core holds the plain data types shared between the symbol
// factories, the projections and their callers.
package core

import "math"

// Position2D is a geographic coordinate.
type Position2D struct {
	X float64 `json:"x"` // longitude, or easting on planar maps
	Y float64 `json:"y"` // latitude, or northing on planar maps
}

// IsFinite reports whether both components are finite numbers.
func (p Position2D) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// PixelPoint is a position in the map's pixel space for one zoom level.
// Y grows downward.
type PixelPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the component-wise sum of p and q.
func (p PixelPoint) Add(q PixelPoint) PixelPoint {
	return PixelPoint{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference p - q.
func (p PixelPoint) Sub(q PixelPoint) PixelPoint {
	return PixelPoint{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns p scaled by s.
func (p PixelPoint) Mul(s float64) PixelPoint {
	return PixelPoint{X: p.X * s, Y: p.Y * s}
}

// Distance returns the euclidean distance between p and q.
func (p PixelPoint) Distance(q PixelPoint) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// DirectionPoint is a location along a path paired with the heading of the
// path at that location.
type DirectionPoint struct {
	Location Position2D `json:"location"`
	// Heading is a compass bearing in degrees, clockwise from north.
	Heading float64 `json:"heading"`
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
