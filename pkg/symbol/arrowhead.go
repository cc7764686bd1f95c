package symbol

import (
	"math"

	"github.com/OCAP2/polysymbol/pkg/core"
)

// ArrowHead draws a chevron, or a closed wedge when AsPolygon is set, whose
// tip sits on the direction point and points along its heading.
type ArrowHead struct {
	opts ArrowHeadOptions
}

// NewArrowHead returns an ArrowHead factory using opts as given.
func NewArrowHead(opts ArrowHeadOptions) *ArrowHead {
	return &ArrowHead{opts: opts}
}

// Options returns a copy of the factory's options.
func (a *ArrowHead) Options() ArrowHeadOptions {
	return a.opts
}

// With returns a new ArrowHead whose options are overrides merged over a's.
func (a *ArrowHead) With(overrides map[string]any) (*ArrowHead, error) {
	opts := a.opts
	if err := mergeOptions(&opts, overrides); err != nil {
		return nil, err
	}
	return NewArrowHead(opts), nil
}

// ZoomDependent is always true: the wing length is fixed in pixels.
func (*ArrowHead) ZoomDependent() bool { return true }

// BuildSymbol returns a KindPolygon shape when AsPolygon is set and a
// KindPolyline chevron otherwise.
func (a *ArrowHead) BuildSymbol(point *core.DirectionPoint, proj Projection, index, total int) (Shape, error) {
	path, err := a.ArrowPath(point, proj)
	if err != nil {
		return Shape{}, err
	}
	if a.opts.AsPolygon {
		return polygonShape(a.opts.PathStyle, path)
	}
	return polylineShape(a.opts.PathStyle, path)
}

// ArrowPath returns the three vertices wing1, tip, wing2. The tip is the
// input location itself, not a projection round trip of it.
func (a *ArrowHead) ArrowPath(point *core.DirectionPoint, proj Projection) ([]core.Position2D, error) {
	if err := validate(point); err != nil {
		return nil, err
	}

	size := a.opts.PixelSize
	headAngle := a.opts.HeadAngle
	if !isFinite(headAngle) {
		headAngle = 0
	}
	if size == 0 || !isFinite(size) || !isFinite(point.Heading) {
		return []core.Position2D{point.Location, point.Location, point.Location}, nil
	}
	if err := requireProjection(proj); err != nil {
		return nil, err
	}

	tip, err := proj.Project(point.Location)
	if err != nil {
		return nil, err
	}
	direction := ToScreenAngle(point.Heading)
	half := headAngle * degToRad

	wing1, err := proj.Unproject(wingPoint(tip, size, direction+half))
	if err != nil {
		return nil, err
	}
	wing2, err := proj.Unproject(wingPoint(tip, size, direction-half))
	if err != nil {
		return nil, err
	}

	return []core.Position2D{wing1, point.Location, wing2}, nil
}

// wingPoint steps size pixels back from tip along theta.
func wingPoint(tip core.PixelPoint, size, theta float64) core.PixelPoint {
	return core.PixelPoint{
		X: tip.X - size*math.Cos(theta),
		Y: tip.Y + size*math.Sin(theta),
	}
}
