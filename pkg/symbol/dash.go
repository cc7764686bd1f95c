package symbol

import (
	"math"

	"github.com/OCAP2/polysymbol/pkg/core"
)

// Dash draws a short segment centred on the direction point and aligned
// with its heading, or a dot when PixelSize <= 1.
type Dash struct {
	opts DashOptions
}

// NewDash returns a Dash factory using opts as given.
func NewDash(opts DashOptions) *Dash {
	return &Dash{opts: opts}
}

// Options returns a copy of the factory's options.
func (d *Dash) Options() DashOptions {
	return d.opts
}

// With returns a new Dash whose options are overrides merged over d's.
func (d *Dash) With(overrides map[string]any) (*Dash, error) {
	opts := d.opts
	if err := mergeOptions(&opts, overrides); err != nil {
		return nil, err
	}
	return NewDash(opts), nil
}

// ZoomDependent is always true: the dash length is fixed in pixels.
func (*Dash) ZoomDependent() bool { return true }

// BuildSymbol returns a KindSegment shape.
func (d *Dash) BuildSymbol(point *core.DirectionPoint, proj Projection, index, total int) (Shape, error) {
	if err := validate(point); err != nil {
		return Shape{}, err
	}

	size := d.opts.PixelSize
	// a dot needs no projection work
	if !(size > 1) || !isFinite(size) || !isFinite(point.Heading) {
		return segmentShape(d.opts.PathStyle, point.Location, point.Location)
	}
	if err := requireProjection(proj); err != nil {
		return Shape{}, err
	}

	center, err := proj.Project(point.Location)
	if err != nil {
		return Shape{}, err
	}
	angle := ToScreenAngle(point.Heading)
	a := core.PixelPoint{
		X: center.X + size*math.Cos(angle+math.Pi)/2,
		Y: center.Y + size*math.Sin(angle)/2,
	}
	// opposite end by central symmetry
	b := Reflect(center, a)

	geoA, err := proj.Unproject(a)
	if err != nil {
		return Shape{}, err
	}
	geoB, err := proj.Unproject(b)
	if err != nil {
		return Shape{}, err
	}
	return segmentShape(d.opts.PathStyle, geoA, geoB)
}
