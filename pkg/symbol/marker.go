package symbol

import (
	"strconv"

	"github.com/OCAP2/polysymbol/pkg/core"
)

// Marker places a point marker on the direction point. Heading is ignored.
type Marker struct {
	opts MarkerOptions
}

// NewMarker returns a Marker factory using opts as given.
func NewMarker(opts MarkerOptions) *Marker {
	return &Marker{opts: opts}
}

// Options returns a copy of the factory's options.
func (m *Marker) Options() MarkerOptions {
	return m.opts
}

// With returns a new Marker whose options are overrides merged over m's.
func (m *Marker) With(overrides map[string]any) (*Marker, error) {
	opts := m.opts
	if err := mergeOptions(&opts, overrides); err != nil {
		return nil, err
	}
	return NewMarker(opts), nil
}

// ZoomDependent is always false: the only anchor is the location itself.
func (*Marker) ZoomDependent() bool { return false }

// BuildSymbol returns a KindMarker shape with the default icon. The
// projection is not used and may be nil.
func (m *Marker) BuildSymbol(point *core.DirectionPoint, proj Projection, index, total int) (Shape, error) {
	if err := validate(point); err != nil {
		return Shape{}, err
	}
	return markerShape(m.opts.MarkerStyle, point.Location)
}

// Number is a Marker whose icon shows the point's sequence index as text.
type Number struct {
	marker    *Marker
	className string
}

// NewNumber returns a Number factory using opts as given.
func NewNumber(opts NumberOptions) *Number {
	return &Number{
		marker:    NewMarker(opts.MarkerOptions),
		className: opts.ClassName,
	}
}

// Options returns a copy of the factory's options.
func (n *Number) Options() NumberOptions {
	return NumberOptions{MarkerOptions: n.marker.Options(), ClassName: n.className}
}

// With returns a new Number whose options are overrides merged over n's.
func (n *Number) With(overrides map[string]any) (*Number, error) {
	opts := n.Options()
	if err := mergeOptions(&opts, overrides); err != nil {
		return nil, err
	}
	return NewNumber(opts), nil
}

// ZoomDependent is always false.
func (*Number) ZoomDependent() bool { return false }

// BuildSymbol places the marker exactly as Marker does, then swaps its icon
// for one whose text is index. total does not affect the result.
func (n *Number) BuildSymbol(point *core.DirectionPoint, proj Projection, index, total int) (Shape, error) {
	shape, err := n.marker.BuildSymbol(point, proj, index, total)
	if err != nil {
		return Shape{}, err
	}
	shape.Icon = &Icon{Text: strconv.Itoa(index), ClassName: n.className}
	return shape, nil
}
