package symbol

import (
	"fmt"

	"github.com/OCAP2/polysymbol/pkg/core"
	geom "github.com/peterstace/simplefeatures/geom"
)

// Kind tags the drawable type of a Shape.
type Kind int

const (
	// KindSegment is a two-point line; both points are equal for a dot.
	KindSegment Kind = iota
	// KindPolyline is an open path, the two-sided arrowhead chevron.
	KindPolyline
	// KindPolygon is a closed, fillable ring.
	KindPolygon
	// KindMarker is a point marker with an optional icon.
	KindMarker
)

func (k Kind) String() string {
	switch k {
	case KindSegment:
		return "segment"
	case KindPolyline:
		return "polyline"
	case KindPolygon:
		return "polygon"
	case KindMarker:
		return "marker"
	default:
		return "unknown"
	}
}

// Icon replaces a marker's default icon with text content.
type Icon struct {
	Text      string `json:"text"`
	ClassName string `json:"className,omitempty"`
}

// Shape is the output of a Factory: geometry in geographic coordinates plus
// the style to render it with. Path is set for segments, polylines and
// polygons; Marker and Icon for markers. A nil Icon means the default icon.
type Shape struct {
	Kind     Kind
	Geometry geom.Geometry
	Path     PathStyle
	Marker   MarkerStyle
	Icon     *Icon
}

// Positions returns the vertices of the shape's geometry in order. Polygon
// rings include the closing vertex.
func (s Shape) Positions() []core.Position2D {
	switch s.Geometry.Type() {
	case geom.TypePoint:
		xy, ok := s.Geometry.MustAsPoint().XY()
		if !ok {
			return nil
		}
		return []core.Position2D{{X: xy.X, Y: xy.Y}}
	case geom.TypeLineString:
		return fromSequence(s.Geometry.MustAsLineString().Coordinates())
	case geom.TypePolygon:
		return fromSequence(s.Geometry.MustAsPolygon().ExteriorRing().Coordinates())
	default:
		return nil
	}
}

func fromSequence(seq geom.Sequence) []core.Position2D {
	out := make([]core.Position2D, seq.Length())
	for i := range out {
		xy := seq.GetXY(i)
		out[i] = core.Position2D{X: xy.X, Y: xy.Y}
	}
	return out
}

func toSequence(positions []core.Position2D) geom.Sequence {
	flat := make([]float64, 0, len(positions)*2)
	for _, p := range positions {
		flat = append(flat, p.X, p.Y)
	}
	return geom.NewSequence(flat, geom.DimXY)
}

// Degenerate shapes (a dot, a zero-width wedge) are valid output, so the
// constructors skip geometry validation.

func segmentShape(style PathStyle, a, b core.Position2D) (Shape, error) {
	ls, err := geom.NewLineString(toSequence([]core.Position2D{a, b}), geom.DisableAllValidations)
	if err != nil {
		return Shape{}, fmt.Errorf("error creating segment: %w", err)
	}
	return Shape{Kind: KindSegment, Geometry: ls.AsGeometry(), Path: style}, nil
}

func polylineShape(style PathStyle, path []core.Position2D) (Shape, error) {
	ls, err := geom.NewLineString(toSequence(path), geom.DisableAllValidations)
	if err != nil {
		return Shape{}, fmt.Errorf("error creating polyline: %w", err)
	}
	return Shape{Kind: KindPolyline, Geometry: ls.AsGeometry(), Path: style}, nil
}

func polygonShape(style PathStyle, path []core.Position2D) (Shape, error) {
	ring := make([]core.Position2D, 0, len(path)+1)
	ring = append(ring, path...)
	ring = append(ring, path[0])
	ls, err := geom.NewLineString(toSequence(ring), geom.DisableAllValidations)
	if err != nil {
		return Shape{}, fmt.Errorf("error creating polygon ring: %w", err)
	}
	poly, err := geom.NewPolygon([]geom.LineString{ls}, geom.DisableAllValidations)
	if err != nil {
		return Shape{}, fmt.Errorf("error creating polygon: %w", err)
	}
	return Shape{Kind: KindPolygon, Geometry: poly.AsGeometry(), Path: style}, nil
}

func markerShape(style MarkerStyle, at core.Position2D) (Shape, error) {
	pt, err := geom.NewPoint(geom.Coordinates{
		XY:   geom.XY{X: at.X, Y: at.Y},
		Type: geom.DimXY,
	}, geom.DisableAllValidations)
	if err != nil {
		return Shape{}, fmt.Errorf("error creating marker point: %w", err)
	}
	return Shape{Kind: KindMarker, Geometry: pt.AsGeometry(), Marker: style}, nil
}
