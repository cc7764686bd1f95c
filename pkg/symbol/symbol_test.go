package symbol

import (
	"errors"
	"testing"

	"github.com/OCAP2/polysymbol/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_AllKinds(t *testing.T) {
	tests := []struct {
		kind          string
		zoomDependent bool
		want          Kind
	}{
		{KindNameDash, true, KindSegment},
		{KindNameArrowHead, true, KindPolyline},
		{KindNameMarker, false, KindMarker},
		{KindNameNumber, false, KindMarker},
		{"ARROWHEAD", true, KindPolyline},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			f, err := New(tt.kind, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.zoomDependent, f.ZoomDependent())

			shape, err := f.BuildSymbol(&core.DirectionPoint{Location: core.Position2D{X: 5, Y: 5}, Heading: 45}, identityProjection{}, 1, 1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, shape.Kind)
		})
	}
}

func TestNew_ZoomFlagIgnoresOptions(t *testing.T) {
	configs := []map[string]any{
		nil,
		{"pixelSize": 0},
		{"pixelSize": 100, "asPolygon": true, "headAngle": 0},
		{"markerStyle": map[string]any{"draggable": true}},
	}
	want := map[string]bool{
		KindNameDash:      true,
		KindNameArrowHead: true,
		KindNameMarker:    false,
		KindNameNumber:    false,
	}

	for kind, zoomDependent := range want {
		for _, raw := range configs {
			f, err := New(kind, raw)
			require.NoError(t, err)
			assert.Equal(t, zoomDependent, f.ZoomDependent(), "%s with %v", kind, raw)
		}
	}
}

func TestNew_AppliesOptions(t *testing.T) {
	f, err := New(KindNameArrowHead, map[string]any{"asPolygon": true})
	require.NoError(t, err)

	shape, err := f.BuildSymbol(&core.DirectionPoint{Heading: 45}, identityProjection{}, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, KindPolygon, shape.Kind)
}

func TestNew_UnknownKind(t *testing.T) {
	_, err := New("triangle", nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownKind))
	assert.Contains(t, err.Error(), `"triangle"`)
}

func TestNew_BadOptions(t *testing.T) {
	_, err := New(KindNameDash, map[string]any{"pixelSize": map[string]any{"value": 1}})
	require.Error(t, err)
}

func TestKinds(t *testing.T) {
	assert.Equal(t, []string{"arrowhead", "dash", "marker", "number"}, Kinds())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "segment", KindSegment.String())
	assert.Equal(t, "polyline", KindPolyline.String())
	assert.Equal(t, "polygon", KindPolygon.String())
	assert.Equal(t, "marker", KindMarker.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestShape_GeometryText(t *testing.T) {
	opts := DefaultDashOptions()
	opts.PixelSize = 0

	shape, err := NewDash(opts).BuildSymbol(&core.DirectionPoint{Location: core.Position2D{X: 1, Y: 2}}, nil, 0, 1)

	require.NoError(t, err)
	assert.Equal(t, "LINESTRING(1 2,1 2)", shape.Geometry.AsText())
}

func TestShape_DegenerateGeometryText(t *testing.T) {
	collapsed := DefaultArrowHeadOptions()
	collapsed.AsPolygon = true
	collapsed.PixelSize = 0

	zeroWidth := DefaultArrowHeadOptions()
	zeroWidth.AsPolygon = true
	zeroWidth.HeadAngle = 0

	dot := DefaultDashOptions()
	dot.PixelSize = 1

	tests := []struct {
		name    string
		factory Factory
		point   core.DirectionPoint
		want    string
	}{
		{"dash dot", NewDash(dot), core.DirectionPoint{Location: core.Position2D{X: 3, Y: 4}, Heading: 45}, "LINESTRING(3 4,3 4)"},
		{"collapsed wedge", NewArrowHead(collapsed), core.DirectionPoint{Heading: 90}, "POLYGON((0 0,0 0,0 0,0 0))"},
		{"zero width wedge", NewArrowHead(zeroWidth), core.DirectionPoint{Heading: 90}, "POLYGON((-10 0,0 0,-10 0,-10 0))"},
		{"marker", NewMarker(DefaultMarkerOptions()), core.DirectionPoint{Location: core.Position2D{X: 1, Y: 2}}, "POINT(1 2)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape, err := tt.factory.BuildSymbol(&tt.point, identityProjection{}, 1, 1)

			require.NoError(t, err)
			assert.Equal(t, tt.want, shape.Geometry.AsText())
		})
	}
}
