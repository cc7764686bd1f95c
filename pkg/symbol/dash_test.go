package symbol

import (
	"errors"
	"math"
	"testing"

	"github.com/OCAP2/polysymbol/internal/geo"
	"github.com/OCAP2/polysymbol/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDash_ZoomDependent(t *testing.T) {
	assert.True(t, NewDash(DefaultDashOptions()).ZoomDependent())
	assert.True(t, NewDash(DashOptions{PixelSize: 0}).ZoomDependent())
}

func TestDash_DotDegeneracy(t *testing.T) {
	loc := core.Position2D{X: 13.405, Y: 52.52}
	sizes := []float64{1, 0.5, 0, -3, math.NaN(), math.Inf(1)}
	headings := []float64{0, 45, 180, 359.9}

	for _, size := range sizes {
		for _, heading := range headings {
			proj := &failingProjection{}
			opts := DefaultDashOptions()
			opts.PixelSize = size

			shape, err := NewDash(opts).BuildSymbol(&core.DirectionPoint{Location: loc, Heading: heading}, proj, 0, 1)

			require.NoError(t, err, "size %v heading %v", size, heading)
			assert.Equal(t, KindSegment, shape.Kind)
			assert.Equal(t, []core.Position2D{loc, loc}, shape.Positions())
			assert.Zero(t, proj.calls.Load(), "dot must not touch the projection")
		}
	}
}

func TestDash_NonFiniteHeadingIsDot(t *testing.T) {
	loc := core.Position2D{X: 1, Y: 2}

	shape, err := NewDash(DefaultDashOptions()).BuildSymbol(&core.DirectionPoint{Location: loc, Heading: math.NaN()}, identityProjection{}, 0, 1)

	require.NoError(t, err)
	assert.Equal(t, []core.Position2D{loc, loc}, shape.Positions())
}

func TestDash_HeadingNorth(t *testing.T) {
	point := &core.DirectionPoint{Location: core.Position2D{X: 100, Y: 100}, Heading: 0}

	shape, err := NewDash(DefaultDashOptions()).BuildSymbol(point, identityProjection{}, 0, 1)

	require.NoError(t, err)
	pos := shape.Positions()
	require.Len(t, pos, 2)
	assert.InDelta(t, 100, pos[0].X, 1e-9)
	assert.InDelta(t, 105, pos[0].Y, 1e-9)
	assert.InDelta(t, 100, pos[1].X, 1e-9)
	assert.InDelta(t, 95, pos[1].Y, 1e-9)
}

func TestDash_HeadingEast(t *testing.T) {
	point := &core.DirectionPoint{Location: core.Position2D{X: 100, Y: 100}, Heading: 90}

	shape, err := NewDash(DefaultDashOptions()).BuildSymbol(point, identityProjection{}, 0, 1)

	require.NoError(t, err)
	pos := shape.Positions()
	require.Len(t, pos, 2)
	assert.InDelta(t, 95, pos[0].X, 1e-9)
	assert.InDelta(t, 100, pos[0].Y, 1e-9)
	assert.InDelta(t, 105, pos[1].X, 1e-9)
	assert.InDelta(t, 100, pos[1].Y, 1e-9)
}

func TestDash_SymmetricAboutProjectedCenter(t *testing.T) {
	tests := []struct {
		name string
		proj Projection
		loc  core.Position2D
		tol  float64
	}{
		{"planar", geo.Planar{PixelsPerUnit: 0.5}, core.Position2D{X: 6069.06, Y: 5627.81}, 1e-9},
		{"web mercator", geo.NewWebMercator(2), core.Position2D{X: 13.405, Y: 52.52}, 1e-3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			center, err := tt.proj.Project(tt.loc)
			require.NoError(t, err)

			for _, size := range []float64{2, 10, 25} {
				for heading := 0.0; heading < 360; heading += 22.5 {
					opts := DefaultDashOptions()
					opts.PixelSize = size

					shape, err := NewDash(opts).BuildSymbol(&core.DirectionPoint{Location: tt.loc, Heading: heading}, tt.proj, 0, 1)
					require.NoError(t, err)

					pos := shape.Positions()
					require.Len(t, pos, 2)
					a, err := tt.proj.Project(pos[0])
					require.NoError(t, err)
					b, err := tt.proj.Project(pos[1])
					require.NoError(t, err)

					assert.InDelta(t, center.Distance(a), center.Distance(b), tt.tol)
					assert.InDelta(t, size/2, center.Distance(a), tt.tol)
					mid := a.Add(b).Mul(0.5)
					assert.InDelta(t, center.X, mid.X, tt.tol)
					assert.InDelta(t, center.Y, mid.Y, tt.tol)
				}
			}
		})
	}
}

func TestDash_Style(t *testing.T) {
	shape, err := NewDash(DefaultDashOptions()).BuildSymbol(&core.DirectionPoint{}, identityProjection{}, 0, 1)

	require.NoError(t, err)
	assert.Equal(t, 3.0, shape.Path.Weight)
	assert.Nil(t, shape.Icon)
}

func TestDash_InvalidInput(t *testing.T) {
	d := NewDash(DefaultDashOptions())

	_, err := d.BuildSymbol(nil, identityProjection{}, 0, 1)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = d.BuildSymbol(&core.DirectionPoint{Location: core.Position2D{X: math.NaN()}}, identityProjection{}, 0, 1)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = d.BuildSymbol(&core.DirectionPoint{}, nil, 0, 1)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestDash_ProjectionErrorsPassThrough(t *testing.T) {
	d := NewDash(DefaultDashOptions())
	point := &core.DirectionPoint{Location: core.Position2D{X: 1, Y: 1}, Heading: 30}

	_, err := d.BuildSymbol(point, &failingProjection{}, 0, 1)
	assert.Equal(t, errOutsideDomain, err)

	_, err = d.BuildSymbol(point, unprojectFailing{}, 0, 1)
	assert.Equal(t, errOutsideDomain, err)
}

func TestDash_ProjectionErrorTypeIsKept(t *testing.T) {
	d := NewDash(DefaultDashOptions())

	_, err := d.BuildSymbol(&core.DirectionPoint{Location: core.Position2D{X: 0, Y: 89}}, geo.NewWebMercator(3), 0, 1)

	var projErr *geo.ProjectionError
	require.True(t, errors.As(err, &projErr))
	assert.Equal(t, "project", projErr.Op)
}

func TestDash_With(t *testing.T) {
	base := NewDash(DefaultDashOptions())

	small, err := base.With(map[string]any{"pixelSize": 4, "pathStyle": map[string]any{"color": "red"}})

	require.NoError(t, err)
	assert.Equal(t, 4.0, small.Options().PixelSize)
	assert.Equal(t, "red", small.Options().PathStyle.Color)
	assert.Equal(t, 3.0, small.Options().PathStyle.Weight)
	assert.Equal(t, 10.0, base.Options().PixelSize, "original factory is unchanged")
	assert.Equal(t, "#3388ff", base.Options().PathStyle.Color)
}
