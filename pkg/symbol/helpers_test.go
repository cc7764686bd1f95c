package symbol

import (
	"errors"
	"sync/atomic"

	"github.com/OCAP2/polysymbol/pkg/core"
)

var errOutsideDomain = errors.New("outside projection domain")

// identityProjection maps geographic X/Y straight onto pixel X/Y.
type identityProjection struct{}

func (identityProjection) Project(p core.Position2D) (core.PixelPoint, error) {
	return core.PixelPoint{X: p.X, Y: p.Y}, nil
}

func (identityProjection) Unproject(p core.PixelPoint) (core.Position2D, error) {
	return core.Position2D{X: p.X, Y: p.Y}, nil
}

// failingProjection fails every call and counts them.
type failingProjection struct {
	calls atomic.Int32
}

func (f *failingProjection) Project(core.Position2D) (core.PixelPoint, error) {
	f.calls.Add(1)
	return core.PixelPoint{}, errOutsideDomain
}

func (f *failingProjection) Unproject(core.PixelPoint) (core.Position2D, error) {
	f.calls.Add(1)
	return core.Position2D{}, errOutsideDomain
}

// unprojectFailing projects like identityProjection but cannot unproject.
type unprojectFailing struct {
	identityProjection
}

func (unprojectFailing) Unproject(core.PixelPoint) (core.Position2D, error) {
	return core.Position2D{}, errOutsideDomain
}
