// Package symbol builds the shapes used to decorate a path with directional
// markers. Each Factory turns one direction point into a Shape expressed in
// the same geographic space as its input; pixel-space work goes through the
// caller's Projection and never leaks out.
//
// Factories are immutable after construction and safe for concurrent use.
package symbol

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/OCAP2/polysymbol/pkg/core"
)

var (
	// ErrInvalidInput is returned for a nil direction point, a non-finite
	// location, or a missing projection when one is required.
	ErrInvalidInput = errors.New("invalid symbol input")

	// ErrUnknownKind is returned by New for an unregistered factory kind.
	ErrUnknownKind = errors.New("unknown symbol kind")
)

// Projection converts between geographic and pixel coordinates for the zoom
// level in effect at call time. Errors are returned to the caller unchanged.
//
// Factories treat only the untyped nil interface as a missing projection. A
// nil pointer stored in a Projection is called like any other value.
type Projection interface {
	Project(pos core.Position2D) (core.PixelPoint, error)
	Unproject(p core.PixelPoint) (core.Position2D, error)
}

// Factory builds one Shape per direction point.
type Factory interface {
	// ZoomDependent reports whether shapes must be rebuilt after a zoom
	// change. It is fixed per factory kind.
	ZoomDependent() bool
	// BuildSymbol builds the shape for point, the index-th of total points.
	BuildSymbol(point *core.DirectionPoint, proj Projection, index, total int) (Shape, error)
}

// Factory kind names accepted by New.
const (
	KindNameDash      = "dash"
	KindNameArrowHead = "arrowHead"
	KindNameMarker    = "marker"
	KindNameNumber    = "number"
)

type constructor func(raw map[string]any) (Factory, error)

var registry = map[string]constructor{
	strings.ToLower(KindNameDash): func(raw map[string]any) (Factory, error) {
		opts, err := DecodeDashOptions(raw)
		if err != nil {
			return nil, err
		}
		return NewDash(opts), nil
	},
	strings.ToLower(KindNameArrowHead): func(raw map[string]any) (Factory, error) {
		opts, err := DecodeArrowHeadOptions(raw)
		if err != nil {
			return nil, err
		}
		return NewArrowHead(opts), nil
	},
	strings.ToLower(KindNameMarker): func(raw map[string]any) (Factory, error) {
		opts, err := DecodeMarkerOptions(raw)
		if err != nil {
			return nil, err
		}
		return NewMarker(opts), nil
	},
	strings.ToLower(KindNameNumber): func(raw map[string]any) (Factory, error) {
		opts, err := DecodeNumberOptions(raw)
		if err != nil {
			return nil, err
		}
		return NewNumber(opts), nil
	},
}

// New builds a factory of the named kind with raw merged over its defaults.
// Kind names are matched case-insensitively.
func New(kind string, raw map[string]any) (Factory, error) {
	ctor, ok := registry[strings.ToLower(kind)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return ctor(raw)
}

// Kinds returns the registered kind names in lower case, sorted.
func Kinds() []string {
	kinds := make([]string, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

func validate(point *core.DirectionPoint) error {
	if point == nil {
		return fmt.Errorf("%w: nil direction point", ErrInvalidInput)
	}
	if !point.Location.IsFinite() {
		return fmt.Errorf("%w: location (%v, %v) is not finite", ErrInvalidInput, point.Location.X, point.Location.Y)
	}
	return nil
}

// requireProjection rejects the untyped nil interface only.
func requireProjection(proj Projection) error {
	if proj == nil {
		return fmt.Errorf("%w: nil projection", ErrInvalidInput)
	}
	return nil
}
