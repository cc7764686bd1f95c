package geo

import (
	"errors"
	"strconv"
	"strings"

	"github.com/OCAP2/polysymbol/pkg/core"
)

// ErrInvalidCoordinates is returned when the coordinates are invalid
var ErrInvalidCoordinates = errors.New("invalid coordinates provided")

// ErrMissingHeading is returned when a direction point carries no heading
var ErrMissingHeading = errors.New("direction point has no heading")

// Position2DFromString parses a string in the format "long,lat" into a core.Position2D.
// Components beyond the second are ignored.
func Position2DFromString(coords string) (core.Position2D, error) {
	coordsSplit := strings.Split(strings.TrimSpace(coords), ",")
	if len(coordsSplit) < 2 {
		return core.Position2D{}, ErrInvalidCoordinates
	}
	long, err := strconv.ParseFloat(strings.TrimSpace(coordsSplit[0]), 64)
	if err != nil {
		return core.Position2D{}, ErrInvalidCoordinates
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(coordsSplit[1]), 64)
	if err != nil {
		return core.Position2D{}, ErrInvalidCoordinates
	}
	pos := core.Position2D{X: long, Y: lat}
	if !pos.IsFinite() {
		return core.Position2D{}, ErrInvalidCoordinates
	}
	return pos, nil
}
