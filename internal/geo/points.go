package geo

import (
	"encoding/json"
	"fmt"

	"github.com/OCAP2/polysymbol/pkg/core"
)

type directionPointJSON struct {
	Location []float64 `json:"location"`
	Heading  *float64  `json:"heading"`
}

// ParseDirectionPoints parses a JSON array of direction points into core values.
// Input format: `[{"location":[long,lat],"heading":deg},...]`
func ParseDirectionPoints(input []byte) ([]core.DirectionPoint, error) {
	var raw []directionPointJSON
	if err := json.Unmarshal(input, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse direction points JSON: %w", err)
	}

	points := make([]core.DirectionPoint, len(raw))
	for i, r := range raw {
		if len(r.Location) < 2 {
			return nil, fmt.Errorf("direction point %d location has insufficient values: %w", i, ErrInvalidCoordinates)
		}
		if r.Heading == nil {
			return nil, fmt.Errorf("direction point %d: %w", i, ErrMissingHeading)
		}
		points[i] = core.DirectionPoint{
			Location: core.Position2D{X: r.Location[0], Y: r.Location[1]},
			Heading:  *r.Heading,
		}
	}

	return points, nil
}
