package symbol

import (
	"math"

	"github.com/OCAP2/polysymbol/pkg/core"
)

const degToRad = math.Pi / 180

// ToScreenAngle converts a compass heading in degrees (0 = north, clockwise)
// into a radian angle for math.Cos/math.Sin in a pixel space whose Y axis
// points down. This is the only place the heading convention is resolved.
func ToScreenAngle(heading float64) float64 {
	return -(heading - 90) * degToRad
}

// Reflect returns the point q such that origin is the midpoint of p and q.
func Reflect(origin, p core.PixelPoint) core.PixelPoint {
	return origin.Mul(2).Sub(p)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
