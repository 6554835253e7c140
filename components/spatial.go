package components

import (
	"math"

	"github.com/pthm-cable/robotarena/geom"
)

// Position represents an item's centre in arena coordinates.
type Position struct {
	X, Y float64
}

// Heading is a direction in degrees, 0 pointing along +x and 90 along +y.
type Heading struct {
	Degrees float64
}

// NormalizeDegrees wraps d into [0, 360).
func NormalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	if d >= 360 {
		d = 0
	}
	return d
}

// Turn rotates the heading by delta degrees and wraps the result.
func (h *Heading) Turn(delta float64) {
	h.Degrees = NormalizeDegrees(h.Degrees + delta)
}

// Dir returns the unit direction vector.
func (h Heading) Dir() (float64, float64) {
	rad := h.Degrees * math.Pi / 180
	return math.Cos(rad), math.Sin(rad)
}

// Whiskers holds the two forward-diagonal sensor segments.
type Whiskers struct {
	Left, Right geom.Segment
}
