package systems

import (
	"math"

	"github.com/pthm-cable/robotarena/components"
)

// GrowthParams holds the hungry robot growth rule.
type GrowthParams struct {
	BaseRadius     int
	Growth         int
	SpeedDecrement float64
	MinSpeed       float64
	DefaultSpeed   float64
	FootprintPad   float64
}

// Resize sets a new radius, scaling the wheels by new/old and refitting the footprint.
func Resize(body *components.Body, radius int, pad float64) {
	if radius < 1 {
		radius = 1
	}
	scale := float64(radius) / float64(body.Radius)
	body.Radius = radius
	body.WheelWidth *= scale
	body.WheelHeight *= scale
	body.Refit(pad)
}

// Grow applies one meal to a hungry robot.
func Grow(body *components.Body, pos *components.Position, m *components.Motion, b Bounds, params GrowthParams) {
	Resize(body, body.Radius+params.Growth, params.FootprintPad)

	if !ValidRobotPosition(pos.X, pos.Y, *body, b) {
		pos.X, pos.Y = ClampPosition(pos.X, pos.Y, body.FootprintW, body.FootprintH, b)
	}

	m.BaseSpeed = math.Max(m.BaseSpeed-params.SpeedDecrement, params.MinSpeed)
	m.Speed = math.Max(m.Speed-params.SpeedDecrement, params.MinSpeed)
}

// GrowthSteps returns how many meals a radius represents.
func GrowthSteps(radius int, params GrowthParams) int {
	if params.Growth <= 0 || radius <= params.BaseRadius {
		return 0
	}
	return (radius - params.BaseRadius) / params.Growth
}

// RestoreGrowth sets a loaded hungry robot's size and the speed it would
// have reached through the same number of meals.
func RestoreGrowth(body *components.Body, m *components.Motion, radius int, params GrowthParams) {
	Resize(body, radius, params.FootprintPad)
	speed := params.DefaultSpeed - float64(GrowthSteps(radius, params))*params.SpeedDecrement
	speed = math.Max(speed, params.MinSpeed)
	m.BaseSpeed = speed
	m.Speed = speed
}
