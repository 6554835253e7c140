package components

// Body holds the physical extent of an item.
type Body struct {
	Radius      int
	WheelWidth  float64
	WheelHeight float64
	FootprintW  float64 // Half-width of the bounding box used for validity checks
	FootprintH  float64 // Half-height of the bounding box
}

// NewBody returns a body with the footprint derived from the radius and wheels.
func NewBody(radius int, wheelW, wheelH, pad float64) Body {
	b := Body{Radius: radius, WheelWidth: wheelW, WheelHeight: wheelH}
	b.Refit(pad)
	return b
}

// Refit recomputes the footprint after a radius or wheel change.
func (b *Body) Refit(pad float64) {
	r := float64(b.Radius)
	b.FootprintW = r + b.WheelHeight + pad
	b.FootprintH = r + pad
}

// Motion holds the kinematic state of a robot or bullet.
type Motion struct {
	Speed           float64
	BaseSpeed       float64 // Speed restored when a party ends
	CollideCooldown int     // Ticks during which collisions do not turn the robot
}
