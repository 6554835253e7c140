// Package systems contains the per-item rules of the arena: movement,
// validity, status effects and growth.
package systems

import (
	"math"

	"github.com/pthm-cable/robotarena/components"
	"github.com/pthm-cable/robotarena/geom"
)

// Bounds represents the arena bounds. Origin is top-left.
type Bounds struct {
	Width, Height float64
}

// Border returns the four edge segments of the bounds.
func (b Bounds) Border() [4]geom.Segment {
	return geom.Border(b.Width, b.Height)
}

// Outcome reports what an update rule did this tick.
type Outcome uint8

const (
	Moved Outcome = iota
	WallTurn
	CollisionTurn
	Destroyed
	Idle
)

// ValidFunc reports whether an item may occupy (x, y).
type ValidFunc func(x, y float64) bool

// ValidRobotPosition checks the robot's footprint box against the bounds.
func ValidRobotPosition(x, y float64, body components.Body, b Bounds) bool {
	return x-body.FootprintW >= 0 && x+body.FootprintW <= b.Width &&
		y-body.FootprintH >= 0 && y+body.FootprintH <= b.Height
}

// ValidCirclePosition checks a plain circle against the bounds.
func ValidCirclePosition(x, y float64, radius int, b Bounds) bool {
	r := float64(radius)
	return x-r >= 0 && x+r <= b.Width && y-r >= 0 && y+r <= b.Height
}

// WhichDirection decides the wall-turn direction for a robot heading from cur
// to (nx, ny). True means turn left (-90 degrees).
func WhichDirection(cur components.Position, nx, ny float64, body components.Body, b Bounds) bool {
	dx, dy := nx-cur.X, ny-cur.Y
	if nx-body.FootprintW <= 0 || nx+body.FootprintW >= b.Width {
		return slopeNegative(dx, dy)
	}
	if ny-body.FootprintH <= 0 || ny+body.FootprintH >= b.Height {
		return slopeNonNegative(dx, dy)
	}
	return true
}

// slopeNegative reports dy/dx < 0 without dividing. A vertical step counts as
// negative only when heading up, matching -Inf.
func slopeNegative(dx, dy float64) bool {
	if dx == 0 {
		return dy < 0
	}
	return (dx < 0) != (dy < 0) && dy != 0
}

// slopeNonNegative reports dy/dx >= 0. A zero step has no slope.
func slopeNonNegative(dx, dy float64) bool {
	if dx == 0 {
		return dy > 0
	}
	return dy == 0 || (dx < 0) == (dy < 0)
}

// UpdateRobot applies the autonomous robot rule for one tick.
func UpdateRobot(pos *components.Position, h *components.Heading, m *components.Motion,
	body components.Body, collided bool, valid ValidFunc, b Bounds, cooldownPeriod int) Outcome {

	if m.CollideCooldown > 0 {
		m.CollideCooldown--
	}

	dx, dy := h.Dir()
	nx := pos.X + dx*m.Speed
	ny := pos.Y + dy*m.Speed
	ok := valid(nx, ny)

	// The cooldown lets a robot drive out of an overlap, but never through a wall.
	switch {
	case ok && (!collided || m.CollideCooldown > 0):
		pos.X, pos.Y = nx, ny
		return Moved
	case !ok:
		if WhichDirection(*pos, nx, ny, body, b) {
			h.Turn(-90)
		} else {
			h.Turn(90)
		}
		return WallTurn
	default:
		h.Turn(90)
		m.CollideCooldown = cooldownPeriod
		return CollisionTurn
	}
}

// UpdateBullet moves a bullet in a straight line. Leaving the arena or
// hitting anything marks it destroyed.
func UpdateBullet(pos *components.Position, h components.Heading, m components.Motion,
	p *components.Projectile, radius int, collided bool, b Bounds) Outcome {

	dx, dy := h.Dir()
	nx := pos.X + dx*m.Speed
	ny := pos.Y + dy*m.Speed
	if collided || !ValidCirclePosition(nx, ny, radius, b) {
		p.Destroyed = true
		return Destroyed
	}
	pos.X, pos.Y = nx, ny
	return Moved
}

// ComputeWhiskers returns the two forward-diagonal sensors for a robot at pos.
// Each starts at the front of the body offset sideways by the radius and
// points 45 degrees outward.
func ComputeWhiskers(pos components.Position, h components.Heading, radius int, length float64) components.Whiskers {
	r := float64(radius)
	fx, fy := h.Dir()
	frontX, frontY := pos.X+r*fx, pos.Y+r*fy

	side := func(offset float64) geom.Segment {
		sx, sy := components.Heading{Degrees: h.Degrees + offset*2}.Dir()
		ex, ey := components.Heading{Degrees: h.Degrees + offset}.Dir()
		x1, y1 := frontX+r*sx, frontY+r*sy
		return geom.NewSegment(x1, y1, x1+length*ex, y1+length*ey)
	}
	return components.Whiskers{Left: side(-45), Right: side(45)}
}

// WhiskersClear reports whether neither whisker crosses the border.
func WhiskersClear(w components.Whiskers, b Bounds) bool {
	for _, edge := range b.Border() {
		if w.Left.Intersects(edge) || w.Right.Intersects(edge) {
			return false
		}
	}
	return true
}

// Overlaps reports whether two circles overlap, comparing squared distances.
func Overlaps(ax, ay float64, ar int, bx, by float64, br int) bool {
	dx, dy := ax-bx, ay-by
	sum := float64(ar + br)
	return dx*dx+dy*dy < sum*sum
}

// ClampPosition pulls (x, y) inside the bounds so that an extent of (ew, eh)
// around it fits. If the extent is wider than the arena the centre is used.
func ClampPosition(x, y, ew, eh float64, b Bounds) (float64, float64) {
	return clampAxis(x, ew, b.Width), clampAxis(y, eh, b.Height)
}

func clampAxis(v, extent, size float64) float64 {
	if 2*extent > size {
		return size / 2
	}
	return math.Max(extent, math.Min(size-extent, v))
}
