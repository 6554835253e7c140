package arena

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/robotarena/components"
	"github.com/pthm-cable/robotarena/systems"
	"github.com/pthm-cable/robotarena/telemetry"
)

// defaultColour returns the resting colour of a kind.
func defaultColour(kind components.Kind) components.Colour {
	switch kind {
	case components.KindRobot:
		return components.Blue
	case components.KindHungry:
		return components.Green
	case components.KindWhisker:
		return components.Yellow
	case components.KindBullet:
		return components.Black
	}
	return components.Red
}

// newBody returns the starting body of a kind.
func (a *Arena) newBody(kind components.Kind) components.Body {
	rc := a.cfg.Robot
	switch kind {
	case components.KindObstacle, components.KindPartyObstacle:
		return components.Body{Radius: a.cfg.Obstacle.Radius}
	case components.KindBullet:
		return components.NewBody(a.cfg.Bullet.Radius, 0, 0, 0)
	}
	return components.NewBody(rc.Radius, rc.WheelWidth, rc.WheelHeight, rc.FootprintPad)
}

// Spawn creates an item at an explicit position without checking for
// collisions. It returns the new item's ID. Obstacles ignore angle.
func (a *Arena) Spawn(kind components.Kind, x, y, angle float64) uint32 {
	e := a.spawn(kind, x, y, angle, a.newBody(kind))
	return a.idMap.Get(e).ID
}

// SpawnHungry creates a hungry robot whose radius restores earlier growth.
func (a *Arena) SpawnHungry(x, y, angle float64, radius int) uint32 {
	body := a.newBody(components.KindHungry)
	e := a.spawn(components.KindHungry, x, y, angle, body)
	if radius != body.Radius {
		systems.RestoreGrowth(a.bodyMap.Get(e), a.motionMap.Get(e), radius, a.growth)
	}
	return a.idMap.Get(e).ID
}

func (a *Arena) spawn(kind components.Kind, x, y, angle float64, body components.Body) ecs.Entity {
	id := components.Identity{ID: a.nextID, Kind: kind, Colour: defaultColour(kind)}
	a.nextID++
	pos := components.Position{X: x, Y: y}
	party := components.Party{}

	var e ecs.Entity
	if kind.IsRobot() {
		heading := components.Heading{Degrees: components.NormalizeDegrees(angle)}
		speed := a.cfg.Robot.Speed
		if kind == components.KindBullet {
			speed = a.cfg.Bullet.Speed
		}
		motion := components.Motion{Speed: speed, BaseSpeed: speed}
		e = a.robotMapper.NewEntity(&id, &pos, &body, &party, &heading, &motion)
	} else {
		e = a.itemMapper.NewEntity(&id, &pos, &body, &party)
	}

	switch kind {
	case components.KindWhisker:
		w := systems.ComputeWhiskers(pos, components.Heading{Degrees: angle}, body.Radius, a.cfg.Whisker.Length)
		a.whiskerMap.Add(e, &w)
	case components.KindBullet:
		a.projMap.Add(e, &components.Projectile{})
	case components.KindPartyObstacle:
		a.lightsMap.Add(e, &components.Lights{})
	}

	a.order = append(a.order, e)
	a.byID[id.ID] = e
	a.record(telemetry.EventPlacement, e)
	return e
}

// Add places a new item of the given kind at a random collision-free spot.
// Robots get a random heading. It gives up with ErrNoPlacement after the
// configured number of attempts.
func (a *Arena) Add(kind components.Kind) (uint32, error) {
	if kind == components.KindBullet {
		return 0, fmt.Errorf("add %v: bullets are fired, not placed", kind)
	}
	body := a.newBody(kind)

	// Robots sample inside their footprint so the spot is also a valid position.
	ex, ey := float64(body.Radius+a.cfg.Placement.Margin), float64(body.Radius+a.cfg.Placement.Margin)
	hx, hy := float64(body.Radius), float64(body.Radius)
	if kind.IsRobot() {
		ex, ey = body.FootprintW, body.FootprintH
		hx, hy = body.FootprintW, body.FootprintH
	}

	x, y, ok := a.findSpot(body.Radius, ex, a.bounds.Width-hx, ey, a.bounds.Height-hy)
	if !ok {
		slog.Warn("placement failed", "kind", kind.String(), "attempts", a.cfg.Placement.MaxAttempts, "items", len(a.order))
		if a.collector != nil {
			a.collector.Record(telemetry.NewEvent(telemetry.EventPlacementFailed, a.tick, 0, kind))
		}
		return 0, fmt.Errorf("add %v: %w", kind, ErrNoPlacement)
	}

	var angle float64
	if kind.IsRobot() {
		angle = float64(a.rng.Intn(360))
	}
	e := a.spawn(kind, x, y, angle, body)
	return a.idMap.Get(e).ID, nil
}

// findSpot samples integer coordinates in [loX, hiX] x [loY, hiY] until one
// is collision-free.
func (a *Arena) findSpot(radius int, loX, hiX, loY, hiY float64) (float64, float64, bool) {
	lx, hx := int(math.Ceil(loX)), int(math.Floor(hiX))
	ly, hy := int(math.Ceil(loY)), int(math.Floor(hiY))
	if hx < lx || hy < ly {
		return 0, 0, false
	}

	for i := 0; i < a.cfg.Placement.MaxAttempts; i++ {
		x := float64(lx + a.rng.Intn(hx-lx+1))
		y := float64(ly + a.rng.Intn(hy-ly+1))
		if a.CollisionFree(x, y, radius) {
			return x, y, true
		}
	}
	return 0, 0, false
}
