package arena

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/robotarena/components"
	"github.com/pthm-cable/robotarena/systems"
	"github.com/pthm-cable/robotarena/telemetry"
)

// Step advances the arena by one tick.
//
// Items are visited in storage order. Each mobile item first reacts to the
// first item it overlaps, then runs its own update rule with the result.
// Bullets that leave the arena are removed once every item has been visited.
// Party status runs last.
//
// Phase timing goes to the attached perf collector. The caller owns
// StartTick and EndTick.
func (a *Arena) Step() {
	// Reactions remove items, so iterate a snapshot.
	snapshot := append([]ecs.Entity(nil), a.order...)

	for _, e := range snapshot {
		if !a.alive(e) {
			continue
		}
		kind := a.idMap.Get(e).Kind
		if !kind.IsRobot() {
			continue
		}

		a.perf.StartPhase(telemetry.PhaseCollision)
		collided := a.anyCollisions(e)
		if !a.alive(e) {
			continue
		}

		a.perf.StartPhase(telemetry.PhaseMovement)
		a.update(e, kind, collided)
	}

	a.perf.StartPhase(telemetry.PhaseCleanup)
	for _, e := range a.pending {
		if !a.alive(e) {
			continue
		}
		a.record(telemetry.EventBulletExpired, e)
		a.remove(e)
	}
	a.pending = a.pending[:0]

	a.perf.StartPhase(telemetry.PhaseStatus)
	for _, e := range a.status.Update() {
		a.record(telemetry.EventPartyEnded, e)
	}

	a.tick++
}

// update runs the per-kind movement rule for one item.
func (a *Arena) update(e ecs.Entity, kind components.Kind, collided bool) {
	pos := a.posMap.Get(e)
	h := a.headingMap.Get(e)
	m := a.motionMap.Get(e)
	body := *a.bodyMap.Get(e)

	var outcome systems.Outcome
	switch kind {
	case components.KindBullet:
		p := a.projMap.Get(e)
		if p.Destroyed {
			return
		}
		outcome = systems.UpdateBullet(pos, *h, *m, p, body.Radius, collided, a.bounds)
		if outcome == systems.Destroyed {
			a.pending = append(a.pending, e)
		}

	case components.KindControllable:
		// Moved only by commands.
		return

	case components.KindWhisker:
		w := a.whiskerMap.Get(e)
		*w = systems.ComputeWhiskers(*pos, *h, body.Radius, a.cfg.Whisker.Length)
		sensed := !systems.WhiskersClear(*w, a.bounds)
		valid := func(x, y float64) bool {
			return !sensed && systems.ValidRobotPosition(x, y, body, a.bounds)
		}
		outcome = systems.UpdateRobot(pos, h, m, body, collided, valid, a.bounds, a.cfg.Robot.CollideCooldown)

	default:
		outcome = systems.UpdateRobot(pos, h, m, body, collided, a.robotValid(body), a.bounds, a.cfg.Robot.CollideCooldown)
	}

	switch outcome {
	case systems.WallTurn:
		a.record(telemetry.EventWallTurn, e)
	case systems.CollisionTurn:
		a.record(telemetry.EventCollisionTurn, e)
	}
}

// robotValid returns the footprint validity check for a robot body.
func (a *Arena) robotValid(body components.Body) systems.ValidFunc {
	return func(x, y float64) bool {
		return systems.ValidRobotPosition(x, y, body, a.bounds)
	}
}
