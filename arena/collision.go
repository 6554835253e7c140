package arena

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/robotarena/components"
	"github.com/pthm-cable/robotarena/config"
	"github.com/pthm-cable/robotarena/systems"
	"github.com/pthm-cable/robotarena/telemetry"
)

// firstOverlap scans storage order for the first item overlapping the circle.
// When skip is set, self is ignored.
func (a *Arena) firstOverlap(x, y float64, radius int, self ecs.Entity, skip bool) (ecs.Entity, bool) {
	for _, o := range a.order {
		if skip && o == self {
			continue
		}
		p := a.posMap.Get(o)
		if systems.Overlaps(x, y, radius, p.X, p.Y, a.bodyMap.Get(o).Radius) {
			return o, true
		}
	}
	return ecs.Entity{}, false
}

// CollisionFree reports whether a circle at (x, y) overlaps no item.
// It has no side effects.
func (a *Arena) CollisionFree(x, y float64, radius int) bool {
	_, hit := a.firstOverlap(x, y, radius, ecs.Entity{}, false)
	return !hit
}

// AnyCollisions checks the item against every other item in storage order and
// reacts to the first overlap found: infection, then eating, then bullet hits.
// It reports whether any overlap was found.
func (a *Arena) AnyCollisions(id uint32) (bool, error) {
	e, ok := a.byID[id]
	if !ok {
		return false, fmt.Errorf("collisions %d: %w", id, ErrUnknownItem)
	}
	return a.anyCollisions(e), nil
}

func (a *Arena) anyCollisions(e ecs.Entity) bool {
	pos := a.posMap.Get(e)
	other, hit := a.firstOverlap(pos.X, pos.Y, a.bodyMap.Get(e).Radius, e, true)
	if !hit {
		return false
	}

	eKind, oKind := a.idMap.Get(e).Kind, a.idMap.Get(other).Kind
	a.infect(e, other)
	a.resolveHungry(e, other)
	a.resolveBullet(e, other, eKind, oKind)
	return true
}

// infect puts e into party mode when it touches a party obstacle or a partying item.
func (a *Arena) infect(e, other ecs.Entity) {
	self := a.idMap.Get(e)
	if self.Kind == components.KindBullet {
		return
	}
	source := a.idMap.Get(other)
	if source.Kind != components.KindPartyObstacle && !a.partyMap.Get(other).Active {
		return
	}
	if systems.EnterParty(a.partyMap.Get(e), a.party) && a.collector != nil {
		a.collector.Record(telemetry.NewInfectionEvent(a.tick, self.ID, self.Kind, source.ID))
	}
}

// resolveHungry lets a hungry robot eat what it touched. Between two hungry
// robots the strictly larger one eats; equal sizes follow the tie-break policy.
func (a *Arena) resolveHungry(e, other ecs.Entity) {
	eHungry := a.idMap.Get(e).Kind == components.KindHungry
	oHungry := a.idMap.Get(other).Kind == components.KindHungry

	switch {
	case eHungry && oHungry:
		re, ro := a.bodyMap.Get(e).Radius, a.bodyMap.Get(other).Radius
		switch {
		case re > ro:
			a.eat(e, other)
		case ro > re:
			a.eat(other, e)
		case a.cfg.Hungry.TieBreak == config.TieBreakOther:
			a.eat(other, e)
		}
	case eHungry:
		a.eat(e, other)
	case oHungry:
		a.eat(other, e)
	}
}

// eat removes prey and grows the eater.
func (a *Arena) eat(eater, prey ecs.Entity) {
	if a.collector != nil {
		a.collector.Record(telemetry.NewMealEvent(a.tick, a.idMap.Get(eater).ID, a.idMap.Get(prey).ID))
	}
	a.remove(prey)

	// Component pointers are fetched after the removal, which may move storage.
	systems.Grow(a.bodyMap.Get(eater), a.posMap.Get(eater), a.motionMap.Get(eater), a.bounds, a.growth)
}

// resolveBullet removes both items when either of them was a bullet at the
// start of the reaction, even if the other reactions already removed one.
func (a *Arena) resolveBullet(e, other ecs.Entity, eKind, oKind components.Kind) {
	if eKind != components.KindBullet && oKind != components.KindBullet {
		return
	}
	bullet, target := e, other
	if eKind != components.KindBullet {
		bullet, target = other, e
	}
	if a.collector != nil && a.alive(bullet) && a.alive(target) {
		a.collector.Record(telemetry.NewBulletHitEvent(a.tick, a.idMap.Get(bullet).ID, a.idMap.Get(target).ID))
	}
	a.remove(e)
	a.remove(other)
}
