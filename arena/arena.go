// Package arena owns the robot arena world: its items, their collisions and
// reactions, the per-tick step, control dispatch and persistence.
//
// An Arena is not safe for concurrent use. Drive it from a single loop.
package arena

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/robotarena/components"
	"github.com/pthm-cable/robotarena/config"
	"github.com/pthm-cable/robotarena/systems"
	"github.com/pthm-cable/robotarena/telemetry"
)

var (
	// ErrNoPlacement is returned when no collision-free spot is found within
	// the configured number of attempts.
	ErrNoPlacement = errors.New("arena: no collision-free placement")

	// ErrUnknownItem is returned for an ID that is not in the arena.
	ErrUnknownItem = errors.New("arena: unknown item")
)

// Bounds is the playable rectangle. Origin is top-left, y grows downward.
type Bounds = systems.Bounds

// Arena holds every item and runs the simulation.
type Arena struct {
	cfg    *config.Config
	world  *ecs.World
	bounds Bounds
	rng    *rand.Rand

	// Storage order drives collision scans and rendering.
	order  []ecs.Entity
	byID   map[uint32]ecs.Entity
	nextID uint32
	tick   int

	itemMapper  *ecs.Map4[components.Identity, components.Position, components.Body, components.Party]
	robotMapper *ecs.Map6[components.Identity, components.Position, components.Body, components.Party, components.Heading, components.Motion]

	idMap      *ecs.Map[components.Identity]
	posMap     *ecs.Map[components.Position]
	bodyMap    *ecs.Map[components.Body]
	partyMap   *ecs.Map[components.Party]
	headingMap *ecs.Map[components.Heading]
	motionMap  *ecs.Map[components.Motion]
	whiskerMap *ecs.Map[components.Whiskers]
	projMap    *ecs.Map[components.Projectile]
	lightsMap  *ecs.Map[components.Lights]

	sampleFilter *ecs.Filter3[components.Identity, components.Body, components.Party]

	status *systems.StatusSystem
	party  systems.PartyParams
	growth systems.GrowthParams

	// Bullets destroyed during the current scan, removed once it finishes.
	pending []ecs.Entity

	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
}

// New creates an empty arena sized by cfg. The seed drives placement and
// initial headings.
func New(cfg *config.Config, seed int64) *Arena {
	world := ecs.NewWorld()

	a := &Arena{
		cfg:    cfg,
		world:  world,
		bounds: Bounds{Width: float64(cfg.Arena.Width), Height: float64(cfg.Arena.Height)},
		rng:    rand.New(rand.NewSource(seed)),
		byID:   make(map[uint32]ecs.Entity),

		itemMapper: ecs.NewMap4[
			components.Identity,
			components.Position,
			components.Body,
			components.Party,
		](world),
		robotMapper: ecs.NewMap6[
			components.Identity,
			components.Position,
			components.Body,
			components.Party,
			components.Heading,
			components.Motion,
		](world),

		idMap:      ecs.NewMap[components.Identity](world),
		posMap:     ecs.NewMap[components.Position](world),
		bodyMap:    ecs.NewMap[components.Body](world),
		partyMap:   ecs.NewMap[components.Party](world),
		headingMap: ecs.NewMap[components.Heading](world),
		motionMap:  ecs.NewMap[components.Motion](world),
		whiskerMap: ecs.NewMap[components.Whiskers](world),
		projMap:    ecs.NewMap[components.Projectile](world),
		lightsMap:  ecs.NewMap[components.Lights](world),

		sampleFilter: ecs.NewFilter3[components.Identity, components.Body, components.Party](world),

		party: systems.PartyParams{
			Length:       cfg.Party.Length,
			ColourPeriod: cfg.Party.ColourPeriod,
			Speed:        cfg.Party.Speed,
		},
		growth: systems.GrowthParams{
			BaseRadius:     cfg.Robot.Radius,
			Growth:         cfg.Hungry.Growth,
			SpeedDecrement: cfg.Hungry.SpeedDecrement,
			MinSpeed:       cfg.Hungry.MinSpeed,
			DefaultSpeed:   cfg.Robot.Speed,
			FootprintPad:   cfg.Robot.FootprintPad,
		},
	}
	a.status = systems.NewStatusSystem(world, a.party)
	return a
}

// SetCollector attaches a telemetry collector. Nil detaches it.
func (a *Arena) SetCollector(c *telemetry.Collector) {
	a.collector = c
}

// SetPerf attaches a perf collector timing each step phase. Nil detaches it.
func (a *Arena) SetPerf(p *telemetry.PerfCollector) {
	a.perf = p
}

// Bounds returns the arena bounds.
func (a *Arena) Bounds() Bounds {
	return a.bounds
}

// Tick returns the number of completed steps.
func (a *Arena) Tick() int {
	return a.tick
}

// Len returns the number of items.
func (a *Arena) Len() int {
	return len(a.order)
}

// Count returns the number of items of the given kind.
func (a *Arena) Count(kind components.Kind) int {
	n := 0
	for _, e := range a.order {
		if a.idMap.Get(e).Kind == kind {
			n++
		}
	}
	return n
}

// Clear removes every item. IDs keep counting from where they were.
func (a *Arena) Clear() {
	for _, e := range a.order {
		a.record(telemetry.EventRemoval, e)
		a.world.RemoveEntity(e)
	}
	a.order = a.order[:0]
	a.pending = a.pending[:0]
	clear(a.byID)
}

// Remove deletes the item with the given ID.
func (a *Arena) Remove(id uint32) error {
	e, ok := a.byID[id]
	if !ok {
		return fmt.Errorf("remove %d: %w", id, ErrUnknownItem)
	}
	a.remove(e)
	return nil
}

// remove deletes an entity. Removing an entity twice is a no-op.
func (a *Arena) remove(e ecs.Entity) {
	if !a.world.Alive(e) {
		return
	}
	id := a.idMap.Get(e).ID
	a.record(telemetry.EventRemoval, e)

	for i, o := range a.order {
		if o == e {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
	delete(a.byID, id)
	a.world.RemoveEntity(e)
}

// alive reports whether e is still in the arena.
func (a *Arena) alive(e ecs.Entity) bool {
	return a.world.Alive(e)
}

// record forwards an event about e to the collector.
func (a *Arena) record(t telemetry.EventType, e ecs.Entity) {
	if a.collector == nil {
		return
	}
	id := a.idMap.Get(e)
	a.collector.Record(telemetry.NewEvent(t, a.tick, id.ID, id.Kind))
}

// CheckInvariants verifies that every item has a positive radius, a finite
// position and a unique ID.
func (a *Arena) CheckInvariants() error {
	seen := make(map[uint32]struct{}, len(a.order))
	for _, e := range a.order {
		if !a.world.Alive(e) {
			return fmt.Errorf("dead entity %v in storage order", e)
		}
		id := a.idMap.Get(e)
		if _, dup := seen[id.ID]; dup {
			return fmt.Errorf("duplicate item ID %d", id.ID)
		}
		seen[id.ID] = struct{}{}

		if r := a.bodyMap.Get(e).Radius; r < 1 {
			return fmt.Errorf("item %d has radius %d", id.ID, r)
		}
		pos := a.posMap.Get(e)
		if math.IsNaN(pos.X) || math.IsNaN(pos.Y) || math.IsInf(pos.X, 0) || math.IsInf(pos.Y, 0) {
			return fmt.Errorf("item %d has non-finite position (%v, %v)", id.ID, pos.X, pos.Y)
		}
	}
	if len(seen) != len(a.byID) {
		return fmt.Errorf("ID index holds %d items, storage order %d", len(a.byID), len(seen))
	}
	return nil
}

// Sample gathers the per-window telemetry sample.
func (a *Arena) Sample() telemetry.Sample {
	var s telemetry.Sample
	query := a.sampleFilter.Query()
	for query.Next() {
		id, body, party := query.Get()
		s.KindCounts[id.Kind]++
		if party.Active {
			s.Partying++
		}
		if id.Kind == components.KindHungry {
			s.HungryRadii = append(s.HungryRadii, float64(body.Radius))
		}
		if id.Kind.IsMobile() && id.Kind != components.KindBullet {
			s.RobotSpeeds = append(s.RobotSpeeds, a.motionMap.Get(query.Entity()).Speed)
		}
	}
	return s
}
