package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/robotarena/components"
)

// PartyParams holds the party timing.
type PartyParams struct {
	Length       int
	ColourPeriod int
	Speed        float64
}

// EnterParty switches an item into party mode. A party in progress is not restarted.
func EnterParty(p *components.Party, params PartyParams) bool {
	if p.Active {
		return false
	}
	p.Active = true
	p.Countdown = params.Length
	p.ColourCooldown = 0
	return true
}

// TickParty advances one tick of party mode. The colour cycle and the overall
// countdown run independently. Motion may be nil for items that do not move.
// It reports whether the party ended on this tick.
func TickParty(p *components.Party, m *components.Motion, params PartyParams) bool {
	if !p.Active {
		return false
	}

	p.ColourCooldown--
	if p.ColourCooldown <= 0 {
		p.ColourIndex = (p.ColourIndex + 1) % len(components.PartyPalette)
		p.ColourCooldown = params.ColourPeriod
	}

	p.Countdown--
	if p.Countdown <= 0 {
		p.Active = false
		p.Countdown = 0
		if m != nil {
			m.Speed = m.BaseSpeed
		}
		return true
	}

	// Forced every tick, so manual changes during a party do not stick.
	if m != nil {
		m.Speed = params.Speed
	}
	return false
}

// TickLights advances a party obstacle's colour cycle.
func TickLights(l *components.Lights, id *components.Identity, period int) {
	l.Cooldown--
	if l.Cooldown <= 0 {
		id.Colour = components.PartyPalette[l.Index%len(components.PartyPalette)]
		l.Index = (l.Index + 1) % len(components.PartyPalette)
		l.Cooldown = period
	}
}

// StatusSystem ticks party mode and obstacle lights for every item.
// Items are independent here, so archetype order is fine.
type StatusSystem struct {
	partyFilter  *ecs.Filter1[components.Party]
	lightsFilter *ecs.Filter2[components.Lights, components.Identity]
	motionMap    *ecs.Map[components.Motion]
	params       PartyParams
	ended        []ecs.Entity
}

// NewStatusSystem creates a status system bound to the world.
func NewStatusSystem(w *ecs.World, params PartyParams) *StatusSystem {
	return &StatusSystem{
		partyFilter:  ecs.NewFilter1[components.Party](w),
		lightsFilter: ecs.NewFilter2[components.Lights, components.Identity](w),
		motionMap:    ecs.NewMap[components.Motion](w),
		params:       params,
	}
}

// Update runs one tick and returns the entities whose party ended.
// The returned slice is reused by the next call.
func (s *StatusSystem) Update() []ecs.Entity {
	s.ended = s.ended[:0]

	query := s.partyFilter.Query()
	for query.Next() {
		p := query.Get()
		if !p.Active {
			continue
		}
		var m *components.Motion
		if e := query.Entity(); s.motionMap.Has(e) {
			m = s.motionMap.Get(e)
		}
		if TickParty(p, m, s.params) {
			s.ended = append(s.ended, query.Entity())
		}
	}

	lights := s.lightsFilter.Query()
	for lights.Next() {
		l, id := lights.Get()
		TickLights(l, id, s.params.ColourPeriod)
	}

	return s.ended
}

// CountActive returns the number of items currently partying.
func (s *StatusSystem) CountActive() int {
	n := 0
	query := s.partyFilter.Query()
	for query.Next() {
		if query.Get().Active {
			n++
		}
	}
	return n
}
