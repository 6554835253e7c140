// Package telemetry provides arena event counting, window statistics and
// performance tracking.
package telemetry

import "github.com/pthm-cable/robotarena/components"

// EventType identifies telemetry events.
type EventType uint8

const (
	EventMeal EventType = iota
	EventInfection
	EventBulletHit
	EventBulletExpired
	EventWallTurn
	EventCollisionTurn
	EventPlacement
	EventPlacementFailed
	EventRemoval
	EventPartyEnded

	eventTypeCount
)

var eventNames = [eventTypeCount]string{
	"meal", "infection", "bullet_hit", "bullet_expired", "wall_turn",
	"collision_turn", "placement", "placement_failed", "removal", "party_ended",
}

func (t EventType) String() string {
	if t < eventTypeCount {
		return eventNames[t]
	}
	return "unknown"
}

// Event represents a single telemetry event.
type Event struct {
	Type     EventType
	Tick     int
	EntityID uint32
	Kind     components.Kind

	// Optional, depending on event type
	TargetID uint32 // prey for meals, victim for bullet hits
}

// NewMealEvent creates an event for a hungry robot eating another item.
func NewMealEvent(tick int, eaterID, preyID uint32) Event {
	return Event{
		Type:     EventMeal,
		Tick:     tick,
		EntityID: eaterID,
		Kind:     components.KindHungry,
		TargetID: preyID,
	}
}

// NewInfectionEvent creates an event for an item catching party mode.
func NewInfectionEvent(tick int, id uint32, kind components.Kind, sourceID uint32) Event {
	return Event{
		Type:     EventInfection,
		Tick:     tick,
		EntityID: id,
		Kind:     kind,
		TargetID: sourceID,
	}
}

// NewBulletHitEvent creates an event for a bullet striking an item.
func NewBulletHitEvent(tick int, bulletID, targetID uint32) Event {
	return Event{
		Type:     EventBulletHit,
		Tick:     tick,
		EntityID: bulletID,
		Kind:     components.KindBullet,
		TargetID: targetID,
	}
}

// NewEvent creates an event that only names the item involved.
func NewEvent(t EventType, tick int, id uint32, kind components.Kind) Event {
	return Event{Type: t, Tick: tick, EntityID: id, Kind: kind}
}
