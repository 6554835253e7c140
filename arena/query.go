package arena

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/robotarena/components"
	"github.com/pthm-cable/robotarena/systems"
)

// ErrInvalidPosition is returned when an item may not occupy a position.
var ErrInvalidPosition = errors.New("arena: invalid position")

// Item is a read-only view of one arena item.
type Item struct {
	ID       uint32
	Kind     components.Kind
	X, Y     float64
	Radius   int
	Angle    float64 // Zero for obstacles
	Speed    float64 // Zero for obstacles
	Colour   components.Colour
	Partying bool

	WheelWidth, WheelHeight float64
	FootprintW, FootprintH  float64

	HasWhiskers bool
	Whiskers    components.Whiskers
}

// view builds the Item for an entity.
func (a *Arena) view(e ecs.Entity) Item {
	id := a.idMap.Get(e)
	pos := a.posMap.Get(e)
	body := a.bodyMap.Get(e)
	party := a.partyMap.Get(e)

	it := Item{
		ID:          id.ID,
		Kind:        id.Kind,
		X:           pos.X,
		Y:           pos.Y,
		Radius:      body.Radius,
		Colour:      id.Colour,
		Partying:    party.Active,
		WheelWidth:  body.WheelWidth,
		WheelHeight: body.WheelHeight,
		FootprintW:  body.FootprintW,
		FootprintH:  body.FootprintH,
	}
	if party.Active {
		it.Colour = party.Colour()
	}
	if id.Kind.IsRobot() {
		it.Angle = a.headingMap.Get(e).Degrees
		it.Speed = a.motionMap.Get(e).Speed
	}
	if a.whiskerMap.Has(e) {
		it.HasWhiskers = true
		it.Whiskers = *a.whiskerMap.Get(e)
	}
	return it
}

// Items returns every item in storage order.
func (a *Arena) Items() []Item {
	items := make([]Item, 0, len(a.order))
	for _, e := range a.order {
		items = append(items, a.view(e))
	}
	return items
}

// Get returns the item with the given ID.
func (a *Arena) Get(id uint32) (Item, bool) {
	e, ok := a.byID[id]
	if !ok {
		return Item{}, false
	}
	return a.view(e), true
}

// ItemAt returns the first item, in storage order, whose bounding square
// contains (x, y).
func (a *Arena) ItemAt(x, y float64) (Item, bool) {
	for _, e := range a.order {
		pos := a.posMap.Get(e)
		r := float64(a.bodyMap.Get(e).Radius)
		if x >= pos.X-r && x <= pos.X+r && y >= pos.Y-r && y <= pos.Y+r {
			return a.view(e), true
		}
	}
	return Item{}, false
}

// ValidPosition reports whether the item may occupy (x, y). Robots need
// their whole footprint inside the arena, other items their circle.
func (a *Arena) ValidPosition(id uint32, x, y float64) bool {
	e, ok := a.byID[id]
	if !ok {
		return false
	}
	return a.validAt(e, x, y)
}

func (a *Arena) validAt(e ecs.Entity, x, y float64) bool {
	body := a.bodyMap.Get(e)
	if a.idMap.Get(e).Kind.IsRobot() {
		return systems.ValidRobotPosition(x, y, *body, a.bounds)
	}
	return systems.ValidCirclePosition(x, y, body.Radius, a.bounds)
}

// MoveItem relocates an item, as when it is dragged. Overlaps are allowed
// and resolved by the next step.
func (a *Arena) MoveItem(id uint32, x, y float64) error {
	e, ok := a.byID[id]
	if !ok {
		return fmt.Errorf("move %d: %w", id, ErrUnknownItem)
	}
	if !a.validAt(e, x, y) {
		return fmt.Errorf("move %d to (%.2f, %.2f): %w", id, x, y, ErrInvalidPosition)
	}

	pos := a.posMap.Get(e)
	pos.X, pos.Y = x, y
	if a.whiskerMap.Has(e) {
		*a.whiskerMap.Get(e) = systems.ComputeWhiskers(*pos, *a.headingMap.Get(e), a.bodyMap.Get(e).Radius, a.cfg.Whisker.Length)
	}
	return nil
}

// Describe returns a one-line description of an item.
func (a *Arena) Describe(id uint32) (string, error) {
	e, ok := a.byID[id]
	if !ok {
		return "", fmt.Errorf("describe %d: %w", id, ErrUnknownItem)
	}
	return describe(a.view(e)), nil
}

func describe(it Item) string {
	if it.Kind.IsRobot() {
		return fmt.Sprintf("%s %d is at position %.2f,%.2f at angle %g", it.Kind, it.ID, it.X, it.Y, it.Angle)
	}
	return fmt.Sprintf("%s %d is at position %.2f,%.2f", it.Kind, it.ID, it.X, it.Y)
}

// String lists every item, one per line, in storage order.
func (a *Arena) String() string {
	var sb strings.Builder
	for _, e := range a.order {
		sb.WriteString(describe(a.view(e)))
		sb.WriteByte('\n')
	}
	return sb.String()
}
