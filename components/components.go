// Package components defines ECS components for the arena.
package components

// Kind discriminates the closed set of arena item variants.
type Kind uint8

const (
	KindRobot Kind = iota
	KindHungry
	KindControllable
	KindWhisker
	KindBullet
	KindObstacle
	KindPartyObstacle

	// NumKinds is the number of item kinds.
	NumKinds = int(KindPartyObstacle) + 1
)

// IsRobot reports whether the kind carries heading and motion.
func (k Kind) IsRobot() bool {
	return k <= KindBullet
}

// IsMobile reports whether the kind moves on its own each tick.
func (k Kind) IsMobile() bool {
	switch k {
	case KindRobot, KindHungry, KindWhisker, KindBullet:
		return true
	}
	return false
}

// Colour is a single-letter palette tag.
type Colour byte

const (
	Red    Colour = 'r'
	Orange Colour = 'o'
	Yellow Colour = 'y'
	Green  Colour = 'g'
	Blue   Colour = 'b'
	White  Colour = 'w'
	Black  Colour = 'x'
)

// PartyPalette is the colour cycle shown while an item is partying.
var PartyPalette = [...]Colour{Red, Orange, Yellow, Green, Blue}

// Identity holds the immutable identity of an arena item.
type Identity struct {
	ID     uint32
	Kind   Kind
	Colour Colour
}

// Party holds the transient party status shared by every non-bullet item.
type Party struct {
	Active         bool
	Countdown      int // Ticks left in party mode
	ColourCooldown int // Ticks until the next palette step
	ColourIndex    int // Index into PartyPalette
}

// Colour returns the current palette colour.
func (p Party) Colour() Colour {
	return PartyPalette[p.ColourIndex%len(PartyPalette)]
}

// Projectile marks a bullet.
type Projectile struct {
	Destroyed bool
}

// Lights drives the colour cycle of a party obstacle.
type Lights struct {
	Cooldown int
	Index    int
}
