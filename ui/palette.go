package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/robotarena/components"
)

// ColourOf maps a palette tag to a draw colour.
func ColourOf(c components.Colour) rl.Color {
	switch c {
	case components.Red:
		return rl.Red
	case components.Orange:
		return rl.Orange
	case components.Yellow:
		return rl.Gold
	case components.Green:
		return rl.Green
	case components.Blue:
		return rl.Blue
	case components.White:
		return rl.White
	case components.Black:
		return rl.Black
	}
	return rl.Magenta
}
