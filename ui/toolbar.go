package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/robotarena/components"
)

// Action is a toolbar request for the game loop.
type Action int

const (
	ActionNone Action = iota
	ActionToggleRun
	ActionStep
	ActionClear
	ActionRemove
	ActionAdd
	ActionSave
	ActionLoad
)

// Steps-per-frame slider range.
const (
	MinSteps = 1
	MaxSteps = 20
)

// ToolbarResult is what the user clicked this frame.
type ToolbarResult struct {
	Action Action
	Kind   components.Kind // For ActionAdd
	Steps  int             // Slider value, always set
}

// Toolbar renders the button column in the side panel.
type Toolbar struct {
	renderer *Renderer
	x, y     float32
	width    float32
}

// NewToolbar creates a toolbar at the given position.
func NewToolbar(x, y, width float32) *Toolbar {
	return &Toolbar{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition moves the toolbar.
func (tb *Toolbar) SetPosition(x, y float32) {
	tb.x = x
	tb.y = y
}

// addKinds are the kinds with an Add button. Bullets are only fired.
var addKinds = []components.Kind{
	components.KindRobot,
	components.KindHungry,
	components.KindControllable,
	components.KindWhisker,
	components.KindObstacle,
	components.KindPartyObstacle,
}

// Draw renders the buttons and slider. It returns the clicked action and the
// Y below the toolbar.
func (tb *Toolbar) Draw(running bool, steps int, hasSelection bool) (ToolbarResult, int32) {
	h := tb.renderer.Theme.ButtonHeight
	gap := float32(4)
	half := (tb.width - gap) / 2
	x, y := tb.x, tb.y
	res := ToolbarResult{Steps: ClampSteps(steps)}

	runText := "Start"
	if running {
		runText = "Pause"
	}
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: half, Height: h}, runText) {
		res.Action = ActionToggleRun
	}
	if gui.Button(rl.Rectangle{X: x + half + gap, Y: y, Width: half, Height: h}, "Step") {
		res.Action = ActionStep
	}
	y += h + gap

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: half, Height: h}, "Clear") {
		res.Action = ActionClear
	}
	removeText := "Remove"
	if !hasSelection {
		removeText = "(select)"
	}
	if gui.Button(rl.Rectangle{X: x + half + gap, Y: y, Width: half, Height: h}, removeText) && hasSelection {
		res.Action = ActionRemove
	}
	y += h + gap*2

	rl.DrawText("Add", int32(x), int32(y), tb.renderer.Theme.HeaderFontSize, tb.renderer.Theme.SectionHeader)
	y += float32(tb.renderer.Theme.LineHeight)
	for i, kind := range addKinds {
		col := float32(i % 2)
		bx := x + col*(half+gap)
		if gui.Button(rl.Rectangle{X: bx, Y: y, Width: half, Height: h}, kind.String()) {
			res.Action = ActionAdd
			res.Kind = kind
		}
		if i%2 == 1 {
			y += h + gap
		}
	}
	y += gap

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: half, Height: h}, "Save") {
		res.Action = ActionSave
	}
	if gui.Button(rl.Rectangle{X: x + half + gap, Y: y, Width: half, Height: h}, "Load") {
		res.Action = ActionLoad
	}
	y += h + gap*2

	rl.DrawText(fmt.Sprintf("Steps per frame: %d", res.Steps), int32(x), int32(y), tb.renderer.Theme.FontSize, tb.renderer.Theme.LabelColor)
	y += float32(tb.renderer.Theme.LineHeight)
	v := gui.SliderBar(
		rl.Rectangle{X: x + 20, Y: y, Width: tb.width - 50, Height: 16},
		fmt.Sprint(MinSteps), fmt.Sprint(MaxSteps),
		float32(res.Steps), MinSteps, MaxSteps,
	)
	res.Steps = ClampSteps(int(v + 0.5))
	y += 16 + gap*2

	return res, int32(y)
}

// ClampSteps limits n to the slider range.
func ClampSteps(n int) int {
	if n < MinSteps {
		return MinSteps
	}
	if n > MaxSteps {
		return MaxSteps
	}
	return n
}
