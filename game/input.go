package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/robotarena/systems"
	"github.com/pthm-cable/robotarena/ui"
)

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
	if ctrl {
		g.handleFileKeys()
	} else {
		g.handleOverlayKeys()
		g.handleControlKeys()
	}

	if rl.IsKeyPressed(rl.KeyP) {
		g.running = !g.running
	}
	if rl.IsKeyPressed(rl.KeyDelete) || rl.IsKeyPressed(rl.KeyBackspace) {
		g.removeSelected()
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) {
		g.stepsPerUpdate = ui.ClampSteps(g.stepsPerUpdate - 1)
	}
	if rl.IsKeyPressed(rl.KeyPeriod) {
		g.stepsPerUpdate = ui.ClampSteps(g.stepsPerUpdate + 1)
	}

	g.handleCameraInput()
	g.handleMouse()
}

// handleControlKeys drives the controllable robots. A press of any WASD key
// moves once in the direction of every direction key held.
func (g *Game) handleControlKeys() {
	if rl.IsKeyPressed(rl.KeySpace) || rl.IsKeyPressed(rl.KeyR) {
		g.arena.Control(systems.CmdFire)
	}

	if !(rl.IsKeyPressed(rl.KeyW) || rl.IsKeyPressed(rl.KeyA) ||
		rl.IsKeyPressed(rl.KeyS) || rl.IsKeyPressed(rl.KeyD)) {
		return
	}
	cmd := systems.CommandFromKeys(
		rl.IsKeyDown(rl.KeyW),
		rl.IsKeyDown(rl.KeyA),
		rl.IsKeyDown(rl.KeyS),
		rl.IsKeyDown(rl.KeyD),
	)
	if cmd != systems.CmdNone {
		g.arena.Control(cmd)
	}
}

// handleOverlayKeys toggles overlays bound to a key.
func (g *Game) handleOverlayKeys() {
	for _, desc := range g.overlays.All() {
		if desc.Key != 0 && rl.IsKeyPressed(desc.Key) {
			g.overlays.HandleKeyPress(desc.Key)
		}
	}
	if rl.IsKeyPressed(rl.KeyO) {
		g.controlsPanel.Toggle()
	}
}

// handleFileKeys handles Ctrl+S and Ctrl+L.
func (g *Game) handleFileKeys() {
	if rl.IsKeyPressed(rl.KeyS) {
		g.applyAction(ui.ToolbarResult{Action: ui.ActionSave, Steps: g.stepsPerUpdate})
	}
	if rl.IsKeyPressed(rl.KeyL) {
		g.applyAction(ui.ToolbarResult{Action: ui.ActionLoad, Steps: g.stepsPerUpdate})
	}
}

// handleMouse selects and drags items in the arena viewport.
func (g *Game) handleMouse() {
	mouse := rl.GetMousePosition()

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && g.camera.InViewport(mouse.X, mouse.Y) {
		wx, wy := g.camera.ScreenToWorld(mouse.X, mouse.Y)
		if it, ok := g.arena.ItemAt(float64(wx), float64(wy)); ok {
			g.selected = it.ID
			g.hasSelection = true
			g.dragging = true
		} else {
			g.hasSelection = false
		}
	}

	if g.dragging && rl.IsMouseButtonDown(rl.MouseLeftButton) {
		wx, wy := g.camera.ScreenToWorld(mouse.X, mouse.Y)
		// Invalid spots leave the item where it was.
		if err := g.arena.MoveItem(g.selected, float64(wx), float64(wy)); err != nil {
			if _, ok := g.selectedItem(); !ok {
				g.dragging = false
			}
		}
	}

	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		g.dragging = false
	}
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	panel := float32(g.cfg.Screen.PanelWidth)
	g.camera.Resize(w-panel, h)
	g.itemList = ui.NewItemListPanel(int32(panel)+10, 10, int32(h)-40)
}

// handleCameraInput processes camera pan/zoom controls.
func (g *Game) handleCameraInput() {
	panSpeed := float32(8.0)

	if rl.IsKeyDown(rl.KeyRight) {
		g.camera.Pan(panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		g.camera.Pan(-panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		g.camera.Pan(0, panSpeed)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		g.camera.Pan(0, -panSpeed)
	}

	// Zoom controls: mouse wheel over the arena or +/- keys
	mouse := rl.GetMousePosition()
	if wheelMove := rl.GetMouseWheelMove(); wheelMove != 0 && g.camera.InViewport(mouse.X, mouse.Y) {
		g.camera.ZoomBy(1.0 + wheelMove*0.1)
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		g.camera.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		g.camera.ZoomBy(0.8)
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		g.camera.Reset()
	}
}
