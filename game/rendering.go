package game

import (
	"fmt"
	"math"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/robotarena/arena"
	"github.com/pthm-cable/robotarena/components"
	"github.com/pthm-cable/robotarena/geom"
	"github.com/pthm-cable/robotarena/ui"
)

const controlsLegend = "WASD: drive | Space/R: fire | P: run/pause | Del: remove | ,/.: steps | Ctrl+S/L: save/load | O: overlays"

// Draw renders the frame and applies any toolbar click.
func (g *Game) Draw() {
	g.perfCollector.RecordFrame()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 30, G: 34, B: 40, A: 255})

	g.drawArena()

	// Side panel
	panelW := int32(g.cfg.Screen.PanelWidth)
	rl.DrawRectangle(0, 0, panelW, int32(g.screenHeight), rl.Color{R: 20, G: 25, B: 30, A: 255})

	y := g.hud.Draw(g.hudData())
	g.toolbar.SetPosition(10, float32(y+6))
	res, y := g.toolbar.Draw(g.running, g.stepsPerUpdate, g.hasSelection)

	if it, ok := g.selectedItem(); ok {
		g.inspector.SetPosition(10, y+6)
		y = g.inspector.Draw(it, g.collector.Lifetime().Get(it.ID))
	} else {
		g.inspector.SetPosition(10, y+6)
		y = g.inspector.DrawEmpty()
	}

	g.controlsPanel.SetPosition(10, y+6)
	g.controlsPanel.Draw(g.overlays)

	if g.overlays.IsEnabled(ui.OverlayPerf) {
		g.perfPanel.SetPosition(panelW+10, 10)
		g.perfPanel.Draw(g.perfData())
	}
	if g.overlays.IsEnabled(ui.OverlayItemList) {
		g.itemList.Draw(strings.Split(strings.TrimRight(g.arena.String(), "\n"), "\n"))
	}

	g.hud.DrawControls(int32(g.screenHeight), controlsLegend)

	rl.EndDrawing()

	g.applyAction(res)
}

// hudData gathers the HUD counters.
func (g *Game) hudData() ui.HUDData {
	data := ui.HUDData{
		Title:  "Robot Arena",
		Tick:   g.arena.Tick(),
		Steps:  g.stepsPerUpdate,
		FPS:    rl.GetFPS(),
		Paused: !g.running,
		Status: g.status,
	}
	for k := 0; k < components.NumKinds; k++ {
		data.Counts[k] = g.arena.Count(components.Kind(k))
	}
	for _, it := range g.arena.Items() {
		if it.Partying {
			data.Partying++
		}
	}
	return data
}

// perfData converts the rolling perf window for the panel.
func (g *Game) perfData() ui.PerfPanelData {
	stats := g.perfCollector.Stats()
	return ui.PerfPanelData{
		PhaseTimes: stats.PhaseAvg,
		Total:      stats.AvgTickDuration,
		Registry:   g.systemRegistry,
	}
}

// drawArena draws the arena floor, its items and the selection.
func (g *Game) drawArena() {
	cam := g.camera
	x0, y0 := cam.WorldToScreen(0, 0)
	x1, y1 := cam.WorldToScreen(float32(g.cfg.Arena.Width), float32(g.cfg.Arena.Height))
	theme := ui.DefaultTheme()

	rl.BeginScissorMode(int32(cam.OriginX), int32(cam.OriginY), int32(cam.ViewportW), int32(cam.ViewportH))
	rl.DrawRectangleRec(rl.Rectangle{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}, theme.ArenaBg)
	rl.DrawRectangleLinesEx(rl.Rectangle{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}, 2, theme.ArenaBorder)

	g.arena.Draw(&raylibSink{g: g})

	if it, ok := g.selectedItem(); ok {
		sx, sy := cam.WorldToScreen(float32(it.X), float32(it.Y))
		rl.DrawCircleLinesV(rl.Vector2{X: sx, Y: sy}, (float32(it.Radius)+4)*cam.Zoom, rl.SkyBlue)
	}
	rl.EndScissorMode()
}

// raylibSink draws arena items through the game camera.
type raylibSink struct {
	g *Game
}

// DrawItem draws one item. Robots get wheels and a heading mark.
func (s *raylibSink) DrawItem(it arena.Item) {
	g := s.g
	cam := g.camera
	r := float32(it.Radius)
	if !cam.IsVisible(float32(it.X), float32(it.Y), r+float32(it.WheelHeight)+float32(g.cfg.Whisker.Length)) {
		return
	}
	zoom := cam.Zoom
	cx, cy := cam.WorldToScreen(float32(it.X), float32(it.Y))
	centre := rl.Vector2{X: cx, Y: cy}
	colour := ui.ColourOf(it.Colour)

	if g.overlays.IsEnabled(ui.OverlayFootprints) && it.Kind.IsRobot() {
		fw, fh := float32(it.FootprintW)*zoom, float32(it.FootprintH)*zoom
		rl.DrawRectangleLinesEx(rl.Rectangle{X: cx - fw, Y: cy - fh, Width: 2 * fw, Height: 2 * fh}, 1, rl.Gray)
	}

	if it.HasWhiskers && g.overlays.IsEnabled(ui.OverlayWhiskers) {
		for _, w := range []geom.Segment{it.Whiskers.Left, it.Whiskers.Right} {
			ax, ay := cam.WorldToScreen(float32(w.A.X), float32(w.A.Y))
			bx, by := cam.WorldToScreen(float32(w.B.X), float32(w.B.Y))
			rl.DrawLineEx(rl.Vector2{X: ax, Y: ay}, rl.Vector2{X: bx, Y: by}, 1, rl.DarkGray)
		}
	}

	switch it.Kind {
	case components.KindBullet:
		rl.DrawCircleV(centre, r*zoom, colour)
	case components.KindObstacle, components.KindPartyObstacle:
		rl.DrawCircleV(centre, r*zoom, colour)
		rl.DrawCircleLinesV(centre, r*zoom, rl.DarkGray)
	default:
		drawRobot(centre, it, colour, zoom)
		if g.overlays.IsEnabled(ui.OverlayHeadings) {
			drawHeading(centre, it.Angle, 2*r*zoom, rl.Maroon)
		}
	}

	if g.overlays.IsEnabled(ui.OverlayIDs) {
		rl.DrawText(fmt.Sprint(it.ID), int32(cx+r*zoom), int32(cy-r*zoom), 10, rl.Black)
	}
}

// drawRobot draws the body, the two side wheels and a heading mark.
// Wheels sit outside the body on the x axis, matching the footprint.
func drawRobot(centre rl.Vector2, it arena.Item, colour rl.Color, zoom float32) {
	r := float32(it.Radius) * zoom
	ww := float32(it.WheelWidth) * zoom
	wh := float32(it.WheelHeight) * zoom

	rl.DrawRectangleRec(rl.Rectangle{X: centre.X - r - wh, Y: centre.Y - ww/2, Width: wh, Height: ww}, rl.Black)
	rl.DrawRectangleRec(rl.Rectangle{X: centre.X + r, Y: centre.Y - ww/2, Width: wh, Height: ww}, rl.Black)

	rl.DrawCircleV(centre, r, colour)
	rl.DrawCircleLinesV(centre, r, rl.Color{R: 60, G: 60, B: 60, A: 255})
	drawHeading(centre, it.Angle, r, rl.Black)
}

// drawHeading draws a line from centre along angle (degrees, y down).
func drawHeading(centre rl.Vector2, angle float64, length float32, color rl.Color) {
	rad := angle * math.Pi / 180
	tip := rl.Vector2{
		X: centre.X + float32(math.Cos(rad))*length,
		Y: centre.Y + float32(math.Sin(rad))*length,
	}
	rl.DrawLineEx(centre, tip, 2, color)
}
