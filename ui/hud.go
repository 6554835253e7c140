package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/robotarena/components"
	"github.com/pthm-cable/robotarena/systems"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title    string
	Counts   [components.NumKinds]int
	Partying int
	Tick     int
	Steps    int // Arena steps per frame
	FPS      int32
	Paused   bool
	Status   string // Last user-facing message, e.g. a save result
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
	x, y     int32
}

// NewHUD creates a new HUD renderer at the given panel position.
func NewHUD(x, y int32) *HUD {
	return &HUD{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// Draw renders the HUD and returns the Y below it.
func (h *HUD) Draw(data HUDData) int32 {
	r := h.renderer
	x, y := h.x, h.y

	rl.DrawText(data.Title, x, y, 20, rl.White)
	y += 26

	for kind, n := range data.Counts {
		if n == 0 {
			continue
		}
		rl.DrawText(fmt.Sprintf("%-20s %d", components.Kind(kind).String(), n), x, y, r.Theme.FontSize, rl.LightGray)
		y += r.Theme.LineHeight - 2
	}
	if data.Partying > 0 {
		rl.DrawText(fmt.Sprintf("Partying: %d", data.Partying), x, y, r.Theme.FontSize, rl.Pink)
		y += r.Theme.LineHeight - 2
	}
	y += 4

	rl.DrawText(
		fmt.Sprintf("Tick: %d | Steps: %dx | FPS: %d", data.Tick, data.Steps, data.FPS),
		x, y, r.Theme.FontSize, rl.LightGray,
	)
	y += r.Theme.LineHeight

	statusText := "Running"
	if data.Paused {
		statusText = "PAUSED"
	}
	rl.DrawText(statusText, x, y, 14, rl.Yellow)
	y += r.Theme.LineHeight + 2

	if data.Status != "" {
		rl.DrawText(data.Status, x, y, r.Theme.FontSize, rl.SkyBlue)
		y += r.Theme.LineHeight
	}
	return y
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-20, 12, rl.Gray)
}

// PerfPanelData holds performance metrics for display.
type PerfPanelData struct {
	PhaseTimes map[string]time.Duration
	Total      time.Duration
	Registry   *systems.SystemRegistry
}

// PerfPanel renders the per-phase step timing.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel with phases in registry order.
func (p *PerfPanel) Draw(data PerfPanelData) int32 {
	x := p.x
	y := p.y

	rl.DrawText("Step Timing", x, y, 16, rl.White)
	y += 20

	rl.DrawText(fmt.Sprintf("Total: %s", data.Total.Round(time.Microsecond)), x, y, 14, rl.Yellow)
	y += 16

	if data.Registry == nil {
		return y
	}
	for _, info := range data.Registry.All() {
		avg := data.PhaseTimes[info.ID]
		pct := PhasePercent(avg, data.Total)

		color := rl.LightGray
		if pct > 50 {
			color = rl.Red
		} else if pct > 25 {
			color = rl.Orange
		}

		rl.DrawText(
			fmt.Sprintf("%-10s %8s %5.1f%%", info.Name, avg.Round(time.Microsecond), pct),
			x, y, 12, color,
		)
		y += 14
	}
	return y
}

// PhasePercent returns phase as a percentage of total, 0 when total is 0.
func PhasePercent(phase, total time.Duration) float64 {
	if total <= 0 {
		return 0
	}
	return float64(phase) / float64(total) * 100
}

// ItemListPanel lists every item with its description.
type ItemListPanel struct {
	x, y   int32
	height int32
}

// NewItemListPanel creates an item list bounded to height pixels.
func NewItemListPanel(x, y, height int32) *ItemListPanel {
	return &ItemListPanel{x: x, y: y, height: height}
}

// SetPosition updates the panel position.
func (l *ItemListPanel) SetPosition(x, y int32) {
	l.x = x
	l.y = y
}

// Draw renders one line per description until the panel is full.
func (l *ItemListPanel) Draw(lines []string) {
	y := l.y
	rl.DrawText(fmt.Sprintf("Items (%d)", len(lines)), l.x, y, 14, rl.White)
	y += 18
	for i, line := range lines {
		if y+12 > l.y+l.height {
			rl.DrawText(fmt.Sprintf("... %d more", len(lines)-i), l.x, y, 11, rl.Gray)
			return
		}
		rl.DrawText(line, l.x, y, 11, rl.LightGray)
		y += 12
	}
}
