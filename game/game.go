// Package game wires the arena to a raylib window, the toolbar and panels,
// telemetry output and sound. Headless runs use the same Game without
// touching raylib.
package game

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/robotarena/arena"
	"github.com/pthm-cable/robotarena/audio"
	"github.com/pthm-cable/robotarena/camera"
	"github.com/pthm-cable/robotarena/config"
	"github.com/pthm-cable/robotarena/systems"
	"github.com/pthm-cable/robotarena/telemetry"
	"github.com/pthm-cable/robotarena/ui"
)

// DefaultSavePath is used by the Save and Load buttons when no path is given.
const DefaultSavePath = "arena.sav"

// Options configures a Game.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindow    int    // Ticks per stats window, 0 = use config
	OutputDir      string // CSV and config output, empty = disabled
	Headless       bool
	StepsPerUpdate int
	LoadPath       string // Loaded at startup when set
	SavePath       string // Written on Unload when set, and used by the Save button
	Populate       string // Initial items per kind, e.g. "robot=5,hungry=2"
	Sound          bool

	// StatsCallback, if set, receives every flushed stats window.
	StatsCallback func(telemetry.WindowStats)
}

// Game holds the arena and everything around it.
type Game struct {
	cfg   *config.Config
	arena *arena.Arena

	rngSeed        int64
	headless       bool
	running        bool
	stepsPerUpdate int
	savePath       string
	saveOnExit     bool
	status         string

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool
	statsCallback func(telemetry.WindowStats)

	sounds *audio.SoundManager

	// Graphics only
	camera         *camera.Camera
	overlays       *ui.OverlayRegistry
	systemRegistry *systems.SystemRegistry
	hud            *ui.HUD
	toolbar        *ui.Toolbar
	controlsPanel  *ui.ControlsPanel
	inspector      *ui.Inspector
	perfPanel      *ui.PerfPanel
	itemList       *ui.ItemListPanel

	selected     uint32
	hasSelection bool
	dragging     bool

	screenWidth, screenHeight float32
}

// NewGameWithOptions creates a game. In graphical mode the raylib window
// must already be open.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()

	statsWindow := cfg.Telemetry.StatsWindow
	if opts.StatsWindow > 0 {
		statsWindow = opts.StatsWindow
	}
	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}

	g := &Game{
		cfg:            cfg,
		arena:          arena.New(cfg, opts.Seed),
		rngSeed:        opts.Seed,
		headless:       opts.Headless,
		running:        opts.Headless,
		stepsPerUpdate: steps,
		savePath:       opts.SavePath,
		saveOnExit:     opts.SavePath != "",
		collector:      telemetry.NewCollector(statsWindow),
		perfCollector:  telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		logStats:       opts.LogStats,
		statsCallback:  opts.StatsCallback,
		systemRegistry: systems.NewSystemRegistry(),
	}
	if g.savePath == "" {
		g.savePath = opts.LoadPath
	}
	if g.savePath == "" {
		g.savePath = DefaultSavePath
	}

	g.arena.SetCollector(g.collector)
	g.arena.SetPerf(g.perfCollector)

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			slog.Error("failed to create output manager", "error", err)
		} else {
			g.outputManager = om
			if err := om.WriteConfig(cfg); err != nil {
				slog.Error("failed to write config", "error", err)
			}
		}
	}

	if opts.Sound && !opts.Headless {
		g.sounds = audio.NewSoundManager()
		if err := g.sounds.Initialize(); err != nil {
			slog.Warn("sound disabled", "error", err)
		}
		g.collector.Observe(g.sounds.HandleEvent)
	}

	if opts.LoadPath != "" {
		if err := g.loadFrom(opts.LoadPath); err != nil {
			slog.Error("failed to load arena", "path", opts.LoadPath, "error", err)
		}
	}
	if opts.Populate != "" && g.arena.Len() == 0 {
		counts, err := arena.ParsePopulate(opts.Populate)
		if err != nil {
			slog.Error("bad populate list", "populate", opts.Populate, "error", err)
		} else {
			g.populate(counts)
		}
	}

	if !opts.Headless {
		g.initGraphics()
	}

	return g
}

// initGraphics builds the camera and panels for the current screen size.
func (g *Game) initGraphics() {
	cfg := g.cfg
	g.screenWidth = float32(cfg.Screen.Width)
	g.screenHeight = float32(cfg.Screen.Height)

	panel := float32(cfg.Screen.PanelWidth)
	g.camera = camera.New(panel, 0, g.screenWidth-panel, g.screenHeight,
		float32(cfg.Arena.Width), float32(cfg.Arena.Height))

	g.overlays = ui.NewOverlayRegistry()
	pw := int32(cfg.Screen.PanelWidth) - 20
	g.hud = ui.NewHUD(10, 10)
	g.toolbar = ui.NewToolbar(10, 0, float32(pw))
	g.controlsPanel = ui.NewControlsPanel(10, 0, pw)
	g.controlsPanel.SetVisible(true)
	g.inspector = ui.NewInspector(10, 0, pw)
	g.perfPanel = ui.NewPerfPanel(10, 0)
	g.itemList = ui.NewItemListPanel(int32(panel)+10, 10, int32(g.screenHeight)-40)
}

// Tick returns the arena tick.
func (g *Game) Tick() int {
	return g.arena.Tick()
}

// Arena returns the simulated arena.
func (g *Game) Arena() *arena.Arena {
	return g.arena
}

// Running reports whether the arena advances on Update.
func (g *Game) Running() bool {
	return g.running
}

// SetRunning starts or pauses the arena.
func (g *Game) SetRunning(running bool) {
	g.running = running
}

// Status returns the last user-facing message.
func (g *Game) Status() string {
	return g.status
}

// Update handles input and advances the arena if it is running.
func (g *Game) Update() {
	g.handleInput()

	if !g.running || g.dragging {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}

// UpdateHeadless advances the arena without any raylib calls.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}

// step runs one timed arena tick followed by telemetry.
func (g *Game) step() {
	g.perfCollector.StartTick()
	g.arena.Step()

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()

	g.perfCollector.EndTick()
}

// setStatus records and logs a user-facing message.
func (g *Game) setStatus(format string, args ...any) {
	g.status = fmt.Sprintf(format, args...)
	slog.Info("status", "message", g.status)
}

// Unload saves the arena if requested and releases resources.
func (g *Game) Unload() {
	if g.saveOnExit {
		if err := g.saveTo(g.savePath); err != nil {
			slog.Error("failed to save arena", "path", g.savePath, "error", err)
		}
	}
	if g.sounds != nil {
		g.sounds.Cleanup()
	}
	if g.outputManager != nil {
		if err := g.outputManager.Close(); err != nil {
			slog.Error("failed to close output", "error", err)
		}
	}
}
