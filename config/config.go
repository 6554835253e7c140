// Package config provides configuration loading and access for the arena.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all arena configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Arena     ArenaConfig     `yaml:"arena"`
	Robot     RobotConfig     `yaml:"robot"`
	Whisker   WhiskerConfig   `yaml:"whisker"`
	Hungry    HungryConfig    `yaml:"hungry"`
	Bullet    BulletConfig    `yaml:"bullet"`
	Obstacle  ObstacleConfig  `yaml:"obstacle"`
	Party     PartyConfig     `yaml:"party"`
	Control   ControlConfig   `yaml:"control"`
	Placement PlacementConfig `yaml:"placement"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	TargetFPS  int `yaml:"target_fps"`
	PanelWidth int `yaml:"panel_width"` // Side panel for toolbar and HUD
}

// ArenaConfig holds the arena dimensions. Origin is top-left, y grows downward.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RobotConfig holds the shared robot body and motion defaults.
type RobotConfig struct {
	Radius          int     `yaml:"radius"`
	WheelWidth      float64 `yaml:"wheel_width"`
	WheelHeight     float64 `yaml:"wheel_height"`
	FootprintPad    float64 `yaml:"footprint_pad"`    // Added to radius for the bounding box
	Speed           float64 `yaml:"speed"`            // Distance per tick
	CollideCooldown int     `yaml:"collide_cooldown"` // Ticks of forced straight motion after a collision turn
}

// WhiskerConfig holds whisker robot sensor parameters.
type WhiskerConfig struct {
	Length float64 `yaml:"length"`
}

// HungryConfig holds growth parameters for hungry robots.
type HungryConfig struct {
	Growth         int     `yaml:"growth"`          // Radius gained per meal
	SpeedDecrement float64 `yaml:"speed_decrement"` // Speed lost per meal
	MinSpeed       float64 `yaml:"min_speed"`
	TieBreak       string  `yaml:"tie_break"` // "none" or "other"
}

// BulletConfig holds projectile parameters.
type BulletConfig struct {
	Radius       int     `yaml:"radius"`
	Speed        float64 `yaml:"speed"`
	MuzzleOffset float64 `yaml:"muzzle_offset"` // Spawn distance beyond the shooter's radius
}

// ObstacleConfig holds static obstacle parameters.
type ObstacleConfig struct {
	Radius int `yaml:"radius"`
}

// PartyConfig holds party status parameters.
type PartyConfig struct {
	Length       int     `yaml:"length"`        // Ticks a party lasts
	ColourPeriod int     `yaml:"colour_period"` // Ticks between colour changes
	Speed        float64 `yaml:"speed"`
}

// ControlConfig holds controllable robot parameters.
type ControlConfig struct {
	Step float64 `yaml:"step"`
}

// PlacementConfig holds random placement parameters.
type PlacementConfig struct {
	Margin      int `yaml:"margin"` // Added to the radius for the lower sampling bound
	MaxAttempts int `yaml:"max_attempts"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         int `yaml:"stats_window"` // Ticks per stats window
	PerfCollectorWindow int `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32 // Screen.Width as float32
	ScreenH32 float32 // Screen.Height as float32
	ArenaW    float64 // Arena.Width as float64
	ArenaH    float64 // Arena.Height as float64
}

// Tie-break policies for two equally sized hungry robots.
const (
	TieBreakNone  = "none"
	TieBreakOther = "other"
)

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns the embedded defaults. It panics if they fail to parse,
// which only happens if the embedded file itself is broken.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return fmt.Errorf("arena size must be positive, got %dx%d", c.Arena.Width, c.Arena.Height)
	}
	if c.Robot.Radius < 1 || c.Obstacle.Radius < 1 || c.Bullet.Radius < 1 {
		return fmt.Errorf("radii must be at least 1")
	}
	if c.Party.ColourPeriod < 1 {
		return fmt.Errorf("party.colour_period must be at least 1, got %d", c.Party.ColourPeriod)
	}
	if c.Placement.MaxAttempts < 1 {
		return fmt.Errorf("placement.max_attempts must be at least 1, got %d", c.Placement.MaxAttempts)
	}
	switch c.Hungry.TieBreak {
	case TieBreakNone, TieBreakOther:
	default:
		return fmt.Errorf("hungry.tie_break: unknown policy %q", c.Hungry.TieBreak)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.ArenaW = float64(c.Arena.Width)
	c.Derived.ArenaH = float64(c.Arena.Height)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
