package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Arena.Width != 512 || cfg.Arena.Height != 512 {
		t.Errorf("arena = %dx%d, want 512x512", cfg.Arena.Width, cfg.Arena.Height)
	}
	if cfg.Robot.Radius != 10 || cfg.Obstacle.Radius != 15 || cfg.Bullet.Radius != 2 {
		t.Errorf("radii robot %d obstacle %d bullet %d", cfg.Robot.Radius, cfg.Obstacle.Radius, cfg.Bullet.Radius)
	}
	if cfg.Hungry.TieBreak != TieBreakNone {
		t.Errorf("tie break = %q, want %q", cfg.Hungry.TieBreak, TieBreakNone)
	}
	if cfg.Derived.ArenaW != 512 || cfg.Derived.ScreenW32 != float32(cfg.Screen.Width) {
		t.Errorf("derived values not computed: %+v", cfg.Derived)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	path := writeConfig(t, "arena:\n  width: 300\nhungry:\n  tie_break: other\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Arena.Width != 300 || cfg.Arena.Height != 512 {
		t.Errorf("arena = %dx%d, want 300x512", cfg.Arena.Width, cfg.Arena.Height)
	}
	if cfg.Derived.ArenaW != 300 {
		t.Errorf("derived width = %v, want 300", cfg.Derived.ArenaW)
	}
	if cfg.Hungry.TieBreak != TieBreakOther {
		t.Errorf("tie break = %q", cfg.Hungry.TieBreak)
	}
	if cfg.Robot.Speed != 1 {
		t.Errorf("untouched robot speed = %v, want 1", cfg.Robot.Speed)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"zero arena", "arena:\n  width: 0\n", "arena size"},
		{"zero radius", "robot:\n  radius: 0\n", "radii"},
		{"colour period", "party:\n  colour_period: 0\n", "colour_period"},
		{"attempts", "placement:\n  max_attempts: 0\n", "max_attempts"},
		{"tie break", "hungry:\n  tie_break: coin\n", "tie_break"},
		{"bad yaml", "arena: [", "parsing config file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Party.Length = 42

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if back.Party.Length != 42 || back.Whisker.Length != cfg.Whisker.Length {
		t.Errorf("round trip lost values: party %d whisker %v", back.Party.Length, back.Whisker.Length)
	}
}

func TestInitAndCfg(t *testing.T) {
	if err := Init(""); err != nil {
		t.Fatal(err)
	}
	if Cfg().Screen.TargetFPS != 60 {
		t.Errorf("fps = %d, want 60", Cfg().Screen.TargetFPS)
	}
}
