package components

import (
	"math"
	"testing"
)

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{90, 90},
		{360, 0},
		{450, 90},
		{-90, 270},
		{-360, 0},
		{-1e-20, 0},
	}

	for _, tt := range tests {
		got := NormalizeDegrees(tt.in)
		if got != tt.want {
			t.Errorf("NormalizeDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if got < 0 || got >= 360 {
			t.Errorf("NormalizeDegrees(%v) = %v out of range", tt.in, got)
		}
	}
}

func TestHeadingTurn(t *testing.T) {
	h := Heading{Degrees: 300}
	h.Turn(90)
	if h.Degrees != 30 {
		t.Errorf("expected 30, got %v", h.Degrees)
	}
	h.Turn(-90)
	if h.Degrees != 300 {
		t.Errorf("expected 300, got %v", h.Degrees)
	}
}

func TestHeadingDir(t *testing.T) {
	dx, dy := Heading{Degrees: 90}.Dir()
	if math.Abs(dx) > 1e-12 || math.Abs(dy-1) > 1e-12 {
		t.Errorf("90 degrees should point down (+y), got (%v, %v)", dx, dy)
	}
}

func TestNewBodyFootprint(t *testing.T) {
	b := NewBody(10, 20, 3, 5)
	if b.FootprintW != 18 || b.FootprintH != 15 {
		t.Errorf("footprint = %vx%v, want 18x15", b.FootprintW, b.FootprintH)
	}
}

func TestKindFlags(t *testing.T) {
	if !KindBullet.IsRobot() || KindObstacle.IsRobot() {
		t.Error("bullets carry motion, obstacles do not")
	}
	if KindControllable.IsMobile() {
		t.Error("controllable robots only move on command")
	}
	if len(KindNames()) != KindCount() {
		t.Errorf("KindNames out of sync with Kind constants")
	}
}

func TestPartyColourCycles(t *testing.T) {
	p := Party{ColourIndex: 8}
	if p.Colour() != Green {
		t.Errorf("expected green, got %v", p.Colour())
	}
}
