package ui

import (
	"testing"
	"time"
)

func TestPhasePercent(t *testing.T) {
	tests := []struct {
		phase, total time.Duration
		want         float64
	}{
		{time.Millisecond, 4 * time.Millisecond, 25},
		{0, time.Millisecond, 0},
		{time.Millisecond, 0, 0},
	}
	for _, tt := range tests {
		if got := PhasePercent(tt.phase, tt.total); got != tt.want {
			t.Errorf("PhasePercent(%v, %v) = %v, want %v", tt.phase, tt.total, got, tt.want)
		}
	}
}

func TestClampSteps(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, MinSteps},
		{-3, MinSteps},
		{5, 5},
		{MaxSteps + 1, MaxSteps},
	}
	for _, tt := range tests {
		if got := ClampSteps(tt.in); got != tt.want {
			t.Errorf("ClampSteps(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
