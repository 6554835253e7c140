package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/robotarena/components"
)

var testGrowth = GrowthParams{
	BaseRadius:     10,
	Growth:         2,
	SpeedDecrement: 0.025,
	MinSpeed:       0.025,
	DefaultSpeed:   1,
	FootprintPad:   5,
}

func TestGrowScalesBody(t *testing.T) {
	body := testBody()
	pos := components.Position{X: 100, Y: 100}
	m := components.Motion{Speed: 1, BaseSpeed: 1}

	Grow(&body, &pos, &m, testBounds, testGrowth)

	if body.Radius != 12 {
		t.Errorf("radius = %d, want 12", body.Radius)
	}
	if math.Abs(body.WheelWidth-24) > 1e-9 || math.Abs(body.WheelHeight-3.6) > 1e-9 {
		t.Errorf("wheels = %vx%v, want 24x3.6", body.WheelWidth, body.WheelHeight)
	}
	if math.Abs(body.FootprintW-20.6) > 1e-9 || body.FootprintH != 17 {
		t.Errorf("footprint = %vx%v, want 20.6x17", body.FootprintW, body.FootprintH)
	}
	if math.Abs(m.Speed-0.975) > 1e-9 {
		t.Errorf("speed = %v, want 0.975", m.Speed)
	}
}

func TestGrowMonotonicSpeed(t *testing.T) {
	body := testBody()
	pos := components.Position{X: 256, Y: 256}
	m := components.Motion{Speed: 1, BaseSpeed: 1}

	prev := m.Speed
	for i := 0; i < 60; i++ {
		Grow(&body, &pos, &m, Bounds{Width: 4096, Height: 4096}, testGrowth)
		if m.Speed > prev {
			t.Fatalf("step %d: speed rose from %v to %v", i, prev, m.Speed)
		}
		if m.Speed < testGrowth.MinSpeed {
			t.Fatalf("step %d: speed %v below floor", i, m.Speed)
		}
		prev = m.Speed
	}
	if m.Speed != testGrowth.MinSpeed {
		t.Errorf("speed = %v, want floor %v", m.Speed, testGrowth.MinSpeed)
	}
}

func TestGrowClampsIntoBounds(t *testing.T) {
	body := testBody()
	pos := components.Position{X: 494, Y: 497}
	m := components.Motion{Speed: 1, BaseSpeed: 1}

	Grow(&body, &pos, &m, testBounds, testGrowth)

	if !ValidRobotPosition(pos.X, pos.Y, body, testBounds) {
		t.Errorf("position (%v, %v) invalid after growth", pos.X, pos.Y)
	}
}

func TestRestoreGrowthMatchesLiveGrowth(t *testing.T) {
	live := testBody()
	pos := components.Position{X: 256, Y: 256}
	lm := components.Motion{Speed: 1, BaseSpeed: 1}
	for i := 0; i < 4; i++ {
		Grow(&live, &pos, &lm, testBounds, testGrowth)
	}

	loaded := testBody()
	var m components.Motion
	RestoreGrowth(&loaded, &m, live.Radius, testGrowth)

	if loaded.Radius != live.Radius {
		t.Errorf("radius = %d, want %d", loaded.Radius, live.Radius)
	}
	if math.Abs(m.Speed-lm.Speed) > 1e-9 {
		t.Errorf("speed = %v, want %v", m.Speed, lm.Speed)
	}
	if math.Abs(loaded.WheelWidth-live.WheelWidth) > 1e-9 {
		t.Errorf("wheel width = %v, want %v", loaded.WheelWidth, live.WheelWidth)
	}
}
