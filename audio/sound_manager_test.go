package audio

import (
	"testing"

	"github.com/pthm-cable/robotarena/components"
	"github.com/pthm-cable/robotarena/telemetry"
)

// Sound calls must be safe when the speaker was never opened.
func TestSoundManagerWithoutInit(t *testing.T) {
	sm := NewSoundManager()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("sound call panicked without initialization: %v", r)
		}
	}()

	for e := Effect(0); e < effectCount; e++ {
		if sm.Play(e) {
			t.Errorf("Play(%d) queued without a speaker", e)
		}
	}
	sm.HandleEvent(telemetry.NewMealEvent(1, 2, 3))
	sm.Cleanup()

	if sm.Played(EffectMeal) != 0 {
		t.Error("nothing should have been played")
	}
}

func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager()
	if err := sm.Initialize(); err != nil {
		t.Logf("speaker unavailable (expected without an audio device): %v", err)
		return
	}
	if err := sm.Initialize(); err != nil {
		t.Errorf("second Initialize should be a no-op, got %v", err)
	}
	sm.Cleanup()
}

func TestEffectFor(t *testing.T) {
	tests := []struct {
		name   string
		ev     telemetry.Event
		want   Effect
		wantOK bool
	}{
		{"shot", telemetry.NewEvent(telemetry.EventPlacement, 0, 5, components.KindBullet), EffectShot, true},
		{"robot placed", telemetry.NewEvent(telemetry.EventPlacement, 0, 5, components.KindRobot), 0, false},
		{"meal", telemetry.NewMealEvent(0, 1, 2), EffectMeal, true},
		{"hit", telemetry.NewBulletHitEvent(0, 1, 2), EffectHit, true},
		{"infection", telemetry.NewInfectionEvent(0, 1, components.KindRobot, 2), EffectParty, true},
		{"wall turn", telemetry.NewEvent(telemetry.EventWallTurn, 0, 1, components.KindRobot), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := EffectFor(tt.ev)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("EffectFor = %v, %v; want %v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
