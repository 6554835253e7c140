// Package audio plays short synthesized sound effects for arena events.
// Audio is optional: every call is safe before Initialize or after a failed one.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/pthm-cable/robotarena/components"
	"github.com/pthm-cable/robotarena/telemetry"
)

const (
	sampleRate = beep.SampleRate(44100)

	// maxVoices caps simultaneous effects so a busy tick does not pile up noise.
	maxVoices = 6
)

// SoundManager mixes effect voices into the speaker.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	played      [effectCount]int
}

// NewSoundManager creates a silent sound manager.
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. It fails on machines without an audio device;
// callers should log and carry on.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences all voices.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play starts an effect unless too many are already sounding.
// It reports whether the effect was queued.
func (sm *SoundManager) Play(e Effect) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || e >= effectCount {
		return false
	}

	speaker.Lock()
	defer speaker.Unlock()
	if sm.mixer.Len() >= maxVoices {
		return false
	}
	sm.mixer.Add(NewEffect(e, sampleRate))
	sm.played[e]++
	return true
}

// Played returns how many times an effect has been queued.
func (sm *SoundManager) Played(e Effect) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if e >= effectCount {
		return 0
	}
	return sm.played[e]
}

// EffectFor maps an arena event to its sound, if it has one.
func EffectFor(ev telemetry.Event) (Effect, bool) {
	switch ev.Type {
	case telemetry.EventPlacement:
		// Only fired bullets make a sound when they appear.
		return EffectShot, ev.Kind == components.KindBullet
	case telemetry.EventMeal:
		return EffectMeal, true
	case telemetry.EventBulletHit:
		return EffectHit, true
	case telemetry.EventInfection:
		return EffectParty, true
	}
	return 0, false
}

// HandleEvent plays the sound for an arena event. Register it with
// telemetry.Collector.Observe.
func (sm *SoundManager) HandleEvent(ev telemetry.Event) {
	if e, ok := EffectFor(ev); ok {
		sm.Play(e)
	}
}
