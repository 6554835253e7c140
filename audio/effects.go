package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Effect names a short sound played for an arena event.
type Effect uint8

const (
	EffectShot Effect = iota
	EffectMeal
	EffectHit
	EffectParty
	effectCount
)

var effectDurations = [effectCount]time.Duration{
	EffectShot:  90 * time.Millisecond,
	EffectMeal:  160 * time.Millisecond,
	EffectHit:   250 * time.Millisecond,
	EffectParty: 400 * time.Millisecond,
}

// Duration returns how long the effect plays.
func (e Effect) Duration() time.Duration {
	if e >= effectCount {
		return 0
	}
	return effectDurations[e]
}

// NewEffect returns a finite streamer for the effect.
func NewEffect(e Effect, sr beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch e {
	case EffectShot:
		s = NewSweepGenerator(sr, 1400, 500, 0.12)
	case EffectMeal:
		s = NewSweepGenerator(sr, 300, 700, 0.15)
	case EffectHit:
		s = NewNoiseGenerator(sr, 1)
	case EffectParty:
		s = NewArpGenerator(sr, e.Duration()/5)
	default:
		return beep.Silence(0)
	}
	return beep.Take(sr.N(e.Duration()), s)
}

// SweepGenerator glides a sine from one frequency to another over ~100ms.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	gain     float64
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sweep from one frequency to another.
func NewSweepGenerator(sr beep.SampleRate, from, to, gain float64) *SweepGenerator {
	return &SweepGenerator{sr: sr, from: from, to: to, gain: gain}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	span := float64(g.sr.N(100 * time.Millisecond))
	for i := range samples {
		p := math.Min(float64(g.pos)/span, 1)
		freq := g.from + (g.to-g.from)*p
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		// Fade out as the sweep completes
		sample := g.gain * (1 - 0.8*p) * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// NoiseGenerator produces a decaying crackle with a low rumble.
type NoiseGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewNoiseGenerator creates a noise burst. The seed makes it repeatable.
func NewNoiseGenerator(sr beep.SampleRate, seed int64) *NoiseGenerator {
	return &NoiseGenerator{sr: sr, seed: seed}
}

func (g *NoiseGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 12)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		rumble := 0.3 * math.Sin(2*math.Pi*70*t)

		sample := envelope * (0.3*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *NoiseGenerator) Err() error {
	return nil
}

// partyNotes follow the party palette, one note per colour.
var partyNotes = [...]float64{523.25, 587.33, 659.25, 783.99, 880.00}

// ArpGenerator steps through partyNotes, one per step.
type ArpGenerator struct {
	sr    beep.SampleRate
	step  int
	pos   int
	phase float64
}

// NewArpGenerator creates an arpeggio that changes note every step.
func NewArpGenerator(sr beep.SampleRate, step time.Duration) *ArpGenerator {
	n := sr.N(step)
	if n < 1 {
		n = 1
	}
	return &ArpGenerator{sr: sr, step: n}
}

func (g *ArpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		note := partyNotes[(g.pos/g.step)%len(partyNotes)]
		within := float64(g.pos%g.step) / float64(g.step)
		g.phase += 2 * math.Pi * note / float64(g.sr)

		sample := 0.1 * (1 - within) * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ArpGenerator) Err() error {
	return nil
}
