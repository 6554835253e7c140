package audio

import (
	"math"
	"testing"
)

func drain(t *testing.T, e Effect) (int, float64) {
	t.Helper()
	s := NewEffect(e, sampleRate)
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			if math.IsNaN(frame[0]) || frame[0] != frame[1] {
				t.Fatalf("effect %d: bad frame %v", e, frame)
			}
			peak = math.Max(peak, math.Abs(frame[0]))
		}
		total += n
		if !ok {
			break
		}
	}
	return total, peak
}

func TestEffectsAreFiniteAndBounded(t *testing.T) {
	for e := Effect(0); e < effectCount; e++ {
		n, peak := drain(t, e)
		if want := sampleRate.N(e.Duration()); n != want {
			t.Errorf("effect %d streamed %d samples, want %d", e, n, want)
		}
		if peak == 0 || peak > 1 {
			t.Errorf("effect %d peak amplitude %v, want in (0, 1]", e, peak)
		}
	}
}

func TestNoiseGeneratorRepeatable(t *testing.T) {
	a := NewNoiseGenerator(sampleRate, 7)
	b := NewNoiseGenerator(sampleRate, 7)
	bufA := make([][2]float64, 64)
	bufB := make([][2]float64, 64)
	a.Stream(bufA)
	b.Stream(bufB)
	for i := range bufA {
		if bufA[i] != bufB[i] {
			t.Fatalf("sample %d differs: %v vs %v", i, bufA[i], bufB[i])
		}
	}
}

func TestUnknownEffect(t *testing.T) {
	if d := effectCount.Duration(); d != 0 {
		t.Errorf("unknown effect duration = %v", d)
	}
}
