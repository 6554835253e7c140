package systems

import (
	"math"
	"math/rand"
	"testing"
)

func TestOverlapsMatchesDistance(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		ax, ay := rng.Float64()*100, rng.Float64()*100
		bx, by := rng.Float64()*100, rng.Float64()*100
		ar, br := 1+rng.Intn(20), 1+rng.Intn(20)

		d2 := (ax-bx)*(ax-bx) + (ay-by)*(ay-by)
		want := d2 < float64((ar+br)*(ar+br))
		if got := Overlaps(ax, ay, ar, bx, by, br); got != want {
			t.Fatalf("Overlaps(%v,%v,%d, %v,%v,%d) = %v, want %v", ax, ay, ar, bx, by, br, got, want)
		}
	}
}

func TestOverlapsTouchingIsNotCollision(t *testing.T) {
	if Overlaps(0, 0, 5, 10, 0, 5) {
		t.Error("circles touching at one point should not overlap")
	}
	if !Overlaps(0, 0, 5, 9.999, 0, 5) {
		t.Error("expected overlap just inside the touching distance")
	}
}

func TestClampPosition(t *testing.T) {
	b := Bounds{Width: 100, Height: 50}

	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{"inside", 40, 20, 40, 20},
		{"left", 2, 20, 10, 20},
		{"bottom right", 99, 49, 90, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := ClampPosition(tt.x, tt.y, 10, 10, b)
			if math.Abs(x-tt.wantX) > 1e-9 || math.Abs(y-tt.wantY) > 1e-9 {
				t.Errorf("ClampPosition = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}

	// Extent wider than the arena centres the item.
	x, _ := ClampPosition(5, 5, 60, 10, b)
	if x != 50 {
		t.Errorf("oversized extent: x = %v, want 50", x)
	}
}
