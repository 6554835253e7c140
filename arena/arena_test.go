package arena

import (
	"errors"
	"math"
	"testing"

	"github.com/pthm-cable/robotarena/components"
	"github.com/pthm-cable/robotarena/config"
	"github.com/pthm-cable/robotarena/telemetry"
)

func newTestArena(t *testing.T) *Arena {
	t.Helper()
	return New(config.Default(), 1)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func mustGet(t *testing.T, a *Arena, id uint32) Item {
	t.Helper()
	it, ok := a.Get(id)
	if !ok {
		t.Fatalf("item %d not found", id)
	}
	return it
}

func TestRobotMovesOneStep(t *testing.T) {
	a := newTestArena(t)
	id := a.Spawn(components.KindRobot, 100, 100, 0)

	a.Step()

	it := mustGet(t, a, id)
	if !approx(it.X, 101) || !approx(it.Y, 100) {
		t.Errorf("position = (%v, %v), want (101, 100)", it.X, it.Y)
	}
	if it.Angle != 0 {
		t.Errorf("angle = %v, want 0", it.Angle)
	}
	if a.Tick() != 1 {
		t.Errorf("tick = %d, want 1", a.Tick())
	}
}

func TestRobotCollisionTurn(t *testing.T) {
	a := newTestArena(t)
	id := a.Spawn(components.KindRobot, 100, 100, 0)
	a.Spawn(components.KindObstacle, 100, 100, 0)

	a.Step()
	it := mustGet(t, a, id)
	if it.Angle != 90 {
		t.Fatalf("angle = %v, want 90 after collision", it.Angle)
	}
	if !approx(it.X, 100) || !approx(it.Y, 100) {
		t.Fatalf("robot moved on collision turn: (%v, %v)", it.X, it.Y)
	}

	// The cooldown lets it drive out even though it still overlaps.
	a.Step()
	it = mustGet(t, a, id)
	if it.Angle != 90 || !approx(it.Y, 101) {
		t.Errorf("after cooldown step: angle %v y %v, want 90 and 101", it.Angle, it.Y)
	}
}

func TestHungryEatsObstacle(t *testing.T) {
	a := newTestArena(t)
	hungry := a.Spawn(components.KindHungry, 100, 100, 0)
	obstacle := a.Spawn(components.KindObstacle, 100, 100, 0)

	hit, err := a.AnyCollisions(hungry)
	if err != nil {
		t.Fatalf("AnyCollisions: %v", err)
	}
	if !hit {
		t.Fatal("expected a collision")
	}
	if _, ok := a.Get(obstacle); ok {
		t.Error("obstacle should have been eaten")
	}

	it := mustGet(t, a, hungry)
	if it.Radius != 12 {
		t.Errorf("radius = %d, want 12", it.Radius)
	}
	if !approx(it.Speed, 0.975) {
		t.Errorf("speed = %v, want 0.975", it.Speed)
	}
}

func TestHungryReactions(t *testing.T) {
	tests := []struct {
		name       string
		tieBreak   string
		radii      [2]int
		query      int // which of the two calls AnyCollisions
		wantAlive  [2]bool
		wantRadius int // radius of the survivor, if exactly one
	}{
		{"larger eats smaller", config.TieBreakNone, [2]int{14, 10}, 1, [2]bool{true, false}, 16},
		{"smaller is eaten when querying", config.TieBreakNone, [2]int{10, 14}, 0, [2]bool{false, true}, 16},
		{"tie none", config.TieBreakNone, [2]int{10, 10}, 0, [2]bool{true, true}, 0},
		{"tie other", config.TieBreakOther, [2]int{10, 10}, 0, [2]bool{false, true}, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Hungry.TieBreak = tt.tieBreak
			a := New(cfg, 1)

			ids := [2]uint32{
				a.SpawnHungry(200, 200, 0, tt.radii[0]),
				a.SpawnHungry(205, 200, 0, tt.radii[1]),
			}
			if _, err := a.AnyCollisions(ids[tt.query]); err != nil {
				t.Fatalf("AnyCollisions: %v", err)
			}

			for i, id := range ids {
				it, ok := a.Get(id)
				if ok != tt.wantAlive[i] {
					t.Errorf("item %d alive = %v, want %v", i, ok, tt.wantAlive[i])
				}
				if ok && tt.wantRadius != 0 && it.Radius != tt.wantRadius {
					t.Errorf("survivor radius = %d, want %d", it.Radius, tt.wantRadius)
				}
			}
		})
	}
}

func TestRobotNotHungryIsEaten(t *testing.T) {
	a := newTestArena(t)
	robot := a.Spawn(components.KindRobot, 200, 200, 0)
	hungry := a.Spawn(components.KindHungry, 210, 200, 0)

	if _, err := a.AnyCollisions(robot); err != nil {
		t.Fatalf("AnyCollisions: %v", err)
	}
	if _, ok := a.Get(robot); ok {
		t.Error("robot should have been eaten")
	}
	if it := mustGet(t, a, hungry); it.Radius != 12 {
		t.Errorf("hungry radius = %d, want 12", it.Radius)
	}
}

func TestBulletLeavesArena(t *testing.T) {
	a := newTestArena(t)
	inside := a.Spawn(components.KindBullet, 200, 100, 0)
	edge := a.Spawn(components.KindBullet, 508, 300, 0)

	a.Step()

	if _, ok := a.Get(edge); ok {
		t.Error("bullet crossing the right edge should be removed")
	}
	it := mustGet(t, a, inside)
	if !approx(it.X, 205) {
		t.Errorf("bullet x = %v, want 205", it.X)
	}
	if a.Len() != 1 {
		t.Errorf("Len = %d, want 1", a.Len())
	}
}

func TestBulletHitRemovesBoth(t *testing.T) {
	tests := []struct {
		name   string
		target components.Kind
	}{
		{"robot", components.KindRobot},
		{"obstacle", components.KindObstacle},
		{"hungry", components.KindHungry},
		{"party obstacle", components.KindPartyObstacle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestArena(t)
			c := telemetry.NewCollector(100)
			a.SetCollector(c)

			a.Spawn(tt.target, 200, 200, 0)
			a.Spawn(components.KindBullet, 205, 200, 180)
			a.Step()

			if a.Len() != 0 {
				t.Errorf("Len = %d, want 0", a.Len())
			}
			if err := a.CheckInvariants(); err != nil {
				t.Error(err)
			}
			if n := c.Count(telemetry.EventRemoval); n != 2 {
				t.Errorf("removals = %d, want 2", n)
			}
		})
	}
}

func TestPartyInfectionAndCountdown(t *testing.T) {
	cfg := config.Default()
	cfg.Party.Length = 5
	a := New(cfg, 1)

	robot := a.Spawn(components.KindRobot, 100, 100, 0)
	lamp := a.Spawn(components.KindPartyObstacle, 110, 100, 0)

	if _, err := a.AnyCollisions(robot); err != nil {
		t.Fatalf("AnyCollisions: %v", err)
	}
	if !mustGet(t, a, robot).Partying {
		t.Fatal("robot should be partying after touching a party obstacle")
	}
	if mustGet(t, a, lamp).Partying {
		t.Error("party obstacle itself should not be partying")
	}
	if err := a.Remove(lamp); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 4; i++ {
		a.Step()
	}
	it := mustGet(t, a, robot)
	if !it.Partying || !approx(it.Speed, cfg.Party.Speed) {
		t.Fatalf("after 4 ticks: partying %v speed %v", it.Partying, it.Speed)
	}

	a.Step()
	it = mustGet(t, a, robot)
	if it.Partying {
		t.Error("party should end after exactly 5 ticks")
	}
	if !approx(it.Speed, cfg.Robot.Speed) {
		t.Errorf("speed = %v, want %v after the party", it.Speed, cfg.Robot.Speed)
	}
}

func TestPartySpreadsByContact(t *testing.T) {
	a := newTestArena(t)
	first := a.Spawn(components.KindRobot, 100, 100, 0)
	a.Spawn(components.KindPartyObstacle, 100, 120, 0)
	second := a.Spawn(components.KindRobot, 300, 300, 0)

	a.AnyCollisions(first)
	if err := a.MoveItem(second, 110, 100); err != nil {
		t.Fatal(err)
	}
	a.AnyCollisions(second)

	if !mustGet(t, a, second).Partying {
		t.Error("partying robot should infect the robot touching it")
	}
}

func TestBulletIsNotInfected(t *testing.T) {
	a := newTestArena(t)
	bullet := a.Spawn(components.KindBullet, 100, 100, 0)
	a.Spawn(components.KindPartyObstacle, 110, 100, 0)
	c := telemetry.NewCollector(100)
	a.SetCollector(c)

	a.AnyCollisions(bullet)

	if n := c.Count(telemetry.EventInfection); n != 0 {
		t.Errorf("infections = %d, want 0", n)
	}
	if n := c.Count(telemetry.EventBulletHit); n != 1 {
		t.Errorf("bullet hits = %d, want 1", n)
	}
}

func TestAnyCollisionsUnknown(t *testing.T) {
	a := newTestArena(t)
	if _, err := a.AnyCollisions(42); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("err = %v, want ErrUnknownItem", err)
	}
}

func TestCollisionFree(t *testing.T) {
	a := newTestArena(t)
	a.Spawn(components.KindObstacle, 100, 100, 0)

	tests := []struct {
		x, y float64
		want bool
	}{
		{100, 100, false},
		{124, 100, false}, // 24 < 15+10
		{125, 100, true},  // touching is not overlapping
		{300, 300, true},
	}
	for _, tt := range tests {
		if got := a.CollisionFree(tt.x, tt.y, 10); got != tt.want {
			t.Errorf("CollisionFree(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if a.Len() != 1 {
		t.Error("CollisionFree must not change the arena")
	}
}

func TestWhiskerTurnsBeforeWall(t *testing.T) {
	a := newTestArena(t)
	whisker := a.Spawn(components.KindWhisker, 490, 100, 0)
	robot := a.Spawn(components.KindRobot, 490, 300, 0)

	a.Step()

	w := mustGet(t, a, whisker)
	if w.Angle != 270 || !approx(w.X, 490) {
		t.Errorf("whisker robot: angle %v x %v, want a left turn in place", w.Angle, w.X)
	}
	if !w.HasWhiskers {
		t.Error("whisker robot should expose its whiskers")
	}
	r := mustGet(t, a, robot)
	if r.Angle != 0 || !approx(r.X, 491) {
		t.Errorf("plain robot: angle %v x %v, want straight on to 491", r.Angle, r.X)
	}
}

func TestAddPlacement(t *testing.T) {
	a := newTestArena(t)
	for _, kind := range []components.Kind{
		components.KindRobot, components.KindHungry, components.KindControllable,
		components.KindWhisker, components.KindObstacle, components.KindPartyObstacle,
	} {
		id, err := a.Add(kind)
		if err != nil {
			t.Fatalf("Add(%v): %v", kind, err)
		}
		it := mustGet(t, a, id)
		if !a.ValidPosition(id, it.X, it.Y) {
			t.Errorf("%v placed at invalid position (%v, %v)", kind, it.X, it.Y)
		}
	}
	if err := a.CheckInvariants(); err != nil {
		t.Error(err)
	}

	if _, err := a.Add(components.KindBullet); err == nil {
		t.Error("adding a bullet should fail")
	}
}

func TestAddNoPlacement(t *testing.T) {
	cfg := config.Default()
	cfg.Arena.Width, cfg.Arena.Height = 100, 100
	cfg.Placement.MaxAttempts = 50
	a := New(cfg, 7)

	var err error
	for i := 0; i < 100 && err == nil; i++ {
		_, err = a.Add(components.KindObstacle)
	}
	if !errors.Is(err, ErrNoPlacement) {
		t.Fatalf("err = %v, want ErrNoPlacement", err)
	}
}

func TestAddRobotTooLarge(t *testing.T) {
	cfg := config.Default()
	cfg.Arena.Width, cfg.Arena.Height = 30, 30
	a := New(cfg, 1)

	if _, err := a.Add(components.KindRobot); !errors.Is(err, ErrNoPlacement) {
		t.Errorf("err = %v, want ErrNoPlacement", err)
	}
}

func TestIDsNeverReused(t *testing.T) {
	a := newTestArena(t)
	a.Spawn(components.KindObstacle, 50, 50, 0)
	mid := a.Spawn(components.KindObstacle, 100, 50, 0)
	a.Spawn(components.KindObstacle, 150, 50, 0)

	if err := a.Remove(mid); err != nil {
		t.Fatal(err)
	}
	if id := a.Spawn(components.KindObstacle, 200, 50, 0); id != 3 {
		t.Errorf("id after removal = %d, want 3", id)
	}

	a.Clear()
	if a.Len() != 0 {
		t.Fatalf("Len after Clear = %d", a.Len())
	}
	if id := a.Spawn(components.KindRobot, 100, 100, 0); id != 4 {
		t.Errorf("id after clear = %d, want 4", id)
	}
	if err := a.Remove(mid); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("second remove err = %v, want ErrUnknownItem", err)
	}
}

func TestIndependentArenasHaveOwnIDs(t *testing.T) {
	a := newTestArena(t)
	b := newTestArena(t)
	a.Spawn(components.KindObstacle, 50, 50, 0)
	a.Spawn(components.KindObstacle, 100, 50, 0)

	if id := b.Spawn(components.KindObstacle, 50, 50, 0); id != 0 {
		t.Errorf("first id in a fresh arena = %d, want 0", id)
	}
}

func TestLongRunKeepsInvariants(t *testing.T) {
	a := New(config.Default(), 42)
	c := telemetry.NewCollector(100)
	a.SetCollector(c)

	for _, kind := range []components.Kind{
		components.KindRobot, components.KindHungry, components.KindControllable,
		components.KindWhisker, components.KindObstacle, components.KindPartyObstacle,
	} {
		for i := 0; i < 4; i++ {
			if _, err := a.Add(kind); err != nil {
				t.Fatalf("Add(%v): %v", kind, err)
			}
		}
	}

	for tick := 0; tick < 600; tick++ {
		if tick%20 == 0 {
			a.Fire()
		}
		a.Step()
		if err := a.CheckInvariants(); err != nil {
			t.Fatalf("tick %d: %v", tick, err)
		}
	}

	for _, it := range a.Items() {
		if it.Kind.IsRobot() && it.Kind != components.KindBullet && !a.ValidPosition(it.ID, it.X, it.Y) {
			t.Errorf("%v %d left the arena: (%v, %v)", it.Kind, it.ID, it.X, it.Y)
		}
	}
}
