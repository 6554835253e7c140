package arena

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/pthm-cable/robotarena/components"
	"github.com/pthm-cable/robotarena/systems"
)

func TestItemAt(t *testing.T) {
	a := newTestArena(t)
	first := a.Spawn(components.KindObstacle, 50, 50, 0)
	a.Spawn(components.KindRobot, 60, 50, 0)

	tests := []struct {
		name   string
		x, y   float64
		wantOK bool
		wantID uint32
	}{
		{"centre", 50, 50, true, first},
		{"bounding box corner", 64, 64, true, first}, // outside the circle, inside the square
		{"first in storage order wins", 62, 50, true, first},
		{"only the robot", 68, 50, true, first + 1},
		{"empty", 300, 300, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, ok := a.ItemAt(tt.x, tt.y)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && it.ID != tt.wantID {
				t.Errorf("ID = %d, want %d", it.ID, tt.wantID)
			}
		})
	}
}

func TestMoveItem(t *testing.T) {
	a := newTestArena(t)
	robot := a.Spawn(components.KindRobot, 100, 100, 0)
	obstacle := a.Spawn(components.KindObstacle, 200, 200, 0)
	whisker := a.Spawn(components.KindWhisker, 300, 300, 0)

	if err := a.MoveItem(robot, 10, 100); !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("robot into wall: err = %v, want ErrInvalidPosition", err)
	}
	// An obstacle only needs its circle inside.
	if err := a.MoveItem(obstacle, 15, 15); err != nil {
		t.Errorf("obstacle to corner: %v", err)
	}
	if err := a.MoveItem(99, 100, 100); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("unknown item: err = %v, want ErrUnknownItem", err)
	}

	if err := a.MoveItem(whisker, 150, 300); err != nil {
		t.Fatal(err)
	}
	w := mustGet(t, a, whisker)
	if w.X != 150 || w.Whiskers.Left.A.X > 170 {
		t.Errorf("whiskers did not follow the robot: %+v", w.Whiskers)
	}
}

func TestDescribe(t *testing.T) {
	a := newTestArena(t)
	hungry := a.Spawn(components.KindHungry, 101, 100, 0)
	obstacle := a.Spawn(components.KindPartyObstacle, 20, 30.5, 0)

	got, err := a.Describe(hungry)
	if err != nil {
		t.Fatal(err)
	}
	if want := "Hungry Robot 0 is at position 101.00,100.00 at angle 0"; got != want {
		t.Errorf("Describe = %q, want %q", got, want)
	}

	got, _ = a.Describe(obstacle)
	if want := "Party Obstacle 1 is at position 20.00,30.50"; got != want {
		t.Errorf("Describe = %q, want %q", got, want)
	}

	if _, err := a.Describe(7); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("err = %v, want ErrUnknownItem", err)
	}
	if lines := strings.Count(a.String(), "\n"); lines != 2 {
		t.Errorf("String has %d lines, want 2", lines)
	}
}

func TestControl(t *testing.T) {
	a := newTestArena(t)
	id := a.Spawn(components.KindControllable, 100, 100, 0)
	stuck := a.Spawn(components.KindControllable, 20, 300, 0)
	robot := a.Spawn(components.KindRobot, 300, 300, 0)

	if n := a.Control(systems.CmdUp); n != 2 {
		t.Errorf("moved = %d, want 2", n)
	}
	it := mustGet(t, a, id)
	if it.X != 100 || it.Y != 90 || it.Angle != 270 {
		t.Errorf("after up: (%v, %v) angle %v, want (100, 90) angle 270", it.X, it.Y, it.Angle)
	}

	if n := a.Control(systems.CmdLeft); n != 1 {
		t.Errorf("moved = %d, want 1", n)
	}
	s := mustGet(t, a, stuck)
	if s.X != 20 || s.Angle != 180 {
		t.Errorf("blocked robot: x %v angle %v, want x 20 angle 180", s.X, s.Angle)
	}

	if r := mustGet(t, a, robot); r.X != 300 || r.Angle != 0 {
		t.Error("autonomous robots ignore commands")
	}
}

func TestFire(t *testing.T) {
	a := newTestArena(t)
	a.Spawn(components.KindControllable, 100, 100, 270)
	a.Spawn(components.KindControllable, 300, 300, 0)

	if n := a.Control(systems.CmdFire); n != 2 {
		t.Fatalf("fired %d bullets, want 2", n)
	}
	if a.Count(components.KindBullet) != 2 {
		t.Fatalf("bullets = %d, want 2", a.Count(components.KindBullet))
	}

	b := mustGet(t, a, 2)
	if b.Kind != components.KindBullet || b.Angle != 270 {
		t.Fatalf("first bullet: %v angle %v", b.Kind, b.Angle)
	}
	if math.Abs(b.X-100) > 1e-9 || math.Abs(b.Y-83) > 1e-9 {
		t.Errorf("bullet at (%v, %v), want (100, 83)", b.X, b.Y)
	}

	// The muzzle clears the shooter, so the bullet flies free.
	a.Step()
	if a.Count(components.KindControllable) != 2 {
		t.Error("shooter was hit by its own bullet")
	}
}

type recordingSink struct {
	items []Item
}

func (s *recordingSink) DrawItem(it Item) {
	s.items = append(s.items, it)
}

func TestDrawStorageOrder(t *testing.T) {
	a := newTestArena(t)
	a.Spawn(components.KindObstacle, 50, 50, 0)
	a.Spawn(components.KindRobot, 100, 100, 45)
	a.Spawn(components.KindPartyObstacle, 200, 200, 0)

	var sink recordingSink
	a.Draw(&sink)

	if len(sink.items) != 3 {
		t.Fatalf("drew %d items, want 3", len(sink.items))
	}
	for i, it := range sink.items {
		if it.ID != uint32(i) {
			t.Errorf("item %d drawn with ID %d", i, it.ID)
		}
	}
	robot := sink.items[1]
	if robot.Angle != 45 || robot.Colour != components.Blue || robot.FootprintW <= float64(robot.Radius) {
		t.Errorf("robot sprite %+v", robot)
	}
}

func TestPartyColourShown(t *testing.T) {
	a := newTestArena(t)
	robot := a.Spawn(components.KindRobot, 100, 100, 0)
	a.Spawn(components.KindPartyObstacle, 110, 100, 0)

	a.AnyCollisions(robot)
	a.Step()

	it := mustGet(t, a, robot)
	if !it.Partying {
		t.Fatal("robot should be partying")
	}
	if it.Colour == components.Blue {
		t.Error("partying robot should show a party colour")
	}
}
