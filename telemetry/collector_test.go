package telemetry

import (
	"testing"

	"github.com/pthm-cable/robotarena/components"
)

func TestCollectorFlushResetsWindow(t *testing.T) {
	c := NewCollector(100)

	c.Record(NewEvent(EventPlacement, 0, 1, components.KindHungry))
	c.Record(NewEvent(EventPlacement, 0, 2, components.KindObstacle))
	c.Record(NewMealEvent(10, 1, 2))
	c.Record(NewEvent(EventRemoval, 10, 2, components.KindObstacle))
	c.Record(NewEvent(EventWallTurn, 20, 1, components.KindHungry))

	if c.ShouldFlush(99) {
		t.Error("window should not flush before 100 ticks")
	}
	if !c.ShouldFlush(100) {
		t.Error("window should flush at 100 ticks")
	}

	var s Sample
	s.KindCounts[components.KindHungry] = 1
	s.HungryRadii = []float64{12}
	s.RobotSpeeds = []float64{0.975}

	stats := c.Flush(100, s)
	if stats.Meals != 1 || stats.Removals != 1 || stats.WallTurns != 1 || stats.Placements != 2 {
		t.Errorf("unexpected event counts: %+v", stats)
	}
	if stats.Hungry != 1 || stats.HungryRadiusMax != 12 || stats.RobotSpeedMean != 0.975 {
		t.Errorf("unexpected sample stats: %+v", stats)
	}

	if c.Count(EventMeal) != 0 {
		t.Error("counters should reset after flush")
	}
	if c.ShouldFlush(150) {
		t.Error("next window starts at the flush tick")
	}
}

func TestCollectorLifetime(t *testing.T) {
	c := NewCollector(100)
	c.Record(NewEvent(EventPlacement, 5, 7, components.KindHungry))
	c.Record(NewMealEvent(6, 7, 8))
	c.Record(NewMealEvent(9, 7, 9))
	c.Record(NewInfectionEvent(9, 7, components.KindHungry, 3))

	lt := c.Lifetime()
	s := lt.Get(7)
	if s == nil {
		t.Fatal("expected lifetime stats for item 7")
	}
	if s.Meals != 2 || s.Infections != 1 {
		t.Errorf("meals %d infections %d, want 2 and 1", s.Meals, s.Infections)
	}
	if age := lt.Age(7, 25); age != 20 {
		t.Errorf("age = %d, want 20", age)
	}

	c.Record(NewEvent(EventRemoval, 30, 7, components.KindHungry))
	if lt.Get(7) != nil {
		t.Error("removed item should have no lifetime stats")
	}
}

func TestCollectorNilSafe(t *testing.T) {
	var c *Collector
	c.Record(NewMealEvent(1, 1, 2))
	if c.ShouldFlush(1000) {
		t.Error("nil collector should never flush")
	}
	if c.Count(EventMeal) != 0 || c.Lifetime() != nil {
		t.Error("nil collector should report nothing")
	}
}

func TestCollectorObserve(t *testing.T) {
	c := NewCollector(10)
	var seen []EventType
	c.Observe(func(ev Event) { seen = append(seen, ev.Type) })
	c.Observe(nil)

	c.Record(NewMealEvent(1, 1, 2))
	c.Record(NewBulletHitEvent(2, 3, 4))

	if len(seen) != 2 || seen[0] != EventMeal || seen[1] != EventBulletHit {
		t.Errorf("observed %v, want [meal bullet_hit]", seen)
	}

	var nilCollector *Collector
	nilCollector.Observe(func(Event) { t.Error("nil collector should not call observers") })
	nilCollector.Record(NewMealEvent(1, 1, 2))
}
