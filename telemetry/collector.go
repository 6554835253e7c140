package telemetry

import "github.com/pthm-cable/robotarena/components"

// Collector accumulates events within tick windows and produces WindowStats.
// A nil Collector ignores every call.
type Collector struct {
	windowTicks     int
	windowStartTick int

	counts    [eventTypeCount]int
	lifetime  *LifetimeTracker
	observers []func(Event)
}

// NewCollector creates a new stats collector flushing every windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{
		windowTicks: windowTicks,
		lifetime:    NewLifetimeTracker(),
	}
}

// Record counts an event in the current window and updates lifetime stats.
func (c *Collector) Record(ev Event) {
	if c == nil || ev.Type >= eventTypeCount {
		return
	}
	c.counts[ev.Type]++
	c.lifetime.Apply(ev)
	for _, fn := range c.observers {
		fn(ev)
	}
}

// Observe registers fn to receive every recorded event, in order.
func (c *Collector) Observe(fn func(Event)) {
	if c == nil || fn == nil {
		return
	}
	c.observers = append(c.observers, fn)
}

// Count returns the number of events of type t in the current window.
func (c *Collector) Count(t EventType) int {
	if c == nil || t >= eventTypeCount {
		return 0
	}
	return c.counts[t]
}

// Lifetime returns the per-item lifetime tracker.
func (c *Collector) Lifetime() *LifetimeTracker {
	if c == nil {
		return nil
	}
	return c.lifetime
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int) bool {
	if c == nil {
		return false
	}
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Sample holds the arena state measured at the end of a window.
type Sample struct {
	KindCounts  [components.NumKinds]int // Indexed by components.Kind
	Partying    int                      // Items currently in party mode
	HungryRadii []float64                // Radius of every hungry robot
	RobotSpeeds []float64                // Speed of every self-moving robot
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int, s Sample) WindowStats {
	if c == nil {
		return WindowStats{}
	}

	radiusMean, radiusStd, radiusP50, radiusMax := ComputeRadiusStats(s.HungryRadii)
	speedMean, _ := ComputeMeanStd(s.RobotSpeeds)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,

		Robots:         s.KindCounts[components.KindRobot],
		Hungry:         s.KindCounts[components.KindHungry],
		Controllable:   s.KindCounts[components.KindControllable],
		Whisker:        s.KindCounts[components.KindWhisker],
		Bullets:        s.KindCounts[components.KindBullet],
		Obstacles:      s.KindCounts[components.KindObstacle],
		PartyObstacles: s.KindCounts[components.KindPartyObstacle],
		Partying:       s.Partying,

		Meals:             c.counts[EventMeal],
		Infections:        c.counts[EventInfection],
		PartiesEnded:      c.counts[EventPartyEnded],
		BulletHits:        c.counts[EventBulletHit],
		BulletsExpired:    c.counts[EventBulletExpired],
		WallTurns:         c.counts[EventWallTurn],
		CollisionTurns:    c.counts[EventCollisionTurn],
		Placements:        c.counts[EventPlacement],
		PlacementFailures: c.counts[EventPlacementFailed],
		Removals:          c.counts[EventRemoval],

		HungryRadiusMean: radiusMean,
		HungryRadiusStd:  radiusStd,
		HungryRadiusP50:  radiusP50,
		HungryRadiusMax:  radiusMax,
		RobotSpeedMean:   speedMean,
	}

	c.windowStartTick = currentTick
	c.counts = [eventTypeCount]int{}

	return stats
}

// WindowTicks returns the number of ticks per window.
func (c *Collector) WindowTicks() int {
	if c == nil {
		return 0
	}
	return c.windowTicks
}
