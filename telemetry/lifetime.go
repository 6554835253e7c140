package telemetry

// LifetimeStats tracks per-item statistics over its lifetime.
type LifetimeStats struct {
	BirthTick int

	Meals          int // hungry robots only
	Infections     int
	WallTurns      int
	CollisionTurns int
}

// LifetimeTracker manages per-item lifetime statistics.
type LifetimeTracker struct {
	stats map[uint32]*LifetimeStats
}

// NewLifetimeTracker creates a new lifetime tracker.
func NewLifetimeTracker() *LifetimeTracker {
	return &LifetimeTracker{
		stats: make(map[uint32]*LifetimeStats),
	}
}

// Register creates lifetime stats for a new item.
func (lt *LifetimeTracker) Register(id uint32, birthTick int) {
	lt.stats[id] = &LifetimeStats{BirthTick: birthTick}
}

// Get returns the lifetime stats for an item, or nil if not found.
func (lt *LifetimeTracker) Get(id uint32) *LifetimeStats {
	if lt == nil {
		return nil
	}
	return lt.stats[id]
}

// Remove removes an item's stats and returns them.
func (lt *LifetimeTracker) Remove(id uint32) *LifetimeStats {
	stats := lt.stats[id]
	delete(lt.stats, id)
	return stats
}

// Apply updates the stats named by an event.
func (lt *LifetimeTracker) Apply(ev Event) {
	switch ev.Type {
	case EventPlacement:
		lt.Register(ev.EntityID, ev.Tick)
		return
	case EventRemoval:
		lt.Remove(ev.EntityID)
		return
	}

	s := lt.stats[ev.EntityID]
	if s == nil {
		return
	}
	switch ev.Type {
	case EventMeal:
		s.Meals++
	case EventInfection:
		s.Infections++
	case EventWallTurn:
		s.WallTurns++
	case EventCollisionTurn:
		s.CollisionTurns++
	}
}

// Count returns the number of tracked items.
func (lt *LifetimeTracker) Count() int {
	return len(lt.stats)
}

// Age returns how many ticks an item has been tracked.
func (lt *LifetimeTracker) Age(id uint32, currentTick int) int {
	if s := lt.Get(id); s != nil {
		return currentTick - s.BirthTick
	}
	return 0
}
