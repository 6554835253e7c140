package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a tick window.
type WindowStats struct {
	WindowStartTick int `csv:"-"`
	WindowEndTick   int `csv:"window_end"`

	// Population at window end
	Robots         int `csv:"robots"`
	Hungry         int `csv:"hungry"`
	Controllable   int `csv:"controllable"`
	Whisker        int `csv:"whisker"`
	Bullets        int `csv:"bullets"`
	Obstacles      int `csv:"obstacles"`
	PartyObstacles int `csv:"party_obstacles"`
	Partying       int `csv:"partying"`

	// Events during window
	Meals             int `csv:"meals"`
	Infections        int `csv:"infections"`
	PartiesEnded      int `csv:"parties_ended"`
	BulletHits        int `csv:"bullet_hits"`
	BulletsExpired    int `csv:"bullets_expired"`
	WallTurns         int `csv:"wall_turns"`
	CollisionTurns    int `csv:"collision_turns"`
	Placements        int `csv:"placements"`
	PlacementFailures int `csv:"placement_failures"`
	Removals          int `csv:"removals"`

	// Hungry robot size distribution (sampled at window end)
	HungryRadiusMean float64 `csv:"hungry_radius_mean"`
	HungryRadiusStd  float64 `csv:"hungry_radius_std"`
	HungryRadiusP50  float64 `csv:"hungry_radius_p50"`
	HungryRadiusMax  float64 `csv:"hungry_radius_max"`

	RobotSpeedMean float64 `csv:"robot_speed_mean"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeMeanStd returns the mean and population standard deviation.
func ComputeMeanStd(values []float64) (mean, std float64) {
	switch len(values) {
	case 0:
		return 0, 0
	case 1:
		return values[0], 0
	}
	mean = stat.Mean(values, nil)
	std = stat.PopStdDev(values, nil)
	return mean, std
}

// ComputeRadiusStats calculates mean, std, median and maximum of radius values.
func ComputeRadiusStats(values []float64) (mean, std, p50, max float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}
	mean, std = ComputeMeanStd(values)

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return mean, std, Percentile(sorted, 0.5), floats.Max(sorted)
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", s.WindowStartTick),
		slog.Int("window_end", s.WindowEndTick),
		slog.Int("robots", s.Robots),
		slog.Int("hungry", s.Hungry),
		slog.Int("controllable", s.Controllable),
		slog.Int("whisker", s.Whisker),
		slog.Int("bullets", s.Bullets),
		slog.Int("obstacles", s.Obstacles),
		slog.Int("party_obstacles", s.PartyObstacles),
		slog.Int("partying", s.Partying),
		slog.Int("meals", s.Meals),
		slog.Int("infections", s.Infections),
		slog.Int("bullet_hits", s.BulletHits),
		slog.Int("wall_turns", s.WallTurns),
		slog.Int("collision_turns", s.CollisionTurns),
		slog.Float64("hungry_radius_mean", s.HungryRadiusMean),
		slog.Float64("hungry_radius_max", s.HungryRadiusMax),
		slog.Float64("robot_speed_mean", s.RobotSpeedMean),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"robots", s.Robots,
		"hungry", s.Hungry,
		"controllable", s.Controllable,
		"whisker", s.Whisker,
		"bullets", s.Bullets,
		"obstacles", s.Obstacles,
		"party_obstacles", s.PartyObstacles,
		"partying", s.Partying,
		"meals", s.Meals,
		"infections", s.Infections,
		"parties_ended", s.PartiesEnded,
		"bullet_hits", s.BulletHits,
		"bullets_expired", s.BulletsExpired,
		"wall_turns", s.WallTurns,
		"collision_turns", s.CollisionTurns,
		"placements", s.Placements,
		"placement_failures", s.PlacementFailures,
		"removals", s.Removals,
		"hungry_radius_mean", s.HungryRadiusMean,
		"hungry_radius_std", s.HungryRadiusStd,
		"hungry_radius_p50", s.HungryRadiusP50,
		"hungry_radius_max", s.HungryRadiusMax,
		"robot_speed_mean", s.RobotSpeedMean,
	)
}
