// Package geom provides the line segment math used for whisker sensing.
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// ParallelEpsilon is the slope difference below which two segments are treated as parallel.
	ParallelEpsilon = 1e-5

	// NoIntersection is returned by DistanceToIntersection when the segments do not meet.
	NoIntersection = 1e8

	// boundsTolerance absorbs rounding when an intersection lands exactly on an endpoint.
	boundsTolerance = 1e-9
)

// Segment is a line segment between A and B. Derived values are computed on demand.
type Segment struct {
	A, B r2.Vec
}

// NewSegment builds a segment from raw coordinates.
func NewSegment(x1, y1, x2, y2 float64) Segment {
	return Segment{A: r2.Vec{X: x1, Y: y1}, B: r2.Vec{X: x2, Y: y2}}
}

// IsVertical reports whether both endpoints share an x coordinate.
func (s Segment) IsVertical() bool {
	return s.A.X == s.B.X
}

// Gradient returns the slope. Vertical segments report +Inf.
func (s Segment) Gradient() float64 {
	if s.IsVertical() {
		return math.Inf(1)
	}
	return (s.B.Y - s.A.Y) / (s.B.X - s.A.X)
}

// Intercept returns the y-intercept of the infinite line. Vertical segments report NaN.
func (s Segment) Intercept() float64 {
	if s.IsVertical() {
		return math.NaN()
	}
	return s.A.Y - s.Gradient()*s.A.X
}

// Length returns the Euclidean length.
func (s Segment) Length() float64 {
	return r2.Norm(r2.Sub(s.B, s.A))
}

// contains reports whether p lies within the segment's bounding range.
func (s Segment) contains(p r2.Vec) bool {
	minX, maxX := math.Min(s.A.X, s.B.X), math.Max(s.A.X, s.B.X)
	minY, maxY := math.Min(s.A.Y, s.B.Y), math.Max(s.A.Y, s.B.Y)
	return p.X >= minX-boundsTolerance && p.X <= maxX+boundsTolerance &&
		p.Y >= minY-boundsTolerance && p.Y <= maxY+boundsTolerance
}

// Intersect returns the intersection point of a and b if it lies within both segments.
// Parallel and near-parallel segments never intersect, including coincident ones.
func Intersect(a, b Segment) (r2.Vec, bool) {
	var p r2.Vec
	switch av, bv := a.IsVertical(), b.IsVertical(); {
	case av && bv:
		return r2.Vec{}, false
	case av:
		p = r2.Vec{X: a.A.X, Y: b.Gradient()*a.A.X + b.Intercept()}
	case bv:
		p = r2.Vec{X: b.A.X, Y: a.Gradient()*b.A.X + a.Intercept()}
	default:
		m1, c1 := a.Gradient(), a.Intercept()
		m2, c2 := b.Gradient(), b.Intercept()
		d := m1 - m2
		if math.Abs(d) < ParallelEpsilon {
			return r2.Vec{}, false
		}
		// Swapping a and b negates both numerators and the denominator.
		p = r2.Vec{X: (c2 - c1) / d, Y: (m1*c2 - m2*c1) / d}
	}
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
		return r2.Vec{}, false
	}
	if !a.contains(p) || !b.contains(p) {
		return r2.Vec{}, false
	}
	return p, true
}

// Intersects reports whether s and o cross within both segments.
func (s Segment) Intersects(o Segment) bool {
	_, ok := Intersect(s, o)
	return ok
}

// DistanceToIntersection returns the distance from s.A to the intersection with o,
// or NoIntersection.
func (s Segment) DistanceToIntersection(o Segment) float64 {
	p, ok := Intersect(s, o)
	if !ok {
		return NoIntersection
	}
	return r2.Norm(r2.Sub(p, s.A))
}

// DistanceFrom returns the shortest distance from p to the segment.
func (s Segment) DistanceFrom(p r2.Vec) float64 {
	d := r2.Sub(s.B, s.A)
	l2 := r2.Norm2(d)
	if l2 == 0 {
		return r2.Norm(r2.Sub(p, s.A))
	}
	t := r2.Dot(r2.Sub(p, s.A), d) / l2
	if t >= 0 && t <= 1 {
		foot := r2.Add(s.A, r2.Scale(t, d))
		return r2.Norm(r2.Sub(p, foot))
	}
	return math.Min(r2.Norm(r2.Sub(p, s.A)), r2.Norm(r2.Sub(p, s.B)))
}

// Border returns the four edges of a w x h rectangle anchored at the origin:
// top, left, bottom, right.
func Border(w, h float64) [4]Segment {
	return [4]Segment{
		NewSegment(0, 0, w, 0),
		NewSegment(0, 0, 0, h),
		NewSegment(0, h, w, h),
		NewSegment(w, 0, w, h),
	}
}
