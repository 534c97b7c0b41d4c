package physics

import "math"

// boundsEnvelope holds the eight scalars spec.md §4.5 derives from an
// object's four AABB corners: componentwise min/max of world position and
// world velocity.
type boundsEnvelope struct {
	xMin, xMinVel float64
	xMax, xMaxVel float64
	yMin, yMinVel float64
	yMax, yMaxVel float64
}

// computeBounds derives obj's boundsEnvelope at the clock's current time
// (spec.md §4.5).
//
// Grounded on bbtree.go's bbTreeMergedArea/bbProxy machinery, which also
// reduces four corner extents to a single box per update; here the
// reduction additionally carries a velocity extent, since the box itself
// is swept forward rather than recomputed every fixed step.
func computeBounds(obj *PhysicsObject) boundsEnvelope {
	xform := obj.Trajectory.GetTransform()
	motion := obj.Trajectory.GetMotion()

	e := boundsEnvelope{
		xMin: Infinity, xMax: -Infinity,
		yMin: Infinity, yMax: -Infinity,
		xMinVel: Infinity, xMaxVel: -Infinity,
		yMinVel: Infinity, yMaxVel: -Infinity,
	}
	for _, c := range obj.Geometry.Bounds.Corners() {
		pos := xform.Apply(c)
		vel := motion.Apply(c)

		e.xMin, e.xMinVel = math.Min(e.xMin, pos.X), math.Min(e.xMinVel, vel.X)
		e.xMax, e.xMaxVel = math.Max(e.xMax, pos.X), math.Max(e.xMaxVel, vel.X)
		e.yMin, e.yMinVel = math.Min(e.yMin, pos.Y), math.Min(e.yMinVel, vel.Y)
		e.yMax, e.yMaxVel = math.Max(e.yMax, pos.Y), math.Max(e.yMaxVel, vel.Y)
	}
	return e
}

// axisInterval solves alo + t*alovel <= bhi + t*bhivel for t, intersected
// with [lo, hi]. Returns ok=false if the resulting interval is empty.
func axisInterval(lo, hi float64, aLo, aLoVel, bHi, bHiVel float64) (float64, float64, bool) {
	// aLo + t*aLoVel <= bHi + t*bHiVel  =>  (aLoVel - bHiVel)*t <= bHi - aLo
	coeff := aLoVel - bHiVel
	rhs := bHi - aLo
	switch {
	case coeff == 0:
		if rhs < 0 {
			return 0, 0, false
		}
		return lo, hi, true
	case coeff > 0:
		bound := rhs / coeff
		if bound < lo {
			return 0, 0, false
		}
		return lo, math.Min(hi, bound), true
	default:
		bound := rhs / coeff
		if bound > hi {
			return 0, 0, false
		}
		return math.Max(lo, bound), hi, true
	}
}

// sweptOverlap intersects the four inequalities from spec.md §4.5 and
// returns the earliest t >= 0 at which a and b's swept AABBs could
// overlap, or ok=false if they never do.
func sweptOverlap(a, b boundsEnvelope) (float64, bool) {
	lo, hi := 0.0, Infinity

	lo, hi, ok := axisInterval(lo, hi, a.xMin, a.xMinVel, b.xMax, b.xMaxVel)
	if !ok {
		return 0, false
	}
	lo, hi, ok = axisInterval(lo, hi, b.xMin, b.xMinVel, a.xMax, a.xMaxVel)
	if !ok {
		return 0, false
	}
	lo, hi, ok = axisInterval(lo, hi, a.yMin, a.yMinVel, b.yMax, b.yMaxVel)
	if !ok {
		return 0, false
	}
	lo, _, ok = axisInterval(lo, hi, b.yMin, b.yMinVel, a.yMax, a.yMaxVel)
	if !ok {
		return 0, false
	}
	return lo, true
}

// collisionCandidate is a pending (a, b) pairing awaiting exact solving,
// ordered by EarliestTime within a PhysicsObject's recalcHeap/otherHeap
// (spec.md §4.7).
type collisionCandidate struct {
	A, B          *PhysicsObject
	EarliestTime  float64
	Rule          *CollisionRule
	Recalculating bool
	index         int
}

// newCandidate produces the candidate for ordered pair (a, b) under rule
// at the clock's current time, or nil if their swept bounds never overlap
// (spec.md §4.5).
func newCandidate(a, b *PhysicsObject, rule *CollisionRule) *collisionCandidate {
	now := a.clock.Time()
	boundsA := computeBounds(a)
	boundsB := computeBounds(b)

	dt, ok := sweptOverlap(boundsA, boundsB)
	if !ok {
		return nil
	}
	return &collisionCandidate{
		A:             a,
		B:             b,
		EarliestTime:  now + dt,
		Rule:          rule,
		Recalculating: rule.recalculatingFor(a, b),
	}
}

type candidateHeap []*collisionCandidate

func (h candidateHeap) Len() int { return len(h) }
func (h candidateHeap) Less(i, j int) bool {
	return h[i].EarliestTime < h[j].EarliestTime
}
func (h candidateHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index, h[j].index = i, j
}
func (h *candidateHeap) Push(x interface{}) {
	c := x.(*collisionCandidate)
	c.index = len(*h)
	*h = append(*h, c)
}
func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	c := old[n-1]
	old[n-1] = nil
	c.index = -1
	*h = old[:n-1]
	return c
}
