package physics

import (
	"container/heap"

	"github.com/google/uuid"
)

// PhysicsObject binds a Geometry and a Trajectory into something that can
// participate in collisions, and owns the recalculation engine that keeps
// its scheduled contact events current (spec.md §4.7).
//
// Grounded on body.go's Body, which likewise pairs shape data with motion
// state and a list of owned arbiters; recalcHeap/otherHeap/events replace
// Body's arbiter list with the candidate-driven bookkeeping the exact
// solver needs.
type PhysicsObject struct {
	ID uuid.UUID

	Geometry   *Geometry
	Trajectory *Trajectory

	clock  *Clock
	groups []*CollisionGroup

	enabled bool

	recalcHeap candidateHeap
	otherHeap  candidateHeap

	nextProbableRecalculation float64
	lastRecalculation         uint64
	lastRecalcCycleQueued     uint64
	queuedThisCycle           bool

	events []*ClockEvent
}

// NewPhysicsObject constructs an enabled PhysicsObject sharing geometry
// and trajectory, subscribing to both so future mutations trigger
// recalculation.
func NewPhysicsObject(clock *Clock, geometry *Geometry, trajectory *Trajectory) *PhysicsObject {
	obj := &PhysicsObject{
		ID:                        newID(),
		Geometry:                  geometry,
		Trajectory:                trajectory,
		clock:                     clock,
		enabled:                   true,
		nextProbableRecalculation: Infinity,
	}
	geometry.addDependant(obj)
	trajectory.addDependant(obj)
	obj.queueCollisionRecalculation()
	return obj
}

// Enabled reports whether the object currently participates in collision
// solving.
func (obj *PhysicsObject) Enabled() bool { return obj.enabled }

// SetEnabled toggles participation. Disabling invalidates every owned
// event and empties both heaps; enabling triggers a fresh recalculation.
func (obj *PhysicsObject) SetEnabled(enabled bool) {
	if obj.enabled == enabled {
		return
	}
	obj.enabled = enabled
	if !enabled {
		obj.invalidateOwnedEvents()
		obj.recalcHeap = obj.recalcHeap[:0]
		obj.otherHeap = obj.otherHeap[:0]
		return
	}
	obj.queueCollisionRecalculation()
}

// Release unsubscribes obj from its geometry, trajectory, and every
// group, and invalidates every owned event. Callers must not reuse obj
// afterward (spec.md §5).
func (obj *PhysicsObject) Release() {
	obj.invalidateOwnedEvents()
	obj.Geometry.removeDependant(obj)
	obj.Trajectory.removeDependant(obj)
	for _, g := range append([]*CollisionGroup(nil), obj.groups...) {
		g.Remove(obj)
	}
}

func (obj *PhysicsObject) addGroup(g *CollisionGroup) {
	obj.groups = append(obj.groups, g)
}

func (obj *PhysicsObject) removeGroup(g *CollisionGroup) {
	for i, o := range obj.groups {
		if o == g {
			obj.groups = append(obj.groups[:i], obj.groups[i+1:]...)
			return
		}
	}
}

// queueCollisionRecalculation is idempotent within a cycle: repeated
// calls during the same clock.cycle enqueue only one preprocess (spec.md
// §4.7).
func (obj *PhysicsObject) queueCollisionRecalculation() {
	cycle := obj.clock.Cycle()
	if obj.queuedThisCycle && obj.lastRecalcCycleQueued == cycle {
		return
	}
	obj.queuedThisCycle = true
	obj.lastRecalcCycleQueued = cycle
	obj.clock.AddPreprocess(func(*Clock) {
		obj.queuedThisCycle = false
		obj.recalculateCollisions()
	})
}

func (obj *PhysicsObject) invalidateOwnedEvents() {
	for _, e := range obj.events {
		e.Cancel()
	}
	obj.events = obj.events[:0]
}

// recalculateCollisions rebuilds obj's candidate heaps from scratch and
// re-runs addCollisions (spec.md §4.7).
func (obj *PhysicsObject) recalculateCollisions() {
	if !obj.enabled {
		return
	}

	obj.invalidateOwnedEvents()
	obj.recalcHeap = obj.recalcHeap[:0]
	obj.otherHeap = obj.otherHeap[:0]
	obj.lastRecalculation = obj.clock.Cycle()

	for _, g := range obj.groups {
		for _, r := range g.rules {
			if !r.Enabled() {
				continue
			}
			for _, other := range r.opposingMembers(obj) {
				if !other.enabled {
					continue
				}
				c := newCandidate(obj, other, r)
				if c == nil {
					continue
				}
				if c.Recalculating {
					heap.Push(&obj.recalcHeap, c)
				} else {
					heap.Push(&obj.otherHeap, c)
				}
			}
		}
	}

	obj.addCollisions()
}

// addCollisions performs the batched emission algorithm of spec.md §4.7.
func (obj *PhysicsObject) addCollisions() {
	earliest := obj.nextProbableRecalculation
	obj.nextProbableRecalculation = Infinity

	for {
		if obj.recalcHeap.Len() == 0 {
			break
		}
		k := obj.recalcHeap[0]

		if earliest < k.EarliestTime {
			wakeAt := k.EarliestTime
			e := Schedule(obj.clock, wakeAt, func(*Clock) { obj.addCollisions() })
			obj.events = append(obj.events, e)
			break
		}

		heap.Pop(&obj.recalcHeap)

		if maxUint64(k.A.lastRecalculation, k.B.lastRecalculation) != obj.lastRecalculation {
			continue
		}

		events := obj.solveCandidate(k)
		for _, ev := range events {
			if ev.Time < obj.clock.Time() {
				continue
			}
			e := Schedule(obj.clock, ev.Time, obj.emitCollision(ev))
			obj.events = append(obj.events, e)
			k.B.events = append(k.B.events, e)

			if ev.Time < earliest {
				earliest = ev.Time
			}
			obj.nextProbableRecalculation = minFloat(obj.nextProbableRecalculation, ev.Time)
			k.B.nextProbableRecalculation = minFloat(k.B.nextProbableRecalculation, ev.Time)
		}
	}

	for obj.otherHeap.Len() > 0 && obj.otherHeap[0].EarliestTime <= earliest {
		k := heap.Pop(&obj.otherHeap).(*collisionCandidate)
		events := obj.solveCandidate(k)
		for _, ev := range events {
			if ev.Time < obj.clock.Time() {
				continue
			}
			e := Schedule(obj.clock, ev.Time, obj.emitCollision(ev))
			obj.events = append(obj.events, e)
			k.B.events = append(k.B.events, e)
		}
	}
}

// solveCandidate runs the exact solver in both vertex/edge orderings
// between the candidate's two objects.
func (obj *PhysicsObject) solveCandidate(k *collisionCandidate) []*Collision {
	var out []*Collision
	for _, v := range k.A.Geometry.Vertices {
		for _, e := range k.B.Geometry.Edges {
			out = append(out, solveVertexEdge(k.B, k.A, e, v, k.Rule.Tol, true)...)
		}
	}
	for _, v := range k.B.Geometry.Vertices {
		for _, e := range k.A.Geometry.Edges {
			out = append(out, solveVertexEdge(k.A, k.B, e, v, k.Rule.Tol, false)...)
		}
	}
	return out
}

func (obj *PhysicsObject) emitCollision(col *Collision) func(*Clock) {
	rule := obj.ruleFor(col)
	return func(*Clock) {
		if rule != nil && rule.Callback != nil {
			rule.Callback(col)
		}
	}
}

func (obj *PhysicsObject) ruleFor(col *Collision) *CollisionRule {
	for _, g := range obj.groups {
		for _, r := range g.rules {
			if !r.Enabled() {
				continue
			}
			if r.pairs(col.ObjA, col.ObjB) {
				return r
			}
		}
	}
	return nil
}

func maxUint64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
