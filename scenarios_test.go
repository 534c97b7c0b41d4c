package physics

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario 1, spec.md §8: two free squares closing head-on collide exactly
// once and swap velocities under restitution 1, weights 1/1.
func TestScenarioHeadOnElastic(t *testing.T) {
	clock := NewClock(nil, 0)

	a := NewPhysicsObject(clock, unitSquare(), NewTrajectory(clock, TranslateTransform(V2{X: -2, Y: 0}), Transform{P: V2{X: 1, Y: 0}}))
	b := NewPhysicsObject(clock, unitSquare(), NewTrajectory(clock, TranslateTransform(V2{X: 2, Y: 0}), Transform{P: V2{X: -1, Y: 0}}))

	bodies := NewCollisionGroup("bodies")
	bodies.Add(a)
	bodies.Add(b)

	var contacts []float64
	NewCollisionRule(bodies, bodies, DefaultToleranceProfile(), true, func(c *Collision) {
		contacts = append(contacts, c.Time)
		c.Resolve(0, 1, 1, 1)
	})

	require.NoError(t, clock.RunTo(1.5))

	require.Len(t, contacts, 1)
	assert.InDelta(t, 1.0, contacts[0], 1e-6)

	assert.InDelta(t, -1.0, a.Trajectory.GetMotion().P.X, 1e-6)
	assert.InDelta(t, 1.0, b.Trajectory.GetMotion().P.X, 1e-6)
}

// Scenario 2, spec.md §8: a falling square comes to rest on a floor edge;
// with restitution 0 and a small positive additionalVel, it separates
// again at exactly that speed rather than embedding in the floor.
func TestScenarioFloorRest(t *testing.T) {
	clock := NewClock(nil, 0)

	// The floor edge runs from +x to -x so that its solid side (the Perp
	// side of the edge) lies below it.
	floor := NewPhysicsObject(clock, NewGeometryBuilder().To(V2{X: 10, Y: 0}, V2{X: -10, Y: 0}).Finish(),
		NewTrajectory(clock, IdentityTransform(), ZeroTransform()))
	square := NewPhysicsObject(clock, unitSquare(),
		NewTrajectory(clock, TranslateTransform(V2{X: 0, Y: 2}), Transform{P: V2{X: 0, Y: -1}}))

	floors := NewCollisionGroup("floors")
	floors.Add(floor)
	squares := NewCollisionGroup("squares")
	squares.Add(square)

	const eps = 0.05
	var contactTime float64
	var fired bool
	NewCollisionRule(floors, squares, DefaultToleranceProfile(), true, func(c *Collision) {
		fired = true
		contactTime = c.Time
		if c.ObjA == floor {
			c.Resolve(eps, 0, 0, 1)
		} else {
			c.Resolve(eps, 0, 1, 0)
		}
	})

	require.NoError(t, clock.RunTo(2))

	require.True(t, fired)
	assert.InDelta(t, 1.0, contactTime, 1e-6)
	assert.InDelta(t, eps, square.Trajectory.GetMotion().P.Y, 1e-9)
	assert.Equal(t, ZeroTransform(), floor.Trajectory.GetMotion())
}

// Scenario 4, spec.md §8: invalidating an already-scheduled event leaves
// events before and after it unaffected.
func TestScenarioInvalidatedEventSkipsOnlyThatEvent(t *testing.T) {
	clock := NewClock(nil, 0)
	var ran []string

	Schedule(clock, 1, func(*Clock) { ran = append(ran, "A") })
	eventB := Schedule(clock, 2, func(*Clock) { ran = append(ran, "B") })
	Schedule(clock, 3, func(*Clock) { ran = append(ran, "C") })

	require.NoError(t, clock.RunTo(1))
	assert.Equal(t, []string{"A"}, ran)

	eventB.Cancel()

	require.NoError(t, clock.RunTo(4))
	assert.Equal(t, []string{"A", "C"}, ran)
}

// Scenario 6, spec.md §8: a candidate minted while both participants
// shared a lastRecalculation must be discarded, not solved, once the
// other participant has recalculated again in the meantime (spec.md
// §4.7 step 2c). Exercised directly against addCollisions: a candidate
// positioned for a genuine future contact is pushed onto mover's
// recalcHeap, third's lastRecalculation is advanced past mover's, and
// addCollisions must skip it without scheduling anything.
func TestScenarioStaleCandidateSkippedAfterMutation(t *testing.T) {
	clock := NewClock(nil, 0)

	mover := NewPhysicsObject(clock, unitSquare(), NewTrajectory(clock, TranslateTransform(V2{X: -2, Y: 0}), TranslateTransform(V2{X: 1, Y: 0})))
	third := NewPhysicsObject(clock, unitSquare(), NewTrajectory(clock, TranslateTransform(V2{X: 2, Y: 0}), TranslateTransform(V2{X: -1, Y: 0})))

	movers := NewCollisionGroup("movers")
	movers.Add(mover)
	thirds := NewCollisionGroup("thirds")
	thirds.Add(third)
	rule := NewCollisionRule(movers, thirds, DefaultToleranceProfile(), true, func(*Collision) {})

	mover.lastRecalculation = 1
	third.lastRecalculation = 1

	k := newCandidate(mover, third, rule)
	require.NotNil(t, k, "mover and third must be on a genuine collision course")
	heap.Push(&mover.recalcHeap, k)

	// third recalculates again on its own (e.g. from an unrelated mutation),
	// advancing past the cycle the candidate was minted under.
	third.lastRecalculation = 2

	mover.addCollisions()

	assert.Empty(t, mover.events)
	assert.Empty(t, third.events)
}
