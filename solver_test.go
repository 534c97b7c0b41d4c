package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Static tangency (spec.md §8): a vertex resting exactly on an edge with
// zero relative velocity yields a collision at clock.time via the
// close-collision shortcut. The probe vertex's tangents are chosen so all
// five acceptance tests pass analytically at the contact point (0, -1) on
// the square's bottom edge.
func TestSolverStaticTangency(t *testing.T) {
	clock := NewClock(nil, 0)

	square := unitSquare()
	squareObj := NewPhysicsObject(clock, square, NewTrajectory(clock, IdentityTransform(), ZeroTransform()))

	probeGeom := &Geometry{Vertices: []Vertex{{P: V2{X: 0, Y: -1}, T0: V2{X: -1, Y: 0}, T1: V2{X: 0, Y: -1}}}}
	probeGeom.recomputeBounds()
	probeObj := NewPhysicsObject(clock, probeGeom, NewTrajectory(clock, IdentityTransform(), ZeroTransform()))

	bottomEdge := findEdge(square, V2{X: -1, Y: -1}, V2{X: 1, Y: -1})
	cols := solveVertexEdge(squareObj, probeObj, bottomEdge, probeGeom.Vertices[0], DefaultToleranceProfile(), false)

	require.NotEmpty(t, cols)
	assert.InDelta(t, clock.Time(), cols[0].Time, 1e-9)
}

func findEdge(g *Geometry, p0, p1 V2) Edge {
	for _, e := range g.Edges {
		if e.P0 == p0 && e.P1 == p1 {
			return e
		}
	}
	panic("edge not found")
}

// No-collision monotonicity (spec.md §8): bounding boxes that never
// overlap over the query window never produce a candidate.
func TestCandidateNoOverlapEverProducesNil(t *testing.T) {
	clock := NewClock(nil, 0)

	a := NewPhysicsObject(clock, unitSquare(), NewTrajectory(clock, TranslateTransform(V2{X: -100, Y: 0}), ZeroTransform()))
	b := NewPhysicsObject(clock, unitSquare(), NewTrajectory(clock, TranslateTransform(V2{X: 100, Y: 0}), ZeroTransform()))

	rule := NewCollisionRule(NewCollisionGroup("a"), NewCollisionGroup("b"), DefaultToleranceProfile(), false, nil)
	c := newCandidate(a, b, rule)
	assert.Nil(t, c)
}

// Restitution limits (spec.md §8): restitution 1, additionalVel 0,
// symmetric weights preserve relative normal speed magnitude and flip its
// sign.
func TestResolveRestitutionOneIsElastic(t *testing.T) {
	clock := NewClock(nil, 0)
	a := NewPhysicsObject(clock, unitSquare(), NewTrajectory(clock, TranslateTransform(V2{X: -2, Y: 0}), TranslateTransform(V2{X: 1, Y: 0})))
	b := NewPhysicsObject(clock, unitSquare(), NewTrajectory(clock, TranslateTransform(V2{X: 2, Y: 0}), TranslateTransform(V2{X: -1, Y: 0})))

	relVel := V2{X: -1, Y: 0}.Sub(V2{X: 1, Y: 0}) // b's velocity relative to a
	col := &Collision{
		Tangent: V2{X: 0, Y: 1},
		RelVel:  relVel,
		ObjA:    a,
		ObjB:    b,
	}

	beforeA := a.Trajectory.GetMotion().P
	beforeB := b.Trajectory.GetMotion().P

	col.Resolve(0, 1, 1, 1)

	afterA := a.Trajectory.GetMotion().P
	afterB := b.Trajectory.GetMotion().P

	closingBefore := beforeA.Sub(beforeB).Dot(V2{X: 1, Y: 0})
	closingAfter := afterA.Sub(afterB).Dot(V2{X: 1, Y: 0})

	assert.InDelta(t, -closingBefore, closingAfter, 1e-9)

	// Equal masses, head-on, restitution 1: velocities fully swap.
	assert.InDelta(t, -1.0, afterA.X, 1e-9)
	assert.InDelta(t, 1.0, afterB.X, 1e-9)
}

// Pinning (spec.md §8): weightA = 0 leaves A's motion untouched by
// resolve.
func TestResolvePinningLeavesAUnchanged(t *testing.T) {
	clock := NewClock(nil, 0)
	a := NewPhysicsObject(clock, unitSquare(), NewTrajectory(clock, TranslateTransform(V2{}), ZeroTransform()))
	b := NewPhysicsObject(clock, unitSquare(), NewTrajectory(clock, TranslateTransform(V2{X: 4, Y: 0}), TranslateTransform(V2{X: -1, Y: 0})))

	col := &Collision{
		Tangent: V2{X: 0, Y: 1},
		RelVel:  V2{X: -1, Y: 0},
		ObjA:    a,
		ObjB:    b,
	}

	before := a.Trajectory.GetMotion()
	col.Resolve(0.1, 0, 0, 1)
	after := a.Trajectory.GetMotion()

	assert.Equal(t, before, after)
}

func TestWeightedVelBlendsTowardB(t *testing.T) {
	col := &Collision{
		Vel:    V2{X: 0, Y: 0},
		RelVel: V2{X: 10, Y: 0},
	}
	blended := col.WeightedVel(1, 1)
	assert.Equal(t, V2{X: 5, Y: 0}, blended)
}
