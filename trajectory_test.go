package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// posOf(v) must equal applying getTransform() to v for any clock state
// (spec.md §8, trajectory laws).
func TestTrajectoryPosOfMatchesGetTransform(t *testing.T) {
	clock := NewClock(nil, 0)
	tr := NewTrajectory(clock, TranslateTransform(V2{X: 1, Y: 2}), TranslateTransform(V2{X: 1, Y: 0}))

	require.NoError(t, clock.RunTo(3))

	v := V2{X: 0.5, Y: -0.5}
	assert.Equal(t, tr.GetTransform().Apply(v), tr.PosOf(v))
}

func TestTrajectoryLinearMotion(t *testing.T) {
	clock := NewClock(nil, 0)
	tr := NewTrajectory(clock, TranslateTransform(V2{}), TranslateTransform(V2{X: 2, Y: 0}))

	require.NoError(t, clock.RunTo(3))
	pos := tr.GetTransform().Apply(V2{})
	assert.InDelta(t, 6.0, pos.X, 1e-9)
}

func TestTrajectoryTransformTo(t *testing.T) {
	clock := NewClock(nil, 0)
	tr := NewTrajectory(clock, IdentityTransform(), ZeroTransform())

	target := RotateTransform(1.0)
	tr.TransformTo(target, 2.0)

	require.NoError(t, clock.RunTo(2))
	got := tr.GetTransform()

	assert.InDelta(t, target.A.X, got.A.X, 1e-9)
	assert.InDelta(t, target.A.Y, got.A.Y, 1e-9)
	assert.InDelta(t, target.B.X, got.B.X, 1e-9)
	assert.InDelta(t, target.B.Y, got.B.Y, 1e-9)
}

func TestTrajectoryStopFreezesTransform(t *testing.T) {
	clock := NewClock(nil, 0)
	tr := NewTrajectory(clock, TranslateTransform(V2{}), TranslateTransform(V2{X: 5, Y: 0}))

	require.NoError(t, clock.RunTo(1))
	tr.Stop()
	frozen := tr.GetTransform()

	require.NoError(t, clock.RunTo(10))
	assert.Equal(t, frozen, tr.GetTransform())
}

func TestTrajectoryRotationLoopViaTransformTo(t *testing.T) {
	// Scenario 3, spec.md §8: a loop every dt=0.1 calling
	// transformTo(rotate(angle+dt), dt) should track rotate(t) closely.
	clock := NewClock(nil, 0)
	tr := NewTrajectory(clock, IdentityTransform(), ZeroTransform())

	const dt = 0.1
	angle := 0.0

	var tick func(*Clock)
	tick = func(c *Clock) {
		angle += dt
		tr.TransformTo(RotateTransform(angle), dt)
		if angle < 1.0-1e-9 {
			Schedule(c, c.Time()+dt, tick)
		}
	}
	Schedule(clock, 0, tick)

	require.NoError(t, clock.RunTo(1.0))

	want := RotateTransform(1.0)
	got := tr.GetTransform()
	assert.InDelta(t, want.A.X, got.A.X, 1e-6)
	assert.InDelta(t, want.A.Y, got.A.Y, 1e-6)
}
