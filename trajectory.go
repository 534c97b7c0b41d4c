package physics

// Trajectory is a time-parameterized affine transform: base, motion, and
// an anchorTime, the object's world transform at time t being
// base + (t - anchorTime) * motion (spec.md §3, §4.2).
//
// Grounded on body.go's Body, whose SetPosition/SetVelocity/SetAngle all
// funnel through an Activate-then-mutate pattern that wakes dependants;
// Trajectory generalizes that into the normalize-then-mutate modify()
// pipeline spec.md §4.2 requires, since there is no physical integrator
// here to "wake" — mutation itself is what needs to fan out to dependants.
type Trajectory struct {
	clock *Clock

	base       Transform
	motion     Transform
	anchorTime float64

	dependants []*PhysicsObject
}

// NewTrajectory constructs a Trajectory anchored at the clock's current
// time.
func NewTrajectory(clock *Clock, base, motion Transform) *Trajectory {
	return &Trajectory{
		clock:      clock,
		base:       base,
		motion:     motion,
		anchorTime: clock.Time(),
	}
}

// GetTransform returns the world transform at the clock's current time
// without mutating anything (spec.md §4.2).
func (tr *Trajectory) GetTransform() Transform {
	dt := tr.clock.Time() - tr.anchorTime
	return tr.base.AddScaled(tr.motion, dt)
}

// GetMotion returns a copy of the trajectory's current motion.
func (tr *Trajectory) GetMotion() Transform {
	return tr.motion.Copy()
}

// modify normalizes base to the current instant, runs fn against base and
// motion, then queues a collision recalculation for every dependant
// (spec.md §4.2).
func (tr *Trajectory) modify(fn func(base, motion *Transform)) {
	now := tr.clock.Time()
	tr.base = tr.base.AddScaled(tr.motion, now-tr.anchorTime)
	tr.anchorTime = now

	fn(&tr.base, &tr.motion)

	for _, obj := range tr.dependants {
		obj.queueCollisionRecalculation()
	}
}

// SetTransform replaces base outright without normalizing — the caller is
// setting absolute state, not nudging it. If motion is nil the current
// motion is kept.
func (tr *Trajectory) SetTransform(base Transform, motion *Transform) {
	tr.base = base
	tr.anchorTime = tr.clock.Time()
	if motion != nil {
		tr.motion = *motion
	}
	for _, obj := range tr.dependants {
		obj.queueCollisionRecalculation()
	}
}

// SetMotion replaces motion via modify.
func (tr *Trajectory) SetMotion(m Transform) {
	tr.modify(func(_, motion *Transform) { *motion = m })
}

// Translate adds v to base.P via modify.
func (tr *Trajectory) Translate(v V2) {
	tr.modify(func(base, _ *Transform) { base.P = base.P.Add(v) })
}

// SetPos replaces base.P via modify.
func (tr *Trajectory) SetPos(v V2) {
	tr.modify(func(base, _ *Transform) { base.P = v })
}

// Impulse adds v to motion.P via modify.
func (tr *Trajectory) Impulse(v V2) {
	tr.modify(func(_, motion *Transform) { motion.P = motion.P.Add(v) })
}

// SetVel replaces motion.P via modify.
func (tr *Trajectory) SetVel(v V2) {
	tr.modify(func(_, motion *Transform) { motion.P = v })
}

// TransformTo sets motion so that at clock.time + dt the transform equals
// target, assuming no intervening mutation.
func (tr *Trajectory) TransformTo(target Transform, dt float64) {
	tr.modify(func(base, motion *Transform) {
		current := base.AddScaled(*motion, 0) // base is already normalized to now
		*motion = target.Sub(current).Scale(1 / dt)
	})
}

// Stop zeroes motion via modify.
func (tr *Trajectory) Stop() {
	tr.modify(func(_, motion *Transform) { *motion = ZeroTransform() })
}

// PosOf returns the current world position of geometry point v.
func (tr *Trajectory) PosOf(v V2) V2 {
	return tr.GetTransform().Apply(v)
}

// VelOf returns the world-space instantaneous velocity of material point v
// (geometry coordinates), i.e. motion applied as a point-affine map.
func (tr *Trajectory) VelOf(v V2) V2 {
	return tr.motion.Apply(v)
}

func (tr *Trajectory) addDependant(obj *PhysicsObject) {
	tr.dependants = append(tr.dependants, obj)
}

func (tr *Trajectory) removeDependant(obj *PhysicsObject) {
	for i, o := range tr.dependants {
		if o == obj {
			tr.dependants = append(tr.dependants[:i], tr.dependants[i+1:]...)
			return
		}
	}
}
