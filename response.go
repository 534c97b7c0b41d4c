package physics

// Resolve applies a normal impulse along the collision's normal (spec.md
// §4.8). weightA/weightB are per-call weights; a zero weight pins that
// side of the collision: each side's velocity change is driven by its
// own weight, the same way an inverse-mass of zero pins a body in a
// standard impulse solver, so weightA = 0 leaves A untouched regardless
// of weightB. additionalVel biases the target separation speed along
// the normal, away from the surface. For solver-built collisions the
// normal n = Perp(Tangent) points from ObjB's side into ObjA, so adding
// n*additionalVel to the normal component of RelVel before scaling pushes
// A along +n and B along -n; a pinned-vs-free contact with restitution 0
// therefore separates at exactly additionalVel.
//
// Grounded on arbiter.go's ApplyImpulses, which also derives a normal
// impulse from a stored normal and applies it to each body's velocity
// under a mass-ratio split; here the split is the caller-supplied
// weightA/weightB rather than inverse mass, since PhysicsObject carries
// no mass — callers decide per collision how force should distribute.
func (c *Collision) Resolve(additionalVel, restitution, weightA, weightB float64) {
	n := c.Tangent.Perp().Normalize()
	vn := c.RelVel.Project(n).Add(n.Scale(additionalVel))

	total := weightA + weightB
	if total == 0 {
		return
	}

	if weightA != 0 {
		c.ObjA.Trajectory.Impulse(vn.Scale((1 + restitution) * weightA / total))
	}
	if weightB != 0 {
		c.ObjB.Trajectory.Impulse(vn.Scale(-(1 + restitution) * weightB / total))
	}
}

// WeightedVel returns the post-merge velocity at the contact point for
// inelastic-sticking callers (spec.md §4.8).
func (c *Collision) WeightedVel(weightA, weightB float64) V2 {
	total := weightA + weightB
	if total == 0 {
		return c.Vel
	}
	return c.Vel.Add(c.RelVel.Scale(weightB / total))
}
