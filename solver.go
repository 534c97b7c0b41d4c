package physics

import "math"

// Collision is the result of an accepted vertex-edge contact (spec.md
// §4.6).
//
// Grounded on arbiter.go's Arbiter, which also carries a contact point, a
// normal-derived basis, and the two participating bodies; tangent takes
// the place of Arbiter's normal since the exact solver naturally produces
// an edge direction, and resolve derives the normal from it on demand.
// Vel is ObjA's velocity at the contact point; RelVel is ObjB's velocity
// relative to ObjA. Both are re-expressed in (A, B) order regardless of
// which side supplied the vertex versus the edge, so Resolve's impulse
// split never needs to know which was which.
type Collision struct {
	Pos     V2
	Tangent V2
	Vel     V2
	RelVel  V2
	Time    float64
	Vertex  Vertex
	Edge    Edge
	ObjA    *PhysicsObject
	ObjB    *PhysicsObject
}

// affinePair holds an affine-in-t quantity q(t) = q0 + qv*(t - t0).
type affinePair struct {
	v0, vv V2
}

func (p affinePair) at(t, t0 float64) V2 {
	return p.v0.Add(p.vv.Scale(t - t0))
}

// edgeMotion evaluates E0, E1 and their velocities in world space at the
// clock's current time, per the affine derivation in spec.md §4.6.
func edgeMotion(obj *PhysicsObject, e Edge) (e0, e1 affinePair) {
	xform := obj.Trajectory.GetTransform()
	motion := obj.Trajectory.GetMotion()
	e0 = affinePair{v0: xform.Apply(e.P0), vv: motion.Apply(e.P0)}
	e1 = affinePair{v0: xform.Apply(e.P1), vv: motion.Apply(e.P1)}
	return e0, e1
}

func vertexMotion(obj *PhysicsObject, v Vertex) affinePair {
	xform := obj.Trajectory.GetTransform()
	motion := obj.Trajectory.GetMotion()
	return affinePair{v0: xform.Apply(v.P), vv: motion.Apply(v.P)}
}

// solveVertexEdge finds every admissible contact between vertexObj's
// vertex v and edgeObj's edge e from clock.time onward, honoring tol
// (spec.md §4.6). invert flips which of objA/objB in the emitted
// Collision corresponds to edgeObj vs vertexObj.
func solveVertexEdge(edgeObj, vertexObj *PhysicsObject, e Edge, v Vertex, tol ToleranceProfile, invert bool) []*Collision {
	now := edgeObj.clock.Time()

	e0, e1 := edgeMotion(edgeObj, e)
	vp := vertexMotion(vertexObj, v)

	ep0 := e1.v0.Sub(e0.v0)
	ev := e1.vv.Sub(e0.vv)
	vp0 := vp.v0.Sub(e0.v0)
	vv := vp.vv.Sub(e0.vv)

	var candidates []float64

	// close-collision shortcut, evaluated at t = now (tau = 0).
	epLen := ep0.Mag()
	if epLen > 0 && math.Abs(ep0.Cross(vp0)) <= epLen*tol.CloseCollisionThreshold {
		candidates = append(candidates, now)
	}

	a := ev.Cross(vv)
	b := ep0.Cross(vv) + ev.Cross(vp0)
	c := ep0.Cross(vp0)

	switch {
	case a == 0:
		if b > 0 {
			tau := -c / b
			candidates = append(candidates, now+tau)
		}
	default:
		disc := b*b - 4*a*c
		if disc >= 0 {
			sqrtDisc := math.Sqrt(disc)
			tau := 2 * c / (-b - sqrtDisc)
			candidates = append(candidates, now+tau)
		}
	}

	var out []*Collision
	for _, t := range candidates {
		if t < now {
			continue
		}
		if col := acceptVertexEdge(edgeObj, vertexObj, e, v, e0, e1, vp, t, now, tol, invert); col != nil {
			out = append(out, col)
		}
	}
	return out
}

// acceptVertexEdge runs the five acceptance tests of spec.md §4.6 at
// candidate time t and, if all pass, builds the Collision record.
func acceptVertexEdge(edgeObj, vertexObj *PhysicsObject, e Edge, v Vertex, e0, e1, vp affinePair, t, t0 float64, tol ToleranceProfile, invert bool) *Collision {
	E0 := e0.at(t, t0)
	E1 := e1.at(t, t0)
	V := vp.at(t, t0)

	ep := E1.Sub(E0)
	vpv := V.Sub(E0)

	epLenSq := ep.MagSq()
	if epLenSq == 0 {
		return nil
	}

	// 1. parameter on segment
	s := ep.Dot(vpv) / epLenSq
	if s < 0 || s > 1 {
		return nil
	}

	// 2. vertex convex
	if v.T0.Cross(v.T1) <= 0 {
		return nil
	}

	// 3. direction in arc
	t0cross := v.T0.Cross(ep)
	t1cross := v.T1.Cross(ep)
	if t0cross*t1cross > epLenSq*v.T0.Mag()*v.T1.Mag()*tol.DirectionalTolerance {
		return nil
	}

	// 4. correct winding
	mid := v.T0.Scale(v.T1.Mag()).Add(v.T1.Scale(v.T0.Mag()))
	if mid.Dot(ep) > 0 {
		return nil
	}

	// 5. approach, not separation: the edge's solid side lies along
	// ep.Perp(), so a vertex moving into it has ep x relVel >= 0.
	edgeVelAtContact := e0.vv.Lerp(e1.vv, s)
	vertexVel := vp.vv
	vertexRelEdge := vertexVel.Sub(edgeVelAtContact)
	if ep.Cross(vertexRelEdge) < 0 {
		return nil
	}

	// objA/objB follow the caller's requested ordering; vel and relVel are
	// re-expressed in that ordering too (vel = objA's velocity, relVel =
	// objB's velocity relative to objA), so resolve's impulse split in
	// response.go is independent of which side happened to carry the
	// vertex versus the edge (spec.md §4.8).
	tangent := ep
	objA, objB := edgeObj, vertexObj
	vel := edgeVelAtContact
	relVel := vertexRelEdge
	if invert {
		tangent = tangent.Neg()
		objA, objB = vertexObj, edgeObj
		vel = vertexVel
		relVel = vertexRelEdge.Neg()
	}

	return &Collision{
		Pos:     V,
		Tangent: tangent,
		Vel:     vel,
		RelVel:  relVel,
		Time:    t,
		Vertex:  v,
		Edge:    e,
		ObjA:    objA,
		ObjB:    objB,
	}
}
