package physics

import "math"

// AABB is an axis-aligned bounding box in geometry space.
//
// Grounded on bb.go's BB from the reference engine (fields l, b, r, t);
// renamed to the spec's MinX/MaxX/MinY/MaxY and trimmed to the operations
// geometry construction and candidate generation actually need —
// segment-query and wrap/clamp helpers used by the reference's fixed-step
// raycasting have no analogue here.
type AABB struct {
	MinX, MaxX, MinY, MaxY float64
}

func emptyAABB() AABB {
	return AABB{MinX: Infinity, MaxX: -Infinity, MinY: Infinity, MaxY: -Infinity}
}

func (b AABB) expand(p V2) AABB {
	return AABB{
		MinX: math.Min(b.MinX, p.X),
		MaxX: math.Max(b.MaxX, p.X),
		MinY: math.Min(b.MinY, p.Y),
		MaxY: math.Max(b.MaxY, p.Y),
	}
}

// Corners returns the box's four corners in a fixed order, used by
// candidate generation's swept-bound derivation (spec.md §4.5).
func (b AABB) Corners() [4]V2 {
	return [4]V2{
		{b.MinX, b.MinY},
		{b.MaxX, b.MinY},
		{b.MaxX, b.MaxY},
		{b.MinX, b.MaxY},
	}
}

// Vertex is a corner of a Geometry's oriented boundary. T0 is the incoming
// tangent direction (previous edge into this vertex), T1 is the outgoing
// tangent direction. Walking the boundary from T0 to T1 on the convex side
// sweeps the arc this vertex blocks (spec.md §3).
//
// Grounded on segment.go's Segment, whose unused a_tangent/b_tangent
// fields are exactly the per-endpoint tangent slots this type generalizes
// into a first-class, shared vertex.
type Vertex struct {
	P      V2
	T0, T1 V2
}

// Edge is a directed boundary segment from P0 to P1. Walking the boundary
// P0 to P1 with vertices wound so T0 x T1 > 0 at every convex corner
// (spec.md §4.6's vertex-convex test) puts the solid side on the side
// Perp points toward (spec.md §3).
//
// Grounded on segment.go's Segment endpoints A, B.
type Edge struct {
	P0, P1 V2
}

// Geometry is an oriented vertex/edge set plus its bounding box, shared
// by reference across any number of PhysicsObjects (spec.md §3).
//
// Grounded on poly.go's PolyShape, whose per-vertex SplittingPlane (point
// + outward normal) plays the same "one entry per corner, built once"
// role Vertex/Edge play here; the plane-normal representation is dropped
// since the exact solver works directly off tangent directions and edge
// endpoints, never a separating-axis normal.
type Geometry struct {
	Vertices []Vertex
	Edges    []Edge
	Bounds   AABB

	dependants []*PhysicsObject
}

// Modify runs fn against the geometry, recomputes its bounding box, and
// recalculates every dependant PhysicsObject (spec.md §4.3).
func (g *Geometry) Modify(fn func(g *Geometry)) {
	fn(g)
	g.recomputeBounds()
	for _, obj := range g.dependants {
		obj.queueCollisionRecalculation()
	}
}

func (g *Geometry) recomputeBounds() {
	b := emptyAABB()
	for _, v := range g.Vertices {
		b = b.expand(v.P)
	}
	for _, e := range g.Edges {
		b = b.expand(e.P0).expand(e.P1)
	}
	g.Bounds = b
}

func (g *Geometry) addDependant(obj *PhysicsObject) {
	g.dependants = append(g.dependants, obj)
}

func (g *Geometry) removeDependant(obj *PhysicsObject) {
	for i, o := range g.dependants {
		if o == obj {
			g.dependants = append(g.dependants[:i], g.dependants[i+1:]...)
			return
		}
	}
}
