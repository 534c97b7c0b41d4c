package physics

// GeometryBuilder accumulates a path of vertices into edges and corner
// Vertex records, then bakes them into an immutable Geometry (spec.md
// §4.3).
//
// Grounded on poly.go's SetVerts, which walks a vertex slice computing one
// splitting-plane normal per corner from consecutive vertex pairs; the
// same walk here produces a Vertex per corner carrying both adjacent
// tangent directions instead of a single outward normal, since the exact
// solver needs the incoming/outgoing arc, not just a separating axis.
type GeometryBuilder struct {
	vertices []Vertex
	edges    []Edge

	pathLen        int
	pos0, pos1     V2
	prev, prevPrev V2
}

func NewGeometryBuilder() *GeometryBuilder {
	return &GeometryBuilder{}
}

// To appends vertices to the path under construction (spec.md §4.3).
func (b *GeometryBuilder) To(vs ...V2) *GeometryBuilder {
	for _, v := range vs {
		switch b.pathLen {
		case 0:
			b.pos0 = v
		case 1:
			b.pos1 = v
			b.edges = append(b.edges, Edge{P0: b.pos0, P1: v})
		default:
			b.edges = append(b.edges, Edge{P0: b.prev, P1: v})
			b.vertices = append(b.vertices, Vertex{
				P:  b.prev,
				T0: b.prev.Sub(b.prevPrev),
				T1: v.Sub(b.prev),
			})
		}
		b.prevPrev = b.prev
		b.prev = v
		b.pathLen++
	}
	return b
}

// Break abandons the current path without closing it and resets the path
// counter, so a later To call starts a fresh path.
func (b *GeometryBuilder) Break() *GeometryBuilder {
	b.pathLen = 0
	return b
}

// Close connects the last vertex back to the path's first vertex,
// completing the final two corners, then abandons the path counter like
// Break. Fewer than two vertices in the current path is a silent no-op
// (builder-underflow, spec.md §7) — the path is simply abandoned.
func (b *GeometryBuilder) Close() *GeometryBuilder {
	if b.pathLen < 2 {
		return b.Break()
	}

	b.edges = append(b.edges, Edge{P0: b.prev, P1: b.pos0})
	b.vertices = append(b.vertices,
		Vertex{P: b.prev, T0: b.prev.Sub(b.prevPrev), T1: b.pos0.Sub(b.prev)},
		Vertex{P: b.pos0, T0: b.pos0.Sub(b.prev), T1: b.pos1.Sub(b.pos0)},
	)
	return b.Break()
}

// Polygon is shorthand for Break, To(vs...), Close — the common case of
// building one closed loop.
func (b *GeometryBuilder) Polygon(vs ...V2) *GeometryBuilder {
	return b.Break().To(vs...).Close()
}

// Finish bakes the accumulated vertices and edges into a Geometry with a
// bounding box computed over every vertex position and edge endpoint.
func (b *GeometryBuilder) Finish() *Geometry {
	g := &Geometry{
		Vertices: append([]Vertex(nil), b.vertices...),
		Edges:    append([]Edge(nil), b.edges...),
	}
	g.recomputeBounds()
	return g
}
