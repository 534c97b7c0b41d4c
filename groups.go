package physics

import "github.com/google/uuid"

// ToleranceProfile tunes how forgiving the exact solver is about
// near-misses (spec.md §4.4, §4.6).
//
// CloseCollisionThreshold: below this separation, the close-collision
// shortcut forces an immediate (t=now) acceptance instead of solving for
// a future root.
// DirectionalTolerance: dimensionless slack on the vertex's T0/T1 arc
// test: the product (T0 x ep)(T1 x ep) may be positive up to
// |ep|^2 * |T0| * |T1| times this value.
type ToleranceProfile struct {
	CloseCollisionThreshold float64
	DirectionalTolerance    float64
}

// DefaultToleranceProfile mirrors EngineConfig's default and is the
// fallback used by CollisionRules that don't specify one.
func DefaultToleranceProfile() ToleranceProfile {
	return ToleranceProfile{
		CloseCollisionThreshold: 1e-6,
		DirectionalTolerance:    1e-3,
	}
}

// CollisionGroup is a named set of PhysicsObject members. A membership
// change queues the joining or leaving object for recalculation, and an
// enable/disable toggle queues every member (spec.md §4.4).
//
// Grounded on hashset_collisionhandler.go's CollisionHandler registration
// table, which keys behavior off a pair of CollisionType values; Group
// generalizes the "pair of types" side of that table into first-class,
// mutable membership sets, since here a rule's effective pairing changes
// at runtime as objects join and leave groups.
type CollisionGroup struct {
	ID      uuid.UUID
	Name    string
	members map[*PhysicsObject]bool
	rules   []*CollisionRule
	enabled bool
}

// NewCollisionGroup constructs an empty, enabled group.
func NewCollisionGroup(name string) *CollisionGroup {
	return &CollisionGroup{
		ID:      newID(),
		Name:    name,
		members: map[*PhysicsObject]bool{},
		enabled: true,
	}
}

// Add enrolls obj in the group and queues it for recalculation.
func (g *CollisionGroup) Add(obj *PhysicsObject) {
	if g.members[obj] {
		return
	}
	g.members[obj] = true
	obj.addGroup(g)
	g.queueMember(obj)
}

// Remove un-enrolls obj.
func (g *CollisionGroup) Remove(obj *PhysicsObject) {
	if !g.members[obj] {
		return
	}
	delete(g.members, obj)
	obj.removeGroup(g)
	obj.queueCollisionRecalculation()
}

// Members returns a snapshot slice of the group's current members.
func (g *CollisionGroup) Members() []*PhysicsObject {
	out := make([]*PhysicsObject, 0, len(g.members))
	for obj := range g.members {
		out = append(out, obj)
	}
	return out
}

// SetEnabled toggles the group, queueing every member for recalculation on
// a transition (spec.md §4.4).
func (g *CollisionGroup) SetEnabled(enabled bool) {
	if g.enabled == enabled {
		return
	}
	g.enabled = enabled
	for obj := range g.members {
		obj.queueCollisionRecalculation()
	}
}

func (g *CollisionGroup) queueMember(obj *PhysicsObject) {
	obj.queueCollisionRecalculation()
}

func (g *CollisionGroup) attachRule(r *CollisionRule) {
	g.rules = append(g.rules, r)
}

// CollisionRule pairs two CollisionGroups (which may be the same group,
// for self-collision within a crowd) and fires Callback for every accepted
// collision the solver finds between a member of A and a member of B
// (spec.md §4.4).
type CollisionRule struct {
	ID            uuid.UUID
	GroupA        *CollisionGroup
	GroupB        *CollisionGroup
	Tol           ToleranceProfile
	Callback      func(*Collision)
	Recalculating bool
	enabled       bool
}

// NewCollisionRule links a and b under tol, invoking cb on every accepted
// collision. recalculating marks whether the pairing routes into an
// object's recalcHeap or otherHeap (spec.md §4.7). A zero-value tol falls
// back to DefaultToleranceProfile.
//
// Registers the rule on both groups and recalculates every
// member of A only — B-side objects get visited by those A-side recalcs,
// so a one-sided sweep is sufficient (spec.md §4.4).
func NewCollisionRule(a, b *CollisionGroup, tol ToleranceProfile, recalculating bool, cb func(*Collision)) *CollisionRule {
	if tol == (ToleranceProfile{}) {
		tol = DefaultToleranceProfile()
	}
	r := &CollisionRule{
		ID:            newID(),
		GroupA:        a,
		GroupB:        b,
		Tol:           tol,
		Callback:      cb,
		Recalculating: recalculating,
		enabled:       true,
	}
	a.attachRule(r)
	if b != a {
		b.attachRule(r)
	}
	for obj := range a.members {
		obj.queueCollisionRecalculation()
	}
	return r
}

// SetEnabled toggles the rule. Disabling recalculates every member of
// both groups; enabling recalculates A-side only, matching the
// registration asymmetry in NewCollisionRule (spec.md §4.4).
func (r *CollisionRule) SetEnabled(enabled bool) {
	if r.enabled == enabled {
		return
	}
	r.enabled = enabled

	for obj := range r.GroupA.members {
		obj.queueCollisionRecalculation()
	}
	if !enabled && r.GroupB != r.GroupA {
		for obj := range r.GroupB.members {
			obj.queueCollisionRecalculation()
		}
	}
}

// recalculatingFor reports whether pair (a, b) should route into a
// recalcHeap under this rule.
func (r *CollisionRule) recalculatingFor(a, b *PhysicsObject) bool {
	return r.Recalculating
}

// pairs reports whether a and b are both covered by this rule, in either
// order, used to find which rule's callback fired a given collision.
func (r *CollisionRule) pairs(a, b *PhysicsObject) bool {
	return (r.GroupA.members[a] && r.GroupB.members[b]) ||
		(r.GroupA.members[b] && r.GroupB.members[a])
}

// Enabled reports whether both the rule and both of its groups are active.
func (r *CollisionRule) Enabled() bool {
	return r.enabled && r.GroupA.enabled && r.GroupB.enabled
}

// opposingMembers returns the members of the other group in this rule
// relative to obj's own group, used by PhysicsObject when building its
// candidate set (spec.md §4.5). A self-pairing rule (GroupA == GroupB)
// returns every other member of the shared group.
func (r *CollisionRule) opposingMembers(obj *PhysicsObject) []*PhysicsObject {
	var out []*PhysicsObject
	if r.GroupA == r.GroupB {
		for other := range r.GroupA.members {
			if other != obj {
				out = append(out, other)
			}
		}
		return out
	}
	if r.GroupA.members[obj] {
		for other := range r.GroupB.members {
			out = append(out, other)
		}
	}
	if r.GroupB.members[obj] {
		for other := range r.GroupA.members {
			out = append(out, other)
		}
	}
	return out
}
