package physics

import "github.com/google/uuid"

// newID mints an identifier for a PhysicsObject, CollisionGroup, or
// CollisionRule. Identity for collision bookkeeping itself is always by
// pointer (spec.md §4.7's lastRecalculation check compares *PhysicsObject
// values); the UUID exists purely for logging and external correlation.
// Scheduled loops are identified by LoopHandle instead (schedule.go), a
// per-clock counter, since a loop is never logged or correlated on its
// own — only cancelled by the handle its own creator holds.
//
// Grounded on the sibling networked-simulation lineage's use of
// github.com/google/uuid for connection/message identity, in place of the
// reference rigid-body engine's bare incrementing int counters
// (body.go's package-level bodyCur).
func newID() uuid.UUID {
	return uuid.New()
}
