package physics

// Schedule creates and enqueues a ClockEvent at time t invoking cb, and
// returns it so the caller can Cancel it later (spec.md §4.9).
func Schedule(clock *Clock, t float64, cb func(*Clock)) *ClockEvent {
	e := &ClockEvent{Time: t, Callback: cb, Valid: true}
	clock.Schedule(e)
	return e
}

// LoopHandle identifies a scheduleLoop so it can be retired with
// CancelLoop.
type LoopHandle uint64

// ScheduleLoop enters a self-perpetuating schedule: each firing invokes cb
// then schedules the next firing at previousTime + delay, until
// CancelLoop retires the handle (spec.md §4.9).
//
// Loop-id state lives on the Clock (c.loopCounter, c.retiredLoop) rather
// than a package global, per spec.md §9's design note that global loop-id
// state in the reference's scheduling helpers should be per-clock to
// avoid cross-simulation interference.
func ScheduleLoop(clock *Clock, start, delay float64, cb func(*Clock)) LoopHandle {
	clock.loopCounter++
	id := LoopHandle(clock.loopCounter)

	var tick func(previousTime float64) func(*Clock)
	tick = func(previousTime float64) func(*Clock) {
		return func(c *Clock) {
			if clock.retiredLoop[uint64(id)] {
				return
			}
			cb(c)
			if clock.retiredLoop[uint64(id)] {
				return
			}
			next := previousTime + delay
			Schedule(clock, next, tick(next))
		}
	}

	Schedule(clock, start, tick(start))
	return id
}

// CancelLoop retires id; the next time its loop fires it declines to
// schedule its successor.
func CancelLoop(clock *Clock, id LoopHandle) {
	clock.retiredLoop[uint64(id)] = true
}
