package physics

import (
	"container/heap"

	"go.uber.org/zap"
)

// Clock drives the whole simulation: it has no fixed time step and
// advances only by replaying scheduled events in time order, interleaved
// with preprocesses (spec.md §4.1).
//
// Grounded on space.go's Space.Step from the reference engine, which
// advances a fixed dt through a lock/unlock bracketed pipeline; the fixed
// dt loop is replaced here with the preprocess-then-next-event loop
// spec.md §4.1 specifies, but the logging style (space.go logs dangling
// contact-graph pointers and lock underflow) carries over as debug logging
// of cycle boundaries and a warning when the cycle limit is exceeded.
type Clock struct {
	time  float64
	cycle uint64

	events      eventHeap
	preprocess  []func(*Clock)
	nextSeq     uint64
	cycleLimit  int
	loopCounter uint64
	retiredLoop map[uint64]bool

	log *zap.SugaredLogger
}

// NewClock constructs a Clock. A nil logger falls back to a no-op logger.
// cycleLimit <= 0 falls back to DefaultRunToCycleLimit.
func NewClock(log *zap.SugaredLogger, cycleLimit int) *Clock {
	if log == nil {
		log = nopLogger()
	}
	if cycleLimit <= 0 {
		cycleLimit = DefaultRunToCycleLimit
	}
	c := &Clock{
		cycleLimit:  cycleLimit,
		retiredLoop: map[uint64]bool{},
		log:         log,
	}
	heap.Init(&c.events)
	return c
}

// Time returns the clock's current instant.
func (c *Clock) Time() float64 { return c.time }

// Cycle returns the number of preprocess/event rounds run so far.
func (c *Clock) Cycle() uint64 { return c.cycle }

// Schedule pushes one or more events onto the clock's heap. Events whose
// Time is before the clock's current time are discarded silently
// (spec.md §4.1).
func (c *Clock) Schedule(events ...*ClockEvent) {
	for _, e := range events {
		if e.Time < c.time {
			continue
		}
		e.Valid = true
		e.seq = c.nextSeq
		c.nextSeq++
		heap.Push(&c.events, e)
	}
}

// AddPreprocess appends one-shot callbacks to run at the start of the next
// cycle. Preprocesses added while preprocesses are already running are
// deferred to the following cycle rather than run in the current one
// (spec.md §4.1 step 1).
func (c *Clock) AddPreprocess(cbs ...func(*Clock)) {
	c.preprocess = append(c.preprocess, cbs...)
}

// RunTo advances time up to target, running every preprocess and event in
// between; events scheduled exactly at target run before it returns. It
// fails with ErrInvalidTime if target is behind the clock's
// current time, and with ErrCycleLimitExceeded if more than cycleLimit
// cycles run within the call.
func (c *Clock) RunTo(target float64) error {
	if target < c.time {
		return wrapf(ErrInvalidTime, "RunTo(%v) before clock.time=%v", target, c.time)
	}

	started := c.cycle
	for {
		c.runPreprocesses()

		if c.cycle-started > uint64(c.cycleLimit) {
			c.log.Warnw("cycle limit exceeded", "cycles", c.cycle-started, "limit", c.cycleLimit)
			return wrapf(ErrCycleLimitExceeded, "exceeded %d cycles in RunTo(%v)", c.cycleLimit, target)
		}

		if c.events.Len() == 0 || c.events[0].Time > target {
			c.time = target
			return nil
		}

		event := heap.Pop(&c.events).(*ClockEvent)
		if !event.Valid {
			continue
		}

		c.time = event.Time
		event.Callback(c)
	}
}

// Advance runs until exactly the next valid event executes, returning
// false if none exist.
func (c *Clock) Advance() bool {
	for {
		c.runPreprocesses()

		if c.events.Len() == 0 {
			return false
		}

		event := heap.Pop(&c.events).(*ClockEvent)
		if !event.Valid {
			continue
		}

		c.time = event.Time
		event.Callback(c)
		return true
	}
}

func (c *Clock) runPreprocesses() {
	pending := c.preprocess
	c.preprocess = nil
	c.cycle++
	c.log.Debugw("cycle", "cycle", c.cycle, "time", c.time)
	for _, cb := range pending {
		cb(c)
	}
}
