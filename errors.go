package physics

import "github.com/pkg/errors"

// The engine recognizes exactly four error kinds, all programmer errors
// (spec.md §7). Three are returned as the sentinels below; the fourth,
// builder-underflow, is a silent no-op in GeometryBuilder.Close. Everything
// else — an empty AABB overlap interval, a quadratic with no real root, a
// failed acceptance test — is normal control flow and never produces an
// error.
//
// Grounded on debug.go's assert() from the reference engine, which panics
// on invariant violations; here the three error-returning kinds are
// recoverable values instead, wrapped with github.com/pkg/errors so call sites can
// attach context without losing the sentinel for errors.Is-style checks.
var (
	// ErrInvalidTime is returned by Clock.RunTo when the target time is
	// behind the clock's current time.
	ErrInvalidTime = errors.New("physics: invalid-time")

	// ErrCycleLimitExceeded is returned by Clock.RunTo when more than
	// RunToCycleLimit preprocess/event cycles run within one call,
	// indicating an infinite event cascade.
	ErrCycleLimitExceeded = errors.New("physics: cycle-limit-exceeded")

	// ErrUnsupportedArguments is returned by the variadic V2/Transform
	// convenience constructors when given a shape they can't interpret.
	ErrUnsupportedArguments = errors.New("physics: unsupported-arguments")
)

func wrapf(base error, format string, args ...interface{}) error {
	return errors.Wrapf(base, format, args...)
}
