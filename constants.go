package physics

import "math"

// Infinity stands in for "no known bound yet" — nextProbableRecalculation
// starts here, and a candidate solve interval that never closes keeps it
// as its upper bound.
//
// Grounded on everything.go's INFINITY constant from the reference engine.
const Infinity = math.MaxFloat64

// DefaultRunToCycleLimit bounds the number of preprocess/event rounds a
// single Clock.RunTo call may execute before it reports cycle-limit-
// exceeded (spec.md §4.1).
const DefaultRunToCycleLimit = 10000
