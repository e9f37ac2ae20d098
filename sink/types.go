// Package sink types: the error-budget record and the caller-owned
// accumulator for cross-call absorption.
package sink

// Budget is the result of one accounting step.
//
// Invariant: Drained + Residual == Injected. Residual is always produced
// by the subtraction Injected − Drained, never recomputed independently,
// so the identity holds to well within 1e-12 relative tolerance.
//
// A Budget is created fresh per Drain call and is never mutated after
// creation; treat it as a value.
type Budget struct {
	// Injected is the error magnitude handed to the sink.
	Injected float64
	// Drained is the absorbed share: Injected × drainFraction.
	Drained float64
	// Residual is what could not be absorbed: Injected − Drained.
	Residual float64
}

// Intake is one batch of waste offered to an Accumulator, split by the
// cost categories of the spoke model (heat/mass/energy) plus raw
// measurement error. All components are magnitudes in [0, +∞).
type Intake struct {
	Heat   float64
	Mass   float64
	Energy float64
	Error  float64
}

// Total returns the summed magnitude of the intake.
func (in Intake) Total() float64 {
	return in.Heat + in.Mass + in.Energy + in.Error
}

// Accumulator is an explicit, caller-owned cross-call sink.
//
// The narrative model has a single sink shared by everything; this type
// makes that reading available without hiding global mutable state: the
// caller constructs one, passes it around, and owns its lifetime. Nothing
// in this package keeps a process-wide Accumulator.
//
// Accumulator is NOT safe for concurrent use; guard it externally if
// shared across goroutines.
type Accumulator struct {
	// Capacity is the per-call drain capacity: the largest intake total
	// that can be fully absorbed in a single Absorb call.
	Capacity float64

	absorbedHeat   float64
	absorbedMass   float64
	absorbedEnergy float64
	absorbedErrors float64
}
