package sink

import "math"

// Drain runs one isolated accounting step.
//
// Contract:
//
//	drained  = injected × drainFraction
//	residual = injected − drained
//
// injected must be finite and ≥ 0; drainFraction must be finite and in
// [0,1]. On violation the zero Budget and a sentinel wrapping
// shovelcat.ErrDomain are returned; no partial result exists.
//
// The call is pure: no state survives it, and identical inputs always
// produce the identical Budget.
func Drain(injected, drainFraction float64) (Budget, error) {
	if math.IsNaN(injected) || math.IsInf(injected, 0) ||
		math.IsNaN(drainFraction) || math.IsInf(drainFraction, 0) {
		return Budget{}, ErrNonFiniteInput
	}
	if injected < 0 {
		return Budget{}, ErrNegativeInjected
	}
	if drainFraction < 0 || drainFraction > 1 {
		return Budget{}, ErrFractionOutOfRange
	}

	drained := injected * drainFraction

	return Budget{
		Injected: injected,
		Drained:  drained,
		Residual: injected - drained,
	}, nil
}

// NewAccumulator constructs a caller-owned cross-call sink with the given
// per-call drain capacity. Capacity must be finite and ≥ 0.
func NewAccumulator(capacity float64) (*Accumulator, error) {
	if math.IsNaN(capacity) || math.IsInf(capacity, 0) {
		return nil, ErrNonFiniteInput
	}
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}

	return &Accumulator{Capacity: capacity}, nil
}

// Absorb offers one intake batch to the accumulator and returns the
// residual that could not be absorbed.
//
// If the intake total fits under Capacity the whole batch is absorbed and
// the residual is 0. Otherwise a Capacity-sized share is absorbed
// pro-rata across the categories and the overflow is returned.
//
// The comparison is per call: the drain has finite bandwidth per batch,
// not a lifetime quota. Absorbed totals accumulate across calls for
// reporting only.
func (a *Accumulator) Absorb(in Intake) (float64, error) {
	components := [4]float64{in.Heat, in.Mass, in.Energy, in.Error}
	for _, v := range components {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, ErrNonFiniteInput
		}
		if v < 0 {
			return 0, ErrNegativeIntake
		}
	}

	total := in.Total()
	if total <= a.Capacity {
		a.absorbedHeat += in.Heat
		a.absorbedMass += in.Mass
		a.absorbedEnergy += in.Energy
		a.absorbedErrors += in.Error

		return 0, nil
	}

	// Over capacity: absorb a pro-rata share, leak the rest back.
	share := a.Capacity / total
	a.absorbedHeat += in.Heat * share
	a.absorbedMass += in.Mass * share
	a.absorbedEnergy += in.Energy * share
	a.absorbedErrors += in.Error * share

	return total - a.Capacity, nil
}

// AbsorbedHeat returns the total heat absorbed so far.
func (a *Accumulator) AbsorbedHeat() float64 { return a.absorbedHeat }

// AbsorbedMass returns the total mass absorbed so far.
func (a *Accumulator) AbsorbedMass() float64 { return a.absorbedMass }

// AbsorbedEnergy returns the total energy absorbed so far.
func (a *Accumulator) AbsorbedEnergy() float64 { return a.absorbedEnergy }

// AbsorbedErrors returns the total measurement error absorbed so far.
func (a *Accumulator) AbsorbedErrors() float64 { return a.absorbedErrors }

// TotalAbsorbed returns the sum of everything absorbed across all calls.
func (a *Accumulator) TotalAbsorbed() float64 {
	return a.absorbedHeat + a.absorbedMass + a.absorbedEnergy + a.absorbedErrors
}
