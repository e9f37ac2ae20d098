// Package synth types and options.
package synth

import "github.com/jpelchat/shovelcat/sink"

// Factor is one labeled scalar contribution to a synthesized constant,
// tagged with the structural element it is attributed to. Immutable once
// computed; treat it as a value.
type Factor struct {
	// Label names the contribution (e.g. "theta-ratio").
	Label string
	// Element is the structural element the contribution is attributed
	// to (e.g. "ring-count", "threshold", "boundary-structure").
	Element string
	// Value is the scalar contribution.
	Value float64
}

// DerivedConstant is the output record of one synthesis call: the final
// value, the ordered factors that produced it, and the error budget
// consumed in its computation. Created once per call; read-only after
// creation.
type DerivedConstant struct {
	// Value is the synthesized numeric result.
	Value float64
	// Factors is the ordered breakdown. The order is part of the
	// contract (light speed: ring, threshold, boundary).
	Factors []Factor
	// Budget is the error accounting consumed by the call; the zero
	// Budget when no accounting was applied.
	Budget sink.Budget
}

// RatioFunc maps an angle in radians to the policy's raw ratio value;
// the synthesizer divides raw(theta) by raw(reference).
// Implementations must be pure.
type RatioFunc func(radians float64) float64

// RatioModelCosine is the name of the default cosine ratio policy.
const RatioModelCosine = "cosine"

// Options configures angle-ratio synthesis.
//
// Fields:
//   - RatioModel — name of the registered ratio policy. The default,
//     "cosine", reproduces α(θ) = α₀·cos(θ)/cos(θ_ref).
type Options struct {
	RatioModel string
}

// DefaultOptions returns the cosine-based configuration.
func DefaultOptions() Options {
	return Options{RatioModel: RatioModelCosine}
}
