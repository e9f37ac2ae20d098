package synth

import (
	"math"

	"github.com/jpelchat/shovelcat/sink"
)

// Structural element tags carried by the canonical factors.
const (
	ElementRingCount  = "ring-count"
	ElementThreshold  = "threshold"
	ElementBoundary   = "boundary-structure"
	ElementThetaRatio = "theta-ratio"
)

// degenerateEps bounds |raw(reference)| below which the ratio is treated
// as a division by zero. cos at exactly 90° computes to ~6e-17 in
// floating point, so the check is a tolerance, not an equality.
const degenerateEps = 1e-9

// ratioModels holds the registered ratio policies by name.
var ratioModels = map[string]RatioFunc{
	RatioModelCosine: math.Cos,
}

// RegisterRatioModel registers (or replaces) a named ratio policy.
// An empty name or nil fn is ignored. Not safe to call concurrently with
// synthesis; register models during setup.
func RegisterRatioModel(name string, fn RatioFunc) {
	if name == "" || fn == nil {
		return
	}
	ratioModels[name] = fn
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// Synthesize multiplies the factor values in order, drains the injected
// error magnitude through the uncertainty sink, and returns the full
// decomposed result. The residual is recorded in the Budget for audit; it
// is never folded into Value.
//
// Every factor value must be finite; injected/drainFraction follow
// sink.Drain's domain. The factor slice is copied, so later mutation of
// the caller's slice cannot reach the returned record.
func Synthesize(factors []Factor, injected, drainFraction float64) (DerivedConstant, error) {
	if len(factors) == 0 {
		return DerivedConstant{}, ErrNoFactors
	}
	for _, f := range factors {
		if !finite(f.Value) {
			return DerivedConstant{}, ErrNonFiniteFactor
		}
	}

	budget, err := sink.Drain(injected, drainFraction)
	if err != nil {
		return DerivedConstant{}, err
	}

	value := 1.0
	breakdown := make([]Factor, len(factors))
	for i, f := range factors {
		value *= f.Value
		breakdown[i] = f
	}

	return DerivedConstant{
		Value:   value,
		Factors: breakdown,
		Budget:  budget,
	}, nil
}

// DeriveLightSpeed synthesizes the light-speed-like constant from its
// three structural factors:
//
//	value = ringFactor × thresholdFactor × boundaryFactor
//
// The factors are returned in the order (ring, threshold, boundary). The
// inputs are taken as already fixed, so no error accounting is applied:
// the Budget is zero. Any non-finite factor fails with
// ErrNonFiniteFactor.
func DeriveLightSpeed(ringFactor, thresholdFactor, boundaryFactor float64) (DerivedConstant, error) {
	return Synthesize([]Factor{
		{Label: "ring", Element: ElementRingCount, Value: ringFactor},
		{Label: "threshold", Element: ElementThreshold, Value: thresholdFactor},
		{Label: "boundary", Element: ElementBoundary, Value: boundaryFactor},
	}, 0, 0)
}

// DeriveAlpha synthesizes the alpha-like constant at thetaDegrees against
// the fixed 45° reference:
//
//	value = alpha0 × cos(θ) / cos(45°)
//
// It is shorthand for DeriveAlphaAt(thetaDegrees, 45, alpha0,
// DefaultOptions()).
func DeriveAlpha(thetaDegrees, alpha0 float64) (DerivedConstant, error) {
	return DeriveAlphaAt(thetaDegrees, 45, alpha0, DefaultOptions())
}

// DeriveAlphaAt is the general angular form:
//
//	value = alpha0 × ratio(θ) / ratio(reference)
//
// where ratio is the policy named by opts.RatioModel (default cosine).
// The breakdown records a single Factor labeled "theta-ratio" carrying
// ratio(θ)/ratio(reference).
//
// Fails with ErrDegenerateReference when ratio(reference) computes to
// zero — for the cosine model, reference ≡ 90° (mod 180°) — and with
// ErrNonFiniteFactor on non-finite inputs.
func DeriveAlphaAt(thetaDegrees, referenceDegrees, alpha0 float64, opts Options) (DerivedConstant, error) {
	if !finite(thetaDegrees, referenceDegrees, alpha0) {
		return DerivedConstant{}, ErrNonFiniteFactor
	}

	model := opts.RatioModel
	if model == "" {
		model = RatioModelCosine
	}
	fn, ok := ratioModels[model]
	if !ok {
		return DerivedConstant{}, ErrUnknownRatioModel
	}

	ref := fn(referenceDegrees * math.Pi / 180)
	if math.Abs(ref) < degenerateEps {
		return DerivedConstant{}, ErrDegenerateReference
	}

	ratio := fn(thetaDegrees*math.Pi/180) / ref
	if !finite(ratio) {
		return DerivedConstant{}, ErrNonFiniteFactor
	}

	return DerivedConstant{
		Value: alpha0 * ratio,
		Factors: []Factor{
			{Label: "theta-ratio", Element: ElementThetaRatio, Value: ratio},
		},
	}, nil
}
