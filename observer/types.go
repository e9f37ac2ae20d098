// Package observer types.
package observer

// Kind identifies one of the three orthogonal observers.
type Kind int

const (
	// Void sees nothing (0); verifies the x-y plane from the >1 side.
	Void Kind = iota
	// Something sees everything (∞); verifies the y-z plane.
	Something
	// Depth verifies depth on z from the <1 side. No shifted loop, so
	// its estimates are reciprocal and its resolution is boundary-only.
	Depth
)

// Unit returns the quaternion unit label for the kind ("i", "j", "k").
func (k Kind) Unit() string {
	switch k {
	case Void:
		return "i"
	case Something:
		return "j"
	case Depth:
		return "k"
	default:
		return "?"
	}
}

// Plane returns the plane the observer verifies.
func (k Kind) Plane() string {
	switch k {
	case Void:
		return "x-y"
	case Something:
		return "y-z"
	case Depth:
		return "z-x"
	default:
		return "?"
	}
}

// Side labels which side of the boundary at 1 an observer occupies.
type Side string

const (
	// SideLess is the compressed, reciprocal foundation side.
	SideLess Side = "<1"
	// SideGreater is the expanded structure side.
	SideGreater Side = ">1"
)

// Observer is one orthogonal observer: its side, loop capability and its
// estimates of the "3" and ".14" versions. Construct with New.
type Observer struct {
	Kind Kind
	Side Side
	// HasShiftedLoop is false only for the Depth observer; without a
	// shifted loop there is no phase reference and no z resolution.
	HasShiftedLoop bool

	// EstimateThree and EstimatePointOneFour are the observer's
	// representations of 3 and π−3. The Depth observer holds the
	// reciprocal views (1/3 and 1/(π−3)).
	EstimateThree        float64
	EstimatePointOneFour float64
}

// Verdict is the answer to one position query.
type Verdict struct {
	// Confidence is in [0,1].
	Confidence float64
	// Message is the observer's human-readable answer.
	Message string
}

// Triad bundles the three orthogonal observers for combined
// verification passes.
type Triad struct {
	Void      Observer
	Something Observer
	Depth     Observer
}

// Verification is the combined result of a three-observer pass.
type Verification struct {
	// PerObserver holds the verdicts in kind order (Void, Something,
	// Depth).
	PerObserver [3]Verdict
	// Confidence is the loop-weighted combination: the fuzzy depth
	// verdict counts at half weight.
	Confidence float64
	// Verified is true when the combined confidence clears 0.7.
	Verified bool
}
