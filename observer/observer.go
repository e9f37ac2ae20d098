package observer

import (
	"fmt"
	"math"

	"github.com/jpelchat/shovelcat"
)

// New constructs the observer of the given kind with its canonical side,
// loop capability and estimates. Unknown kinds fall back to Void.
func New(kind Kind) Observer {
	switch kind {
	case Depth:
		// The <1 side holds reciprocal views and cycles alone.
		return Observer{
			Kind:                 Depth,
			Side:                 SideLess,
			HasShiftedLoop:       false,
			EstimateThree:        1.0 / 3.0,
			EstimatePointOneFour: 1.0 / shovelcat.PointOneFour,
		}
	case Something:
		return Observer{
			Kind:                 Something,
			Side:                 SideGreater,
			HasShiftedLoop:       true,
			EstimateThree:        3.0,
			EstimatePointOneFour: shovelcat.PointOneFour,
		}
	default:
		return Observer{
			Kind:                 Void,
			Side:                 SideGreater,
			HasShiftedLoop:       true,
			EstimateThree:        3.0,
			EstimatePointOneFour: shovelcat.PointOneFour,
		}
	}
}

// Query asks the observer about a position on the z axis.
//
// Looped observers (Void, Something) resolve positions linearly: their
// confidence falls off with distance from the boundary at 1. The Depth
// observer has no shifted loop; it is certain only at z→0 (reciprocal
// blows up — definitely something) and at the boundary, dismissive far
// out (z→∞ maps to ~0), and noncommittal everywhere else.
func (o Observer) Query(z float64) Verdict {
	if o.HasShiftedLoop {
		confidence := 1.0 - math.Abs(1.0-z)*0.1
		if confidence < 0 {
			confidence = 0
		}

		return Verdict{
			Confidence: confidence,
			Message:    fmt.Sprintf("position verified at z=%.4f", z),
		}
	}

	switch {
	case math.Abs(z) < 1e-10:
		return Verdict{Confidence: 1.0, Message: "definitely something (1/z diverges)"}
	case math.Abs(z-1.0) < 0.001:
		return Verdict{Confidence: 0.99, Message: "yes, definitely right here at the boundary"}
	case z > 100:
		return Verdict{Confidence: 0.1, Message: "probably nothing (1/z vanishes)"}
	default:
		return Verdict{Confidence: 0.5, Message: "yeah, probably that one"}
	}
}

// Fuzziness is the deviation of the observer's estimate ratio from the
// ideal 3/(π−3). On the <1 side both views are reciprocal, so the
// comparison happens in reciprocal space too.
func (o Observer) Fuzziness() float64 {
	ideal := 3.0 / shovelcat.PointOneFour
	actual := o.EstimateThree / o.EstimatePointOneFour

	if o.Side == SideLess {
		return math.Abs(1/ideal - 1/actual)
	}

	return math.Abs(ideal - actual)
}

// NewTriad constructs the canonical three orthogonal observers.
func NewTriad() Triad {
	return Triad{
		Void:      New(Void),
		Something: New(Something),
		Depth:     New(Depth),
	}
}

// Verify runs a combined verification pass at z. The depth verdict is
// weighted at half; the pass verifies when the weighted confidence
// clears 0.7.
func (t Triad) Verify(z float64) Verification {
	v1 := t.Void.Query(z)
	v2 := t.Something.Query(z)
	v3 := t.Depth.Query(z)

	confidence := (v1.Confidence + v2.Confidence + 0.5*v3.Confidence) / 2.5

	return Verification{
		PerObserver: [3]Verdict{v1, v2, v3},
		Confidence:  confidence,
		Verified:    confidence > 0.7,
	}
}
