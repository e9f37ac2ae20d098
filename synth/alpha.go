package synth

import (
	"math"

	"github.com/jpelchat/shovelcat"
)

// AlphaFromGeometry computes the fine-structure-like constant from the
// vesica geometry closed form:
//
//	α = 1 / (4π³ + π² + π − (π−3)³/9 + 3(π−3)⁵/16)
//
// The five denominator terms are attributed, in order, to the full
// volume (4π³), the 2D interface (π²), the 1D bridge (π), the negative
// cubic correction and the positive quintic return term.
func AlphaFromGeometry() float64 {
	p := shovelcat.PointOneFour // π − 3

	denominator := 4*math.Pow(math.Pi, 3) +
		math.Pi*math.Pi +
		math.Pi -
		math.Pow(p, 3)/9 +
		3*math.Pow(p, 5)/16

	return 1 / denominator
}

// AlphaErrorPPB returns the relative deviation of the geometric α from
// the measured reference value, in parts per billion. This is the
// residual that could not drain through the uncertainty sink (the
// illustrative ~0.37 ppb figure).
func AlphaErrorPPB() float64 {
	calculated := AlphaFromGeometry()

	return math.Abs(calculated-shovelcat.AlphaMeasured) / shovelcat.AlphaMeasured * 1e9
}
