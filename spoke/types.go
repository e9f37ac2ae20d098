// Package spoke types and options.
package spoke

// Axis identifies one of the three independent bend directions.
type Axis int

const (
	// AxisX bends cost heat (temperature, entropy).
	AxisX Axis = iota
	// AxisY bends cost mass (matter redistribution, inertia).
	AxisY
	// AxisZ bends cost energy (work, action).
	AxisZ
)

// String returns the conventional axis name ("X", "Y", "Z").
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "?"
	}
}

// Category is the currency a deformation pays in.
type Category string

const (
	// CategoryHeat is the cost category of X-axis bends.
	CategoryHeat Category = "heat"
	// CategoryMass is the cost category of Y-axis bends.
	CategoryMass Category = "mass"
	// CategoryEnergy is the cost category of Z-axis bends.
	CategoryEnergy Category = "energy"
)

// Cost is one named deformation cost. Immutable once computed.
type Cost struct {
	// Axis is the bend direction the cost is attributed to.
	Axis Axis
	// Category is the fixed currency for that axis.
	Category Category
	// Magnitude is the policy-computed cost, ≥ 0.
	Magnitude float64
}

// CostFunc maps a bend angle in radians to a cost magnitude.
// Implementations must be pure and return 0 at 0 rad.
type CostFunc func(radians float64) float64

// CostModelSine is the name of the default sine-based cost policy.
const CostModelSine = "sine"

// Options configures cost evaluation.
//
// Fields:
//   - CostModel — name of the registered magnitude policy. The default,
//     "sine", is monotonically increasing over [0°, 90°], zero at 0° and
//     maximal (1.0) at 90°.
type Options struct {
	CostModel string
}

// DefaultOptions returns the sine-based configuration.
func DefaultOptions() Options {
	return Options{CostModel: CostModelSine}
}

// Bridge is a spoke between two intersection points, with per-axis bend
// deformations in degrees. A snapped bridge has lost its verification
// link and contributes no support.
type Bridge struct {
	Start [3]float64
	End   [3]float64

	// BendX/BendY/BendZ are deformation angles in degrees, each in
	// [0, 180].
	BendX float64
	BendY float64
	BendZ float64

	// Intact is false once the bridge has snapped.
	Intact bool
}
