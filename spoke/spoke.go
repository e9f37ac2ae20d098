package spoke

import "math"

// costModels holds the registered magnitude policies by name.
// The map is populated at init time and by RegisterCostModel; lookups
// during evaluation are read-only.
var costModels = map[string]CostFunc{
	CostModelSine: math.Sin,
}

// RegisterCostModel registers (or replaces) a named magnitude policy.
// An empty name or nil fn is ignored. Not safe to call concurrently with
// cost evaluation; register models during setup.
func RegisterCostModel(name string, fn CostFunc) {
	if name == "" || fn == nil {
		return
	}
	costModels[name] = fn
}

// categoryFor maps an axis to its fixed cost category.
func categoryFor(axis Axis) (Category, error) {
	switch axis {
	case AxisX:
		return CategoryHeat, nil
	case AxisY:
		return CategoryMass, nil
	case AxisZ:
		return CategoryEnergy, nil
	default:
		return "", ErrUnknownAxis
	}
}

// DeformationCost computes the named cost of bending a spoke along one
// axis.
//
// bendDegrees must be finite and in [0, 180]. The magnitude comes from
// the policy named by opts.CostModel (default "sine"): zero at 0°,
// maximal at 90°, symmetric back to zero at 180° for the sine model.
func DeformationCost(axis Axis, bendDegrees float64, opts Options) (Cost, error) {
	category, err := categoryFor(axis)
	if err != nil {
		return Cost{}, err
	}
	if math.IsNaN(bendDegrees) || bendDegrees < 0 || bendDegrees > 180 {
		return Cost{}, ErrBendOutOfRange
	}

	model := opts.CostModel
	if model == "" {
		model = CostModelSine
	}
	fn, ok := costModels[model]
	if !ok {
		return Cost{}, ErrUnknownCostModel
	}

	return Cost{
		Axis:      axis,
		Category:  category,
		Magnitude: fn(bendDegrees * math.Pi / 180),
	}, nil
}

// Length returns the Euclidean length of the bridge.
func (b Bridge) Length() float64 {
	dx := b.End[0] - b.Start[0]
	dy := b.End[1] - b.Start[1]
	dz := b.End[2] - b.Start[2]

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Costs evaluates the bridge's three bends under opts and returns the
// per-axis costs in axis order (X, Y, Z) plus the summed total.
func (b Bridge) Costs(opts Options) ([]Cost, float64, error) {
	bends := [3]float64{b.BendX, b.BendY, b.BendZ}
	axes := [3]Axis{AxisX, AxisY, AxisZ}

	costs := make([]Cost, 0, len(axes))
	total := 0.0
	for i, axis := range axes {
		c, err := DeformationCost(axis, bends[i], opts)
		if err != nil {
			return nil, 0, err
		}
		costs = append(costs, c)
		total += c.Magnitude
	}

	return costs, total, nil
}

// Snap breaks the bridge. The verification link is lost; Intact reads
// false afterwards. Snapping an already-broken bridge is a no-op.
func (b *Bridge) Snap() {
	b.Intact = false
}
