// Package spoke models spoke bridges: the support beams between
// intersection points, and the cost of deforming them.
//
// 🚀 What is the spoke-bridge model?
//
//	Spokes hold polygon sides up like the beams of a truss bridge.
//	Bending a spoke has a cost, and the currency depends on the axis:
//
//	  Axis   Cost category
//	  ─────────────────────
//	  X      heat
//	  Y      mass
//	  Z      energy
//
//	A broken spoke loses its verification link entirely — the side it
//	supported is no longer held.
//
// ✨ Key properties:
//   - Cost magnitude rises monotonically with bend over [0°, 90°]:
//     zero at 0°, maximal at 90°.
//   - The magnitude function is a named, pluggable policy. The default
//     model is "sine": sin(bend in radians). The source material gives
//     no closed form, so the choice is explicit and swappable via
//     Options.CostModel / RegisterCostModel.
//
// ⚙️ Usage:
//
//	cost, err := spoke.DeformationCost(spoke.AxisX, 90, spoke.DefaultOptions())
//	// cost.Category == spoke.CategoryHeat, cost.Magnitude ≈ 1.0
//
// Bridges with per-axis bends aggregate their costs and can Snap:
//
//	b := spoke.Bridge{End: [3]float64{1, 0, 0}, BendY: 30, Intact: true}
//	costs, total, err := b.Costs(spoke.DefaultOptions())
//
// See example_test.go for walkthroughs.
package spoke
