// Package network builds the synthetic intersection network: the grid of
// crossing points counted per unit length.
//
// 🚀 What is the intersection network?
//
//	Rotating polygon rings against each other makes their edges cross;
//	the crossing points are the intersections — dimensionless joints
//	where spokes meet. The network is characterized by a single density
//	parameter: intersections per unit length (the default density,
//	shovelcat.DefaultIntersectionDensity, is ≈ 1445 per unit — the grain
//	size of the lattice).
//
// ⚙️ Core contract:
//
//	n, err := network.CountIntersections(1444.7) // n == 1445
//
//	CountIntersections is a named wrapper over round(density) so a
//	synthesizer can attribute a factor to "network density" with a
//	documented provenance label. density must be > 0.
//
// ✨ The structural supplement:
//
//	Ring — a regular polygon whose spokes run center→vertex as
//	spoke.Bridge values. Rings rotate (Rotate90 creates the crossing
//	network), intersect pairwise, and report structural integrity as the
//	fraction of intact bridges. Build assembles the canonical three-ring
//	arrangement (φ, ψ₁, ψ₂ — hexagons at 0, 30° and 60°) plus the
//	90°-rotated copy of φ.
//
// See example_test.go for walkthroughs.
package network
