// Package shovelcat derives physical-constant-like numbers from a small
// set of geometric and structural parameters, with full provenance for
// every contributing factor and an explicit error-budget accounting step.
//
// 🚀 What is shovelcat?
//
//	A deterministic constant-derivation pipeline built from four pieces:
//	  • network/  — synthetic intersection network (points per unit length)
//	  • spoke/    — deformation costs of spoke bridges (heat/mass/energy by axis)
//	  • sink/     — the uncertainty sink: drains injected error, reports residual
//	  • synth/    — combines factors + residual into a DerivedConstant
//
// Supporting packages:
//
//	observer/ — the three orthogonal observers (metadata + boundary queries)
//	report/   — plain-text rendering of derivation breakdowns
//	cmd/      — the shovelcat demonstration command
//
// ✨ Why shovelcat?
//
//   - Pure functions — identical inputs always produce identical outputs
//   - Full provenance — every constant carries its ordered factor breakdown
//   - Exact accounting — drained + residual == injected, always
//   - Pluggable policies — cost and ratio models are selected by name
//
// Quick taste:
//
//	c, err := synth.DeriveLightSpeed(3.0, shovelcat.ObserverThreshold, 1e8)
//	if err != nil { ... }
//	fmt.Println(c.Value) // ≈ 2.9979e8
//
// Every parameter-validation failure wraps the single sentinel
// shovelcat.ErrDomain, so callers branch once:
//
//	if errors.Is(err, shovelcat.ErrDomain) { /* fix the input, re-invoke */ }
//
// Dive into the per-package doc.go files and examples/ for walkthroughs.
package shovelcat
