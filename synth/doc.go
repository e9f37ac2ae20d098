// Package synth combines independently-configured factors and an error
// budget into a DerivedConstant: a final value with full provenance.
//
// 🚀 What is the synthesizer?
//
//	The last stage of the derivation pipeline. It takes labeled factors
//	(each tagged with the structural element it is attributed to),
//	optionally drains an injected error magnitude through the
//	uncertainty sink, and returns the decomposed result:
//
//	  DerivedConstant{ Value, Factors (ordered), Budget }
//
// Two canonical derivations ship with the package:
//
//   - DeriveLightSpeed(ring, threshold, boundary)
//     value = ring × threshold × boundary, factors in that order.
//     The three inputs are taken as already fixed — no error accounting.
//
//     c, _ := synth.DeriveLightSpeed(3.0, 0.9993081933, 1e8) // ≈ 2.9979e8
//
//   - DeriveAlpha(thetaDegrees, alpha0)
//     value = alpha0 × cos(θ)/cos(45°); a single "theta-ratio" factor.
//     The general form DeriveAlphaAt takes an arbitrary reference angle
//     and fails when cos(reference) == 0 (reference ≡ 90° mod 180°).
//
// ✨ Guarantees:
//   - Pure functions: identical inputs → identical DerivedConstant.
//   - No partial results: a domain error returns the zero value.
//   - The residual is provenance, never folded into Value.
//
// The θ-ratio relationship has no derivation in the source material, so
// it is a named, pluggable policy (Options.RatioModel, default "cosine",
// extended via RegisterRatioModel) — alternative forms substitute without
// touching the synthesizer contract.
//
// The geometric closed form for α (AlphaFromGeometry) and its ppb
// deviation from the measured value (AlphaErrorPPB) round out the
// package.
package synth
