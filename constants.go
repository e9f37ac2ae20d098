// Package shovelcat shared constants.
//
// These values anchor every derivation in the repository. They are plain
// numeric parameters of the model, not measured inputs: C is the one
// externally fixed reference, everything else follows from it.
package shovelcat

import "math"

// C is the reference speed of light in m/s, the only externally fixed value.
const C = 299792458.0

// PointOneFour is the fractional part of π (π − 3 ≈ 0.14159…), the ".14
// version" that the depth observer can only estimate.
const PointOneFour = math.Pi - 3

// ObserverThreshold is C scaled against the ideal 3×10⁸ boundary,
// ≈ 0.9993081933. The filter threshold at the boundary: structure on the
// >1 side never quite reaches 1.0.
const ObserverThreshold = C / 3e8

// ObserverFootprint is the deficit 1 − ObserverThreshold ≈ 0.00069181.
// Interpreted as drain capacity: the share of waste the <1 side can absorb
// per unit.
const ObserverFootprint = 1 - ObserverThreshold

// DefaultIntersectionDensity is the reciprocal of the footprint,
// ≈ 1445.2 intersection points per unit length. The grain size of the
// synthetic lattice.
const DefaultIntersectionDensity = 1 / ObserverFootprint

// AlphaMeasured is the CODATA-style fine-structure constant used as the
// comparison fixture for geometric derivations (1/137.035999084).
const AlphaMeasured = 1 / 137.035999084
