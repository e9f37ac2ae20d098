// Package observer models the three orthogonal observers as metadata
// records with simple boundary-query numerics.
//
// 🚀 The three observers:
//
//	Kind        Unit  Plane  Side  Shifted loop
//	──────────────────────────────────────────────
//	Void        i     x-y    >1    yes
//	Something   j     y-z    >1    yes
//	Depth       k     z-x    <1    no
//
//	The first two cycle through shifted loops and can resolve positions.
//	The depth observer lives on the reciprocal (<1) side, acts alone,
//	and can only be certain near the boundary at 1 — everywhere else it
//	answers "yeah, probably that one".
//
// The narrative labels carry no computational behavior beyond the numeric
// rules documented on Query and Fuzziness; they are provenance strings
// attached to otherwise plain arithmetic.
//
// ⚙️ Usage:
//
//	triad := observer.NewTriad()
//	v := triad.Verify(1.0) // weighted confidence, Verified flag
//
// See observer_test.go for the full query table.
package observer
