// Package network types and options.
package network

import "github.com/jpelchat/shovelcat/spoke"

// Point is one intersection: a dimensionless crossing of edges.
type Point struct {
	X, Y, Z float64
}

// Ring is a regular polygon with spoke bridges running from its center to
// each vertex. Construct rings with NewRing; a zero Ring has no bridges.
type Ring struct {
	// Sides is the number of polygon sides (≥ 3).
	Sides int
	// Radius is the center→vertex distance (> 0).
	Radius float64
	// Rotation is the ring's phase offset in radians.
	Rotation float64
	// Center is the ring's center point.
	Center Point

	bridges []spoke.Bridge
}

// Network is the canonical three-ring arrangement plus the 90°-rotated
// copy of the first ring, with the crossing points they generate.
type Network struct {
	// Phi, Psi1, Psi2 are the three rotated rings of the dance.
	Phi, Psi1, Psi2 Ring

	points []Point
}

// Options configures Build.
//
// Fields:
//   - Sides  — polygon sides per ring (default 6, hexagonal).
//   - Radius — ring radius (default 1).
type Options struct {
	Sides  int
	Radius float64
}

// DefaultOptions returns the hexagonal unit-radius configuration.
func DefaultOptions() Options {
	return Options{Sides: 6, Radius: 1}
}
