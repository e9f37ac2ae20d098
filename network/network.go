package network

import (
	"math"

	"github.com/jpelchat/shovelcat/spoke"
)

// CountIntersections returns the deterministic intersection count for one
// unit length at the given density (intersections per unit length).
//
// The count is round(density). density must be finite and > 0; otherwise
// ErrNonPositiveDensity is returned. No side effects — this is a named
// wrapper over a scalar so a synthesized constant can carry a
// "network density" provenance label.
func CountIntersections(density float64) (int, error) {
	if math.IsNaN(density) || math.IsInf(density, 0) || density <= 0 {
		return 0, ErrNonPositiveDensity
	}

	return int(math.Round(density)), nil
}

// NewRing constructs a regular polygon ring with center→vertex bridges.
// sides must be ≥ 3 and radius finite and > 0.
func NewRing(sides int, radius, rotation float64, center Point) (Ring, error) {
	if sides < 3 {
		return Ring{}, ErrTooFewSides
	}
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return Ring{}, ErrNonPositiveRadius
	}

	r := Ring{
		Sides:    sides,
		Radius:   radius,
		Rotation: rotation,
		Center:   center,
	}
	r.bridges = make([]spoke.Bridge, 0, sides)
	for i := 0; i < sides; i++ {
		angle := rotation + 2*math.Pi*float64(i)/float64(sides)
		vertex := [3]float64{
			center.X + radius*math.Cos(angle),
			center.Y + radius*math.Sin(angle),
			center.Z,
		}
		r.bridges = append(r.bridges, spoke.Bridge{
			Start:  [3]float64{center.X, center.Y, center.Z},
			End:    vertex,
			Intact: true,
		})
	}

	return r, nil
}

// Bridges returns the ring's spoke bridges. The slice is the ring's own
// backing store: snapping a returned bridge changes the ring's integrity.
func (r *Ring) Bridges() []spoke.Bridge {
	return r.bridges
}

// Rotate90 returns a copy of the ring rotated a quarter turn — the
// rotation that generates the crossing network.
func (r Ring) Rotate90() Ring {
	rotated, err := NewRing(r.Sides, r.Radius, r.Rotation+math.Pi/2, r.Center)
	if err != nil {
		// The receiver was already validated; a copy cannot fail.
		return r
	}

	return rotated
}

// IntersectionsWith returns the crossing points between this ring and
// another, one per bridge pair, approximated at the midpoint between the
// bridges' outer endpoints.
func (r Ring) IntersectionsWith(other Ring) []Point {
	points := make([]Point, 0, len(r.bridges)*len(other.bridges))
	for _, a := range r.bridges {
		for _, b := range other.bridges {
			points = append(points, Point{
				X: (a.End[0] + b.End[0]) / 2,
				Y: (a.End[1] + b.End[1]) / 2,
				Z: (a.End[2] + b.End[2]) / 2,
			})
		}
	}

	return points
}

// Integrity returns the fraction of intact bridges in [0,1]. An empty
// slice has no support at all and reports 0.
func Integrity(bridges []spoke.Bridge) float64 {
	if len(bridges) == 0 {
		return 0
	}

	intact := 0
	for _, b := range bridges {
		if b.Intact {
			intact++
		}
	}

	return float64(intact) / float64(len(bridges))
}

// Build assembles the canonical network: three rings at rotations 0, π/6
// and π/3, plus the crossings each pair generates and the crossings of
// the first ring against its own 90°-rotated copy.
func Build(opts Options) (*Network, error) {
	sides := opts.Sides
	if sides == 0 {
		sides = DefaultOptions().Sides
	}
	radius := opts.Radius
	if radius == 0 {
		radius = DefaultOptions().Radius
	}

	phi, err := NewRing(sides, radius, 0, Point{})
	if err != nil {
		return nil, err
	}
	psi1, err := NewRing(sides, radius, math.Pi/6, Point{})
	if err != nil {
		return nil, err
	}
	psi2, err := NewRing(sides, radius, math.Pi/3, Point{})
	if err != nil {
		return nil, err
	}

	n := &Network{Phi: phi, Psi1: psi1, Psi2: psi2}
	n.points = append(n.points, phi.IntersectionsWith(psi1)...)
	n.points = append(n.points, psi1.IntersectionsWith(psi2)...)
	n.points = append(n.points, psi2.IntersectionsWith(phi)...)
	n.points = append(n.points, phi.IntersectionsWith(phi.Rotate90())...)

	return n, nil
}

// Points returns the generated crossing points.
func (n *Network) Points() []Point {
	return n.points
}

// Density returns the point count per unit length along one ring
// circumference (2π·R for the unit arrangement).
func (n *Network) Density() float64 {
	circumference := 2 * math.Pi * n.Phi.Radius

	return float64(len(n.points)) / circumference
}
