// Package forces computes the net inverse-square force on every particle.
// Two interchangeable solvers exist: exact pairwise summation and a
// Barnes-Hut approximation over a quadtree.
package forces

import (
	"math"

	"github.com/san-kum/partsim/internal/particle"
)

const (
	// Coulomb is the interaction constant of the inverse-square law.
	Coulomb = 8.9875e9

	// MaxForce clamps the pairwise force magnitude for smoother motion
	// near close approaches.
	MaxForce = 1e12

	// Epsilon softens the squared distance so coincident particles never
	// divide by zero.
	Epsilon = 1e-7
)

// Solver accumulates net force into each particle's FX and FY without
// moving anything. Forces are additive: calling Solve twice without an
// integration pass in between double-counts.
type Solver interface {
	Solve(particles []*particle.Particle)
}

// pairForce returns the force vector exerted on a particle at (x, y) with
// mass m by a point mass (om) at (ox, oy). Overlapping bodies (separation
// under the summed radii) exert no field force; collision handling owns
// that regime, so ok is false there.
//
// The vector points toward the other body, so the law as configured is
// net attractive between particles.
func pairForce(x, y, m, r, ox, oy, om, or float64) (fx, fy float64, ok bool) {
	dx := ox - x
	dy := oy - y
	distSq := dx*dx + dy*dy + Epsilon
	dist := math.Sqrt(distSq)

	if dist < r+or {
		return 0, 0, false
	}

	f := Coulomb * m * om / distSq
	if f > MaxForce {
		f = MaxForce
	}
	return f * dx / dist, f * dy / dist, true
}
