package forces

import "github.com/san-kum/partsim/internal/particle"

// Direct is the exact O(n^2) solver: every unordered pair is evaluated
// once and the force applied symmetrically, so the accumulated forces
// cancel exactly across the collection.
type Direct struct{}

func NewDirect() *Direct {
	return &Direct{}
}

func (d *Direct) Solve(particles []*particle.Particle) {
	for i := 0; i < len(particles)-1; i++ {
		pi := particles[i]
		for j := i + 1; j < len(particles); j++ {
			pj := particles[j]
			fx, fy, ok := pairForce(pi.X, pi.Y, pi.Mass, pi.Radius, pj.X, pj.Y, pj.Mass, pj.Radius)
			if !ok {
				continue
			}
			pi.FX += fx
			pi.FY += fy
			pj.FX -= fx
			pj.FY -= fy
		}
	}
}
