package engine

import (
	"math"

	"github.com/san-kum/partsim/internal/forces"
	"github.com/san-kum/partsim/internal/particle"
)

// DtMax bounds the adaptive time step.
const DtMax = 5.0

// Euler is the semi-implicit Euler integrator: velocity is updated from
// the accumulated force first, then position from the new velocity. It
// consumes and zeroes the force accumulators, so a completed step always
// leaves FX and FY at zero.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(particles []*particle.Particle, dt float64) {
	for _, p := range particles {
		p.VX += p.FX / p.Mass * dt
		p.VY += p.FY / p.Mass * dt
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.FX = 0
		p.FY = 0
	}
}

// AdaptiveDt picks the step size for the coming tick from the speeds
// measured before integration: no particle may travel further than its
// own radius in one step, which keeps fast bodies from tunneling through
// thin ones. With uniform radii the smallest radius is the shared one.
func AdaptiveDt(particles []*particle.Particle, dtMax float64) float64 {
	r := particle.MinRadius(particles)
	maxSpeed := particle.MaxSpeed(particles)
	return math.Min(dtMax, r/(maxSpeed+forces.Epsilon))
}
