// Package engine advances particle motion over discrete time steps:
// numerical integration, collision resolution, and the per-tick
// orchestration that ties them to a force solver.
package engine

import (
	"github.com/san-kum/partsim/internal/forces"
	"github.com/san-kum/partsim/internal/particle"
)

// Stepper runs one simulation tick at a time: solve forces, pick the
// adaptive step, integrate, resolve particle collisions, resolve wall
// collisions. A tick is synchronous and always runs to completion; the
// particle collection is exclusively owned by the executing tick.
//
// Between ticks a caller may overwrite a particle's position directly
// (drag). That is the only sanctioned external mutation path.
type Stepper struct {
	solver     forces.Solver
	integrator *Euler
	resolver   *Resolver
	dtMax      float64
}

func NewStepper(solver forces.Solver, resolver *Resolver, dtMax float64) *Stepper {
	if dtMax <= 0 {
		dtMax = DtMax
	}
	return &Stepper{
		solver:     solver,
		integrator: NewEuler(),
		resolver:   resolver,
		dtMax:      dtMax,
	}
}

// SetSolver swaps the force solver between ticks.
func (s *Stepper) SetSolver(solver forces.Solver) { s.solver = solver }

// Tick mutates the particle collection in place and returns the time step
// that was used.
func (s *Stepper) Tick(particles []*particle.Particle) float64 {
	s.solver.Solve(particles)
	dt := AdaptiveDt(particles, s.dtMax)
	s.integrator.Step(particles, dt)
	s.resolver.ResolveParticles(particles)
	s.resolver.ResolveWalls(particles)
	return dt
}
