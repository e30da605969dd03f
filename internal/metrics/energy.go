package metrics

import (
	"math"

	"github.com/san-kum/partsim/internal/forces"
	"github.com/san-kum/partsim/internal/particle"
)

// TotalEnergy returns kinetic plus pairwise interaction potential energy.
// The potential matches the attractive inverse-square law the solvers
// apply: U = -K*mi*mj/r per pair, softened the same way as the force.
func TotalEnergy(particles []*particle.Particle) float64 {
	e := 0.0
	for i, p := range particles {
		e += p.KineticEnergy()
		for _, q := range particles[i+1:] {
			dx := q.X - p.X
			dy := q.Y - p.Y
			r := math.Sqrt(dx*dx + dy*dy + forces.Epsilon)
			e -= forces.Coulomb * p.Mass * q.Mass / r
		}
	}
	return e
}

// EnergyDrift tracks the maximum relative deviation of total energy from
// its value at the first observation.
type EnergyDrift struct {
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift() *EnergyDrift {
	return &EnergyDrift{}
}

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(particles []*particle.Particle, t float64) {
	energy := TotalEnergy(particles)
	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 { return e.maxDrift }

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}
