package metrics

import (
	"math"

	"github.com/san-kum/partsim/internal/particle"
)

// Momentum reports the magnitude of the total momentum vector at the
// most recent observation.
type Momentum struct {
	current float64
}

func NewMomentum() *Momentum {
	return &Momentum{}
}

func (m *Momentum) Name() string { return "momentum" }

func (m *Momentum) Observe(particles []*particle.Particle, t float64) {
	px, py := particle.TotalMomentum(particles)
	m.current = math.Hypot(px, py)
}

func (m *Momentum) Value() float64 { return m.current }

func (m *Momentum) Reset() { m.current = 0 }

// MaxSpeed reports the largest particle speed seen over the run.
type MaxSpeed struct {
	max float64
}

func NewMaxSpeed() *MaxSpeed {
	return &MaxSpeed{}
}

func (m *MaxSpeed) Name() string { return "max_speed" }

func (m *MaxSpeed) Observe(particles []*particle.Particle, t float64) {
	m.max = math.Max(m.max, particle.MaxSpeed(particles))
}

func (m *MaxSpeed) Value() float64 { return m.max }

func (m *MaxSpeed) Reset() { m.max = 0 }
