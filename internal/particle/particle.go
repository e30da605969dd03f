package particle

import (
	"math"
	"math/rand"
)

const DefaultMass = 1e12

// Particle is a point mass with a collision radius. FX and FY are force
// accumulators valid only within a single simulation tick; the integrator
// consumes and zeroes them.
type Particle struct {
	X, Y   float64
	VX, VY float64
	FX, FY float64
	Mass   float64
	Radius float64
}

func New(x, y, mass, radius float64) *Particle {
	return &Particle{X: x, Y: y, Mass: mass, Radius: radius}
}

func (p *Particle) Speed() float64 {
	return math.Hypot(p.VX, p.VY)
}

func (p *Particle) KineticEnergy() float64 {
	return 0.5 * p.Mass * (p.VX*p.VX + p.VY*p.VY)
}

// NewCloud places n particles uniformly at rest inside
// [radius, width-radius] x [radius, height-radius].
func NewCloud(n int, radius, mass, width, height float64, rng *rand.Rand) []*Particle {
	cloud := make([]*Particle, n)
	for i := range cloud {
		x := radius + rng.Float64()*(width-2*radius)
		y := radius + rng.Float64()*(height-2*radius)
		cloud[i] = New(x, y, mass, radius)
	}
	return cloud
}

// MaxSpeed returns the largest instantaneous speed in the collection.
func MaxSpeed(particles []*Particle) float64 {
	maxSq := 0.0
	for _, p := range particles {
		sq := p.VX*p.VX + p.VY*p.VY
		if sq > maxSq {
			maxSq = sq
		}
	}
	return math.Sqrt(maxSq)
}

// MinRadius returns the smallest collision radius in the collection.
func MinRadius(particles []*Particle) float64 {
	if len(particles) == 0 {
		return 0
	}
	min := particles[0].Radius
	for _, p := range particles[1:] {
		if p.Radius < min {
			min = p.Radius
		}
	}
	return min
}

// TotalMomentum returns the summed momentum vector of the collection.
func TotalMomentum(particles []*Particle) (px, py float64) {
	for _, p := range particles {
		px += p.Mass * p.VX
		py += p.Mass * p.VY
	}
	return
}

// TotalMass returns the summed mass of the collection.
func TotalMass(particles []*Particle) float64 {
	m := 0.0
	for _, p := range particles {
		m += p.Mass
	}
	return m
}
