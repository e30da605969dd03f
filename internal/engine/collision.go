package engine

import (
	"math"

	"github.com/san-kum/partsim/internal/particle"
)

// DefaultDamping is the energy-loss factor applied to the normal velocity
// components on each contact. 1 is perfectly elastic.
const DefaultDamping = 0.99

// Resolver detects and resolves particle-particle and particle-wall
// overlaps inside the given bounds. Both passes run over post-integration
// positions and velocities; the wall pass runs strictly second so that
// pushed-apart particles are re-checked with corrected positions.
type Resolver struct {
	Width, Height float64
	Damping       float64
	WallDamping   float64
}

func NewResolver(width, height float64) *Resolver {
	return &Resolver{
		Width:       width,
		Height:      height,
		Damping:     DefaultDamping,
		WallDamping: DefaultDamping,
	}
}

// ResolveParticles separates every overlapping pair and exchanges the
// normal velocity components by the 1-D two-body elastic formula.
// Tangential components are untouched (frictionless contact).
func (r *Resolver) ResolveParticles(particles []*particle.Particle) {
	for i := 0; i < len(particles)-1; i++ {
		p1 := particles[i]
		for j := i + 1; j < len(particles); j++ {
			p2 := particles[j]

			dx := p2.X - p1.X
			dy := p2.Y - p1.Y
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist >= p1.Radius+p2.Radius {
				continue
			}

			// Contact normal; an exactly coincident pair gets an
			// arbitrary fixed axis instead of a zero division.
			nx, ny := 1.0, 0.0
			if dist > 0 {
				nx = dx / dist
				ny = dy / dist
			}

			overlap := p1.Radius + p2.Radius - dist
			p1.X -= nx * overlap / 2
			p1.Y -= ny * overlap / 2
			p2.X += nx * overlap / 2
			p2.Y += ny * overlap / 2

			tx, ty := -ny, nx

			v1n := p1.VX*nx + p1.VY*ny
			v2n := p2.VX*nx + p2.VY*ny
			v1t := p1.VX*tx + p1.VY*ty
			v2t := p2.VX*tx + p2.VY*ty

			m1, m2 := p1.Mass, p2.Mass
			v1nNew := ((v1n*(m1-m2) + 2*m2*v2n) / (m1 + m2)) * r.Damping
			v2nNew := ((v2n*(m2-m1) + 2*m1*v1n) / (m1 + m2)) * r.Damping

			p1.VX = v1t*tx + v1nNew*nx
			p1.VY = v1t*ty + v1nNew*ny
			p2.VX = v2t*tx + v2nNew*nx
			p2.VY = v2t*ty + v2nNew*ny
		}
	}
}

// ResolveWalls reflects the perpendicular velocity component of any
// particle whose edge crosses a boundary and clamps the coordinate to the
// boundary offset by the radius.
func (r *Resolver) ResolveWalls(particles []*particle.Particle) {
	for _, p := range particles {
		if p.X-p.Radius < 0 {
			p.VX = -p.VX * r.WallDamping
			p.X = p.Radius
		} else if p.X+p.Radius > r.Width {
			p.VX = -p.VX * r.WallDamping
			p.X = r.Width - p.Radius
		}

		if p.Y-p.Radius < 0 {
			p.VY = -p.VY * r.WallDamping
			p.Y = p.Radius
		} else if p.Y+p.Radius > r.Height {
			p.VY = -p.VY * r.WallDamping
			p.Y = r.Height - p.Radius
		}
	}
}
