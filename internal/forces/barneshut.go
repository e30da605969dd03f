package forces

import (
	"math"

	"github.com/san-kum/partsim/internal/particle"
	"github.com/san-kum/partsim/internal/quadtree"
)

// DefaultTheta is the opening ratio below which a subtree is treated as a
// single point mass at its center of mass. Smaller values converge toward
// the direct solver; larger values approximate distant clusters more
// aggressively.
const DefaultTheta = 0.8

// BarnesHut approximates the pairwise sum in O(n log n) expected time by
// building a quadtree over the simulation bounds each Solve and walking
// it once per particle.
type BarnesHut struct {
	Width, Height float64
	Theta         float64
}

func NewBarnesHut(width, height, theta float64) *BarnesHut {
	if theta <= 0 {
		theta = DefaultTheta
	}
	return &BarnesHut{Width: width, Height: height, Theta: theta}
}

func (b *BarnesHut) Solve(particles []*particle.Particle) {
	root := quadtree.Build(particles, b.Width, b.Height)
	for _, p := range particles {
		b.accumulate(p, root)
	}
}

// accumulate walks the subtree rooted at n and adds its contribution to
// p's force accumulators. Unlike the direct solver this is one-sided:
// each particle's own walk supplies its share.
func (b *BarnesHut) accumulate(p *particle.Particle, n *quadtree.Node) {
	if n.Mass == 0 {
		return
	}

	if n.Leaf() {
		for _, q := range n.Particles() {
			if q == p {
				continue
			}
			fx, fy, ok := pairForce(p.X, p.Y, p.Mass, p.Radius, q.X, q.Y, q.Mass, q.Radius)
			if !ok {
				continue
			}
			p.FX += fx
			p.FY += fy
		}
		return
	}

	dx := n.CenterX - p.X
	dy := n.CenterY - p.Y
	dist := math.Sqrt(dx*dx + dy*dy + Epsilon)

	// Node center of mass sits on top of the particle: no usable
	// direction, skip the contribution.
	if dist < 1 {
		return
	}

	if n.Size/dist < b.Theta {
		distSq := dx*dx + dy*dy + Epsilon
		f := Coulomb * p.Mass * n.Mass / distSq
		if f > MaxForce {
			f = MaxForce
		}
		p.FX += f * dx / dist
		p.FY += f * dy / dist
		return
	}

	for _, child := range n.Children() {
		b.accumulate(p, child)
	}
}
