package quadtree_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/san-kum/partsim/internal/particle"
	"github.com/san-kum/partsim/internal/quadtree"
)

// checkMass verifies the aggregate mass invariant for every node of the
// subtree and returns the node count visited.
func checkMass(n *quadtree.Node) int {
	visited := 1
	if n.Leaf() {
		sum := 0.0
		for _, p := range n.Particles() {
			sum += p.Mass
		}
		Expect(n.Mass).To(BeNumerically("~", sum, sum*1e-9+1e-9))
		return visited
	}
	Expect(n.Particles()).To(BeEmpty())
	Expect(n.Children()).To(HaveLen(4))
	sum := 0.0
	for _, c := range n.Children() {
		sum += c.Mass
		visited += checkMass(c)
	}
	Expect(n.Mass).To(BeNumerically("~", sum, sum*1e-9+1e-9))
	return visited
}

func countParticles(n *quadtree.Node) int {
	if n.Leaf() {
		return len(n.Particles())
	}
	total := 0
	for _, c := range n.Children() {
		total += countParticles(c)
	}
	return total
}

var _ = Describe("Quadtree", func() {
	It("keeps a single particle in the root leaf", func() {
		root := quadtree.New(0, 0, 100)
		p := particle.New(10, 20, 5, 1)
		root.Insert(p)

		Expect(root.Leaf()).To(BeTrue())
		Expect(root.Particles()).To(HaveLen(1))
		Expect(root.Mass).To(Equal(5.0))
		Expect(root.CenterX).To(Equal(10.0))
		Expect(root.CenterY).To(Equal(20.0))
	})

	It("subdivides when a leaf exceeds capacity", func() {
		root := quadtree.New(0, 0, 100)
		positions := [][2]float64{{10, 10}, {90, 10}, {10, 90}, {90, 90}, {60, 60}}
		for _, pos := range positions {
			root.Insert(particle.New(pos[0], pos[1], 1, 1))
		}

		Expect(root.Leaf()).To(BeFalse())
		Expect(root.Children()).To(HaveLen(4))
		Expect(root.Particles()).To(BeEmpty())
		Expect(countParticles(root)).To(Equal(5))
	})

	It("assigns a midline point to exactly one child", func() {
		root := quadtree.New(0, 0, 100)
		// Five particles force subdivision; one sits exactly on the
		// midpoint and must land in a single quadrant.
		root.Insert(particle.New(50, 50, 1, 1))
		root.Insert(particle.New(10, 10, 1, 1))
		root.Insert(particle.New(20, 10, 1, 1))
		root.Insert(particle.New(10, 20, 1, 1))
		root.Insert(particle.New(30, 30, 1, 1))

		Expect(countParticles(root)).To(Equal(5))

		// Half-open bounds send the midpoint to the bottom-right child.
		holders := 0
		for _, c := range root.Children() {
			for _, p := range c.Particles() {
				if p.X == 50 && p.Y == 50 {
					holders++
				}
			}
		}
		Expect(holders).To(Equal(1))
	})

	It("maintains the recursive mass invariant over random inserts", func() {
		rng := rand.New(rand.NewSource(7))
		cloud := particle.NewCloud(100, 5, 1e12, 800, 600, rng)
		root := quadtree.Build(cloud, 800, 600)

		total := particle.TotalMass(cloud)
		Expect(root.Mass).To(BeNumerically("~", total, total*1e-12))
		checkMass(root)
	})

	It("tracks the mass-weighted center of mass", func() {
		root := quadtree.New(0, 0, 100)
		root.Insert(particle.New(0, 0, 1, 1))
		root.Insert(particle.New(90, 0, 3, 1))

		// (0*1 + 90*3) / 4 = 67.5
		Expect(root.CenterX).To(BeNumerically("~", 67.5, 1e-9))
		Expect(root.CenterY).To(BeNumerically("~", 0, 1e-9))
	})

	It("caps subdivision depth for coincident particles", func() {
		root := quadtree.New(0, 0, 100)
		// Far more coincident particles than any leaf can hold. Without
		// the depth cap this would recurse without bound.
		for i := 0; i < 64; i++ {
			root.Insert(particle.New(12.345, 67.89, 1, 1))
		}

		Expect(countParticles(root)).To(Equal(64))
		Expect(root.Mass).To(BeNumerically("~", 64.0, 1e-6))
	})

	It("builds over the square covering non-square bounds", func() {
		rng := rand.New(rand.NewSource(3))
		cloud := particle.NewCloud(30, 5, 1.0, 1280, 720, rng)
		root := quadtree.Build(cloud, 1280, 720)

		Expect(root.Size).To(Equal(1280.0))
		Expect(countParticles(root)).To(Equal(30))
	})
})
