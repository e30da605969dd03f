// Package quadtree provides the spatial index used by the Barnes-Hut
// force solver. Trees are ephemeral: a solver builds one per tick over the
// current particle positions and discards it, so aggregates never go
// stale as particles move.
package quadtree

import "github.com/san-kum/partsim/internal/particle"

const (
	// LeafCapacity is the number of particles a leaf holds before it
	// subdivides into four quadrants.
	LeafCapacity = 4

	// MaxDepth caps subdivision. Many particles at near-identical
	// coordinates would otherwise subdivide without bound; at the cap a
	// leaf accepts particles beyond LeafCapacity instead.
	MaxDepth = 24
)

// Node is an axis-aligned square region of the tree. A node is either a
// leaf holding up to LeafCapacity particle references, or internal with
// exactly four children partitioning the region into equal quadrants.
// Mass and center-of-mass aggregates are kept current on every insert.
type Node struct {
	X, Y, Size float64

	Mass             float64
	CenterX, CenterY float64

	particles []*particle.Particle
	children  []*Node
	depth     int
}

// New returns an empty tree covering the square region with origin (x, y)
// and the given edge length.
func New(x, y, size float64) *Node {
	return &Node{X: x, Y: y, Size: size}
}

func (n *Node) Leaf() bool { return n.children == nil }

// Particles returns the references held directly by a leaf. Internal
// nodes hold none.
func (n *Node) Particles() []*particle.Particle { return n.particles }

// Children returns the four quadrant children of an internal node, nil
// for a leaf.
func (n *Node) Children() []*Node { return n.children }

// Insert adds p to the subtree rooted at n, subdividing full leaves and
// refreshing mass and center-of-mass along the insertion path.
func (n *Node) Insert(p *particle.Particle) {
	total := n.Mass + p.Mass
	n.CenterX = (n.CenterX*n.Mass + p.X*p.Mass) / total
	n.CenterY = (n.CenterY*n.Mass + p.Y*p.Mass) / total
	n.Mass = total

	if n.Leaf() {
		if len(n.particles) < LeafCapacity || n.depth >= MaxDepth {
			n.particles = append(n.particles, p)
			return
		}
		n.subdivide()
	}
	n.children[n.quadrant(p.X, p.Y)].Insert(p)
}

// subdivide converts a full leaf into an internal node and pushes its
// particles down. The leaf-to-internal transition is one-way within a
// tree's lifetime.
func (n *Node) subdivide() {
	half := n.Size / 2
	n.children = []*Node{
		{X: n.X, Y: n.Y, Size: half, depth: n.depth + 1},
		{X: n.X + half, Y: n.Y, Size: half, depth: n.depth + 1},
		{X: n.X, Y: n.Y + half, Size: half, depth: n.depth + 1},
		{X: n.X + half, Y: n.Y + half, Size: half, depth: n.depth + 1},
	}
	for _, q := range n.particles {
		n.children[n.quadrant(q.X, q.Y)].Insert(q)
	}
	n.particles = nil
}

// quadrant assigns a point to exactly one child using half-open bounds:
// [x, x+half) goes left/top, [x+half, x+size) right/bottom. Points on the
// midline therefore never match two siblings.
func (n *Node) quadrant(x, y float64) int {
	half := n.Size / 2
	idx := 0
	if x >= n.X+half {
		idx |= 1
	}
	if y >= n.Y+half {
		idx |= 2
	}
	return idx
}

// Build constructs a tree over the square covering the given bounds and
// inserts every particle.
func Build(particles []*particle.Particle, width, height float64) *Node {
	size := width
	if height > size {
		size = height
	}
	root := New(0, 0, size)
	for _, p := range particles {
		root.Insert(p)
	}
	return root
}
