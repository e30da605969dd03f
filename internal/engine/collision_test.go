package engine

import (
	"math"
	"testing"

	"github.com/san-kum/partsim/internal/particle"
)

func elasticResolver() *Resolver {
	r := NewResolver(800, 600)
	r.Damping = 1
	r.WallDamping = 1
	return r
}

func TestCollisionConservesMomentum(t *testing.T) {
	p1 := particle.New(100, 100, 2e3, 10)
	p1.VX, p1.VY = 5, 1
	p2 := particle.New(112, 100, 5e3, 10)
	p2.VX, p2.VY = -3, 2
	cloud := []*particle.Particle{p1, p2}

	beforeX, beforeY := particle.TotalMomentum(cloud)
	elasticResolver().ResolveParticles(cloud)
	afterX, afterY := particle.TotalMomentum(cloud)

	if math.Abs(afterX-beforeX) > math.Abs(beforeX)*1e-9 {
		t.Errorf("x momentum not conserved: %g -> %g", beforeX, afterX)
	}
	if math.Abs(afterY-beforeY) > math.Abs(beforeY)*1e-9 {
		t.Errorf("y momentum not conserved: %g -> %g", beforeY, afterY)
	}
}

func TestCollisionConservesKineticEnergy(t *testing.T) {
	p1 := particle.New(100, 100, 1e3, 10)
	p1.VX = 4
	p2 := particle.New(115, 100, 3e3, 10)
	p2.VX = -2
	cloud := []*particle.Particle{p1, p2}

	before := p1.KineticEnergy() + p2.KineticEnergy()
	elasticResolver().ResolveParticles(cloud)
	after := p1.KineticEnergy() + p2.KineticEnergy()

	if math.Abs(after-before) > before*1e-9 {
		t.Errorf("kinetic energy not conserved in elastic collision: %g -> %g", before, after)
	}
}

func TestCollisionSeparatesOverlap(t *testing.T) {
	p1 := particle.New(100, 100, 1, 10)
	p2 := particle.New(110, 100, 1, 10)

	elasticResolver().ResolveParticles([]*particle.Particle{p1, p2})

	dist := math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
	if dist < 20-1e-9 {
		t.Errorf("particles still overlap after resolution: distance %f", dist)
	}
	// Each pushed half the overlap along the contact normal.
	if math.Abs(p1.X-95) > 1e-9 || math.Abs(p2.X-115) > 1e-9 {
		t.Errorf("expected symmetric separation, got x1=%f x2=%f", p1.X, p2.X)
	}
}

func TestCollisionPreservesTangentialVelocity(t *testing.T) {
	// Contact normal is x; y components are tangential and must pass
	// through unchanged.
	p1 := particle.New(100, 100, 1e3, 10)
	p1.VX, p1.VY = 3, 7
	p2 := particle.New(112, 100, 1e3, 10)
	p2.VX, p2.VY = -3, -4

	elasticResolver().ResolveParticles([]*particle.Particle{p1, p2})

	if math.Abs(p1.VY-7) > 1e-9 || math.Abs(p2.VY+4) > 1e-9 {
		t.Errorf("tangential components changed: vy1=%f vy2=%f", p1.VY, p2.VY)
	}
	// Equal masses exchange normal components.
	if math.Abs(p1.VX+3) > 1e-9 || math.Abs(p2.VX-3) > 1e-9 {
		t.Errorf("normal components not exchanged: vx1=%f vx2=%f", p1.VX, p2.VX)
	}
}

func TestCollisionDegenerateDistance(t *testing.T) {
	// Exactly coincident particles must not divide by zero; the
	// resolver falls back to the (1, 0) normal.
	p1 := particle.New(200, 200, 1, 10)
	p1.VX = 1
	p2 := particle.New(200, 200, 1, 10)
	p2.VX = -1

	elasticResolver().ResolveParticles([]*particle.Particle{p1, p2})

	if math.IsNaN(p1.X) || math.IsNaN(p1.VX) || math.IsNaN(p2.X) || math.IsNaN(p2.VX) {
		t.Fatal("degenerate collision produced NaN")
	}
	if p1.X >= p2.X {
		t.Errorf("expected separation along +x, got x1=%f x2=%f", p1.X, p2.X)
	}
}

func TestCollisionDamping(t *testing.T) {
	r := NewResolver(800, 600)
	r.Damping = 0.5
	p1 := particle.New(100, 100, 1e3, 10)
	p1.VX = 4
	p2 := particle.New(112, 100, 1e3, 10)
	p2.VX = -4

	r.ResolveParticles([]*particle.Particle{p1, p2})

	// Equal masses swap normal velocities, then damping halves them.
	if math.Abs(p1.VX+2) > 1e-9 || math.Abs(p2.VX-2) > 1e-9 {
		t.Errorf("expected damped velocities (-2, 2), got (%f, %f)", p1.VX, p2.VX)
	}
}

func TestWallReflectionAndClamp(t *testing.T) {
	r := NewResolver(800, 600)
	r.WallDamping = 0.99

	left := particle.New(5, 300, 1, 10)
	left.VX = -2
	bottom := particle.New(400, 595, 1, 10)
	bottom.VY = 3

	r.ResolveWalls([]*particle.Particle{left, bottom})

	if math.Abs(left.VX-1.98) > 1e-9 {
		t.Errorf("expected reflected vx 1.98, got %f", left.VX)
	}
	if left.X != 10 {
		t.Errorf("expected x clamped to radius, got %f", left.X)
	}
	if math.Abs(bottom.VY+2.97) > 1e-9 {
		t.Errorf("expected reflected vy -2.97, got %f", bottom.VY)
	}
	if bottom.Y != 590 {
		t.Errorf("expected y clamped to height-radius, got %f", bottom.Y)
	}
}

func TestWallPassLeavesInteriorParticlesAlone(t *testing.T) {
	r := NewResolver(800, 600)
	p := particle.New(400, 300, 1, 10)
	p.VX, p.VY = 2, -3

	r.ResolveWalls([]*particle.Particle{p})

	if p.X != 400 || p.Y != 300 || p.VX != 2 || p.VY != -3 {
		t.Error("interior particle modified by wall pass")
	}
}
