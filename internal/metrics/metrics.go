// Package metrics provides observers that summarize particle state over
// the course of a run.
package metrics

import "github.com/san-kum/partsim/internal/particle"

type Metric interface {
	Name() string
	Observe(particles []*particle.Particle, t float64)
	Value() float64
	Reset()
}
