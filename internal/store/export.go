// Package store records per-tick snapshots of a run and exports them.
package store

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strconv"

	"github.com/san-kum/partsim/internal/particle"
)

// ParticleState is one particle's public state at a snapshot.
type ParticleState struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	VX     float64 `json:"vx"`
	VY     float64 `json:"vy"`
	Mass   float64 `json:"mass"`
	Radius float64 `json:"radius"`
}

// Snapshot is the particle collection after one completed tick.
type Snapshot struct {
	Time      float64         `json:"time"`
	Dt        float64         `json:"dt"`
	Particles []ParticleState `json:"particles"`
}

// Recording accumulates snapshots over a run.
type Recording struct {
	Solver    string             `json:"solver"`
	Width     float64            `json:"width"`
	Height    float64            `json:"height"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
	Snapshots []Snapshot         `json:"snapshots"`
}

func NewRecording(solver string, width, height float64) *Recording {
	return &Recording{
		Solver:  solver,
		Width:   width,
		Height:  height,
		Metrics: make(map[string]float64),
	}
}

// Record appends a snapshot of the current particle state.
func (r *Recording) Record(particles []*particle.Particle, t, dt float64) {
	snap := Snapshot{
		Time:      t,
		Dt:        dt,
		Particles: make([]ParticleState, len(particles)),
	}
	for i, p := range particles {
		snap.Particles[i] = ParticleState{
			X: p.X, Y: p.Y, VX: p.VX, VY: p.VY,
			Mass: p.Mass, Radius: p.Radius,
		}
	}
	r.Snapshots = append(r.Snapshots, snap)
}

func (r *Recording) ExportJSON(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

// ExportCSV writes one row per particle per snapshot.
func (r *Recording) ExportCSV(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"time", "dt", "particle", "x", "y", "vx", "vy"}); err != nil {
		return err
	}
	for _, snap := range r.Snapshots {
		for i, p := range snap.Particles {
			row := []string{
				strconv.FormatFloat(snap.Time, 'g', -1, 64),
				strconv.FormatFloat(snap.Dt, 'g', -1, 64),
				strconv.Itoa(i),
				strconv.FormatFloat(p.X, 'g', -1, 64),
				strconv.FormatFloat(p.Y, 'g', -1, 64),
				strconv.FormatFloat(p.VX, 'g', -1, 64),
				strconv.FormatFloat(p.VY, 'g', -1, 64),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	return nil
}
