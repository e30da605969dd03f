// Package analysis computes summary statistics over recorded runs.
package analysis

import (
	"math"
	"sort"

	"github.com/san-kum/partsim/internal/store"
	"gonum.org/v1/gonum/stat"
)

// SpeedStats summarizes the particle speed distribution of a recording.
type SpeedStats struct {
	Mean   float64
	StdDev float64
	Median float64
	P95    float64
	Max    float64
}

// Speeds flattens a recording into one speed sample per particle per
// snapshot.
func Speeds(rec *store.Recording) []float64 {
	var speeds []float64
	for _, snap := range rec.Snapshots {
		for _, p := range snap.Particles {
			speeds = append(speeds, math.Hypot(p.VX, p.VY))
		}
	}
	return speeds
}

func Summarize(rec *store.Recording) SpeedStats {
	speeds := Speeds(rec)
	if len(speeds) == 0 {
		return SpeedStats{}
	}
	sort.Float64s(speeds)

	return SpeedStats{
		Mean:   stat.Mean(speeds, nil),
		StdDev: stat.StdDev(speeds, nil),
		Median: stat.Quantile(0.5, stat.Empirical, speeds, nil),
		P95:    stat.Quantile(0.95, stat.Empirical, speeds, nil),
		Max:    speeds[len(speeds)-1],
	}
}

// DtStats reports the mean and smallest adaptive time step of a run. A
// small mean means the stability heuristic was throttling fast particles.
func DtStats(rec *store.Recording) (mean, min float64) {
	if len(rec.Snapshots) == 0 {
		return 0, 0
	}
	dts := make([]float64, len(rec.Snapshots))
	min = math.Inf(1)
	for i, snap := range rec.Snapshots {
		dts[i] = snap.Dt
		if snap.Dt < min {
			min = snap.Dt
		}
	}
	return stat.Mean(dts, nil), min
}
