package main

import (
	"fmt"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/partsim/internal/analysis"
	"github.com/san-kum/partsim/internal/config"
	"github.com/san-kum/partsim/internal/engine"
	"github.com/san-kum/partsim/internal/forces"
	"github.com/san-kum/partsim/internal/metrics"
	"github.com/san-kum/partsim/internal/particle"
	"github.com/san-kum/partsim/internal/store"
	"github.com/san-kum/partsim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	particles   int
	radiusScale int
	width       float64
	height      float64
	mass        float64
	solver      string
	theta       float64
	damping     float64
	wallDamping float64
	dtMax       float64
	seed        int64
	steps       int
	jsonOut     string
	csvOut      string
	configFile  string
	preset      string
	frameRate   int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "partsim",
		Short: "2D particle simulation with direct and Barnes-Hut solvers",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless simulation",
		RunE:  runSimulation,
	}
	addSimFlags(runCmd)
	runCmd.Flags().IntVar(&steps, "steps", 1000, "number of ticks")
	runCmd.Flags().StringVar(&jsonOut, "export-json", "", "write recording to JSON file")
	runCmd.Flags().StringVar(&csvOut, "export-csv", "", "write recording to CSV file")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with live terminal visualization",
		RunE:  runLive,
	}
	addSimFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "compare direct and tree solver timing",
		RunE:  benchSolvers,
	}
	addSimFlags(benchCmd)
	benchCmd.Flags().IntVar(&steps, "steps", 200, "number of ticks")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, benchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&particles, "particles", config.DefaultParticles, "particle count (1-100)")
	cmd.Flags().IntVar(&radiusScale, "radius", config.DefaultRadiusScale, "radius scale (1-10)")
	cmd.Flags().Float64Var(&width, "width", config.DefaultWidth, "world width")
	cmd.Flags().Float64Var(&height, "height", config.DefaultHeight, "world height")
	cmd.Flags().Float64Var(&mass, "mass", config.DefaultMass, "particle mass")
	cmd.Flags().StringVar(&solver, "solver", "direct", "force solver (direct|tree)")
	cmd.Flags().Float64Var(&theta, "theta", config.DefaultTheta, "Barnes-Hut opening ratio")
	cmd.Flags().Float64Var(&damping, "damping", config.DefaultDamping, "collision damping")
	cmd.Flags().Float64Var(&wallDamping, "wall-damping", config.DefaultDamping, "wall collision damping")
	cmd.Flags().Float64Var(&dtMax, "dt-max", config.DefaultDtMax, "maximum time step")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "preset configuration name")
}

func buildConfig() (*config.Config, error) {
	cfg := &config.Config{
		Particles:   particles,
		RadiusScale: radiusScale,
		Width:       width,
		Height:      height,
		Mass:        mass,
		Solver:      solver,
		Theta:       theta,
		Damping:     damping,
		WallDamping: wallDamping,
		DtMax:       dtMax,
		Seed:        seed,
	}
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
		cfg.Seed = seed
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		if cfg.Seed == 0 {
			cfg.Seed = seed
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newStepper(cfg *config.Config) *engine.Stepper {
	var s forces.Solver
	if cfg.Solver == "tree" {
		s = forces.NewBarnesHut(cfg.Width, cfg.Height, cfg.Theta)
	} else {
		s = forces.NewDirect()
	}
	resolver := engine.NewResolver(cfg.Width, cfg.Height)
	resolver.Damping = cfg.Damping
	resolver.WallDamping = cfg.WallDamping
	return engine.NewStepper(s, resolver, cfg.DtMax)
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	cloud := particle.NewCloud(cfg.Particles, cfg.Radius(), cfg.Mass, cfg.Width, cfg.Height, rng)
	stepper := newStepper(cfg)
	rec := store.NewRecording(cfg.Solver, cfg.Width, cfg.Height)

	observers := []metrics.Metric{
		metrics.NewEnergyDrift(),
		metrics.NewMomentum(),
		metrics.NewMaxSpeed(),
	}

	t := 0.0
	energy := make([]float64, 0, steps)
	start := time.Now()
	for i := 0; i < steps; i++ {
		dt := stepper.Tick(cloud)
		t += dt
		rec.Record(cloud, t, dt)
		for _, m := range observers {
			m.Observe(cloud, t)
		}
		energy = append(energy, metrics.TotalEnergy(cloud))
	}
	elapsed := time.Since(start)

	for _, m := range observers {
		rec.Metrics[m.Name()] = m.Value()
	}

	speedStats := analysis.Summarize(rec)
	meanDt, minDt := analysis.DtStats(rec)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "solver\t%s\n", cfg.Solver)
	fmt.Fprintf(w, "particles\t%d\n", cfg.Particles)
	fmt.Fprintf(w, "steps\t%d\n", steps)
	fmt.Fprintf(w, "sim time\t%.2f\n", t)
	fmt.Fprintf(w, "wall time\t%s\n", elapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "dt mean/min\t%.4f / %.4f\n", meanDt, minDt)
	fmt.Fprintf(w, "speed mean\t%.3f\n", speedStats.Mean)
	fmt.Fprintf(w, "speed p95\t%.3f\n", speedStats.P95)
	fmt.Fprintf(w, "speed max\t%.3f\n", speedStats.Max)
	for _, m := range observers {
		fmt.Fprintf(w, "%s\t%.4g\n", m.Name(), m.Value())
	}
	w.Flush()

	if len(energy) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(energy, asciigraph.Height(8), asciigraph.Width(60), asciigraph.Caption("total energy")))
	}

	if jsonOut != "" {
		if err := rec.ExportJSON(jsonOut); err != nil {
			return fmt.Errorf("export json: %w", err)
		}
		fmt.Printf("wrote %s\n", jsonOut)
	}
	if csvOut != "" {
		if err := rec.ExportCSV(csvOut); err != nil {
			return fmt.Errorf("export csv: %w", err)
		}
		fmt.Printf("wrote %s\n", csvOut)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	return viz.Run(cfg, frameRate)
}

func benchSolvers(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "solver\tsteps\telapsed\tper tick\n")
	for _, name := range []string{"direct", "tree"} {
		benchCfg := *cfg
		benchCfg.Solver = name
		rng := rand.New(rand.NewSource(cfg.Seed))
		cloud := particle.NewCloud(benchCfg.Particles, benchCfg.Radius(), benchCfg.Mass, benchCfg.Width, benchCfg.Height, rng)
		stepper := newStepper(&benchCfg)

		start := time.Now()
		for i := 0; i < steps; i++ {
			stepper.Tick(cloud)
		}
		elapsed := time.Since(start)
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", name, steps, elapsed.Round(time.Microsecond), (elapsed / time.Duration(steps)).Round(time.Microsecond))
	}
	w.Flush()
	return nil
}
