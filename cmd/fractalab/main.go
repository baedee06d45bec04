package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/fractalab/fractalab/internal/analysis"
	"github.com/fractalab/fractalab/internal/config"
	"github.com/fractalab/fractalab/internal/dynamics"
	"github.com/fractalab/fractalab/internal/export"
	"github.com/fractalab/fractalab/internal/grid"
	"github.com/fractalab/fractalab/internal/orbit"
	"github.com/fractalab/fractalab/internal/plane"
	"github.com/fractalab/fractalab/internal/registry"
	"github.com/fractalab/fractalab/internal/tui"
	"github.com/fractalab/fractalab/internal/viz"
)

var (
	verbose    bool
	resY       int
	maxIter    int
	workers    int
	boundsFlag string
	juliaFlag  string
	preset     string
	configFile string
	outJSON    string
	outCSV     string
	noCycles   bool
	distance   bool
	progress   bool
	// orbit / plot flags
	pointFlag string
	rowIndex  int
	plotWidth int
	// bifurcation flags
	sweepMin     float64
	sweepMax     float64
	sweepSamples int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fractalab",
		Short: "complex-dynamics exploration lab",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.WarnLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	computeCmd := &cobra.Command{
		Use:   "compute [family]",
		Short: "compute a plane and export or preview it",
		Args:  cobra.ExactArgs(1),
		RunE:  runCompute,
	}
	computeCmd.Flags().IntVar(&resY, "res", config.DefaultResY, "vertical resolution")
	computeCmd.Flags().IntVar(&maxIter, "iters", 0, "iteration budget (0 = family default)")
	computeCmd.Flags().IntVar(&workers, "workers", 0, "worker count (0 = one per cpu)")
	computeCmd.Flags().StringVar(&boundsFlag, "bounds", "", "view bounds minx,maxx,miny,maxy")
	computeCmd.Flags().StringVar(&juliaFlag, "julia", "", "dynamical plane at parameter re,im")
	computeCmd.Flags().StringVar(&preset, "preset", "", "use preset view")
	computeCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	computeCmd.Flags().StringVar(&outJSON, "out", "", "write plane JSON to file")
	computeCmd.Flags().StringVar(&outCSV, "csv", "", "write kind summary CSV to file")
	computeCmd.Flags().BoolVar(&noCycles, "no-cycles", false, "disable cycle detection")
	computeCmd.Flags().BoolVar(&distance, "distance", false, "boundary distance estimation mode")
	computeCmd.Flags().BoolVar(&progress, "progress", false, "live progress view")

	previewCmd := &cobra.Command{
		Use:   "preview [plane.json]",
		Short: "render a saved plane in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runPreview,
	}
	previewCmd.Flags().IntVar(&plotWidth, "width", 60, "preview width in characters")

	orbitCmd := &cobra.Command{
		Use:   "orbit [family]",
		Short: "classify and trace the orbit through one point",
		Args:  cobra.ExactArgs(1),
		RunE:  runOrbit,
	}
	orbitCmd.Flags().StringVar(&pointFlag, "point", "0,0", "plane point re,im")
	orbitCmd.Flags().StringVar(&juliaFlag, "julia", "", "dynamical plane at parameter re,im")
	orbitCmd.Flags().IntVar(&maxIter, "iters", 0, "iteration budget (0 = family default)")

	plotCmd := &cobra.Command{
		Use:   "plot [plane.json]",
		Short: "plot the potential profile along a pixel row",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}
	plotCmd.Flags().IntVar(&rowIndex, "row", -1, "pixel row (-1 = middle)")
	plotCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")

	bifurcateCmd := &cobra.Command{
		Use:   "bifurcate [family]",
		Short: "attractor sweep along the real parameter axis",
		Args:  cobra.ExactArgs(1),
		RunE:  runBifurcate,
	}
	bifurcateCmd.Flags().Float64Var(&sweepMin, "min", -2, "sweep start")
	bifurcateCmd.Flags().Float64Var(&sweepMax, "max", 0.25, "sweep end")
	bifurcateCmd.Flags().IntVar(&sweepSamples, "samples", 80, "parameter samples")
	bifurcateCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")

	presetsCmd := &cobra.Command{
		Use:   "presets [family]",
		Short: "list preset views for a family",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for family: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	familiesCmd := &cobra.Command{
		Use:   "families",
		Short: "list built-in families",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := registry.New()
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			for _, name := range reg.List() {
				fam, err := reg.Get(name)
				if err != nil {
					return err
				}
				b := fam.DefaultBounds()
				fmt.Fprintf(w, "%s\t[%g, %g] x [%g, %g]\n", name, b.MinX, b.MaxX, b.MinY, b.MaxY)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(computeCmd, previewCmd, orbitCmd, plotCmd, bifurcateCmd, presetsCmd, familiesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// parseComplex reads "re,im" into a complex128.
func parseComplex(s string) (complex128, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, fmt.Errorf("expected re,im, got %q", s)
	}
	re, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, err
	}
	im, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, err
	}
	return complex(re, im), nil
}

func parseBounds(s string) (grid.Bounds, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return grid.Bounds{}, fmt.Errorf("expected minx,maxx,miny,maxy, got %q", s)
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return grid.Bounds{}, err
		}
		vals[i] = v
	}
	return grid.Bounds{MinX: vals[0], MaxX: vals[1], MinY: vals[2], MaxY: vals[3]}, nil
}

// resolveConfig merges preset, config file and flags into one run config.
// Precedence: flags > config file > preset > defaults.
func resolveConfig(cmd *cobra.Command, family string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Family = family

	if preset != "" {
		p := config.GetPreset(family, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(family))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		cfg.Family = family
	}

	if cmd.Flags().Changed("res") {
		cfg.ResY = resY
	}
	if cmd.Flags().Changed("iters") {
		cfg.MaxIter = maxIter
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = workers
	}
	if boundsFlag != "" {
		b, err := parseBounds(boundsFlag)
		if err != nil {
			return nil, err
		}
		cfg.Bounds = &b
	}
	if juliaFlag != "" {
		c, err := parseComplex(juliaFlag)
		if err != nil {
			return nil, err
		}
		cfg.Julia = &config.JuliaConfig{Re: real(c), Im: imag(c)}
	}
	if noCycles {
		cfg.Compute.DisableCycleDetection = true
	}
	if distance {
		cfg.Compute.DistanceEstimation = true
	}
	return cfg, nil
}

// buildFamily resolves the family (or its Julia set) named by the config.
func buildFamily(cfg *config.Config) (dynamics.Family, error) {
	reg := registry.New()
	if cfg.Julia != nil {
		return reg.Julia(cfg.Family, cfg.Julia.Param())
	}
	return reg.Get(cfg.Family)
}

func runCompute(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	fam, err := buildFamily(cfg)
	if err != nil {
		return err
	}

	bounds := fam.DefaultBounds()
	if cfg.Bounds != nil {
		bounds = *cfg.Bounds
	}
	g, err := grid.New(cfg.ResY, bounds)
	if err != nil {
		return err
	}

	opts := plane.Options{
		Workers:               cfg.Workers,
		ChunkRows:             cfg.Compute.ChunkRows,
		DisableCycleDetection: cfg.Compute.DisableCycleDetection,
		DistanceEstimation:    cfg.Compute.DistanceEstimation,
	}
	if cmd.Flags().Changed("iters") || cfg.MaxIter != fam.MaxIter() {
		params := orbit.FromFamily(fam, bounds.Area())
		params.MaxIter = cfg.MaxIter
		opts.Orbit = params
	}

	log.Debug().
		Str("family", fam.Name()).
		Int("res_x", g.ResX).
		Int("res_y", g.ResY).
		Int("max_iter", cfg.MaxIter).
		Msg("starting compute pass")
	start := time.Now()

	var ip *plane.IterPlane
	if progress {
		ip, err = tui.Run(fam.Name(), fam, g, opts)
	} else {
		var computer *plane.Computer
		computer, err = plane.New(fam, g, opts)
		if err == nil {
			ip, err = computer.Compute(context.Background())
		}
	}
	if err != nil {
		return err
	}

	log.Debug().
		Dur("elapsed", time.Since(start)).
		Int("cells", len(ip.Cells)).
		Msg("compute pass finished")

	if outJSON != "" {
		if err := export.SaveJSON(outJSON, fam.Name(), ip); err != nil {
			return err
		}
		fmt.Printf("plane written to %s\n", outJSON)
	}
	if outCSV != "" {
		if err := export.SaveCSV(outCSV, ip); err != nil {
			return err
		}
		fmt.Printf("summary written to %s\n", outCSV)
	}

	fmt.Println(viz.Summary(fam.Name(), ip))
	if outJSON == "" && outCSV == "" {
		fmt.Println(viz.RenderPlane(ip, 60))
	}
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	family, ip, err := export.LoadJSON(args[0])
	if err != nil {
		return err
	}
	fmt.Println(viz.Summary(family, ip))
	fmt.Println(viz.RenderPlane(ip, plotWidth))
	return nil
}

func runOrbit(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}
	fam, err := buildFamily(cfg)
	if err != nil {
		return err
	}

	point, err := parseComplex(pointFlag)
	if err != nil {
		return err
	}

	g, err := grid.New(cfg.ResY, fam.DefaultBounds())
	if err != nil {
		return err
	}
	computer, err := plane.New(fam, g, plane.Options{})
	if err != nil {
		return err
	}

	info := computer.RunPoint(point)
	fmt.Println(info)

	iters := fam.MaxIter()
	if cmd.Flags().Changed("iters") {
		iters = maxIter
	}
	lambda := analysis.OrbitLyapunov(fam, point, iters)
	fmt.Printf("Lyapunov exponent: %.6f\n", lambda)

	fmt.Println(viz.RenderOrbit(fam, point, 60, 20))
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	family, ip, err := export.LoadJSON(args[0])
	if err != nil {
		return err
	}

	row := rowIndex
	if row < 0 {
		row = ip.Grid.ResY / 2
	}
	if row >= ip.Grid.ResY {
		return fmt.Errorf("row %d out of range (res_y = %d)", row, ip.Grid.ResY)
	}

	data := analysis.RowPotentials(ip, row)
	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(fmt.Sprintf("%s: potential along row %d", family, row)),
	)
	fmt.Println(graph)
	return nil
}

func runBifurcate(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}
	fam, err := buildFamily(cfg)
	if err != nil {
		return err
	}

	diagram := analysis.BifurcationDiagram(fam, sweepMin, sweepMax, sweepSamples, 32)

	// Plot the spread of the attractor tail per sample: zero for a fixed
	// point, positive once cycles appear or the orbit turns chaotic.
	spread := make([]float64, len(diagram))
	for i, tail := range diagram {
		if len(tail) == 0 {
			continue
		}
		lo, hi := tail[0], tail[0]
		for _, v := range tail {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		spread[i] = hi - lo
	}

	graph := asciigraph.Plot(spread,
		asciigraph.Height(12),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(fmt.Sprintf("%s: attractor spread over [%g, %g]", fam.Name(), sweepMin, sweepMax)),
	)
	fmt.Println(graph)
	return nil
}
