package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/climsim/internal/analysis"
	"github.com/san-kum/climsim/internal/climate"
	"github.com/san-kum/climsim/internal/config"
	"github.com/san-kum/climsim/internal/ebm"
	"github.com/san-kum/climsim/internal/export"
	"github.com/san-kum/climsim/internal/integrators"
	"github.com/san-kum/climsim/internal/metrics"
	"github.com/san-kum/climsim/internal/optim"
	"github.com/san-kum/climsim/internal/sim"
	"github.com/san-kum/climsim/internal/storage"
	"github.com/san-kum/climsim/internal/viz"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	dataDir    string
	dt         float64
	duration   float64
	tAtm       float64
	tOcn       float64
	seed       int64
	integrator string
	tolerance  float64
	fixed      bool
	fmax       float64
	b0         float64
	noiseAmp   float64
	threshold  float64
	window     float64
	configFile string
	pngPath    string
	outPath    string
	samples    int
	members    int

	sweepParams []string
	sweepMin    []float64
	sweepMax    []float64
	sweepSteps  int
	metricName  string
	target      float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "climsim",
		Short: "two-layer energy balance climate lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".climsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "run a climate scenario",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	addScenarioFlags(runCmd)
	runCmd.Flags().Float64Var(&threshold, "threshold", 1e-7, "warming threshold for years_above (K)")
	runCmd.Flags().Float64Var(&window, "window", 100.0, "trailing window for mean warming (years)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&pngPath, "png", "", "also render PNG charts with this path prefix")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "spectral analysis of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().IntVar(&samples, "samples", 1024, "resampled series length")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSONRun,
	}
	exportJSONCmd.Flags().StringVar(&outPath, "out", "", "write to file instead of stdout")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSVRun,
	}

	liveCmd := &cobra.Command{
		Use:   "live [scenario]",
		Short: "run a scenario with live visualization",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addScenarioFlags(liveCmd)

	compareCmd := &cobra.Command{
		Use:   "compare [scenario] [integrator1] [integrator2] ...",
		Short: "compare integrators on the same scenario",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareIntegrators,
	}
	compareCmd.Flags().Float64Var(&dt, "dt", 0.1, "timestep (years)")
	compareCmd.Flags().Float64Var(&duration, "time", 1000.0, "duration (years)")

	ensembleCmd := &cobra.Command{
		Use:   "ensemble [scenario]",
		Short: "run independent noise realizations",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runEnsemble,
	}
	addScenarioFlags(ensembleCmd)
	ensembleCmd.Flags().IntVar(&members, "runs", 8, "ensemble size")

	sweepCmd := &cobra.Command{
		Use:   "sweep [scenario]",
		Short: "grid search model parameters against a metric target",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSweep,
	}
	addScenarioFlags(sweepCmd)
	sweepCmd.Flags().StringSliceVar(&sweepParams, "params", []string{"fmax"}, "parameters to sweep")
	sweepCmd.Flags().Float64SliceVar(&sweepMin, "min", []float64{2.0}, "lower bound per parameter")
	sweepCmd.Flags().Float64SliceVar(&sweepMax, "max", []float64{5.0}, "upper bound per parameter")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 5, "grid points per parameter")
	sweepCmd.Flags().StringVar(&metricName, "metric", "peak_warming", "metric the objective reads")
	sweepCmd.Flags().Float64Var(&target, "target", 0, "target metric value")
	sweepCmd.Flags().Float64Var(&threshold, "threshold", 1e-7, "warming threshold for years_above (K)")

	benchCmd := &cobra.Command{
		Use:   "bench [scenario]",
		Short: "benchmark the solver on a scenario",
		Args:  cobra.MaximumNArgs(1),
		RunE:  benchScenario,
	}
	benchCmd.Flags().StringVar(&integrator, "integrator", "rk45", "integrator")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list scenario presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDURATION\tF_MAX\tNOISE\tERUPTIONS")
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.0fy\t%.1f\t%.1f\t%d\n",
					name, cfg.Duration, cfg.Params.Fmax, cfg.Params.NoiseAmp, len(cfg.Params.Eruptions))
			}
			return w.Flush()
		},
	}

	ecsCmd := &cobra.Command{
		Use:   "ecs [scenario]",
		Short: "equilibrium climate sensitivity diagnostic",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showECS,
	}
	ecsCmd.Flags().Float64Var(&fmax, "fmax", 3.7, "forcing plateau (W/m²)")
	ecsCmd.Flags().Float64Var(&b0, "b0", 2.0, "reference OLR slope (W/m²/K)")

	initConfigCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "climsim.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, analyzeCmd, exportCmd, exportJSONCmd,
		exportCSVCmd, liveCmd, compareCmd, ensembleCmd, sweepCmd, benchCmd, presetsCmd, ecsCmd, initConfigCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep (years)")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration (years)")
	cmd.Flags().Float64Var(&tAtm, "t-atm", 288.0, "initial atmosphere temperature (K)")
	cmd.Flags().Float64Var(&tOcn, "t-ocn", 288.0, "initial ocean temperature (K)")
	cmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "noise seed")
	cmd.Flags().StringVar(&integrator, "integrator", "rk45", "integrator")
	cmd.Flags().Float64Var(&tolerance, "tolerance", config.DefaultTolerance, "adaptive error tolerance")
	cmd.Flags().BoolVar(&fixed, "fixed", false, "force fixed-step integration")
	cmd.Flags().Float64Var(&fmax, "fmax", 3.7, "forcing plateau (W/m²)")
	cmd.Flags().Float64Var(&noiseAmp, "noise", 0.3, "stochastic forcing amplitude (W/m²)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
}

// resolveConfig layers the scenario preset, the optional config file and
// any explicitly set flags, in that order.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	scenario := "baseline"
	if len(args) > 0 {
		scenario = args[0]
	}

	var cfg *config.Config
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		if len(args) > 0 {
			cfg.Scenario = scenario
		}
	} else {
		cfg = config.GetPreset(scenario)
		if cfg == nil {
			return nil, fmt.Errorf("unknown scenario: %s (available: %v)", scenario, config.ListPresets())
		}
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("integrator") {
		cfg.Integrator = integrator
	}
	if cmd.Flags().Changed("tolerance") {
		cfg.Tolerance = tolerance
	}
	if cmd.Flags().Changed("fixed") {
		cfg.Adaptive = !fixed
	}
	if cmd.Flags().Changed("fmax") {
		cfg.Params.Fmax = fmax
	}
	if cmd.Flags().Changed("noise") {
		cfg.Params.NoiseAmp = noiseAmp
	}
	if cmd.Flags().Changed("t-atm") {
		cfg.Initial.Atmosphere = tAtm
	}
	if cmd.Flags().Changed("t-ocn") {
		cfg.Initial.Ocean = tOcn
	}

	return cfg, nil
}

func buildSystem(cfg *config.Config) (*climate.TwoLayer, ebm.Stepper, error) {
	stepper, err := integrators.New(cfg.Integrator)
	if err != nil {
		return nil, nil, err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	system := climate.NewTwoLayer(cfg.ModelParams(), rng)
	return system, stepper, nil
}

// attachMetrics registers the standard diagnostic set on a solver. The
// years_above and stability bands come from the --threshold flag.
func attachMetrics(solver *sim.Solver, system *climate.TwoLayer, initial ebm.State) {
	p := system.Params()
	solver.AddMetric(metrics.NewPeakWarming(initial.Atmosphere))
	solver.AddMetric(metrics.NewMaxGradient())
	solver.AddMetric(metrics.NewTimeAbove(initial.Atmosphere, threshold))
	solver.AddMetric(metrics.NewHeatContent(p.Ca, p.Co, initial))
	solver.AddMetric(metrics.NewStability(initial.Atmosphere, threshold))
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	system, stepper, err := buildSystem(cfg)
	if err != nil {
		return err
	}

	params := system.Params()

	solver := sim.New(stepper)
	attachMetrics(solver, system, cfg.InitialState())

	fmt.Printf("running %s scenario...\n", cfg.Scenario)
	start := time.Now()

	result, err := solver.Run(context.Background(), system, cfg.InitialState(), cfg.SolverConfig())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(cfg.Scenario, cfg.Seed, cfg.Dt, cfg.Duration, cfg.Integrator, params.ECS(), result)
	if err != nil {
		return err
	}

	final, finalT := result.Final()

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d accepted, %d rejected, %d derivative evaluations\n",
		result.StepsTaken, result.StepsRejected, result.Evaluations)
	fmt.Printf("final (year %.0f): t_atm=%+.4e K  t_ocn=%+.4e K above start\n",
		finalT, final.Atmosphere-cfg.Initial.Atmosphere, final.Ocean-cfg.Initial.Ocean)
	fmt.Printf("mean warming over final %.0f years: %+.4e K\n",
		window, trailingMeanWarming(result, cfg.Initial.Atmosphere, window))
	fmt.Printf("ECS: %.2f K per forcing doubling\n", params.ECS())

	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.4e\n", name, val)
	}

	return nil
}

// trailingMeanWarming averages the atmosphere anomaly over the last
// window years of the trajectory.
func trailingMeanWarming(result *ebm.Result, baseline, window float64) float64 {
	if len(result.Times) == 0 {
		return 0
	}
	cutoff := result.Times[len(result.Times)-1] - window

	tail := make([]float64, 0, len(result.Times))
	for i, t := range result.Times {
		if t >= cutoff {
			tail = append(tail, result.States[i].Atmosphere-baseline)
		}
	}
	return stat.Mean(tail, nil)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tDURATION\tDT\tINTEG\tECS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.0fy\t%.3f\t%s\t%.2f\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Integrator,
			run.ECS,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	times, atm, ocn, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	if len(times) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n", meta.Scenario)
	fmt.Printf("samples: %d\n\n", len(times))

	// Chart anomalies against the first sample; the absolute values sit
	// hundreds of Kelvin above the interesting variation.
	atmAnom := make([]float64, len(atm))
	ocnAnom := make([]float64, len(ocn))
	gradient := make([]float64, len(atm))
	for i := range atm {
		atmAnom[i] = atm[i] - atm[0]
		ocnAnom[i] = ocn[i] - ocn[0]
		gradient[i] = atm[i] - ocn[i]
	}

	graph := asciigraph.PlotMany(
		[][]float64{atmAnom, ocnAnom},
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue),
		asciigraph.SeriesLegends("atmosphere", "ocean"),
		asciigraph.Caption("temperature anomaly (K)"),
	)
	fmt.Println(graph)
	fmt.Println()

	gradGraph := asciigraph.Plot(gradient,
		asciigraph.Height(8),
		asciigraph.Width(80),
		asciigraph.Caption("air-sea gradient (K)"),
	)
	fmt.Println(gradGraph)

	if pngPath != "" {
		tempsPath := pngPath + "_temps.png"
		gradPath := pngPath + "_gradient.png"
		if err := export.TemperaturePNG(tempsPath, meta.Scenario, times, atm, ocn); err != nil {
			return err
		}
		if err := export.GradientPNG(gradPath, meta.Scenario, times, gradient); err != nil {
			return err
		}
		fmt.Printf("\nwrote %s and %s\n", tempsPath, gradPath)
	}

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	times, atm, _, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	if len(times) < 2 {
		return fmt.Errorf("no data")
	}

	fmt.Printf("spectral analysis: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n\n", meta.Scenario)

	// The adaptive grid is uneven; interpolate onto a uniform one and
	// remove the greenhouse trend before transforming.
	uniform, spacing, err := analysis.Resample(times, atm, samples)
	if err != nil {
		return err
	}
	detrended := analysis.Detrend(uniform, spacing)

	ps := analysis.PowerSpectrum(detrended)
	plotData := ps[:len(ps)/4]

	graph := asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum (t_atm)"),
	)
	fmt.Println(graph)
	fmt.Println()

	period := analysis.DominantPeriod(ps, spacing)
	if period > 0 {
		fmt.Printf("dominant period: %.2f years\n", period)
	} else {
		fmt.Println("no dominant period found")
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func loadStoredResult(st *storage.Store, runID string) (*storage.RunMetadata, *ebm.Result, error) {
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}

	times, atm, ocn, err := st.LoadSeries(runID)
	if err != nil {
		return nil, nil, err
	}

	result := &ebm.Result{
		Times:   times,
		States:  make([]ebm.State, len(times)),
		Metrics: meta.Metrics,
	}
	for i := range times {
		result.States[i] = ebm.State{Atmosphere: atm[i], Ocean: ocn[i]}
	}
	return meta, result, nil
}

func exportJSONRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, result, err := loadStoredResult(st, args[0])
	if err != nil {
		return err
	}

	if outPath != "" {
		return export.ExportJSON(outPath, meta.Scenario, meta.Integrator, meta.Seed, meta.Dt, meta.Duration, meta.ECS, result)
	}
	return export.ExportJSONStdout(meta.Scenario, meta.Integrator, meta.Seed, meta.Dt, meta.Duration, meta.ECS, result)
}

func exportCSVRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	times, atm, ocn, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	if len(times) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"time", "t_atm", "t_ocn"}); err != nil {
		return err
	}

	for i := range times {
		row := []string{
			strconv.FormatFloat(times[i], 'g', -1, 64),
			strconv.FormatFloat(atm[i], 'g', -1, 64),
			strconv.FormatFloat(ocn[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	system, stepper, err := buildSystem(cfg)
	if err != nil {
		return err
	}

	m := viz.NewModel(system, stepper, cfg.InitialState(), cfg.Dt, cfg.Scenario)

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	scenario := args[0]
	names := args[1:]

	cfg := config.GetPreset(scenario)
	if cfg == nil {
		return fmt.Errorf("unknown scenario: %s (available: %v)", scenario, config.ListPresets())
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	// Steppers differ in how many derivative calls they make per step,
	// so a shared noise stream cannot line up. Compare without noise.
	cfg.Params.NoiseAmp = 0

	fmt.Printf("comparing integrators for %s (dt=%.3f, %.0f years, noise off)\n\n",
		cfg.Scenario, cfg.Dt, cfg.Duration)
	fmt.Printf("%-8s  %14s  %14s  %8s  %8s  %10s\n",
		"integ", "final_anomaly", "peak_warming", "steps", "evals", "time_ms")
	fmt.Println(strings.Repeat("-", 72))

	for _, name := range names {
		stepper, err := integrators.New(name)
		if err != nil {
			fmt.Printf("%-8s  error: %v\n", name, err)
			continue
		}

		system := climate.NewTwoLayer(cfg.ModelParams(), nil)
		solver := sim.New(stepper)
		solver.AddMetric(metrics.NewPeakWarming(cfg.Initial.Atmosphere))

		start := time.Now()
		result, err := solver.Run(context.Background(), system, cfg.InitialState(), cfg.SolverConfig())
		elapsed := time.Since(start)

		if err != nil {
			fmt.Printf("%-8s  error: %v\n", name, err)
			continue
		}

		final, _ := result.Final()
		fmt.Printf("%-8s  %+14.6e  %+14.6e  %8d  %8d  %10.2f\n",
			name,
			final.Atmosphere-cfg.Initial.Atmosphere,
			result.Metrics["peak_warming"],
			result.StepsTaken,
			result.Evaluations,
			float64(elapsed.Microseconds())/1000)
	}

	return nil
}

func runEnsemble(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	if _, err := integrators.New(cfg.Integrator); err != nil {
		return err
	}

	params := cfg.ModelParams()
	newSystem := func(seed int64) ebm.System {
		return climate.NewTwoLayer(params, rand.New(rand.NewSource(seed)))
	}
	newStepper := func() ebm.Stepper {
		stepper, _ := integrators.New(cfg.Integrator)
		return stepper
	}

	ens := sim.NewEnsemble(newSystem, newStepper, members, cfg.Seed)

	fmt.Printf("running %d realizations of %s (seeds %d..%d)...\n",
		members, cfg.Scenario, cfg.Seed, cfg.Seed+int64(members)-1)
	start := time.Now()

	results, err := ens.Run(context.Background(), cfg.InitialState(), cfg.SolverConfig())
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n\n", time.Since(start))

	finals := make([]float64, len(results))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tFINAL_ANOMALY\tSTEPS")
	for i, result := range results {
		final, _ := result.Final()
		finals[i] = final.Atmosphere - cfg.Initial.Atmosphere
		fmt.Fprintf(w, "%d\t%+.4e\t%d\n", cfg.Seed+int64(i), finals[i], result.StepsTaken)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	mean, std := stat.MeanStdDev(finals, nil)
	fmt.Printf("\nfinal anomaly: mean %+.4e K, stddev %.4e K\n", mean, std)

	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	if len(sweepMin) != len(sweepParams) || len(sweepMax) != len(sweepParams) {
		return fmt.Errorf("need one --min and --max per parameter, got %d params, %d min, %d max",
			len(sweepParams), len(sweepMin), len(sweepMax))
	}
	if sweepSteps < 2 {
		return fmt.Errorf("need at least 2 grid points per parameter")
	}

	ranges := make([][]float64, len(sweepParams))
	for i := range sweepParams {
		ranges[i] = floats.Span(make([]float64, sweepSteps), sweepMin[i], sweepMax[i])
	}

	// Every grid point reuses the scenario seed, so runs differ only in
	// the swept parameters.
	run := func(values map[string]float64) (*ebm.Result, error) {
		stepper, err := integrators.New(cfg.Integrator)
		if err != nil {
			return nil, err
		}
		system := climate.NewTwoLayer(cfg.ModelParams(), rand.New(rand.NewSource(cfg.Seed)))
		for name, v := range values {
			if err := system.SetParam(name, v); err != nil {
				return nil, err
			}
		}
		solver := sim.New(stepper)
		attachMetrics(solver, system, cfg.InitialState())
		return solver.Run(context.Background(), system, cfg.InitialState(), cfg.SolverConfig())
	}
	objective := func(r *ebm.Result) float64 {
		return math.Abs(r.Metrics[metricName] - target)
	}

	total := 1
	for range sweepParams {
		total *= sweepSteps
	}
	fmt.Printf("sweeping %s over %d grid points (%s scenario, target %s=%.4g)...\n",
		strings.Join(sweepParams, ","), total, cfg.Scenario, metricName, target)
	start := time.Now()

	gs := optim.NewGridSearch(sweepParams, ranges)
	best, val, err := gs.Search(context.Background(), run, objective)
	if err != nil {
		return err
	}
	if best == nil {
		return fmt.Errorf("no grid point produced a valid run (unknown parameter name?)")
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Println("\nbest parameters:")
	for _, name := range sweepParams {
		fmt.Printf("  %s: %.6g\n", name, best[name])
	}
	fmt.Printf("objective |%s - %.4g|: %.4e\n", metricName, target, val)

	return nil
}

func benchScenario(cmd *cobra.Command, args []string) error {
	scenario := "baseline"
	if len(args) > 0 {
		scenario = args[0]
	}

	cfg := config.GetPreset(scenario)
	if cfg == nil {
		return fmt.Errorf("unknown scenario: %s (available: %v)", scenario, config.ListPresets())
	}
	if cmd.Flags().Changed("integrator") {
		cfg.Integrator = integrator
	}

	durations := []float64{100.0, 500.0, 1000.0}
	dts := []float64{0.01, 0.1, 1.0}

	fmt.Printf("benchmarking %s with %s\n\n", cfg.Scenario, cfg.Integrator)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DURATION\tDT\tSTEPS\tEVALS\tTIME\tSTEPS/SEC")

	for _, dur := range durations {
		for _, step := range dts {
			runCfg := *cfg
			runCfg.Duration = dur
			runCfg.Dt = step

			system, stepper, err := buildSystem(&runCfg)
			if err != nil {
				return err
			}
			solver := sim.New(stepper)

			start := time.Now()
			result, err := solver.Run(context.Background(), system, runCfg.InitialState(), runCfg.SolverConfig())
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			stepsPerSec := float64(result.StepsTaken) / elapsed.Seconds()
			fmt.Fprintf(w, "%.0fy\t%.3f\t%d\t%d\t%v\t%.0f\n",
				dur, step, result.StepsTaken, result.Evaluations, elapsed, stepsPerSec)
		}
	}

	return w.Flush()
}

func showECS(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfigForECS(cmd, args)
	if err != nil {
		return err
	}

	p := cfg.ModelParams()
	fmt.Printf("scenario: %s\n", cfg.Scenario)
	fmt.Printf("f_max: %.2f W/m²\n", p.Fmax)
	fmt.Printf("b0: %.2f W/m²/K\n", p.B0)
	fmt.Printf("ECS: %.4f K per forcing doubling\n", p.ECS())
	return nil
}

func resolveConfigForECS(cmd *cobra.Command, args []string) (*config.Config, error) {
	scenario := "baseline"
	if len(args) > 0 {
		scenario = args[0]
	}
	cfg := config.GetPreset(scenario)
	if cfg == nil {
		return nil, fmt.Errorf("unknown scenario: %s (available: %v)", scenario, config.ListPresets())
	}
	if cmd.Flags().Changed("fmax") {
		cfg.Params.Fmax = fmax
	}
	if cmd.Flags().Changed("b0") {
		cfg.Params.B0 = b0
	}
	return cfg, nil
}
