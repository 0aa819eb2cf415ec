package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/orbitals/internal/analysis"
	"github.com/san-kum/orbitals/internal/atom"
	"github.com/san-kum/orbitals/internal/cloud"
	"github.com/san-kum/orbitals/internal/config"
	"github.com/san-kum/orbitals/internal/element"
	"github.com/san-kum/orbitals/internal/export"
	"github.com/san-kum/orbitals/internal/orbital"
	"github.com/san-kum/orbitals/internal/storage"
	"github.com/san-kum/orbitals/internal/viz"
)

var (
	dataDir    string
	quantumN   int
	quantumL   int
	quantumM   int
	samples    int
	seed       uint64
	configFile string
	preset     string
	maxN       int
	svgWidth   int
	svgHeight  int
	svgOut     string
	neutrons   int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orbitals",
		Short: "hydrogen-like orbital point-cloud visualizer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunInteractive(seed, samples)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".orbitals", "data directory")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", cloud.DefaultSeed, "sampler seed")
	rootCmd.PersistentFlags().IntVar(&samples, "samples", config.DefaultSamples, "sample count")

	sampleCmd := &cobra.Command{
		Use:   "sample [element]",
		Short: "sample an orbital and store the run",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSample,
	}
	sampleCmd.Flags().IntVar(&quantumN, "n", 1, "principal quantum number")
	sampleCmd.Flags().IntVar(&quantumL, "l", 0, "azimuthal quantum number")
	sampleCmd.Flags().IntVar(&quantumM, "m", 0, "magnetic quantum number")
	sampleCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	sampleCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	elementsCmd := &cobra.Command{
		Use:   "elements",
		Short: "list cataloged elements",
		RunE:  listElements,
	}

	statesCmd := &cobra.Command{
		Use:   "states",
		Short: "enumerate valid quantum states",
		RunE:  listStates,
	}
	statesCmd.Flags().IntVar(&maxN, "max-n", 4, "highest principal quantum number")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot the radial profile of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run samples to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata and samples to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a run as an SVG scatter plot",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 800, "image height")
	exportSVGCmd.Flags().StringVar(&svgOut, "out", "", "output file (default stdout)")

	nucleusCmd := &cobra.Command{
		Use:   "nucleus [element]",
		Short: "print the nucleus geometry for an element",
		Args:  cobra.ExactArgs(1),
		RunE:  showNucleus,
	}
	nucleusCmd.Flags().IntVar(&neutrons, "neutrons", -1, "neutron count override")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark the sampler",
		RunE:  benchSampler,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(sampleCmd, elementsCmd, statesCmd, listCmd, plotCmd,
		exportCSVCmd, exportJSONCmd, exportSVGCmd, nucleusCmd, benchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveElement accepts a symbol ("He") or an atomic number ("2").
func resolveElement(arg string) (element.Element, error) {
	if z, err := strconv.Atoi(arg); err == nil {
		el, ok := element.ByAtomicNumber(z)
		if !ok {
			return element.Element{}, fmt.Errorf("no element with atomic number %d", z)
		}
		return el, nil
	}
	el, ok := element.BySymbol(arg)
	if !ok {
		return element.Element{}, fmt.Errorf("unknown element: %s", arg)
	}
	return el, nil
}

func runSample(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// CLI flags override preset and config file.
	if len(args) > 0 {
		cfg.Element = args[0]
	}
	if cmd.Flags().Changed("n") {
		cfg.Orbital.N = quantumN
	}
	if cmd.Flags().Changed("l") {
		cfg.Orbital.L = quantumL
	}
	if cmd.Flags().Changed("m") {
		cfg.Orbital.M = quantumM
	}
	if cmd.Flags().Changed("samples") {
		cfg.Samples = samples
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}

	el, err := resolveElement(cfg.Element)
	if err != nil {
		return err
	}
	orb, err := cfg.LookupOrbital()
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	sampler := cloud.NewSamplerWithSeed(cfg.Seed)

	fmt.Printf("sampling %s %s...\n", el.Name, orb)
	start := time.Now()
	points := sampler.SampleOrbital(el, orb, cloud.NewSampleConfig(cfg.Samples))
	elapsed := time.Since(start)
	stats := sampler.LastStats()

	metrics := map[string]float64{
		"mean_radius":     analysis.MeanRadius(points),
		"rms_radius":      analysis.RMSRadius(points),
		"mean_weight":     analysis.MeanWeight(points),
		"acceptance_rate": stats.AcceptanceRate(),
		"filled":          float64(stats.Filled),
	}

	runID, err := st.Save(el, orb, cfg.Seed, points, metrics)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("points: %d (direct=%v, attempts=%d, expansions=%d)\n",
		len(points), stats.Direct, stats.Attempts, stats.Expansions)
	if stats.Filled > 0 {
		fmt.Printf("warning: %d zero-weight filler points\n", stats.Filled)
	}
	fmt.Println("\nmetrics:")
	for name, val := range metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}
	return nil
}

func listElements(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Z\tSYMBOL\tNAME\tWEIGHT\tNEUTRONS")
	for _, el := range element.All() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.4f\t%d\n",
			el.AtomicNumber, el.Symbol, el.Name, el.StandardAtomicWeight, el.DefaultNeutrons)
	}
	return w.Flush()
}

func listStates(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STATE\tN\tL\tM\tEXACT")
	for n := 1; n <= maxN; n++ {
		for l := 0; l < n; l++ {
			for m := -l; m <= l; m++ {
				orb, err := orbital.New(n, l, m)
				if err != nil {
					return err
				}
				exact := "gaussian"
				if (n == 1 || n == 2) && l == 0 && m == 0 {
					exact = "closed-form"
				}
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n", orb, n, l, m, exact)
			}
		}
	}
	return w.Flush()
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
	fmt.Fprintln(w, "ID\tELEMENT\tORBITAL\tSAMPLES\tSEED\tTIME")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d,%d,%d\t%d\t%d\t%s\n",
			run.ID, run.Element, run.N, run.L, run.M, run.Samples, run.Seed,
			run.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	points, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("element: %s  orbital: %d,%d,%d\n", meta.Element, meta.N, meta.L, meta.M)
	fmt.Printf("samples: %d\n\n", len(points))

	profile, width := analysis.RadialProfile(points, 60)
	graph := asciigraph.Plot(profile,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("radial profile (bin width %.4f Å)", width)),
	)
	fmt.Println(graph)
	fmt.Printf("\nmean radius: %.4f Å  rms radius: %.4f Å\n",
		analysis.MeanRadius(points), analysis.RMSRadius(points))
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	points, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"x", "y", "z", "weight"}); err != nil {
		return err
	}
	for _, p := range points {
		row := []string{
			strconv.FormatFloat(float64(p.Position.X), 'f', 6, 32),
			strconv.FormatFloat(float64(p.Position.Y), 'f', 6, 32),
			strconv.FormatFloat(float64(p.Position.Z), 'f', 6, 32),
			strconv.FormatFloat(float64(p.Weight), 'f', 6, 32),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	points, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, points)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	points, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	svg := export.CloudToSVG(points, svgWidth, svgHeight)
	if svgOut == "" {
		fmt.Println(svg)
		return nil
	}
	return os.WriteFile(svgOut, []byte(svg), 0644)
}

func showNucleus(cmd *cobra.Command, args []string) error {
	el, err := resolveElement(args[0])
	if err != nil {
		return err
	}
	neutronCount := el.DefaultNeutronCount()
	if neutrons >= 0 {
		neutronCount = neutrons
	}

	nucleus := atom.NewNucleusBuilder(el.AtomicNumber, neutronCount).Build()
	fmt.Printf("%s nucleus: %d protons, %d neutrons, %.4f amu\n\n",
		el.Name, nucleus.ProtonCount(), nucleus.NeutronCount(), nucleus.TotalMass())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PARTICLE\tX\tY\tZ")
	for _, p := range nucleus.Protons {
		fmt.Fprintf(w, "proton\t%.5f\t%.5f\t%.5f\n", p.Position.X, p.Position.Y, p.Position.Z)
	}
	for _, n := range nucleus.Neutrons {
		fmt.Fprintf(w, "neutron\t%.5f\t%.5f\t%.5f\n", n.Position.X, n.Position.Y, n.Position.Z)
	}
	return w.Flush()
}

func benchSampler(cmd *cobra.Command, args []string) error {
	el := element.Hydrogen()
	orbitals := []orbital.Orbital{
		orbital.GroundState(),
		orbital.MustNew(2, 0, 0),
		orbital.MustNew(2, 1, 0),
	}
	counts := []int{1000, 10000, 50000}

	fmt.Println("benchmarking sampler (hydrogen)")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ORBITAL\tSAMPLES\tTIME\tPOINTS/SEC\tACCEPTANCE")

	for _, orb := range orbitals {
		for _, count := range counts {
			sampler := cloud.NewSamplerWithSeed(seed)
			start := time.Now()
			points := sampler.SampleOrbital(el, orb, cloud.NewSampleConfig(count))
			elapsed := time.Since(start)
			stats := sampler.LastStats()

			perSec := float64(len(points)) / elapsed.Seconds()
			fmt.Fprintf(w, "%s\t%d\t%v\t%.0f\t%.1f%%\n",
				orb, count, elapsed, perSec, stats.AcceptanceRate()*100)
		}
	}
	return w.Flush()
}
