package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/pkoster/mandelgrid/internal/analysis"
	"github.com/pkoster/mandelgrid/internal/batch"
	"github.com/pkoster/mandelgrid/internal/config"
	"github.com/pkoster/mandelgrid/internal/mandel"
	"github.com/pkoster/mandelgrid/internal/render"
	"github.com/pkoster/mandelgrid/internal/storage"
	"github.com/pkoster/mandelgrid/internal/viz"
)

// histSampleSize is the per-axis sample count for escape histograms. A
// coarser lattice than the full grid keeps analyze interactive.
const histSampleSize = 256

var (
	dataDir string
	// Viewport bound overrides (render)
	xMin float64
	xMax float64
	yMin float64
	yMax float64
	// Output paths (render)
	outFile    string
	svgFile    string
	exportFile string
	// Preview dimensions
	cols int
	rows int
	// Histogram bins
	bins int
	// Config file
	configFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mandelgrid",
		Short: "rasterized mandelbrot membership lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "gallery directory")

	renderCmd := &cobra.Command{
		Use:   "render [region]",
		Short: "compute a grid and save it to the gallery",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().Float64Var(&xMin, "xmin", mandel.Home.XMin, "viewport min real")
	renderCmd.Flags().Float64Var(&xMax, "xmax", mandel.Home.XMax, "viewport max real")
	renderCmd.Flags().Float64Var(&yMin, "ymin", mandel.Home.YMin, "viewport min imaginary")
	renderCmd.Flags().Float64Var(&yMax, "ymax", mandel.Home.YMax, "viewport max imaginary")
	renderCmd.Flags().StringVar(&outFile, "out", "", "also write the png to this path")
	renderCmd.Flags().StringVar(&svgFile, "svg", "", "also write an svg to this path")
	renderCmd.Flags().StringVar(&exportFile, "export", "", "dump the raw buffer as json ('-' for stdout)")
	renderCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	previewCmd := &cobra.Command{
		Use:   "preview [region]",
		Short: "print an ascii preview of a grid",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPreview,
	}
	previewCmd.Flags().IntVar(&cols, "cols", config.DefaultCols, "preview width in characters")
	previewCmd.Flags().IntVar(&rows, "rows", config.DefaultRows, "preview height in characters")
	previewCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	exploreCmd := &cobra.Command{
		Use:   "explore [region]",
		Short: "browse the plane interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExplore,
	}
	exploreCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [region]",
		Short: "coverage, boundary and escape statistics",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().IntVar(&bins, "bins", config.DefaultBins, "histogram bins")
	analyzeCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	regionsCmd := &cobra.Command{
		Use:   "regions",
		Short: "list named regions",
		RunE:  listRegions,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list gallery renders",
		RunE:  listRenders,
	}

	infoCmd := &cobra.Command{
		Use:   "info [render_id]",
		Short: "show render metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  showRender,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "time grid construction across named regions",
		RunE:  benchRegions,
	}

	batchCmd := &cobra.Command{
		Use:   "batch [plan.yaml]",
		Short: "run a scripted render plan",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}

	rootCmd.AddCommand(renderCmd, previewCmd, exploreCmd, analyzeCmd, regionsCmd, listCmd, infoCmd, benchCmd, batchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveViewport merges the config file, the region argument, and the
// bound flags into the window to compute. Precedence mirrors run flags in
// general: explicit flags beat the argument, the argument beats the file.
func resolveViewport(cmd *cobra.Command, args []string) (string, mandel.Region, *config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return "", mandel.Region{}, nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if len(args) > 0 {
		cfg.Region = args[0]
		cfg.Bounds = config.ViewportConfig{}
	}

	if cmd.Flags().Changed("xmin") || cmd.Flags().Changed("xmax") ||
		cmd.Flags().Changed("ymin") || cmd.Flags().Changed("ymax") {
		cfg.Bounds = config.ViewportConfig{XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax}
	}

	r, err := cfg.Viewport()
	if err != nil {
		return "", mandel.Region{}, nil, err
	}
	return cfg.ViewportName(), r, cfg, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	name, region, cfg, err := resolveViewport(cmd, args)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("rendering %s (x [%g, %g], y [%g, %g])...\n",
		name, region.XMin, region.XMax, region.YMin, region.YMax)
	start := time.Now()
	g := mandel.NewFromRegion(region)
	elapsed := time.Since(start)

	renderID, err := st.Save(name, region, g, elapsed)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("render id: %s\n", renderID)
	fmt.Printf("pixels: %d (%dx%d)\n", len(g.Pixels()), g.Width(), g.Height())
	fmt.Printf("coverage: %.2f%%\n", analysis.Coverage(g)*100)

	if !cmd.Flags().Changed("out") && configFile != "" {
		outFile = cfg.Output
	}
	if outFile != "" {
		if err := render.SavePNG(outFile, g); err != nil {
			return err
		}
		fmt.Printf("png written to %s\n", outFile)
	}

	if svgFile != "" {
		if err := render.SaveSVG(svgFile, g); err != nil {
			return err
		}
		fmt.Printf("svg written to %s\n", svgFile)
	}

	if exportFile == "-" {
		return storage.ExportJSONStdout(name, region, g)
	}
	if exportFile != "" {
		if err := storage.ExportJSON(exportFile, name, region, g); err != nil {
			return err
		}
		fmt.Printf("buffer exported to %s\n", exportFile)
	}

	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	name, region, cfg, err := resolveViewport(cmd, args)
	if err != nil {
		return err
	}

	if !cmd.Flags().Changed("cols") {
		cols = cfg.Cols
	}
	if !cmd.Flags().Changed("rows") {
		rows = cfg.Rows
	}

	g := mandel.NewFromRegion(region)
	fmt.Println(render.ASCII(g, cols, rows))
	fmt.Printf("\n%s  x [%g, %g]  y [%g, %g]  coverage %.2f%%\n",
		name, region.XMin, region.XMax, region.YMin, region.YMax,
		analysis.Coverage(g)*100)

	return nil
}

func runExplore(cmd *cobra.Command, args []string) error {
	name, region, _, err := resolveViewport(cmd, args)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	return viz.RunExplorer(name, region, st)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	name, region, cfg, err := resolveViewport(cmd, args)
	if err != nil {
		return err
	}

	if !cmd.Flags().Changed("bins") {
		bins = cfg.Bins
	}

	fmt.Printf("analyzing %s...\n", name)
	start := time.Now()
	g := mandel.NewFromRegion(region)
	elapsed := time.Since(start)

	total := len(g.Pixels())
	cov := analysis.Coverage(g)
	inside := int(cov*float64(total) + 0.5)

	fmt.Printf("computed in %v\n\n", elapsed)
	fmt.Printf("coverage: %.4f (%d of %d pixels)\n", cov, inside, total)
	fmt.Printf("boundary pixels: %d\n\n", analysis.BoundaryPixels(g))

	hist, err := analysis.EscapeHistogram(region, histSampleSize, mandel.IterBudget, bins)
	if err != nil {
		return err
	}

	graph := asciigraph.Plot(hist,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("escape iteration distribution"),
	)
	fmt.Println(graph)

	return nil
}

func listRegions(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tX RANGE\tY RANGE\tSPAN")

	for _, name := range mandel.RegionNames() {
		r, _ := mandel.RegionByName(name)
		sx, _ := r.Span()
		fmt.Fprintf(w, "%s\t[%g, %g]\t[%g, %g]\t%g\n",
			name, r.XMin, r.XMax, r.YMin, r.YMax, sx)
	}

	return w.Flush()
}

func listRenders(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	renders, err := st.List()
	if err != nil {
		return err
	}

	if len(renders) == 0 {
		fmt.Println("no renders found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tREGION\tTIME\tCOVERAGE\tELAPSED")

	for _, r := range renders {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f%%\t%dms\n",
			r.ID,
			r.Region,
			r.Timestamp.Format("2006-01-02 15:04:05"),
			r.Coverage*100,
			r.ElapsedMS,
		)
	}

	return w.Flush()
}

func showRender(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return err
	}

	fmt.Printf("image: %s\n", st.ImagePath(meta.ID))
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	plan, err := batch.LoadPlan(args[0])
	if err != nil {
		return fmt.Errorf("failed to load plan: %w", err)
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	if plan.Name != "" {
		fmt.Printf("plan: %s\n", plan.Name)
	}

	ids, err := batch.RunPlan(plan, st)
	if err != nil {
		return err
	}

	fmt.Printf("completed %d renders\n", len(ids))
	for _, id := range ids {
		fmt.Printf("  %s\n", id)
	}

	return nil
}

func benchRegions(cmd *cobra.Command, args []string) error {
	fmt.Printf("benchmarking %dx%d grids, budget %d\n\n",
		mandel.GridWidth, mandel.GridHeight, mandel.IterBudget)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "REGION\tTIME\tPIXELS/SEC\tCOVERAGE")

	for _, name := range mandel.RegionNames() {
		r, _ := mandel.RegionByName(name)

		start := time.Now()
		g := mandel.NewFromRegion(r)
		elapsed := time.Since(start)

		pixelsPerSec := float64(len(g.Pixels())) / elapsed.Seconds()
		fmt.Fprintf(w, "%s\t%v\t%.0f\t%.2f%%\n",
			name, elapsed, pixelsPerSec, analysis.Coverage(g)*100)
	}

	return w.Flush()
}
