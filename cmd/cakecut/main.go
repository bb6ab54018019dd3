// CakeCut — cake cutting planner
//
// Computes a straight-cut plan slicing a rectangular cake into convex
// pieces matching a list of requested areas, then prints a report and
// optionally writes PDF, DXF, G-code, label and archive outputs.
//
// Build:
//   go build -o cakecut ./cmd/cakecut
//
// Examples:
//   cakecut -requests orders.csv -width 400 -length 300 -tolerance 5 -pdf plan.pdf
//   cakecut -config run.yaml -gcode plan.nc -dxf plan.dxf

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"gonum.org/v1/gonum/floats"

	"github.com/sliceforge/cakecut/internal/config"
	"github.com/sliceforge/cakecut/internal/engine"
	"github.com/sliceforge/cakecut/internal/export"
	"github.com/sliceforge/cakecut/internal/gcode"
	"github.com/sliceforge/cakecut/internal/importer"
	"github.com/sliceforge/cakecut/internal/model"
	"github.com/sliceforge/cakecut/internal/project"
)

func main() {
	var (
		configPath   = flag.String("config", "", "YAML config file")
		requestsPath = flag.String("requests", "", "CSV or Excel file with requested areas")
		width        = flag.Float64("width", 0, "cake width (overrides config)")
		length       = flag.Float64("length", 0, "cake length (overrides config)")
		tolerance    = flag.Float64("tolerance", -1, "acceptable area error percentage (overrides config)")
		seed         = flag.Int64("seed", -1, "random seed (overrides config)")
		strategy     = flag.String("strategy", "", "assignment strategy: greedy or hungarian")
		quiet        = flag.Bool("quiet", false, "suppress the progress bar")

		pdfPath     = flag.String("pdf", "", "write a plan report PDF")
		dxfPath     = flag.String("dxf", "", "write the cut layout as DXF")
		gcodePath   = flag.String("gcode", "", "write knife moves as G-code")
		labelsPath  = flag.String("labels", "", "write a piece label sheet PDF")
		savePath    = flag.String("save", "", "save the plan as JSON")
		archivePath = flag.String("archive", "", "save the plan as a compressed archive")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fatal(err)
		}
	}
	if *width > 0 {
		cfg.CakeWidth = *width
	}
	if *length > 0 {
		cfg.CakeLength = *length
	}
	if *tolerance >= 0 {
		cfg.Tolerance = *tolerance
	}
	if *seed >= 0 {
		cfg.Settings.Seed = *seed
	}
	if *strategy != "" {
		cfg.Settings.Strategy = *strategy
	}

	requests, err := loadRequests(cfg, *requestsPath)
	if err != nil {
		fatal(err)
	}
	if len(requests) == 0 {
		fatal(fmt.Errorf("no requests given: use -requests or list them in the config"))
	}

	solver, err := engine.NewSolver(model.Areas(requests), cfg.CakeWidth, cfg.CakeLength, cfg.Tolerance, cfg.Settings)
	if err != nil {
		fatal(err)
	}
	if !*quiet {
		solver.OnProgress = newProgressBars().update
	}

	plan, err := solver.Solve()
	if err != nil {
		fatal(err)
	}

	printReport(os.Stdout, plan, requests, cfg)

	if err := writeOutputs(plan, requests, cfg, outputs{
		pdf:     *pdfPath,
		dxf:     *dxfPath,
		gcode:   *gcodePath,
		labels:  *labelsPath,
		save:    *savePath,
		archive: *archivePath,
	}); err != nil {
		fatal(err)
	}
}

// loadRequests resolves the request list: an import file wins over the
// config's inline list.
func loadRequests(cfg config.Config, path string) ([]model.Request, error) {
	if path == "" {
		requests := make([]model.Request, 0, len(cfg.Requests))
		for _, area := range cfg.Requests {
			requests = append(requests, model.NewRequest(area))
		}
		return requests, nil
	}

	var result importer.ImportResult
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		result = importer.ImportExcel(path)
	default:
		result = importer.ImportCSV(path)
	}
	for _, w := range result.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
	if len(result.Errors) > 0 {
		return nil, fmt.Errorf("import %s: %s", path, strings.Join(result.Errors, "; "))
	}
	return result.Requests, nil
}

// progressBars renders one bar per solver stage, replacing the bar when
// the solver moves to the next stage.
type progressBars struct {
	stage engine.Stage
	bar   *pb.ProgressBar
}

func newProgressBars() *progressBars {
	return &progressBars{}
}

func (p *progressBars) update(stage engine.Stage, done, total int) {
	if stage != p.stage {
		if p.bar != nil {
			p.bar.Finish()
		}
		p.stage = stage
		p.bar = pb.StartNew(total)
		p.bar.Set("prefix", string(stage)+" ")
	}
	p.bar.SetCurrent(int64(done))
	if done >= total {
		p.bar.Finish()
	}
}

type outputs struct {
	pdf     string
	dxf     string
	gcode   string
	labels  string
	save    string
	archive string
}

func writeOutputs(plan *model.Solution, requests []model.Request, cfg config.Config, out outputs) error {
	if out.pdf != "" {
		if err := export.ExportPDF(out.pdf, plan, requests, cfg.CakeWidth, cfg.CakeLength); err != nil {
			return fmt.Errorf("export pdf: %w", err)
		}
		fmt.Println("wrote", out.pdf)
	}
	if out.dxf != "" {
		if err := export.ExportDXF(out.dxf, plan, cfg.CakeWidth, cfg.CakeLength); err != nil {
			return fmt.Errorf("export dxf: %w", err)
		}
		fmt.Println("wrote", out.dxf)
	}
	if out.gcode != "" {
		code := gcode.New(cfg.GCode).Generate(plan.Moves, cfg.CakeWidth, cfg.CakeLength)
		for _, warning := range gcode.FormatBoundsWarnings(gcode.CheckBounds(code, cfg.CakeWidth, cfg.CakeLength)) {
			fmt.Fprintln(os.Stderr, "warning:", warning)
		}
		if err := os.WriteFile(out.gcode, []byte(code), 0644); err != nil {
			return fmt.Errorf("write gcode: %w", err)
		}
		fmt.Println("wrote", out.gcode)
	}
	if out.labels != "" {
		if err := export.ExportLabels(out.labels, plan, requests); err != nil {
			return fmt.Errorf("export labels: %w", err)
		}
		fmt.Println("wrote", out.labels)
	}
	if out.save != "" || out.archive != "" {
		p := project.NewPlan(planName(out), cfg.CakeWidth, cfg.CakeLength, cfg.Tolerance, requests, cfg.Settings)
		p.Solution = plan
		if out.save != "" {
			if err := project.SavePlan(out.save, p); err != nil {
				return fmt.Errorf("save plan: %w", err)
			}
			fmt.Println("wrote", out.save)
		}
		if out.archive != "" {
			if err := project.ExportArchive(out.archive, p); err != nil {
				return fmt.Errorf("export archive: %w", err)
			}
			fmt.Println("wrote", out.archive)
		}
	}
	return nil
}

func planName(out outputs) string {
	for _, p := range []string{out.save, out.archive} {
		if p != "" {
			base := filepath.Base(p)
			return strings.TrimSuffix(base, filepath.Ext(base))
		}
	}
	return "plan"
}

func printReport(w *os.File, plan *model.Solution, requests []model.Request, cfg config.Config) {
	areas := make([]float64, len(plan.Pieces))
	for i, piece := range plan.Pieces {
		areas[i] = piece.Area()
	}
	requested := floats.Sum(model.Areas(requests))

	fmt.Fprintf(w, "\nCake %gx%g, %d request(s) totalling %.2f\n",
		cfg.CakeWidth, cfg.CakeLength, len(requests), requested)
	fmt.Fprintf(w, "Cuts: %d  Pieces: %d  Penalty: %.2f\n",
		plan.CutCount, len(plan.Pieces), plan.Penalty)

	fmt.Fprintln(w, "\n  #  Request     Requested      Served    Error%")
	for ri, req := range requests {
		pi := plan.Assignment[ri]
		if pi < 0 {
			fmt.Fprintf(w, "%3d  %-10s %10.2f  unassigned\n", ri+1, req.ID, req.Area)
			continue
		}
		served := areas[pi]
		errPct := 100 * (served - req.Area) / req.Area
		if errPct < 0 {
			errPct = -errPct
		}
		fmt.Fprintf(w, "%3d  %-10s %10.2f  %10.2f  %7.2f\n", ri+1, req.ID, req.Area, served, errPct)
	}

	if scrap := floats.Sum(areas) - requested; scrap > 0.01 {
		fmt.Fprintf(w, "\nScrap: %.2f (%.1f%% of the cake)\n",
			scrap, 100*scrap/(cfg.CakeWidth*cfg.CakeLength))
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "cakecut:", err)
	os.Exit(1)
}
