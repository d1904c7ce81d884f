// cutplan — 2D rectangular cutting-stock optimizer CLI.
//
// Build:
//
//	go build -o cutplan ./cmd/cutplan
//
// Example:
//
//	cutplan --stock 2400x1200 --cuts 800x600:3 --cuts 400x300:5 --kerf 3 --layout
package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/piwi3910/cutplan/internal/engine"
	"github.com/piwi3910/cutplan/internal/export"
	"github.com/piwi3910/cutplan/internal/model"
	"github.com/piwi3910/cutplan/internal/render"
)

// Options defines the CLI flags.
type Options struct {
	Stock        string   `long:"stock" required:"true" value-name:"LxW" description:"Stock sheet dimensions (e.g. 2400x1200)"`
	Cuts         []string `long:"cuts" required:"true" value-name:"LxW:qty" description:"Cut pieces (repeatable, e.g. 800x600:3)"`
	Kerf         uint32   `long:"kerf" default:"0" description:"Blade kerf width"`
	NoRotate     bool     `long:"no-rotate" description:"Disable piece rotation"`
	CutDirection string   `long:"cut-direction" default:"auto" choice:"auto" choice:"along-length" choice:"along-width" description:"Preferred cut direction"`
	Layout       bool     `long:"layout" description:"Show ASCII layout of each sheet"`
	PDF          string   `long:"pdf" value-name:"FILE" description:"Write a layout PDF"`
	Labels       string   `long:"labels" value-name:"FILE" description:"Write a QR label PDF"`
	XLSX         string   `long:"xlsx" value-name:"FILE" description:"Write a cut-list workbook"`
	DXF          string   `long:"dxf" value-name:"FILE" description:"Write a layout DXF drawing"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Name = "cutplan"

	if _, err := parser.Parse(); err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if err := run(&opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts *Options) error {
	stock, err := parseDimensions(opts.Stock)
	if err != nil {
		return err
	}

	var cutDir model.CutDirection
	if err := cutDir.UnmarshalText([]byte(opts.CutDirection)); err != nil {
		return err
	}

	demands := make([]model.Demand, 0, len(opts.Cuts))
	for _, c := range opts.Cuts {
		d, err := parseCut(c, !opts.NoRotate)
		if err != nil {
			return err
		}
		demands = append(demands, d)
	}

	// Reject pieces that fit in no permitted orientation before the
	// solver sees them.
	for _, d := range demands {
		rot := model.ResolveRotation(model.GrainNone, d.Grain, d.AllowRotate, cutDir, d.Rect)
		if !model.FitsStock(d.Rect, stock, rot) {
			return fmt.Errorf("piece %s does not fit in stock %s", d.Rect, stock)
		}
	}

	solution := engine.New(stock, opts.Kerf, cutDir, model.GrainNone, demands).Solve()

	for i, sheet := range solution.Sheets {
		fmt.Printf("Sheet %d:\n", i+1)
		for _, p := range sheet.Placements {
			rot := ""
			if p.Rotated {
				rot = " [rotated]"
			}
			fmt.Printf("  %s @ (%d, %d)%s\n", p.Rect, p.X, p.Y, rot)
		}
		if opts.Layout {
			fmt.Print(render.RenderSheet(stock, sheet.Placements))
		}
		fmt.Println()
	}

	plural := "s"
	if solution.SheetCount() == 1 {
		plural = ""
	}
	fmt.Printf("Summary: %d sheet%s used, %.1f%% waste\n",
		solution.SheetCount(), plural, solution.TotalWastePercent())

	return writeExports(opts, solution)
}

// writeExports runs every exporter the caller asked for.
func writeExports(opts *Options, solution model.Solution) error {
	if opts.PDF != "" {
		if err := export.ExportPDF(opts.PDF, solution); err != nil {
			return fmt.Errorf("pdf export: %w", err)
		}
	}
	if opts.Labels != "" {
		if err := export.ExportLabels(opts.Labels, solution); err != nil {
			return fmt.Errorf("label export: %w", err)
		}
	}
	if opts.XLSX != "" {
		if err := export.ExportXLSX(opts.XLSX, solution); err != nil {
			return fmt.Errorf("xlsx export: %w", err)
		}
	}
	if opts.DXF != "" {
		if err := export.ExportDXF(opts.DXF, solution); err != nil {
			return fmt.Errorf("dxf export: %w", err)
		}
	}
	return nil
}
