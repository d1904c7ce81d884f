package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"

	"github.com/piwi3910/cutplan/internal/model"
)

// ExportDXF writes the cutting plan as a DXF drawing: sheet outlines on
// a STOCK layer and placed pieces on a PARTS layer. Sheets are laid out
// side by side with a gap so the drawing stays readable in CAD.
func ExportDXF(path string, solution model.Solution) error {
	if len(solution.Sheets) == 0 {
		return fmt.Errorf("no sheets to export")
	}

	d := dxf.NewDrawing()

	if _, err := d.AddLayer("STOCK", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("add stock layer: %w", err)
	}
	if _, err := d.AddLayer("PARTS", color.Red, dxf.DefaultLineType, false); err != nil {
		return fmt.Errorf("add parts layer: %w", err)
	}

	gap := float64(solution.Stock.Length) / 10.0
	if gap < 10 {
		gap = 10
	}

	for i, sheet := range solution.Sheets {
		offsetX := float64(i) * (float64(solution.Stock.Length) + gap)

		if err := d.ChangeLayer("STOCK"); err != nil {
			return err
		}
		if err := drawRectangle(d, offsetX, 0, float64(solution.Stock.Length), float64(solution.Stock.Width)); err != nil {
			return fmt.Errorf("sheet %d outline: %w", i+1, err)
		}

		if err := d.ChangeLayer("PARTS"); err != nil {
			return err
		}
		for _, p := range sheet.Placements {
			if err := drawRectangle(d, offsetX+float64(p.X), float64(p.Y), float64(p.Rect.Length), float64(p.Rect.Width)); err != nil {
				return fmt.Errorf("sheet %d placement: %w", i+1, err)
			}
		}
	}

	return d.SaveAs(path)
}

// drawRectangle draws an axis-aligned rectangle as four LINE entities.
func drawRectangle(d *drawing.Drawing, x, y, w, h float64) error {
	lines := [][4]float64{
		{x, y, x + w, y},
		{x + w, y, x + w, y + h},
		{x + w, y + h, x, y + h},
		{x, y + h, x, y},
	}
	for _, l := range lines {
		if _, err := d.Line(l[0], l[1], 0, l[2], l[3], 0); err != nil {
			return err
		}
	}
	return nil
}
