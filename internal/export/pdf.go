// Package export writes cutting plans to printable and machine-readable
// file formats.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/cutplan/internal/model"
)

// partColor represents an RGB color for a placed piece.
type partColor struct {
	R, G, B int
}

var partColors = []partColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	statsHeight  = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF writes the cutting plan as a PDF: one page per sheet with
// a scaled layout diagram, plus a closing summary page.
func ExportPDF(path string, solution model.Solution) error {
	if len(solution.Sheets) == 0 {
		return fmt.Errorf("no sheets to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for i, sheet := range solution.Sheets {
		pdf.AddPage()
		renderSheetPage(pdf, solution.Stock, sheet, i+1)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, solution)

	return pdf.OutputFileAndClose(path)
}

// renderSheetPage draws a single sheet on the current PDF page.
func renderSheetPage(pdf *fpdf.Fpdf, stock model.Rect, sheet model.SheetResult, sheetNum int) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Sheet %d (%s)", sheetNum, stock)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Pieces: %d | Used area: %d | Waste area: %d | Efficiency: %.1f%%",
		len(sheet.Placements), sheet.UsedArea(), sheet.WasteArea, sheet.Efficiency(stock))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - statsHeight

	scaleX := drawWidth / float64(stock.Length)
	scaleY := drawHeight / float64(stock.Width)
	scale := math.Min(scaleX, scaleY)

	canvasW := float64(stock.Length) * scale
	canvasH := float64(stock.Width) * scale

	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Stock sheet background (wood color)
	pdf.SetFillColor(210, 180, 140)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	for i, p := range sheet.Placements {
		col := partColors[i%len(partColors)]
		pw := float64(p.Rect.Length) * scale
		ph := float64(p.Rect.Width) * scale
		px := offsetX + float64(p.X)*scale
		py := offsetY + float64(p.Y)*scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		if pw > 15 && ph > 8 {
			pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
			pdf.SetTextColor(0, 0, 0)

			dims := p.Rect.String()
			if p.Rotated {
				dims += " (R)"
			}
			dimsW := pdf.GetStringWidth(dims)
			pdf.SetXY(px+(pw-dimsW)/2, py+ph/2-2)
			pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
		}
	}

	// Offcut outlines, dashed
	pdf.SetDrawColor(120, 120, 120)
	pdf.SetLineWidth(0.2)
	pdf.SetDashPattern([]float64{1.5, 1.5}, 0)
	for _, o := range sheet.Offcuts {
		ox := offsetX + float64(o.X)*scale
		oy := offsetY + float64(o.Y)*scale
		pdf.Rect(ox, oy, float64(o.Rect.Length)*scale, float64(o.Rect.Width)*scale, "D")
	}
	pdf.SetDashPattern([]float64{}, 0)
}

// renderSummaryPage draws the closing statistics page.
func renderSummaryPage(pdf *fpdf.Fpdf, solution model.Solution) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, "Summary", "", 0, "L", false, 0, "")

	var totalPieces int
	var totalWaste uint64
	for _, sheet := range solution.Sheets {
		totalPieces += len(sheet.Placements)
		totalWaste += sheet.WasteArea
	}

	lines := []string{
		fmt.Sprintf("Stock sheet: %s", solution.Stock),
		fmt.Sprintf("Sheets used: %d", solution.SheetCount()),
		fmt.Sprintf("Pieces placed: %d", totalPieces),
		fmt.Sprintf("Total waste area: %d", totalWaste),
		fmt.Sprintf("Total waste: %.1f%%", solution.TotalWastePercent()),
	}

	pdf.SetFont("Helvetica", "", 12)
	y := marginTop + headerHeight + 8
	for _, line := range lines {
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(pageWidth-marginLeft-marginRight, 6, line, "", 0, "L", false, 0, "")
		y += 8
	}
}

// labelFontSize picks a font size that fits the piece rectangle.
func labelFontSize(w, h float64) float64 {
	size := math.Min(w/8, h/2)
	if size > 10 {
		size = 10
	}
	if size < 4 {
		size = 4
	}
	return size
}
