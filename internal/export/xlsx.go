package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/cutplan/internal/model"
)

// ExportXLSX writes the cutting plan as an Excel workbook: a "Cut List"
// sheet with one row per placement and a "Summary" sheet with totals.
func ExportXLSX(path string, solution model.Solution) error {
	if len(solution.Sheets) == 0 {
		return fmt.Errorf("no sheets to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	const listSheet = "Cut List"
	f.SetSheetName("Sheet1", listSheet)

	headers := []string{"Sheet", "Length", "Width", "X", "Y", "Rotated"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(listSheet, cell, h); err != nil {
			return err
		}
	}

	row := 2
	for sheetIdx, sheet := range solution.Sheets {
		for _, p := range sheet.Placements {
			values := []interface{}{sheetIdx + 1, p.Rect.Length, p.Rect.Width, p.X, p.Y, p.Rotated}
			for col, v := range values {
				cell, err := excelize.CoordinatesToCellName(col+1, row)
				if err != nil {
					return err
				}
				if err := f.SetCellValue(listSheet, cell, v); err != nil {
					return err
				}
			}
			row++
		}
	}

	const summarySheet = "Summary"
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}

	var totalPieces int
	for _, sheet := range solution.Sheets {
		totalPieces += len(sheet.Placements)
	}

	summary := [][]interface{}{
		{"Stock sheet", solution.Stock.String()},
		{"Sheets used", solution.SheetCount()},
		{"Pieces placed", totalPieces},
		{"Total waste %", solution.TotalWastePercent()},
	}
	for i, pair := range summary {
		for col, v := range pair {
			cell, err := excelize.CoordinatesToCellName(col+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(summarySheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}
