package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/cutplan/internal/model"
)

func testSolution() model.Solution {
	return model.Solution{
		Stock: model.NewRect(2400, 1200),
		Sheets: []model.SheetResult{
			{
				Placements: []model.Placement{
					{Rect: model.NewRect(800, 600), X: 0, Y: 0},
					{Rect: model.NewRect(600, 800), X: 800, Y: 0, Rotated: true},
				},
				WasteArea: 2400*1200 - 2*480000,
				Offcuts: []model.Offcut{
					{ID: "deadbeef", X: 0, Y: 800, Rect: model.NewRect(2400, 400)},
				},
			},
		},
	}
}

func requireNonEmptyFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.pdf")

	require.NoError(t, ExportPDF(path, testSolution()))
	requireNonEmptyFile(t, path)
}

func TestExportPDFEmptySolution(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.pdf")

	err := ExportPDF(path, model.Solution{Stock: model.NewRect(100, 100)})
	assert.Error(t, err)
}

func TestExportLabels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")

	require.NoError(t, ExportLabels(path, testSolution()))
	requireNonEmptyFile(t, path)
}

func TestExportLabelsNoPlacements(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")

	err := ExportLabels(path, model.Solution{Stock: model.NewRect(100, 100)})
	assert.Error(t, err)
}

func TestExportXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cutlist.xlsx")

	require.NoError(t, ExportXLSX(path, testSolution()))
	requireNonEmptyFile(t, path)
}

func TestExportDXF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.dxf")

	require.NoError(t, ExportDXF(path, testSolution()))
	requireNonEmptyFile(t, path)
}
