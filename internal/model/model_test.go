package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectArea(t *testing.T) {
	assert.Equal(t, uint64(5000), NewRect(100, 50).Area())

	// Area must not overflow 32 bits
	big := NewRect(4000000000, 4000000000)
	assert.Equal(t, uint64(4000000000)*4000000000, big.Area())
}

func TestRectRotated(t *testing.T) {
	assert.Equal(t, NewRect(50, 100), NewRect(100, 50).Rotated())
	assert.True(t, NewRect(70, 70).IsSquare())
	assert.False(t, NewRect(70, 30).IsSquare())
}

func TestRectFitsIn(t *testing.T) {
	stock := NewRect(100, 50)

	assert.True(t, NewRect(100, 50).FitsIn(stock))
	assert.True(t, NewRect(30, 40).FitsIn(stock))
	assert.False(t, NewRect(101, 50).FitsIn(stock))
	assert.False(t, NewRect(50, 51).FitsIn(stock))
	assert.False(t, NewRect(50, 100).FitsIn(stock))
	assert.True(t, NewRect(50, 100).Rotated().FitsIn(stock))
}

func TestRectString(t *testing.T) {
	assert.Equal(t, "100x50", NewRect(100, 50).String())
}

func TestNewDemandDefaults(t *testing.T) {
	d := NewDemand(NewRect(80, 60), 3)

	assert.Len(t, d.ID, 8)
	assert.Equal(t, uint32(3), d.Qty)
	assert.True(t, d.AllowRotate)
	assert.Equal(t, PieceGrainAuto, d.Grain)
}

func TestSheetResultUsedArea(t *testing.T) {
	sheet := SheetResult{
		Placements: []Placement{
			{Rect: NewRect(50, 50)},
			{Rect: NewRect(30, 20)},
		},
	}
	assert.Equal(t, uint64(3100), sheet.UsedArea())
	assert.InDelta(t, 31.0, sheet.Efficiency(NewRect(100, 100)), 0.001)
}

func TestTotalWastePercent(t *testing.T) {
	stock := NewRect(100, 100)

	full := Solution{
		Stock:  stock,
		Sheets: []SheetResult{{Placements: []Placement{{Rect: NewRect(100, 100)}}}},
	}
	assert.InDelta(t, 0.0, full.TotalWastePercent(), 0.001)

	quarter := Solution{
		Stock:  stock,
		Sheets: []SheetResult{{Placements: []Placement{{Rect: NewRect(50, 50)}}}},
	}
	assert.InDelta(t, 75.0, quarter.TotalWastePercent(), 0.001)

	empty := Solution{Stock: stock}
	assert.Equal(t, 0.0, empty.TotalWastePercent())
}

func TestDetectOffcuts(t *testing.T) {
	candidates := []Offcut{
		{X: 0, Y: 0, Rect: NewRect(400, 200)},
		{X: 500, Y: 0, Rect: NewRect(40, 900)},  // too narrow
		{X: 0, Y: 300, Rect: NewRect(60, 100)},  // area below threshold
		{X: 0, Y: 500, Rect: NewRect(100, 150)},
	}

	offcuts := DetectOffcuts(candidates)

	require.Len(t, offcuts, 2)
	assert.Equal(t, NewRect(400, 200), offcuts[0].Rect)
	assert.Equal(t, NewRect(100, 150), offcuts[1].Rect)
	for _, o := range offcuts {
		assert.Len(t, o.ID, 8)
	}
	assert.Equal(t, uint64(400*200+100*150), TotalOffcutArea(offcuts))
}
