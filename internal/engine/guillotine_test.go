package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/cutplan/internal/model"
)

func TestPlaceSinglePiece(t *testing.T) {
	bin := NewBin(model.NewRect(100, 100), 0, model.CutAuto)
	piece := model.NewRect(50, 30)

	scored, ok := bin.FindBest(piece, model.NoRotate, BestAreaFit)
	require.True(t, ok)

	p := bin.Place(scored, piece)
	assert.Equal(t, uint32(0), p.X)
	assert.Equal(t, uint32(0), p.Y)
	assert.Equal(t, model.NewRect(50, 30), p.Rect)
	assert.False(t, p.Rotated)
	assert.NotEmpty(t, bin.FreeRects)
}

func TestPieceTooLarge(t *testing.T) {
	bin := NewBin(model.NewRect(100, 100), 0, model.CutAuto)

	_, ok := bin.FindBest(model.NewRect(200, 50), model.NoRotate, BestAreaFit)
	assert.False(t, ok)
}

func TestRotationFit(t *testing.T) {
	bin := NewBin(model.NewRect(100, 50), 0, model.CutAuto)
	piece := model.NewRect(50, 100)

	// Doesn't fit without rotation
	_, ok := bin.FindBest(piece, model.NoRotate, BestAreaFit)
	assert.False(t, ok)

	// Fits with rotation
	scored, ok := bin.FindBest(piece, model.Free, BestAreaFit)
	require.True(t, ok)
	assert.True(t, scored.Rotated)
}

func TestForceRotateOnlyConsidersRotated(t *testing.T) {
	bin := NewBin(model.NewRect(100, 100), 0, model.CutAuto)
	piece := model.NewRect(60, 40)

	scored, ok := bin.FindBest(piece, model.ForceRotate, BestAreaFit)
	require.True(t, ok)
	assert.True(t, scored.Rotated)

	p := bin.Place(scored, piece)
	assert.Equal(t, model.NewRect(40, 60), p.Rect)
	assert.True(t, p.Rotated)
}

func TestKerfShrinksRemainders(t *testing.T) {
	bin := NewBin(model.NewRect(100, 100), 5, model.CutAuto)
	piece := model.NewRect(50, 100)

	scored, ok := bin.FindBest(piece, model.NoRotate, BestAreaFit)
	require.True(t, ok)
	bin.Place(scored, piece)

	// Remaining length is 100 - 50 - 5 = 45
	found := false
	for _, f := range bin.FreeRects {
		if f.Rect.Length == 45 {
			found = true
		}
	}
	assert.True(t, found, "expected a 45-long free rect after kerf")
}

func TestFillExact(t *testing.T) {
	bin := NewBin(model.NewRect(100, 100), 0, model.CutAuto)
	piece := model.NewRect(100, 100)

	scored, ok := bin.FindBest(piece, model.NoRotate, BestAreaFit)
	require.True(t, ok)
	bin.Place(scored, piece)

	assert.Empty(t, bin.FreeRects)
	assert.Equal(t, uint64(10000), bin.UsedArea())
}

func TestSplitAlongLength(t *testing.T) {
	bin := NewBin(model.NewRect(100, 100), 0, model.CutAlongLength)
	piece := model.NewRect(40, 30)

	scored, ok := bin.FindBest(piece, model.NoRotate, BestAreaFit)
	require.True(t, ok)
	bin.Place(scored, piece)

	require.Len(t, bin.FreeRects, 2)
	assert.Contains(t, bin.FreeRects, FreeRect{X: 40, Y: 0, Rect: model.NewRect(60, 30)})
	assert.Contains(t, bin.FreeRects, FreeRect{X: 0, Y: 30, Rect: model.NewRect(100, 70)})
}

func TestSplitAlongWidth(t *testing.T) {
	bin := NewBin(model.NewRect(100, 100), 0, model.CutAlongWidth)
	piece := model.NewRect(40, 30)

	scored, ok := bin.FindBest(piece, model.NoRotate, BestAreaFit)
	require.True(t, ok)
	bin.Place(scored, piece)

	require.Len(t, bin.FreeRects, 2)
	assert.Contains(t, bin.FreeRects, FreeRect{X: 40, Y: 0, Rect: model.NewRect(60, 100)})
	assert.Contains(t, bin.FreeRects, FreeRect{X: 0, Y: 30, Rect: model.NewRect(40, 70)})
}

func TestAutoSplitPicksShorterLeftoverAxis(t *testing.T) {
	// Leftover along length (10) is shorter than along width (70), so
	// the split runs along the length axis and the bottom remainder
	// spans the full sheet length.
	bin := NewBin(model.NewRect(100, 100), 0, model.CutAuto)
	piece := model.NewRect(90, 30)

	scored, ok := bin.FindBest(piece, model.NoRotate, BestAreaFit)
	require.True(t, ok)
	bin.Place(scored, piece)

	require.Len(t, bin.FreeRects, 2)
	assert.Contains(t, bin.FreeRects, FreeRect{X: 90, Y: 0, Rect: model.NewRect(10, 30)})
	assert.Contains(t, bin.FreeRects, FreeRect{X: 0, Y: 30, Rect: model.NewRect(100, 70)})
}

func TestTwoPiecesLeaveFullStrip(t *testing.T) {
	// The first 50x50 piece splits along the width, leaving a 50x100
	// right strip and a 50x50 rect below the piece. The second piece
	// fills that rect exactly, so the strip is the only free rect left.
	bin := NewBin(model.NewRect(100, 100), 0, model.CutAuto)
	piece := model.NewRect(50, 50)

	for i := 0; i < 2; i++ {
		scored, ok := bin.FindBest(piece, model.NoRotate, BestAreaFit)
		require.True(t, ok)
		bin.Place(scored, piece)
	}

	require.Len(t, bin.FreeRects, 1)
	assert.Equal(t, FreeRect{X: 50, Y: 0, Rect: model.NewRect(50, 100)}, bin.FreeRects[0])
}

func TestAlongWidthLeavesFullHeightColumns(t *testing.T) {
	// Under AlongWidth, full-height pieces leave a single full-height
	// free column to their right after each placement.
	bin := NewBin(model.NewRect(100, 100), 0, model.CutAlongWidth)
	piece := model.NewRect(40, 100)

	scored, ok := bin.FindBest(piece, model.NoRotate, BestAreaFit)
	require.True(t, ok)
	bin.Place(scored, piece)

	require.Len(t, bin.FreeRects, 1)
	assert.Equal(t, FreeRect{X: 40, Y: 0, Rect: model.NewRect(60, 100)}, bin.FreeRects[0])

	second := model.NewRect(30, 100)
	scored, ok = bin.FindBest(second, model.NoRotate, BestAreaFit)
	require.True(t, ok)
	bin.Place(scored, second)

	// Only the 30-wide column at x=70 remains
	require.Len(t, bin.FreeRects, 1)
	assert.Equal(t, FreeRect{X: 70, Y: 0, Rect: model.NewRect(30, 100)}, bin.FreeRects[0])
}

func TestScoreStrategiesRankDifferently(t *testing.T) {
	free := model.NewRect(100, 40)
	piece := model.NewRect(90, 10)

	area := scorePlacement(piece, free, BestAreaFit)
	short := scorePlacement(piece, free, BestShortSideFit)
	long := scorePlacement(piece, free, BestLongSideFit)

	assert.Equal(t, Score{Primary: 3100, Secondary: 10}, area)
	assert.Equal(t, Score{Primary: 10, Secondary: 30}, short)
	assert.Equal(t, Score{Primary: 30, Secondary: 10}, long)
}

func TestScoreLexicographicOrder(t *testing.T) {
	assert.True(t, Score{Primary: 1, Secondary: 9}.Less(Score{Primary: 2, Secondary: 0}))
	assert.True(t, Score{Primary: 1, Secondary: 1}.Less(Score{Primary: 1, Secondary: 2}))
	assert.False(t, Score{Primary: 1, Secondary: 2}.Less(Score{Primary: 1, Secondary: 2}))
}

func TestCloneIsDeep(t *testing.T) {
	bin := NewBin(model.NewRect(100, 100), 0, model.CutAuto)
	piece := model.NewRect(50, 50)
	scored, ok := bin.FindBest(piece, model.NoRotate, BestAreaFit)
	require.True(t, ok)
	bin.Place(scored, piece)

	clone := bin.Clone()
	scored, ok = clone.FindBest(piece, model.NoRotate, BestAreaFit)
	require.True(t, ok)
	clone.Place(scored, piece)

	assert.Len(t, bin.Placements, 1)
	assert.Len(t, clone.Placements, 2)
	assert.NotEqual(t, bin.FreeArea(), clone.FreeArea())
}
