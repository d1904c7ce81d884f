// Package engine implements the placement core: a guillotine bin that
// tracks free rectangles on a single stock sheet, and the solver that
// packs demanded pieces onto as few sheets as possible.
package engine

import (
	"github.com/piwi3910/cutplan/internal/model"
)

// FreeRect is a rectangular region of a sheet not yet covered by a
// placement. Free rects on one sheet never overlap, and mergeable
// neighbours are merged eagerly after every placement.
type FreeRect struct {
	X    uint32
	Y    uint32
	Rect model.Rect
}

// ScoreStrategy selects how candidate placements are ranked.
type ScoreStrategy int

const (
	// BestAreaFit ranks by leftover area, then by the smaller side gap.
	BestAreaFit ScoreStrategy = iota
	// BestShortSideFit ranks by the smaller side gap, then the larger.
	BestShortSideFit
	// BestLongSideFit ranks by the larger side gap, then the smaller.
	BestLongSideFit
)

// Strategies lists every scoring strategy the greedy phase tries.
var Strategies = []ScoreStrategy{BestAreaFit, BestShortSideFit, BestLongSideFit}

func (s ScoreStrategy) String() string {
	switch s {
	case BestShortSideFit:
		return "best-short-side-fit"
	case BestLongSideFit:
		return "best-long-side-fit"
	default:
		return "best-area-fit"
	}
}

// Score is a lexicographic placement score. Lower is better.
type Score struct {
	Primary   uint64
	Secondary uint64
}

// Less reports whether s ranks strictly better than other.
func (s Score) Less(other Score) bool {
	if s.Primary != other.Primary {
		return s.Primary < other.Primary
	}
	return s.Secondary < other.Secondary
}

// ScoredPlacement is a candidate found by FindBest: which free rect to
// use, whether the piece is rotated, and how good the fit is.
type ScoredPlacement struct {
	FreeIdx int
	Rotated bool
	Score   Score
}

// GuillotineBin is one stock sheet being packed. Every placement
// consumes a free rect, splits the remainder with a guillotine cut,
// and re-merges compatible free rects.
type GuillotineBin struct {
	Stock      model.Rect
	Kerf       uint32
	CutDir     model.CutDirection
	FreeRects  []FreeRect
	Placements []model.Placement
}

// NewBin creates an empty bin with a single free rect covering the
// whole sheet.
func NewBin(stock model.Rect, kerf uint32, cutDir model.CutDirection) *GuillotineBin {
	return &GuillotineBin{
		Stock:     stock,
		Kerf:      kerf,
		CutDir:    cutDir,
		FreeRects: []FreeRect{{X: 0, Y: 0, Rect: stock}},
	}
}

// Clone returns a deep copy: the free-rect and placement slices are
// independent of the original, as branch-and-bound requires.
func (b *GuillotineBin) Clone() *GuillotineBin {
	clone := &GuillotineBin{
		Stock:      b.Stock,
		Kerf:       b.Kerf,
		CutDir:     b.CutDir,
		FreeRects:  make([]FreeRect, len(b.FreeRects)),
		Placements: make([]model.Placement, len(b.Placements)),
	}
	copy(clone.FreeRects, b.FreeRects)
	copy(clone.Placements, b.Placements)
	return clone
}

// UsedArea returns the total area of placed pieces.
func (b *GuillotineBin) UsedArea() uint64 {
	var total uint64
	for _, p := range b.Placements {
		total += p.Rect.Area()
	}
	return total
}

// FreeArea returns the total area of the free-rect inventory.
func (b *GuillotineBin) FreeArea() uint64 {
	var total uint64
	for _, f := range b.FreeRects {
		total += f.Rect.Area()
	}
	return total
}

// FindBest scans every free rect for the best spot for the piece under
// the given rotation constraint and scoring strategy. Ties keep the
// first candidate found: the scan runs in insertion order and replaces
// only on a strictly better score.
func (b *GuillotineBin) FindBest(piece model.Rect, rot model.RotationConstraint, strategy ScoreStrategy) (ScoredPlacement, bool) {
	var best ScoredPlacement
	found := false

	for idx, free := range b.FreeRects {
		if rot != model.ForceRotate && piece.FitsIn(free.Rect) {
			score := scorePlacement(piece, free.Rect, strategy)
			if !found || score.Less(best.Score) {
				best = ScoredPlacement{FreeIdx: idx, Rotated: false, Score: score}
				found = true
			}
		}
		if rot != model.NoRotate {
			rotated := piece.Rotated()
			if rotated.FitsIn(free.Rect) {
				score := scorePlacement(rotated, free.Rect, strategy)
				if !found || score.Less(best.Score) {
					best = ScoredPlacement{FreeIdx: idx, Rotated: true, Score: score}
					found = true
				}
			}
		}
	}

	return best, found
}

// scorePlacement rates an oriented piece inside a free rect. The piece
// is assumed to fit.
func scorePlacement(piece, free model.Rect, strategy ScoreStrategy) Score {
	dLen := uint64(free.Length - piece.Length)
	dWid := uint64(free.Width - piece.Width)
	short, long := dLen, dWid
	if short > long {
		short, long = long, short
	}

	switch strategy {
	case BestShortSideFit:
		return Score{Primary: short, Secondary: long}
	case BestLongSideFit:
		return Score{Primary: long, Secondary: short}
	default:
		return Score{Primary: free.Area() - piece.Area(), Secondary: short}
	}
}

// Place commits a candidate from FindBest: removes the chosen free
// rect, records the placement at its origin, splits the remainder and
// merges the free-rect inventory.
func (b *GuillotineBin) Place(scored ScoredPlacement, piece model.Rect) model.Placement {
	free := b.FreeRects[scored.FreeIdx]
	placed := piece
	if scored.Rotated {
		placed = piece.Rotated()
	}

	placement := model.Placement{
		Rect:    placed,
		X:       free.X,
		Y:       free.Y,
		Rotated: scored.Rotated,
	}

	// Unordered removal; free-rect order is not meaningful.
	last := len(b.FreeRects) - 1
	b.FreeRects[scored.FreeIdx] = b.FreeRects[last]
	b.FreeRects = b.FreeRects[:last]

	b.split(free, placed)
	b.Placements = append(b.Placements, placement)
	b.mergeFreeRects()

	return placement
}

// remainder returns dim - (used + kerf), clamped at zero.
func remainder(dim, used, kerf uint32) uint32 {
	need := uint64(used) + uint64(kerf)
	if uint64(dim) <= need {
		return 0
	}
	return dim - uint32(need)
}

// split performs the guillotine split of the consumed free rect around
// the placed piece. The cut direction pins the split axis; Auto picks
// the split whose thin slab follows the shorter leftover axis.
func (b *GuillotineBin) split(free FreeRect, placed model.Rect) {
	remLen := remainder(free.Rect.Length, placed.Length, b.Kerf)
	remWid := remainder(free.Rect.Width, placed.Width, b.Kerf)

	switch {
	case remLen > 0 && remWid > 0:
		alongLength := false
		switch b.CutDir {
		case model.CutAlongLength:
			alongLength = true
		case model.CutAlongWidth:
			alongLength = false
		default:
			alongLength = free.Rect.Length-placed.Length < free.Rect.Width-placed.Width
		}

		if alongLength {
			// Cut parallel to the length axis: the bottom remainder
			// spans the full original length.
			b.FreeRects = append(b.FreeRects,
				FreeRect{
					X:    free.X + placed.Length + b.Kerf,
					Y:    free.Y,
					Rect: model.NewRect(remLen, placed.Width),
				},
				FreeRect{
					X:    free.X,
					Y:    free.Y + placed.Width + b.Kerf,
					Rect: model.NewRect(free.Rect.Length, remWid),
				})
		} else {
			// Cut parallel to the width axis: the right remainder
			// spans the full original width.
			b.FreeRects = append(b.FreeRects,
				FreeRect{
					X:    free.X + placed.Length + b.Kerf,
					Y:    free.Y,
					Rect: model.NewRect(remLen, free.Rect.Width),
				},
				FreeRect{
					X:    free.X,
					Y:    free.Y + placed.Width + b.Kerf,
					Rect: model.NewRect(placed.Length, remWid),
				})
		}

	case remLen > 0:
		b.FreeRects = append(b.FreeRects, FreeRect{
			X:    free.X + placed.Length + b.Kerf,
			Y:    free.Y,
			Rect: model.NewRect(remLen, free.Rect.Width),
		})

	case remWid > 0:
		b.FreeRects = append(b.FreeRects, FreeRect{
			X:    free.X,
			Y:    free.Y + placed.Width + b.Kerf,
			Rect: model.NewRect(free.Rect.Length, remWid),
		})
	}
}

// mergeFreeRects repeatedly merges pairs of free rects sharing a full
// edge until none qualify.
func (b *GuillotineBin) mergeFreeRects() {
	merged := true
	for merged {
		merged = false
	scan:
		for i := 0; i < len(b.FreeRects); i++ {
			for j := i + 1; j < len(b.FreeRects); j++ {
				if m, ok := b.tryMerge(b.FreeRects[i], b.FreeRects[j]); ok {
					b.FreeRects[i] = m
					last := len(b.FreeRects) - 1
					b.FreeRects[j] = b.FreeRects[last]
					b.FreeRects = b.FreeRects[:last]
					merged = true
					break scan
				}
			}
		}
	}
}

// tryMerge merges two free rects sharing a full edge. A preferred cut
// direction keeps its grid: AlongWidth preserves column boundaries by
// refusing length-wise merges, AlongLength preserves row boundaries by
// refusing width-wise merges.
func (b *GuillotineBin) tryMerge(a, c FreeRect) (FreeRect, bool) {
	if b.CutDir != model.CutAlongWidth && a.Y == c.Y && a.Rect.Width == c.Rect.Width {
		if a.X+a.Rect.Length == c.X {
			return FreeRect{X: a.X, Y: a.Y, Rect: model.NewRect(a.Rect.Length + c.Rect.Length, a.Rect.Width)}, true
		}
		if c.X+c.Rect.Length == a.X {
			return FreeRect{X: c.X, Y: c.Y, Rect: model.NewRect(a.Rect.Length + c.Rect.Length, a.Rect.Width)}, true
		}
	}
	if b.CutDir != model.CutAlongLength && a.X == c.X && a.Rect.Length == c.Rect.Length {
		if a.Y+a.Rect.Width == c.Y {
			return FreeRect{X: a.X, Y: a.Y, Rect: model.NewRect(a.Rect.Length, a.Rect.Width + c.Rect.Width)}, true
		}
		if c.Y+c.Rect.Width == a.Y {
			return FreeRect{X: c.X, Y: c.Y, Rect: model.NewRect(a.Rect.Length, a.Rect.Width + c.Rect.Width)}, true
		}
	}
	return FreeRect{}, false
}
