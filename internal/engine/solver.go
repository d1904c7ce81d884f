package engine

import (
	"fmt"
	"sort"

	"github.com/piwi3910/cutplan/internal/model"
)

// maxBranchBoundPieces gates the exact phase: beyond this many expanded
// pieces the search tree is too large and the greedy result stands.
const maxBranchBoundPieces = 20

// Solver packs a demand list onto identical stock sheets. A Solve call
// is a pure function of its inputs; callers may run solvers from
// independent goroutines.
type Solver struct {
	Stock      model.Rect
	Kerf       uint32
	CutDir     model.CutDirection
	StockGrain model.StockGrain
	Demands    []model.Demand
}

// New creates a solver. Demands are expected to be validated by the
// caller: non-zero dimensions and quantities, and each piece placeable
// on an empty sheet under its effective rotation constraint.
func New(stock model.Rect, kerf uint32, cutDir model.CutDirection, stockGrain model.StockGrain, demands []model.Demand) *Solver {
	return &Solver{
		Stock:      stock,
		Kerf:       kerf,
		CutDir:     cutDir,
		StockGrain: stockGrain,
		Demands:    demands,
	}
}

// piece is one expanded unit of demand with its resolved constraint.
type piece struct {
	rect model.Rect
	rot  model.RotationConstraint
}

// Solve runs the greedy phase across all strategy/direction
// combinations, then lets branch-and-bound try to beat it on small
// inputs, and returns the plan with fewer sheets.
func (s *Solver) Solve() model.Solution {
	pieces := s.expandDemands()
	if len(pieces) == 0 {
		return model.Solution{Stock: s.Stock}
	}

	greedy := s.greedyBest(pieces)

	if improved := s.branchAndBound(pieces, len(greedy)); improved != nil && len(improved) < len(greedy) {
		return s.binsToSolution(improved)
	}
	return s.binsToSolution(greedy)
}

// expandDemands resolves each demand's rotation constraint once, emits
// qty copies, and stable-sorts by descending area so equal-area pieces
// keep demand order.
func (s *Solver) expandDemands() []piece {
	var pieces []piece
	for _, d := range s.Demands {
		rot := model.ResolveRotation(s.StockGrain, d.Grain, d.AllowRotate, s.CutDir, d.Rect)
		for i := uint32(0); i < d.Qty; i++ {
			pieces = append(pieces, piece{rect: d.Rect, rot: rot})
		}
	}
	sort.SliceStable(pieces, func(i, j int) bool {
		return pieces[i].rect.Area() > pieces[j].rect.Area()
	})
	return pieces
}

// splitDirections returns the concrete split directions the solver
// enumerates: both when the cut direction is Auto, otherwise just the
// configured one.
func (s *Solver) splitDirections() []model.CutDirection {
	if s.CutDir == model.CutAuto {
		return []model.CutDirection{model.CutAlongLength, model.CutAlongWidth}
	}
	return []model.CutDirection{s.CutDir}
}

// greedyBest runs best-fit-decreasing for every scoring strategy and
// split direction, keeping the combination with the fewest bins.
// First-found wins on ties.
func (s *Solver) greedyBest(pieces []piece) []*GuillotineBin {
	var best []*GuillotineBin
	for _, strategy := range Strategies {
		for _, dir := range s.splitDirections() {
			bins := s.greedySolve(pieces, strategy, dir)
			if best == nil || len(bins) < len(best) {
				best = bins
			}
		}
	}
	return best
}

// greedySolve is a single best-fit-decreasing pass: each piece goes to
// the open bin with the lexicographically smallest score, or a new bin
// when none admits it.
func (s *Solver) greedySolve(pieces []piece, strategy ScoreStrategy, dir model.CutDirection) []*GuillotineBin {
	var bins []*GuillotineBin

	for _, p := range pieces {
		bestBin := -1
		var bestScored ScoredPlacement

		for bi, bin := range bins {
			scored, ok := bin.FindBest(p.rect, p.rot, strategy)
			if !ok {
				continue
			}
			if bestBin < 0 || scored.Score.Less(bestScored.Score) {
				bestBin = bi
				bestScored = scored
			}
		}

		if bestBin >= 0 {
			bins[bestBin].Place(bestScored, p.rect)
			continue
		}

		bin := NewBin(s.Stock, s.Kerf, dir)
		scored, ok := bin.FindBest(p.rect, p.rot, strategy)
		if !ok {
			// Demand validation rejects oversize pieces before they
			// reach the solver, so an empty bin must always admit one.
			panic(fmt.Sprintf("piece %s does not fit empty stock %s", p.rect, s.Stock))
		}
		bin.Place(scored, p.rect)
		bins = append(bins, bin)
	}

	return bins
}

// branchAndBound searches exhaustively for a plan with fewer sheets
// than the greedy upper bound. Returns nil when the input is too large
// or no improvement was found.
func (s *Solver) branchAndBound(pieces []piece, upperBound int) []*GuillotineBin {
	if len(pieces) > maxBranchBoundPieces {
		return nil
	}

	var bestBins []*GuillotineBin
	bestCount := upperBound
	s.bbRecurse(pieces, 0, nil, &bestBins, &bestCount)
	return bestBins
}

func cloneBins(bins []*GuillotineBin) []*GuillotineBin {
	clones := make([]*GuillotineBin, len(bins))
	for i, b := range bins {
		clones[i] = b.Clone()
	}
	return clones
}

func (s *Solver) bbRecurse(pieces []piece, idx int, bins []*GuillotineBin, bestBins *[]*GuillotineBin, bestCount *int) {
	if idx == len(pieces) {
		if len(bins) < *bestCount {
			*bestCount = len(bins)
			*bestBins = bins
		}
		return
	}

	if len(bins) >= *bestCount {
		return
	}

	stockArea := s.Stock.Area()
	var remainingArea uint64
	for _, p := range pieces[idx:] {
		remainingArea += p.rect.Area()
	}
	var openFreeArea uint64
	for _, b := range bins {
		openFreeArea += b.FreeArea()
	}

	needed := len(bins)
	if remainingArea > openFreeArea {
		needed += int(ceilDiv(remainingArea-openFreeArea, stockArea))
	}
	areaFloor := int(ceilDiv(remainingArea, stockArea))
	lowerBound := needed
	if areaFloor > len(bins) && areaFloor > lowerBound {
		lowerBound = areaFloor
	}
	if lowerBound >= *bestCount {
		return
	}

	p := pieces[idx]

	// Existing bins first, in insertion order: tight packings are found
	// early and sharpen the bound.
	for bi := range bins {
		for _, orient := range orientations(p) {
			scored, ok := bins[bi].FindBest(p.rect, orient, BestAreaFit)
			if !ok {
				continue
			}
			next := cloneBins(bins)
			next[bi].Place(scored, p.rect)
			s.bbRecurse(pieces, idx+1, next, bestBins, bestCount)
		}
	}

	if len(bins)+1 < *bestCount {
		for _, dir := range s.splitDirections() {
			bin := NewBin(s.Stock, s.Kerf, dir)
			scored, ok := bin.FindBest(p.rect, p.rot, BestAreaFit)
			if !ok {
				continue
			}
			bin.Place(scored, p.rect)
			next := cloneBins(bins)
			next = append(next, bin)
			s.bbRecurse(pieces, idx+1, next, bestBins, bestCount)
		}
	}
}

// orientations lists the rotation constraints to branch on for one
// piece: both concrete orientations when it rotates freely and is not
// square, otherwise the single orientation its constraint allows.
func orientations(p piece) []model.RotationConstraint {
	switch {
	case p.rot == model.Free && !p.rect.IsSquare():
		return []model.RotationConstraint{model.NoRotate, model.ForceRotate}
	case p.rot == model.ForceRotate:
		return []model.RotationConstraint{model.ForceRotate}
	default:
		return []model.RotationConstraint{model.NoRotate}
	}
}

func ceilDiv(a, b uint64) uint64 {
	return (a + b - 1) / b
}

// binsToSolution converts packed bins into the final plan, computing
// per-sheet waste and harvesting reusable offcuts from each bin's
// remaining free rects.
func (s *Solver) binsToSolution(bins []*GuillotineBin) model.Solution {
	stockArea := s.Stock.Area()
	sheets := make([]model.SheetResult, 0, len(bins))
	for _, bin := range bins {
		candidates := make([]model.Offcut, 0, len(bin.FreeRects))
		for _, f := range bin.FreeRects {
			candidates = append(candidates, model.Offcut{X: f.X, Y: f.Y, Rect: f.Rect})
		}
		sheets = append(sheets, model.SheetResult{
			Placements: bin.Placements,
			WasteArea:  stockArea - bin.UsedArea(),
			Offcuts:    model.DetectOffcuts(candidates),
		})
	}
	return model.Solution{Sheets: sheets, Stock: s.Stock}
}
