package model

import (
	"sort"

	"github.com/google/uuid"
)

// Offcut is a usable rectangular remnant left on a sheet after cutting.
type Offcut struct {
	ID   string `json:"id"`
	X    uint32 `json:"x"`
	Y    uint32 `json:"y"`
	Rect Rect   `json:"rect"`
}

// Area returns the offcut area.
func (o Offcut) Area() uint64 {
	return o.Rect.Area()
}

// MinOffcutDimension is the minimum side for a remnant to be worth
// keeping. Shorter strips are treated as waste.
const MinOffcutDimension = 50

// MinOffcutArea is the minimum area for a usable remnant.
const MinOffcutArea = 10000

// DetectOffcuts filters a sheet's leftover regions down to the ones
// large enough to reuse, largest first. Each candidate is an exact
// free region of the finished sheet, so offcuts never overlap
// placements or each other.
func DetectOffcuts(candidates []Offcut) []Offcut {
	var offcuts []Offcut
	for _, c := range candidates {
		if c.Rect.Length < MinOffcutDimension || c.Rect.Width < MinOffcutDimension {
			continue
		}
		if c.Area() < MinOffcutArea {
			continue
		}
		c.ID = uuid.New().String()[:8]
		offcuts = append(offcuts, c)
	}
	sort.SliceStable(offcuts, func(i, j int) bool {
		return offcuts[i].Area() > offcuts[j].Area()
	})
	return offcuts
}

// TotalOffcutArea returns the combined area of the given offcuts.
func TotalOffcutArea(offcuts []Offcut) uint64 {
	var total uint64
	for _, o := range offcuts {
		total += o.Area()
	}
	return total
}
