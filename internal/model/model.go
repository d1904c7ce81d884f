// Package model defines the data types shared between the cutting
// engine and its collaborators: rectangles, demands, placements and
// the assembled solution. All dimensions are unsigned integers in
// whatever unit the caller works in (typically mm).
package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Rect is an axis-aligned rectangle. Length is the extent along the
// x-axis, Width the extent along the y-axis.
type Rect struct {
	Length uint32 `json:"length"`
	Width  uint32 `json:"width"`
}

func NewRect(length, width uint32) Rect {
	return Rect{Length: length, Width: width}
}

// Area returns length*width without overflow.
func (r Rect) Area() uint64 {
	return uint64(r.Length) * uint64(r.Width)
}

// Rotated returns the rectangle with its dimensions swapped.
func (r Rect) Rotated() Rect {
	return Rect{Length: r.Width, Width: r.Length}
}

// FitsIn reports whether r fits inside outer without rotation.
func (r Rect) FitsIn(outer Rect) bool {
	return r.Length <= outer.Length && r.Width <= outer.Width
}

// IsSquare reports whether rotation would be a no-op.
func (r Rect) IsSquare() bool {
	return r.Length == r.Width
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d", r.Length, r.Width)
}

// Demand is a request for a number of identical pieces.
type Demand struct {
	ID          string     `json:"id,omitempty"`
	Rect        Rect       `json:"rect"`
	Qty         uint32     `json:"qty"`
	AllowRotate bool       `json:"allow_rotate"`
	Grain       PieceGrain `json:"grain"`
}

// NewDemand creates a rotatable, grain-free demand with a short unique ID.
func NewDemand(rect Rect, qty uint32) Demand {
	return Demand{
		ID:          uuid.New().String()[:8],
		Rect:        rect,
		Qty:         qty,
		AllowRotate: true,
		Grain:       PieceGrainAuto,
	}
}

// Placement is a single piece placed on a sheet. Rect carries the
// dimensions as placed, with rotation already applied.
type Placement struct {
	Rect    Rect   `json:"rect"`
	X       uint32 `json:"x"`
	Y       uint32 `json:"y"`
	Rotated bool   `json:"rotated"`
}

// SheetResult is one stock sheet of the solution.
type SheetResult struct {
	Placements []Placement `json:"placements"`
	WasteArea  uint64      `json:"waste_area"`
	Offcuts    []Offcut    `json:"offcuts,omitempty"`
}

// UsedArea returns the total area covered by placed pieces.
func (sr SheetResult) UsedArea() uint64 {
	var total uint64
	for _, p := range sr.Placements {
		total += p.Rect.Area()
	}
	return total
}

// Efficiency returns the used percentage of the given stock sheet.
func (sr SheetResult) Efficiency(stock Rect) float64 {
	area := stock.Area()
	if area == 0 {
		return 0
	}
	return float64(sr.UsedArea()) / float64(area) * 100.0
}

// Solution is the full cutting plan.
type Solution struct {
	Sheets []SheetResult `json:"sheets"`
	Stock  Rect          `json:"stock"`
}

// SheetCount returns the number of stock sheets used.
func (s Solution) SheetCount() int {
	return len(s.Sheets)
}

// TotalWastePercent returns the share of stock area not covered by
// placements, in percent. Zero when no sheets are used.
func (s Solution) TotalWastePercent() float64 {
	totalStock := s.Stock.Area() * uint64(len(s.Sheets))
	if totalStock == 0 {
		return 0
	}
	var used uint64
	for _, sheet := range s.Sheets {
		used += sheet.UsedArea()
	}
	return float64(totalStock-used) / float64(totalStock) * 100.0
}
