package model

import "fmt"

// StockGrain is the grain direction of the stock sheet. When the stock
// has no grain, piece grain constraints are ignored.
type StockGrain int

const (
	GrainNone StockGrain = iota
	GrainAlongLength
	GrainAlongWidth
)

func (g StockGrain) String() string {
	switch g {
	case GrainAlongLength:
		return "along-length"
	case GrainAlongWidth:
		return "along-width"
	default:
		return "none"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (g StockGrain) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty value
// selects the default (no grain).
func (g *StockGrain) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "none":
		*g = GrainNone
	case "along-length":
		*g = GrainAlongLength
	case "along-width":
		*g = GrainAlongWidth
	default:
		return fmt.Errorf("invalid stock grain %q, expected: none, along-length, or along-width", text)
	}
	return nil
}

// PieceGrain classifies which piece axis must follow the stock grain.
// Auto means the piece is unconstrained.
type PieceGrain int

const (
	PieceGrainAuto PieceGrain = iota
	PieceGrainLength
	PieceGrainWidth
)

func (g PieceGrain) String() string {
	switch g {
	case PieceGrainLength:
		return "length"
	case PieceGrainWidth:
		return "width"
	default:
		return "auto"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (g PieceGrain) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty value
// selects the default (auto).
func (g *PieceGrain) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "auto":
		*g = PieceGrainAuto
	case "length":
		*g = PieceGrainLength
	case "width":
		*g = PieceGrainWidth
	default:
		return fmt.Errorf("invalid piece grain %q, expected: auto, length, or width", text)
	}
	return nil
}

// CutDirection is the preferred saw direction. It biases guillotine
// splits, restricts free-rect merging, and orients free-rotating pieces.
type CutDirection int

const (
	CutAuto CutDirection = iota
	CutAlongLength
	CutAlongWidth
)

func (d CutDirection) String() string {
	switch d {
	case CutAlongLength:
		return "along-length"
	case CutAlongWidth:
		return "along-width"
	default:
		return "auto"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d CutDirection) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty value
// selects the default (auto).
func (d *CutDirection) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "auto":
		*d = CutAuto
	case "along-length":
		*d = CutAlongLength
	case "along-width":
		*d = CutAlongWidth
	default:
		return fmt.Errorf("invalid cut direction %q, expected: auto, along-length, or along-width", text)
	}
	return nil
}
