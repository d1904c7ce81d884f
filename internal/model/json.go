package model

import (
	"encoding/json"
	"fmt"
	"math"
)

// ParseJSONNumber converts a JSON number into a uint32 dimension.
// Integers and non-negative whole floats are accepted; anything else
// (negative values, fractions, out-of-range numbers) is rejected.
func ParseJSONNumber(n json.Number) (uint32, error) {
	if i, err := n.Int64(); err == nil {
		if i < 0 || i > math.MaxUint32 {
			return 0, fmt.Errorf("number %d out of range", i)
		}
		return uint32(i), nil
	}
	f, err := n.Float64()
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", n.String())
	}
	if f < 0 || f > math.MaxUint32 || f != math.Trunc(f) {
		return 0, fmt.Errorf("expected a non-negative whole number, got %v", f)
	}
	return uint32(f), nil
}

// UnmarshalJSON decodes a Rect, accepting whole floats for either
// dimension so clients serialising numbers as 100.0 still parse.
func (r *Rect) UnmarshalJSON(data []byte) error {
	var raw struct {
		Length json.Number `json:"length"`
		Width  json.Number `json:"width"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	length, err := ParseJSONNumber(raw.Length)
	if err != nil {
		return fmt.Errorf("length: %w", err)
	}
	width, err := ParseJSONNumber(raw.Width)
	if err != nil {
		return fmt.Errorf("width: %w", err)
	}
	r.Length = length
	r.Width = width
	return nil
}
