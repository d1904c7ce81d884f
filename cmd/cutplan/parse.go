package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/piwi3910/cutplan/internal/model"
)

// parseDimensions parses "LxW" into a Rect with non-zero sides.
func parseDimensions(s string) (model.Rect, error) {
	parts := strings.Split(s, "x")
	if len(parts) != 2 {
		return model.Rect{}, fmt.Errorf("invalid dimensions %q, expected LxW", s)
	}
	length, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return model.Rect{}, fmt.Errorf("invalid length in %q", s)
	}
	width, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return model.Rect{}, fmt.Errorf("invalid width in %q", s)
	}
	if length == 0 || width == 0 {
		return model.Rect{}, fmt.Errorf("dimensions must be non-zero in %q", s)
	}
	return model.NewRect(uint32(length), uint32(width)), nil
}

// parseCut parses "LxW:qty" into a Demand.
func parseCut(s string, allowRotate bool) (model.Demand, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return model.Demand{}, fmt.Errorf("invalid cut %q, expected LxW:qty", s)
	}
	rect, err := parseDimensions(parts[0])
	if err != nil {
		return model.Demand{}, err
	}
	qty, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return model.Demand{}, fmt.Errorf("invalid quantity in %q", s)
	}
	if qty == 0 {
		return model.Demand{}, fmt.Errorf("quantity must be non-zero in %q", s)
	}
	d := model.NewDemand(rect, uint32(qty))
	d.AllowRotate = allowRotate
	return d, nil
}
