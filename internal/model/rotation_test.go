package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveRotationGrain(t *testing.T) {
	piece := NewRect(70, 70) // square: cut direction bias never applies

	tests := []struct {
		name        string
		stockGrain  StockGrain
		pieceGrain  PieceGrain
		allowRotate bool
		want        RotationConstraint
	}{
		{"no grain, rotation allowed", GrainNone, PieceGrainLength, true, Free},
		{"no grain, rotation disabled", GrainNone, PieceGrainLength, false, NoRotate},
		{"auto piece grain, rotation allowed", GrainAlongLength, PieceGrainAuto, true, Free},
		{"auto piece grain, rotation disabled", GrainAlongWidth, PieceGrainAuto, false, NoRotate},
		{"grains agree along length", GrainAlongLength, PieceGrainLength, true, NoRotate},
		{"grains agree along width", GrainAlongWidth, PieceGrainWidth, true, NoRotate},
		{"grains disagree", GrainAlongLength, PieceGrainWidth, true, ForceRotate},
		{"grains disagree reversed", GrainAlongWidth, PieceGrainLength, true, ForceRotate},
		{"grain overrides rotation flag", GrainAlongLength, PieceGrainWidth, false, ForceRotate},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveRotation(tc.stockGrain, tc.pieceGrain, tc.allowRotate, CutAuto, piece)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveRotationCutDirectionBias(t *testing.T) {
	lengthMajor := NewRect(80, 40)
	widthMajor := NewRect(40, 80)
	square := NewRect(60, 60)

	// Auto leaves free pieces free
	assert.Equal(t, Free, ResolveRotation(GrainNone, PieceGrainAuto, true, CutAuto, lengthMajor))

	// AlongLength orients pieces length-major
	assert.Equal(t, NoRotate, ResolveRotation(GrainNone, PieceGrainAuto, true, CutAlongLength, lengthMajor))
	assert.Equal(t, ForceRotate, ResolveRotation(GrainNone, PieceGrainAuto, true, CutAlongLength, widthMajor))

	// AlongWidth is symmetric
	assert.Equal(t, NoRotate, ResolveRotation(GrainNone, PieceGrainAuto, true, CutAlongWidth, widthMajor))
	assert.Equal(t, ForceRotate, ResolveRotation(GrainNone, PieceGrainAuto, true, CutAlongWidth, lengthMajor))

	// Squares pass through unmodified
	assert.Equal(t, Free, ResolveRotation(GrainNone, PieceGrainAuto, true, CutAlongLength, square))

	// The bias never applies to grain-constrained pieces
	assert.Equal(t, NoRotate, ResolveRotation(GrainAlongLength, PieceGrainLength, true, CutAlongLength, widthMajor))
	assert.Equal(t, ForceRotate, ResolveRotation(GrainAlongLength, PieceGrainWidth, true, CutAlongWidth, widthMajor))

	// Rotation disabled wins before the bias is consulted
	assert.Equal(t, NoRotate, ResolveRotation(GrainNone, PieceGrainAuto, false, CutAlongLength, widthMajor))
}

func TestFitsStock(t *testing.T) {
	stock := NewRect(100, 50)
	piece := NewRect(50, 100)

	assert.False(t, FitsStock(piece, stock, NoRotate))
	assert.True(t, FitsStock(piece, stock, ForceRotate))
	assert.True(t, FitsStock(piece, stock, Free))

	assert.True(t, FitsStock(NewRect(30, 30), stock, NoRotate))
	assert.False(t, FitsStock(NewRect(120, 30), stock, NoRotate))
	assert.False(t, FitsStock(NewRect(120, 120), stock, Free))
}
