// Package render draws ASCII layout diagrams of packed sheets.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/piwi3910/cutplan/internal/model"
)

// Maximum character grid for one sheet; the layout is scaled to fit.
const (
	maxGridWidth  = 80.0
	maxGridHeight = 40.0
)

// RenderSheet returns an ASCII drawing of one sheet: the stock border,
// each placement's border, and a centred LxW label where it fits.
func RenderSheet(stock model.Rect, placements []model.Placement) string {
	scale := math.Min(
		maxGridWidth/float64(stock.Length),
		maxGridHeight/float64(stock.Width),
	)
	gridW := int(math.Round(float64(stock.Length) * scale))
	gridH := int(math.Round(float64(stock.Width) * scale))

	if gridW == 0 || gridH == 0 {
		return ""
	}

	grid := make([][]rune, gridH+1)
	for i := range grid {
		grid[i] = make([]rune, gridW+1)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	drawRect(grid, 0, 0, gridW, gridH)

	for _, p := range placements {
		sx := int(math.Round(float64(p.X) * scale))
		sy := int(math.Round(float64(p.Y) * scale))
		sw := int(math.Round(float64(p.Rect.Length) * scale))
		sh := int(math.Round(float64(p.Rect.Width) * scale))

		if sw == 0 || sh == 0 {
			continue
		}

		drawRect(grid, sx, sy, sw, sh)

		if sw > 2 && sh > 0 {
			label := []rune(fmt.Sprintf("%dx%d", p.Rect.Length, p.Rect.Width))
			cx := sx + sw/2
			cy := sy + sh/2
			startX := cx - len(label)/2
			if startX < 0 {
				startX = 0
			}
			for i, ch := range label {
				x := startX + i
				if x > sx && x < sx+sw && cy > sy && cy < sy+sh {
					grid[cy][x] = ch
				}
			}
		}
	}

	var sb strings.Builder
	for _, row := range grid {
		sb.WriteString(strings.TrimRight(string(row), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// drawRect draws a box outline, crossing existing edges with '+'.
func drawRect(grid [][]rune, x, y, w, h int) {
	rows := len(grid)
	if rows == 0 {
		return
	}
	cols := len(grid[0])

	for i := x; i <= x+w; i++ {
		if i >= cols {
			break
		}
		if y < rows {
			grid[y][i] = horizontalGlyph(grid[y][i])
		}
		if y+h < rows {
			grid[y+h][i] = horizontalGlyph(grid[y+h][i])
		}
	}

	for j := y; j <= y+h; j++ {
		if j >= rows {
			break
		}
		if x < cols {
			grid[j][x] = verticalGlyph(grid[j][x])
		}
		if x+w < cols {
			grid[j][x+w] = verticalGlyph(grid[j][x+w])
		}
	}

	for _, cx := range []int{x, x + w} {
		for _, cy := range []int{y, y + h} {
			if cy < rows && cx < cols {
				grid[cy][cx] = '+'
			}
		}
	}
}

func horizontalGlyph(existing rune) rune {
	if existing == '|' || existing == '+' {
		return '+'
	}
	return '-'
}

func verticalGlyph(existing rune) rune {
	if existing == '-' || existing == '+' {
		return '+'
	}
	return '|'
}
