// Package viewport maps grid cells to screen pixels and back for the window host.
package viewport

import (
	"math"

	"ant-colony/game/types"
)

const borderPadding = 10

// Viewport is the placement of the grid inside the window. The stats panel
// takes the right-hand seventh of the screen.
type Viewport struct {
	ScreenWidth  int32
	ScreenHeight int32
	StatsPanel   int32
	GameWidth    int32
	CellSize     int32
	OffsetX      int32
	OffsetY      int32
	GridWidth    int32
	GridHeight   int32
}

// Fit sizes the cells so the grid fills the game area. A positive cellSize
// forces that size instead.
func Fit(screenW, screenH int32, gridW, gridH int, cellSize int32) Viewport {
	v := Viewport{
		ScreenWidth:  screenW,
		ScreenHeight: screenH,
		StatsPanel:   screenW / 7,
	}
	v.GameWidth = screenW - v.StatsPanel

	if cellSize <= 0 {
		availW := v.GameWidth - 2*borderPadding
		availH := screenH - 2*borderPadding
		cellSize = max(1, min(availW/int32(max(gridW, 1)), availH/int32(max(gridH, 1))))
	}
	v.CellSize = cellSize
	v.GridWidth = cellSize * int32(gridW)
	v.GridHeight = cellSize * int32(gridH)
	v.OffsetX = borderPadding
	v.OffsetY = max(borderPadding, (screenH-v.GridHeight)/2)
	return v
}

// CellOrigin is the top-left pixel of a cell
func (v Viewport) CellOrigin(x, y int) (int32, int32) {
	return v.OffsetX + int32(x)*v.CellSize, v.OffsetY + int32(y)*v.CellSize
}

// ToScreen converts a continuous grid position to pixels
func (v Viewport) ToScreen(p types.Vec2) (float32, float32) {
	return float32(v.OffsetX) + float32(p.X)*float32(v.CellSize),
		float32(v.OffsetY) + float32(p.Y)*float32(v.CellSize)
}

// ScreenToCell converts a pixel to the cell under it. ok is false outside the grid.
func (v Viewport) ScreenToCell(x, y int32) (types.Point, bool) {
	if v.CellSize <= 0 {
		return types.Point{}, false
	}
	dx, dy := x-v.OffsetX, y-v.OffsetY
	if dx < 0 || dy < 0 || dx >= v.GridWidth || dy >= v.GridHeight {
		return types.Point{}, false
	}
	return types.Point{X: int(dx / v.CellSize), Y: int(dy / v.CellSize)}, true
}

// ScentAlpha maps an intensity to an overlay alpha on a log scale, so faint
// trails stay visible next to saturated sources
func ScentAlpha(intensity, ceiling float64) uint8 {
	if intensity <= 0 || ceiling <= 0 {
		return 0
	}
	a := math.Log1p(intensity) / math.Log1p(ceiling)
	if a > 1 {
		a = 1
	}
	return uint8(a * 200)
}

// History keeps the last n samples of a counter for the stats graph
type History struct {
	values []int
	limit  int
}

func NewHistory(limit int) *History {
	return &History{limit: limit}
}

func (h *History) Push(v int) {
	h.values = append(h.values, v)
	if len(h.values) > h.limit {
		h.values = h.values[len(h.values)-h.limit:]
	}
}

func (h *History) Values() []int { return h.values }

func (h *History) Max() int {
	m := 1
	for _, v := range h.values {
		m = max(m, v)
	}
	return m
}

func (h *History) Reset() { h.values = h.values[:0] }
