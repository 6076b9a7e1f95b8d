// Package pheromone holds the two scent layers ants read and write.
//
// Intensities are never negative. Deposits stack additively up to a ceiling,
// decay is multiplicative and floors tiny values to zero, and anchors pin
// permanent sources (nest and food cells) above the ceiling.
package pheromone

import (
	"ant-colony/game/types"
)

// Obstacles tells the sampler where scent cannot be smelled through
type Obstacles interface {
	IsBlocked(p types.Point) bool
}

// SampleParams describe the cone an ant smells in
type SampleParams struct {
	Radius     float64 // how far a ray reaches, in cells
	FOV        float64 // half-angle of the cone around the heading
	Directions int     // number of rays in the cone
	Step       float64 // distance between probes along a ray
	Threshold  float64 // intensity a probe must exceed to count
}

type Field struct {
	width, height int
	food          []float64
	home          []float64
	ceiling       float64
	floor         float64
}

// NewField creates an empty field. Deposits stop at ceiling; decay zeroes values below floor.
func NewField(width, height int, ceiling, floor float64) *Field {
	return &Field{
		width:   width,
		height:  height,
		food:    make([]float64, width*height),
		home:    make([]float64, width*height),
		ceiling: ceiling,
		floor:   floor,
	}
}

func (f *Field) layer(kind types.ScentKind) []float64 {
	if kind == types.HomeScent {
		return f.home
	}
	return f.food
}

func (f *Field) index(p types.Point) (int, bool) {
	if p.X < 0 || p.X >= f.width || p.Y < 0 || p.Y >= f.height {
		return 0, false
	}
	return p.Y*f.width + p.X, true
}

// Intensity reads one layer at p. Out of bounds reads zero.
func (f *Field) Intensity(p types.Point, kind types.ScentKind) float64 {
	i, ok := f.index(p)
	if !ok {
		return 0
	}
	return f.layer(kind)[i]
}

// Deposit adds amount to the layer at p. Non-positive amounts and
// out of bounds cells are ignored. Cells already above the ceiling
// (anchored sources) are left alone.
func (f *Field) Deposit(p types.Point, kind types.ScentKind, amount float64) {
	if amount <= 0 {
		return
	}
	i, ok := f.index(p)
	if !ok {
		return
	}
	layer := f.layer(kind)
	if layer[i] >= f.ceiling {
		return
	}
	v := layer[i] + amount
	if v > f.ceiling {
		v = f.ceiling
	}
	layer[i] = v
}

// Anchor raises the layer at p to at least value, ignoring the ceiling
func (f *Field) Anchor(p types.Point, kind types.ScentKind, value float64) {
	i, ok := f.index(p)
	if !ok {
		return
	}
	layer := f.layer(kind)
	if layer[i] < value {
		layer[i] = value
	}
}

// Clear zeroes both layers at p
func (f *Field) Clear(p types.Point) {
	i, ok := f.index(p)
	if !ok {
		return
	}
	f.food[i] = 0
	f.home[i] = 0
}

// Decay multiplies every cell in both layers by (1 - rate). Rates outside (0,1) are ignored.
func (f *Field) Decay(rate float64) {
	if rate <= 0 || rate >= 1 {
		return
	}
	keep := 1 - rate
	decayLayer(f.food, keep, f.floor)
	decayLayer(f.home, keep, f.floor)
}

func decayLayer(layer []float64, keep, floor float64) {
	for i, v := range layer {
		if v == 0 {
			continue
		}
		v *= keep
		if v < floor {
			v = 0
		}
		layer[i] = v
	}
}

// Reset zeroes the whole field
func (f *Field) Reset() {
	clear(f.food)
	clear(f.home)
}

// Layer returns a copy of one layer in row-major order
func (f *Field) Layer(kind types.ScentKind) []float64 {
	src := f.layer(kind)
	out := make([]float64, len(src))
	copy(out, src)
	return out
}

// Sample probes rays fanned across the cone around heading and returns the
// heading toward the strongest cell of the requested layer. The ant's own
// cell is skipped, rays stop at obstacles (including diagonal seams between
// two of them) and at the grid edge, and nothing
// is returned unless the best intensity exceeds the threshold.
func (f *Field) Sample(pos types.Vec2, heading float64, params SampleParams, kind types.ScentKind, obstacles Obstacles) (float64, bool) {
	step := params.Step
	if step <= 0 {
		step = 0.5
	}
	origin := pos.Cell()
	layer := f.layer(kind)

	best := params.Threshold
	var bestCell types.Point
	found := false

	for _, dir := range types.Fan(heading, params.FOV, params.Directions) {
		prev := origin
		for dist := step; dist <= params.Radius+1e-9; dist += step {
			cell := pos.Add(dir, dist).Cell()
			i, ok := f.index(cell)
			if !ok {
				break
			}
			if obstacles != nil && (obstacles.IsBlocked(cell) || types.CutsCorner(prev, cell, obstacles.IsBlocked)) {
				break
			}
			prev = cell
			if cell == origin {
				continue
			}
			if layer[i] > best {
				best = layer[i]
				bestCell = cell
				found = true
			}
		}
	}

	if !found {
		return 0, false
	}
	return types.AngleTo(pos, bestCell.Center()), true
}
