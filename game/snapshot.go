package game

import (
	"ant-colony/game/types"
)

// Snapshot is a read-only view of the world between two ticks. It is never
// modified after it has been published.
type Snapshot struct {
	Tick   uint64     `json:"tick"`
	Paused bool       `json:"paused"`
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Cells  []CellView `json:"cells"` // row-major, Width*Height entries
	Ants   []AntView  `json:"ants"`
	Stats  Stats      `json:"stats"`
}

type CellView struct {
	Kind      types.CellKind `json:"kind"`
	Food      int            `json:"food,omitempty"`
	FoodScent float64        `json:"food_scent"`
	HomeScent float64        `json:"home_scent"`
}

type AntView struct {
	Position types.Vec2     `json:"position"`
	Cell     types.Point    `json:"cell"`
	Heading  float64        `json:"heading"`
	State    types.AntState `json:"state"`
	Charge   float64        `json:"charge"`
}

// Cell returns the view of (x, y). Out of bounds reads as terrain.
func (s *Snapshot) Cell(x, y int) CellView {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return CellView{Kind: types.Terrain}
	}
	return s.Cells[y*s.Width+x]
}

// buildSnapshot copies the world. Callers hold mu.
func (s *Simulation) buildSnapshot() *Snapshot {
	cells := s.grid.Cells()
	foodScent := s.field.Layer(types.FoodScent)
	homeScent := s.field.Layer(types.HomeScent)

	views := make([]CellView, len(cells))
	for i, c := range cells {
		views[i] = CellView{
			Kind:      c.Kind,
			Food:      c.Amount,
			FoodScent: foodScent[i],
			HomeScent: homeScent[i],
		}
	}

	ants := s.population.GetAnts()
	antViews := make([]AntView, len(ants))
	for i, a := range ants {
		antViews[i] = AntView{
			Position: a.Position,
			Cell:     a.Cell(),
			Heading:  a.Heading,
			State:    a.State,
			Charge:   a.Charge,
		}
	}

	return &Snapshot{
		Tick:   s.state.Tick(),
		Paused: s.state.IsPaused(),
		Width:  s.grid.Width,
		Height: s.grid.Height,
		Cells:  views,
		Ants:   antViews,
		Stats:  s.collectStats(),
	}
}
