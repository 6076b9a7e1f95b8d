package ui

import (
	"fmt"
	"math"

	"ant-colony/game"
	"ant-colony/game/types"
	"ant-colony/ui/viewport"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const maxSamples = 600 // ticks shown in the stats graph

var (
	terrainColor  = rl.Color{R: 90, G: 90, B: 90, A: 255}
	homeColor     = rl.Color{R: 120, G: 80, B: 40, A: 255}
	foodColor     = rl.Color{R: 40, G: 200, B: 60, A: 255}
	searchColor   = rl.Color{R: 230, G: 230, B: 230, A: 255}
	carryingColor = rl.Color{R: 255, G: 200, B: 0, A: 255}
	depletedColor = rl.Color{R: 120, G: 120, B: 120, A: 255}
)

type Renderer struct {
	view      viewport.Viewport
	cellSize  int32
	ceiling   float64
	delivered *viewport.History
	carrying  *viewport.History
	lastTick  uint64
}

// NewRenderer creates a renderer. cellSize 0 fits the grid to the window;
// ceiling is the deposit ceiling used to scale the scent overlay.
func NewRenderer(cellSize int32, ceiling float64) *Renderer {
	return &Renderer{
		cellSize:  cellSize,
		ceiling:   ceiling,
		delivered: viewport.NewHistory(maxSamples),
		carrying:  viewport.NewHistory(maxSamples),
	}
}

// Viewport is the layout used by the last Draw
func (r *Renderer) Viewport() viewport.Viewport { return r.view }

// UpdateDimensions recomputes the layout for the current window size
func (r *Renderer) UpdateDimensions(snap *game.Snapshot) {
	r.view = viewport.Fit(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()), snap.Width, snap.Height, r.cellSize)
}

func (r *Renderer) Draw(snap *game.Snapshot) {
	r.UpdateDimensions(snap)
	r.record(snap)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	v := r.view
	rl.DrawRectangle(v.OffsetX-1, v.OffsetY-1, v.GridWidth+2, v.GridHeight+2, rl.DarkGray)
	r.drawCells(snap)
	r.drawAnts(snap)

	fontSize := min(v.ScreenHeight/45, v.StatsPanel/12)
	lineHeight := min(v.ScreenHeight/35, v.StatsPanel/10)
	r.drawStatsPanel(snap, fontSize, lineHeight)

	if snap.Paused {
		text := "PAUSED"
		w := rl.MeasureText(text, fontSize*2)
		rl.DrawText(text, v.OffsetX+(v.GridWidth-w)/2, v.OffsetY+v.GridHeight/2, fontSize*2, rl.White)
	}
	rl.EndDrawing()
}

// record feeds the graph once per simulated tick; a reset clears it
func (r *Renderer) record(snap *game.Snapshot) {
	if snap.Tick < r.lastTick {
		r.delivered.Reset()
		r.carrying.Reset()
	}
	if snap.Tick != r.lastTick || len(r.delivered.Values()) == 0 {
		r.delivered.Push(snap.Stats.FoodDelivered)
		r.carrying.Push(snap.Stats.AntsCarrying)
	}
	r.lastTick = snap.Tick
}

func (r *Renderer) drawCells(snap *game.Snapshot) {
	size := r.view.CellSize
	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			c := snap.Cell(x, y)
			px, py := r.view.CellOrigin(x, y)

			switch c.Kind {
			case types.Terrain:
				rl.DrawRectangle(px, py, size, size, terrainColor)
				continue
			case types.Home:
				rl.DrawRectangle(px, py, size, size, homeColor)
				continue
			case types.Food:
				rl.DrawRectangle(px, py, size, size, foodColor)
				continue
			}

			if a := viewport.ScentAlpha(c.HomeScent, r.ceiling); a > 0 {
				rl.DrawRectangle(px, py, size, size, rl.Color{R: 40, G: 90, B: 255, A: a})
			}
			if a := viewport.ScentAlpha(c.FoodScent, r.ceiling); a > 0 {
				rl.DrawRectangle(px, py, size, size, rl.Color{R: 255, G: 50, B: 50, A: a})
			}
		}
	}
}

func (r *Renderer) drawAnts(snap *game.Snapshot) {
	radius := max(1, float32(r.view.CellSize)/2.5)
	for _, ant := range snap.Ants {
		x, y := r.view.ToScreen(ant.Position)

		color := searchColor
		switch {
		case ant.Charge <= 0:
			color = depletedColor
		case ant.State == types.CarryingFood:
			color = carryingColor
		}
		rl.DrawCircleV(rl.Vector2{X: x, Y: y}, radius, color)

		// heading tick
		hx := x + float32(math.Cos(ant.Heading))*radius*2
		hy := y + float32(math.Sin(ant.Heading))*radius*2
		rl.DrawLineV(rl.Vector2{X: x, Y: y}, rl.Vector2{X: hx, Y: hy}, color)
	}
}

func (r *Renderer) drawStatsPanel(snap *game.Snapshot, fontSize, lineHeight int32) {
	v := r.view
	statsX := v.GameWidth + 5
	statsY := int32(10)
	st := snap.Stats

	rl.DrawRectangle(statsX-5, 0, v.StatsPanel+5, v.ScreenHeight, rl.DarkGray)

	lines := []struct {
		text  string
		color rl.Color
	}{
		{"Colony", rl.White},
		{fmt.Sprintf("Tick: %d", st.Tick), rl.White},
		{fmt.Sprintf("Ants: %d", len(snap.Ants)), searchColor},
		{fmt.Sprintf("Carrying: %d", st.AntsCarrying), carryingColor},
		{fmt.Sprintf("Depleted: %d", st.AntsDepleted), depletedColor},
		{"", rl.White},
		{"Food", rl.White},
		{fmt.Sprintf("Remaining: %d", st.FoodRemaining), foodColor},
		{fmt.Sprintf("Sources: %d", st.FoodCells), foodColor},
		{fmt.Sprintf("Picked up: %d", st.FoodPickedUp), carryingColor},
		{fmt.Sprintf("Delivered: %d", st.FoodDelivered), homeColor},
		{"", rl.White},
		{"LMB food  RMB wall", rl.LightGray},
		{"Space pause  R reset", rl.LightGray},
		{"Esc quit", rl.LightGray},
	}
	for _, l := range lines {
		if l.text != "" {
			rl.DrawText(l.text, statsX, statsY, fontSize, l.color)
		}
		statsY += lineHeight
	}

	r.drawGraph(statsX, fontSize)
}

// drawGraph plots delivered food and carrying ants over the last ticks
func (r *Renderer) drawGraph(graphX, fontSize int32) {
	v := r.view
	width := v.StatsPanel - 20
	height := v.ScreenHeight / 5
	graphY := v.ScreenHeight - height - fontSize*2

	rl.DrawRectangleLines(graphX, graphY, width, height, rl.White)
	rl.DrawText("Deliveries", graphX, graphY-fontSize-5, fontSize, rl.White)

	for _, series := range []struct {
		h     *viewport.History
		color rl.Color
	}{
		{r.delivered, homeColor},
		{r.carrying, carryingColor},
	} {
		values := series.h.Values()
		top := series.h.Max()
		for j := 1; j < len(values); j++ {
			x1 := graphX + int32(float32(width)*float32(j-1)/float32(maxSamples))
			y1 := graphY + height - int32(float32(height)*float32(values[j-1])/float32(top))
			x2 := graphX + int32(float32(width)*float32(j)/float32(maxSamples))
			y2 := graphY + height - int32(float32(height)*float32(values[j])/float32(top))
			rl.DrawLine(x1, y1, x2, y2, series.color)
		}
	}
}
