// Package tui runs the simulation in a terminal. Each character cell shows a
// block of grid cells, scaled down when the grid is larger than the terminal.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ant-colony/game"
	"ant-colony/game/types"
	"ant-colony/logging"

	"github.com/gdamore/tcell/v2"
)

var (
	styleTerrain  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHome     = tcell.StyleDefault.Foreground(tcell.ColorBrown).Bold(true)
	styleFood     = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleSearch   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleCarrying = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
)

// Layout maps terminal cells to grid cells. Row 0 of the terminal is the
// status line; the grid starts on row 1.
type Layout struct {
	Scale      int // grid cells per terminal cell on each axis
	Cols, Rows int // terminal cells used by the grid
}

func FitLayout(screenW, screenH, gridW, gridH int) Layout {
	rows := max(screenH-1, 1)
	cols := max(screenW, 1)
	scale := max(ceilDiv(gridW, cols), ceilDiv(gridH, rows), 1)
	return Layout{
		Scale: scale,
		Cols:  ceilDiv(gridW, scale),
		Rows:  ceilDiv(gridH, scale),
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// ToGrid returns the grid cell at the center of the block under terminal (x, y)
func (l Layout) ToGrid(x, y int) (types.Point, bool) {
	row := y - 1
	if x < 0 || row < 0 || x >= l.Cols || row >= l.Rows {
		return types.Point{}, false
	}
	return types.Point{X: x*l.Scale + l.Scale/2, Y: row*l.Scale + l.Scale/2}, true
}

type Host struct {
	screen   tcell.Screen
	sim      *game.Simulation
	interval time.Duration
	logger   *slog.Logger
	layout   Layout
}

func NewHost(screen tcell.Screen, sim *game.Simulation, interval time.Duration, logger *slog.Logger) *Host {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Host{
		screen:   screen,
		sim:      sim,
		interval: interval,
		logger:   logger,
	}
}

// Run drives the simulation until quit is requested or ctx is done
func (h *Host) Run(ctx context.Context) error {
	if err := h.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer h.screen.Fini()
	h.screen.EnableMouse()
	h.screen.HideCursor()
	h.resize()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	h.draw(h.sim.Snapshot())
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				h.screen.Sync()
				h.resize()
				continue
			}
			for _, e := range h.Translate(ev) {
				h.sim.HandleEvent(e)
			}
		case <-ticker.C:
			h.sim.Tick()
			if h.sim.ShouldQuit() {
				h.logger.Info("terminal host stopping", "tick", h.sim.Snapshot().Tick)
				return nil
			}
			h.draw(h.sim.Snapshot())
		}
	}
}

func (h *Host) resize() {
	w, hgt := h.screen.Size()
	snap := h.sim.Snapshot()
	h.layout = FitLayout(w, hgt, snap.Width, snap.Height)
}

// Translate maps a key or mouse event to simulation events
func (h *Host) Translate(ev tcell.Event) []game.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return []game.Event{{Type: game.EventQuit}}
		case tcell.KeyRune:
			switch ev.Rune() {
			case ' ':
				return []game.Event{{Type: game.EventTogglePause}}
			case 'r', 'R':
				return []game.Event{{Type: game.EventReset}}
			case 'q', 'Q':
				return []game.Event{{Type: game.EventQuit}}
			}
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		cell, ok := h.layout.ToGrid(x, y)
		if !ok {
			return nil
		}
		buttons := ev.Buttons()
		switch {
		case buttons&tcell.Button1 != 0:
			return []game.Event{{Type: game.EventPlaceFood, Cell: cell}}
		case buttons&(tcell.Button2|tcell.Button3) != 0:
			return []game.Event{{Type: game.EventPlaceTerrain, Cell: cell}}
		}
	}
	return nil
}

func (h *Host) draw(snap *game.Snapshot) {
	h.screen.Clear()
	h.drawStatus(snap)

	ants := make(map[types.Point]types.AntState, len(snap.Ants))
	for _, a := range snap.Ants {
		p := types.Point{X: a.Cell.X / h.layout.Scale, Y: a.Cell.Y / h.layout.Scale}
		if ants[p] != types.CarryingFood {
			ants[p] = a.State
		}
	}

	for row := 0; row < h.layout.Rows; row++ {
		for col := 0; col < h.layout.Cols; col++ {
			r, style := h.glyph(snap, col, row, ants)
			h.screen.SetContent(col, row+1, r, nil, style)
		}
	}
	h.screen.Show()
}

// glyph picks what one terminal cell shows: ants over sources over terrain over scent
func (h *Host) glyph(snap *game.Snapshot, col, row int, ants map[types.Point]types.AntState) (rune, tcell.Style) {
	if state, ok := ants[types.Point{X: col, Y: row}]; ok {
		if state == types.CarryingFood {
			return 'o', styleCarrying
		}
		return '.', styleSearch
	}

	var home, food, terrain bool
	var foodScent, homeScent float64
	s := h.layout.Scale
	for y := row * s; y < (row+1)*s && y < snap.Height; y++ {
		for x := col * s; x < (col+1)*s && x < snap.Width; x++ {
			c := snap.Cell(x, y)
			switch c.Kind {
			case types.Home:
				home = true
			case types.Food:
				food = true
			case types.Terrain:
				terrain = true
			}
			foodScent = max(foodScent, c.FoodScent)
			homeScent = max(homeScent, c.HomeScent)
		}
	}

	switch {
	case home:
		return 'H', styleHome
	case food:
		return '*', styleFood
	case terrain:
		return '#', styleTerrain
	case foodScent > 0 && foodScent >= homeScent:
		return scentRune(foodScent), tcell.StyleDefault.Foreground(tcell.ColorRed)
	case homeScent > 0:
		return scentRune(homeScent), tcell.StyleDefault.Foreground(tcell.ColorBlue)
	}
	return ' ', tcell.StyleDefault
}

func scentRune(v float64) rune {
	switch {
	case v >= 10:
		return '▓'
	case v >= 1:
		return '▒'
	default:
		return '░'
	}
}

func (h *Host) drawStatus(snap *game.Snapshot) {
	st := snap.Stats
	state := "running"
	if snap.Paused {
		state = "paused"
	}
	line := fmt.Sprintf(" tick %d | %s | carrying %d | delivered %d | food %d | space pause  r reset  q quit ",
		st.Tick, state, st.AntsCarrying, st.FoodDelivered, st.FoodRemaining)
	w, _ := h.screen.Size()
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(line) {
			r = rune(line[x])
		}
		h.screen.SetContent(x, 0, r, nil, styleStatus)
	}
}
