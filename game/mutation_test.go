package game

import (
	"errors"
	"testing"

	"ant-colony/game/types"
)

func TestPlaceFood(t *testing.T) {
	s := newSim(t, trailConfig())
	home := types.Point{X: 25, Y: 25}

	tests := []struct {
		name string
		p    types.Point
		want bool
	}{
		{"empty cell", types.Point{X: 3, Y: 3}, true},
		{"existing food", types.Point{X: 3, Y: 3}, true},
		{"home", home, false},
		{"outside the grid", types.Point{X: -1, Y: 3}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.PlaceFood(tt.p); got != tt.want {
				t.Errorf("PlaceFood(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}

	snap := s.Snapshot()
	c := snap.Cell(3, 3)
	if c.Kind != types.Food || c.Food != s.cfg.FoodAmount {
		t.Fatalf("food cell = %+v", c)
	}
	if c.FoodScent < s.cfg.FoodSourceIntensity {
		t.Errorf("food cell not anchored: %v", c.FoodScent)
	}
	if snap.Cell(25, 25).Kind != types.Home {
		t.Error("home was overwritten")
	}
}

func TestPlaceFoodOnTerrainIgnored(t *testing.T) {
	s := newSim(t, trailConfig())
	p := types.Point{X: 4, Y: 4}
	s.PlaceTerrain(p)
	if s.PlaceFood(p) {
		t.Fatal("food placed on terrain")
	}
	if got := s.Snapshot().Cell(4, 4).Kind; got != types.Terrain {
		t.Fatalf("cell is %v", got)
	}
}

func TestPlaceTerrain(t *testing.T) {
	s := newSim(t, trailConfig())
	food := types.Point{X: 10, Y: 10}
	s.PlaceFood(food)

	if !s.PlaceTerrain(food) {
		t.Fatal("terrain should overwrite food")
	}
	snap := s.Snapshot()
	if c := snap.Cell(10, 10); c.Kind != types.Terrain || c.FoodScent != 0 {
		t.Fatalf("cell after terrain = %+v", c)
	}
	if snap.Stats.FoodCells != 0 || snap.Stats.FoodRemaining != 0 {
		t.Fatalf("food still counted: %+v", snap.Stats)
	}

	// the only ant stands on home, which is refused on both counts
	if s.PlaceTerrain(types.Point{X: 25, Y: 25}) {
		t.Fatal("terrain placed on home")
	}
}

func TestPlaceTerrainUnderAntIgnored(t *testing.T) {
	s := newSim(t, trailConfig())
	s.population.GetAnts()[0].Heading = 0
	s.Tick()

	ant := firstAnt(s)
	if s.Snapshot().Cell(ant.Cell.X, ant.Cell.Y).Kind == types.Home {
		t.Fatal("ant did not leave home")
	}
	if s.PlaceTerrain(ant.Cell) {
		t.Fatal("terrain placed under an ant")
	}
}

func TestPlaceClearsScent(t *testing.T) {
	s := newSim(t, trailConfig())
	s.population.GetAnts()[0].Heading = 0
	s.Run(3)

	p := types.Point{X: 26, Y: 25}
	if s.Snapshot().Cell(p.X, p.Y).HomeScent == 0 {
		t.Fatal("expected a trail behind the ant")
	}
	s.PlaceFood(p)
	if c := s.Snapshot().Cell(p.X, p.Y); c.HomeScent != 0 {
		t.Fatalf("food placement kept home scent: %+v", c)
	}
}

func TestHandleEventAppliesOnNextTick(t *testing.T) {
	s := newSim(t, trailConfig())
	s.HandleEvent(Event{Type: EventPlaceFood, Cell: types.Point{X: 5, Y: 5}})
	s.HandleEvent(Event{Type: EventPause})

	if s.Snapshot().Cell(5, 5).Kind != types.Empty || s.Snapshot().Paused {
		t.Fatal("queued events applied before the tick")
	}

	s.Tick()
	snap := s.Snapshot()
	if snap.Cell(5, 5).Kind != types.Food {
		t.Error("queued food not placed")
	}
	if !snap.Paused || snap.Tick != 0 {
		t.Errorf("pause not applied before stepping: paused=%v tick=%d", snap.Paused, snap.Tick)
	}

	// events are drained while paused too
	s.HandleEvent(Event{Type: EventTogglePause})
	s.Tick()
	if s.Snapshot().Paused || s.Snapshot().Tick != 1 {
		t.Errorf("toggle while paused: %+v", s.Snapshot().Stats)
	}
}

func TestHandleEventOrder(t *testing.T) {
	s := newSim(t, trailConfig())
	p := types.Point{X: 7, Y: 7}
	s.HandleEvent(Event{Type: EventPlaceTerrain, Cell: p})
	s.HandleEvent(Event{Type: EventPlaceFood, Cell: p})
	s.Tick()
	if got := s.Snapshot().Cell(7, 7).Kind; got != types.Terrain {
		t.Fatalf("food after terrain should be ignored, cell is %v", got)
	}

	s.HandleEvent(Event{Type: EventReset})
	s.HandleEvent(Event{Type: EventPlaceFood, Cell: p})
	s.Tick()
	if got := s.Snapshot().Cell(7, 7).Kind; got != types.Food {
		t.Fatalf("reset then food: cell is %v", got)
	}
}

func TestBrushRadius(t *testing.T) {
	cfg := trailConfig()
	cfg.BrushRadius = 2
	s := newSim(t, cfg)

	s.HandleEvent(Event{Type: EventPlaceFood, Cell: types.Point{X: 5, Y: 5}})
	s.HandleEvent(Event{Type: EventPlaceTerrain, Cell: types.Point{X: 0, Y: 0}})
	s.HandleEvent(Event{Type: EventPlaceFood, Cell: types.Point{X: 60, Y: 5}})
	s.Tick()

	st := s.Stats()
	if st.FoodCells != 25 {
		t.Errorf("food cells = %d, want 25", st.FoodCells)
	}
	terrain := 0
	for _, c := range s.Snapshot().Cells {
		if c.Kind == types.Terrain {
			terrain++
		}
	}
	if terrain != 9 {
		t.Errorf("terrain cells = %d, want 9 after clipping at the corner", terrain)
	}
}

func TestQuitEvent(t *testing.T) {
	s := newSim(t, trailConfig())
	s.HandleEvent(Event{Type: EventQuit})
	s.Tick()
	if !s.ShouldQuit() {
		t.Fatal("quit event not applied")
	}
	if s.Snapshot().Tick != 0 {
		t.Fatal("quit tick advanced the world")
	}
}

func TestTogglePause(t *testing.T) {
	s := newSim(t, trailConfig())
	if !s.TogglePause() || !s.IsPaused() || !s.Snapshot().Paused {
		t.Fatal("first toggle should pause")
	}
	if s.TogglePause() || s.IsPaused() {
		t.Fatal("second toggle should resume")
	}
}

func TestParseEventType(t *testing.T) {
	for typ, name := range eventNames {
		got, err := ParseEventType(name)
		if err != nil || got != typ {
			t.Errorf("ParseEventType(%q) = %v, %v", name, got, err)
		}
		if typ.String() != name {
			t.Errorf("%d.String() = %q", typ, typ.String())
		}
	}
	if len(eventTypes) != len(eventNames) {
		t.Errorf("event names are not unique: %d names for %d types", len(eventTypes), len(eventNames))
	}
	if _, err := ParseEventType("dig"); err == nil {
		t.Error("unknown event type accepted")
	}
	if EventType(99).String() != "event(99)" {
		t.Error("unexpected name for unknown type")
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"home too big", func(c *Config) { c.HomeSize = c.Height + 1 }},
		{"no home", func(c *Config) { c.HomeSize = 0 }},
		{"negative ants", func(c *Config) { c.AntCount = -1 }},
		{"step too long", func(c *Config) { c.StepSize = 1.5 }},
		{"zero step", func(c *Config) { c.StepSize = 0 }},
		{"zero radius", func(c *Config) { c.SearchRadius = 0 }},
		{"wide fov", func(c *Config) { c.FieldOfView = 200 }},
		{"no directions", func(c *Config) { c.SampleDirections = 0 }},
		{"decay one", func(c *Config) { c.DecayRate = 1 }},
		{"decay zero", func(c *Config) { c.DecayRate = 0 }},
		{"negative deposit", func(c *Config) { c.DepositAmount = -1 }},
		{"zero charge", func(c *Config) { c.ChargeMax = 0 }},
		{"full smoothing", func(c *Config) { c.TurnSmoothing = 1 }},
		{"no food", func(c *Config) { c.FoodAmount = 0 }},
		{"negative brush", func(c *Config) { c.BrushRadius = -1 }},
		{"negative workers", func(c *Config) { c.Workers = -2 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}
