package game

import (
	"fmt"

	"ant-colony/game/types"
)

type EventType int

const (
	EventPlaceFood EventType = iota
	EventPlaceTerrain
	EventPause
	EventResume
	EventTogglePause
	EventReset
	EventQuit
)

var eventNames = map[EventType]string{
	EventPlaceFood:    "place_food",
	EventPlaceTerrain: "place_terrain",
	EventPause:        "pause",
	EventResume:       "resume",
	EventTogglePause:  "toggle_pause",
	EventReset:        "reset",
	EventQuit:         "quit",
}

var eventTypes = func() map[string]EventType {
	m := make(map[string]EventType, len(eventNames))
	for t, name := range eventNames {
		m[name] = t
	}
	return m
}()

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return fmt.Sprintf("event(%d)", int(t))
}

// ParseEventType maps the wire name of an event back to its type
func ParseEventType(name string) (EventType, error) {
	if t, ok := eventTypes[name]; ok {
		return t, nil
	}
	return 0, fmt.Errorf("unknown event type %q", name)
}

// Event is a world mutation submitted by a host. Cell is only read by the
// placement events, which paint the brush square around it.
type Event struct {
	Type EventType
	Cell types.Point
}

// HandleEvent queues ev for the start of the next tick. It never blocks on a
// running tick, so any goroutine may call it.
func (s *Simulation) HandleEvent(ev Event) {
	s.queueMu.Lock()
	s.queue = append(s.queue, ev)
	s.queueMu.Unlock()
}

// drainEvents applies queued events in submission order. Callers hold mu.
func (s *Simulation) drainEvents() {
	s.queueMu.Lock()
	events := s.queue
	s.queue = nil
	s.queueMu.Unlock()

	for _, ev := range events {
		s.apply(ev)
	}
}

func (s *Simulation) apply(ev Event) {
	switch ev.Type {
	case EventPlaceFood:
		s.paint(ev.Cell, s.placeFood)
	case EventPlaceTerrain:
		s.paint(ev.Cell, s.placeTerrain)
	case EventPause:
		s.pause()
	case EventResume:
		s.resume()
	case EventTogglePause:
		if s.state.IsPaused() {
			s.resume()
		} else {
			s.pause()
		}
	case EventReset:
		s.reset()
	case EventQuit:
		s.quit()
	default:
		s.logger.Warn("ignoring unknown event", "type", ev.Type)
	}
}

// paint applies place to every cell of the brush around center
func (s *Simulation) paint(center types.Point, place func(types.Point) bool) int {
	if !s.grid.InBounds(center) {
		s.logger.Debug("placement outside the grid ignored", "x", center.X, "y", center.Y)
		return 0
	}
	placed := 0
	for _, p := range s.grid.Square(center, s.cfg.BrushRadius) {
		if place(p) {
			placed++
		}
	}
	return placed
}

// PlaceFood stocks p with food_amount units. Home and terrain cells are left alone.
func (s *Simulation) PlaceFood(p types.Point) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok := s.placeFood(p)
	s.publish()
	return ok
}

func (s *Simulation) placeFood(p types.Point) bool {
	if !s.food.AddFood(p) {
		s.logger.Debug("food placement ignored", "x", p.X, "y", p.Y, "kind", s.grid.At(p).Kind)
		return false
	}
	s.field.Clear(p)
	s.field.Anchor(p, types.FoodScent, s.cfg.FoodSourceIntensity)
	s.logger.Debug("food placed", "x", p.X, "y", p.Y, "amount", s.cfg.FoodAmount)
	return true
}

// PlaceTerrain walls off p. Home cells and cells with an ant on them are left
// alone; food on p is destroyed.
func (s *Simulation) PlaceTerrain(p types.Point) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok := s.placeTerrain(p)
	s.publish()
	return ok
}

func (s *Simulation) placeTerrain(p types.Point) bool {
	if !s.grid.InBounds(p) {
		return false
	}
	kind := s.grid.At(p).Kind
	if kind == types.Home || s.population.IsOccupied(p) {
		s.logger.Debug("terrain placement ignored", "x", p.X, "y", p.Y, "kind", kind)
		return false
	}
	s.food.RemoveFood(p)
	s.grid.Set(p, types.Cell{Kind: types.Terrain})
	s.field.Clear(p)
	s.logger.Debug("terrain placed", "x", p.X, "y", p.Y)
	return true
}

func (s *Simulation) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pause()
	s.publish()
}

func (s *Simulation) pause() {
	if !s.state.IsPaused() {
		s.state.Pause()
		s.logger.Info("simulation paused", "tick", s.state.Tick())
	}
}

func (s *Simulation) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resume()
	s.publish()
}

func (s *Simulation) resume() {
	if s.state.IsPaused() {
		s.state.Resume()
		s.logger.Info("simulation resumed", "tick", s.state.Tick())
	}
}

// TogglePause flips between running and paused and reports whether it is now paused
func (s *Simulation) TogglePause() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.IsPaused() {
		s.resume()
	} else {
		s.pause()
	}
	s.publish()
	return s.state.IsPaused()
}

// IsPaused reports the live run state, including unpublished changes
func (s *Simulation) IsPaused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsPaused()
}

// Quit asks the host loop to stop. Ticks become no-ops.
func (s *Simulation) Quit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quit()
}

func (s *Simulation) quit() {
	if !s.state.ShouldQuit() {
		s.state.Quit()
		s.logger.Info("quit requested", "tick", s.state.Tick())
	}
}

func (s *Simulation) ShouldQuit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ShouldQuit()
}
