package main

import (
	"context"
	"testing"
	"time"

	"ant-colony/game"
	"ant-colony/logging"
)

func newTestSim(t *testing.T) *game.Simulation {
	t.Helper()
	cfg := game.DefaultConfig()
	cfg.Width, cfg.Height = 30, 20
	cfg.HomeSize = 2
	cfg.AntCount = 10
	sim, err := game.New(cfg, game.WithLogger(logging.Discard()))
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}
	return sim
}

func waitDone(t *testing.T, l *TickLoop) {
	t.Helper()
	select {
	case <-l.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("tick loop did not stop")
	}
}

func TestTickLoopAdvances(t *testing.T) {
	sim := newTestSim(t)
	l := NewTickLoop(sim, time.Millisecond, logging.Discard())
	l.Start(context.Background())
	l.Start(context.Background()) // second start is a no-op

	deadline := time.Now().Add(2 * time.Second)
	for sim.Snapshot().Tick < 5 {
		if time.Now().After(deadline) {
			t.Fatalf("only %d ticks ran", sim.Snapshot().Tick)
		}
		time.Sleep(time.Millisecond)
	}

	l.Stop()
	if l.IsRunning() {
		t.Fatal("loop still running after Stop")
	}
	tick := sim.Snapshot().Tick
	time.Sleep(10 * time.Millisecond)
	if sim.Snapshot().Tick != tick {
		t.Fatal("ticks continued after Stop")
	}
}

func TestTickLoopStopsOnQuit(t *testing.T) {
	sim := newTestSim(t)
	l := NewTickLoop(sim, time.Millisecond, logging.Discard())
	l.Start(context.Background())

	sim.HandleEvent(game.Event{Type: game.EventQuit})
	waitDone(t, l)
	if !sim.ShouldQuit() {
		t.Fatal("quit not applied")
	}
}

func TestTickLoopStopsOnContext(t *testing.T) {
	sim := newTestSim(t)
	ctx, cancel := context.WithCancel(context.Background())
	l := NewTickLoop(sim, time.Millisecond, logging.Discard())
	l.Start(ctx)
	cancel()
	waitDone(t, l)
}

func TestTickLoopStopBeforeStart(t *testing.T) {
	l := NewTickLoop(newTestSim(t), time.Millisecond, logging.Discard())
	l.Stop()
	if l.IsRunning() {
		t.Fatal("unstarted loop reports running")
	}
}
