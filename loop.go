package main

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"ant-colony/game"
)

// TickLoop advances a simulation on a background goroutine at a fixed
// interval. It stops on Stop, when its context ends, or when the simulation
// asks to quit.
type TickLoop struct {
	sim      *game.Simulation
	interval time.Duration
	logger   *slog.Logger

	mutex   sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

func NewTickLoop(sim *game.Simulation, interval time.Duration, logger *slog.Logger) *TickLoop {
	return &TickLoop{
		sim:      sim,
		interval: interval,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Start launches the loop. Calling it on a running loop does nothing.
func (l *TickLoop) Start(ctx context.Context) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	if l.running {
		return
	}
	l.running = true
	ctx, l.cancel = context.WithCancel(ctx)
	go l.loop(ctx, l.done)
}

// Stop ends the loop and waits for it to exit
func (l *TickLoop) Stop() {
	l.mutex.Lock()
	cancel := l.cancel
	l.mutex.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-l.done
}

// Done is closed once a started loop has exited
func (l *TickLoop) Done() <-chan struct{} {
	return l.done
}

func (l *TickLoop) IsRunning() bool {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.running
}

func (l *TickLoop) loop(ctx context.Context, done chan struct{}) {
	defer func() {
		l.mutex.Lock()
		l.running = false
		l.mutex.Unlock()
		close(done)
	}()

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.sim.Tick()
			if l.sim.ShouldQuit() {
				l.logger.Info("tick loop stopping on quit", "tick", l.sim.Snapshot().Tick)
				return
			}
		}
	}
}
