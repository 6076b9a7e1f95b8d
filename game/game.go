package game

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"ant-colony/game/entity"
	"ant-colony/game/manager"
	"ant-colony/game/pheromone"
	"ant-colony/game/types"
	"ant-colony/logging"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Simulation owns the grid, the pheromone field and the colony, and advances
// them one tick at a time. All methods are safe for concurrent use.
type Simulation struct {
	mu sync.Mutex

	id     string
	cfg    Config
	logger *slog.Logger

	grid       *types.Grid
	field      *pheromone.Field
	collision  *manager.CollisionManager
	food       *manager.FoodManager
	population *manager.PopulationManager
	state      *manager.StateManager
	pool       *antPool
	rng        *rand.Rand

	home   []types.Point
	sense  pheromone.SampleParams
	wander float64

	queueMu sync.Mutex
	queue   []Event

	snapshot atomic.Pointer[Snapshot]
}

type Option func(*Simulation)

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Simulation) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New validates cfg and builds a simulation with the colony at home
func New(cfg Config, opts ...Option) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	grid := types.NewGrid(cfg.Width, cfg.Height)
	home := homeSquare(cfg)

	s := &Simulation{
		id:         uuid.New().String(),
		cfg:        cfg,
		logger:     logging.Discard(),
		grid:       grid,
		field:      pheromone.NewField(cfg.Width, cfg.Height, cfg.MaxIntensity, cfg.MinIntensity),
		collision:  manager.NewCollisionManager(grid),
		food:       manager.NewFoodManager(grid, cfg.FoodAmount),
		population: manager.NewPopulationManager(nestPosition(cfg), cfg.ChargeMax),
		state:      manager.NewStateManager(),
		pool:       newAntPool(cfg.Workers),
		home:       home,
		sense: pheromone.SampleParams{
			Radius:     cfg.SearchRadius,
			FOV:        radians(cfg.FieldOfView),
			Directions: cfg.SampleDirections,
			Step:       cfg.SampleStep,
			Threshold:  cfg.SenseThreshold,
		},
		wander: radians(cfg.WanderAngle),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("run", s.id)

	s.initialize()
	s.logger.Info("simulation created",
		"width", cfg.Width, "height", cfg.Height,
		"ants", cfg.AntCount, "workers", s.pool.workers, "seed", cfg.Seed)
	return s, nil
}

// homeSquare is the home_size square centered on the grid
func homeSquare(cfg Config) []types.Point {
	x0 := cfg.Width/2 - cfg.HomeSize/2
	y0 := cfg.Height/2 - cfg.HomeSize/2
	cells := make([]types.Point, 0, cfg.HomeSize*cfg.HomeSize)
	for y := y0; y < y0+cfg.HomeSize; y++ {
		for x := x0; x < x0+cfg.HomeSize; x++ {
			cells = append(cells, types.Point{X: x, Y: y})
		}
	}
	return cells
}

// nestPosition is the center of the home cell ants spawn on
func nestPosition(cfg Config) types.Vec2 {
	x0 := cfg.Width/2 - cfg.HomeSize/2
	y0 := cfg.Height/2 - cfg.HomeSize/2
	return types.Point{X: x0 + cfg.HomeSize/2, Y: y0 + cfg.HomeSize/2}.Center()
}

// initialize restores the process-start world. Callers hold mu.
func (s *Simulation) initialize() {
	s.grid.Clear()
	s.field.Reset()
	s.food.Reset()
	for _, p := range s.home {
		s.grid.Set(p, types.Cell{Kind: types.Home})
	}

	s.rng = rand.New(rand.NewSource(s.cfg.Seed))
	s.population.InitializePopulation(s.cfg.AntCount, s.rng)
	s.state.Reset()
	s.anchorSources()
	s.publish()
}

// ID identifies this run in logs and host responses. It is not part of the snapshot.
func (s *Simulation) ID() string { return s.id }

func (s *Simulation) Config() Config { return s.cfg }

// Tick advances the world by one step. Queued events are applied first; a
// paused or quitting simulation publishes its snapshot and does nothing else.
func (s *Simulation) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.drainEvents()
	if s.state.IsPaused() || s.state.ShouldQuit() {
		s.publish()
		return
	}

	s.stepAnts()
	s.field.Decay(s.cfg.DecayRate)
	s.anchorSources()
	s.state.Advance()
	s.publish()

	if s.logger.Enabled(context.Background(), logging.LevelTrace) {
		st := s.snapshot.Load().Stats
		s.logger.Log(context.Background(), logging.LevelTrace, "tick",
			"tick", st.Tick,
			"carrying", st.AntsCarrying,
			"delivered", st.FoodDelivered,
			"food_remaining", st.FoodRemaining)
	}
}

// Run ticks n times, stopping early on quit
func (s *Simulation) Run(n int) {
	for i := 0; i < n && !s.ShouldQuit(); i++ {
		s.Tick()
	}
}

func (s *Simulation) stepAnts() {
	ants := s.population.GetAnts()
	if s.pool.workers <= 1 {
		for _, ant := range ants {
			s.resolveCell(ant)
			s.applyMove(ant, s.planMove(ant))
		}
		return
	}

	for _, ant := range ants {
		s.resolveCell(ant)
	}
	moves := s.pool.plan(ants, s.planMove)
	for i, ant := range ants {
		s.applyMove(ant, moves[i])
	}
}

// resolveCell handles pickup and delivery on the cell the ant stands on
func (s *Simulation) resolveCell(ant *entity.Ant) {
	p := ant.Cell()
	switch s.grid.At(p).Kind {
	case types.Food:
		if ant.State != types.LookingForFood || !s.food.TakeFood(p) {
			return
		}
		ant.PickUp(s.cfg.ChargeMax)
		s.state.RecordPickUp()
		if s.grid.At(p).Kind != types.Food {
			// depleted sources stop emitting
			s.field.Clear(p)
		}
	case types.Home:
		if ant.Deliver(s.cfg.ChargeMax) {
			s.state.RecordDelivery()
		}
	}
}

// planMove senses, steers and resolves the move. It only reads shared state
// and writes the ant's own heading, so ants may plan concurrently.
func (s *Simulation) planMove(ant *entity.Ant) manager.Move {
	if dir, ok := s.field.Sample(ant.Position, ant.Heading, s.sense, ant.Interest(), s.collision); ok {
		ant.SteerTowards(dir, s.cfg.TurnSmoothing)
	} else {
		ant.Wander(s.wander)
	}
	return s.collision.ResolveMove(ant.Position, ant.Heading, s.cfg.StepSize)
}

func (s *Simulation) applyMove(ant *entity.Ant, m manager.Move) {
	ant.Heading = m.Heading
	if !m.Moved {
		return
	}
	ant.Position = m.Position

	amount := ant.DepositAmount(s.cfg.DepositAmount, s.cfg.ChargeMax)
	s.field.Deposit(ant.Cell(), ant.TrailKind(), amount)
	ant.SpendCharge(s.cfg.ChargeCost)

	// a refill on arrival is the last thing that happens to the ant this tick
	s.resolveCell(ant)
}

// anchorSources keeps home and food cells at their source intensity
func (s *Simulation) anchorSources() {
	for _, p := range s.home {
		s.field.Anchor(p, types.HomeScent, s.cfg.HomeSourceIntensity)
	}
	for _, p := range s.food.GetFoodList() {
		s.field.Anchor(p, types.FoodScent, s.cfg.FoodSourceIntensity)
	}
}

// Reset restores the initial layout: home only, no food or terrain, empty
// field, colony at home with the original seed. Quit is kept.
func (s *Simulation) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *Simulation) reset() {
	s.initialize()
	s.logger.Info("simulation reset")
}

// Snapshot returns the state published after the last tick or mutation
func (s *Simulation) Snapshot() *Snapshot {
	return s.snapshot.Load()
}

func (s *Simulation) publish() {
	s.snapshot.Store(s.buildSnapshot())
}

// String is used in log lines and the headless summary
func (s *Simulation) String() string {
	snap := s.Snapshot()
	return fmt.Sprintf("simulation %s tick=%d ants=%d", s.id, snap.Tick, len(snap.Ants))
}
