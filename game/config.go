package game

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig wraps every configuration rejected by Validate
var ErrInvalidConfig = errors.New("invalid simulation config")

// Config holds every tunable of the simulation. Angles are in degrees.
type Config struct {
	// Grid
	Width    int `json:"width" yaml:"width"`
	Height   int `json:"height" yaml:"height"`
	HomeSize int `json:"home_size" yaml:"home_size"` // side of the square nest at the grid center

	// Colony
	AntCount int     `json:"ant_count" yaml:"ant_count"`
	StepSize float64 `json:"step_size" yaml:"step_size"` // cells per tick, at most one

	// Sensing
	SearchRadius     float64 `json:"search_radius" yaml:"search_radius"`
	FieldOfView      float64 `json:"field_of_view" yaml:"field_of_view"` // half-angle of the cone
	SampleDirections int     `json:"sample_directions" yaml:"sample_directions"`
	SampleStep       float64 `json:"sample_step" yaml:"sample_step"`
	SenseThreshold   float64 `json:"sense_threshold" yaml:"sense_threshold"`
	TurnSmoothing    float64 `json:"turn_smoothing" yaml:"turn_smoothing"`
	WanderAngle      float64 `json:"wander_angle" yaml:"wander_angle"`

	// Pheromones
	DecayRate           float64 `json:"decay_rate" yaml:"decay_rate"`
	DepositAmount       float64 `json:"deposit_amount" yaml:"deposit_amount"`
	MaxIntensity        float64 `json:"max_intensity" yaml:"max_intensity"`
	MinIntensity        float64 `json:"min_intensity" yaml:"min_intensity"`
	HomeSourceIntensity float64 `json:"home_source_intensity" yaml:"home_source_intensity"`
	FoodSourceIntensity float64 `json:"food_source_intensity" yaml:"food_source_intensity"`
	ChargeMax           float64 `json:"charge_max" yaml:"charge_max"`
	ChargeCost          float64 `json:"charge_cost" yaml:"charge_cost"`

	// World mutation
	FoodAmount  int `json:"food_amount" yaml:"food_amount"`
	BrushRadius int `json:"brush_radius" yaml:"brush_radius"`

	// Execution
	Workers int    `json:"workers" yaml:"workers"` // 1 steps ants in order; 0 (one per CPU) or more plan in parallel against the start-of-tick field
	Seed    uint64 `json:"seed" yaml:"seed"`
}

func DefaultConfig() Config {
	return Config{
		Width:    200,
		Height:   150,
		HomeSize: 10,

		AntCount: 1000,
		StepSize: 0.5,

		SearchRadius:     20,
		FieldOfView:      45,
		SampleDirections: 5,
		SampleStep:       0.5,
		SenseThreshold:   0.01,
		TurnSmoothing:    0,
		WanderAngle:      45,

		DecayRate:           0.01,
		DepositAmount:       1,
		MaxIntensity:        1000,
		MinIntensity:        0.01,
		HomeSourceIntensity: 10000,
		FoodSourceIntensity: 10000,
		ChargeMax:           1,
		ChargeCost:          0.01,

		FoodAmount:  10,
		BrushRadius: 0,

		Workers: 1,
		Seed:    1,
	}
}

// Validate rejects configurations the simulation cannot run with
func (c Config) Validate() error {
	var problems []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Errorf(format, args...))
		}
	}

	check(c.Width > 0 && c.Height > 0, "grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	check(c.HomeSize >= 1 && c.HomeSize <= c.Width && c.HomeSize <= c.Height,
		"home_size must fit in the grid, got %d", c.HomeSize)
	check(c.AntCount >= 0, "ant_count must be non-negative, got %d", c.AntCount)
	check(c.StepSize > 0 && c.StepSize <= 1, "step_size must be in (0, 1], got %v", c.StepSize)

	check(c.SearchRadius > 0, "search_radius must be positive, got %v", c.SearchRadius)
	check(c.FieldOfView > 0 && c.FieldOfView <= 180, "field_of_view must be in (0, 180], got %v", c.FieldOfView)
	check(c.SampleDirections >= 1, "sample_directions must be at least 1, got %d", c.SampleDirections)
	check(c.SampleStep > 0, "sample_step must be positive, got %v", c.SampleStep)
	check(c.SenseThreshold >= 0, "sense_threshold must be non-negative, got %v", c.SenseThreshold)
	check(c.TurnSmoothing >= 0 && c.TurnSmoothing < 1, "turn_smoothing must be in [0, 1), got %v", c.TurnSmoothing)
	check(c.WanderAngle >= 0 && c.WanderAngle <= 180, "wander_angle must be in [0, 180], got %v", c.WanderAngle)

	check(c.DecayRate > 0 && c.DecayRate < 1, "decay_rate must be in (0, 1), got %v", c.DecayRate)
	check(c.DepositAmount >= 0, "deposit_amount must be non-negative, got %v", c.DepositAmount)
	check(c.MaxIntensity > 0, "max_intensity must be positive, got %v", c.MaxIntensity)
	check(c.MinIntensity >= 0, "min_intensity must be non-negative, got %v", c.MinIntensity)
	check(c.HomeSourceIntensity >= 0, "home_source_intensity must be non-negative, got %v", c.HomeSourceIntensity)
	check(c.FoodSourceIntensity >= 0, "food_source_intensity must be non-negative, got %v", c.FoodSourceIntensity)
	check(c.ChargeMax > 0, "charge_max must be positive, got %v", c.ChargeMax)
	check(c.ChargeCost >= 0, "charge_cost must be non-negative, got %v", c.ChargeCost)

	check(c.FoodAmount >= 1, "food_amount must be at least 1, got %d", c.FoodAmount)
	check(c.BrushRadius >= 0, "brush_radius must be non-negative, got %d", c.BrushRadius)
	check(c.Workers >= 0, "workers must be non-negative, got %d", c.Workers)

	if len(problems) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(problems...))
	}
	return nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
