package manager

import (
	"ant-colony/game/entity"
	"ant-colony/game/types"

	"golang.org/x/exp/rand"
)

type PopulationManager struct {
	ants      []*entity.Ant
	nest      types.Vec2
	chargeMax float64
}

func NewPopulationManager(nest types.Vec2, chargeMax float64) *PopulationManager {
	return &PopulationManager{
		nest:      nest,
		chargeMax: chargeMax,
	}
}

// InitializePopulation replaces the colony with count fresh ants at the nest.
// Every ant gets its own seed drawn from rng, in index order.
func (pm *PopulationManager) InitializePopulation(count int, rng *rand.Rand) {
	pm.ants = make([]*entity.Ant, count)
	for i := range pm.ants {
		pm.ants[i] = entity.NewAnt(i, pm.nest, rng.Uint64(), pm.chargeMax)
	}
}

func (pm *PopulationManager) GetAnts() []*entity.Ant {
	return pm.ants
}

// IsOccupied reports whether any ant stands on p
func (pm *PopulationManager) IsOccupied(p types.Point) bool {
	for _, ant := range pm.ants {
		if ant.Cell() == p {
			return true
		}
	}
	return false
}

// CountCarrying returns how many ants hold food and how many have run out of charge
func (pm *PopulationManager) CountCarrying() (carrying, depleted int) {
	for _, ant := range pm.ants {
		if ant.State == types.CarryingFood {
			carrying++
		}
		if ant.Charge <= 0 {
			depleted++
		}
	}
	return carrying, depleted
}
