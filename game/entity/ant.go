package entity

import (
	"math"

	"ant-colony/game/types"

	"golang.org/x/exp/rand"
)

type Ant struct {
	ID       int
	Position types.Vec2
	Heading  float64
	State    types.AntState
	Charge   float64

	// each ant draws from its own stream so parallel planning stays deterministic
	rng *rand.Rand
}

func NewAnt(id int, pos types.Vec2, seed uint64, chargeMax float64) *Ant {
	rng := rand.New(rand.NewSource(seed))
	return &Ant{
		ID:       id,
		Position: pos,
		Heading:  types.NormalizeAngle(rng.Float64()*2*math.Pi - math.Pi),
		State:    types.LookingForFood,
		Charge:   chargeMax,
		rng:      rng,
	}
}

func (a *Ant) Cell() types.Point {
	return a.Position.Cell()
}

// Interest is the layer the ant follows
func (a *Ant) Interest() types.ScentKind {
	if a.State == types.CarryingFood {
		return types.HomeScent
	}
	return types.FoodScent
}

// TrailKind is the layer the ant marks: the way back to where it came from
func (a *Ant) TrailKind() types.ScentKind {
	if a.State == types.CarryingFood {
		return types.FoodScent
	}
	return types.HomeScent
}

// PickUp flips a searching ant to carrying. Returns false if it already carries food.
func (a *Ant) PickUp(chargeMax float64) bool {
	if a.State != types.LookingForFood {
		return false
	}
	a.State = types.CarryingFood
	a.Charge = chargeMax
	a.Heading = types.Reverse(a.Heading)
	return true
}

// Deliver flips a carrying ant back to searching. Returns false if it carries nothing.
func (a *Ant) Deliver(chargeMax float64) bool {
	if a.State != types.CarryingFood {
		return false
	}
	a.State = types.LookingForFood
	a.Charge = chargeMax
	a.Heading = types.Reverse(a.Heading)
	return true
}

// DepositAmount scales base by the fraction of charge left
func (a *Ant) DepositAmount(base, chargeMax float64) float64 {
	if a.Charge <= 0 || chargeMax <= 0 {
		return 0
	}
	return base * a.Charge / chargeMax
}

// SpendCharge drains cost from the reserve, never below zero
func (a *Ant) SpendCharge(cost float64) {
	a.Charge -= cost
	if a.Charge < 0 {
		a.Charge = 0
	}
}

// SteerTowards turns toward target. smoothing 0 snaps, values near 1 barely turn.
func (a *Ant) SteerTowards(target, smoothing float64) {
	a.Heading = types.NormalizeAngle(a.Heading + (1-smoothing)*types.AngleDiff(target, a.Heading))
}

// Wander perturbs the heading by a uniform angle in [-maxAngle, maxAngle]
func (a *Ant) Wander(maxAngle float64) {
	if maxAngle <= 0 {
		return
	}
	a.Heading = types.NormalizeAngle(a.Heading + (a.rng.Float64()*2-1)*maxAngle)
}
