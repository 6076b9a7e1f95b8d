package entity

import (
	"math"
	"testing"

	"ant-colony/game/types"
)

func TestNewAnt(t *testing.T) {
	a := NewAnt(3, types.Vec2{X: 10.5, Y: 4.5}, 42, 1)
	if a.State != types.LookingForFood {
		t.Errorf("state = %v, want looking", a.State)
	}
	if a.Charge != 1 {
		t.Errorf("charge = %v, want 1", a.Charge)
	}
	if a.Heading < -math.Pi || a.Heading > math.Pi {
		t.Errorf("heading %v not normalized", a.Heading)
	}
	if a.Cell() != (types.Point{X: 10, Y: 4}) {
		t.Errorf("cell = %v", a.Cell())
	}

	b := NewAnt(3, types.Vec2{X: 10.5, Y: 4.5}, 42, 1)
	if a.Heading != b.Heading {
		t.Error("same seed must give the same heading")
	}
}

func TestInterestAndTrail(t *testing.T) {
	a := NewAnt(0, types.Vec2{}, 1, 1)
	if a.Interest() != types.FoodScent || a.TrailKind() != types.HomeScent {
		t.Errorf("searching ant: interest=%v trail=%v", a.Interest(), a.TrailKind())
	}
	a.State = types.CarryingFood
	if a.Interest() != types.HomeScent || a.TrailKind() != types.FoodScent {
		t.Errorf("carrying ant: interest=%v trail=%v", a.Interest(), a.TrailKind())
	}
}

func TestPickUpAndDeliver(t *testing.T) {
	a := NewAnt(0, types.Vec2{}, 1, 1)
	a.Heading = 0
	a.Charge = 0.2

	if a.Deliver(1) {
		t.Fatal("a searching ant has nothing to deliver")
	}
	if !a.PickUp(1) {
		t.Fatal("pick up should succeed")
	}
	if a.State != types.CarryingFood || a.Charge != 1 {
		t.Fatalf("after pick up: state=%v charge=%v", a.State, a.Charge)
	}
	if math.Abs(math.Abs(a.Heading)-math.Pi) > 1e-9 {
		t.Fatalf("heading should reverse, got %v", a.Heading)
	}
	if a.PickUp(1) {
		t.Fatal("cannot pick up twice")
	}

	a.Charge = 0
	if !a.Deliver(1) {
		t.Fatal("deliver should succeed")
	}
	if a.State != types.LookingForFood || a.Charge != 1 {
		t.Fatalf("after deliver: state=%v charge=%v", a.State, a.Charge)
	}
}

func TestChargeBookkeeping(t *testing.T) {
	a := NewAnt(0, types.Vec2{}, 1, 2)
	if got := a.DepositAmount(4, 2); got != 4 {
		t.Errorf("full charge deposit = %v, want 4", got)
	}
	a.SpendCharge(0.5)
	if got := a.DepositAmount(4, 2); got != 3 {
		t.Errorf("deposit at 1.5/2 = %v, want 3", got)
	}
	a.SpendCharge(10)
	if a.Charge != 0 {
		t.Errorf("charge = %v, want floor at 0", a.Charge)
	}
	if got := a.DepositAmount(4, 2); got != 0 {
		t.Errorf("depleted ant deposited %v", got)
	}
}

func TestSteerTowards(t *testing.T) {
	a := NewAnt(0, types.Vec2{}, 1, 1)
	a.Heading = 0
	a.SteerTowards(1, 0)
	if a.Heading != 1 {
		t.Errorf("snap steering = %v, want 1", a.Heading)
	}

	a.Heading = 0
	a.SteerTowards(1, 0.5)
	if math.Abs(a.Heading-0.5) > 1e-12 {
		t.Errorf("smoothed steering = %v, want 0.5", a.Heading)
	}
}

func TestWanderIsBounded(t *testing.T) {
	a := NewAnt(0, types.Vec2{}, 7, 1)
	const limit = math.Pi / 8
	for i := 0; i < 1000; i++ {
		a.Heading = 0
		a.Wander(limit)
		if math.Abs(a.Heading) > limit+1e-12 {
			t.Fatalf("wander moved heading by %v, limit %v", a.Heading, limit)
		}
	}

	a.Heading = 0.3
	a.Wander(0)
	if a.Heading != 0.3 {
		t.Errorf("zero wander changed heading to %v", a.Heading)
	}
}
