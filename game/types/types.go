package types

import "math"

// Point is a grid cell coordinate
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Vec2 is a continuous position in cell units. Cell (x, y) covers [x, x+1) x [y, y+1).
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Cell returns the grid cell the position falls in
func (v Vec2) Cell() Point {
	return Point{X: int(math.Floor(v.X)), Y: int(math.Floor(v.Y))}
}

// Add returns v moved by length along angle
func (v Vec2) Add(angle, length float64) Vec2 {
	return Vec2{
		X: v.X + math.Cos(angle)*length,
		Y: v.Y + math.Sin(angle)*length,
	}
}

// Center returns the continuous position at the middle of the cell
func (p Point) Center() Vec2 {
	return Vec2{X: float64(p.X) + 0.5, Y: float64(p.Y) + 0.5}
}

type CellKind int

const (
	Empty CellKind = iota
	Terrain
	Food
	Home
)

func (k CellKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Terrain:
		return "terrain"
	case Food:
		return "food"
	case Home:
		return "home"
	default:
		return "unknown"
	}
}

// MarshalText keeps snapshots readable over JSON
func (k CellKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Cell is one grid square. Amount is only meaningful for Food.
type Cell struct {
	Kind   CellKind
	Amount int
}

// ScentKind selects one of the two pheromone layers
type ScentKind int

const (
	FoodScent ScentKind = iota
	HomeScent
)

func (k ScentKind) String() string {
	if k == HomeScent {
		return "home"
	}
	return "food"
}

type AntState int

const (
	LookingForFood AntState = iota
	CarryingFood
)

func (s AntState) String() string {
	switch s {
	case LookingForFood:
		return "looking_for_food"
	case CarryingFood:
		return "carrying_food"
	default:
		return "unknown"
	}
}

func (s AntState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
