package manager

import (
	"sort"

	"ant-colony/game/types"
)

// FoodManager owns the food cells of the grid
type FoodManager struct {
	grid     *types.Grid
	amount   int
	foodList map[types.Point]struct{}
}

func NewFoodManager(grid *types.Grid, amount int) *FoodManager {
	return &FoodManager{
		grid:     grid,
		amount:   amount,
		foodList: make(map[types.Point]struct{}),
	}
}

// AddFood stocks p with the default amount. Home, terrain and out of bounds cells are refused.
func (fm *FoodManager) AddFood(p types.Point) bool {
	if !fm.grid.InBounds(p) {
		return false
	}
	switch fm.grid.At(p).Kind {
	case types.Home, types.Terrain:
		return false
	}
	fm.grid.Set(p, types.Cell{Kind: types.Food, Amount: fm.amount})
	fm.foodList[p] = struct{}{}
	return true
}

// TakeFood removes one unit from p. The cell empties at zero.
func (fm *FoodManager) TakeFood(p types.Point) bool {
	cell := fm.grid.At(p)
	if cell.Kind != types.Food || cell.Amount <= 0 {
		return false
	}
	cell.Amount--
	if cell.Amount == 0 {
		fm.RemoveFood(p)
		return true
	}
	fm.grid.Set(p, cell)
	return true
}

// RemoveFood empties p if it holds food
func (fm *FoodManager) RemoveFood(p types.Point) {
	if _, ok := fm.foodList[p]; !ok {
		return
	}
	delete(fm.foodList, p)
	if fm.grid.At(p).Kind == types.Food {
		fm.grid.Set(p, types.Cell{Kind: types.Empty})
	}
}

// GetFoodList returns the food cells in row-major order
func (fm *FoodManager) GetFoodList() []types.Point {
	list := make([]types.Point, 0, len(fm.foodList))
	for p := range fm.foodList {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Y != list[j].Y {
			return list[i].Y < list[j].Y
		}
		return list[i].X < list[j].X
	})
	return list
}

// Remaining sums the units left on the grid
func (fm *FoodManager) Remaining() int {
	total := 0
	for p := range fm.foodList {
		total += fm.grid.At(p).Amount
	}
	return total
}

func (fm *FoodManager) Reset() {
	fm.foodList = make(map[types.Point]struct{})
}
