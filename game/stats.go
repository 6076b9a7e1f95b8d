package game

// Stats are the colony counters shown by every host
type Stats struct {
	Tick          uint64 `json:"tick" yaml:"tick"`
	FoodPickedUp  int    `json:"food_picked_up" yaml:"food_picked_up"`
	FoodDelivered int    `json:"food_delivered" yaml:"food_delivered"`
	FoodRemaining int    `json:"food_remaining" yaml:"food_remaining"`
	FoodCells     int    `json:"food_cells" yaml:"food_cells"`
	AntsCarrying  int    `json:"ants_carrying" yaml:"ants_carrying"`
	AntsDepleted  int    `json:"ants_depleted" yaml:"ants_depleted"` // out of charge, no longer marking
}

// InTransit is food picked up but not yet delivered
func (st Stats) InTransit() int {
	return st.FoodPickedUp - st.FoodDelivered
}

func (s *Simulation) collectStats() Stats {
	carrying, depleted := s.population.CountCarrying()
	return Stats{
		Tick:          s.state.Tick(),
		FoodPickedUp:  s.state.PickedUp(),
		FoodDelivered: s.state.Delivered(),
		FoodRemaining: s.food.Remaining(),
		FoodCells:     len(s.food.GetFoodList()),
		AntsCarrying:  carrying,
		AntsDepleted:  depleted,
	}
}

// Stats returns the counters of the last published snapshot
func (s *Simulation) Stats() Stats {
	return s.Snapshot().Stats
}
