package snake

// Snapshot captures the session state for determinism testing and debugging.
type Snapshot struct {
	Tick      uint64
	State     State
	FoodEaten int
	SnakeLen  int
	Head      Point
	Dir       Direction
	Food      Point // {-1, -1} when there is no food on the field
	Won       bool
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      s.ticks,
		State:     s.state,
		FoodEaten: s.foodEaten,
		SnakeLen:  len(s.body),
		Dir:       s.committed,
		Food:      Point{Row: -1, Col: -1},
		Won:       s.won,
	}
	if len(s.body) > 0 {
		snap.Head = s.head()
	}
	if food := s.grid.Find(CellFood); len(food) > 0 {
		snap.Food = food[0]
	}
	return snap
}
