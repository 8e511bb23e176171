package game

// Obstacle is a single moving grid hazard. Its direction is fixed at
// creation; only the position changes.
type Obstacle struct {
	Cell Cell
	Dir  Direction
}

// ObstacleSet owns all obstacles of a session. Membership is immutable
// after generation; obstacles may overlap each other freely.
type ObstacleSet struct {
	Obstacles []Obstacle
}

// GenerateObstacles places count obstacles on free cells with random
// directions. The occupied set keeps them off the snake's spawn body.
func GenerateObstacles(r *Rand, count int, occupied map[Cell]struct{}) (*ObstacleSet, error) {
	os := &ObstacleSet{Obstacles: make([]Obstacle, 0, count)}
	taken := make(map[Cell]struct{}, len(occupied)+count)
	for c := range occupied {
		taken[c] = struct{}{}
	}
	for i := 0; i < count; i++ {
		cell, err := RandomFreeCell(r, taken, nil)
		if err != nil {
			return nil, err
		}
		taken[cell] = struct{}{}
		os.Obstacles = append(os.Obstacles, Obstacle{
			Cell: cell,
			Dir:  Direction(r.Intn(int(dirCount))),
		})
	}
	return os, nil
}

// AdvanceAll moves every obstacle one cell along its direction, wrapping
// unconditionally at the grid edges.
func (os *ObstacleSet) AdvanceAll() {
	for i := range os.Obstacles {
		o := &os.Obstacles[i]
		o.Cell = o.Cell.Shift(o.Dir).Wrapped()
	}
}

// CellSet returns the occupied cells as a lookup set.
func (os *ObstacleSet) CellSet() map[Cell]struct{} {
	if os == nil {
		return nil
	}
	set := make(map[Cell]struct{}, len(os.Obstacles))
	for _, o := range os.Obstacles {
		set[o.Cell] = struct{}{}
	}
	return set
}
