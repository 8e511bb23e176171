package game

// Outcome is the result of advancing the snake one tick.
type Outcome int

const (
	OutcomeAlive Outcome = iota
	OutcomeDead
)

// Snake is the player entity: an ordered body (head at index 0), the
// committed heading for this tick, and a buffered heading applied at the
// start of the next tick so input polling stays decoupled from tick rate.
type Snake struct {
	Body       []Cell
	Invincible bool

	dir     Direction
	pending Direction
}

// NewSnake spawns a three-cell horizontal snake heading right, at the
// grid center.
func NewSnake() *Snake {
	col := GridCols / 2
	row := GridRows / 2
	return &Snake{
		Body: []Cell{
			{Col: col, Row: row},
			{Col: col - 1, Row: row},
			{Col: col - 2, Row: row},
		},
		dir:     DirRight,
		pending: DirRight,
	}
}

// Head returns the current head cell.
func (s *Snake) Head() Cell {
	return s.Body[0]
}

// Direction returns the committed heading.
func (s *Snake) Direction() Direction {
	return s.dir
}

// SetDirection buffers d as the heading for the next tick. A reversal of
// the committed (not pending) heading is silently ignored, so the snake
// can never turn 180 degrees into itself.
func (s *Snake) SetDirection(d Direction) {
	if d == s.dir.Opposite() {
		return
	}
	s.pending = d
}

// Advance commits the pending heading and moves the snake one cell.
// Growth happens by keeping the tail on the tick the head reaches food.
// A non-invincible snake dies on walls, its own body, or an obstacle
// cell; an invincible snake wraps at walls and passes through everything.
// On OutcomeDead the caller must stop processing the tick.
func (s *Snake) Advance(food Cell, obstacles map[Cell]struct{}) Outcome {
	s.dir = s.pending
	head := s.Head().Shift(s.dir)

	// Wall check comes before any body mutation and before the
	// self/obstacle check.
	if !s.Invincible {
		if !head.InBounds() {
			return OutcomeDead
		}
	} else {
		head = head.Wrapped()
	}

	s.Body = append(s.Body, Cell{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = head

	if !s.Invincible {
		for _, c := range s.Body[1:] {
			if c == head {
				return OutcomeDead
			}
		}
		if _, hit := obstacles[head]; hit {
			return OutcomeDead
		}
	}

	if head != food {
		s.Body = s.Body[:len(s.Body)-1]
	}
	return OutcomeAlive
}

// Shrink drops n tail segments, never below MinSnakeLen.
func (s *Snake) Shrink(n int) {
	keep := len(s.Body) - n
	if keep < MinSnakeLen {
		keep = MinSnakeLen
	}
	s.Body = s.Body[:keep]
}

// Occupies reports whether any body segment sits on c.
func (s *Snake) Occupies(c Cell) bool {
	for _, b := range s.Body {
		if b == c {
			return true
		}
	}
	return false
}
