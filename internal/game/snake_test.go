package game

import "testing"

func TestNewSnakeSpawn(t *testing.T) {
	s := NewSnake()
	if len(s.Body) != MinSnakeLen {
		t.Fatalf("spawn length = %d, want %d", len(s.Body), MinSnakeLen)
	}
	if s.Direction() != DirRight {
		t.Errorf("spawn heading = %v, want DirRight", s.Direction())
	}
	head := s.Head()
	if head.Col != GridCols/2 || head.Row != GridRows/2 {
		t.Errorf("spawn head = %v, want grid center", head)
	}
}

func TestSnakeRejectsReversal(t *testing.T) {
	s := NewSnake() // heading right
	s.SetDirection(DirLeft)
	s.Advance(Cell{Col: -5, Row: -5}, nil)
	if s.Direction() != DirRight {
		t.Errorf("heading after reversal attempt = %v, want DirRight", s.Direction())
	}

	// The reversal check runs against the committed heading, not the
	// pending one: buffering Up does not make Left legal within the tick.
	s = NewSnake()
	s.SetDirection(DirUp)
	s.SetDirection(DirLeft)
	if s.Advance(Cell{Col: -5, Row: -5}, nil) != OutcomeAlive {
		t.Fatal("advance died unexpectedly")
	}
	if s.Direction() != DirUp {
		t.Errorf("heading = %v, want DirUp (Left rejected as reversal)", s.Direction())
	}
}

func TestSnakeWallDeath(t *testing.T) {
	s := NewSnake()
	s.Body = []Cell{{Col: GridCols - 1, Row: 5}, {Col: GridCols - 2, Row: 5}, {Col: GridCols - 3, Row: 5}}
	before := append([]Cell(nil), s.Body...)

	if got := s.Advance(Cell{Col: 0, Row: 0}, nil); got != OutcomeDead {
		t.Fatalf("advance into wall = %v, want OutcomeDead", got)
	}
	// Wall death leaves the body untouched.
	for i, c := range s.Body {
		if c != before[i] {
			t.Fatalf("body mutated on wall death: %v != %v", s.Body, before)
		}
	}
}

func TestSnakeInvincibleWraps(t *testing.T) {
	s := NewSnake()
	s.Invincible = true
	s.Body = []Cell{{Col: GridCols - 1, Row: 5}, {Col: GridCols - 2, Row: 5}, {Col: GridCols - 3, Row: 5}}

	if got := s.Advance(Cell{Col: -1, Row: -1}, nil); got != OutcomeAlive {
		t.Fatalf("invincible advance = %v, want OutcomeAlive", got)
	}
	if want := (Cell{Col: 0, Row: 5}); s.Head() != want {
		t.Errorf("wrapped head = %v, want %v", s.Head(), want)
	}
}

func TestSnakeObstacleDeath(t *testing.T) {
	s := NewSnake()
	next := s.Head().Shift(DirRight)
	obstacles := map[Cell]struct{}{next: {}}

	if got := s.Advance(Cell{Col: -1, Row: -1}, obstacles); got != OutcomeDead {
		t.Errorf("advance into obstacle = %v, want OutcomeDead", got)
	}

	// Invincibility passes through the same obstacle.
	s = NewSnake()
	s.Invincible = true
	if got := s.Advance(Cell{Col: -1, Row: -1}, obstacles); got != OutcomeAlive {
		t.Errorf("invincible advance into obstacle = %v, want OutcomeAlive", got)
	}
}

func TestSnakeSelfCollision(t *testing.T) {
	s := NewSnake()
	// A ring: head about to bite the body.
	s.Body = []Cell{
		{Col: 5, Row: 5},
		{Col: 5, Row: 6},
		{Col: 4, Row: 6},
		{Col: 4, Row: 5},
		{Col: 4, Row: 4},
	}
	s.dir = DirRight
	s.pending = DirDown

	if got := s.Advance(Cell{Col: -1, Row: -1}, nil); got != OutcomeDead {
		t.Errorf("advance into own body = %v, want OutcomeDead", got)
	}
}

func TestSnakeGrowsOnFood(t *testing.T) {
	s := NewSnake()
	food := s.Head().Shift(DirRight)
	lenBefore := len(s.Body)

	if got := s.Advance(food, nil); got != OutcomeAlive {
		t.Fatalf("advance = %v, want OutcomeAlive", got)
	}
	if len(s.Body) != lenBefore+1 {
		t.Errorf("length after food = %d, want %d", len(s.Body), lenBefore+1)
	}
	if s.Head() != food {
		t.Errorf("head = %v, want food cell %v", s.Head(), food)
	}

	// Without food the length is unchanged.
	lenBefore = len(s.Body)
	s.Advance(Cell{Col: -1, Row: -1}, nil)
	if len(s.Body) != lenBefore {
		t.Errorf("length after plain move = %d, want %d", len(s.Body), lenBefore)
	}
}

func TestSnakeShrinkFloor(t *testing.T) {
	s := NewSnake()
	food := s.Head().Shift(DirRight)
	s.Advance(food, nil) // length 4

	s.Shrink(ShrinkSegments)
	if len(s.Body) != MinSnakeLen {
		t.Errorf("length after shrink = %d, want %d", len(s.Body), MinSnakeLen)
	}
	s.Shrink(ShrinkSegments)
	if len(s.Body) != MinSnakeLen {
		t.Errorf("shrink went below floor: %d", len(s.Body))
	}
}
