package game

import "testing"

func TestNewSessionPlacement(t *testing.T) {
	s, err := NewSession(ModeObstacles, 99)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if s.Snake.Occupies(s.Food) {
		t.Errorf("food spawned on the snake at %v", s.Food)
	}
	obstacleCells := s.Obstacles.CellSet()
	if _, hit := obstacleCells[s.Food]; hit {
		t.Errorf("food spawned on an obstacle at %v", s.Food)
	}
	for _, c := range s.Snake.Body {
		if _, hit := obstacleCells[c]; hit {
			t.Errorf("obstacle spawned on the snake at %v", c)
		}
	}
	if s.Speed != BaseGameSpeed || s.Multiplier != 1 {
		t.Errorf("fresh session speed=%d multiplier=%d", s.Speed, s.Multiplier)
	}
}

func TestTickFoodPickup(t *testing.T) {
	s := newTestSession(t)
	s.Food = s.Snake.Head().Shift(DirRight)

	events, err := s.Tick(DirNone)
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if s.Score != 1 {
		t.Errorf("score = %d, want 1", s.Score)
	}
	var ate bool
	for _, e := range events {
		if e.Type == EventFoodEaten {
			ate = true
		}
	}
	if !ate {
		t.Error("no EventFoodEaten emitted")
	}
	if s.Snake.Occupies(s.Food) {
		t.Errorf("relocated food at %v overlaps the snake", s.Food)
	}
	if len(s.Snake.Body) != MinSnakeLen+1 {
		t.Errorf("length = %d, want %d", len(s.Snake.Body), MinSnakeLen+1)
	}
}

func TestTickObstacleModeFoodBonus(t *testing.T) {
	s, err := NewSession(ModeObstacles, 123)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	// Clear the hazards so the move is safe, keep the mode bonus.
	s.Obstacles.Obstacles = nil
	s.Food = s.Snake.Head().Shift(DirRight)

	if _, err := s.Tick(DirNone); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if want := 1 + ObstacleBonus; s.Score != want {
		t.Errorf("score = %d, want %d", s.Score, want)
	}
}

func TestSpeedBumpOncePerThreshold(t *testing.T) {
	s := newTestSession(t)

	s.Score = ScoreThreshold
	if _, err := s.Tick(DirNone); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if s.Speed != BaseGameSpeed+SpeedIncrement {
		t.Fatalf("speed = %d, want %d", s.Speed, BaseGameSpeed+SpeedIncrement)
	}

	// Sitting on the threshold must not re-trigger.
	if _, err := s.Tick(DirNone); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if s.Speed != BaseGameSpeed+SpeedIncrement {
		t.Errorf("speed re-bumped to %d", s.Speed)
	}
}

func TestSpeedBumpNotReplayedAfterPenalty(t *testing.T) {
	s := newTestSession(t)
	s.Score = ScoreThreshold
	if _, err := s.Tick(DirNone); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	bumped := s.Speed

	// A Shrink penalty drops the score below the threshold; climbing back
	// over it must not bump again.
	s.Score = ScoreThreshold - ShrinkPenalty
	if _, err := s.Tick(DirNone); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	s.Score = ScoreThreshold + 5
	if _, err := s.Tick(DirNone); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if s.Speed != bumped {
		t.Errorf("speed = %d, want unchanged %d", s.Speed, bumped)
	}
}

func TestTickDeath(t *testing.T) {
	s := newTestSession(t)
	s.Snake.Body = []Cell{
		{Col: GridCols - 1, Row: 5},
		{Col: GridCols - 2, Row: 5},
		{Col: GridCols - 3, Row: 5},
	}
	s.Score = 33

	events, err := s.Tick(DirNone)
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if s.Phase != PhaseTerminated {
		t.Fatalf("phase = %v, want PhaseTerminated", s.Phase)
	}
	if len(events) != 1 || events[0].Type != EventDeath {
		t.Fatalf("events = %v, want a single EventDeath", events)
	}
	if events[0].Score != 33 || events[0].Mode != ModeClassic {
		t.Errorf("death event carries score=%d mode=%v", events[0].Score, events[0].Mode)
	}

	// A terminated session ignores further ticks.
	events, err = s.Tick(DirUp)
	if err != nil || events != nil {
		t.Errorf("tick after death: events=%v err=%v, want nil/nil", events, err)
	}
}

func TestAttractFoodAxisChoice(t *testing.T) {
	tests := []struct {
		name string
		head Cell
		food Cell
		want Cell
	}{
		{"horizontal dominant", Cell{Col: 10, Row: 10}, Cell{Col: 4, Row: 8}, Cell{Col: 5, Row: 8}},
		{"vertical dominant", Cell{Col: 10, Row: 10}, Cell{Col: 9, Row: 4}, Cell{Col: 9, Row: 5}},
		{"tie goes vertical", Cell{Col: 10, Row: 10}, Cell{Col: 7, Row: 7}, Cell{Col: 7, Row: 8}},
		{"aligned row", Cell{Col: 10, Row: 10}, Cell{Col: 14, Row: 10}, Cell{Col: 13, Row: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t)
			s.Snake.Body = []Cell{tt.head}
			s.Food = tt.food
			s.attractFood()
			if s.Food != tt.want {
				t.Errorf("food moved to %v, want %v", s.Food, tt.want)
			}
		})
	}
}

func TestAttractFoodBlocked(t *testing.T) {
	s := newTestSession(t)
	head := Cell{Col: 10, Row: 10}
	s.Snake.Body = []Cell{head}
	s.Food = Cell{Col: 4, Row: 10}
	dest := Cell{Col: 5, Row: 10}

	s.Obstacles = &ObstacleSet{Obstacles: []Obstacle{{Cell: dest, Dir: DirUp}}}
	s.attractFood()
	if s.Food != (Cell{Col: 4, Row: 10}) {
		t.Errorf("food moved onto an obstacle destination: %v", s.Food)
	}

	// Blocked by a spawned power-up as well.
	s.Obstacles = nil
	s.PowerUps.Spawned = []PowerUp{{Cell: dest, Kind: PowerUpMagnet}}
	s.attractFood()
	if s.Food != (Cell{Col: 4, Row: 10}) {
		t.Errorf("food moved onto a power-up destination: %v", s.Food)
	}
}

func TestAttractFoodUnderHeadStays(t *testing.T) {
	s := newTestSession(t)
	head := Cell{Col: 10, Row: 10}
	s.Snake.Body = []Cell{head}
	s.Food = head
	s.attractFood()
	if s.Food != head {
		t.Errorf("food moved off the head cell: %v", s.Food)
	}
}

func TestMagnetBiasedRelocation(t *testing.T) {
	s := newTestSession(t)
	s.MagnetActive = true
	s.Food = s.Snake.Head().Shift(DirRight)

	if _, err := s.Tick(DirNone); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	head := s.Snake.Head()
	// One attraction step may already have run this tick, which only
	// pulls the food closer; the window bound still holds.
	if abs(s.Food.Col-head.Col) > MagnetRange || abs(s.Food.Row-head.Row) > MagnetRange {
		t.Errorf("relocated food %v outside magnet window of head %v", s.Food, head)
	}
}

func TestTickCountsTicks(t *testing.T) {
	s := newTestSession(t)
	for i := 0; i < 5; i++ {
		if _, err := s.Tick(DirNone); err != nil {
			t.Fatalf("Tick: %v", err)
		}
	}
	if s.TickCount != 5 {
		t.Errorf("TickCount = %d, want 5", s.TickCount)
	}
}
