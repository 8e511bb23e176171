package game

type GameMode int

const (
	ModeClassic GameMode = iota
	ModeObstacles
)

func (m GameMode) String() string {
	if m == ModeObstacles {
		return "obstacles"
	}
	return "classic"
}

// Phase is the session lifecycle: idle before the first tick, running
// while alive, terminated once a death has been detected.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseTerminated
)

// Session owns all per-run game state and advances it one logical tick at
// a time. Nothing outside the session mutates this state.
type Session struct {
	Snake     *Snake
	Obstacles *ObstacleSet
	Food      Cell
	PowerUps  *PowerUpSystem

	Score        int
	Multiplier   int
	Speed        int // logic ticks per second
	TickCount    int
	Mode         GameMode
	Phase        Phase
	MagnetActive bool

	rng        *Rand
	speedBumps int // high-water count of crossed score thresholds
	events     []Event
}

// NewSession builds a fresh run: centered snake, placed food, and — in
// obstacles mode — a generated obstacle set.
func NewSession(mode GameMode, seed uint64) (*Session, error) {
	s := &Session{
		Snake:      NewSnake(),
		PowerUps:   NewPowerUpSystem(),
		Multiplier: 1,
		Speed:      BaseGameSpeed,
		Mode:       mode,
		rng:        NewRand(splitmix64(seed)),
	}

	if mode == ModeObstacles {
		occ := make(map[Cell]struct{}, len(s.Snake.Body))
		for _, c := range s.Snake.Body {
			occ[c] = struct{}{}
		}
		obstacles, err := GenerateObstacles(s.rng, ObstacleCount, occ)
		if err != nil {
			return nil, err
		}
		s.Obstacles = obstacles
	}

	food, err := RandomFreeCell(s.rng, s.occupiedCells(true), nil)
	if err != nil {
		return nil, err
	}
	s.Food = food
	return s, nil
}

// Tick advances the session by one logical step. input is the buffered
// player intent since the last tick, or DirNone. The returned events are
// valid until the next Tick call.
func (s *Session) Tick(input Direction) ([]Event, error) {
	if s.Phase == PhaseTerminated {
		return nil, nil
	}
	s.Phase = PhaseRunning
	s.events = s.events[:0]

	if input != DirNone {
		s.Snake.SetDirection(input)
	}

	s.bumpSpeedOnThreshold()

	if s.Mode == ModeObstacles {
		s.Obstacles.AdvanceAll()
	}

	obstacleCells := s.Obstacles.CellSet()
	if s.Snake.Advance(s.Food, obstacleCells) == OutcomeDead {
		s.Phase = PhaseTerminated
		s.push(Event{Type: EventDeath, Score: s.Score, Mode: s.Mode})
		return s.events, nil
	}

	if s.Snake.Head() == s.Food {
		bonus := 1
		if s.Mode == ModeObstacles {
			bonus += ObstacleBonus
		}
		s.Score += bonus * s.Multiplier
		s.push(Event{Type: EventFoodEaten, Cell: s.Food})
		if err := s.relocateFood(); err != nil {
			return s.events, err
		}
	}

	if err := s.PowerUps.Update(s); err != nil {
		return s.events, err
	}

	// Pickups above may have crossed a threshold this very tick.
	s.bumpSpeedOnThreshold()

	if s.MagnetActive {
		s.attractFood()
	}

	s.TickCount++
	return s.events, nil
}

// bumpSpeedOnThreshold raises the speed once per crossed ScoreThreshold
// multiple. The high-water counter guards against re-triggering while the
// score sits on a multiple, and against replay after a Shrink penalty.
func (s *Session) bumpSpeedOnThreshold() {
	for s.Score/ScoreThreshold > s.speedBumps {
		s.speedBumps++
		s.Speed = clamp(s.Speed+SpeedIncrement, BaseGameSpeed, MaxGameSpeed)
	}
}

func (s *Session) relocateFood() error {
	var bias *Cell
	if s.MagnetActive {
		head := s.Snake.Head()
		bias = &head
	}
	food, err := RandomFreeCell(s.rng, s.occupiedCells(true), bias)
	if err != nil {
		return err
	}
	s.Food = food
	return nil
}

// attractFood pulls the food one cell toward the snake head along the
// axis of greater absolute distance, ties toward vertical. The food stays
// put when the destination is covered by snake, obstacle, or power-up.
func (s *Session) attractFood() {
	head := s.Snake.Head()
	dx := head.Col - s.Food.Col
	dy := head.Row - s.Food.Row
	if dx == 0 && dy == 0 {
		return
	}

	next := s.Food
	if abs(dx) > abs(dy) {
		if dx > 0 {
			next.Col++
		} else {
			next.Col--
		}
	} else {
		if dy > 0 {
			next.Row++
		} else if dy < 0 {
			next.Row--
		}
	}
	if next == s.Food || !next.InBounds() {
		return
	}

	if s.Snake.Occupies(next) {
		return
	}
	if _, hit := s.Obstacles.CellSet()[next]; hit {
		return
	}
	for _, p := range s.PowerUps.Spawned {
		if p.Cell == next {
			return
		}
	}
	s.Food = next
}

// occupiedCells gathers every cell the placement oracle must avoid:
// snake body, obstacles, and (optionally) spawned power-ups. The food
// cell is not included; callers placing anything other than the food
// itself add it explicitly.
func (s *Session) occupiedCells(includePowerUps bool) map[Cell]struct{} {
	occ := make(map[Cell]struct{}, len(s.Snake.Body)+ObstacleCount+PowerUpCount+1)
	for _, c := range s.Snake.Body {
		occ[c] = struct{}{}
	}
	if s.Obstacles != nil {
		for _, o := range s.Obstacles.Obstacles {
			occ[o.Cell] = struct{}{}
		}
	}
	if includePowerUps {
		for _, p := range s.PowerUps.Spawned {
			occ[p.Cell] = struct{}{}
		}
	}
	return occ
}

func (s *Session) push(e Event) {
	s.events = append(s.events, e)
}
