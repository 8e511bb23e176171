package game

type PowerUpKind int

const (
	PowerUpSpeedBoost PowerUpKind = iota
	PowerUpInvincibility
	PowerUpScoreMultiplier
	PowerUpMagnet
	PowerUpShrink

	powerUpKindCount // must stay last
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpSpeedBoost:
		return "speed boost"
	case PowerUpInvincibility:
		return "invincibility"
	case PowerUpScoreMultiplier:
		return "multiplier"
	case PowerUpMagnet:
		return "magnet"
	case PowerUpShrink:
		return "shrink"
	}
	return "unknown"
}

// PowerUp is a spawned, uncollected pickup on the grid. Remaining effect
// time lives exclusively in the active-effects registry, so the instance
// carries no timer of its own.
type PowerUp struct {
	Cell Cell
	Kind PowerUpKind
}

// powerUpEffect pairs the apply/expire transforms of one kind. Both
// operate on the session directly; no entity holds a back-reference into
// the game. apply reports whether the effect took hold — a Shrink at
// minimum body length does not, and must not enter the registry.
type powerUpEffect struct {
	apply  func(*Session) bool
	expire func(*Session)
}

var powerUpEffects = [powerUpKindCount]powerUpEffect{
	PowerUpSpeedBoost: {
		apply: func(s *Session) bool {
			s.Speed = clamp(s.Speed+SpeedBoostAdd, BaseGameSpeed, MaxGameSpeed)
			return true
		},
		expire: func(s *Session) {
			s.Speed = clamp(s.Speed-SpeedBoostAdd, BaseGameSpeed, MaxGameSpeed)
		},
	},
	PowerUpInvincibility: {
		apply: func(s *Session) bool {
			s.Snake.Invincible = true
			return true
		},
		expire: func(s *Session) {
			s.Snake.Invincible = false
		},
	},
	PowerUpScoreMultiplier: {
		apply: func(s *Session) bool {
			s.Multiplier++
			return true
		},
		expire: func(s *Session) {
			if s.Multiplier > 1 {
				s.Multiplier--
			}
		},
	},
	PowerUpMagnet: {
		apply: func(s *Session) bool {
			s.MagnetActive = true
			return true
		},
		expire: func(s *Session) {
			s.MagnetActive = false
		},
	},
	PowerUpShrink: {
		apply: func(s *Session) bool {
			if len(s.Snake.Body) <= MinSnakeLen {
				return false
			}
			s.Snake.Shrink(ShrinkSegments)
			if s.Score < ShrinkPenalty {
				s.Score = 0
			} else {
				s.Score -= ShrinkPenalty
			}
			return true
		},
		expire: func(s *Session) {},
	},
}

// PowerUpSystem tracks spawned pickups and the active-effects registry
// (kind to remaining ticks, at most one entry per kind).
type PowerUpSystem struct {
	Spawned []PowerUp
	Active  map[PowerUpKind]int

	spawnTimer int
}

func NewPowerUpSystem() *PowerUpSystem {
	return &PowerUpSystem{
		Active: make(map[PowerUpKind]int, powerUpKindCount),
	}
}

// IsActive reports whether kind currently has a registry entry.
func (ps *PowerUpSystem) IsActive(kind PowerUpKind) bool {
	_, ok := ps.Active[kind]
	return ok
}

// Remaining returns the ticks left on an active kind, zero otherwise.
func (ps *PowerUpSystem) Remaining(kind PowerUpKind) int {
	return ps.Active[kind]
}

// Update runs one tick of the power-up lifecycle: a timed spawn attempt,
// collection under the snake head, then expiry countdown. Collecting an
// already-active kind only refreshes its counter; the apply transform
// runs solely on the transition into the registry.
func (ps *PowerUpSystem) Update(s *Session) error {
	ps.spawnTimer++
	if ps.spawnTimer >= PowerUpSpawnInterval {
		ps.spawnTimer = 0
		if err := ps.spawn(s); err != nil {
			return err
		}
	}

	head := s.Snake.Head()
	for i := 0; i < len(ps.Spawned); {
		p := ps.Spawned[i]
		if p.Cell != head {
			i++
			continue
		}
		ps.Spawned = append(ps.Spawned[:i], ps.Spawned[i+1:]...)
		ps.collect(s, p)
	}

	// Fixed kind order keeps expiry deterministic for a given seed.
	for kind := PowerUpKind(0); kind < powerUpKindCount; kind++ {
		left, ok := ps.Active[kind]
		if !ok {
			continue
		}
		left--
		if left > 0 {
			ps.Active[kind] = left
			continue
		}
		delete(ps.Active, kind)
		powerUpEffects[kind].expire(s)
	}
	return nil
}

func (ps *PowerUpSystem) spawn(s *Session) error {
	if len(ps.Spawned) >= PowerUpCount {
		return nil
	}
	kind := PowerUpKind(s.rng.Intn(int(powerUpKindCount)))
	occ := s.occupiedCells(true)
	occ[s.Food] = struct{}{}
	cell, err := RandomFreeCell(s.rng, occ, nil)
	if err != nil {
		return err
	}
	ps.Spawned = append(ps.Spawned, PowerUp{Cell: cell, Kind: kind})
	return nil
}

func (ps *PowerUpSystem) collect(s *Session, p PowerUp) {
	if ps.IsActive(p.Kind) {
		ps.Active[p.Kind] = PowerUpDuration
	} else if powerUpEffects[p.Kind].apply(s) {
		ps.Active[p.Kind] = PowerUpDuration
	}
	s.Score += PowerUpScoreBonus * s.Multiplier
	s.push(Event{Type: EventPowerUpCollected, Cell: p.Cell, Kind: p.Kind})
}
