package game

import "testing"

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(ModeClassic, 7)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestSpeedBoostApplyAndExpire(t *testing.T) {
	s := newTestSession(t)
	ps := s.PowerUps

	ps.collect(s, PowerUp{Kind: PowerUpSpeedBoost})
	if s.Speed != BaseGameSpeed+SpeedBoostAdd {
		t.Fatalf("speed after boost = %d, want %d", s.Speed, BaseGameSpeed+SpeedBoostAdd)
	}
	if ps.Remaining(PowerUpSpeedBoost) != PowerUpDuration {
		t.Fatalf("remaining = %d, want %d", ps.Remaining(PowerUpSpeedBoost), PowerUpDuration)
	}

	// Force expiry on the next update.
	ps.Active[PowerUpSpeedBoost] = 1
	if err := ps.Update(s); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if ps.IsActive(PowerUpSpeedBoost) {
		t.Error("boost still registered after expiry")
	}
	if s.Speed != BaseGameSpeed {
		t.Errorf("speed after expiry = %d, want %d", s.Speed, BaseGameSpeed)
	}
}

func TestCollectActiveKindRefreshesOnly(t *testing.T) {
	s := newTestSession(t)
	ps := s.PowerUps

	ps.collect(s, PowerUp{Kind: PowerUpSpeedBoost})
	speedAfterFirst := s.Speed
	ps.Active[PowerUpSpeedBoost] = 5 // nearly expired

	ps.collect(s, PowerUp{Kind: PowerUpSpeedBoost})
	if s.Speed != speedAfterFirst {
		t.Errorf("second collect re-applied: speed = %d, want %d", s.Speed, speedAfterFirst)
	}
	if ps.Remaining(PowerUpSpeedBoost) != PowerUpDuration {
		t.Errorf("remaining = %d, want refreshed %d", ps.Remaining(PowerUpSpeedBoost), PowerUpDuration)
	}
}

func TestInvincibilityLifecycle(t *testing.T) {
	s := newTestSession(t)
	ps := s.PowerUps

	ps.collect(s, PowerUp{Kind: PowerUpInvincibility})
	if !s.Snake.Invincible {
		t.Fatal("snake not invincible after collect")
	}
	ps.Active[PowerUpInvincibility] = 1
	if err := ps.Update(s); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if s.Snake.Invincible {
		t.Error("snake still invincible after expiry")
	}
}

func TestMultiplierStacksAndFloors(t *testing.T) {
	s := newTestSession(t)
	ps := s.PowerUps

	ps.collect(s, PowerUp{Kind: PowerUpScoreMultiplier})
	if s.Multiplier != 2 {
		t.Fatalf("multiplier = %d, want 2", s.Multiplier)
	}

	ps.Active[PowerUpScoreMultiplier] = 1
	if err := ps.Update(s); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if s.Multiplier != 1 {
		t.Errorf("multiplier after expiry = %d, want 1", s.Multiplier)
	}

	// The decrement is guarded: never below 1.
	powerUpEffects[PowerUpScoreMultiplier].expire(s)
	if s.Multiplier != 1 {
		t.Errorf("multiplier floored at %d, want 1", s.Multiplier)
	}
}

func TestMagnetLifecycle(t *testing.T) {
	s := newTestSession(t)
	ps := s.PowerUps

	ps.collect(s, PowerUp{Kind: PowerUpMagnet})
	if !s.MagnetActive {
		t.Fatal("magnet flag not set")
	}
	ps.Active[PowerUpMagnet] = 1
	if err := ps.Update(s); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if s.MagnetActive {
		t.Error("magnet flag still set after expiry")
	}
}

func TestShrinkAppliesPenalty(t *testing.T) {
	s := newTestSession(t)
	// Grow the snake so shrinking is possible.
	s.Snake.Body = append(s.Snake.Body,
		Cell{Col: 1, Row: 1}, Cell{Col: 1, Row: 2}, Cell{Col: 1, Row: 3})
	s.Score = 20

	s.PowerUps.collect(s, PowerUp{Kind: PowerUpShrink})
	// -ShrinkPenalty, +PowerUpScoreBonus from the pickup itself.
	want := 20 - ShrinkPenalty + PowerUpScoreBonus
	if s.Score != want {
		t.Errorf("score = %d, want %d", s.Score, want)
	}
	if len(s.Snake.Body) != 6-ShrinkSegments {
		t.Errorf("length = %d, want %d", len(s.Snake.Body), 6-ShrinkSegments)
	}
	if !s.PowerUps.IsActive(PowerUpShrink) {
		t.Error("applied shrink missing from registry")
	}
}

func TestShrinkScoreFloorsAtZero(t *testing.T) {
	s := newTestSession(t)
	s.Snake.Body = append(s.Snake.Body, Cell{Col: 1, Row: 1})
	s.Score = ShrinkPenalty - 2

	s.PowerUps.collect(s, PowerUp{Kind: PowerUpShrink})
	if s.Score != PowerUpScoreBonus {
		t.Errorf("score = %d, want %d (floor then pickup bonus)", s.Score, PowerUpScoreBonus)
	}
}

func TestShrinkNoOpAtMinLength(t *testing.T) {
	s := newTestSession(t)
	if len(s.Snake.Body) != MinSnakeLen {
		t.Fatalf("setup: length = %d", len(s.Snake.Body))
	}
	s.Score = 30

	s.PowerUps.collect(s, PowerUp{Kind: PowerUpShrink})
	if len(s.Snake.Body) != MinSnakeLen {
		t.Errorf("length changed: %d", len(s.Snake.Body))
	}
	if s.PowerUps.IsActive(PowerUpShrink) {
		t.Error("no-op shrink entered the registry")
	}
	// The pickup bonus is still granted.
	if s.Score != 30+PowerUpScoreBonus {
		t.Errorf("score = %d, want %d", s.Score, 30+PowerUpScoreBonus)
	}
}

func TestCollectBonusUsesMultiplier(t *testing.T) {
	s := newTestSession(t)
	s.Multiplier = 3

	s.PowerUps.collect(s, PowerUp{Kind: PowerUpMagnet})
	if s.Score != PowerUpScoreBonus*3 {
		t.Errorf("score = %d, want %d", s.Score, PowerUpScoreBonus*3)
	}
}

func TestSpawnRespectsCap(t *testing.T) {
	s := newTestSession(t)
	ps := s.PowerUps
	for i := 0; i < PowerUpCount; i++ {
		ps.Spawned = append(ps.Spawned, PowerUp{Cell: Cell{Col: i, Row: 0}})
	}

	ps.spawnTimer = PowerUpSpawnInterval - 1
	if err := ps.Update(s); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(ps.Spawned) != PowerUpCount {
		t.Errorf("spawned = %d, want capped at %d", len(ps.Spawned), PowerUpCount)
	}
}

func TestSpawnAvoidsFoodAndSnake(t *testing.T) {
	s := newTestSession(t)
	ps := s.PowerUps
	for i := 0; i < 20; i++ {
		ps.spawnTimer = PowerUpSpawnInterval - 1
		if err := ps.Update(s); err != nil {
			t.Fatalf("Update: %v", err)
		}
		for _, p := range ps.Spawned {
			if p.Cell == s.Food {
				t.Fatalf("power-up spawned on food at %v", p.Cell)
			}
			if s.Snake.Occupies(p.Cell) {
				t.Fatalf("power-up spawned on snake at %v", p.Cell)
			}
		}
		ps.Spawned = ps.Spawned[:0]
	}
}
