package game

import (
	"testing"
)

func TestScoreManagerSortsAndCaps(t *testing.T) {
	sm := NewScoreManager(t.TempDir())

	scores := []int{10, 90, 40, 70, 20, 60}
	for i, sc := range scores {
		sm.Add("player", sc, ModeClassic)
		if i < MaxScores && len(sm.ForMode(ModeClassic)) != i+1 {
			t.Fatalf("after %d adds: %d entries", i+1, len(sm.ForMode(ModeClassic)))
		}
	}

	entries := sm.ForMode(ModeClassic)
	if len(entries) != MaxScores {
		t.Fatalf("entries = %d, want capped at %d", len(entries), MaxScores)
	}
	want := []int{90, 70, 60, 40, 20}
	for i, e := range entries {
		if e.Score != want[i] {
			t.Errorf("entry %d score = %d, want %d", i, e.Score, want[i])
		}
	}
}

func TestScoreManagerPerMode(t *testing.T) {
	sm := NewScoreManager(t.TempDir())
	sm.Add("a", 10, ModeClassic)
	sm.Add("b", 20, ModeObstacles)

	if n := len(sm.ForMode(ModeClassic)); n != 1 {
		t.Errorf("classic entries = %d, want 1", n)
	}
	if n := len(sm.ForMode(ModeObstacles)); n != 1 {
		t.Errorf("obstacles entries = %d, want 1", n)
	}
	if sm.ForMode(ModeObstacles)[0].Name != "b" {
		t.Errorf("modes mixed up: %+v", sm.Highscores)
	}
}

func TestScoreManagerPersists(t *testing.T) {
	dir := t.TempDir()
	sm := NewScoreManager(dir)
	sm.Add("keeper", 55, ModeClassic)

	reloaded := NewScoreManager(dir)
	entries := reloaded.ForMode(ModeClassic)
	if len(entries) != 1 || entries[0].Name != "keeper" || entries[0].Score != 55 {
		t.Errorf("reloaded entries = %+v", entries)
	}
}

func TestScoreManagerStableOrderOnTies(t *testing.T) {
	sm := NewScoreManager(t.TempDir())
	sm.Add("first", 50, ModeClassic)
	sm.Add("second", 50, ModeClassic)

	entries := sm.ForMode(ModeClassic)
	if entries[0].Name != "first" || entries[1].Name != "second" {
		t.Errorf("tie order changed: %+v", entries)
	}
}
