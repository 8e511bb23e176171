package game

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sort"
)

// ScoreEntry is one stored high score row.
type ScoreEntry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// ScoreManager persists per-mode high scores as JSON. The session core
// never touches this; the shell feeds it (name, score, mode) at the end
// of a run.
type ScoreManager struct {
	path       string
	Highscores map[string][]ScoreEntry
}

// NewScoreManager loads highscores.json from dir, starting empty (and
// logging) when the file is missing or unreadable.
func NewScoreManager(dir string) *ScoreManager {
	sm := &ScoreManager{
		path: filepath.Join(dir, "highscores.json"),
		Highscores: map[string][]ScoreEntry{
			ModeClassic.String():   {},
			ModeObstacles.String(): {},
		},
	}
	sm.load()
	return sm
}

func (sm *ScoreManager) load() {
	data, err := os.ReadFile(sm.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("highscores: read %s: %v", sm.path, err)
		}
		return
	}
	if err := json.Unmarshal(data, &sm.Highscores); err != nil {
		log.Printf("highscores: parse %s: %v", sm.path, err)
	}
}

func (sm *ScoreManager) save() {
	data, err := json.MarshalIndent(sm.Highscores, "", "    ")
	if err != nil {
		log.Printf("highscores: encode: %v", err)
		return
	}
	if err := os.WriteFile(sm.path, data, 0o644); err != nil {
		log.Printf("highscores: write %s: %v", sm.path, err)
	}
}

// Add inserts a score for the given mode, keeps entries sorted by score
// descending, caps the list at MaxScores, and persists.
func (sm *ScoreManager) Add(name string, score int, mode GameMode) {
	key := mode.String()
	entries := append(sm.Highscores[key], ScoreEntry{Name: name, Score: score})
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > MaxScores {
		entries = entries[:MaxScores]
	}
	sm.Highscores[key] = entries
	sm.save()
}

// ForMode returns the stored entries for a mode, best first.
func (sm *ScoreManager) ForMode(mode GameMode) []ScoreEntry {
	return sm.Highscores[mode.String()]
}
