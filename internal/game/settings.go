package game

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Binding actions. Values are stored as raw key codes so the settings
// file stays independent of the windowing library's Go types.
const (
	ActionUp              = "up"
	ActionDown            = "down"
	ActionLeft            = "left"
	ActionRight           = "right"
	ActionPlay            = "play"
	ActionHighscores      = "highscores"
	ActionToggleObstacles = "toggle_obstacles"
	ActionOptions         = "options"
	ActionQuit            = "quit"
)

// Settings holds user-tunable shell configuration: key bindings and
// audio volumes. Persisted as settings.json next to the high scores.
type Settings struct {
	path string

	KeyBindings map[string]int `json:"key_bindings"`
	MusicOn     bool           `json:"music_on"`
	MusicVolume float64        `json:"music_volume"`
	SFXVolume   float64        `json:"sfx_volume"`
}

// DataDir returns (and creates) the per-user directory for settings and
// high scores.
func DataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	dir := filepath.Join(base, "metalsnake")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	return dir, nil
}

// NewSettings loads settings.json from dir, falling back to defaults
// (and logging) when the file is missing or unreadable.
func NewSettings(dir string, defaults map[string]int) *Settings {
	s := &Settings{
		path:        filepath.Join(dir, "settings.json"),
		KeyBindings: defaults,
		MusicOn:     true,
		MusicVolume: 0.3,
		SFXVolume:   0.5,
	}
	s.load(defaults)
	return s
}

func (s *Settings) load(defaults map[string]int) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("settings: read %s: %v", s.path, err)
		}
		return
	}
	if err := json.Unmarshal(data, s); err != nil {
		log.Printf("settings: parse %s: %v", s.path, err)
		return
	}
	// A partial file keeps defaults for any unbound action.
	for action, key := range defaults {
		if _, ok := s.KeyBindings[action]; !ok {
			s.KeyBindings[action] = key
		}
	}
	s.MusicVolume = clampF(s.MusicVolume, 0, 1)
	s.SFXVolume = clampF(s.SFXVolume, 0, 1)
}

// Save persists the current settings.
func (s *Settings) Save() {
	data, err := json.MarshalIndent(s, "", "    ")
	if err != nil {
		log.Printf("settings: encode: %v", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		log.Printf("settings: write %s: %v", s.path, err)
	}
}

// Key returns the bound key code for an action, or 0 if unbound.
func (s *Settings) Key(action string) int {
	return s.KeyBindings[action]
}

// SetKey rebinds an action and persists. The settings screen only shows
// the current bindings; rebinding happens here or through the
// key_bindings map in settings.json.
func (s *Settings) SetKey(action string, key int) {
	s.KeyBindings[action] = key
	s.Save()
}

// ToggleMusic flips background music on or off and persists.
func (s *Settings) ToggleMusic() {
	s.MusicOn = !s.MusicOn
	s.Save()
}

// AdjustMusicVolume shifts the music volume by delta, clamped to [0,1],
// and persists.
func (s *Settings) AdjustMusicVolume(delta float64) {
	s.MusicVolume = clampF(s.MusicVolume+delta, 0, 1)
	s.Save()
}

// AdjustSFXVolume shifts the effects volume by delta, clamped to [0,1],
// and persists.
func (s *Settings) AdjustSFXVolume(delta float64) {
	s.SFXVolume = clampF(s.SFXVolume+delta, 0, 1)
	s.Save()
}
