package game

import "strings"

type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StateGameOver
	StateHighscores
	StateSettings
)

// GameFlow sequences the top-level states around a session and owns the
// shell-scoped state: the obstacles toggle, the game-over name entry
// buffer, and the final (score, mode) pair awaiting submission. The name
// buffer is an instance field here on purpose — it is scoped to the
// game-over form, not to any type.
type GameFlow struct {
	State            GameState
	Session          *Session
	ObstaclesEnabled bool

	PlayerName string
	FinalScore int
	FinalMode  GameMode

	Scores   *ScoreManager
	Settings *Settings
	Bus      *EventBus

	seed uint64
	runs uint64
}

func NewGameFlow(scores *ScoreManager, settings *Settings, bus *EventBus, seed uint64) *GameFlow {
	return &GameFlow{
		State:    StateMenu,
		Scores:   scores,
		Settings: settings,
		Bus:      bus,
		seed:     seed,
	}
}

// StartGame resets everything for a fresh run and enters play.
func (f *GameFlow) StartGame() error {
	mode := ModeClassic
	if f.ObstaclesEnabled {
		mode = ModeObstacles
	}
	f.runs++
	session, err := NewSession(mode, f.seed^f.runs*0x9E3779B185EBCA87)
	if err != nil {
		return err
	}
	f.Session = session
	f.State = StatePlaying
	return nil
}

// HandleDeath records the terminal result and opens the name entry form.
func (f *GameFlow) HandleDeath(e Event) {
	f.FinalScore = e.Score
	f.FinalMode = e.Mode
	f.PlayerName = ""
	f.State = StateGameOver
}

// SubmitScore stores the entered name with the final result. An empty
// name falls back to "Player", matching the entry form's placeholder.
func (f *GameFlow) SubmitScore() {
	name := strings.TrimSpace(f.PlayerName)
	if name == "" {
		name = "Player"
	}
	f.Scores.Add(name, f.FinalScore, f.FinalMode)
	f.PlayerName = ""
}

// FinishEntry submits the entered score and leaves the entry form: to
// the highscores screen when requested, back to the menu otherwise.
func (f *GameFlow) FinishEntry(showHighscores bool) {
	f.SubmitScore()
	if showHighscores {
		f.State = StateHighscores
	} else {
		f.State = StateMenu
	}
}

// CancelEntry discards the pending name without storing a score and
// returns to the menu.
func (f *GameFlow) CancelEntry() {
	f.PlayerName = ""
	f.State = StateMenu
}

// AppendNameChar grows the name buffer, capped at NameMaxLen printable
// characters.
func (f *GameFlow) AppendNameChar(ch rune) {
	if len(f.PlayerName) >= NameMaxLen {
		return
	}
	// Printable ASCII only, which keeps byte-wise backspace correct.
	if ch < 32 || ch > 126 {
		return
	}
	f.PlayerName += string(ch)
}

// BackspaceName removes the last character of the name buffer.
func (f *GameFlow) BackspaceName() {
	if f.PlayerName == "" {
		return
	}
	f.PlayerName = f.PlayerName[:len(f.PlayerName)-1]
}
