package game

import "github.com/go-gl/glfw/v3.3/glfw"

// DefaultKeyBindings maps actions to glfw key codes for a fresh install.
func DefaultKeyBindings() map[string]int {
	return map[string]int{
		ActionUp:              int(glfw.KeyUp),
		ActionDown:            int(glfw.KeyDown),
		ActionLeft:            int(glfw.KeyLeft),
		ActionRight:           int(glfw.KeyRight),
		ActionPlay:            int(glfw.KeyEnter),
		ActionHighscores:      int(glfw.KeyH),
		ActionToggleObstacles: int(glfw.KeyO),
		ActionOptions:         int(glfw.KeyS),
		ActionQuit:            int(glfw.KeyEscape),
	}
}

// Input tracks edge-triggered key state and buffers typed characters for
// the name entry form.
type Input struct {
	prevKeys map[glfw.Key]bool
	chars    []rune
}

func NewInput(window *glfw.Window) *Input {
	in := &Input{prevKeys: make(map[glfw.Key]bool)}
	window.SetCharCallback(func(_ *glfw.Window, ch rune) {
		in.chars = append(in.chars, ch)
	})
	return in
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// ActionPressed reports an edge-triggered press of the key bound to action.
func (in *Input) ActionPressed(window *glfw.Window, settings *Settings, action string) bool {
	key := glfw.Key(settings.Key(action))
	if key == 0 {
		return false
	}
	return in.JustPressed(window, key)
}

// DrainChars returns the characters typed since the last call.
func (in *Input) DrainChars() []rune {
	chars := in.chars
	in.chars = nil
	return chars
}

// PollDirection samples the bound direction keys and returns the buffered
// intent for the next tick. Later-polled keys win when several are held;
// DirNone when none are.
func (in *Input) PollDirection(window *glfw.Window, settings *Settings) Direction {
	dir := DirNone
	if window.GetKey(glfw.Key(settings.Key(ActionUp))) == glfw.Press {
		dir = DirUp
	}
	if window.GetKey(glfw.Key(settings.Key(ActionDown))) == glfw.Press {
		dir = DirDown
	}
	if window.GetKey(glfw.Key(settings.Key(ActionLeft))) == glfw.Press {
		dir = DirLeft
	}
	if window.GetKey(glfw.Key(settings.Key(ActionRight))) == glfw.Press {
		dir = DirRight
	}
	return dir
}
