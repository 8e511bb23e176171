package game

import (
	"fmt"
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// RenderScreens draws the shell screens (everything except the play field)
// using the font atlas, then flushes all queued text.
func RenderScreens(r *Renderer, flow *GameFlow, fbW, fbH int, now float64) {
	switch flow.State {
	case StateMenu:
		title := "METAL SNAKE"
		r.DrawString(title, fbW/2-TextWidth(title, 5)/2, fbH/2-160, 5, Palette.Title)

		mode := "Mode: Classic"
		if flow.ObstaclesEnabled {
			mode = "Mode: Obstacles"
		}
		lines := []struct {
			text string
			col  RGB
		}{
			{"ENTER  Play", Palette.Text},
			{"O      " + mode[6:] + " (toggle)", Palette.Text},
			{"H      Highscores", Palette.Text},
			{"S      Settings", Palette.Text},
			{"ESC    Quit", Palette.TextDim},
		}
		y := fbH/2 - 40
		for _, l := range lines {
			r.DrawString(l.text, fbW/2-TextWidth(l.text, 2)/2, y, 2, l.col)
			y += FontCellH*2 + 8
		}
		r.DrawString(mode, fbW/2-TextWidth(mode, 2)/2, y+16, 2, Palette.Title)

	case StateGameOver:
		head := "GAME OVER"
		r.DrawString(head, fbW/2-TextWidth(head, 4)/2, fbH/2-140, 4, Palette.Danger)

		score := fmt.Sprintf("Final score: %d (%s)", flow.FinalScore, flow.FinalMode)
		r.DrawString(score, fbW/2-TextWidth(score, 2)/2, fbH/2-60, 2, Palette.Text)

		prompt := "Enter your name:"
		r.DrawString(prompt, fbW/2-TextWidth(prompt, 2)/2, fbH/2, 2, Palette.TextDim)

		// Blinking cursor on the entry line.
		entry := flow.PlayerName
		if math.Mod(now, 1.0) < 0.5 {
			entry += "_"
		}
		r.DrawString(entry, fbW/2-TextWidth(entry, 2)/2, fbH/2+40, 2, Palette.Entry)

		hint := "ENTER submit   H highscores   ESC menu"
		r.DrawString(hint, fbW/2-TextWidth(hint, 1)/2, fbH/2+90, 1, Palette.TextDim)

	case StateHighscores:
		head := "HIGHSCORES"
		r.DrawString(head, fbW/2-TextWidth(head, 4)/2, 60, 4, Palette.Title)

		drawScoreColumn(r, flow, ModeClassic, fbW/4, 160)
		drawScoreColumn(r, flow, ModeObstacles, fbW*3/4, 160)

		hint := "ESC to go back"
		r.DrawString(hint, fbW/2-TextWidth(hint, 1)/2, fbH-40, 1, Palette.TextDim)

	case StateSettings:
		head := "SETTINGS"
		r.DrawString(head, fbW/2-TextWidth(head, 4)/2, 60, 4, Palette.Title)

		state := "Music: Off"
		if flow.Settings.MusicOn {
			state = "Music: On"
		}
		music := fmt.Sprintf("Music volume  < %3.0f%% >", flow.Settings.MusicVolume*100)
		sfx := fmt.Sprintf("Effect volume [ %3.0f%% ]", flow.Settings.SFXVolume*100)
		r.DrawString(state, fbW/2-TextWidth(state, 2)/2, 180, 2, Palette.Text)
		r.DrawString(music, fbW/2-TextWidth(music, 2)/2, 180+FontCellH*2+12, 2, Palette.Text)
		r.DrawString(sfx, fbW/2-TextWidth(sfx, 2)/2, 180+(FontCellH*2+12)*2, 2, Palette.Text)

		y := 320
		for _, action := range []string{ActionUp, ActionDown, ActionLeft, ActionRight} {
			line := fmt.Sprintf("%-6s %s", action, keyName(glfw.Key(flow.Settings.Key(action))))
			r.DrawString(line, fbW/2-TextWidth(line, 2)/2, y, 2, Palette.TextDim)
			y += FontCellH*2 + 6
		}

		hint := "M music on/off   LEFT/RIGHT music   UP/DOWN effects   ESC back"
		r.DrawString(hint, fbW/2-TextWidth(hint, 1)/2, fbH-40, 1, Palette.TextDim)
	}

	r.FlushText(fbW, fbH)
}

// keyName renders a key code for the settings screen. GetKeyName only
// covers printable keys, so the common special keys get names here.
func keyName(key glfw.Key) string {
	switch key {
	case glfw.KeyUp:
		return "Up"
	case glfw.KeyDown:
		return "Down"
	case glfw.KeyLeft:
		return "Left"
	case glfw.KeyRight:
		return "Right"
	case glfw.KeyEnter:
		return "Enter"
	case glfw.KeyEscape:
		return "Esc"
	case glfw.KeySpace:
		return "Space"
	}
	if name := glfw.GetKeyName(key, 0); name != "" {
		return name
	}
	return fmt.Sprintf("key %d", key)
}

func drawScoreColumn(r *Renderer, flow *GameFlow, mode GameMode, centerX, y int) {
	head := mode.String()
	r.DrawString(head, centerX-TextWidth(head, 2)/2, y, 2, Palette.Entry)
	y += FontCellH*2 + 12

	entries := flow.Scores.ForMode(mode)
	if len(entries) == 0 {
		empty := "- no scores yet -"
		r.DrawString(empty, centerX-TextWidth(empty, 1)/2, y, 1, Palette.TextDim)
		return
	}
	for i, e := range entries {
		line := fmt.Sprintf("%d. %-15s %6d", i+1, e.Name, e.Score)
		r.DrawString(line, centerX-TextWidth(line, 2)/2, y, 2, Palette.Text)
		y += FontCellH*2 + 6
	}
}
