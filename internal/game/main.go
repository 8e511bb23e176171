package game

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// RunDesktop owns the whole shell: window, renderer, audio, input, and the
// frame loop that throttles logic ticks to the session speed.
func RunDesktop() {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	if err := InitAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	}

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("SNAKE_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	dataDir, err := DataDir()
	if err != nil {
		log.Printf("data dir: %v (scores and settings will not persist)", err)
		dataDir = os.TempDir()
	}
	settings := NewSettings(dataDir, DefaultKeyBindings())
	scores := NewScoreManager(dataDir)
	SetMusicVolume(settings.MusicVolume)
	SetSFXVolume(settings.SFXVolume)
	SetMusicEnabled(settings.MusicOn)

	bus := NewEventBus()
	flow := NewGameFlow(scores, settings, bus, seed)
	particles := NewParticleSystem(MaxParticles, seed^0xBEAD)
	input := NewInput(window)

	// Cosmetic fan-out: the session core only emits events; sounds and
	// particles hang off the bus.
	bus.Subscribe(EventFoodEaten, func(e Event) {
		PlaySound(SoundEat)
		particles.EmitBurst(e.Cell, ParticleCount, Palette.Food)
	})
	bus.Subscribe(EventPowerUpCollected, func(e Event) {
		if e.Kind == PowerUpShrink {
			PlaySound(SoundShrink)
		} else {
			PlaySound(SoundPowerUp)
		}
		particles.EmitBurst(e.Cell, ParticleCount, PowerUpColor(e.Kind))
	})
	bus.Subscribe(EventDeath, func(e Event) {
		PlaySound(SoundGameOver)
		if flow.Session != nil {
			particles.EmitBurst(flow.Session.Snake.Head(), ParticleCount*3, Palette.Danger)
		}
		flow.HandleDeath(e)
		StartMenuMusic()
	})

	StartMenuMusic()

	frame := 0
	pendingDir := DirNone
	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		switch flow.State {
		case StateMenu:
			drainInput(input) // discard typed chars outside the entry form
			if input.ActionPressed(window, settings, ActionPlay) {
				PlaySound(SoundMenuSelect)
				if err := flow.StartGame(); err != nil {
					panic(fmt.Errorf("start game: %w", err))
				}
				particles.Clear()
				pendingDir = DirNone
				frame = 0
				StartGameMusic()
			}
			if input.ActionPressed(window, settings, ActionToggleObstacles) {
				PlaySound(SoundMenuSelect)
				flow.ObstaclesEnabled = !flow.ObstaclesEnabled
			}
			if input.ActionPressed(window, settings, ActionHighscores) {
				PlaySound(SoundMenuSelect)
				flow.State = StateHighscores
			}
			if input.ActionPressed(window, settings, ActionOptions) {
				PlaySound(SoundMenuSelect)
				flow.State = StateSettings
			}
			if input.ActionPressed(window, settings, ActionQuit) {
				window.SetShouldClose(true)
			}

		case StatePlaying:
			if input.ActionPressed(window, settings, ActionQuit) {
				flow.State = StateMenu
				StartMenuMusic()
				break
			}
			// Input is sampled every frame so a turn between ticks is
			// never lost; the last held direction wins.
			if dir := input.PollDirection(window, settings); dir != DirNone {
				pendingDir = dir
			}

			session := flow.Session
			divisor := FPS / session.Speed
			if divisor < 1 {
				divisor = 1
			}
			if frame%divisor == 0 {
				prevSpeed := session.Speed
				events, err := session.Tick(pendingDir)
				pendingDir = DirNone
				for _, e := range events {
					bus.Emit(e)
				}
				if err != nil {
					// Placement oracle failure: the grid is saturated, the
					// run cannot continue.
					log.Printf("session tick: %v", err)
					bus.Emit(Event{Type: EventDeath, Score: session.Score, Mode: session.Mode})
				} else if session.Speed > prevSpeed {
					PlaySound(SoundSpeedUp)
				}
			}
			frame++

		case StateGameOver:
			// Form keys win over typing; their keypresses also land in
			// the char buffer and must not leak into the name.
			switch {
			case input.JustPressed(window, glfw.KeyEnter):
				PlaySound(SoundMenuSelect)
				flow.FinishEntry(false)
				drainInput(input)
			case input.JustPressed(window, glfw.KeyH):
				PlaySound(SoundMenuSelect)
				flow.FinishEntry(true)
				drainInput(input)
			case input.JustPressed(window, glfw.KeyEscape):
				PlaySound(SoundMenuSelect)
				flow.CancelEntry()
				drainInput(input)
			default:
				for _, ch := range input.DrainChars() {
					flow.AppendNameChar(ch)
				}
				if input.JustPressed(window, glfw.KeyBackspace) {
					flow.BackspaceName()
				}
			}

		case StateHighscores:
			drainInput(input)
			if input.JustPressed(window, glfw.KeyEscape) || input.JustPressed(window, glfw.KeyEnter) {
				flow.State = StateMenu
			}

		case StateSettings:
			drainInput(input)
			if input.JustPressed(window, glfw.KeyM) {
				settings.ToggleMusic()
				SetMusicEnabled(settings.MusicOn)
				if settings.MusicOn {
					StartMenuMusic()
				}
			}
			if input.JustPressed(window, glfw.KeyLeft) {
				settings.AdjustMusicVolume(-0.1)
				SetMusicVolume(settings.MusicVolume)
			}
			if input.JustPressed(window, glfw.KeyRight) {
				settings.AdjustMusicVolume(0.1)
				SetMusicVolume(settings.MusicVolume)
			}
			if input.JustPressed(window, glfw.KeyDown) {
				settings.AdjustSFXVolume(-0.1)
				SetSFXVolume(settings.SFXVolume)
			}
			if input.JustPressed(window, glfw.KeyUp) {
				settings.AdjustSFXVolume(0.1)
				SetSFXVolume(settings.SFXVolume)
				PlaySound(SoundMenuSelect)
			}
			if input.JustPressed(window, glfw.KeyEscape) {
				flow.State = StateMenu
			}
		}

		particles.Update(dt)

		cam := BoardCamera(fbW, fbH)
		rend.BeginFrame(cam, fbW, fbH)
		if flow.State == StatePlaying {
			rend.DrawSession(flow.Session, particles, fbW, fbH, now)
			rend.FlushText(fbW, fbH)
		} else {
			// Death particles keep raining on the game-over screen.
			rend.DrawGlowSprites(particles.RenderData(nil))
			RenderScreens(rend, flow, fbW, fbH, now)
		}
		window.SwapBuffers()
	}
}

// drainInput discards buffered typed characters so stray typing on one
// screen cannot leak into the name entry form later.
func drainInput(in *Input) {
	in.DrainChars()
}
