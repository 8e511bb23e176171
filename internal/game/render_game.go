package game

import (
	"fmt"
	"math"
)

func spriteRGB(c RGB, a float32) (float32, float32, float32, float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0, a
}

func appendSprite(buf []float32, x, y, size float64, c RGB, a float32, rot float64) []float32 {
	cr, cg, cb, ca := spriteRGB(c, a)
	return append(buf, float32(x), float32(y), float32(size), cr, cg, cb, ca, float32(rot))
}

func cellCenter(c Cell) (float64, float64) {
	return float64(c.Col) + 0.5, float64(c.Row) + 0.5
}

// DrawSession renders the whole play field: board, snake, food, obstacles,
// power-ups, particle effects, and the HUD. now is wall-clock seconds,
// used only for cosmetic animation.
func (r *Renderer) DrawSession(s *Session, particles *ParticleSystem, fbW, fbH int, now float64) {
	// Checkered board.
	buf := r.spriteBuf[:0]
	for row := 0; row < GridRows; row++ {
		for col := 0; col < GridCols; col++ {
			c := Palette.Board
			if (col+row)%2 == 1 {
				c = Palette.BoardAlt
			}
			x, y := cellCenter(Cell{Col: col, Row: row})
			buf = appendSprite(buf, x, y, 0.98, c, 1, 0)
		}
	}

	// Obstacles.
	if s.Obstacles != nil {
		for _, o := range s.Obstacles.Obstacles {
			x, y := cellCenter(o.Cell)
			buf = appendSprite(buf, x, y, 0.8, Palette.Obstacle, 1, 0)
		}
	}

	// Snake, head slightly larger. Invincibility recolors the whole body.
	bodyCol := Palette.Snake
	if s.Snake.Invincible {
		bodyCol = Palette.Invincible
	}
	for i, c := range s.Snake.Body {
		x, y := cellCenter(c)
		size := 0.82
		if i == 0 {
			size = 0.94
		}
		buf = appendSprite(buf, x, y, size, bodyCol, 1, 0)
	}

	// Food with a slow pulse.
	fx, fy := cellCenter(s.Food)
	pulse := 0.78 + 0.08*math.Sin(now*5)
	buf = appendSprite(buf, fx, fy, pulse, Palette.Food, 1, 0)
	r.spriteBuf = buf
	r.DrawSprites(buf)

	// Spinning pickup boxes.
	box := r.boxBuf[:0]
	for _, p := range s.PowerUps.Spawned {
		x, y := cellCenter(p.Cell)
		rot := now * 1.5
		box = appendSprite(box, x, y, 0.9, PowerUpColor(p.Kind), 1, rot)
	}
	r.boxBuf = box
	r.DrawBoxSprites(box)

	// Glow pass: food shine, snake head, pickups, particles. Additive, so
	// alpha doubles as brightness via pre-multiplied RGB.
	glow := r.glowBuf[:0]
	glow = appendGlow(glow, fx, fy, 2.2, Palette.FoodShine, 0.35)
	hx, hy := cellCenter(s.Snake.Head())
	glow = appendGlow(glow, hx, hy, 2.0, Palette.SnakeGlow, 0.25)
	for _, p := range s.PowerUps.Spawned {
		x, y := cellCenter(p.Cell)
		glow = appendGlow(glow, x, y, 2.4, PowerUpColor(p.Kind), 0.3)
	}
	glow = append(glow, particles.RenderData(nil)...)
	r.glowBuf = glow
	r.DrawGlowSprites(glow)

	r.drawHUD(s, fbW, fbH)
}

func appendGlow(buf []float32, x, y, size float64, c RGB, brightness float32) []float32 {
	return append(buf,
		float32(x), float32(y), float32(size),
		float32(c.R)/255.0*brightness,
		float32(c.G)/255.0*brightness,
		float32(c.B)/255.0*brightness,
		1, 0,
	)
}

// drawHUD queues the score line and active-effect countdowns; the caller
// flushes text once per frame.
func (r *Renderer) drawHUD(s *Session, fbW, fbH int) {
	line := fmt.Sprintf("Score: %d   Speed: %d", s.Score, s.Speed)
	if s.Multiplier > 1 {
		line += fmt.Sprintf("   x%d", s.Multiplier)
	}
	r.DrawString(line, 12, 8, 2, Palette.Text)

	// Active effects, right-aligned, one per line.
	y := 8
	for kind := PowerUpKind(0); kind < powerUpKindCount; kind++ {
		left := s.PowerUps.Remaining(kind)
		if left == 0 {
			continue
		}
		secs := float64(left) / float64(s.Speed)
		text := fmt.Sprintf("%s %.1fs", kind, secs)
		r.DrawString(text, fbW-TextWidth(text, 2)-12, y, 2, PowerUpColor(kind))
		y += FontCellH*2 + 4
	}
}
