package game

type RGB struct {
	R, G, B uint8
}

// Palette holds the fixed game colors.
var Palette = struct {
	Background RGB
	Board      RGB
	BoardAlt   RGB
	Snake      RGB
	SnakeGlow  RGB
	Invincible RGB
	Food       RGB
	FoodShine  RGB
	Obstacle   RGB
	Text       RGB
	TextDim    RGB
	Title      RGB
	Danger     RGB
	Entry      RGB
}{
	Background: RGB{R: 12, G: 14, B: 18},
	Board:      RGB{R: 22, G: 26, B: 32},
	BoardAlt:   RGB{R: 27, G: 31, B: 38},
	Snake:      RGB{R: 0, G: 200, B: 0},
	SnakeGlow:  RGB{R: 0, G: 255, B: 0},
	Invincible: RGB{R: 0, G: 255, B: 255},
	Food:       RGB{R: 200, G: 0, B: 0},
	FoodShine:  RGB{R: 255, G: 128, B: 128},
	Obstacle:   RGB{R: 100, G: 100, B: 100},
	Text:       RGB{R: 255, G: 255, B: 255},
	TextDim:    RGB{R: 150, G: 150, B: 150},
	Title:      RGB{R: 0, G: 220, B: 120},
	Danger:     RGB{R: 220, G: 40, B: 40},
	Entry:      RGB{R: 80, G: 140, B: 255},
}

// PowerUpColor returns the display color for a power-up kind. The same
// color drives the pickup box, its glow, and the collection particles.
func PowerUpColor(kind PowerUpKind) RGB {
	switch kind {
	case PowerUpSpeedBoost:
		return RGB{R: 255, G: 255, B: 0}
	case PowerUpInvincibility:
		return RGB{R: 0, G: 255, B: 255}
	case PowerUpScoreMultiplier:
		return RGB{R: 255, G: 0, B: 255}
	case PowerUpMagnet:
		return RGB{R: 0, G: 255, B: 0}
	case PowerUpShrink:
		return RGB{R: 255, G: 165, B: 0}
	}
	return RGB{R: 255, G: 255, B: 255}
}
