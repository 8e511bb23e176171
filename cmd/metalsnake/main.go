package main

import "metalsnake/internal/game"

func main() {
	game.RunDesktop()
}
