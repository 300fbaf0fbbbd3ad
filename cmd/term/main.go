/*
 * Copyright (C) 2023 by Jason Figge
 */

package main

import (
	"log"
	"os"

	"pong/internal/game"
	"pong/internal/terminal"
)

func main() {
	logger := log.New(os.Stderr, "pong: ", log.LstdFlags)
	cfg := game.DefaultConfig()

	screen, err := terminal.NewScreen(cfg)
	if err != nil {
		logger.Println(err)
		return
	}

	c := game.NewGameContext(cfg, true)
	game.Run(screen, c)

	screen.Fini()
}
