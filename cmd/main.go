/*
 * Copyright (C) 2023 by Jason Figge
 */

package main

import (
	"log"
	"os"

	"pong/internal/game"
	"pong/internal/graphics"
)

func main() {
	logger := log.New(os.Stderr, "pong: ", log.LstdFlags)
	cfg := game.DefaultConfig()

	// A failed start still runs setup and an empty loop, then exits cleanly.
	window, err := graphics.Open("", cfg.WindowWidth, cfg.WindowHeight)
	if err != nil {
		logger.Println(err)
	}

	c := game.NewGameContext(cfg, err == nil)
	c.Logger = logger
	game.Run(window, c)

	window.Destroy()
}
