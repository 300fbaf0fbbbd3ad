/*
 * Copyright (C) 2023 by Jason Figge
 */

package game

import (
	"io"
	"log"
)

// GameContext holds everything that changes from frame to frame: the three
// bodies, the running flag and the timestamp of the previous frame. It is
// owned by the goroutine running the loop and is not safe for concurrent use.
type GameContext struct {
	Config Config
	Logger *log.Logger

	ball          Body
	leftPaddle    Body
	rightPaddle   Body
	running       bool
	lastFrameTime uint32
}

// NewGameContext returns a context that is already set up. running reports
// whether the window system came up; a context created with running false
// goes through the loop zero times.
func NewGameContext(cfg Config, running bool) *GameContext {
	c := &GameContext{
		Config:  cfg,
		Logger:  log.New(io.Discard, "", 0),
		running: running,
	}
	c.Setup()
	return c
}

// Setup places the ball and both paddles at their starting positions.
func (c *GameContext) Setup() {
	cfg := c.Config
	c.ball = Body{
		X:      cfg.BallX,
		Y:      cfg.BallY,
		Width:  cfg.BallSize,
		Height: cfg.BallSize,
		VelX:   cfg.BallVelX,
		VelY:   cfg.BallVelY,
	}
	c.leftPaddle = Body{
		X:      float32(cfg.BoxWidth),
		Y:      float32(cfg.WindowHeight/2) - cfg.PaddleHeight/2,
		Width:  cfg.PaddleWidth,
		Height: cfg.PaddleHeight,
	}
	c.rightPaddle = Body{
		X:      float32(cfg.WindowWidth) - cfg.PaddleWidth - float32(cfg.BoxWidth),
		Y:      float32(cfg.WindowHeight/2) - cfg.PaddleHeight/2,
		Width:  cfg.PaddleWidth,
		Height: cfg.PaddleHeight,
	}
}

func (c *GameContext) Running() bool {
	return c.running
}

// Quit clears the running flag. The loop notices at the top of its next pass.
func (c *GameContext) Quit() {
	if c.running {
		c.logger().Println("stopping")
	}
	c.running = false
}

func (c *GameContext) Ball() Body        { return c.ball }
func (c *GameContext) LeftPaddle() Body  { return c.leftPaddle }
func (c *GameContext) RightPaddle() Body { return c.rightPaddle }

func (c *GameContext) logger() *log.Logger {
	if c.Logger == nil {
		return log.New(io.Discard, "", 0)
	}
	return c.Logger
}
