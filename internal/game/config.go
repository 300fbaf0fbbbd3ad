/*
 * Copyright (C) 2023 by Jason Figge
 */

package game

const (
	WindowWidth  = 800
	WindowHeight = 600
	FPS          = 60
	BoxWidth     = 20

	BallStartX    = 20
	BallStartY    = 20
	BallSize      = 15
	BallStartVelX = 300
	BallStartVelY = 300

	PaddleWidth  = 20
	PaddleHeight = 100
	PaddleSpeed  = 400
)

// Config holds the dimensions and speeds the game is set up with.
type Config struct {
	WindowWidth  int32
	WindowHeight int32
	FPS          int32
	BoxWidth     int32

	BallX, BallY       float32
	BallSize           float32
	BallVelX, BallVelY float32

	PaddleWidth  float32
	PaddleHeight float32
	PaddleSpeed  float32
}

func DefaultConfig() Config {
	return Config{
		WindowWidth:  WindowWidth,
		WindowHeight: WindowHeight,
		FPS:          FPS,
		BoxWidth:     BoxWidth,
		BallX:        BallStartX,
		BallY:        BallStartY,
		BallSize:     BallSize,
		BallVelX:     BallStartVelX,
		BallVelY:     BallStartVelY,
		PaddleWidth:  PaddleWidth,
		PaddleHeight: PaddleHeight,
		PaddleSpeed:  PaddleSpeed,
	}
}

// FrameTargetTime is the per-frame budget in whole milliseconds.
func (c Config) FrameTargetTime() int64 {
	return int64(1000 / c.FPS)
}
