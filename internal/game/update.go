/*
 * Copyright (C) 2023 by Jason Figge
 */

package game

// OnUpdate advances the simulation by the wall-clock time since the previous
// frame, first sleeping on clock if the frame came in under budget.
func (c *GameContext) OnUpdate(clock Clock) {
	c.pace(clock)

	deltaTime := float32(float64(clock.Ticks()-c.lastFrameTime) / 1000.0)
	c.lastFrameTime = clock.Ticks()

	c.step(deltaTime)
}

func (c *GameContext) pace(clock Clock) {
	target := c.Config.FrameTargetTime()
	timeToWait := target - int64(int32(clock.Ticks()-c.lastFrameTime))
	if timeToWait > 0 && timeToWait <= target {
		clock.Delay(uint32(timeToWait))
	}
}

// step runs one update of dt seconds without touching the clock.
func (c *GameContext) step(dt float32) {
	c.ball.Step(dt)
	c.leftPaddle.Step(dt)
	c.rightPaddle.Step(dt)

	c.bounceWalls()
	c.bouncePaddles()

	c.clampPaddle(&c.leftPaddle)
	c.clampPaddle(&c.rightPaddle)

	c.checkGameOver()
}

func (c *GameContext) bounceWalls() {
	height := float32(c.Config.WindowHeight)
	if c.ball.Top() <= 0 || c.ball.Bottom() >= height {
		c.ball.VelY = -c.ball.VelY
	}
	if c.ball.Left() < 0 {
		c.ball.VelX = -c.ball.VelX
	}
}

// bouncePaddles reflects the ball off every paddle whose vertical band it
// overlaps, wherever the ball is horizontally.
func (c *GameContext) bouncePaddles() {
	for _, paddle := range []*Body{&c.leftPaddle, &c.rightPaddle} {
		if c.ball.OverlapsVertically(*paddle) {
			c.ball.VelX = -c.ball.VelX
		}
	}
}

func (c *GameContext) clampPaddle(paddle *Body) {
	maxY := float32(c.Config.WindowHeight) - paddle.Height
	if paddle.Y <= 0 {
		paddle.Y = 0
	}
	if paddle.Y >= maxY {
		paddle.Y = maxY
	}
}

func (c *GameContext) checkGameOver() {
	if c.ball.Right() > float32(c.Config.WindowWidth) {
		c.ball.X = float32(c.Config.WindowWidth / 2)
		c.ball.Y = float32(c.Config.WindowHeight / 2)
		c.ball.VelX = -c.ball.VelX
		c.ball.VelY = -c.ball.VelY
		c.logger().Printf("ball out at right edge, reset to (%.0f,%.0f)", c.ball.X, c.ball.Y)
	}
}
