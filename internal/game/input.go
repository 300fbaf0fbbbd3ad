/*
 * Copyright (C) 2023 by Jason Figge
 */

package game

// Events applies one input event and reports whether it was recognised.
// Only paddle velocities and the running flag are touched.
func (c *GameContext) Events(event Event) bool {
	processed := false
	switch event.Kind {
	case EventQuit:
		c.Quit()
		processed = true
	case EventKeyDown:
		processed = c.keyDown(event.Key)
	case EventKeyUp:
		processed = c.keyUp(event.Key)
	}
	return processed
}

// ProcessInput consumes at most one pending event from src.
func (c *GameContext) ProcessInput(src EventSource) {
	c.Events(src.PollEvent())
}

func (c *GameContext) keyDown(key Key) bool {
	speed := c.Config.PaddleSpeed
	switch key {
	case KeyEscape:
		c.Quit()
	case KeyUp:
		c.leftPaddle.VelY = -speed
	case KeyDown:
		c.leftPaddle.VelY = speed
	case KeyW:
		c.rightPaddle.VelY = -speed
	case KeyS:
		c.rightPaddle.VelY = speed
	default:
		return false
	}
	return true
}

func (c *GameContext) keyUp(key Key) bool {
	switch key {
	case KeyUp, KeyDown:
		c.leftPaddle.VelY = 0
	case KeyW, KeyS:
		c.rightPaddle.VelY = 0
	default:
		return false
	}
	return true
}
