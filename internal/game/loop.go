/*
 * Copyright (C) 2023 by Jason Figge
 */

package game

// Run drives the context until it stops: one input event, one update and one
// draw per pass. A context that is not running returns immediately.
func Run(driver Driver, c *GameContext) {
	if c.Running() {
		c.logger().Println("running")
	}
	for c.Running() {
		c.ProcessInput(driver)
		c.OnUpdate(driver)
		c.OnDraw(driver)
	}
}
