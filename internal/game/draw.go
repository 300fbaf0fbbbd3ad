/*
 * Copyright (C) 2023 by Jason Figge
 */

package game

const columnSpacing = float32(1.93)

// OnDraw renders the current state and presents the frame. It never
// modifies the context.
func (c *GameContext) OnDraw(canvas Canvas) {
	canvas.Clear(Black)
	canvas.FillRect(White, c.ball.Rect())
	canvas.FillRect(White, c.leftPaddle.Rect())
	canvas.FillRect(White, c.rightPaddle.Rect())
	c.drawColumn(canvas)
	canvas.Present()
}

func (c *GameContext) drawColumn(canvas Canvas) {
	for _, rect := range c.ColumnRects() {
		canvas.FillRect(White, rect)
	}
}

// ColumnRects lists the squares of the centre column, top to bottom.
func (c *GameContext) ColumnRects() []Rect {
	box := c.Config.BoxWidth
	bounds := Rect{
		X: c.Config.WindowWidth/2 - box/2,
		Y: box,
		W: box,
		H: c.Config.WindowHeight,
	}
	var rects []Rect
	for y := float32(bounds.Y); y < float32(bounds.H); y += columnSpacing * float32(bounds.W) {
		rects = append(rects, Rect{X: bounds.X, Y: int32(y), W: bounds.W, H: bounds.W})
	}
	return rects
}
