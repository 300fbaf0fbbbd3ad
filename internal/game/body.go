/*
 * Copyright (C) 2023 by Jason Figge
 */

package game

// Body is an axis-aligned rectangle with a velocity in pixels per second.
type Body struct {
	X, Y          float32
	Width, Height float32
	VelX, VelY    float32
}

func (b Body) Top() float32    { return b.Y }
func (b Body) Bottom() float32 { return b.Y + b.Height }
func (b Body) Left() float32   { return b.X }
func (b Body) Right() float32  { return b.X + b.Width }

// Step advances the body by its velocity over dt seconds.
func (b *Body) Step(dt float32) {
	b.X += b.VelX * dt
	b.Y += b.VelY * dt
}

// OverlapsVertically reports whether the vertical spans of b and o touch.
// Horizontal position is not considered.
func (b Body) OverlapsVertically(o Body) bool {
	return b.Bottom() >= o.Top() && b.Top() <= o.Bottom()
}

// Rect truncates the body to integer pixels.
func (b Body) Rect() Rect {
	return Rect{
		X: int32(b.X),
		Y: int32(b.Y),
		W: int32(b.Width),
		H: int32(b.Height),
	}
}
