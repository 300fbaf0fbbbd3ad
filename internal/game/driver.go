/*
 * Copyright (C) 2023 by Jason Figge
 */

package game

type EventKind int

const (
	EventNone EventKind = iota
	EventQuit
	EventKeyDown
	EventKeyUp
)

type Key int

const (
	KeyOther Key = iota
	KeyEscape
	KeyUp
	KeyDown
	KeyW
	KeyS
)

// Event is a single input event delivered by a display driver.
type Event struct {
	Kind EventKind
	Key  Key
}

type Rect struct {
	X, Y, W, H int32
}

type Color struct {
	R, G, B, A uint8
}

var (
	Black = Color{R: 0, G: 0, B: 0, A: 0xff}
	White = Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// EventSource delivers input without blocking. When nothing is queued it
// returns an Event of kind EventNone.
type EventSource interface {
	PollEvent() Event
}

// Clock is a monotonic millisecond tick counter with a blocking delay.
type Clock interface {
	Ticks() uint32
	Delay(ms uint32)
}

// Canvas draws filled rectangles and presents finished frames.
type Canvas interface {
	Clear(c Color)
	FillRect(c Color, r Rect)
	Present()
}

// Driver is everything the game needs from the window system.
type Driver interface {
	EventSource
	Clock
	Canvas
}
