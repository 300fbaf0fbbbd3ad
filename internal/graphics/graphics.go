/*
 * Copyright (C) 2023 by Jason Figge
 */

package graphics

import (
	"errors"
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"pong/internal/game"
)

var (
	ErrInit     = errors.New("error initializing SDL")
	ErrWindow   = errors.New("error creating SDL window")
	ErrRenderer = errors.New("error creating SDL renderer")
)

// Window is a borderless SDL window and its renderer. It implements
// game.Driver.
type Window struct {
	window     *sdl.Window
	renderer   *sdl.Renderer
	destroyers []func()
}

// Open brings up SDL, a centred borderless window of width x height and a
// renderer for it. A Window is returned even when an error is, holding
// whatever was created, so Destroy must always be called.
func Open(title string, width, height int32) (*Window, error) {
	w := &Window{}

	if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
		return w, fmt.Errorf("%w: %v", ErrInit, err)
	}
	w.AddDestroyer(sdl.Quit)

	window, err := sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		width,
		height,
		sdl.WINDOW_BORDERLESS,
	)
	if err != nil {
		return w, fmt.Errorf("%w: %v", ErrWindow, err)
	}
	w.window = window
	w.AddDestroyer(func() { ErrorTrap(window.Destroy()) })

	renderer, err := sdl.CreateRenderer(window, -1, 0)
	if err != nil {
		return w, fmt.Errorf("%w: %v", ErrRenderer, err)
	}
	w.renderer = renderer
	w.AddDestroyer(func() { ErrorTrap(renderer.Destroy()) })

	return w, nil
}

func (w *Window) Renderer() *sdl.Renderer {
	return w.renderer
}

// AddDestroyer registers fn to run on Destroy. Destroyers run in reverse
// order of registration.
func (w *Window) AddDestroyer(fn func()) {
	w.destroyers = append(w.destroyers, fn)
}

// Destroy releases the renderer, the window and SDL itself.
func (w *Window) Destroy() {
	for i := len(w.destroyers) - 1; i >= 0; i-- {
		w.destroyers[i]()
	}
	w.destroyers = nil
	w.renderer = nil
	w.window = nil
}

func (w *Window) PollEvent() game.Event {
	return translate(sdl.PollEvent())
}

func (w *Window) Ticks() uint32 {
	return sdl.GetTicks()
}

func (w *Window) Delay(ms uint32) {
	sdl.Delay(ms)
}

func (w *Window) Clear(c game.Color) {
	ErrorTrap(w.renderer.SetDrawColor(c.R, c.G, c.B, c.A))
	ErrorTrap(w.renderer.Clear())
}

func (w *Window) FillRect(c game.Color, r game.Rect) {
	ErrorTrap(w.renderer.SetDrawColor(c.R, c.G, c.B, c.A))
	ErrorTrap(w.renderer.FillRect(&sdl.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}))
}

func (w *Window) Present() {
	w.renderer.Present()
}

// ErrorTrap panics on a failed SDL call.
func ErrorTrap(err error) {
	if err != nil {
		panic(err)
	}
}
