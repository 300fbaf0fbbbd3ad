/*
 * Copyright (C) 2023 by Jason Figge
 */

package terminal

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"pong/internal/game"
)

const (
	// A key counts as released if no repeat arrives within these windows.
	// The first repeat of a held key comes later than the ones after it.
	firstRepeatWindow = 500 * time.Millisecond
	repeatWindow      = 100 * time.Millisecond

	eventBuffer = 64
	blockRune   = '█'
)

var ErrScreen = errors.New("error creating terminal screen")

// TimeProvider supplies the wall clock the tick counter is measured on.
type TimeProvider interface {
	Now() time.Time
}

type systemTime struct{}

func (systemTime) Now() time.Time { return time.Now() }

type heldKey struct {
	last    time.Time
	repeats int
}

// Screen is a game.Driver drawing on a tcell screen.
type Screen struct {
	screen tcell.Screen
	width  int32
	height int32

	clock TimeProvider
	sleep func(time.Duration)
	start time.Time

	events chan tcell.Event
	done   chan struct{}
	held   map[game.Key]*heldKey
}

// NewScreen opens the controlling terminal.
func NewScreen(cfg game.Config) (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScreen, err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScreen, err)
	}
	return New(screen, cfg, systemTime{}), nil
}

// New wraps an initialised tcell screen. Ticks are measured on clock from
// the moment New returns.
func New(screen tcell.Screen, cfg game.Config, clock TimeProvider) *Screen {
	s := &Screen{
		screen: screen,
		width:  cfg.WindowWidth,
		height: cfg.WindowHeight,
		clock:  clock,
		sleep:  time.Sleep,
		start:  clock.Now(),
		events: make(chan tcell.Event, eventBuffer),
		done:   make(chan struct{}),
		held:   make(map[game.Key]*heldKey),
	}
	screen.HideCursor()
	go s.pollLoop()
	return s
}

// pollLoop forwards tcell events until the screen is finalised.
func (s *Screen) pollLoop() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

// Fini stops input polling and restores the terminal.
func (s *Screen) Fini() {
	close(s.done)
	s.screen.Fini()
}

func (s *Screen) PollEvent() game.Event {
	select {
	case ev := <-s.events:
		return s.translate(ev)
	default:
	}
	return s.release()
}

func (s *Screen) translate(event tcell.Event) game.Event {
	switch e := event.(type) {
	case *tcell.EventKey:
		return s.keyEvent(e)
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return game.Event{Kind: game.EventNone}
}

func (s *Screen) keyEvent(event *tcell.EventKey) game.Event {
	var key game.Key
	switch event.Key() {
	case tcell.KeyCtrlC:
		return game.Event{Kind: game.EventQuit}
	case tcell.KeyEscape:
		key = game.KeyEscape
	case tcell.KeyUp:
		key = game.KeyUp
	case tcell.KeyDown:
		key = game.KeyDown
	case tcell.KeyRune:
		switch event.Rune() {
		case 'w', 'W':
			key = game.KeyW
		case 's', 'S':
			key = game.KeyS
		}
	}

	if key != game.KeyOther && key != game.KeyEscape {
		now := s.clock.Now()
		if h, ok := s.held[key]; ok {
			h.last = now
			h.repeats++
		} else {
			s.held[key] = &heldKey{last: now}
		}
	}
	return game.Event{Kind: game.EventKeyDown, Key: key}
}

// release reports the first held key whose repeats have stopped.
func (s *Screen) release() game.Event {
	now := s.clock.Now()
	for _, key := range []game.Key{game.KeyUp, game.KeyDown, game.KeyW, game.KeyS} {
		h, ok := s.held[key]
		if !ok {
			continue
		}
		window := repeatWindow
		if h.repeats == 0 {
			window = firstRepeatWindow
		}
		if now.Sub(h.last) > window {
			delete(s.held, key)
			return game.Event{Kind: game.EventKeyUp, Key: key}
		}
	}
	return game.Event{Kind: game.EventNone}
}

func (s *Screen) Ticks() uint32 {
	return uint32(s.clock.Now().Sub(s.start).Milliseconds())
}

func (s *Screen) Delay(ms uint32) {
	s.sleep(time.Duration(ms) * time.Millisecond)
}

func (s *Screen) Clear(c game.Color) {
	s.screen.Fill(' ', tcell.StyleDefault.Background(color(c)))
}

// FillRect paints every cell the rectangle touches.
func (s *Screen) FillRect(c game.Color, r game.Rect) {
	cols, rows := s.screen.Size()
	x0, x1 := scale(r.X, r.X+r.W, s.width, cols)
	y0, y1 := scale(r.Y, r.Y+r.H, s.height, rows)

	style := tcell.StyleDefault.Foreground(color(c)).Background(color(c))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.screen.SetContent(x, y, blockRune, nil, style)
		}
	}
}

func (s *Screen) Present() {
	s.screen.Show()
}

// scale maps the pixel span [from,to) of an axis size pixels long onto an
// axis of cells, clipped to the grid. A non-empty span covers at least one cell.
func scale(from, to, size int32, cells int) (int, int) {
	if size <= 0 || cells <= 0 || to <= from {
		return 0, 0
	}
	lo := int(int64(from) * int64(cells) / int64(size))
	hi := int((int64(to)*int64(cells) + int64(size) - 1) / int64(size))
	if lo < 0 {
		lo = 0
	}
	if hi > cells {
		hi = cells
	}
	return lo, hi
}

func color(c game.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
