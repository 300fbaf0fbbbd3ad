/*
 * Copyright (C) 2023 by Jason Figge
 */

package graphics

import (
	"github.com/veandco/go-sdl2/sdl"

	"pong/internal/game"
)

// translate maps an SDL event onto the game's event set. Anything the game
// does not care about, including no event at all, becomes EventNone.
func translate(event sdl.Event) game.Event {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return game.Event{Kind: game.EventQuit}
	case *sdl.KeyboardEvent:
		return keyboardEvent(e)
	}
	return game.Event{Kind: game.EventNone}
}

func keyboardEvent(event *sdl.KeyboardEvent) game.Event {
	var kind game.EventKind
	switch event.Type {
	case sdl.KEYDOWN:
		kind = game.EventKeyDown
	case sdl.KEYUP:
		kind = game.EventKeyUp
	default:
		return game.Event{Kind: game.EventNone}
	}
	return game.Event{Kind: kind, Key: key(event.Keysym.Sym)}
}

func key(sym sdl.Keycode) game.Key {
	switch sym {
	case sdl.K_ESCAPE:
		return game.KeyEscape
	case sdl.K_UP:
		return game.KeyUp
	case sdl.K_DOWN:
		return game.KeyDown
	case sdl.K_w:
		return game.KeyW
	case sdl.K_s:
		return game.KeyS
	}
	return game.KeyOther
}
