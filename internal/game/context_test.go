/*
 * Copyright (C) 2023 by Jason Figge
 */

package game

import "testing"

func TestSetupPlacesBodies(t *testing.T) {
	c := NewGameContext(DefaultConfig(), true)

	ball := c.Ball()
	want := Body{X: 20, Y: 20, Width: 15, Height: 15, VelX: 300, VelY: 300}
	if ball != want {
		t.Errorf("Expected ball %+v, got %+v", want, ball)
	}

	left := c.LeftPaddle()
	want = Body{X: BoxWidth, Y: WindowHeight/2 - 50, Width: 20, Height: 100}
	if left != want {
		t.Errorf("Expected left paddle %+v, got %+v", want, left)
	}

	right := c.RightPaddle()
	want = Body{X: WindowWidth - 20 - BoxWidth, Y: WindowHeight/2 - 50, Width: 20, Height: 100}
	if right != want {
		t.Errorf("Expected right paddle %+v, got %+v", want, right)
	}
}

func TestSetupUsesIntegerHalfHeight(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WindowHeight = 301
	c := NewGameContext(cfg, true)

	if got := c.LeftPaddle().Y; got != 100 {
		t.Errorf("Expected paddle y 100 for odd height, got %v", got)
	}
}

func TestQuitClearsRunning(t *testing.T) {
	c := NewGameContext(DefaultConfig(), true)
	if !c.Running() {
		t.Fatal("Expected context to start running")
	}
	c.Quit()
	if c.Running() {
		t.Error("Expected context to stop after Quit")
	}
	c.Quit()
	if c.Running() {
		t.Error("Expected Quit to be idempotent")
	}
}

func TestNilLoggerIsTolerated(t *testing.T) {
	c := NewGameContext(DefaultConfig(), true)
	c.Logger = nil
	c.Quit()
}
