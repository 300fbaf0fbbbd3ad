/*
 * Copyright (C) 2023 by Jason Figge
 */

package game

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestRunNotRunningDoesNothing(t *testing.T) {
	c := NewGameContext(DefaultConfig(), false)
	d := &fakeDriver{events: []Event{{Kind: EventKeyDown, Key: KeyUp}}}

	Run(d, c)

	if d.presents != 0 || len(d.delays) != 0 || len(d.events) != 1 {
		t.Errorf("Expected no frames, got %d presents, %d delays, %d events left", d.presents, len(d.delays), len(d.events))
	}
	if c.Ball() != (Body{X: 20, Y: 20, Width: 15, Height: 15, VelX: 300, VelY: 300}) {
		t.Errorf("Expected ball still set up, got %+v", c.Ball())
	}
}

func TestRunStopsOnEscape(t *testing.T) {
	c := NewGameContext(DefaultConfig(), true)
	d := &fakeDriver{}
	d.onPresent = func(d *fakeDriver) {
		if d.presents == 3 {
			d.events = append(d.events, Event{Kind: EventKeyDown, Key: KeyEscape})
		}
	}

	Run(d, c)

	// The frame that reads the quit still updates and draws.
	if d.presents != 4 {
		t.Errorf("Expected 4 frames, got %d", d.presents)
	}
	if c.Running() {
		t.Error("Expected context to be stopped")
	}
}

func TestRunPacesEveryFrame(t *testing.T) {
	c := NewGameContext(DefaultConfig(), true)
	d := &fakeDriver{}
	d.onPresent = func(d *fakeDriver) {
		if d.presents == 10 {
			d.events = append(d.events, Event{Kind: EventQuit})
		}
	}

	Run(d, c)

	if len(d.delays) != 11 {
		t.Fatalf("Expected 11 delays, got %d", len(d.delays))
	}
	for i, ms := range d.delays {
		if ms != 16 {
			t.Errorf("Delay %d: expected 16ms, got %d", i, ms)
		}
	}
	if d.now != 11*16 {
		t.Errorf("Expected clock at %d, got %d", 11*16, d.now)
	}
}

func TestRunAppliesInputBeforeUpdate(t *testing.T) {
	c := NewGameContext(DefaultConfig(), true)
	d := &fakeDriver{events: []Event{{Kind: EventKeyDown, Key: KeyDown}}}
	d.onPresent = func(d *fakeDriver) { d.events = append(d.events, Event{Kind: EventQuit}) }

	Run(d, c)

	// Two frames: the key frame and the one that reads the quit.
	want := float32(250 + 400*0.032)
	if got := c.LeftPaddle().Y; !near(got, want) {
		t.Errorf("Expected left paddle y %v after two frames, got %v", want, got)
	}
	if got := d.fills[1].rect.Y; got != 262 {
		t.Errorf("Expected left paddle drawn at y 262, got %d", got)
	}
}

func TestRunLogsTransitions(t *testing.T) {
	var buf bytes.Buffer
	c := NewGameContext(DefaultConfig(), true)
	c.Logger = log.New(&buf, "", 0)
	d := &fakeDriver{events: []Event{{Kind: EventQuit}}}

	Run(d, c)

	out := buf.String()
	if !strings.Contains(out, "running") || !strings.Contains(out, "stopping") {
		t.Errorf("Expected running and stopping in log, got %q", out)
	}
}
