/*
 * Copyright (C) 2023 by Jason Figge
 */

package game

type fillCall struct {
	color Color
	rect  Rect
}

// fakeDriver replays scripted events and keeps a manual clock that only moves
// when Delay is called or the test advances it.
type fakeDriver struct {
	events   []Event
	now      uint32
	delays   []uint32
	clears   []Color
	fills    []fillCall
	presents int
	// onPresent runs after every frame, letting tests move time along.
	onPresent func(d *fakeDriver)
}

func (d *fakeDriver) PollEvent() Event {
	if len(d.events) == 0 {
		return Event{Kind: EventNone}
	}
	ev := d.events[0]
	d.events = d.events[1:]
	return ev
}

func (d *fakeDriver) Ticks() uint32 { return d.now }

func (d *fakeDriver) Delay(ms uint32) {
	d.delays = append(d.delays, ms)
	d.now += ms
}

func (d *fakeDriver) Advance(ms uint32) { d.now += ms }

func (d *fakeDriver) Clear(c Color) {
	d.clears = append(d.clears, c)
	d.fills = d.fills[:0]
}

func (d *fakeDriver) FillRect(c Color, r Rect) {
	d.fills = append(d.fills, fillCall{color: c, rect: r})
}

func (d *fakeDriver) Present() {
	d.presents++
	if d.onPresent != nil {
		d.onPresent(d)
	}
}
