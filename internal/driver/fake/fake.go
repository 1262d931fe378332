package fake

import (
	"time"

	"github.com/example/ledshow/internal/pattern"
)

// Applied is one latched frame: the line states at the moment the player
// slept, and how long it held them.
type Applied struct {
	Frame pattern.Frame
	Delay time.Duration
}

// Driver records every call the player makes without touching hardware or
// real time, useful for headless tests.
type Driver struct {
	lines [pattern.Lines]bool

	Applied []Applied
	AllOffs int
	AllOns  int
	Slept   time.Duration
	Closed  bool
}

func (d *Driver) Set(index int, on bool) {
	if index < 0 || index >= pattern.Lines {
		return
	}
	d.lines[index] = on
}

func (d *Driver) AllOff() {
	d.AllOffs++
	for i := range d.lines {
		d.lines[i] = false
	}
}

func (d *Driver) AllOn() {
	d.AllOns++
	for i := range d.lines {
		d.lines[i] = true
	}
}

func (d *Driver) Sleep(dur time.Duration) {
	if dur < 0 {
		dur = 0
	}
	d.Slept += dur
	d.Applied = append(d.Applied, Applied{Frame: d.Frame(), Delay: dur})
}

// Frame returns the current line states as a frame value.
func (d *Driver) Frame() pattern.Frame {
	var f pattern.Frame
	for i, on := range d.lines {
		if on {
			f |= 1 << i
		}
	}
	return f
}

func (d *Driver) Close() error {
	d.Closed = true
	return nil
}
