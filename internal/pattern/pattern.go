package pattern

import (
	"fmt"
	"time"
)

// Lines is the number of output lines driven by every pattern.
const Lines = 4

// Frame is a 4-bit value; bit i (bit 0 = least significant) is the desired
// state of output line i. Bits above bit 3 are never set by any generator.
type Frame uint8

const frameMask Frame = 1<<Lines - 1

// On reports whether line i is lit in the frame.
func (f Frame) On(i int) bool {
	if i < 0 || i >= Lines {
		return false
	}
	return f&(1<<i) != 0
}

// String renders the frame in the "[*--*]" form used by the console driver
// and log output. Line 0 is leftmost.
func (f Frame) String() string {
	b := [Lines + 2]byte{0: '[', Lines + 1: ']'}
	for i := 0; i < Lines; i++ {
		if f.On(i) {
			b[i+1] = '*'
		} else {
			b[i+1] = '-'
		}
	}
	return string(b[:])
}

// Step is one atomic instruction to the player: apply Frame, then hold it
// for Delay. A zero Delay is valid and means no hold at all.
type Step struct {
	Frame Frame
	Delay time.Duration
}

// Delay tiers shared by the generators.
const (
	Fast   = 50 * time.Millisecond
	Medium = 100 * time.Millisecond
	Slow   = 200 * time.Millisecond

	// breathUnit is one software-PWM time slice of the Breathe pattern.
	breathUnit = time.Millisecond
)

// Pattern is a named producer of a finite step sequence. Steps is pure:
// the same cycle count always yields the same sequence, and cycles <= 0
// yields an empty one.
type Pattern struct {
	Name  string
	Steps func(cycles int) []Step
}

// All lists every pattern in show order.
var All = []Pattern{
	KnightRider,
	Wave,
	AlternateFlash,
	Converge,
	BinaryCounter,
	Sparkle,
	Breathe,
	Cascade,
}

// ByName returns the pattern registered under name.
func ByName(name string) (Pattern, error) {
	for _, p := range All {
		if p.Name == name {
			return p, nil
		}
	}
	return Pattern{}, fmt.Errorf("unknown pattern: %s", name)
}
