package pattern

import "time"

// KnightRider scans a single lit line back and forth: 0,1,2,3,2,1 per
// cycle. The bounce endpoints are not doubled, so consecutive cycles chain
// seamlessly at 2*Lines-2 = 6 steps each.
var KnightRider = Pattern{
	Name: "knight-rider",
	Steps: func(cycles int) []Step {
		steps := make([]Step, 0, 6*max(cycles, 0))
		for c := 0; c < cycles; c++ {
			for i := 0; i < Lines; i++ {
				steps = append(steps, Step{Frame: 1 << i, Delay: Medium})
			}
			for i := Lines - 2; i >= 1; i-- {
				steps = append(steps, Step{Frame: 1 << i, Delay: Medium})
			}
		}
		return steps
	},
}

// Wave fills the lines in order 0..3 without clearing the previous ones,
// then empties them in the same order. 8 steps per cycle, ending all-off.
var Wave = Pattern{
	Name: "wave",
	Steps: func(cycles int) []Step {
		steps := make([]Step, 0, 2*Lines*max(cycles, 0))
		for c := 0; c < cycles; c++ {
			var f Frame
			for i := 0; i < Lines; i++ {
				f |= 1 << i
				steps = append(steps, Step{Frame: f, Delay: Slow})
			}
			for i := 0; i < Lines; i++ {
				f &^= 1 << i
				steps = append(steps, Step{Frame: f, Delay: Slow})
			}
		}
		return steps
	},
}

// AlternateFlash toggles between the even lines (0,2) and the odd lines (1,3).
var AlternateFlash = Pattern{
	Name: "alternate-flash",
	Steps: func(cycles int) []Step {
		steps := make([]Step, 0, 2*max(cycles, 0))
		for c := 0; c < cycles; c++ {
			steps = append(steps,
				Step{Frame: 0b0101, Delay: Slow},
				Step{Frame: 0b1010, Delay: Slow},
			)
		}
		return steps
	},
}

// Converge toggles between the outer pair (0,3) and the inner pair (1,2).
// Applying a full frame clears the other pair, so no separate all-off
// step is needed between the two.
var Converge = Pattern{
	Name: "converge",
	Steps: func(cycles int) []Step {
		steps := make([]Step, 0, 2*max(cycles, 0))
		for c := 0; c < cycles; c++ {
			steps = append(steps,
				Step{Frame: 0b1001, Delay: Slow},
				Step{Frame: 0b0110, Delay: Slow},
			)
		}
		return steps
	},
}

// BinaryCounter counts 0..15, bit i of the count driving line i directly.
var BinaryCounter = Pattern{
	Name: "binary-counter",
	Steps: func(cycles int) []Step {
		steps := make([]Step, 0, 16*max(cycles, 0))
		for c := 0; c < cycles; c++ {
			for count := 0; count < 16; count++ {
				steps = append(steps, Step{Frame: Frame(count), Delay: Medium})
			}
		}
		return steps
	},
}

// Sparkle emits a pseudo-random twinkle from a 4-bit LFSR with taps at
// bits 0 and 2. The register reseeds to 0b0001 on every invocation, so a
// given iteration count always replays the same sequence.
var Sparkle = Pattern{
	Name: "sparkle",
	Steps: func(iterations int) []Step {
		steps := make([]Step, 0, max(iterations, 0))
		reg := Frame(0b0001)
		for i := 0; i < iterations; i++ {
			feedback := (reg ^ reg>>2) & 1
			reg = (reg>>1 | feedback<<3) & frameMask
			if reg == 0 {
				// The recurrence has an all-zero fixed point; kick the
				// register back to a visible state.
				reg = 0b0101
			}
			steps = append(steps, Step{Frame: reg, Delay: Fast})
		}
		return steps
	},
}

// Breathe approximates a brightness ramp by software duty cycling: five
// on/off pulses per level, the on hold growing from 0 to 9 time units and
// back down from 10 to 1, the off hold taking the remainder of each
// 10-unit slice. The on hold at level 0 is a zero-duration step. The ramp
// is deliberately uneven at the extremes; it reproduces the observed
// hardware behavior rather than a smoothed curve.
var Breathe = Pattern{
	Name: "breathe",
	Steps: func(cycles int) []Step {
		steps := make([]Step, 0, 200*max(cycles, 0))
		pulse := func(brightness int) {
			for p := 0; p < 5; p++ {
				steps = append(steps,
					Step{Frame: frameMask, Delay: time.Duration(brightness) * breathUnit},
					Step{Frame: 0, Delay: time.Duration(10-brightness) * breathUnit},
				)
			}
		}
		for c := 0; c < cycles; c++ {
			for brightness := 0; brightness < 10; brightness++ {
				pulse(brightness)
			}
			for brightness := 10; brightness > 0; brightness-- {
				pulse(brightness)
			}
		}
		return steps
	},
}

// Cascade rotates a pair of adjacent lit lines around the four positions,
// wrapping from line 3 back to line 0.
var Cascade = Pattern{
	Name: "cascade",
	Steps: func(cycles int) []Step {
		steps := make([]Step, 0, Lines*max(cycles, 0))
		for c := 0; c < cycles; c++ {
			for i := 0; i < Lines; i++ {
				f := Frame(1<<i | 1<<((i+1)%Lines))
				steps = append(steps, Step{Frame: f, Delay: Fast})
			}
		}
		return steps
	},
}
