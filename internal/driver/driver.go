package driver

import "time"

// Driver abstracts the four binary output lines and the show's clock.
// The core never touches hardware except through this contract.
//
// Set with an out-of-range index is a documented no-op, not an error:
// every call site uses fixed in-range indices, so there is nothing to
// recover from. Runtime write failures on hardware backends are logged
// and dropped for the same reason. Sleep with a non-positive duration
// returns immediately.
type Driver interface {
	// Set drives exactly one line.
	Set(index int, on bool)
	// AllOff drives every line low.
	AllOff()
	// AllOn drives every line high.
	AllOn()
	// Sleep blocks the calling goroutine for d.
	Sleep(d time.Duration)
	// Close releases the lines, leaving them low.
	Close() error
}
