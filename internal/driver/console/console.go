package console

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/example/ledshow/internal/pattern"
)

// Driver renders each latched frame as a "[*--*]" line on a writer instead
// of driving hardware. Sleeps are divided by Speed; Speed 0 disables
// sleeping entirely so a simulated show runs as fast as it prints.
type Driver struct {
	Speed float64
	Out   io.Writer

	lines [pattern.Lines]bool
}

func New(speed float64) *Driver {
	return &Driver{Speed: speed, Out: os.Stdout}
}

func (d *Driver) Set(index int, on bool) {
	if index < 0 || index >= pattern.Lines {
		return
	}
	d.lines[index] = on
}

func (d *Driver) AllOff() {
	for i := range d.lines {
		d.lines[i] = false
	}
}

func (d *Driver) AllOn() {
	for i := range d.lines {
		d.lines[i] = true
	}
}

func (d *Driver) Sleep(dur time.Duration) {
	var f pattern.Frame
	for i, on := range d.lines {
		if on {
			f |= 1 << i
		}
	}
	fmt.Fprintf(d.Out, "%s %s\n", f, dur)
	if dur <= 0 || d.Speed <= 0 {
		return
	}
	time.Sleep(time.Duration(float64(dur) / d.Speed))
}

func (d *Driver) Close() error { return nil }
