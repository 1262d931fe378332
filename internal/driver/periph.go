package driver

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// Periph drives the output lines through periph.io pins. The caller must
// run host.Init before constructing one.
type Periph struct {
	pins []gpio.PinOut
}

// NewPeriph resolves each named pin from the host registry and configures
// it as an output in the inactive (low) state. Any line that cannot be
// resolved or configured aborts construction; the error names the line.
func NewPeriph(names []string) (*Periph, error) {
	pins := make([]gpio.PinOut, 0, len(names))
	for i, name := range names {
		p := gpioreg.ByName(name)
		if p == nil {
			return nil, fmt.Errorf("line %d: no gpio pin named %q", i, name)
		}
		if err := p.Out(gpio.Low); err != nil {
			return nil, fmt.Errorf("line %d (%s): configure as output: %w", i, name, err)
		}
		log.Info().Int("line", i).Str("pin", name).Msg("output line initialized")
		pins = append(pins, p)
	}
	return newPeriphPins(pins), nil
}

// newPeriphPins wraps already-configured pins. Tests use it with
// gpiotest pins.
func newPeriphPins(pins []gpio.PinOut) *Periph {
	return &Periph{pins: pins}
}

func (d *Periph) Set(index int, on bool) {
	if index < 0 || index >= len(d.pins) {
		return
	}
	if err := d.pins[index].Out(gpio.Level(on)); err != nil {
		log.Warn().Err(err).Int("line", index).Msg("gpio write failed")
	}
}

func (d *Periph) AllOff() {
	for i := range d.pins {
		d.Set(i, false)
	}
}

func (d *Periph) AllOn() {
	for i := range d.pins {
		d.Set(i, true)
	}
}

func (d *Periph) Sleep(dur time.Duration) {
	if dur <= 0 {
		return
	}
	time.Sleep(dur)
}

func (d *Periph) Close() error {
	d.AllOff()
	d.pins = nil
	return nil
}
