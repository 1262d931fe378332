//go:build !linux

package driver

import (
	"fmt"
	"time"
)

// Gpiod is only available on Linux; this stub keeps the driver selection
// in cmd/ compiling everywhere.
type Gpiod struct{}

func NewGpiod(chipPath string, names []string) (*Gpiod, error) {
	return nil, fmt.Errorf("gpiod driver unsupported on this platform")
}

func (d *Gpiod) Set(index int, on bool) {}
func (d *Gpiod) AllOff()                {}
func (d *Gpiod) AllOn()                 {}
func (d *Gpiod) Sleep(time.Duration)    {}
func (d *Gpiod) Close() error           { return nil }
