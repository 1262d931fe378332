//go:build linux

package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/warthog618/go-gpiocdev"
)

const gpiodConsumer = "ledshow"

type gpiodLine struct {
	chip *gpiocdev.Chip
	line *gpiocdev.Line
}

// Gpiod drives the output lines through the Linux GPIO character device.
type Gpiod struct {
	lines []gpiodLine
}

// NewGpiod requests each named line as an output, initially low. When
// chipPath is empty the likely chips are scanned in order (Pi kernels can
// expose the header GPIOs on different gpiochip numbers). A line that
// cannot be found, or is busy, aborts construction and releases whatever
// was already requested; the error names the line.
func NewGpiod(chipPath string, names []string) (*Gpiod, error) {
	d := &Gpiod{lines: make([]gpiodLine, 0, len(names))}
	for i, name := range names {
		l, err := requestLine(chipPath, name)
		if err != nil {
			_ = d.Close()
			return nil, fmt.Errorf("line %d (%s): %w", i, name, err)
		}
		log.Info().Int("line", i).Str("name", name).Msg("output line initialized")
		d.lines = append(d.lines, l)
	}
	return d, nil
}

func requestLine(chipPath, name string) (gpiodLine, error) {
	candidates := []string{chipPath}
	if chipPath == "" {
		candidates = []string{"/dev/gpiochip0", "/dev/gpiochip4"}
		entries, _ := os.ReadDir("/dev")
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), "gpiochip") {
				candidates = append(candidates, filepath.Join("/dev", e.Name()))
			}
		}
	}

	for _, path := range candidates {
		chip, err := gpiocdev.NewChip(path)
		if err != nil {
			continue
		}
		offset, err := chip.FindLine(name)
		if err != nil {
			_ = chip.Close()
			continue
		}
		line, err := chip.RequestLine(offset, gpiocdev.AsOutput(0), gpiocdev.WithConsumer(gpiodConsumer))
		if err != nil {
			_ = chip.Close()
			continue
		}
		return gpiodLine{chip: chip, line: line}, nil
	}
	return gpiodLine{}, fmt.Errorf("gpio line %q not found (or busy)", name)
}

func (d *Gpiod) Set(index int, on bool) {
	if index < 0 || index >= len(d.lines) {
		return
	}
	v := 0
	if on {
		v = 1
	}
	if err := d.lines[index].line.SetValue(v); err != nil {
		log.Warn().Err(err).Int("line", index).Msg("gpio write failed")
	}
}

func (d *Gpiod) AllOff() {
	for i := range d.lines {
		d.Set(i, false)
	}
}

func (d *Gpiod) AllOn() {
	for i := range d.lines {
		d.Set(i, true)
	}
}

func (d *Gpiod) Sleep(dur time.Duration) {
	if dur <= 0 {
		return
	}
	time.Sleep(dur)
}

func (d *Gpiod) Close() error {
	var first error
	for _, l := range d.lines {
		_ = l.line.SetValue(0)
		if err := l.line.Close(); err != nil && first == nil {
			first = err
		}
		_ = l.chip.Close()
	}
	d.lines = nil
	return first
}
