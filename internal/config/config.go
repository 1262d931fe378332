package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/example/ledshow/internal/pattern"
)

type GpiodCfg struct {
	Chip  string   `yaml:"chip"`  // e.g. /dev/gpiochip0; empty = scan
	Lines []string `yaml:"lines"` // kernel line names, e.g. GPIO17
}

type PeriphCfg struct {
	Pins []string `yaml:"pins"` // periph.io pin names
}

type ConsoleCfg struct {
	Speed float64 `yaml:"speed"` // time scale; 0 = no sleeping
}

type Config struct {
	Driver string `yaml:"driver"` // "gpiod" | "periph" | "console"

	Gpiod   GpiodCfg   `yaml:"gpiod,omitempty"`
	Periph  PeriphCfg  `yaml:"periph,omitempty"`
	Console ConsoleCfg `yaml:"console,omitempty"`
}

// Default is the configuration used when no file is given: a real-time
// console simulation, with Raspberry Pi header pins prefilled for the
// hardware drivers.
func Default() Config {
	pins := []string{"GPIO17", "GPIO27", "GPIO22", "GPIO23"}
	return Config{
		Driver:  "console",
		Gpiod:   GpiodCfg{Lines: pins},
		Periph:  PeriphCfg{Pins: pins},
		Console: ConsoleCfg{Speed: 1},
	}
}

// Load reads a YAML config, fills defaults and validates it.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}

	switch cfg.Driver {
	case "gpiod":
		if len(cfg.Gpiod.Lines) != pattern.Lines {
			return Config{}, fmt.Errorf("gpiod.lines must name exactly %d lines, got %d", pattern.Lines, len(cfg.Gpiod.Lines))
		}
	case "periph":
		if len(cfg.Periph.Pins) != pattern.Lines {
			return Config{}, fmt.Errorf("periph.pins must name exactly %d pins, got %d", pattern.Lines, len(cfg.Periph.Pins))
		}
	case "console":
		if cfg.Console.Speed < 0 {
			return Config{}, fmt.Errorf("console.speed must be >= 0, got %g", cfg.Console.Speed)
		}
	default:
		return Config{}, fmt.Errorf("unknown driver: %q", cfg.Driver)
	}
	return cfg, nil
}
