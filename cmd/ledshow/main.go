package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"periph.io/x/host/v3"

	"github.com/example/ledshow/internal/config"
	"github.com/example/ledshow/internal/diagnostics"
	"github.com/example/ledshow/internal/driver"
	"github.com/example/ledshow/internal/driver/console"
	"github.com/example/ledshow/internal/show"
)

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "path to config.yaml")
		driverFlag = flag.String("driver", "", "driver: gpiod | periph | console (overrides config)")
		simOnly    = flag.Bool("sim-only", false, "force console simulation (no hardware output)")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	cfg := config.Default()
	if c, err := config.Load(*configPath); err != nil {
		log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; proceeding with defaults")
	} else {
		cfg = c
	}
	if *driverFlag != "" {
		cfg.Driver = *driverFlag
	}
	if *simOnly {
		cfg.Driver = "console"
	}

	log.Info().Str("driver", cfg.Driver).Msg("led light show starting")

	drv, err := openDriver(cfg)
	if err != nil {
		d := diagnostics.OutputInit(cfg.Driver, err)
		log.Error().
			Str("code", d.Code).
			Strs("likely_causes", d.LikelyCauses).
			Strs("suggested_fixes", d.SuggestedFixes).
			Msg(d.Summary + ": " + d.Detail)
		os.Exit(1)
	}
	defer drv.Close()
	log.Info().Msg("all output lines initialized")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log.Info().Msg("beginning light show sequence")
	player := show.NewPlayer(show.Default(), drv)
	if err := player.Run(ctx); err != nil {
		log.Info().Int("passes", player.Passes()).Msg("light show stopped")
	}
}

// openDriver performs the startup validation: every output line must be
// found and configured as an output, initially off, or the show does not
// start.
func openDriver(cfg config.Config) (driver.Driver, error) {
	switch cfg.Driver {
	case "gpiod":
		return driver.NewGpiod(cfg.Gpiod.Chip, cfg.Gpiod.Lines)
	case "periph":
		if _, err := host.Init(); err != nil {
			return nil, err
		}
		return driver.NewPeriph(cfg.Periph.Pins)
	default:
		return console.New(cfg.Console.Speed), nil
	}
}
