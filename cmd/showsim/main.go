package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/example/ledshow/internal/driver/console"
	"github.com/example/ledshow/internal/pattern"
	"github.com/example/ledshow/internal/show"
)

// showsim replays the show (or a single pattern) on a console driver,
// useful for eyeballing frame sequences without a board attached.
func main() {
	var (
		passes = flag.Int("passes", 1, "number of full show passes to simulate")
		speed  = flag.Float64("speed", 0, "time scale for sleeps; 0 = run flat out")
		name   = flag.String("pattern", "", "play a single pattern instead of the full show")
		cycles = flag.Int("cycles", 2, "repeat count when -pattern is given")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	drv := console.New(*speed)

	if *name != "" {
		p, err := pattern.ByName(*name)
		if err != nil {
			log.Fatal().Err(err).Msg("pattern lookup failed")
		}
		player := show.NewPlayer(show.Show{}, drv)
		player.Play(show.Entry{Pattern: p, Cycles: *cycles})
		return
	}

	player := show.NewPlayer(show.Default(), drv)
	for i := 0; i < *passes; i++ {
		player.RunOnce()
	}
}
