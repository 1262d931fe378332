package show

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/example/ledshow/internal/driver"
	"github.com/example/ledshow/internal/pattern"
)

// Entry pairs a pattern with its fixed repeat count.
type Entry struct {
	Pattern pattern.Pattern
	Cycles  int
}

// Show is an ordered, fixed list of entries replayed forever. It is
// constructed once at startup and never mutated.
type Show struct {
	Entries []Entry
}

// Default returns the stock light show.
func Default() Show {
	return Show{Entries: []Entry{
		{pattern.KnightRider, 3},
		{pattern.Wave, 2},
		{pattern.AlternateFlash, 6},
		{pattern.Converge, 4},
		{pattern.BinaryCounter, 2},
		{pattern.Sparkle, 50},
		{pattern.Breathe, 2},
		{pattern.Cascade, 8},
	}}
}

const (
	patternPause  = 500 * time.Millisecond
	restartPause  = 1000 * time.Millisecond
	finaleFlashes = 10
	finaleHold    = 50 * time.Millisecond
)

// State enumerates player states.
type State string

const (
	Idle    State = "idle"
	Playing State = "playing"
)

// Player owns the show's iteration cursor and plays entries against the
// injected driver. All timing goes through the driver's Sleep, so tests
// can substitute a recording driver and assert on frames without real
// time passing.
type Player struct {
	State State

	show   Show
	drv    driver.Driver
	idx    int
	passes int
}

func NewPlayer(s Show, d driver.Driver) *Player {
	return &Player{State: Idle, show: s, drv: d}
}

// Passes reports how many full show passes have completed.
func (p *Player) Passes() int { return p.passes }

// Play runs a single pattern invocation: every step is latched onto the
// driver and held for its delay, then the lines are forced off. A zero
// cycle count emits no steps and only the final all-off.
func (p *Player) Play(e Entry) {
	log.Info().Str("pattern", e.Pattern.Name).Int("cycles", e.Cycles).Msg("playing")
	for _, st := range e.Pattern.Steps(e.Cycles) {
		p.apply(st.Frame)
		p.drv.Sleep(st.Delay)
	}
	p.drv.AllOff()
}

func (p *Player) apply(f pattern.Frame) {
	for i := 0; i < pattern.Lines; i++ {
		p.drv.Set(i, f.On(i))
	}
}

func (p *Player) finale() {
	log.Info().Msg("grand finale")
	for i := 0; i < finaleFlashes; i++ {
		p.drv.AllOn()
		p.drv.Sleep(finaleHold)
		p.drv.AllOff()
		p.drv.Sleep(finaleHold)
	}
}

func (p *Player) pass(ctx context.Context) error {
	for p.idx = 0; p.idx < len(p.show.Entries); p.idx++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.Play(p.show.Entries[p.idx])
		p.drv.Sleep(patternPause)
	}
	p.finale()
	p.passes++
	log.Info().Int("pass", p.passes).Msg("restarting show")
	p.drv.Sleep(restartPause)
	return nil
}

// RunOnce plays one full pass: every entry with its inter-pattern pause,
// then the grand finale and the restart pause.
func (p *Player) RunOnce() {
	p.State = Playing
	defer func() { p.State = Idle }()
	_ = p.pass(context.Background())
}

// Run replays the show until ctx is canceled. Cancellation is observed
// only at pattern boundaries; individual sleeps are never interrupted.
// There is no other exit condition.
func (p *Player) Run(ctx context.Context) error {
	p.State = Playing
	defer func() {
		p.State = Idle
		p.drv.AllOff()
	}()
	for {
		if err := p.pass(ctx); err != nil {
			return err
		}
	}
}
