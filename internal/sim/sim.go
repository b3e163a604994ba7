// Package sim runs the generation loop: it applies control commands, renders
// and persists generations and paces the loop with the current delay.
package sim

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"termlife/internal/command"
	"termlife/internal/core"
	"termlife/internal/life"
	"termlife/internal/render"
	"termlife/internal/store"
)

const (
	// DefaultDelay is the pause between generations at startup.
	DefaultDelay = 200 * time.Millisecond
	// DelayStep is how much faster and slower change the delay.
	DelayStep = 50 * time.Millisecond
	// MinDelay is the smallest delay faster will reach.
	MinDelay = DelayStep
	// DefaultSaveEvery is the generation interval between state saves.
	DefaultSaveEvery = 10
	// DefaultPausePoll is how often a paused loop re-checks for commands.
	DefaultPausePoll = 100 * time.Millisecond
)

// Control holds the mutable loop settings changed by commands.
type Control struct {
	Paused bool
	Delay  time.Duration
}

// Source yields queued commands without blocking.
type Source interface {
	TryPop() (command.Command, bool)
}

// Options configures a Simulation. Zero values select the defaults.
type Options struct {
	Delay     time.Duration
	SaveEvery int
	// StatePath is where every SaveEvery-th generation is written. Empty
	// disables saving.
	StatePath string
	PausePoll time.Duration

	Out      io.Writer
	Renderer *render.Renderer
	Logger   *log.Logger
}

// Simulation owns the double-buffered board, the generation counter and the
// control state.
type Simulation struct {
	eng      *life.Engine
	cur, nxt *core.Board
	gen      int
	ctl      Control
	opts     Options

	stepPending bool
	pauseShown  bool

	save  func(path string, b *core.Board) error
	sleep func(ctx context.Context, d time.Duration)
}

// New returns a Simulation starting from board. The board is owned by the
// Simulation from here on.
func New(eng *life.Engine, board *core.Board, opts Options) *Simulation {
	if opts.Delay <= 0 {
		opts.Delay = DefaultDelay
	}
	if opts.PausePoll <= 0 {
		opts.PausePoll = DefaultPausePoll
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Renderer == nil {
		opts.Renderer = render.NewRenderer(render.ModePlain, false)
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Simulation{
		eng:   eng,
		cur:   board,
		nxt:   core.NewBoard(board.W, board.H),
		ctl:   Control{Delay: opts.Delay},
		opts:  opts,
		save:  store.Save,
		sleep: sleep,
	}
}

// Board returns the current generation.
func (s *Simulation) Board() *core.Board { return s.cur }

// Generation returns the number of generations computed so far.
func (s *Simulation) Generation() int { return s.gen }

// Control returns a copy of the control state.
func (s *Simulation) Control() Control { return s.ctl }

// Engine returns the transition engine.
func (s *Simulation) Engine() *life.Engine { return s.eng }

// Apply changes the control state according to c.
func (s *Simulation) Apply(c command.Command) {
	out := s.opts.Out
	switch c {
	case command.Pause:
		if !s.ctl.Paused {
			s.ctl.Paused = true
			s.pauseShown = false
		}
	case command.Resume:
		if s.ctl.Paused {
			s.ctl.Paused = false
			s.stepPending = false
			fmt.Fprintln(out, "Simulation resumed.")
		}
	case command.Faster:
		if s.ctl.Delay-DelayStep >= MinDelay {
			s.ctl.Delay -= DelayStep
			fmt.Fprintf(out, "Speed increased: Delay = %d ms\n", s.ctl.Delay.Milliseconds())
		}
	case command.Slower:
		s.ctl.Delay += DelayStep
		fmt.Fprintf(out, "Speed decreased: Delay = %d ms\n", s.ctl.Delay.Milliseconds())
	case command.ToggleWrap:
		state := "disabled"
		if s.eng.ToggleWrap() {
			state = "enabled"
		}
		fmt.Fprintf(out, "Wraparound is now %s\n", state)
	case command.Step:
		if s.ctl.Paused {
			s.stepPending = true
		}
	}
}

// TakeStep reports and clears a single-step request made while paused.
func (s *Simulation) TakeStep() bool {
	if !s.stepPending {
		return false
	}
	s.stepPending = false
	return true
}

// Tick saves the current generation when it is due and advances the board by
// one generation. Save failures are logged and otherwise ignored.
func (s *Simulation) Tick() {
	if s.opts.StatePath != "" && s.opts.SaveEvery > 0 && s.gen%s.opts.SaveEvery == 0 {
		if err := s.save(s.opts.StatePath, s.cur); err != nil {
			s.opts.Logger.Printf("Failed to save board: %v", err)
		}
	}
	s.eng.Advance(s.cur, s.nxt)
	s.cur, s.nxt = s.nxt, s.cur
	s.gen++
}

// Render writes the current generation as a terminal frame.
func (s *Simulation) Render() {
	if err := s.opts.Renderer.Frame(s.opts.Out, s.gen, s.cur); err != nil {
		s.opts.Logger.Printf("render generation %d: %v", s.gen, err)
	}
}

// Run drives the loop until ctx is cancelled and returns the last board.
// Each iteration consumes at most one command from src.
func (s *Simulation) Run(ctx context.Context, src Source) *core.Board {
	for ctx.Err() == nil {
		if c, ok := src.TryPop(); ok {
			s.Apply(c)
		}

		if s.ctl.Paused {
			if s.TakeStep() {
				s.Render()
				s.Tick()
				continue
			}
			if !s.pauseShown {
				fmt.Fprintln(s.opts.Out, "Simulation paused. Type 'resume' to continue.")
				s.pauseShown = true
			}
			s.sleep(ctx, s.opts.PausePoll)
			continue
		}

		s.Render()
		s.Tick()
		s.sleep(ctx, s.ctl.Delay)
	}
	return s.cur
}

func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
