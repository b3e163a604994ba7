package ui

import (
	"strconv"
	"time"

	"termlife/internal/command"
	"termlife/internal/sim"
)

// Status is the snapshot of simulation state shown on the HUD.
type Status struct {
	Rule       string
	Generation int
	Population int
	Delay      time.Duration
	Wrap       bool
	Paused     bool
}

// StatusOf captures the current state of s.
func StatusOf(s *sim.Simulation) Status {
	ctl := s.Control()
	return Status{
		Rule:       s.Engine().Rule().String(),
		Generation: s.Generation(),
		Population: s.Board().Population(),
		Delay:      ctl.Delay,
		Wrap:       s.Engine().Wrap(),
		Paused:     ctl.Paused,
	}
}

// Row is one labelled HUD line. Minus and Plus name the commands bound to the
// row's buttons; empty means no button.
type Row struct {
	Label string
	Value string
	Minus command.Command
	Plus  command.Command
}

// Rows lays out the HUD lines for st.
func (st Status) Rows() []Row {
	wrap, wrapCmd := "off", command.ToggleWrap
	if st.Wrap {
		wrap = "on"
	}
	state, toggle := "running", command.Pause
	if st.Paused {
		state, toggle = "paused", command.Resume
	}
	rows := []Row{
		{Label: "Generation", Value: strconv.Itoa(st.Generation)},
		{Label: "Population", Value: strconv.Itoa(st.Population)},
		{Label: "Delay", Value: strconv.FormatInt(st.Delay.Milliseconds(), 10) + " ms", Minus: command.Faster, Plus: command.Slower},
		{Label: "Wrap", Value: wrap, Plus: wrapCmd},
		{Label: "State", Value: state, Plus: toggle},
	}
	if st.Paused {
		rows = append(rows, Row{Label: "Step", Value: "", Plus: command.Step})
	}
	return rows
}

// Title returns the HUD heading.
func (st Status) Title() string { return "life " + st.Rule }
