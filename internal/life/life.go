// Package life implements the Game of Life transition engine.
package life

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"termlife/internal/core"
)

// Engine computes successive generations under a life-like rule with a
// runtime-toggleable wraparound topology.
type Engine struct {
	rule    core.Rule
	workers int
	wrap    atomic.Bool
}

// New returns an Engine using rule. Wraparound starts enabled.
func New(rule core.Rule) *Engine {
	e := &Engine{rule: rule, workers: 1}
	e.wrap.Store(true)
	return e
}

// Rule returns the engine's transition rule.
func (e *Engine) Rule() core.Rule { return e.rule }

// SetWorkers sets the number of row bands advanced concurrently.
func (e *Engine) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	e.workers = n
}

// Wrap reports whether neighbour lookups use toroidal topology.
func (e *Engine) Wrap() bool { return e.wrap.Load() }

// SetWrap selects toroidal (true) or bounded (false) topology.
func (e *Engine) SetWrap(on bool) { e.wrap.Store(on) }

// ToggleWrap flips the topology and returns the new setting.
func (e *Engine) ToggleWrap() bool {
	for {
		old := e.wrap.Load()
		if e.wrap.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Advance writes the generation following cur into nxt. cur is only read.
// Both boards must share the same dimensions.
func (e *Engine) Advance(cur, nxt *core.Board) {
	if cur.W != nxt.W || cur.H != nxt.H {
		panic("life: Advance called with mismatched board sizes")
	}
	wrap := e.wrap.Load()
	workers := min(e.workers, cur.H)
	if workers <= 1 {
		e.advanceRows(cur, nxt, wrap, 0, cur.H)
		return
	}

	var eg errgroup.Group
	rowsPerWorker := (cur.H + workers - 1) / workers
	for start := 0; start < cur.H; start += rowsPerWorker {
		start, end := start, min(start+rowsPerWorker, cur.H)
		eg.Go(func() error {
			e.advanceRows(cur, nxt, wrap, start, end)
			return nil
		})
	}
	_ = eg.Wait()
}

func (e *Engine) advanceRows(cur, nxt *core.Board, wrap bool, start, end int) {
	src, dst := cur.Cells(), nxt.Cells()
	for row := start; row < end; row++ {
		for col := 0; col < cur.W; col++ {
			idx := cur.Index(row, col)
			dst[idx] = e.rule.Next(src[idx], Neighbors(cur, row, col, wrap))
		}
	}
}

// Neighbors counts live cells among the eight cells adjacent to (row, col).
// With wrap the coordinates fold modulo the board size; without it cells
// beyond the edge are not counted.
func Neighbors(b *core.Board, row, col int, wrap bool) int {
	cells := b.Cells()
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if wrap {
				r, c = b.Wrap(r, c)
			} else if !b.Contains(r, c) {
				continue
			}
			if cells[b.Index(r, c)] {
				n++
			}
		}
	}
	return n
}
