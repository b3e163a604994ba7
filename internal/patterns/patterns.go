// Package patterns provides the starting boards: built-in patterns registered
// with core and boards restored from a saved state file.
package patterns

import (
	"fmt"

	"termlife/internal/core"
	"termlife/internal/store"
)

// Default names the pattern used for unknown names and failed loads.
const Default = "line"

// RandomDensity is the probability of a cell starting alive in "random".
const RandomDensity = 0.2

// Initialize builds the starting board. With a non-empty loadPath the board is
// read from that file; if reading fails the default pattern is returned along
// with the load error so the caller can report it. Otherwise name selects a
// registered pattern and unknown names fall back to the default.
func Initialize(name, loadPath string, size core.Size, seed int64) (*core.Board, error) {
	if loadPath != "" {
		b, err := store.Load(loadPath, size)
		if err != nil {
			return Build(Default, size, seed), fmt.Errorf("using %q pattern: %w", Default, err)
		}
		return b, nil
	}
	return Build(name, size, seed), nil
}

// Build allocates a board of the given size and seeds it with pattern name.
func Build(name string, size core.Size, seed int64) *core.Board {
	b := core.NewBoard(size.W, size.H)
	p, ok := core.Patterns()[name]
	if !ok {
		p = cross
	}
	p(b, core.NewRNG(seed))
	return b
}

// cross draws an eight-cell vertical bar down the middle column and an
// eight-cell horizontal bar along the middle row, both spanning indices 6-13.
func cross(b *core.Board, _ *core.RNG) {
	midCol, midRow := b.W/2, b.H/2
	for i := 6; i <= 13; i++ {
		b.Set(i, midCol, true)
		b.Set(midRow, i, true)
	}
}

func glider(b *core.Board, _ *core.RNG) {
	if b.W <= 2 || b.H <= 2 {
		return
	}
	b.Set(0, 1, true)
	b.Set(1, 2, true)
	b.Set(2, 0, true)
	b.Set(2, 1, true)
	b.Set(2, 2, true)
}

func random(b *core.Board, rng *core.RNG) {
	core.FillChance(rng, b.Cells(), RandomDensity)
}

func init() {
	core.Register(Default, cross)
	core.Register("cross", cross)
	core.Register("glider", glider)
	core.Register("random", random)
}
