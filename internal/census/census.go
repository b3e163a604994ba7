// Package census runs many random soups headlessly and summarises how each one
// evolves.
package census

import (
	"context"
	"sort"
	"sync"

	"termlife/internal/core"
	"termlife/internal/life"
	"termlife/internal/patterns"
)

// Options configures a census run.
type Options struct {
	Size    core.Size
	Steps   int
	Workers int
	Rule    core.Rule
	Wrap    bool
}

// Result describes one soup.
type Result struct {
	Seed  int64
	Final int
	Peak  int
	// Settled is the generation at which the board died out or stopped
	// changing, or -1 if it was still changing after all steps.
	Settled int
	Extinct bool
}

// Run simulates one random soup per seed using a pool of workers. Results are
// returned in seed order. A cancelled context stops handing out new seeds.
func Run(ctx context.Context, opts Options, seeds []int64) []Result {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int64)
	results := make(chan Result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- Soup(opts, seed)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for _, seed := range seeds {
			select {
			case jobs <- seed:
			case <-ctx.Done():
				return
			}
		}
	}()

	var all []Result
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Seed < all[j].Seed })
	return all
}

// Soup runs a single random board for opts.Steps generations.
func Soup(opts Options, seed int64) Result {
	eng := life.New(opts.Rule)
	eng.SetWrap(opts.Wrap)

	cur := patterns.Build("random", opts.Size, seed)
	nxt := core.NewBoard(cur.W, cur.H)

	res := Result{Seed: seed, Settled: -1}
	pop := cur.Population()
	res.Peak = pop
	if pop == 0 {
		res.Settled, res.Extinct = 0, true
		return res
	}
	for gen := 1; gen <= opts.Steps; gen++ {
		eng.Advance(cur, nxt)
		still := nxt.Equal(cur)
		cur, nxt = nxt, cur

		pop = cur.Population()
		if pop > res.Peak {
			res.Peak = pop
		}
		if pop == 0 {
			res.Settled, res.Extinct = gen, true
			break
		}
		if still {
			res.Settled = gen
			break
		}
	}
	res.Final = cur.Population()
	return res
}

// Seeds returns n consecutive seeds starting at base.
func Seeds(base int64, n int) []int64 {
	if n < 0 {
		n = 0
	}
	out := make([]int64, n)
	for i := range out {
		out[i] = base + int64(i)
	}
	return out
}

// ByPeak orders results by descending peak population, then by seed.
func ByPeak(rs []Result) {
	sort.Slice(rs, func(i, j int) bool {
		if rs[i].Peak != rs[j].Peak {
			return rs[i].Peak > rs[j].Peak
		}
		return rs[i].Seed < rs[j].Seed
	})
}

// Totals aggregates a set of results.
type Totals struct {
	Runs     int
	Extinct  int
	Settled  int
	Changing int
	MaxPeak  int
}

// Summarise counts outcomes across rs.
func Summarise(rs []Result) Totals {
	t := Totals{Runs: len(rs)}
	for _, r := range rs {
		switch {
		case r.Extinct:
			t.Extinct++
		case r.Settled >= 0:
			t.Settled++
		default:
			t.Changing++
		}
		if r.Peak > t.MaxPeak {
			t.MaxPeak = r.Peak
		}
	}
	return t
}
