package census

import (
	"context"
	"slices"
	"testing"

	"termlife/internal/core"
)

func TestRunMatchesSequentialSoups(t *testing.T) {
	opts := Options{Size: core.Size{W: 16, H: 12}, Steps: 60, Workers: 4, Rule: core.Conway, Wrap: true}
	seeds := Seeds(100, 12)
	got := Run(context.Background(), opts, seeds)
	if len(got) != len(seeds) {
		t.Fatalf("got %d results, expected %d", len(got), len(seeds))
	}
	for i, seed := range seeds {
		want := Soup(opts, seed)
		if got[i] != want {
			t.Fatalf("seed %d: got %+v, expected %+v", seed, got[i], want)
		}
	}
}

func TestTinyBoundedSoupsSettle(t *testing.T) {
	// Every pattern on a bounded 2x2 board dies or becomes a block within two
	// generations.
	opts := Options{Size: core.Size{W: 2, H: 2}, Steps: 5, Workers: 2, Rule: core.Conway}
	for _, r := range Run(context.Background(), opts, Seeds(0, 50)) {
		if r.Settled < 0 || r.Settled > 2 {
			t.Fatalf("seed %d settled at %d", r.Seed, r.Settled)
		}
		if r.Extinct != (r.Final == 0) {
			t.Fatalf("seed %d: extinct=%v final=%d", r.Seed, r.Extinct, r.Final)
		}
		if r.Final != 0 && r.Final != 4 {
			t.Fatalf("seed %d: final=%d, expected 0 or a block", r.Seed, r.Final)
		}
		if r.Peak < r.Final {
			t.Fatalf("seed %d: peak %d below final %d", r.Seed, r.Peak, r.Final)
		}
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	opts := Options{Size: core.Size{W: 8, H: 8}, Steps: 10, Workers: 2, Rule: core.Conway}
	got := Run(ctx, opts, Seeds(0, 1000))
	if len(got) == 1000 {
		t.Fatalf("cancelled run processed every seed")
	}
}

func TestSummariseAndOrder(t *testing.T) {
	rs := []Result{
		{Seed: 1, Peak: 10, Settled: 3, Extinct: true},
		{Seed: 2, Peak: 30, Final: 4, Settled: 7},
		{Seed: 3, Peak: 30, Final: 12, Settled: -1},
		{Seed: 4, Peak: 5, Final: 5, Settled: -1},
	}
	tot := Summarise(rs)
	want := Totals{Runs: 4, Extinct: 1, Settled: 1, Changing: 2, MaxPeak: 30}
	if tot != want {
		t.Fatalf("got %+v, expected %+v", tot, want)
	}

	ByPeak(rs)
	var order []int64
	for _, r := range rs {
		order = append(order, r.Seed)
	}
	if !slices.Equal(order, []int64{2, 3, 1, 4}) {
		t.Fatalf("order=%v", order)
	}
}

func TestSeeds(t *testing.T) {
	if got := Seeds(5, 3); !slices.Equal(got, []int64{5, 6, 7}) {
		t.Fatalf("got %v", got)
	}
	if got := Seeds(5, -1); len(got) != 0 {
		t.Fatalf("got %v", got)
	}
}
