package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"

	"termlife/internal/census"
	"termlife/internal/core"
)

func main() {
	runs := flag.Int("runs", 200, "number of random soups")
	steps := flag.Int("steps", 500, "generations to simulate per soup")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("width", 80, "board width in cells")
	height := flag.Int("height", 30, "board height in cells")
	seed := flag.Int64("seed", 1, "first seed")
	rule := flag.String("rule", core.Conway.String(), "rule in B/S notation")
	noWrap := flag.Bool("no-wrap", false, "treat the board edges as dead")
	top := flag.Int("top", 5, "number of results to list")
	flag.Parse()

	r, err := core.ParseRule(*rule)
	if err != nil {
		log.Fatalf("rule: %v", err)
	}
	if *width < 1 || *height < 1 {
		log.Fatalf("board must be at least 1x1, got %dx%d", *width, *height)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := census.Options{
		Size:    core.Size{W: *width, H: *height},
		Steps:   *steps,
		Workers: *workers,
		Rule:    r,
		Wrap:    !*noWrap,
	}
	fmt.Printf("Running %d soups (%dx%d, %s, %d workers, %d steps)\n", *runs, *width, *height, r, *workers, *steps)

	start := time.Now()
	all := census.Run(ctx, opts, census.Seeds(*seed, *runs))
	elapsed := time.Since(start)

	census.ByPeak(all)
	fmt.Printf("\nTop %d results (elapsed %s):\n", *top, elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		res := all[i]
		fmt.Printf("%2d) seed=%d peak=%d final=%d settled=%s\n", i+1, res.Seed, res.Peak, res.Final, settled(res))
	}

	t := census.Summarise(all)
	fmt.Printf("\nTotals: runs=%d extinct=%d settled=%d changing=%d maxPeak=%d\n",
		t.Runs, t.Extinct, t.Settled, t.Changing, t.MaxPeak)
}

func settled(r census.Result) string {
	switch {
	case r.Extinct:
		return fmt.Sprintf("extinct@%d", r.Settled)
	case r.Settled >= 0:
		return fmt.Sprintf("still@%d", r.Settled)
	default:
		return "changing"
	}
}
