//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"termlife/internal/app"
	"termlife/internal/command"
	"termlife/internal/patterns"
	"termlife/internal/sim"
)

func main() {
	cfg, err := app.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	board, err := patterns.Initialize(cfg.Pattern, cfg.Load, cfg.Size(), cfg.EffectiveSeed())
	if err != nil {
		log.Printf("Failed to load board: %v", err)
	}

	eng, err := cfg.NewEngine()
	if err != nil {
		log.Fatalf("engine: %v", err)
	}

	commands := command.NewQueue()
	go func() {
		if err := command.Listen(os.Stdin, commands, os.Stdout); err != nil {
			log.Printf("command listener stopped: %v", err)
		}
	}()

	s := sim.New(eng, board, cfg.SimOptions(os.Stdout))
	game := app.New(s, commands, cfg.Scale)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("termlife " + eng.Rule().String())
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
