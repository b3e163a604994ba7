package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"termlife/internal/app"
	"termlife/internal/command"
	"termlife/internal/patterns"
	"termlife/internal/render"
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !cfg.History {
		fmt.Fprint(os.Stdout, render.EnterAltScreen)
	}

	s := sim.New(eng, board, cfg.SimOptions(os.Stdout))
	last := s.Run(ctx, commands)

	if !cfg.History {
		fmt.Fprint(os.Stdout, render.ExitAltScreen)
	}
	if err := render.NewRenderer(cfg.Mode(), true).Final(os.Stdout, last); err != nil {
		log.Printf("render final generation: %v", err)
	}
}
