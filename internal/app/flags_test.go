package app

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"termlife/internal/core"
	"termlife/internal/render"
)

func TestParseDefaults(t *testing.T) {
	c, err := Parse("gol", nil, io.Discard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Size() != (core.Size{W: 80, H: 30}) {
		t.Fatalf("size=%v", c.Size())
	}
	if c.Pattern != "line" || c.Delay != 200*time.Millisecond || c.SaveEvery != 10 {
		t.Fatalf("unexpected defaults %+v", c)
	}
	if c.StatePath != "game_of_life_state.txt" {
		t.Fatalf("state path %q", c.StatePath)
	}
	if c.Mode() != render.ModeColor {
		t.Fatalf("mode=%s", c.Mode())
	}
	eng, err := c.NewEngine()
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if !eng.Wrap() || eng.Rule() != core.Conway {
		t.Fatal("default engine should be toroidal B3/S23")
	}
}

func TestParseFlags(t *testing.T) {
	args := []string{"-pattern", "glider", "-load", "saved.txt", "-history", "-view", "alt",
		"-delay", "75ms", "-no-wrap", "-workers", "3", "-width", "40", "-height", "12"}
	c, err := Parse("gol", args, io.Discard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Pattern != "glider" || c.Load != "saved.txt" || !c.History {
		t.Fatalf("unexpected config %+v", c)
	}
	if c.Delay != 75*time.Millisecond || c.Mode() != render.ModeAlt {
		t.Fatalf("delay=%v mode=%s", c.Delay, c.Mode())
	}
	eng, err := c.NewEngine()
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if eng.Wrap() {
		t.Fatal("-no-wrap should start bounded")
	}
	opts := c.SimOptions(io.Discard)
	if opts.Delay != 75*time.Millisecond || opts.StatePath != c.StatePath {
		t.Fatalf("sim options %+v", opts)
	}
}

func TestConfigFileWithFlagOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gol.json")
	body := `{"pattern":"random","seed":9,"delay":"150ms","width":20,"height":10,"view":"plain"}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	c, err := Parse("gol", []string{"-config", path, "-width", "33"}, io.Discard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Pattern != "random" || c.Seed != 9 || c.Delay != 150*time.Millisecond {
		t.Fatalf("file settings not applied: %+v", c)
	}
	if c.Width != 33 || c.Height != 10 {
		t.Fatalf("size=%dx%d, expected flag width to win", c.Width, c.Height)
	}
	if c.Mode() != render.ModePlain {
		t.Fatalf("mode=%s", c.Mode())
	}
}

func TestConfigFileErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Parse("gol", []string{"-config", filepath.Join(dir, "missing.json")}, io.Discard); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file err=%v", err)
	}
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"delay":"soon"}`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Parse("gol", []string{"-config", bad}, io.Discard); err == nil {
		t.Fatal("expected an error for an unparsable delay")
	}
}

func TestValidate(t *testing.T) {
	cases := [][]string{
		{"-width", "0"},
		{"-delay", "0s"},
		{"-workers", "0"},
		{"-save-every", "-1"},
		{"-rule", "B3"},
	}
	for _, args := range cases {
		if _, err := Parse("gol", args, io.Discard); err == nil {
			t.Fatalf("Parse(%v) should fail validation", args)
		}
	}
	if _, err := Parse("gol", []string{"-rule", "B36/S23"}, io.Discard); err != nil {
		t.Fatalf("HighLife rule rejected: %v", err)
	}
}

func TestParseHelp(t *testing.T) {
	if _, err := Parse("gol", []string{"-h"}, io.Discard); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("err=%v, expected flag.ErrHelp", err)
	}
}

func TestEffectiveSeed(t *testing.T) {
	c := NewConfig()
	c.Seed = 5
	if c.EffectiveSeed() != 5 {
		t.Fatal("explicit seed should be kept")
	}
	c.Seed = 0
	if c.EffectiveSeed() == 0 {
		t.Fatal("zero seed should be replaced")
	}
}
