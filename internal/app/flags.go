package app

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"termlife/internal/core"
	"termlife/internal/life"
	"termlife/internal/patterns"
	"termlife/internal/render"
	"termlife/internal/sim"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Pattern   string        `json:"pattern"`
	Load      string        `json:"load"`
	History   bool          `json:"history"`
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	View      string        `json:"view"`
	Delay     time.Duration `json:"-"`
	Rule      string        `json:"rule"`
	StatePath string        `json:"state"`
	SaveEvery int           `json:"save_every"`
	Seed      int64         `json:"seed"`
	Workers   int           `json:"workers"`
	NoWrap    bool          `json:"no_wrap"`
	Scale     int           `json:"scale"`

	ConfigFile string `json:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Pattern:   patterns.Default,
		Width:     80,
		Height:    30,
		View:      "color",
		Delay:     sim.DefaultDelay,
		Rule:      core.Conway.String(),
		StatePath: "game_of_life_state.txt",
		SaveEvery: sim.DefaultSaveEvery,
		Workers:   1,
		Scale:     8,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "starting pattern (line, glider, random)")
	fs.StringVar(&c.Load, "load", c.Load, "load the starting board from a saved state file")
	fs.BoolVar(&c.History, "history", c.History, "keep a scrolling transcript instead of the alternate screen")
	fs.IntVar(&c.Width, "width", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "board height in cells")
	fs.StringVar(&c.View, "view", c.View, "cell glyphs: plain, alt or color")
	fs.DurationVar(&c.Delay, "delay", c.Delay, "initial delay between generations")
	fs.StringVar(&c.Rule, "rule", c.Rule, "birth/survival rule in B/S notation")
	fs.StringVar(&c.StatePath, "state", c.StatePath, "state file written every -save-every generations (empty disables)")
	fs.IntVar(&c.SaveEvery, "save-every", c.SaveEvery, "generations between state saves (0 disables)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random pattern (0 picks one from the clock)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row bands advanced in parallel")
	fs.BoolVar(&c.NoWrap, "no-wrap", c.NoWrap, "start with bounded edges instead of wraparound")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier for the window viewer")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "JSON file with default settings; flags override it")
}

// Parse builds a Config from defaults, the optional -config file and args,
// in increasing order of precedence.
func Parse(name string, args []string, output io.Writer) (*Config, error) {
	c := NewConfig()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if c.ConfigFile != "" {
		file := NewConfig()
		if err := LoadFile(c.ConfigFile, file); err != nil {
			return nil, err
		}
		// Parse again on top of the file so explicit flags win.
		fs = flag.NewFlagSet(name, flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		file.Bind(fs)
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		c = file
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile overlays the JSON settings in path onto c. The delay is written as
// a duration string such as "150ms".
func LoadFile(path string, c *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	raw := struct {
		*Config
		Delay string `json:"delay"`
	}{Config: c}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if raw.Delay != "" {
		d, err := time.ParseDuration(raw.Delay)
		if err != nil {
			return fmt.Errorf("parse config %s: delay: %w", path, err)
		}
		c.Delay = d
	}
	return nil
}

// Validate rejects settings the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("board size %dx%d must be positive", c.Width, c.Height))
	}
	if c.Delay <= 0 {
		errs = append(errs, fmt.Errorf("delay %v must be positive", c.Delay))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers %d must be at least 1", c.Workers))
	}
	if c.SaveEvery < 0 {
		errs = append(errs, fmt.Errorf("save-every %d must not be negative", c.SaveEvery))
	}
	if _, err := core.ParseRule(c.Rule); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Size returns the board dimensions.
func (c *Config) Size() core.Size { return core.Size{W: c.Width, H: c.Height} }

// Mode returns the terminal glyph mode.
func (c *Config) Mode() render.Mode { return render.ParseMode(c.View) }

// RuleSet parses the configured rule.
func (c *Config) RuleSet() (core.Rule, error) { return core.ParseRule(c.Rule) }

// EffectiveSeed returns Seed, or a clock-derived seed when Seed is zero.
func (c *Config) EffectiveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// NewEngine builds the transition engine described by c.
func (c *Config) NewEngine() (*life.Engine, error) {
	rule, err := c.RuleSet()
	if err != nil {
		return nil, err
	}
	eng := life.New(rule)
	eng.SetWorkers(c.Workers)
	eng.SetWrap(!c.NoWrap)
	return eng, nil
}

// SimOptions returns the loop options described by c.
func (c *Config) SimOptions(out io.Writer) sim.Options {
	return sim.Options{
		Delay:     c.Delay,
		SaveEvery: c.SaveEvery,
		StatePath: c.StatePath,
		Out:       out,
		Renderer:  render.NewRenderer(c.Mode(), c.History),
	}
}
