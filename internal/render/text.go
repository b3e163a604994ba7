package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"termlife/internal/core"
)

// Terminal control sequences.
const (
	EnterAltScreen = "\x1b[?1049h"
	ExitAltScreen  = "\x1b[?1049l"
	ClearScreen    = "\x1b[2J\x1b[H"
)

// Mode selects the glyphs used for live and dead cells.
type Mode int

const (
	// ModePlain draws live cells as 'O' and dead cells as blanks.
	ModePlain Mode = iota
	// ModeAlt draws '@' and '.'.
	ModeAlt
	// ModeColor draws a green 'O' and a dark gray '.'.
	ModeColor
)

var modeNames = map[string]Mode{
	"plain": ModePlain,
	"0":     ModePlain,
	"alt":   ModeAlt,
	"ascii": ModeAlt,
	"1":     ModeAlt,
	"color": ModeColor,
	"ansi":  ModeColor,
	"2":     ModeColor,
}

// ParseMode maps a view name to a Mode. Unknown names fall back to ModePlain.
func ParseMode(s string) Mode {
	if m, ok := modeNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return m
	}
	return ModePlain
}

func (m Mode) String() string {
	switch m {
	case ModeAlt:
		return "alt"
	case ModeColor:
		return "color"
	default:
		return "plain"
	}
}

// Glyphs returns the strings drawn for a live and a dead cell.
func (m Mode) Glyphs() (alive, dead string) {
	switch m {
	case ModeAlt:
		return "@", "."
	case ModeColor:
		return "\x1b[32mO\x1b[0m", "\x1b[90m.\x1b[0m"
	default:
		return "O", " "
	}
}

// Renderer writes boards as rows of glyphs.
type Renderer struct {
	alive, dead string
	history     bool
}

// NewRenderer returns a Renderer for mode. In history mode frames are appended
// to the transcript instead of clearing the screen first.
func NewRenderer(mode Mode, history bool) *Renderer {
	r := &Renderer{history: history}
	r.alive, r.dead = mode.Glyphs()
	return r
}

// Render writes b to w, one line per row.
func (r *Renderer) Render(w io.Writer, b *core.Board) error {
	bw := bufio.NewWriter(w)
	cells := b.Cells()
	for row := 0; row < b.H; row++ {
		for col := 0; col < b.W; col++ {
			if cells[b.Index(row, col)] {
				bw.WriteString(r.alive)
			} else {
				bw.WriteString(r.dead)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Frame writes one generation: a screen clear (outside history mode), the
// generation header and the board.
func (r *Renderer) Frame(w io.Writer, gen int, b *core.Board) error {
	if !r.history {
		if _, err := io.WriteString(w, ClearScreen); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Generation: %d\n", gen); err != nil {
		return err
	}
	return r.Render(w, b)
}

// Final writes the closing summary shown after the loop stops.
func (r *Renderer) Final(w io.Writer, b *core.Board) error {
	if _, err := io.WriteString(w, "Final Generation:\n"); err != nil {
		return err
	}
	return r.Render(w, b)
}
