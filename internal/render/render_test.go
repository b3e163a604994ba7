package render

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"termlife/internal/core"
)

func sample() *core.Board {
	b := core.NewBoard(3, 2)
	b.Set(0, 0, true)
	b.Set(1, 2, true)
	return b
}

func TestRenderModes(t *testing.T) {
	cases := []struct {
		mode Mode
		want string
	}{
		{ModePlain, "O  \n  O\n"},
		{ModeAlt, "@..\n..@\n"},
		{ModeColor, "\x1b[32mO\x1b[0m\x1b[90m.\x1b[0m\x1b[90m.\x1b[0m\n\x1b[90m.\x1b[0m\x1b[90m.\x1b[0m\x1b[32mO\x1b[0m\n"},
	}
	for _, c := range cases {
		var buf bytes.Buffer
		if err := NewRenderer(c.mode, false).Render(&buf, sample()); err != nil {
			t.Fatalf("%s: Render: %v", c.mode, err)
		}
		if buf.String() != c.want {
			t.Fatalf("%s: rendered %q, expected %q", c.mode, buf.String(), c.want)
		}
	}
}

func TestParseModeFallsBackToPlain(t *testing.T) {
	cases := map[string]Mode{
		"plain": ModePlain,
		"0":     ModePlain,
		"ALT":   ModeAlt,
		"1":     ModeAlt,
		"color": ModeColor,
		" 2 ":   ModeColor,
		"7":     ModePlain,
		"neon":  ModePlain,
		"":      ModePlain,
	}
	for in, want := range cases {
		if got := ParseMode(in); got != want {
			t.Fatalf("ParseMode(%q)=%s, expected %s", in, got, want)
		}
	}
}

func TestFrameClearsOutsideHistory(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRenderer(ModePlain, false).Frame(&buf, 7, sample()); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if want := ClearScreen + "Generation: 7\nO  \n  O\n"; buf.String() != want {
		t.Fatalf("frame=%q, expected %q", buf.String(), want)
	}

	buf.Reset()
	if err := NewRenderer(ModePlain, true).Frame(&buf, 7, sample()); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if strings.Contains(buf.String(), ClearScreen) {
		t.Fatal("history mode must not clear the screen")
	}
}

func TestFinal(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRenderer(ModeAlt, true).Final(&buf, sample()); err != nil {
		t.Fatalf("Final: %v", err)
	}
	if want := "Final Generation:\n@..\n..@\n"; buf.String() != want {
		t.Fatalf("final=%q, expected %q", buf.String(), want)
	}
}

func TestFillBinaryRGBA(t *testing.T) {
	cells := []bool{true, false}
	buf := make([]byte, 8)
	fillBinaryRGBA(buf, cells, color.RGBA{R: 10, G: 200, B: 30, A: 255}, color.Black)
	want := []byte{10, 200, 30, 255, 0, 0, 0, 255}
	if !bytes.Equal(buf, want) {
		t.Fatalf("pixels=%v, expected %v", buf, want)
	}
}
