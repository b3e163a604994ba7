// Package store reads and writes boards as plain-text matrices: one line per
// row, one character per column, '1' for a live cell and '0' for a dead one.
package store

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"termlife/internal/core"
)

const (
	aliveMark = '1'
	deadMark  = '0'
)

// ErrEmptyPath is returned when Save or Load is called without a filename.
var ErrEmptyPath = errors.New("store: empty path")

// Encode writes b to w.
func Encode(w io.Writer, b *core.Board) error {
	bw := bufio.NewWriter(w)
	cells := b.Cells()
	for row := 0; row < b.H; row++ {
		for col := 0; col < b.W; col++ {
			mark := byte(deadMark)
			if cells[b.Index(row, col)] {
				mark = aliveMark
			}
			if err := bw.WriteByte(mark); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Decode reads a board of the given size from r. Each character of a line is
// one cell and only '1' is alive; rows and columns beyond the size are ignored
// and missing ones stay dead.
func Decode(r io.Reader, size core.Size) (*core.Board, error) {
	b := core.NewBoard(size.W, size.H)
	br := bufio.NewReader(r)
	row, col := 0, 0
	for row < b.H {
		ch, _, err := br.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if ch == '\n' {
			row, col = row+1, 0
			continue
		}
		if col < b.W {
			b.Set(row, col, ch == aliveMark)
			col++
		}
	}
	return b, nil
}

// Save writes b to path. The file is written next to its destination and
// renamed into place so readers never observe a partial board.
func Save(path string, b *core.Board) error {
	if path == "" {
		return ErrEmptyPath
	}
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("save board: %w", err)
	}
	tmp := f.Name()
	if err := f.Chmod(0o644); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("save board: %w", err)
	}
	if err := Encode(f, b); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("save board: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("save board: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("save board: %w", err)
	}
	return nil
}

// Load reads a board of the given size from path.
func Load(path string, size core.Size) (*core.Board, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load board: %w", err)
	}
	defer f.Close()
	b, err := Decode(f, size)
	if err != nil {
		return nil, fmt.Errorf("load board %s: %w", path, err)
	}
	return b, nil
}
