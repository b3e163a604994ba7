package core

// Board stores a 2D grid of cell states in row-major order. The backing slice
// always holds exactly W*H cells and is never resized.
type Board struct {
	W, H  int
	cells []bool
}

// NewBoard allocates an all-dead board with the given dimensions.
func NewBoard(w, h int) *Board {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Board{W: w, H: h, cells: make([]bool, w*h)}
}

// Size returns the board dimensions.
func (b *Board) Size() Size { return Size{W: b.W, H: b.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (b *Board) Cells() []bool { return b.cells }

// Index returns the linear slice index for (row, col).
func (b *Board) Index(row, col int) int { return row*b.W + col }

// Contains reports whether (row, col) lies on the board.
func (b *Board) Contains(row, col int) bool {
	return row >= 0 && row < b.H && col >= 0 && col < b.W
}

// Get returns the state at (row, col). Off-board coordinates read as dead.
func (b *Board) Get(row, col int) bool {
	if !b.Contains(row, col) {
		return false
	}
	return b.cells[b.Index(row, col)]
}

// Set updates (row, col). Off-board coordinates are ignored.
func (b *Board) Set(row, col int, alive bool) {
	if !b.Contains(row, col) {
		return
	}
	b.cells[b.Index(row, col)] = alive
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (b *Board) Wrap(row, col int) (int, int) {
	row = (row%b.H + b.H) % b.H
	col = (col%b.W + b.W) % b.W
	return row, col
}

// Clear kills every cell.
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = false
	}
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{W: b.W, H: b.H, cells: make([]bool, len(b.cells))}
	copy(c.cells, b.cells)
	return c
}

// CopyFrom overwrites b with the cells of src. Boards of different dimensions
// copy the overlapping top-left region only.
func (b *Board) CopyFrom(src *Board) {
	if src.W == b.W && src.H == b.H {
		copy(b.cells, src.cells)
		return
	}
	b.Clear()
	for row := 0; row < min(b.H, src.H); row++ {
		for col := 0; col < min(b.W, src.W); col++ {
			b.cells[b.Index(row, col)] = src.cells[src.Index(row, col)]
		}
	}
}

// Equal reports whether both boards have the same dimensions and cells.
func (b *Board) Equal(o *Board) bool {
	if o == nil || b.W != o.W || b.H != o.H {
		return false
	}
	for i, c := range b.cells {
		if o.cells[i] != c {
			return false
		}
	}
	return true
}

// Population counts live cells.
func (b *Board) Population() int {
	n := 0
	for _, c := range b.cells {
		if c {
			n++
		}
	}
	return n
}
