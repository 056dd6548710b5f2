package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
// Row y holds generation y of a one-dimensional automaton.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a zeroed grid with the given dimensions. Negative
// dimensions are treated as zero.
func NewByteGrid(w, h int) *ByteGrid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// At returns the cell at column x of row y.
func (g *ByteGrid) At(x, y int) uint8 { return g.data[g.Index(x, y)] }

// Row returns row y as a slice aliasing the grid storage. Its capacity is
// clipped so appends never spill into the next row.
func (g *ByteGrid) Row(y int) []uint8 {
	start := y * g.W
	return g.data[start : start+g.W : start+g.W]
}

// Rows returns every row, each aliasing the grid storage.
func (g *ByteGrid) Rows() [][]uint8 {
	rows := make([][]uint8, g.H)
	for y := range rows {
		rows[y] = g.Row(y)
	}
	return rows
}

// Count returns how many cells hold v.
func (g *ByteGrid) Count(v uint8) int {
	n := 0
	for _, c := range g.data {
		if c == v {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same shape and contents.
func (g *ByteGrid) Equal(o *ByteGrid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.W != o.W || g.H != o.H {
		return false
	}
	for i := range g.data {
		if g.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the grid.
func (g *ByteGrid) Clone() *ByteGrid {
	c := &ByteGrid{W: g.W, H: g.H, data: make([]uint8, len(g.data))}
	copy(c.data, g.data)
	return c
}
