package nonogram

import "fmt"

// Grid is a rectangular, row-major collection of blocks
type Grid struct {
	width  int
	height int
	blocks []Block
}

// NewGrid creates a grid of the given size with every block Empty
func NewGrid(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		blocks: make([]Block, width*height),
	}, nil
}

// Width returns the number of columns
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (row, col) addresses a block of the grid
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// At returns the block at (row, col). It panics when out of bounds.
func (g *Grid) At(row, col int) Block {
	return g.blocks[g.index(row, col)]
}

// Set stores b at (row, col). It panics when out of bounds.
func (g *Grid) Set(row, col int, b Block) {
	g.blocks[g.index(row, col)] = b
}

// Toggle applies a button click to the block at (row, col) and returns the new state
func (g *Grid) Toggle(row, col int, button Button) Block {
	i := g.index(row, col)
	g.blocks[i] = g.blocks[i].Next(button)
	return g.blocks[i]
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	blocks := make([]Block, len(g.blocks))
	copy(blocks, g.blocks)
	return &Grid{width: g.width, height: g.height, blocks: blocks}
}

// Rows returns a copy of the grid as a slice of rows
func (g *Grid) Rows() [][]Block {
	rows := make([][]Block, g.height)
	for r := range rows {
		rows[r] = make([]Block, g.width)
		copy(rows[r], g.blocks[r*g.width:(r+1)*g.width])
	}
	return rows
}

// Count returns how many blocks hold state b
func (g *Grid) Count(b Block) int {
	n := 0
	for _, v := range g.blocks {
		if v == b {
			n++
		}
	}
	return n
}

func (g *Grid) index(row, col int) int {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("nonogram: cell (%d, %d) out of range for %dx%d grid", row, col, g.width, g.height))
	}
	return row*g.width + col
}
