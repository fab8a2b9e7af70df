// Package well implements the playing field grid, its collision rules
// (spec §4.5), and the fixed-capacity preview queue ring buffer (spec §9).
package well

import (
	"github.com/bits-and-blooms/bitset"

	"stackcore/internal/piece"
)

// Cell holds the piece id that occupies a well cell, or is empty.
type Cell struct {
	Occupied bool
	ID       piece.Id
}

// OffsetsFunc returns the four relative cell offsets for a piece at a given
// orientation. Supplied by the active rotation system; Well has no
// dependency on the rotation package itself.
type OffsetsFunc func(id piece.Id, theta piece.Theta) [4]piece.Cell

// Well is the dense playing field grid. Upper bounds are enforced at
// construction per spec §3: width <= 20, height <= 25.
type Well struct {
	Width, Height int
	Hidden        int
	Grid          [][]Cell
	Offsets       OffsetsFunc

	rowMasks []*bitset.BitSet // per-row occupancy, one bit per column
}

// New constructs a Well. Panics if width/height exceed the spec's bounds;
// callers validate Options before construction (spec §7, InvalidOptions).
func New(width, height, hidden int, offsets OffsetsFunc) *Well {
	if width <= 0 || width > 20 {
		panic("well: width out of bounds")
	}
	if height <= 0 || height > 25 {
		panic("well: height out of bounds")
	}
	grid := make([][]Cell, height)
	masks := make([]*bitset.BitSet, height)
	for y := range grid {
		grid[y] = make([]Cell, width)
		masks[y] = bitset.New(uint(width))
	}
	return &Well{
		Width:    width,
		Height:   height,
		Hidden:   hidden,
		Grid:     grid,
		Offsets:  offsets,
		rowMasks: masks,
	}
}

// IsOccupied reports whether (x, y) is out of bounds or holds a block.
func (w *Well) IsOccupied(x, y int8) bool {
	if x < 0 || int(x) >= w.Width || y < 0 || int(y) >= w.Height {
		return true
	}
	return w.Grid[y][x].Occupied
}

// IsCollision reports whether any of id's four blocks at (x, y, theta)
// would collide with the well boundary or an occupied cell.
func (w *Well) IsCollision(id piece.Id, x, y int8, theta piece.Theta) bool {
	for _, c := range piece.Blocks(w.Offsets, id, x, y, theta) {
		if w.IsOccupied(int8(c.X), int8(c.Y)) {
			return true
		}
	}
	return false
}

// Lock writes a piece's four blocks into the well at its hard-drop row.
func (w *Well) Lock(p *piece.Piece) {
	for _, c := range piece.Blocks(w.Offsets, p.ID, p.X, p.YHardDrop, p.Theta) {
		w.Grid[c.Y][c.X] = Cell{Occupied: true, ID: p.ID}
		w.rowMasks[c.Y].Set(uint(c.X))
	}
}

// ClearLines scans every row, removes full rows, shifts the rows above
// down, and returns the count cleared. Uses a signed row counter per
// spec §9's flagged ambiguity (an unsigned counter underflows when row 0
// clears); counting down with a plain int avoids that entirely.
func (w *Well) ClearLines() int {
	cleared := 0
	for y := w.Height - 1; y >= 0; y-- {
		if w.rowMasks[y].Count() != uint(w.Width) {
			continue
		}
		cleared++
		// Shift every row above y down by one, then blank row 0.
		for dst := y; dst > 0; dst-- {
			w.Grid[dst] = w.Grid[dst-1]
			w.rowMasks[dst] = w.rowMasks[dst-1]
		}
		w.Grid[0] = make([]Cell, w.Width)
		w.rowMasks[0] = bitset.New(uint(w.Width))
		// Re-examine the row now shifted into y on the next iteration.
		y++
	}
	return cleared
}
