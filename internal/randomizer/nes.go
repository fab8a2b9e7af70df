package randomizer

import (
	"stackcore/internal/piece"
	"stackcore/internal/prng"
)

// NES reproduces the original NES Tetris randomizer: an 8-sided roll with
// one "reroll" slot, and a single-piece history to avoid long repeats
// (spec §4.3: "roll in [0, 8); if == 7 or equals last returned, reroll in
// [0, 7); record history").
type NES struct {
	prng    *prng.PRNG
	hasLast bool
	last    piece.Id
}

func NewNES(p *prng.PRNG) *NES {
	return &NES{prng: p}
}

func (n *NES) Next() piece.Id {
	roll := n.prng.NextRange(0, 8)
	if roll == 7 || (n.hasLast && piece.FromIndex(roll) == n.last) {
		roll = n.prng.NextRange(0, 7)
	}
	id := piece.FromIndex(roll)
	n.last, n.hasLast = id, true
	return id
}
