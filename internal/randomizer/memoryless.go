package randomizer

import (
	"stackcore/internal/piece"
	"stackcore/internal/prng"
)

// MemorylessRandomizer draws a uniform PieceId every call with no history at all
// (spec §4.3: "PieceId::from_index(prng.next_range(0, 7))").
type MemorylessRandomizer struct {
	prng *prng.PRNG
}

func NewMemoryless(p *prng.PRNG) *MemorylessRandomizer {
	return &MemorylessRandomizer{prng: p}
}

func (m *MemorylessRandomizer) Next() piece.Id {
	return piece.FromIndex(m.prng.NextRange(0, uint32(piece.Count)))
}
