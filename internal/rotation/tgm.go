package rotation

import "stackcore/internal/piece"

// tgmKicks is the "right-then-upkick" 3-kick table spec §4.4 describes:
// try in place, then a single step right, then a single step up (toward
// negative y in this spec's down-positive convention).
func tgmKicks(id piece.Id, from piece.Theta, r piece.Rotation) []Kick {
	return []Kick{{0, 0}, {1, 0}, {0, -1}}
}

// tgmWallkickException implements spec §4.4's TGM wallkick exception: for
// L/J/T pieces rotating out of R0/R180, a kick that would otherwise
// succeed is suppressed if it would let the piece slip through a
// one-cell-wide gap next to its bounding box. Reproduced to the structural
// description in spec §4.4 (see DESIGN.md: exact historical constants are
// not available from the retrieved corpus).
func tgmWallkickException(col piece.Collider, p *piece.Piece, from, to piece.Theta, k Kick) bool {
	if p.ID != piece.J && p.ID != piece.L && p.ID != piece.T {
		return false
	}
	if from != piece.R0 && from != piece.R180 {
		return false
	}
	if k.DX == 0 && k.DY == 0 {
		return false
	}
	// Neighbor cells flanking the piece's bounding box on the row it would
	// kick into; if both are occupied, the kick would thread a gap no
	// wider than one cell, which TGM disallows.
	midY := p.Y + 1
	left := col.IsCollision(p.ID, p.X-1, midY, from)
	right := col.IsCollision(p.ID, p.X+4, midY, from)
	return left && right
}

// NewTGM builds the TGM1/TGM2-style rotation system: the 3-kick table plus
// the L/J/T wallkick exception.
func NewTGM() *System {
	return &System{kicks: tgmKicks, exception: tgmWallkickException}
}

// tgm3Kicks extends the TGM 3-kick table with a symmetric left-kick, as
// TGM3 (TI) is documented to try both horizontal directions before the
// upkick.
func tgm3Kicks(id piece.Id, from piece.Theta, r piece.Rotation) []Kick {
	return []Kick{{0, 0}, {1, 0}, {-1, 0}, {0, -1}}
}

// NewTGM3 builds the TGM3-style rotation system.
func NewTGM3() *System {
	return &System{kicks: tgm3Kicks, exception: tgmWallkickException}
}
