package rotation

import "stackcore/internal/piece"

// dtetKicks is DTET's symmetric 6-kick table: the same six offsets are
// tried regardless of piece, starting orientation, or rotation direction
// (spec §4.4: "DTET symmetric 6-kick tables").
func dtetKicks(id piece.Id, from piece.Theta, r piece.Rotation) []Kick {
	return []Kick{{0, 0}, {-1, 0}, {1, 0}, {0, -1}, {-1, -1}, {1, -1}}
}

// NewDTET builds the DTET rotation system.
func NewDTET() *System {
	return &System{kicks: dtetKicks}
}
