package rotation

import "stackcore/internal/piece"

// noKicks is the classic-arcade rotation contract: a rotation either
// succeeds in place or fails outright. NES and Sega's native rotation
// systems predate wallkicks entirely.
func noKicks(id piece.Id, from piece.Theta, r piece.Rotation) []Kick {
	return trivialKick
}

// NewNES builds the NES rotation system: no wallkicks.
func NewNES() *System {
	return &System{kicks: noKicks}
}

// NewSega builds the Sega rotation system: no wallkicks, same as NES at
// the kick-table level; kept distinct so engine wiring and replay options
// can name it independently, matching spec's enumerated rotation_system
// values.
func NewSega() *System {
	return &System{kicks: noKicks}
}
