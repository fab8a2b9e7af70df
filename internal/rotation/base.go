package rotation

import "stackcore/internal/piece"

// Kick is a single (dx, dy) offset tried during a rotation attempt. y grows
// downward, matching the well's coordinate system.
type Kick struct {
	DX, DY int8
}

// KickFunc selects the ordered kick list to try for a piece rotating from
// an orientation in a given direction.
type KickFunc func(id piece.Id, from piece.Theta, r piece.Rotation) []Kick

// ExceptionFunc reports whether a kick that would otherwise succeed must be
// suppressed, per system-specific rules (spec §4.4's TGM wallkick
// exception). Most systems have none.
type ExceptionFunc func(col piece.Collider, p *piece.Piece, from, to piece.Theta, k Kick) bool

// Rotator is the shared interface every rotation system implements.
type Rotator interface {
	Blocks(id piece.Id, theta piece.Theta) [4]piece.Cell
	Rotate(col piece.Collider, p *piece.Piece, r piece.Rotation, floorkickLimit, lockDelayTicks uint32) bool
}

// System is the generic kick-table-driven rotator every concrete system in
// this package is built from; only the kick table (and, for TGM, an
// exception hook) differs between them.
type System struct {
	kicks     KickFunc
	exception ExceptionFunc
}

// Blocks returns the shared canonical piece geometry (see offsets.go).
func (s *System) Blocks(id piece.Id, theta piece.Theta) [4]piece.Cell {
	return Blocks(id, theta)
}

// Rotate implements the kick procedure of spec §4.4: compute the target
// orientation, walk the kick list in order, commit the first offset that
// neither collides nor trips a system exception.
func (s *System) Rotate(col piece.Collider, p *piece.Piece, r piece.Rotation, floorkickLimit, lockDelayTicks uint32) bool {
	newTheta := p.Theta.Rotate(r)

	var kicks []Kick
	if r == piece.Half {
		kicks = []Kick{{0, 0}}
	} else {
		kicks = s.kicks(p.ID, p.Theta, r)
	}

	for _, k := range kicks {
		nx, ny := p.X+k.DX, p.Y+k.DY
		if col.IsCollision(p.ID, nx, ny, newTheta) {
			continue
		}
		if s.exception != nil && s.exception(col, p, p.Theta, newTheta, k) {
			continue
		}
		handleFloorkick(p, k.DY < 0, floorkickLimit, lockDelayTicks)
		p.Move(col, nx, ny, newTheta)
		return true
	}
	return false
}

// handleFloorkick is monotonic: FloorkickCount never decreases within a
// piece's lifetime (spec §8).
func handleFloorkick(p *piece.Piece, isFloorkick bool, limit, lockDelayTicks uint32) {
	if isFloorkick && limit != 0 {
		p.FloorkickCount++
		if p.FloorkickCount >= limit {
			p.LockTimer = lockDelayTicks
		}
	}
}
