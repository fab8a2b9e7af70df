// Package randomizer implements the pluggable piece-sequence generators
// spec §4.3 lists: each wraps a shared PRNG and exposes Next() -> PieceId.
// None of them allocate past construction; all state is fixed-capacity,
// matching the no-steady-state-allocation contract spec §5 places on the
// core.
package randomizer

import (
	"stackcore/internal/piece"
	"stackcore/internal/prng"
)

// Randomizer produces an infinite sequence of PieceIds. Implementations
// are pure functions of their PRNG's seed and call history: replaying the
// same seed through the same sequence of Next() calls reproduces the same
// pieces.
type Randomizer interface {
	Next() piece.Id
}

// isBadFirst reports whether id is excluded as a sequence's opening piece
// by the TGM-style first-piece policy (spec §8 test 2: "first piece
// returned MUST NOT be S, Z, or O").
func isBadFirst(id piece.Id) bool {
	return id == piece.S || id == piece.Z || id == piece.O
}

// freshBag returns the canonical 7-piece bag in PieceId order.
func freshBag() []piece.Id {
	bag := make([]piece.Id, piece.Count)
	copy(bag, piece.All[:])
	return bag
}

// shuffleWithFirstPiecePolicy shuffles bag in place with p, reshuffling as
// long as the result opens with a bad first piece.
func shuffleWithFirstPiecePolicy(p *prng.PRNG, bag []piece.Id) {
	prng.Shuffle(p, bag)
	for isBadFirst(bag[0]) {
		prng.Shuffle(p, bag)
	}
}

// containsPiece reports whether history holds id.
func containsPiece(history []piece.Id, id piece.Id) bool {
	for _, h := range history {
		if h == id {
			return true
		}
	}
	return false
}
