package randomizer

import (
	"stackcore/internal/piece"
	"stackcore/internal/prng"
)

// tgmFirstRollSet is the fixed {J,I,L,T} pool TGM4 and TGM35 both draw
// their opening piece from uniformly.
var tgmFirstRollSet = [4]piece.Id{piece.J, piece.I, piece.L, piece.T}

// TGM4 reproduces the TGM1/TGM2 4-history reroll randomizer (spec §4.3:
// "4-piece history preloaded ...; roll uniform PieceId, reroll up to
// number_of_rolls times while the result is in the history").
type TGM4 struct {
	prng          *prng.PRNG
	history       []piece.Id // fixed length 4, oldest at index 0
	numberOfRolls int
	first         bool
}

// NewTGM1 builds the TGM1 variant: history preloaded [Z,Z,Z,Z], 4 rerolls.
func NewTGM1(p *prng.PRNG) *TGM4 {
	return newTGM4(p, []piece.Id{piece.Z, piece.Z, piece.Z, piece.Z}, 4)
}

// NewTGM2 builds the TGM2 variant: history preloaded [Z,S,S,Z], 6 rerolls.
func NewTGM2(p *prng.PRNG) *TGM4 {
	return newTGM4(p, []piece.Id{piece.Z, piece.S, piece.S, piece.Z}, 6)
}

func newTGM4(p *prng.PRNG, preload []piece.Id, numberOfRolls int) *TGM4 {
	return &TGM4{prng: p, history: preload, numberOfRolls: numberOfRolls, first: true}
}

func (t *TGM4) push(id piece.Id) {
	copy(t.history, t.history[1:])
	t.history[len(t.history)-1] = id
}

func (t *TGM4) Next() piece.Id {
	if t.first {
		t.first = false
		id := tgmFirstRollSet[t.prng.NextRange(0, uint32(len(tgmFirstRollSet)))]
		t.push(id)
		return id
	}
	id := piece.FromIndex(t.prng.NextRange(0, uint32(piece.Count)))
	for i := 0; i < t.numberOfRolls && containsPiece(t.history, id); i++ {
		id = piece.FromIndex(t.prng.NextRange(0, uint32(piece.Count)))
	}
	t.push(id)
	return id
}

// TGM35 reproduces the TGM3 35-slot bag randomizer with its drought-order
// bias and the preserved "seen-count bug" quirk (spec §4.3).
type TGM35 struct {
	prng         *prng.PRNG
	history      []piece.Id // fixed length 4
	bag          [35]piece.Id
	droughtOrder [7]piece.Id
	seen         [piece.Count]bool
	first        bool
}

func NewTGM35(p *prng.PRNG) *TGM35 {
	t := &TGM35{
		prng:         p,
		history:      []piece.Id{piece.S, piece.Z, piece.S, piece.Z},
		droughtOrder: [7]piece.Id{piece.J, piece.I, piece.Z, piece.L, piece.O, piece.T, piece.S},
		first:        true,
	}
	for i, id := range piece.All {
		for k := 0; k < 5; k++ {
			t.bag[k*piece.Count+i] = id
		}
	}
	return t
}

func (t *TGM35) push(id piece.Id) {
	copy(t.history, t.history[1:])
	t.history[len(t.history)-1] = id
}

func (t *TGM35) shiftDroughtToTail(id piece.Id) {
	idx := -1
	for i, d := range t.droughtOrder {
		if d == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	copy(t.droughtOrder[idx:], t.droughtOrder[idx+1:])
	t.droughtOrder[len(t.droughtOrder)-1] = id
}

func (t *TGM35) allSeen() bool {
	for _, s := range t.seen {
		if !s {
			return false
		}
	}
	return true
}

func (t *TGM35) Next() piece.Id {
	if t.first {
		t.first = false
		id := tgmFirstRollSet[t.prng.NextRange(0, uint32(len(tgmFirstRollSet)))]
		t.push(id)
		return id
	}

	var accepted piece.Id
	for roll := 0; ; roll++ {
		i := t.prng.NextRange(0, 35)
		b := t.bag[i]
		if !containsPiece(t.history, b) {
			accepted = b
			t.afterAccept(accepted, i, roll)
			break
		}
		if roll < 5 {
			t.bag[i] = t.droughtOrder[0]
			continue
		}
		// Out of rerolls: accept the colliding candidate anyway rather
		// than loop forever.
		accepted = b
		t.afterAccept(accepted, i, roll)
		break
	}
	t.push(accepted)
	return accepted
}

// afterAccept applies the seen-bitmap update, the drought-order refill of
// the slot just drawn from, and the drought-order rotation, in the order
// spec §4.3 gives them.
func (t *TGM35) afterAccept(b piece.Id, slot uint32, roll int) {
	t.seen[b.Index()] = true
	if !(t.allSeen() && roll > 0 && b == t.droughtOrder[0]) {
		t.bag[slot] = t.droughtOrder[0]
	}
	t.shiftDroughtToTail(b)
}
