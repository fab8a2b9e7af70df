package randomizer

import (
	"stackcore/internal/piece"
	"stackcore/internal/prng"
)

// BagN draws from a shuffled bag holding one copy of each of the 7 pieces,
// emitting only the first n of each reshuffle (spec §4.3: "Bag-N (N ≤ 7):
// ... Emit pieces 0..N-1; on wraparound reshuffle"). N == 7 with
// checkSeam set is the standard "Bag7SeamCheck" the engine defaults to.
type BagN struct {
	prng      *prng.PRNG
	n         int
	checkSeam bool
	bag       []piece.Id
	pos       int
	lastEmit  piece.Id
	hasEmit   bool
}

func NewBagN(p *prng.PRNG, n int, checkSeam bool) *BagN {
	b := &BagN{prng: p, n: n, checkSeam: checkSeam}
	b.reshuffle()
	return b
}

func (b *BagN) reshuffle() {
	if b.bag == nil {
		b.bag = freshBag()
	} else {
		copy(b.bag, piece.All[:])
	}
	shuffleWithFirstPiecePolicy(b.prng, b.bag)
	if b.checkSeam && b.hasEmit && b.bag[0] == b.lastEmit {
		j := int(b.prng.NextRange(1, uint32(piece.Count)))
		b.bag[0], b.bag[j] = b.bag[j], b.bag[0]
	}
	b.pos = 0
}

func (b *BagN) Next() piece.Id {
	if b.pos >= b.n {
		b.reshuffle()
	}
	id := b.bag[b.pos]
	b.pos++
	b.lastEmit, b.hasEmit = id, true
	return id
}

// MultiBag draws from a pool of k copies of each piece, shuffled as one
// bag of size 7k, reshuffled on exhaustion (spec §4.3: "Multi-Bag (k ∈
// {2,4,9})").
type MultiBag struct {
	prng *prng.PRNG
	k    int
	bag  []piece.Id
	pos  int
}

func NewMultiBag(p *prng.PRNG, k int) *MultiBag {
	mb := &MultiBag{prng: p, k: k}
	mb.reshuffle()
	return mb
}

func (mb *MultiBag) reshuffle() {
	if mb.bag == nil {
		mb.bag = make([]piece.Id, 0, piece.Count*mb.k)
	}
	mb.bag = mb.bag[:0]
	for i := 0; i < mb.k; i++ {
		mb.bag = append(mb.bag, piece.All[:]...)
	}
	shuffleWithFirstPiecePolicy(mb.prng, mb.bag)
	mb.pos = 0
}

func (mb *MultiBag) Next() piece.Id {
	if mb.pos >= len(mb.bag) {
		mb.reshuffle()
	}
	id := mb.bag[mb.pos]
	mb.pos++
	return id
}
