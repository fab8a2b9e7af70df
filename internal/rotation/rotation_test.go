package rotation

import (
	"testing"

	"stackcore/internal/piece"
)

// openWell is a Collider backed by nothing but boundaries, wide/tall
// enough that no kick in this package's tables ever goes out of bounds.
type openWell struct {
	width, height int
	occupied      map[[2]int8]bool
}

func newOpenWell() *openWell {
	return &openWell{width: 20, height: 25, occupied: map[[2]int8]bool{}}
}

func (w *openWell) IsCollision(id piece.Id, x, y int8, theta piece.Theta) bool {
	for _, c := range piece.Blocks(Blocks, id, x, y, theta) {
		cx, cy := int8(c.X), int8(c.Y)
		if cx < 0 || int(cx) >= w.width || cy < 0 || int(cy) >= w.height {
			return true
		}
		if w.occupied[[2]int8{cx, cy}] {
			return true
		}
	}
	return false
}

func TestFourClockwiseRotationsReturnToOrigin(t *testing.T) {
	for _, sys := range []Rotator{NewSRS(), NewArikaSRS(), NewDTET(), NewNES(), NewSega(), NewTGM(), NewTGM3()} {
		for _, id := range piece.All {
			w := newOpenWell()
			p := piece.Init(w, id, 5, 5, piece.R0)
			for i := 0; i < 4; i++ {
				if !sys.Rotate(w, p, piece.Clockwise, 0, 999) {
					t.Fatalf("%v rotate %v: clockwise rotation %d failed unexpectedly", sys, id, i)
				}
			}
			if p.Theta != piece.R0 {
				t.Errorf("%v rotate %v: four clockwise rotations ended at %v, want R0", sys, id, p.Theta)
			}
		}
	}
}

func TestHalfRotationIsInvolution(t *testing.T) {
	w := newOpenWell()
	sys := NewSRS()
	p := piece.Init(w, piece.T, 5, 5, piece.R0)
	if !sys.Rotate(w, p, piece.Half, 0, 999) {
		t.Fatal("first half rotation failed")
	}
	if p.Theta != piece.R180 {
		t.Fatalf("half rotation from R0 landed at %v, want R180", p.Theta)
	}
	if !sys.Rotate(w, p, piece.Half, 0, 999) {
		t.Fatal("second half rotation failed")
	}
	if p.Theta != piece.R0 {
		t.Fatalf("half ∘ half landed at %v, want R0", p.Theta)
	}
}

func TestFloorkickCountMonotonic(t *testing.T) {
	w := newOpenWell()
	sys := NewTGM()
	p := piece.Init(w, piece.T, 5, 5, piece.R0)
	// One occupied cell, (7, 6), blocks both the in-place and the right-kick
	// slots of the first clockwise rotation, so only the upkick (dy=-1)
	// lands there: a floorkick.
	w.occupied[[2]int8{7, 6}] = true

	last := uint32(0)
	for i := 0; i < 3; i++ {
		sys.Rotate(w, p, piece.Clockwise, 10, 999)
		sys.Rotate(w, p, piece.AntiClockwise, 10, 999)
		if p.FloorkickCount < last {
			t.Fatalf("floorkick count decreased: %d -> %d", last, p.FloorkickCount)
		}
		last = p.FloorkickCount
	}
	if last == 0 {
		t.Fatal("expected the upkick to register at least one floorkick")
	}
}

func TestSRSKickResolvesBlockedInPlaceRotation(t *testing.T) {
	// In-place rotation is obstructed, but the kick table has further
	// offsets to try; SRS should fall through to one of them rather than
	// failing outright, as an un-kickable classic rotation system would.
	w := newOpenWell()
	sys := NewSRS()
	p := piece.Init(w, piece.T, 4, 4, piece.R0)

	inPlace := piece.Blocks(Blocks, piece.T, p.X, p.Y, piece.R90)
	w.occupied[[2]int8{int8(inPlace[0].X), int8(inPlace[0].Y)}] = true

	if !sys.Rotate(w, p, piece.Clockwise, 0, 999) {
		t.Fatal("expected SRS to resolve the rotation via a later kick offset")
	}
	if p.Theta != piece.R90 {
		t.Fatalf("rotation committed to %v, want R90", p.Theta)
	}
}

// TestSRSTSpinResolvesViaFifthKickCandidate blocks the first four kick
// candidates of a T's R0->R90 clockwise rotation (a classic T-spin setup:
// the in-place slot and the simple wallkicks are all obstructed), leaving
// only the fifth candidate, (-1, 2), open. This is the kick SRS players
// call a T-spin: a large offset kick, not a simple wallkick.
func TestSRSTSpinResolvesViaFifthKickCandidate(t *testing.T) {
	w := newOpenWell()
	sys := NewSRS()
	p := piece.Init(w, piece.T, 4, 4, piece.R0)

	// Occupy exactly the cells that block kick candidates 0-3 of
	// srsJLSTZKicks[{R0, Clockwise}] = [(0,0),(-1,0),(-1,-1),(0,2),(-1,2)]
	// while leaving every cell the fifth candidate, (-1, 2), resolves to
	// clear.
	for _, c := range []struct{ x, y int8 }{{5, 4}, {4, 4}, {5, 6}} {
		w.occupied[[2]int8{c.x, c.y}] = true
	}

	if !sys.Rotate(w, p, piece.Clockwise, 0, 999) {
		t.Fatal("expected the rotation to resolve via the fifth kick candidate")
	}
	if p.Theta != piece.R90 {
		t.Fatalf("rotation committed to %v, want R90", p.Theta)
	}
	if p.X != 3 || p.Y != 6 {
		t.Fatalf("piece landed at (%d, %d), want (3, 6) — the (-1, 2) kick candidate", p.X, p.Y)
	}
}

func TestRotateFailsWhenEveryKickCollides(t *testing.T) {
	w := newOpenWell()
	sys := NewSRS()
	p := piece.Init(w, piece.T, 4, 4, piece.R0)

	for dx := int8(-3); dx <= 3; dx++ {
		for dy := int8(-3); dy <= 3; dy++ {
			for _, c := range piece.Blocks(Blocks, piece.T, p.X+dx, p.Y+dy, piece.R90) {
				w.occupied[[2]int8{int8(c.X), int8(c.Y)}] = true
			}
		}
	}

	startTheta := p.Theta
	if sys.Rotate(w, p, piece.Clockwise, 0, 999) {
		t.Fatal("expected rotation to fail when every kick offset collides")
	}
	if p.Theta != startTheta {
		t.Fatalf("failed rotation mutated theta to %v", p.Theta)
	}
}
