package piece

import (
	"testing"

	"stackcore/internal/fixedpoint"
)

// fakeWell is a minimal Collider: the floor is at row height, and a set
// of (x, y) coordinates are pre-occupied.
type fakeWell struct {
	height   int8
	width    int8
	occupied map[[2]int8]bool
	offsets  func(Id, Theta) [4]Cell
}

func (w *fakeWell) IsCollision(id Id, x, y int8, theta Theta) bool {
	for _, c := range Blocks(w.offsets, id, x, y, theta) {
		cx, cy := int8(c.X), int8(c.Y)
		if cx < 0 || cx >= w.width || cy < 0 || cy >= w.height {
			return true
		}
		if w.occupied[[2]int8{cx, cy}] {
			return true
		}
	}
	return false
}

func singleCellOffsets(Id, Theta) [4]Cell {
	return [4]Cell{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 0}}
}

func TestThetaRotateWrapsModulo4(t *testing.T) {
	cases := []struct {
		start Theta
		r     Rotation
		want  Theta
	}{
		{R0, Clockwise, R90},
		{R270, Clockwise, R0},
		{R0, AntiClockwise, R270},
		{R0, Half, R180},
		{R90, Half, R270},
	}
	for _, c := range cases {
		if got := c.start.Rotate(c.r); got != c.want {
			t.Errorf("Theta(%d).Rotate(%d) = %d, want %d", c.start, c.r, got, c.want)
		}
	}
}

func TestFromIndexAndIndexRoundTrip(t *testing.T) {
	for _, id := range All {
		if got := FromIndex(uint32(id.Index())); got != id {
			t.Errorf("FromIndex(Index(%v)) = %v, want %v", id, got, id)
		}
	}
}

func TestIdStringCoversEveryPiece(t *testing.T) {
	seen := make(map[string]bool)
	for _, id := range All {
		s := id.String()
		if s == "?" {
			t.Errorf("piece %v stringified to the unknown placeholder", id)
		}
		seen[s] = true
	}
	if len(seen) != Count {
		t.Fatalf("expected %d distinct piece names, got %d", Count, len(seen))
	}
}

func TestInitComputesHardDropToFloor(t *testing.T) {
	w := &fakeWell{height: 10, width: 10, occupied: map[[2]int8]bool{}, offsets: singleCellOffsets}
	p := Init(w, I, 5, 0, R0)
	if p.YHardDrop != w.height-1 {
		t.Fatalf("YHardDrop = %d, want %d (empty floor)", p.YHardDrop, w.height-1)
	}
}

func TestInitComputesHardDropOntoStack(t *testing.T) {
	w := &fakeWell{height: 10, width: 10, offsets: singleCellOffsets, occupied: map[[2]int8]bool{
		{5, 7}: true,
	}}
	p := Init(w, I, 5, 0, R0)
	if p.YHardDrop != 6 {
		t.Fatalf("YHardDrop = %d, want 6 (resting atop occupied row 7)", p.YHardDrop)
	}
}

func TestMovePreservesGravityFraction(t *testing.T) {
	w := &fakeWell{height: 20, width: 20, occupied: map[[2]int8]bool{}, offsets: singleCellOffsets}
	p := Init(w, T, 5, 0, R0)
	p.YActual = fixedpoint.FromParts(0, 1<<20)

	p.Move(w, 6, 0, R0)

	if got := p.YActual.Fraction(); got != 1<<20 {
		t.Fatalf("Move changed YActual's fraction: got %d, want %d", got, 1<<20)
	}
}

func TestSpawnXCentersInWell(t *testing.T) {
	if got := SpawnX(10); got != 4 {
		t.Fatalf("SpawnX(10) = %d, want 4", got)
	}
}
