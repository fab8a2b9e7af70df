// Package piece defines the seven-piece alphabet, its four orientations,
// and the falling Piece entity with the geometry helpers the engine and
// rotation systems need (hard-drop projection, floorkick counting).
package piece

import "stackcore/internal/fixedpoint"

// Id is one of the seven tetromino shapes. The total order I<J<L<O<S<T<Z
// is also the serialization index (0..6) used by randomizers and replays.
type Id uint8

const (
	I Id = iota
	J
	L
	O
	S
	T
	Z
)

// Count is the number of distinct piece ids.
const Count = 7

// FromIndex maps a serialization index (0..6) to its Id.
func FromIndex(i uint32) Id {
	return Id(i)
}

// Index returns the serialization index (0..6) for this piece.
func (id Id) Index() uint8 {
	return uint8(id)
}

func (id Id) String() string {
	switch id {
	case I:
		return "I"
	case J:
		return "J"
	case L:
		return "L"
	case O:
		return "O"
	case S:
		return "S"
	case T:
		return "T"
	case Z:
		return "Z"
	default:
		return "?"
	}
}

// All lists the seven piece ids in their canonical order.
var All = [Count]Id{I, J, L, O, S, T, Z}

// Theta is one of the four 90-degree orientations.
type Theta uint8

const (
	R0 Theta = iota
	R90
	R180
	R270
)

// Rotation is a signed rotation request: Clockwise=+1, AntiClockwise=-1,
// Half=+2.
type Rotation int8

const (
	AntiClockwise Rotation = -1
	Clockwise     Rotation = 1
	Half          Rotation = 2
)

// Rotate composes the rotation modulo 4.
func (t Theta) Rotate(r Rotation) Theta {
	return Theta((int8(t) + int8(r) + 8) % 4)
}

// Cell is a single block coordinate within a piece's 4x4 bounding box.
type Cell struct {
	X, Y uint8
}

// Piece is the single currently-falling tetromino.
type Piece struct {
	ID    Id
	X, Y  int8
	Theta Theta

	YActual       fixedpoint.UQ8_24
	YHardDrop     int8
	LockTimer     uint32
	FloorkickCount uint32
}

// SpawnX returns the default spawn column for a well of the given width.
func SpawnX(wellWidth int) int8 {
	return int8(wellWidth/2 - 1)
}

// SpawnY is the default spawn row.
const SpawnY int8 = 1

// Collider reports whether a piece's four blocks would collide with the
// well or its boundary at the given placement. Implemented by well.Well;
// kept as an interface here so piece has no dependency on well.
type Collider interface {
	IsCollision(id Id, x, y int8, theta Theta) bool
}

// Blocks returns the four absolute cell coordinates occupied by id at
// theta, using the offset table supplied by the active rotation system.
func Blocks(offsets func(Id, Theta) [4]Cell, id Id, x, y int8, theta Theta) [4]Cell {
	cells := offsets(id, theta)
	var out [4]Cell
	for i, c := range cells {
		out[i] = Cell{X: uint8(int8(c.X) + x), Y: uint8(int8(c.Y) + y)}
	}
	return out
}

// Init creates a new piece at the spawn position and computes its initial
// hard-drop row by walking downward until a collision would occur.
func Init(col Collider, id Id, x, y int8, theta Theta) *Piece {
	p := &Piece{
		ID:    id,
		X:     x,
		Y:     y,
		Theta: theta,
	}
	p.YActual = fixedpoint.FromParts(uint8(y), 0)
	p.recomputeHardDrop(col)
	return p
}

// recomputeHardDrop finds the largest y' >= p.Y such that no collision
// occurs at (x, y', theta) and (x, y'+1, theta) does collide.
func (p *Piece) recomputeHardDrop(col Collider) {
	y := p.Y
	for !col.IsCollision(p.ID, p.X, y+1, p.Theta) {
		y++
	}
	p.YHardDrop = y
}

// Move relocates the piece, resetting YHardDrop while preserving
// YActual's fractional part (only its integer part is resynced to y).
func (p *Piece) Move(col Collider, x, y int8, theta Theta) {
	p.X, p.Y, p.Theta = x, y, theta
	p.YActual = fixedpoint.FromParts(uint8(y), p.YActual.Fraction())
	p.recomputeHardDrop(col)
}
