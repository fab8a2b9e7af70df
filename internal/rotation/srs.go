package rotation

import "stackcore/internal/piece"

// transitionKey identifies a rotation attempt by its starting orientation
// and direction; Half always short-circuits to a single (0,0) kick in
// base.Rotate, so only the eight non-Half transitions (four orientations
// times two directions) are ever looked up.
type transitionKey struct {
	from piece.Theta
	r    piece.Rotation
}

// srsJLSTZKicks is the canonical Tetris Guideline 5-kick SRS table for the
// J, L, S, T, Z pieces, converted from the guideline's +y-up convention to
// this spec's +y-down convention by negating every kick's dy (see
// DESIGN.md, Open Question decisions).
var srsJLSTZKicks = map[transitionKey][]Kick{
	{piece.R0, piece.Clockwise}:       {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{piece.R90, piece.AntiClockwise}:  {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{piece.R90, piece.Clockwise}:      {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{piece.R180, piece.AntiClockwise}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{piece.R180, piece.Clockwise}:     {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{piece.R270, piece.AntiClockwise}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{piece.R270, piece.Clockwise}:     {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{piece.R0, piece.AntiClockwise}:   {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
}

// srsIKicks is the canonical SRS I-piece 5-kick table, same sign
// conversion as srsJLSTZKicks.
var srsIKicks = map[transitionKey][]Kick{
	{piece.R0, piece.Clockwise}:       {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	{piece.R90, piece.AntiClockwise}:  {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	{piece.R90, piece.Clockwise}:      {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
	{piece.R180, piece.AntiClockwise}: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	{piece.R180, piece.Clockwise}:     {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	{piece.R270, piece.AntiClockwise}: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	{piece.R270, piece.Clockwise}:     {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	{piece.R0, piece.AntiClockwise}:   {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
}

var trivialKick = []Kick{{0, 0}}

func srsKicks(id piece.Id, from piece.Theta, r piece.Rotation) []Kick {
	if id == piece.O {
		return trivialKick
	}
	if id == piece.I {
		return srsIKicks[transitionKey{from, r}]
	}
	return srsJLSTZKicks[transitionKey{from, r}]
}

// NewSRS builds the Super Rotation System, the guideline-standard rotation
// system used by most modern falling-block games.
func NewSRS() *System {
	return &System{kicks: srsKicks}
}

// arikaIKicks is Arika's modified I-piece kick table (as used in Arika's
// licensed SRS variant, e.g. Tetris The Grand Master's SRS-based modes):
// a single-step wallkick before the SRS double-step, reproduced to the
// structural description in spec §4.4 ("Arika-SRS I-modified variant").
var arikaIKicks = map[transitionKey][]Kick{
	{piece.R0, piece.Clockwise}:       {{0, 0}, {-1, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	{piece.R90, piece.AntiClockwise}:  {{0, 0}, {1, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	{piece.R90, piece.Clockwise}:      {{0, 0}, {1, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
	{piece.R180, piece.AntiClockwise}: {{0, 0}, {-1, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	{piece.R180, piece.Clockwise}:     {{0, 0}, {-1, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	{piece.R270, piece.AntiClockwise}: {{0, 0}, {1, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	{piece.R270, piece.Clockwise}:     {{0, 0}, {-1, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	{piece.R0, piece.AntiClockwise}:   {{0, 0}, {1, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
}

func arikaSRSKicks(id piece.Id, from piece.Theta, r piece.Rotation) []Kick {
	if id == piece.O {
		return trivialKick
	}
	if id == piece.I {
		return arikaIKicks[transitionKey{from, r}]
	}
	return srsJLSTZKicks[transitionKey{from, r}]
}

// NewArikaSRS builds Arika's SRS variant: identical JLSTZ kicks, a modified
// I-piece table.
func NewArikaSRS() *System {
	return &System{kicks: arikaSRSKicks}
}
