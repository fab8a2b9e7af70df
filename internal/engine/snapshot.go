package engine

import (
	"stackcore/internal/options"
	"stackcore/internal/piece"
	"stackcore/internal/well"
)

// Snapshot is a read-only view of the engine's state for a renderer
// (spec §6: snapshot() -> EngineSnapshot). The renderer may not mutate
// anything it holds a reference to; Snapshot hands out copies of every
// value-typed field and of the piece and hold slot, but Well and Preview
// are the engine's own pointers, not copies.
type Snapshot struct {
	State         State
	Well          *well.Well
	Piece         *piece.Piece
	HoldPiece     *piece.Id
	HoldAvailable bool
	Preview       *well.PreviewQueue
	Stats         Stats
	Options       options.Options
}

// Snapshot returns the current read-only view of engine state.
func (e *Engine) Snapshot() Snapshot {
	var pieceCopy *piece.Piece
	if e.piece != nil {
		p := *e.piece
		pieceCopy = &p
	}
	var holdCopy *piece.Id
	if e.holdPiece != nil {
		h := *e.holdPiece
		holdCopy = &h
	}
	return Snapshot{
		State:         e.state,
		Well:          e.well,
		Piece:         pieceCopy,
		HoldPiece:     holdCopy,
		HoldAvailable: e.holdAvailable,
		Preview:       e.preview,
		Stats:         e.stats,
		Options:       e.opts,
	}
}
