package main

import (
	"fmt"
	"io"

	"stackcore/internal/engine"
)

// textRenderer is the minimal real render() collaborator spec §6
// describes: one line of text per draw frame, never a window. It
// satisfies host.Renderer without implementing graphics.
type textRenderer struct {
	w io.Writer
}

func newTextRenderer(w io.Writer) *textRenderer {
	return &textRenderer{w: w}
}

func (r *textRenderer) Render(snap engine.Snapshot) {
	pieceDesc := "-"
	if snap.Piece != nil {
		pieceDesc = fmt.Sprintf("%s@(%d,%d)", snap.Piece.ID, snap.Piece.X, snap.Piece.Y)
	}
	hold := "-"
	if snap.HoldPiece != nil {
		hold = snap.HoldPiece.String()
	}
	fmt.Fprintf(r.w, "state=%-10s well=%dx%d piece=%-10s hold=%-3s lines=%d blocks=%d\n",
		snap.State, snap.Well.Width, snap.Well.Height, pieceDesc, hold,
		snap.Stats.LinesCleared, snap.Stats.BlocksPlaced)
}
