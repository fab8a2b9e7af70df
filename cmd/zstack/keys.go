package main

import (
	"stackcore/internal/input"
	"stackcore/internal/replay"
)

// replayKeyReader plays back a decoded input edge stream tick by tick,
// standing in for the physical keyboard reader spec §1 places outside
// this module.
type replayKeyReader struct {
	inputs []replay.Input
	tick   uint32
}

func newReplayKeyReader(inputs []replay.Input) *replayKeyReader {
	return &replayKeyReader{inputs: inputs}
}

func (r *replayKeyReader) ReadKeys() input.VirtualKeySet {
	keys := replay.KeysAtTick(r.inputs, r.tick)
	r.tick++
	return keys
}

// idleKeyReader never presses a key. record uses it to synthesize a
// deterministic session when no source replay is given to re-drive.
type idleKeyReader struct{}

func (idleKeyReader) ReadKeys() input.VirtualKeySet { return 0 }
