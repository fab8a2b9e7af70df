// Package replay implements the bit-exact replay codec spec §4.9/§6
// describes: a text header, an ini-flavored options block, an 8-byte
// sentinel, then a little-endian stream of (tick, keys) input edges. It
// is the only place in this module that turns Options into bytes on the
// wire; the engine itself never sees a replay file, only the decoded
// input stream.
//
// Grounded on the teacher's savestate codec (internal/emulator/savestate.go):
// a version-tagged snapshot with a explicit format check on load. This
// package keeps that shape — a fixed header checked on read, a versioned
// body — but trades gob for the spec's literal byte layout, since a
// replay file is meant to be hand-inspectable and cross-implementation
// comparable, not just round-tripped through one Go binary.
package replay

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"stackcore/internal/input"
	"stackcore/internal/options"
)

// header is the fixed magic spec §4.9 prescribes. Every replay file
// starts with exactly these four bytes.
const header = "ZS1\n"

// sentinel separates the options block from the input stream: eight
// 0xFF bytes, chosen because it can never appear as a valid prefix of
// ini text.
var sentinel = [8]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}

// recordSize is the width of one (tick, keys) edge record.
const recordSize = 8

// engineVersion is written into the options block's supplemental
// engine_version key. Readers tolerate it being absent or mismatched;
// it exists for forward compatibility within this major format, not as
// a compatibility gate.
const engineVersion = "1"

// InvalidReplayHeader is returned when a file does not start with the
// expected "ZS1\n" magic.
type InvalidReplayHeader struct{ Got []byte }

func (e *InvalidReplayHeader) Error() string {
	return fmt.Sprintf("replay: invalid header, got %q", e.Got)
}

// NoInputsFound is returned when a replay has no sentinel, so there is
// no way to locate (or confirm the absence of) an input stream.
type NoInputsFound struct{}

func (e *NoInputsFound) Error() string { return "replay: no input sentinel found" }

// InvalidInputLength is returned when the bytes following the sentinel
// are not a whole number of 8-byte records.
type InvalidInputLength struct{ Length int }

func (e *InvalidInputLength) Error() string {
	return fmt.Sprintf("replay: input stream length %d is not a multiple of %d", e.Length, recordSize)
}

// Input is one recorded edge: the tick at which the virtual key bitset
// changed, and the bitset's new value.
type Input struct {
	Tick uint32
	Keys input.VirtualKeySet
}

// Recorder accumulates input edges for Write. It records a new edge
// only when the key bitset differs from the previous tick's, per spec
// §4.9's "recorded only when the key bitset changes".
type Recorder struct {
	edges   []Input
	lastSet bool
	last    input.VirtualKeySet
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// Observe records tick/keys as a new edge if keys differs from the
// most recently observed value (or this is the first observation).
func (r *Recorder) Observe(tick uint32, keys input.VirtualKeySet) {
	if r.lastSet && keys == r.last {
		return
	}
	r.edges = append(r.edges, Input{Tick: tick, Keys: keys})
	r.last = keys
	r.lastSet = true
}

// Edges returns the recorded input edges in tick order.
func (r *Recorder) Edges() []Input { return r.edges }

// Write serializes opts and the recorder's edges as a complete replay
// file: header, options block, sentinel, input stream.
func Write(w io.Writer, opts options.Options, edges []Input) error {
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}

	var optsBuf bytes.Buffer
	if err := options.Save(&optsBuf, opts); err != nil {
		return fmt.Errorf("replay: writing options block: %w", err)
	}
	if _, err := fmt.Fprintf(&optsBuf, "engine_version = %s\n", engineVersion); err != nil {
		return err
	}
	if _, err := w.Write(optsBuf.Bytes()); err != nil {
		return err
	}

	if _, err := w.Write(sentinel[:]); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for _, e := range edges {
		var rec [recordSize]byte
		binary.LittleEndian.PutUint32(rec[0:4], e.Tick)
		binary.LittleEndian.PutUint32(rec[4:8], uint32(e.Keys))
		if _, err := bw.Write(rec[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Replay is a fully decoded replay file: the options it was recorded
// under, plus its ordered input edges.
type Replay struct {
	Options options.Options
	Inputs  []Input
}

// Read parses a complete replay file per spec §4.9: verify the header,
// locate the sentinel, parse the pre-sentinel bytes as an options
// block, then decode the remaining bytes as fixed-width input records.
func Read(r io.Reader) (Replay, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Replay{}, fmt.Errorf("replay: reading file: %w", err)
	}

	if len(raw) < len(header) || string(raw[:len(header)]) != header {
		got := raw
		if len(got) > len(header) {
			got = got[:len(header)]
		}
		return Replay{}, &InvalidReplayHeader{Got: got}
	}
	body := raw[len(header):]

	idx := bytes.Index(body, sentinel[:])
	if idx < 0 {
		return Replay{}, &NoInputsFound{}
	}

	opts, err := options.Load(bytes.NewReader(body[:idx]))
	if err != nil {
		return Replay{}, fmt.Errorf("replay: parsing options block: %w", err)
	}

	stream := body[idx+len(sentinel):]
	if len(stream)%recordSize != 0 {
		return Replay{}, &InvalidInputLength{Length: len(stream)}
	}

	inputs := make([]Input, 0, len(stream)/recordSize)
	for off := 0; off < len(stream); off += recordSize {
		tick := binary.LittleEndian.Uint32(stream[off : off+4])
		keys := binary.LittleEndian.Uint32(stream[off+4 : off+8])
		inputs = append(inputs, Input{Tick: tick, Keys: input.VirtualKeySet(keys)})
	}

	return Replay{Options: opts, Inputs: inputs}, nil
}

// KeysAtTick resolves the VirtualKeySet active at the given tick from a
// decoded edge stream: the bitset from the latest edge whose Tick is
// <= tick, or zero if tick precedes every recorded edge. Inputs must be
// in non-decreasing tick order, which Read guarantees for a
// Recorder-produced stream.
func KeysAtTick(inputs []Input, tick uint32) input.VirtualKeySet {
	var cur input.VirtualKeySet
	for _, in := range inputs {
		if in.Tick > tick {
			break
		}
		cur = in.Keys
	}
	return cur
}
