package replay

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"stackcore/internal/input"
	"stackcore/internal/options"
	"stackcore/internal/randomizer"
	"stackcore/internal/rotation"
)

func testOptions() options.Options {
	o := options.Default()
	seed := uint32(42)
	o.Seed = &seed
	o.Goal = 10
	o.RotationSystem = rotation.Dtet
	o.Randomizer = randomizer.Bag7
	return o
}

func TestWriteReadRoundTrip(t *testing.T) {
	opts := testOptions()
	edges := []Input{
		{Tick: 786, Keys: 0x30000198},
		{Tick: 900, Keys: 0},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, opts, edges))

	got, err := Read(&buf)
	require.NoError(t, err)

	if diff := cmp.Diff(opts, got.Options); diff != "" {
		t.Fatalf("options round-trip mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(edges, got.Inputs); diff != "" {
		t.Fatalf("inputs round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteStartsWithHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, testOptions(), nil); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := buf.String()[:4]; got != header {
		t.Fatalf("header = %q, want %q", got, header)
	}
}

func TestReadRejectsBadHeader(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte("NOPE")))
	var hdrErr *InvalidReplayHeader
	if !errors.As(err, &hdrErr) {
		t.Fatalf("err = %v, want *InvalidReplayHeader", err)
	}
}

func TestReadRejectsMissingSentinel(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte(header + "[game]\nseed = 1\n")))
	var noInputs *NoInputsFound
	if !errors.As(err, &noInputs) {
		t.Fatalf("err = %v, want *NoInputsFound", err)
	}
}

func TestReadRejectsMisalignedInputStream(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, testOptions(), nil); err != nil {
		t.Fatalf("Write: %v", err)
	}
	buf.WriteByte(0x01)
	buf.WriteByte(0x02)
	buf.WriteByte(0x03)

	_, err := Read(&buf)
	var lenErr *InvalidInputLength
	if !errors.As(err, &lenErr) {
		t.Fatalf("err = %v, want *InvalidInputLength", err)
	}
	if lenErr.Length != 3 {
		t.Fatalf("Length = %d, want 3", lenErr.Length)
	}
}

func TestRecorderOnlyEmitsEdgesOnChange(t *testing.T) {
	r := NewRecorder()
	r.Observe(0, 0)
	r.Observe(1, 0)
	r.Observe(2, input.Left)
	r.Observe(3, input.Left)
	r.Observe(4, input.Left|input.Hold)
	r.Observe(5, 0)

	edges := r.Edges()
	want := []Input{
		{Tick: 0, Keys: 0},
		{Tick: 2, Keys: input.Left},
		{Tick: 4, Keys: input.Left | input.Hold},
		{Tick: 5, Keys: 0},
	}
	if len(edges) != len(want) {
		t.Fatalf("edges = %+v, want %+v", edges, want)
	}
	for i := range want {
		if edges[i] != want[i] {
			t.Fatalf("edges[%d] = %+v, want %+v", i, edges[i], want[i])
		}
	}
}

func TestKeysAtTickHoldsLastEdge(t *testing.T) {
	inputs := []Input{
		{Tick: 10, Keys: input.Left},
		{Tick: 20, Keys: input.Right},
	}
	if got := KeysAtTick(inputs, 5); got != 0 {
		t.Fatalf("KeysAtTick(5) = %v, want 0", got)
	}
	if got := KeysAtTick(inputs, 15); got != input.Left {
		t.Fatalf("KeysAtTick(15) = %v, want Left", got)
	}
	if got := KeysAtTick(inputs, 25); got != input.Right {
		t.Fatalf("KeysAtTick(25) = %v, want Right", got)
	}
}
