package engine

import (
	"testing"

	"stackcore/internal/input"
	"stackcore/internal/options"
	"stackcore/internal/randomizer"
	"stackcore/internal/rotation"
)

func testOptions() options.Options {
	o := options.Default()
	seed := uint32(1)
	o.Seed = &seed
	o.ReadyPhaseLengthMs = 0
	o.GoPhaseLengthMs = 0
	o.AreDelayMs = 0
	o.Randomizer = randomizer.Memoryless
	o.RotationSystem = rotation.Srs
	return o
}

func newTestEngine(t *testing.T, mutate func(*options.Options)) *Engine {
	t.Helper()
	o := testOptions()
	if mutate != nil {
		mutate(&o)
	}
	e, err := New(o, 16, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

// advanceToNewPiece drives the Ready/Go/NewPiece handshake with no keys
// held, returning once a piece has spawned (or the game is over).
func advanceToNewPiece(t *testing.T, e *Engine) {
	t.Helper()
	for i := 0; i < 10 && e.State() != Falling && e.State() != GameOver; i++ {
		e.Tick(0)
	}
}

func TestReadyGoNewPieceHandshake(t *testing.T) {
	e := newTestEngine(t, nil)
	if e.State() != Ready {
		t.Fatalf("initial state = %v, want Ready", e.State())
	}
	advanceToNewPiece(t, e)
	if e.State() != Falling {
		t.Fatalf("state after handshake = %v, want Falling", e.State())
	}
	if e.Snapshot().Piece == nil {
		t.Fatal("expected a spawned piece once Falling")
	}
}

func TestPieceLocksAndAdvancesToAre(t *testing.T) {
	e := newTestEngine(t, func(o *options.Options) {
		o.GravityMsPerCell = 1
		o.LockDelayMs = 0
	})
	advanceToNewPiece(t, e)
	if e.State() != Falling {
		t.Fatalf("expected Falling before drop loop, got %v", e.State())
	}

	locked := false
	for i := 0; i < 200; i++ {
		before := e.Snapshot().Stats.BlocksPlaced
		e.Tick(0)
		if e.Snapshot().Stats.BlocksPlaced > before {
			locked = true
			break
		}
	}
	if !locked {
		t.Fatal("piece never locked within 200 ticks at gravity_ms_per_cell=1")
	}
	if e.State() != ClearLines && e.State() != Are {
		t.Fatalf("state right after lock = %v, want ClearLines or Are", e.State())
	}
}

func TestHardDropLocksImmediately(t *testing.T) {
	e := newTestEngine(t, nil)
	advanceToNewPiece(t, e)
	before := e.Snapshot().Stats.BlocksPlaced
	e.Tick(input.Up)
	if e.Snapshot().Stats.BlocksPlaced != before+1 {
		t.Fatalf("hard drop should lock on the same tick; BlocksPlaced = %d, want %d", e.Snapshot().Stats.BlocksPlaced, before+1)
	}
}

func TestGameOverWhenSpawnBlocked(t *testing.T) {
	e := newTestEngine(t, func(o *options.Options) {
		o.WellHeight = 4
		o.WellHidden = 1
		o.Goal = 1 << 30
	})
	advanceToNewPiece(t, e)
	for i := 0; i < 500 && e.State() != GameOver; i++ {
		e.Tick(input.Up)
		advanceToNewPiece(t, e)
	}
	if e.State() != GameOver {
		t.Fatalf("expected the well to top out into GameOver, got %v", e.State())
	}
}

func TestHoldSwapSetsUnavailableThenRefillsOnRespawn(t *testing.T) {
	e := newTestEngine(t, nil)
	advanceToNewPiece(t, e)
	if !e.holdAvailable {
		t.Fatal("hold should be available on a freshly spawned piece")
	}
	e.Tick(input.Hold)
	snap := e.Snapshot()
	if snap.HoldPiece == nil {
		t.Fatal("expected a piece in the hold slot after Hold")
	}
	if e.holdAvailable {
		t.Fatal("hold should be unavailable immediately after use")
	}

	e.Tick(input.Up) // lock the piece taken out of hold so the next one spawns
	advanceToNewPiece(t, e)
	if !e.holdAvailable {
		t.Fatal("hold should refresh once a new piece spawns")
	}
}

func TestQuitKeyTransitionsToQuitState(t *testing.T) {
	e := newTestEngine(t, nil)
	e.Tick(input.Quit)
	if e.State() != Quit {
		t.Fatalf("state = %v, want Quit", e.State())
	}
	if !e.Quit() {
		t.Fatal("Quit() should report true once state is Quit")
	}
}
