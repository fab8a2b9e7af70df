// Package options defines the engine's runtime-configurable knobs (spec
// §3), validates them, and loads/saves them from the ini-shaped text
// block the replay format embeds (spec §4.9, §6).
package options

import (
	"fmt"

	"stackcore/internal/randomizer"
	"stackcore/internal/rotation"
)

// LockStyle selects how the lock timer resets while a piece is falling.
type LockStyle string

const (
	LockEntry LockStyle = "Entry"
	LockStep  LockStyle = "Step"
	LockMove  LockStyle = "Move"
)

// InitialActionStyle selects how a buffered input at spawn time is
// replayed against the new piece. The engine replays no buffered input
// under None or Persistent (the two behave the same), and engine.New
// rejects Trigger.
type InitialActionStyle string

const (
	InitialActionNone       InitialActionStyle = "None"
	InitialActionPersistent InitialActionStyle = "Persistent"
	InitialActionTrigger    InitialActionStyle = "Trigger"
)

// Options holds every engine knob spec §3 lists, with its defaults.
type Options struct {
	Seed                     *uint32
	WellWidth                int
	WellHeight               int
	WellHidden               int
	DasSpeedMs               int
	DasDelayMs               int
	AreDelayMs               int
	WarnOnBadFinesse         bool
	AreCancellable           bool
	LockStyle                LockStyle
	LockDelayMs              int
	FloorkickLimit           int
	OneShotSoftDrop          bool
	RotationSystem           rotation.Name
	InitialActionStyle       InitialActionStyle
	GravityMsPerCell         int
	SoftDropGravityMsPerCell int
	Randomizer               randomizer.Name
	ReadyPhaseLengthMs       int
	GoPhaseLengthMs          int
	InfiniteReadyGoHold      bool
	PreviewPieceCount        int
	Goal                     int
	ShowGhost                bool
}

// MaxWellWidth, MaxWellHeight, and MaxPreviewPieceCount are the upper
// bounds spec §3 enforces at construction.
const (
	MaxWellWidth         = 20
	MaxWellHeight        = 25
	MaxPreviewPieceCount = 5
)

// Default returns spec §3's default Options.
func Default() Options {
	return Options{
		WellWidth:                10,
		WellHeight:               22,
		WellHidden:               2,
		DasSpeedMs:               0,
		DasDelayMs:               150,
		AreDelayMs:               0,
		WarnOnBadFinesse:         false,
		AreCancellable:           false,
		LockStyle:                LockMove,
		LockDelayMs:              150,
		FloorkickLimit:           1,
		OneShotSoftDrop:          false,
		RotationSystem:           rotation.Srs,
		InitialActionStyle:       InitialActionNone,
		GravityMsPerCell:         1000,
		SoftDropGravityMsPerCell: 200,
		Randomizer:               randomizer.Bag7SeamCheck,
		ReadyPhaseLengthMs:       833,
		GoPhaseLengthMs:          833,
		InfiniteReadyGoHold:      false,
		PreviewPieceCount:        4,
		Goal:                     40,
		ShowGhost:                true,
	}
}

// InvalidOptions reports an option exceeding its bound (spec §7).
type InvalidOptions struct {
	Field string
	Value int
	Max   int
}

func (e *InvalidOptions) Error() string {
	return fmt.Sprintf("options: %s=%d exceeds maximum %d", e.Field, e.Value, e.Max)
}

// Validate enforces spec §3's construction-time bounds: InvalidOptions
// covers "an option exceeds bounds (well dims, preview count)" per §7.
func (o Options) Validate() error {
	if o.WellWidth > MaxWellWidth {
		return &InvalidOptions{Field: "well_width", Value: o.WellWidth, Max: MaxWellWidth}
	}
	if o.WellHeight > MaxWellHeight {
		return &InvalidOptions{Field: "well_height", Value: o.WellHeight, Max: MaxWellHeight}
	}
	if o.PreviewPieceCount > MaxPreviewPieceCount {
		return &InvalidOptions{Field: "preview_piece_count", Value: o.PreviewPieceCount, Max: MaxPreviewPieceCount}
	}
	return nil
}

// Ticks converts a millisecond duration to a tick count at the given
// tick period, matching spec's ticks(ms) helper used throughout §4.8.
func Ticks(ms, msPerTick int) uint32 {
	if msPerTick <= 0 {
		return 0
	}
	return uint32(ms / msPerTick)
}
