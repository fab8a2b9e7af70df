// Package input translates a per-tick VirtualKeySet plus engine memory
// (DAS counters, last-frame keys) into an Actions record the engine state
// machine consumes. The host owns the physical keyboard; this package never
// touches it directly.
package input

import "stackcore/internal/fixedpoint"

// VirtualKeySet is a bitmask over the logical buttons the engine
// understands, independent of any physical keyboard layout.
type VirtualKeySet uint32

const (
	Up          VirtualKeySet = 0x001
	Down        VirtualKeySet = 0x002
	Left        VirtualKeySet = 0x004
	Right       VirtualKeySet = 0x008
	RotateLeft  VirtualKeySet = 0x010
	RotateRight VirtualKeySet = 0x020
	RotateHalf  VirtualKeySet = 0x040
	Hold        VirtualKeySet = 0x080
	Start       VirtualKeySet = 0x100
	Restart     VirtualKeySet = 0x200
	Quit        VirtualKeySet = 0x400
)

func (k VirtualKeySet) Has(bit VirtualKeySet) bool { return k&bit != 0 }

// Extras carries the one-shot signals a tick's Actions can raise alongside
// movement and rotation.
type Extras struct {
	Hold     bool
	HardDrop bool
	Lock     bool
	Quit     bool
	Restart  bool
}

// Rotation mirrors piece.Rotation's three values plus "none", so Actions
// can represent "no rotation requested" without borrowing piece's zero
// value (piece.Rotation has no zero member; 0 is not a valid rotation).
type Rotation int8

const (
	NoRotation    Rotation = 0
	AntiClockwise Rotation = -1
	Clockwise     Rotation = 1
	Half          Rotation = 2
)

// Actions is the per-tick distillate of VirtualKeySet + DAS state: what the
// engine should actually do this tick.
type Actions struct {
	Movement int8
	Rotation Rotation
	Gravity  fixedpoint.UQ8_24
	Extras   Extras
	Keys     VirtualKeySet
}

// Config carries the subset of Options virtual_keys_to_actions needs,
// already converted from milliseconds to tick counts by the caller.
type Config struct {
	DasDelayTicks            int32
	DasSpeedTicks            int32
	WellWidth                int32
	WellHeight               int32
	MsPerTick                uint32
	GravityMsPerCell         uint32
	SoftDropGravityMsPerCell uint32
	OneShotSoftDrop          bool
}

// Interpreter holds the DAS counters that persist across ticks. Zero value
// is ready to use.
type Interpreter struct {
	DasCounter int32
	LastKeys   VirtualKeySet
}

// Update runs spec §4.7's virtual_keys_to_actions: it mutates the
// interpreter's DAS counter and last-keys memory and returns this tick's
// Actions.
func (in *Interpreter) Update(cfg Config, keys VirtualKeySet) Actions {
	newKeys := keys &^ in.LastKeys

	a := Actions{Keys: keys}

	left := keys.Has(Left)
	right := keys.Has(Right)
	switch {
	case left && !right:
		a.Movement = -in.das(cfg)
	case right && !left:
		a.Movement = in.das(cfg)
	default:
		in.DasCounter = 0
	}

	a.Gravity = fixedpoint.FromRatio(cfg.MsPerTick, cfg.GravityMsPerCell)
	softDropEngaged := keys.Has(Down)
	if cfg.OneShotSoftDrop {
		softDropEngaged = newKeys.Has(Down)
	}
	if softDropEngaged {
		a.Gravity = fixedpoint.FromRatio(cfg.MsPerTick, cfg.SoftDropGravityMsPerCell)
	}

	switch {
	case newKeys.Has(RotateLeft):
		a.Rotation = AntiClockwise
	case newKeys.Has(RotateRight):
		a.Rotation = Clockwise
	case newKeys.Has(RotateHalf):
		a.Rotation = Half
	}

	if newKeys.Has(Hold) {
		a.Extras.Hold = true
	}
	if newKeys.Has(Up) {
		a.Gravity = fixedpoint.FromParts(uint8(cfg.WellHeight), 0)
		a.Extras.HardDrop = true
		a.Extras.Lock = true
	}
	if keys.Has(Quit) {
		a.Extras.Quit = true
	}
	if keys.Has(Restart) {
		a.Extras.Restart = true
	}

	in.LastKeys = keys
	return a
}

// das runs one direction's DAS/ARR state machine and returns the
// magnitude of this tick's movement (sign applied by the caller). Left's
// counter convention from spec §4.7 ("if das_counter > -das_delay_ticks")
// is shared verbatim by both directions; only the sign of the returned
// movement differs. A press that follows a tick with neither (or both)
// directions held finds DasCounter at 0, since that branch resets it;
// switching straight from one direction to the other, with no such tick
// in between, carries the counter over unchanged.
func (in *Interpreter) das(cfg Config) int8 {
	if in.DasCounter > -cfg.DasDelayTicks {
		if in.DasCounter >= 0 {
			in.DasCounter = -1
			return 1
		}
		in.DasCounter--
		return 0
	}
	if cfg.DasSpeedTicks != 0 {
		in.DasCounter -= cfg.DasSpeedTicks - 1
		return 1
	}
	return int8(cfg.WellWidth)
}
