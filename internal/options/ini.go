package options

import (
	"fmt"
	"io"

	"gopkg.in/ini.v1"

	"stackcore/internal/randomizer"
	"stackcore/internal/rotation"
)

// parseOptions controls ini.v1's loader behavior for the replay's
// embedded options block: case-insensitive keys per spec §6.
var parseOptions = ini.LoadOptions{Insensitive: true}

// UnknownEnum, UnknownBool, and MalformedLine are the non-fatal option
// parse errors spec §7 lists; the host decides whether to fall back to
// defaults for a field that fails to parse.
type UnknownEnum struct{ Field, Value string }

func (e *UnknownEnum) Error() string {
	return fmt.Sprintf("options: %s has unknown enum value %q", e.Field, e.Value)
}

type UnknownBool struct{ Field, Value string }

func (e *UnknownBool) Error() string {
	return fmt.Sprintf("options: %s has unparseable boolean %q", e.Field, e.Value)
}

type MalformedLine struct {
	Line int
	Text string
}

func (e *MalformedLine) Error() string {
	return fmt.Sprintf("options: malformed line %d: %q", e.Line, e.Text)
}

// Load parses the "[game] key = value" ini block spec §4.9/§6 describes
// (case-insensitive keys, `;`/`#` comments, booleans as
// true/yes/1/false/no/0, `null` for an absent optional) into Options,
// starting from Default() so unmentioned fields keep their defaults.
func Load(r io.Reader) (Options, error) {
	o := Default()

	raw, err := io.ReadAll(r)
	if err != nil {
		return o, fmt.Errorf("options: reading ini block: %w", err)
	}
	cfg, err := ini.LoadSources(parseOptions, raw)
	if err != nil {
		return o, fmt.Errorf("options: parsing ini block: %w", err)
	}
	sec := cfg.Section("game")

	if k := sec.Key("seed"); k.String() != "" {
		if k.String() == "null" {
			o.Seed = nil
		} else {
			v, err := k.Uint()
			if err != nil {
				return o, &MalformedLine{Text: "seed = " + k.String()}
			}
			seed := uint32(v)
			o.Seed = &seed
		}
	}

	setInt(sec, "well_width", &o.WellWidth)
	setInt(sec, "well_height", &o.WellHeight)
	setInt(sec, "well_hidden", &o.WellHidden)
	setInt(sec, "das_speed_ms", &o.DasSpeedMs)
	setInt(sec, "das_delay_ms", &o.DasDelayMs)
	setInt(sec, "are_delay_ms", &o.AreDelayMs)
	setInt(sec, "lock_delay_ms", &o.LockDelayMs)
	setInt(sec, "floorkick_limit", &o.FloorkickLimit)
	setInt(sec, "gravity_ms_per_cell", &o.GravityMsPerCell)
	setInt(sec, "soft_drop_gravity_ms_per_cell", &o.SoftDropGravityMsPerCell)
	setInt(sec, "ready_phase_length_ms", &o.ReadyPhaseLengthMs)
	setInt(sec, "go_phase_length_ms", &o.GoPhaseLengthMs)
	setInt(sec, "preview_piece_count", &o.PreviewPieceCount)
	setInt(sec, "goal", &o.Goal)

	if err := setBool(sec, "warn_on_bad_finesse", &o.WarnOnBadFinesse); err != nil {
		return o, err
	}
	if err := setBool(sec, "are_cancellable", &o.AreCancellable); err != nil {
		return o, err
	}
	if err := setBool(sec, "one_shot_soft_drop", &o.OneShotSoftDrop); err != nil {
		return o, err
	}
	if err := setBool(sec, "infinite_ready_go_hold", &o.InfiniteReadyGoHold); err != nil {
		return o, err
	}
	if err := setBool(sec, "show_ghost", &o.ShowGhost); err != nil {
		return o, err
	}

	if v := sec.Key("lock_style").String(); v != "" {
		switch LockStyle(v) {
		case LockEntry, LockStep, LockMove:
			o.LockStyle = LockStyle(v)
		default:
			return o, &UnknownEnum{Field: "lock_style", Value: v}
		}
	}
	if v := sec.Key("initial_action_style").String(); v != "" {
		switch InitialActionStyle(v) {
		case InitialActionNone, InitialActionPersistent, InitialActionTrigger:
			o.InitialActionStyle = InitialActionStyle(v)
		default:
			return o, &UnknownEnum{Field: "initial_action_style", Value: v}
		}
	}
	if v := sec.Key("rotation_system").String(); v != "" {
		name := rotation.Name(v)
		if !isKnownRotation(name) {
			return o, &UnknownEnum{Field: "rotation_system", Value: v}
		}
		o.RotationSystem = name
	}
	if v := sec.Key("randomizer").String(); v != "" {
		name := randomizer.Name(v)
		if !isKnownRandomizer(name) {
			return o, &UnknownEnum{Field: "randomizer", Value: v}
		}
		o.Randomizer = name
	}

	return o, nil
}

// Save writes Options back out as the same ini shape Load reads, under a
// single [game] section.
func Save(w io.Writer, o Options) error {
	cfg := ini.Empty()
	sec, err := cfg.NewSection("game")
	if err != nil {
		return err
	}

	if o.Seed == nil {
		sec.NewKey("seed", "null")
	} else {
		sec.NewKey("seed", fmt.Sprintf("%d", *o.Seed))
	}
	sec.NewKey("well_width", fmt.Sprintf("%d", o.WellWidth))
	sec.NewKey("well_height", fmt.Sprintf("%d", o.WellHeight))
	sec.NewKey("well_hidden", fmt.Sprintf("%d", o.WellHidden))
	sec.NewKey("das_speed_ms", fmt.Sprintf("%d", o.DasSpeedMs))
	sec.NewKey("das_delay_ms", fmt.Sprintf("%d", o.DasDelayMs))
	sec.NewKey("are_delay_ms", fmt.Sprintf("%d", o.AreDelayMs))
	sec.NewKey("warn_on_bad_finesse", fmt.Sprintf("%t", o.WarnOnBadFinesse))
	sec.NewKey("are_cancellable", fmt.Sprintf("%t", o.AreCancellable))
	sec.NewKey("lock_style", string(o.LockStyle))
	sec.NewKey("lock_delay_ms", fmt.Sprintf("%d", o.LockDelayMs))
	sec.NewKey("floorkick_limit", fmt.Sprintf("%d", o.FloorkickLimit))
	sec.NewKey("one_shot_soft_drop", fmt.Sprintf("%t", o.OneShotSoftDrop))
	sec.NewKey("rotation_system", string(o.RotationSystem))
	sec.NewKey("initial_action_style", string(o.InitialActionStyle))
	sec.NewKey("gravity_ms_per_cell", fmt.Sprintf("%d", o.GravityMsPerCell))
	sec.NewKey("soft_drop_gravity_ms_per_cell", fmt.Sprintf("%d", o.SoftDropGravityMsPerCell))
	sec.NewKey("randomizer", string(o.Randomizer))
	sec.NewKey("ready_phase_length_ms", fmt.Sprintf("%d", o.ReadyPhaseLengthMs))
	sec.NewKey("go_phase_length_ms", fmt.Sprintf("%d", o.GoPhaseLengthMs))
	sec.NewKey("infinite_ready_go_hold", fmt.Sprintf("%t", o.InfiniteReadyGoHold))
	sec.NewKey("preview_piece_count", fmt.Sprintf("%d", o.PreviewPieceCount))
	sec.NewKey("goal", fmt.Sprintf("%d", o.Goal))
	sec.NewKey("show_ghost", fmt.Sprintf("%t", o.ShowGhost))

	_, err = cfg.WriteTo(w)
	return err
}

func setInt(sec *ini.Section, key string, dst *int) {
	k := sec.Key(key)
	if k.String() == "" {
		return
	}
	if v, err := k.Int(); err == nil {
		*dst = v
	}
}

func setBool(sec *ini.Section, key string, dst *bool) error {
	k := sec.Key(key)
	if k.String() == "" {
		return nil
	}
	v, err := k.Bool()
	if err != nil {
		return &UnknownBool{Field: key, Value: k.String()}
	}
	*dst = v
	return nil
}

func isKnownRotation(n rotation.Name) bool {
	switch n {
	case rotation.Srs, rotation.Sega, rotation.Dtet, rotation.Nes, rotation.Arika, rotation.Tgm, rotation.Tgm3:
		return true
	}
	return false
}

func isKnownRandomizer(n randomizer.Name) bool {
	switch n {
	case randomizer.Memoryless, randomizer.Nes, randomizer.Bag7, randomizer.Bag7SeamCheck,
		randomizer.MultiBag2, randomizer.MultiBag4, randomizer.MultiBag9,
		randomizer.Tgm1, randomizer.Tgm2, randomizer.Tgm3:
		return true
	}
	return false
}
