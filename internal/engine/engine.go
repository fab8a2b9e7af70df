// Package engine is the core tick-driven state machine spec §4.8
// describes: it owns the well, the falling piece, the hold slot, the
// preview queue, the randomizer, and the rotation system, and it is a
// pure function of (options, seed, per-tick VirtualKeySet stream).
package engine

import (
	"errors"
	"time"

	"stackcore/internal/input"
	"stackcore/internal/logging"
	"stackcore/internal/options"
	"stackcore/internal/piece"
	"stackcore/internal/prng"
	"stackcore/internal/randomizer"
	"stackcore/internal/rotation"
	"stackcore/internal/well"
)

// ErrUnimplementedInitialAction is returned when Options.InitialActionStyle
// is Trigger: spec §9 leaves its exact semantics an open question and
// defers it to a future extension rather than guessing at behavior that
// would break replay compatibility if guessed wrong.
var ErrUnimplementedInitialAction = errors.New("engine: initial_action_style=Trigger is not implemented")

// Stats tracks the two counters spec §3's Engine state carries.
type Stats struct {
	LinesCleared int
	BlocksPlaced int
}

// Engine is the falling-block state machine. It is single-threaded and
// cooperative: Tick is its only blocking operation, called once per host
// frame (spec §5).
type Engine struct {
	opts      options.Options
	msPerTick uint32
	log       *logging.Logger

	prng        *prng.PRNG
	well        *well.Well
	rotationSys rotation.Rotator
	randomizer  randomizer.Randomizer
	preview     *well.PreviewQueue
	input       input.Interpreter

	state         State
	piece         *piece.Piece
	holdPiece     *piece.Id
	holdAvailable bool
	stats         Stats

	areCounter     uint32
	genericCounter uint32
	totalTicksRaw  int64
}

// New constructs an Engine from validated Options. msPerTick is the
// host's fixed-timestep period (spec §5 default 16ms); it is not part of
// Options because the host, not the core, owns wall-clock scheduling.
func New(opts options.Options, msPerTick uint32, log *logging.Logger) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.InitialActionStyle == options.InitialActionTrigger {
		return nil, ErrUnimplementedInitialAction
	}
	if log == nil {
		log = logging.Default()
	}

	seed := uint32(time.Now().UnixNano())
	if opts.Seed != nil {
		seed = *opts.Seed
	}
	p := prng.New(seed)
	rotSys := rotation.New(opts.RotationSystem)
	rnd := randomizer.New(opts.Randomizer, p)
	w := well.New(opts.WellWidth, opts.WellHeight, opts.WellHidden, rotSys.Blocks)
	preview := well.NewPreviewQueue(opts.PreviewPieceCount, rnd.Next)

	e := &Engine{
		opts:          opts,
		msPerTick:     msPerTick,
		log:           log,
		prng:          p,
		well:          w,
		rotationSys:   rotSys,
		randomizer:    rnd,
		preview:       preview,
		state:         Ready,
		holdAvailable: true,
	}
	return e, nil
}

// State returns the engine's current dispatch state.
func (e *Engine) State() State { return e.state }

// Quit reports whether the host's outer loop should stop after this
// tick's render (spec §6: engine.quit() -> bool). True for any terminal
// state: Quit, GameOver, or Restart.
func (e *Engine) Quit() bool { return e.state.Terminal() }

func (e *Engine) ticks(ms int) uint32 {
	return options.Ticks(ms, int(e.msPerTick))
}

func (e *Engine) spawnCoords() (int8, int8) {
	return piece.SpawnX(e.opts.WellWidth), piece.SpawnY
}

// Tick runs one tick of the state machine per spec §4.8's dispatch order.
func (e *Engine) Tick(keys input.VirtualKeySet) {
	e.totalTicksRaw++

	cfg := input.Config{
		DasDelayTicks:            int32(e.ticks(e.opts.DasDelayMs)),
		DasSpeedTicks:            int32(e.ticks(e.opts.DasSpeedMs)),
		WellWidth:                int32(e.opts.WellWidth),
		WellHeight:               int32(e.opts.WellHeight),
		MsPerTick:                e.msPerTick,
		GravityMsPerCell:         uint32(e.opts.GravityMsPerCell),
		SoftDropGravityMsPerCell: uint32(e.opts.SoftDropGravityMsPerCell),
		OneShotSoftDrop:          e.opts.OneShotSoftDrop,
	}
	actions := e.input.Update(cfg, keys)

	if actions.Extras.Restart {
		e.state = Restart
	}
	if actions.Extras.Quit {
		e.state = Quit
	}

	switch e.state {
	case Ready:
		e.tickReadyOrGo(actions, e.ticks(e.opts.ReadyPhaseLengthMs), Go)
	case Go:
		e.tickReadyOrGo(actions, e.ticks(e.opts.ReadyPhaseLengthMs)+e.ticks(e.opts.GoPhaseLengthMs), NewPiece)
	case Are:
		e.tickAre(actions)
	case NewPiece:
		e.tickNewPiece()
	case Falling, Landed:
		e.tickFallingOrLanded(actions)
	case ClearLines:
		e.tickClearLines()
	case Quit, GameOver, Restart:
		// terminal: no-op
	}
}

// tickReadyOrGo implements the shared Ready/Go dispatch: both allow hold
// and share one generic counter whose threshold differs by phase (spec
// §4.8: "Go: same hold behavior, timer rollover handled in Ready's
// counter comparison").
func (e *Engine) tickReadyOrGo(actions input.Actions, threshold uint32, next State) {
	if actions.Extras.Hold && e.holdAvailable {
		e.preGameHold()
	}
	if e.genericCounter >= threshold {
		e.state = next
		return
	}
	e.genericCounter++
}

// preGameHold draws a piece into the hold slot before a current piece
// exists. infinite_ready_go_hold controls whether this consumes the
// single pre-spawn hold use.
func (e *Engine) preGameHold() {
	id := e.preview.Take(e.randomizer.Next())
	e.holdPiece = &id
	if !e.opts.InfiniteReadyGoHold {
		e.holdAvailable = false
	}
}

func (e *Engine) tickAre(actions input.Actions) {
	if e.opts.AreCancellable && actions.Keys != 0 {
		e.areCounter = 0
		e.state = NewPiece
		return
	}
	e.areCounter++
	if e.areCounter > e.ticks(e.opts.AreDelayMs) {
		e.state = NewPiece
	}
}

func (e *Engine) tickNewPiece() {
	e.genericCounter = 0
	x, y := e.spawnCoords()
	id := e.preview.Take(e.randomizer.Next())
	p := piece.Init(e.well, id, x, y, piece.R0)
	if e.well.IsCollision(p.ID, p.X, p.Y, p.Theta) {
		e.piece = nil
		e.state = GameOver
		e.log.For(logging.ComponentEngine).Info().Int64("tick", e.totalTicksRaw).Msg("spawn collision, game over")
		return
	}
	e.piece = p
	e.holdAvailable = true
	e.state = Falling
}

func (e *Engine) tickFallingOrLanded(actions input.Actions) {
	p := e.piece
	lockDelayTicks := e.ticks(e.opts.LockDelayMs)

	prevY := p.Y
	p.YActual = p.YActual.Add(actions.Gravity)
	p.Y = int8(p.YActual.Integer())

	if p.Y >= p.YHardDrop {
		p.Y = p.YHardDrop
		e.state = Landed
	} else {
		if (e.opts.LockStyle == options.LockStep || e.opts.LockStyle == options.LockMove) && p.Y > prevY {
			p.LockTimer = 0
		}
		e.state = Falling
	}

	if actions.Extras.HardDrop || (p.LockTimer >= lockDelayTicks && e.state == Landed) {
		e.well.Lock(p)
		e.stats.BlocksPlaced++
		e.piece = nil
		e.state = ClearLines
		return
	}

	if actions.Extras.Hold && e.holdAvailable {
		e.inPlayHold()
		p = e.piece
	}

	if r, ok := toPieceRotation(actions.Rotation); ok {
		e.rotationSys.Rotate(e.well, p, r, uint32(e.opts.FloorkickLimit), lockDelayTicks)
	}

	e.applyMovement(p, actions.Movement)

	if e.state == Landed {
		p.LockTimer++
	} else if e.opts.LockStyle != options.LockEntry {
		p.LockTimer = 0
	}
}

func (e *Engine) applyMovement(p *piece.Piece, movement int8) {
	step := int8(1)
	if movement < 0 {
		step = -1
	}
	n := movement
	if n < 0 {
		n = -n
	}
	for i := int8(0); i < n; i++ {
		nx := p.X + step
		if e.well.IsCollision(p.ID, nx, p.Y, p.Theta) {
			break
		}
		p.Move(e.well, nx, p.Y, p.Theta)
	}
}

// inPlayHold implements spec §4.8's hold_piece(): swap the current
// piece's id with the hold slot if populated, else pull from preview;
// respawn at default coordinates; clear hold_available.
func (e *Engine) inPlayHold() {
	x, y := e.spawnCoords()
	current := e.piece.ID

	var nextID piece.Id
	if e.holdPiece != nil {
		nextID = *e.holdPiece
	} else {
		nextID = e.preview.Take(e.randomizer.Next())
	}
	e.holdPiece = &current
	e.piece = piece.Init(e.well, nextID, x, y, piece.R0)
	e.holdAvailable = false
}

func (e *Engine) tickClearLines() {
	cleared := e.well.ClearLines()
	e.stats.LinesCleared += cleared
	if cleared > 0 {
		e.log.For(logging.ComponentEngine).Debug().Int("cleared", cleared).Int("total", e.stats.LinesCleared).Msg("lines cleared")
	}
	if e.stats.LinesCleared >= e.opts.Goal {
		e.state = GameOver
		return
	}
	e.state = Are
}

func toPieceRotation(r input.Rotation) (piece.Rotation, bool) {
	switch r {
	case input.AntiClockwise:
		return piece.AntiClockwise, true
	case input.Clockwise:
		return piece.Clockwise, true
	case input.Half:
		return piece.Half, true
	default:
		return 0, false
	}
}
