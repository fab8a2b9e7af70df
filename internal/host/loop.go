// Package host implements the fixed-timestep outer loop spec §5 places
// outside the core: it owns wall-clock scheduling and sleeps off drift
// between ticks. The engine itself never blocks on anything but its single
// per-tick call.
package host

import (
	"time"

	"stackcore/internal/engine"
	"stackcore/internal/input"
)

// KeyReader is the renderer-side collaborator spec §6 calls
// read_keys() -> VirtualKeySet. Physical keyboard handling lives outside
// this module entirely.
type KeyReader interface {
	ReadKeys() input.VirtualKeySet
}

// Renderer is the renderer-side collaborator spec §6 calls
// render(&EngineSnapshot). Never mutates what it's given.
type Renderer interface {
	Render(engine.Snapshot)
}

// Loop drives one Engine at a fixed tick rate, reading input and
// rendering through its two collaborators each iteration.
type Loop struct {
	Engine            *engine.Engine
	Keys              KeyReader
	Renderer          Renderer
	MsPerTick         time.Duration
	TicksPerDrawFrame uint64

	tickCount uint64
}

// New builds a Loop at the given tick period (spec §5 default 16ms).
func New(e *engine.Engine, keys KeyReader, renderer Renderer, msPerTick time.Duration, ticksPerDrawFrame uint64) *Loop {
	if ticksPerDrawFrame == 0 {
		ticksPerDrawFrame = 1
	}
	return &Loop{
		Engine:            e,
		Keys:              keys,
		Renderer:          renderer,
		MsPerTick:         msPerTick,
		TicksPerDrawFrame: ticksPerDrawFrame,
	}
}

// InDrawFrame reports whether the tick just run is also a draw frame
// (spec §6: engine.in_draw_frame() -> bool, surfaced here since drawing
// cadence is the host's concern, not the core's).
func (l *Loop) InDrawFrame() bool {
	return l.tickCount%l.TicksPerDrawFrame == 0
}

// Step runs exactly one tick: read keys, advance the engine, render if
// this tick lands on a draw frame, and report whether the engine has
// now reached a terminal state. Callers that need their own pacing or
// an upper bound on tick count (a bounded replay, say) can drive Step
// directly instead of calling Run.
func (l *Loop) Step() bool {
	keys := l.Keys.ReadKeys()
	l.Engine.Tick(keys)
	l.tickCount++

	if l.Renderer != nil && l.InDrawFrame() {
		l.Renderer.Render(l.Engine.Snapshot())
	}
	return l.Engine.Quit()
}

// Run ticks the engine at MsPerTick until it reports Quit, sleeping off
// whatever time a tick's work didn't consume. A tick that overruns its
// budget is never compensated for by skipping future sleeps beyond
// catching up to zero — this is a simple fixed-step loop, not a
// render-ahead one.
func (l *Loop) Run() {
	period := l.MsPerTick
	next := time.Now().Add(period)

	for {
		if l.Step() {
			return
		}

		if d := time.Until(next); d > 0 {
			time.Sleep(d)
		}
		next = next.Add(period)
	}
}
