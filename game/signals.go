package game

import "github.com/Vascofr/flixel/signal"

// ResizePayload carries the new screen dimensions on Signals.Resized
type ResizePayload struct {
	Width  int
	Height int
}

// LifecycleSignals groups the engine-wide signals dispatched by the game
// loop. All of them are persistent and ever-active: they survive state
// switches and live for the whole process.
//
// PreStateSwitch doubles as the bulk-cleanup trigger: the signal manager's
// transient-signal release runs as its first handler
type LifecycleSignals struct {
	PreStateSwitch  *signal.Signal
	PostStateSwitch *signal.Signal
	PreUpdate       *signal.Signal
	PostUpdate      *signal.Signal
	PreDraw         *signal.Signal
	PostDraw        *signal.Signal
	FocusGained     *signal.Signal
	FocusLost       *signal.Signal
	Resized         signal.Typed[ResizePayload]
}

func newLifecycleSignals(m *signal.Manager) *LifecycleSignals {
	return &LifecycleSignals{
		PreStateSwitch:  m.StateSwitch(),
		PostStateSwitch: m.Get(true),
		PreUpdate:       m.Get(true),
		PostUpdate:      m.Get(true),
		PreDraw:         m.Get(true),
		PostDraw:        m.Get(true),
		FocusGained:     m.Get(true),
		FocusLost:       m.Get(true),
		Resized:         signal.TypedFrom[ResizePayload](m.Get(true)),
	}
}

// Signals is the process-wide lifecycle signal set, backed by the default
// signal manager
var Signals = newLifecycleSignals(signal.Default)
