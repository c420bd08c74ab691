package game

import (
	"time"

	"github.com/Vascofr/flixel/signal"
)

// Game drives the state machine and the per-tick signal flow. Not a
// renderer: drawing and input stay with the caller, which invokes Update
// and Draw from its own loop thread
type Game struct {
	Queue *signal.Queue

	state   State
	pending State
	focused bool
}

// New creates a game with no installed state
func New() *Game {
	return &Game{
		Queue:   signal.NewQueue(),
		focused: true,
	}
}

// State returns the currently installed state, nil before the first switch
func (g *Game) State() State {
	return g.state
}

// SwitchState requests a transition; the switch happens at the top of the
// next Update so handlers never observe a half-installed state. Passing the
// transition through Update also keeps the switch on the loop thread
func (g *Game) SwitchState(next State) {
	g.pending = next
}

// SwitchStateNow performs the transition immediately: dispatches
// PreStateSwitch (releasing every transient signal), destroys the old
// state, installs the new one, dispatches PostStateSwitch
func (g *Game) SwitchStateNow(next State) {
	Signals.PreStateSwitch.Dispatch()
	if g.state != nil {
		g.state.Destroy(g)
	}
	g.state = next
	if g.state != nil {
		g.state.Create(g)
	}
	Signals.PostStateSwitch.Dispatch()
}

// Update runs one logic tick: applies any pending state switch, flushes
// deferred dispatches, and brackets the state update with the PreUpdate
// and PostUpdate signals
func (g *Game) Update(dt time.Duration) {
	if g.pending != nil {
		next := g.pending
		g.pending = nil
		g.SwitchStateNow(next)
	}

	Signals.PreUpdate.Dispatch()
	g.Queue.Flush()
	if g.state != nil {
		g.state.Update(g, dt)
	}
	Signals.PostUpdate.Dispatch()
}

// Draw brackets the caller's rendering with the PreDraw and PostDraw
// signals; the caller renders between the two
func (g *Game) Draw(render func()) {
	Signals.PreDraw.Dispatch()
	if render != nil {
		render()
	}
	Signals.PostDraw.Dispatch()
}

// SetFocus dispatches FocusGained or FocusLost on transitions
func (g *Game) SetFocus(focused bool) {
	if focused == g.focused {
		return
	}
	g.focused = focused
	if focused {
		Signals.FocusGained.Dispatch()
	} else {
		Signals.FocusLost.Dispatch()
	}
}

// Resize dispatches the typed Resized signal with the new dimensions
func (g *Game) Resize(width, height int) {
	Signals.Resized.Dispatch(ResizePayload{Width: width, Height: height})
}
