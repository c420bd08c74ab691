package audio

import (
	"github.com/Vascofr/flixel/game"
	"github.com/Vascofr/flixel/signal"
)

// Wire subscribes the sound manager to the engine lifecycle signals so
// state switches and focus changes play their cues. The handlers live on
// persistent signals and survive state switches; call Unwire to detach
func Wire(sm *SoundManager) *Wiring {
	w := &Wiring{
		sm: sm,
	}
	w.onSwitch = func(*signal.Signal) { sm.Play(CueStateSwitch) }
	w.onFocus = func(*signal.Signal) { sm.Play(CueFocus) }
	game.Signals.PostStateSwitch.Add(w.onSwitch)
	game.Signals.FocusGained.Add(w.onFocus)
	return w
}

// Wiring records the subscriptions made by Wire
type Wiring struct {
	sm       *SoundManager
	onSwitch signal.Callback
	onFocus  signal.Callback
}

// Unwire removes the lifecycle subscriptions
func (w *Wiring) Unwire() {
	game.Signals.PostStateSwitch.Remove(w.onSwitch)
	game.Signals.FocusGained.Remove(w.onFocus)
}
