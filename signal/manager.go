package signal

import (
	"github.com/Vascofr/flixel/parameter"
	"github.com/Vascofr/flixel/pool"
)

// Manager owns the signal pool, the handler pool and the registry of live
// (not-yet-pooled) signals. The registry exists solely to implement bulk
// release of non-persistent signals on a state switch.
//
// All operations are single-threaded: pools and the registry are mutated
// only from the logical thread driving the game loop
type Manager struct {
	signals  *pool.Pool[*Signal]
	handlers *pool.Pool[*Handler]
	live     []*Signal

	stateSwitch *Signal
}

// NewManager creates a manager and wires its bulk-cleanup callback, exactly
// once, onto a dedicated persistent state-switch signal
func NewManager() *Manager {
	m := &Manager{
		handlers: pool.New(parameter.HandlerPoolCapacity, func() *Handler {
			return &Handler{}
		}),
	}
	m.signals = pool.New(parameter.SignalPoolCapacity, func() *Signal {
		return &Signal{
			mgr:      m,
			handlers: make([]*Handler, 0, parameter.HandlerListCapacity),
		}
	})
	m.stateSwitch = m.Get(true)
	m.stateSwitch.Add(m.onStateSwitch)
	return m
}

// Get acquires a signal from the pool, allocating when the pool is empty.
// The returned signal is active, has no residual handlers and nil UserData
// (cleared at release time, not here), and is registered as live
func (m *Manager) Get(persist bool) *Signal {
	s := m.signals.Get()
	s.Active = true
	s.Persist = persist
	s.inPool = false
	m.live = append(m.live, s)
	return s
}

// StateSwitch returns the persistent, ever-active signal the game layer
// dispatches on every state transition. Its first registered handler is the
// manager's own transient-signal cleanup
func (m *Manager) StateSwitch() *Signal {
	return m.stateSwitch
}

// Live returns the number of live signals, the state-switch signal included
func (m *Manager) Live() int {
	return len(m.live)
}

// onStateSwitch releases every non-persistent live signal. Reverse
// iteration is required: release unregisters by swap-and-pop, so a
// descending traversal never skips an entry
func (m *Manager) onStateSwitch(*Signal) {
	for i := len(m.live) - 1; i >= 0; i-- {
		if i >= len(m.live) {
			continue
		}
		if s := m.live[i]; !s.Persist {
			s.Release()
		}
	}
}

// unregister drops a signal from the live registry via swap-and-pop.
// No-op when the signal is not registered
func (m *Manager) unregister(s *Signal) {
	for i, v := range m.live {
		if v == s {
			last := len(m.live) - 1
			m.live[i] = m.live[last]
			m.live[last] = nil
			m.live = m.live[:last]
			return
		}
	}
}

// Default is the process-wide manager used by the package-level helpers
// and by the game lifecycle signals
var Default = NewManager()

// Get acquires a transient signal from the default manager
func Get() *Signal {
	return Default.Get(false)
}

// GetPersist acquires a persistent signal from the default manager
func GetPersist() *Signal {
	return Default.Get(true)
}
