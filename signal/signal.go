package signal

import "reflect"

// Signal is a pooled, dispatchable event source holding an ordered list of
// registered handlers
//
// Lifecycle:
//   - Acquired from a Manager (Get), exclusively owned by the caller
//   - Released back to the pool explicitly (Release) or in bulk on a state
//     switch when Persist is false
//   - A pooled signal must not be dispatched or mutated until re-acquired;
//     mutating operations panic on a released instance
type Signal struct {
	// Active suppresses Dispatch when false. Clearing it from inside a
	// running dispatch does not abort the in-progress pass
	Active bool

	// Persist exempts the signal from bulk release on a state switch
	Persist bool

	// UserData is an opaque payload carried to handlers during dispatch
	UserData any

	handlers []*Handler
	mgr      *Manager
	inPool   bool
}

// callbackKey returns the code pointer identity of a callback
func callbackKey(cb Callback) uintptr {
	return reflect.ValueOf(cb).Pointer()
}

func (s *Signal) assertLive() {
	if s.inPool {
		panic("signal: use after release")
	}
}

// Add registers a callback. No uniqueness check: the same callback may be
// added multiple times and is invoked once per registration. Returns the
// signal for chaining
func (s *Signal) Add(cb Callback) *Signal {
	return s.add(cb, false, callbackKey(cb))
}

// AddOnce registers a callback that is removed immediately after its first
// invocation
func (s *Signal) AddOnce(cb Callback) *Signal {
	return s.add(cb, true, callbackKey(cb))
}

func (s *Signal) add(cb Callback, once bool, key uintptr) *Signal {
	s.assertLive()
	h := s.mgr.handlers.Get()
	h.callback = cb
	h.key = key
	h.once = once
	s.handlers = append(s.handlers, h)
	return s
}

// Has reports whether the callback is currently registered
func (s *Signal) Has(cb Callback) bool {
	return s.hasKey(callbackKey(cb))
}

func (s *Signal) hasKey(key uintptr) bool {
	for _, h := range s.handlers {
		if h.key == key {
			return true
		}
	}
	return false
}

// Remove unregisters the first handler matching the callback. Swap-with-last
// removal: O(1), does not preserve order of the remaining handlers. No-op
// when the callback is not registered.
//
// Matching uses the callback's code pointer: closures created at the same
// source location are indistinguishable from each other
func (s *Signal) Remove(cb Callback) {
	s.removeKey(callbackKey(cb))
}

func (s *Signal) removeKey(key uintptr) {
	s.assertLive()
	for i, h := range s.handlers {
		if h.key == key {
			s.removeAt(i)
			return
		}
	}
}

// removeAt overwrites slot i with the last handler and pops the tail,
// returning the removed handler to the pool
func (s *Signal) removeAt(i int) {
	h := s.handlers[i]
	last := len(s.handlers) - 1
	s.handlers[i] = s.handlers[last]
	s.handlers[last] = nil
	s.handlers = s.handlers[:last]
	s.mgr.handlers.PutUnsafe(h)
}

// RemoveAll releases every handler back to the pool and empties the list
func (s *Signal) RemoveAll() {
	s.assertLive()
	for i, h := range s.handlers {
		s.mgr.handlers.PutUnsafe(h)
		s.handlers[i] = nil
	}
	s.handlers = s.handlers[:0]
}

// Len returns the number of registered handlers
func (s *Signal) Len() int {
	return len(s.handlers)
}

// Dispatch invokes every registered handler, keeping the previous UserData
func (s *Signal) Dispatch() {
	s.dispatch()
}

// DispatchData overwrites UserData with the payload before any callback
// runs, then invokes every registered handler. All callbacks in the pass
// observe the same UserData
func (s *Signal) DispatchData(data any) {
	s.assertLive()
	if data != nil {
		s.UserData = data
	}
	s.dispatch()
}

// dispatch iterates the handler list from the last index down to 0. The
// descending order is load-bearing: one-shot handlers are removed via
// swap-and-pop during the pass, which moves the tail element into a slot
// the traversal has already visited, so every handler runs exactly once
// per dispatch regardless of removals.
//
// Re-entrant dispatch (a callback dispatching the same signal) shares the
// live handler list; nested passes are tolerated but not isolated
func (s *Signal) dispatch() {
	s.assertLive()
	if !s.Active || len(s.handlers) == 0 {
		return
	}
	for i := len(s.handlers) - 1; i >= 0; i-- {
		if i >= len(s.handlers) {
			// A nested pass shrank the list past our cursor
			continue
		}
		h := s.handlers[i]
		h.callback(s)
		// A nested pass may have already removed h; only pop the slot
		// if it still holds the same record
		if h.once && i < len(s.handlers) && s.handlers[i] == h {
			s.removeAt(i)
		}
	}
}

// Release returns the signal to its pool. Idempotent: a second call on an
// already-pooled signal is a no-op, preventing double-free of pooled storage
func (s *Signal) Release() {
	if s.inPool {
		return
	}
	s.RemoveAll()
	s.inPool = true
	s.mgr.signals.PutUnsafe(s)
}

// Destroy is the terminal cleanup run by the pool machinery when the signal
// is returned for reuse: clears handlers and UserData and removes the
// instance from the manager's live registry. Invoked through the pool's
// Destroyable hook; safe to call on a pooled instance
func (s *Signal) Destroy() {
	for i, h := range s.handlers {
		s.mgr.handlers.PutUnsafe(h)
		s.handlers[i] = nil
	}
	s.handlers = s.handlers[:0]
	s.UserData = nil
	s.mgr.unregister(s)
}
