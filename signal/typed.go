package signal

import "reflect"

// Typed wraps a Signal with a typed payload. The payload rides UserData, so
// untyped handlers added directly on the underlying signal still observe it
type Typed[T any] struct {
	Signal *Signal
}

// NewTyped acquires a typed signal from the default manager
func NewTyped[T any](persist bool) Typed[T] {
	return Typed[T]{Signal: Default.Get(persist)}
}

// TypedFrom wraps an already-acquired signal
func TypedFrom[T any](s *Signal) Typed[T] {
	return Typed[T]{Signal: s}
}

// typedKey identifies a typed callback the same way Add identifies an
// untyped one, so Has and Remove keep working through the wrapper
func typedKey[T any](cb func(T)) uintptr {
	return reflect.ValueOf(cb).Pointer()
}

func wrap[T any](cb func(T)) Callback {
	return func(s *Signal) {
		v, _ := s.UserData.(T)
		cb(v)
	}
}

// Add registers a typed callback
func (t Typed[T]) Add(cb func(T)) Typed[T] {
	t.Signal.add(wrap(cb), false, typedKey(cb))
	return t
}

// AddOnce registers a typed callback removed after its first invocation
func (t Typed[T]) AddOnce(cb func(T)) Typed[T] {
	t.Signal.add(wrap(cb), true, typedKey(cb))
	return t
}

// Has reports whether the typed callback is registered
func (t Typed[T]) Has(cb func(T)) bool {
	return t.Signal.hasKey(typedKey(cb))
}

// Remove unregisters the first handler matching the typed callback
func (t Typed[T]) Remove(cb func(T)) {
	t.Signal.removeKey(typedKey(cb))
}

// RemoveAll empties the handler list
func (t Typed[T]) RemoveAll() {
	t.Signal.RemoveAll()
}

// Dispatch sets UserData to the payload and invokes every handler
func (t Typed[T]) Dispatch(v T) {
	t.Signal.DispatchData(v)
}

// Release returns the underlying signal to its pool
func (t Typed[T]) Release() {
	t.Signal.Release()
}
