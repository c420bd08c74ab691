package pool

// Destroyable is implemented by pooled instances that must clear residual
// state when returned to the pool. Destroy runs at put time, not at get time,
// so a freshly acquired instance is already clean.
type Destroyable interface {
	Destroy()
}

// Pool is a slice-backed free list of reusable instances
//
// Thread-Safety: none. All operations must run on the single logical
// thread driving the game loop. The pool exclusively owns instances
// between PutUnsafe and Get; callers must not retain references past put.
type Pool[T any] struct {
	free    []T
	factory func() T
}

// New creates a pool with the given allocation factory and initial
// free-list capacity
func New[T any](capacity int, factory func() T) *Pool[T] {
	return &Pool[T]{
		free:    make([]T, 0, capacity),
		factory: factory,
	}
}

// Get returns a free instance, allocating a new one when the list is empty
func (p *Pool[T]) Get() T {
	if n := len(p.free); n > 0 {
		v := p.free[n-1]
		var zero T
		p.free[n-1] = zero
		p.free = p.free[:n-1]
		return v
	}
	return p.factory()
}

// PutUnsafe returns an instance without checking membership. Calling it
// twice with the same instance corrupts the free list; callers that cannot
// guarantee single ownership should use Put
func (p *Pool[T]) PutUnsafe(v T) {
	if d, ok := any(v).(Destroyable); ok {
		d.Destroy()
	}
	p.free = append(p.free, v)
}

// Put returns an instance, skipping the call if it is already pooled.
// Linear scan; intended for cold paths
func (p *Pool[T]) Put(v T) {
	for i := range p.free {
		if any(p.free[i]) == any(v) {
			return
		}
	}
	p.PutUnsafe(v)
}

// Len returns the number of pooled instances
func (p *Pool[T]) Len() int {
	return len(p.free)
}

// Clear drops every pooled instance, destroying each first
func (p *Pool[T]) Clear() {
	for i := range p.free {
		if d, ok := any(p.free[i]).(Destroyable); ok {
			d.Destroy()
		}
		var zero T
		p.free[i] = zero
	}
	p.free = p.free[:0]
}
