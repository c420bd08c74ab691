package signal

import (
	"sync/atomic"

	"github.com/Vascofr/flixel/parameter"
)

// pending is one deferred dispatch: the target signal and its payload
type pending struct {
	sig     *Signal
	data    any
	hasData bool
}

// Queue is a lock-free MPSC ring buffer of deferred dispatches. Producers on
// any goroutine enqueue with Push; the game loop drains with Flush, which
// performs the actual synchronous Dispatch calls on its own thread.
//
// Thread-Safety:
//   - Push: Lock-free CAS, multiple producers OK
//   - Flush: Single consumer (game loop)
//   - Published flags prevent reading partial writes
//
// Overflow: Oldest entries overwritten when full
type Queue struct {
	entries   [parameter.SignalQueueSize]pending
	published [parameter.SignalQueueSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64                          // Read index
	tail      atomic.Uint64                          // Write index
}

func NewQueue() *Queue {
	q := &Queue{}
	q.head.Store(0)
	q.tail.Store(0)
	return q
}

// Push enqueues a deferred Dispatch (previous UserData retained)
func (q *Queue) Push(s *Signal) {
	q.push(pending{sig: s})
}

// PushData enqueues a deferred DispatchData with the given payload
func (q *Queue) PushData(s *Signal, data any) {
	q.push(pending{sig: s, data: data, hasData: true})
}

// push claims a slot using lock-free CAS with published flags.
// Safe for concurrent producers. O(1) amortized
func (q *Queue) push(p pending) {
	for {
		currentTail := q.tail.Load()
		nextTail := currentTail + 1

		if q.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & parameter.SignalBufferMask

			q.entries[idx] = p
			q.published[idx].Store(true) // MUST be after write

			// Advance head if overwriting unread entries
			currentHead := q.head.Load()
			if nextTail-currentHead > parameter.SignalQueueSize {
				q.head.CompareAndSwap(currentHead, nextTail-parameter.SignalQueueSize)
			}
			return
		}
	}
}

// Flush drains pending entries in FIFO order and dispatches each on the
// caller's thread. At most parameter.QueueFlushBudget dispatches run per
// call; the remainder stays queued for the next tick. Returns the number
// of dispatches performed.
//
// Single-consumer design: only the game loop may call Flush. Entries whose
// signal was released after enqueue are dropped
func (q *Queue) Flush() int {
	batch := q.consume()
	dispatched := 0
	for i := range batch {
		p := &batch[i]
		if p.sig == nil || p.sig.inPool {
			continue
		}
		if p.hasData {
			p.sig.DispatchData(p.data)
		} else {
			p.sig.Dispatch()
		}
		dispatched++
	}
	return dispatched
}

// consume returns up to QueueFlushBudget pending entries in FIFO order and
// advances head. Checks published flags for safety
func (q *Queue) consume() []pending {
	for {
		currentHead := q.head.Load()
		currentTail := q.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		maxAvailable := currentTail - currentHead
		if maxAvailable > parameter.SignalQueueSize {
			maxAvailable = parameter.SignalQueueSize
			currentHead = currentTail - parameter.SignalQueueSize
		}
		if maxAvailable > parameter.QueueFlushBudget {
			maxAvailable = parameter.QueueFlushBudget
		}

		result := make([]pending, 0, maxAvailable)
		for i := uint64(0); i < maxAvailable; i++ {
			idx := (currentHead + i) & parameter.SignalBufferMask

			if !q.published[idx].Load() {
				break // Writer incomplete
			}

			result = append(result, q.entries[idx])
			q.entries[idx] = pending{}
			q.published[idx].Store(false)
		}

		newHead := currentHead + uint64(len(result))
		if q.head.CompareAndSwap(currentHead, newHead) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}

// Len returns the approximate pending entry count.
// Lock-free; used for pre-flush heuristics
func (q *Queue) Len() int {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail <= head {
		return 0
	}
	diff := int(tail - head)
	if diff > parameter.SignalQueueSize {
		return parameter.SignalQueueSize
	}
	return diff
}
