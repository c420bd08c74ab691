package signal

import (
	"sync"
	"testing"

	"github.com/Vascofr/flixel/parameter"
)

// TestQueueFlushFIFO verifies deferred dispatches run in push order
func TestQueueFlushFIFO(t *testing.T) {
	m := NewManager()
	q := NewQueue()
	s := m.Get(false)

	var order []any
	s.Add(func(sig *Signal) { order = append(order, sig.UserData) })

	q.PushData(s, 1)
	q.PushData(s, 2)
	q.PushData(s, 3)

	if n := q.Flush(); n != 3 {
		t.Errorf("Expected 3 dispatches, got %d", n)
	}
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("Expected FIFO payload order [1 2 3], got %v", order)
	}

	if n := q.Flush(); n != 0 {
		t.Errorf("Expected empty queue on second flush, got %d", n)
	}
}

// TestQueuePushWithoutData verifies a payload-less push keeps the signal's
// previous UserData
func TestQueuePushWithoutData(t *testing.T) {
	m := NewManager()
	q := NewQueue()
	s := m.Get(false)
	s.UserData = "kept"

	var seen any
	s.Add(func(sig *Signal) { seen = sig.UserData })

	q.Push(s)
	q.Flush()

	if seen != "kept" {
		t.Errorf("Expected previous UserData kept, got %v", seen)
	}
}

// TestQueueDropsReleasedSignals verifies entries whose signal was released
// after enqueue are skipped
func TestQueueDropsReleasedSignals(t *testing.T) {
	m := NewManager()
	q := NewQueue()
	s := m.Get(false)

	count := 0
	s.Add(func(*Signal) { count++ })

	q.Push(s)
	s.Release()

	if n := q.Flush(); n != 0 {
		t.Errorf("Expected 0 dispatches for released signal, got %d", n)
	}
	if count != 0 {
		t.Errorf("Expected no handler runs, got %d", count)
	}
}

// TestQueueConcurrentPush verifies concurrent producers lose no entries
// under the flush budget
func TestQueueConcurrentPush(t *testing.T) {
	m := NewManager()
	q := NewQueue()
	s := m.Get(false)

	seen := make(map[int]bool)
	s.Add(func(sig *Signal) { seen[sig.UserData.(int)] = true })

	numGoroutines := 8
	perGoroutine := 16

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				q.PushData(s, id*100+j)
			}
		}(i)
	}
	wg.Wait()

	total := 0
	for q.Len() > 0 {
		total += q.Flush()
	}

	if total != numGoroutines*perGoroutine {
		t.Errorf("Expected %d dispatches, got %d", numGoroutines*perGoroutine, total)
	}
	if len(seen) != numGoroutines*perGoroutine {
		t.Errorf("Expected %d distinct payloads, got %d", numGoroutines*perGoroutine, len(seen))
	}
}

// TestQueueFlushBudget verifies a single flush dispatches at most the
// configured budget and leaves the rest queued
func TestQueueFlushBudget(t *testing.T) {
	m := NewManager()
	q := NewQueue()
	s := m.Get(false)

	count := 0
	s.Add(func(*Signal) { count++ })

	pushed := parameter.QueueFlushBudget + 10
	for i := 0; i < pushed; i++ {
		q.Push(s)
	}

	if n := q.Flush(); n != parameter.QueueFlushBudget {
		t.Errorf("Expected flush capped at %d, got %d", parameter.QueueFlushBudget, n)
	}
	if q.Len() != 10 {
		t.Errorf("Expected 10 entries left queued, got %d", q.Len())
	}

	q.Flush()
	if count != pushed {
		t.Errorf("Expected %d total dispatches, got %d", pushed, count)
	}
}

// TestQueueOverflowKeepsNewest verifies pushing past capacity overwrites
// the oldest entries
func TestQueueOverflowKeepsNewest(t *testing.T) {
	m := NewManager()
	q := NewQueue()
	s := m.Get(false)

	var last any
	s.Add(func(sig *Signal) { last = sig.UserData })

	over := parameter.SignalQueueSize + 50
	for i := 0; i < over; i++ {
		q.PushData(s, i)
	}

	if q.Len() != parameter.SignalQueueSize {
		t.Errorf("Expected queue saturated at %d, got %d", parameter.SignalQueueSize, q.Len())
	}

	total := 0
	for q.Len() > 0 {
		total += q.Flush()
	}
	if total != parameter.SignalQueueSize {
		t.Errorf("Expected %d dispatches after overflow, got %d", parameter.SignalQueueSize, total)
	}
	if last != over-1 {
		t.Errorf("Expected newest payload %d dispatched last, got %v", over-1, last)
	}
}
