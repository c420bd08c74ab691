// Package signal implements a pooled publish/subscribe primitive for the
// engine's per-frame event paths.
//
// Signals and their handler records are recycled through explicit free-list
// pools rather than allocated per use, keeping the dispatch hot path free of
// allocator pressure. A Manager tracks every live signal so that transient
// (non-persistent) signals can be released in bulk when the game switches
// states.
//
// Dispatch is synchronous and single-threaded. For producers on other
// goroutines, Queue defers dispatches to the game loop.
package signal
