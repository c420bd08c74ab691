package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// GameUpdateInterval is the game logic update interval (clock tick)
	GameUpdateInterval = 50 * time.Millisecond
)

// Signal Queue Limits
const (
	// SignalQueueSize is the fixed capacity of the deferred-dispatch ring buffer
	SignalQueueSize = 2048

	// SignalBufferMask is the bitmask for fast modulo operations (2048 - 1)
	SignalBufferMask = 2047

	// QueueFlushBudget is the maximum dispatches performed per Flush call
	// before control returns to the game loop
	QueueFlushBudget = 256
)

// Pool Defaults
const (
	// SignalPoolCapacity is the initial free-list capacity of the signal pool
	SignalPoolCapacity = 64

	// HandlerPoolCapacity is the initial free-list capacity of the handler pool
	HandlerPoolCapacity = 256

	// HandlerListCapacity is the initial handler slice capacity of a fresh signal
	HandlerListCapacity = 4
)
