package signal

// Callback is the function shape accepted by Add. The dispatching signal is
// passed in so the callback can read UserData for payload access.
type Callback func(*Signal)

// Handler pairs a registered callback with its one-shot flag
//
// Handlers are pooled: created on Add, destroyed (callback cleared) when
// returned to the handler pool via Remove, RemoveAll or signal teardown.
// The key is the callback's code pointer, captured at registration so
// Has and Remove can match by callback (func values are not comparable)
type Handler struct {
	callback Callback
	key      uintptr
	once     bool
}

// Destroy clears the handler for pool reuse
func (h *Handler) Destroy() {
	h.callback = nil
	h.key = 0
	h.once = false
}
