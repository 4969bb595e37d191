package lifecycle

import "sync"

// Broadcaster lets subscribers block until the next visible change of a
// store. Notify closes the current generation channel and replaces it, so
// every waiter wakes exactly once per change.
type Broadcaster struct {
	mu sync.Mutex
	ch chan struct{}
}

// NewBroadcaster creates a ready Broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{ch: make(chan struct{})}
}

// Notify wakes all current watchers.
func (b *Broadcaster) Notify() {
	b.mu.Lock()
	defer b.mu.Unlock()

	close(b.ch)
	b.ch = make(chan struct{})
}

// Watch returns a channel that is closed on the next change.
func (b *Broadcaster) Watch() <-chan struct{} {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ch
}
