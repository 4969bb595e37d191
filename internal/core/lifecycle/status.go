package lifecycle

import "sync"

// Status represents the lifecycle of one asynchronous store operation.
type Status string

const (
	// StatusIdle is the initial state, and the state after a reset.
	StatusIdle Status = "idle"
	// StatusPending means a request is in flight.
	StatusPending Status = "pending"
	// StatusFulfilled means the last settled request succeeded.
	StatusFulfilled Status = "fulfilled"
	// StatusRejected means the last settled request failed.
	StatusRejected Status = "rejected"
)

// Ticket identifies one issued request for settlement ordering.
type Ticket uint64

// Tracker follows one operation family of a store: its status, its last
// error, and a monotonically increasing ticket counter. A settlement is
// applied only when no later-numbered ticket has settled before it, so the
// most recently issued request wins regardless of completion order. Stale
// settlements are ignored entirely: they touch neither status, error, nor
// data.
//
// The zero value is ready to use and reports StatusIdle.
type Tracker struct {
	mu      sync.Mutex
	status  Status
	err     error
	issued  uint64
	settled uint64
}

// Begin issues a ticket for a new request and moves the tracker to pending.
func (t *Tracker) Begin() Ticket {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.issued++
	t.status = StatusPending
	return Ticket(t.issued)
}

// Fulfill settles a successful request. When the ticket is still current the
// tracker becomes fulfilled, the error clears, and apply runs under the guard
// so data applications are serialized in settlement order. Returns false when
// the settlement was stale and ignored.
func (t *Tracker) Fulfill(tk Ticket, apply func()) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if uint64(tk) <= t.settled {
		return false
	}

	t.settled = uint64(tk)
	t.status = StatusFulfilled
	t.err = nil

	if apply != nil {
		apply()
	}
	return true
}

// Reject settles a failed request. Data is never touched by a rejection; only
// the status and the error change. Returns false when the settlement was
// stale and ignored.
func (t *Tracker) Reject(tk Ticket, err error) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if uint64(tk) <= t.settled {
		return false
	}

	t.settled = uint64(tk)
	t.status = StatusRejected
	t.err = err
	return true
}

// Reset returns the tracker to idle and clears the error. Resetting an idle
// tracker is a no-op. Issued tickets are unaffected, so late settlements of
// old requests remain guarded after a reset.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.status = StatusIdle
	t.err = nil
}

// Status returns the current status.
func (t *Tracker) Status() Status {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.status == "" {
		return StatusIdle
	}
	return t.status
}

// Err returns the error recorded by the last settled rejection, or nil.
func (t *Tracker) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}
