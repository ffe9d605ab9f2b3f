package governance

import (
	"errors"
	"time"
)

var (
	// ErrNoPendingChange is returned when finalizing a parameter that has no
	// change in flight.
	ErrNoPendingChange = errors.New("no pending change")
	// ErrDelayNotElapsed is returned when finalizing a change before its
	// governance delay has passed.
	ErrDelayNotElapsed = errors.New("governance delay has not elapsed")
)

// Parameter is a governable value whose changes only take effect after a
// delay. A change is initiated with a new value, which is held as pending
// until finalized.
//
// Invariant: Pending != nil iff ChangeInitiatedAt != nil.
type Parameter[T any] struct {
	Current           T
	Pending           *T
	ChangeInitiatedAt *time.Time
	// Delay is the governance delay in force when the pending change was
	// initiated. It is zero when nothing is pending.
	Delay time.Duration
}

// NewParameter returns a parameter holding value with nothing pending.
func NewParameter[T any](value T) Parameter[T] {
	return Parameter[T]{Current: value}
}

// HasPending returns true if a change is waiting to be finalized.
func (p *Parameter[T]) HasPending() bool {
	return p.Pending != nil
}

// Initiate records value as the pending change, overwriting any change that
// is already pending. The delay restarts at now.
func (p *Parameter[T]) Initiate(value T, now time.Time, delay time.Duration) {
	p.Pending = &value
	p.ChangeInitiatedAt = &now
	p.Delay = delay
}

// Remaining returns the time left until the pending change may be
// finalized, zero if it may be finalized now.
//
// Expected errors:
//   - ErrNoPendingChange if nothing is pending
func (p *Parameter[T]) Remaining(now time.Time) (time.Duration, error) {
	if !p.HasPending() {
		return 0, ErrNoPendingChange
	}
	elapsed := now.Sub(*p.ChangeInitiatedAt)
	if elapsed >= p.Delay {
		return 0, nil
	}
	return p.Delay - elapsed, nil
}

// Finalize promotes the pending value to current once the delay has passed
// and returns the new value.
//
// Expected errors:
//   - ErrNoPendingChange if nothing is pending
//   - ErrDelayNotElapsed if now - ChangeInitiatedAt < Delay
func (p *Parameter[T]) Finalize(now time.Time) (T, error) {
	remaining, err := p.Remaining(now)
	if err != nil {
		var zero T
		return zero, err
	}
	if remaining > 0 {
		var zero T
		return zero, ErrDelayNotElapsed
	}
	p.Current = *p.Pending
	p.Pending = nil
	p.ChangeInitiatedAt = nil
	p.Delay = 0
	return p.Current, nil
}
