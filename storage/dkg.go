package storage

import (
	"github.com/onflow/wallet-dkg/model/dkg"
)

// RoundUpdate is applied to the current round inside a write transaction. It
// mutates round in place and returns the outcome to archive if the update
// retires the round, nil otherwise. Returning an error discards every change.
type RoundUpdate func(round *dkg.Round) (*dkg.RoundOutcome, error)

// WalletDKGRounds persists the single current wallet creation round and the
// archive of retired rounds.
type WalletDKGRounds interface {

	// Current returns the current round. A store that never held a round
	// returns an idle round with ID 0.
	// No errors are expected during normal operation.
	Current() (*dkg.Round, error)

	// Update applies the given function to the current round and persists the
	// result atomically together with the archived outcome, if any. The
	// function's error is returned unchanged and leaves storage untouched.
	// An update leaving the lifecycle graph returns an InvalidRoundTransitionError
	// and also leaves storage untouched; it is never expected during normal
	// operation. A failure to commit after the function succeeded is an exception.
	Update(update RoundUpdate) error

	// Outcome returns the archived outcome of the given round.
	// Error returns: storage.ErrNotFound
	Outcome(roundID uint64) (*dkg.RoundOutcome, error)

	// Outcomes returns all archived outcomes ordered by round ID.
	// No errors are expected during normal operation.
	Outcomes() ([]*dkg.RoundOutcome, error)
}
