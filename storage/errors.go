package storage

import (
	"errors"
	"fmt"

	"github.com/onflow/wallet-dkg/model/dkg"
)

var (
	// Note: there is another not found error: badger.ErrKeyNotFound. The difference between
	// badger.ErrKeyNotFound and storage.ErrNotFound is that:
	// badger.ErrKeyNotFound is the error returned by the badger API.
	// Modules in storage/badger and storage/badger/operation package both
	// return storage.ErrNotFound for not found error
	ErrNotFound = errors.New("key not found")

	ErrAlreadyExists = errors.New("key already exists")
)

// InvalidRoundTransitionError is returned when an update would move the
// wallet creation round along an edge that is not part of the lifecycle
// graph. It is never expected during normal operation.
type InvalidRoundTransitionError struct {
	From dkg.State
	To   dkg.State
}

func NewInvalidRoundTransitionError(from, to dkg.State) error {
	return InvalidRoundTransitionError{From: from, To: to}
}

func (e InvalidRoundTransitionError) Error() string {
	return fmt.Sprintf("invalid round state transition from %s to %s", e.From, e.To)
}

// IsInvalidRoundTransitionError returns true if err is an InvalidRoundTransitionError.
func IsInvalidRoundTransitionError(err error) bool {
	var e InvalidRoundTransitionError
	return errors.As(err, &e)
}
