package governance

import (
	"errors"

	"github.com/onflow/wallet-dkg/model/governance"
)

var (
	// ErrUnauthorized is returned when a governance-only operation is called
	// by another address.
	ErrUnauthorized = errors.New("caller is not governance")
	// ErrUnknownParameter is returned for parameter IDs the store does not hold.
	ErrUnknownParameter = errors.New("unknown governance parameter")
	// ErrInvalidParameter is returned when a value would make the parameter
	// set inconsistent.
	ErrInvalidParameter = errors.New("invalid governance parameter value")

	ErrNoPendingChange = governance.ErrNoPendingChange
	ErrDelayNotElapsed = governance.ErrDelayNotElapsed
)
