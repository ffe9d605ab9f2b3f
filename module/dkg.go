package module

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/onflow/wallet-dkg/model/dkg"
)

// RandomBeacon is the source of randomness seeding committee selection. A
// requested relay entry is delivered asynchronously to the coordinator's
// DeliverSeed, tagged with the request ID.
type RandomBeacon interface {

	// RequestRelayEntry asks the beacon to produce a relay entry for the
	// given request. It must not block on the entry being produced.
	// No errors are expected during normal operation.
	RequestRelayEntry(requestID uint64) error
}

// SortitionPool is the registry of eligible operators. The coordinator locks
// it for the whole lifetime of a round so that the selection a committee was
// drawn from cannot change underneath it.
type SortitionPool interface {

	// SelectCommittee deterministically selects size member IDs using seed.
	// Selection must be stable for a locked pool.
	SelectCommittee(seed []byte, size uint32) ([]uint32, error)

	// Lock freezes the pool. Locking a locked pool is an error.
	Lock() error

	// Unlock releases the pool. Unlocking an unlocked pool is an error.
	Unlock() error

	IsLocked() bool

	// OperatorOf returns the operator address of a pool member.
	OperatorOf(memberID uint32) (common.Address, error)
}

// WalletOwner is notified once per approved round with the new wallet's
// group public key and committee. Errors wrapped with NewWalletOwnerWarning
// are logged and do not prevent approval; any other error aborts it.
type WalletOwner interface {
	OnWalletCreated(roundID uint64, groupPublicKey []byte, members []uint32) error
}

// SubmitterPenalizer punishes the operator that submitted a result which was
// successfully challenged.
type SubmitterPenalizer interface {
	PenalizeSubmitter(roundID uint64, submitter common.Address, memberID uint32) error
}

// FraudProofVerifier checks evidence that a structurally valid result is
// nevertheless wrong, for instance a signature not matching the member's key.
type FraudProofVerifier interface {

	// VerifyFraudProof returns true if proof demonstrates that result is
	// defective for the round seeded with seed.
	// No errors are expected during normal operation.
	VerifyFraudProof(seed []byte, result *dkg.Result, proof []byte) (bool, error)
}

// WalletOwnerWarning marks a wallet owner callback failure as non-fatal.
type WalletOwnerWarning struct {
	err error
}

func NewWalletOwnerWarning(err error) error {
	return WalletOwnerWarning{err: err}
}

func NewWalletOwnerWarningf(msg string, args ...interface{}) error {
	return WalletOwnerWarning{err: fmt.Errorf(msg, args...)}
}

func (e WalletOwnerWarning) Error() string {
	return e.err.Error()
}

func (e WalletOwnerWarning) Unwrap() error {
	return e.err
}

// IsWalletOwnerWarning returns true if err is a WalletOwnerWarning.
func IsWalletOwnerWarning(err error) bool {
	var warning WalletOwnerWarning
	return errors.As(err, &warning)
}
