package operation

import (
	"errors"
	"syscall"

	"github.com/dgraph-io/badger/v2"

	"github.com/onflow/wallet-dkg/storage"
)

func SkipDuplicates(op func(*badger.Txn) error) func(tx *badger.Txn) error {
	return func(tx *badger.Txn) error {
		err := op(tx)
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil
		}
		return err
	}
}

func SkipNonExist(op func(*badger.Txn) error) func(tx *badger.Txn) error {
	return func(tx *badger.Txn) error {
		err := op(tx)
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return err
	}
}

// RetryOnConflict re-runs op while the transaction conflicts with a
// concurrent writer. The onConflict hook is called once per retry.
func RetryOnConflict(action func(func(*badger.Txn) error) error, op func(tx *badger.Txn) error, onConflict func()) error {
	for {
		err := action(op)
		if errors.Is(err, badger.ErrConflict) {
			onConflict()
			continue
		}
		return err
	}
}

// TerminateOnFullDisk helper function to crash node if write failed because disk is full
func TerminateOnFullDisk(err error) error {
	// using panic so any deferred functions can still execute
	// relevant badgerDB code: https://github.com/dgraph-io/badger/blob/156819ccb106bbeb207e985f561780e2929344bc/value.go#L1454-L1463
	if err != nil && errors.Is(err, syscall.ENOSPC) {
		panic("disk full, terminating...")
	}
	return err
}
