package operation

import (
	"github.com/dgraph-io/badger/v2"

	"github.com/onflow/wallet-dkg/model/dkg"
)

// UpsertWalletDKGRound stores the current round, overwriting the previous
// record.
// No errors are expected during normal operation.
func UpsertWalletDKGRound(round *dkg.Round) func(*badger.Txn) error {
	return upsert(makePrefix(codeWalletDKGRound), round)
}

// RetrieveWalletDKGRound retrieves the current round.
// Error returns: storage.ErrNotFound if no round was ever stored.
func RetrieveWalletDKGRound(round *dkg.Round) func(*badger.Txn) error {
	return retrieve(makePrefix(codeWalletDKGRound), round)
}

// InsertRoundOutcome archives the outcome of a retired round.
// Error returns: storage.ErrAlreadyExists if the round was already archived.
func InsertRoundOutcome(outcome *dkg.RoundOutcome) func(*badger.Txn) error {
	return insert(makePrefix(codeRoundOutcome, outcome.RoundID), outcome)
}

// RetrieveRoundOutcome retrieves the archived outcome of the given round.
// Error returns: storage.ErrNotFound
func RetrieveRoundOutcome(roundID uint64, outcome *dkg.RoundOutcome) func(*badger.Txn) error {
	return retrieve(makePrefix(codeRoundOutcome, roundID), outcome)
}

// TraverseRoundOutcomes collects every archived outcome in ascending round ID
// order, which is the key order of the big-endian round ID suffix.
func TraverseRoundOutcomes(outcomes *[]*dkg.RoundOutcome) func(*badger.Txn) error {
	*outcomes = make([]*dkg.RoundOutcome, 0)
	iteration := func() (checkFunc, createFunc, handleFunc) {
		check := func(key []byte) bool {
			return true
		}
		var outcome dkg.RoundOutcome
		create := func() interface{} {
			return &outcome
		}
		handle := func() error {
			o := outcome
			*outcomes = append(*outcomes, &o)
			return nil
		}
		return check, create, handle
	}
	return traverse(makePrefix(codeRoundOutcome), iteration)
}
