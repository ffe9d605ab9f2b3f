package badger

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v2"

	"github.com/onflow/wallet-dkg/model/dkg"
	"github.com/onflow/wallet-dkg/module"
	"github.com/onflow/wallet-dkg/module/irrecoverable"
	"github.com/onflow/wallet-dkg/module/metrics"
	"github.com/onflow/wallet-dkg/storage"
	"github.com/onflow/wallet-dkg/storage/badger/operation"
)

// WalletDKGRounds implements storage.WalletDKGRounds. The current round is a
// single record rewritten on every transition; outcomes are append-only and
// served through an LRU cache.
type WalletDKGRounds struct {
	db       *badger.DB
	outcomes *Cache[uint64, *dkg.RoundOutcome]
}

var _ storage.WalletDKGRounds = (*WalletDKGRounds)(nil)

func NewWalletDKGRounds(collector module.CacheMetrics, db *badger.DB) *WalletDKGRounds {
	retrieve := func(roundID uint64) func(*badger.Txn) (*dkg.RoundOutcome, error) {
		return func(tx *badger.Txn) (*dkg.RoundOutcome, error) {
			var outcome dkg.RoundOutcome
			err := operation.RetrieveRoundOutcome(roundID, &outcome)(tx)
			return &outcome, err
		}
	}

	return &WalletDKGRounds{
		db: db,
		outcomes: newCache[uint64, *dkg.RoundOutcome](collector, metrics.ResourceRoundOutcome,
			withLimit[uint64, *dkg.RoundOutcome](100),
			withRetrieve(retrieve),
		),
	}
}

func (r *WalletDKGRounds) Current() (*dkg.Round, error) {
	tx := r.db.NewTransaction(false)
	defer tx.Discard()
	return r.currentTx(tx)
}

func (r *WalletDKGRounds) currentTx(tx *badger.Txn) (*dkg.Round, error) {
	var round dkg.Round
	err := operation.RetrieveWalletDKGRound(&round)(tx)
	if errors.Is(err, storage.ErrNotFound) {
		return dkg.NewIdleRound(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not retrieve current round: %w", err)
	}
	return &round, nil
}

// Update applies update to the current round within one write transaction.
// Transitions are checked against the round lifecycle graph before anything
// is written.
func (r *WalletDKGRounds) Update(update storage.RoundUpdate) error {
	tx := r.db.NewTransaction(true)
	defer tx.Discard()

	round, err := r.currentTx(tx)
	if err != nil {
		return err
	}
	from := round.State

	outcome, err := update(round)
	if err != nil {
		return err
	}

	if !from.CanTransitionTo(round.State) {
		return storage.NewInvalidRoundTransitionError(from, round.State)
	}

	// from here on the caller may have performed side effects that cannot be
	// rolled back, so every failure is an exception
	err = operation.UpsertWalletDKGRound(round)(tx)
	if err != nil {
		return irrecoverable.NewExceptionf("could not store round %d: %w", round.ID, err)
	}
	if outcome != nil {
		err = operation.InsertRoundOutcome(outcome)(tx)
		if err != nil {
			return irrecoverable.NewExceptionf("could not archive outcome of round %d: %w", outcome.RoundID, err)
		}
	}
	err = operation.TerminateOnFullDisk(tx.Commit())
	if err != nil {
		return irrecoverable.NewExceptionf("could not commit round %d: %w", round.ID, err)
	}

	if outcome != nil {
		r.outcomes.Insert(outcome.RoundID, outcome)
	}
	return nil
}

func (r *WalletDKGRounds) Outcome(roundID uint64) (*dkg.RoundOutcome, error) {
	tx := r.db.NewTransaction(false)
	defer tx.Discard()
	return r.outcomes.Get(roundID)(tx)
}

func (r *WalletDKGRounds) Outcomes() ([]*dkg.RoundOutcome, error) {
	var outcomes []*dkg.RoundOutcome
	err := r.db.View(operation.TraverseRoundOutcomes(&outcomes))
	if err != nil {
		return nil, fmt.Errorf("could not traverse round outcomes: %w", err)
	}
	return outcomes, nil
}
