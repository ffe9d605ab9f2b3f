package badger

import (
	"errors"
	"testing"

	"github.com/dgraph-io/badger/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/wallet-dkg/model/dkg"
	"github.com/onflow/wallet-dkg/module/irrecoverable"
	"github.com/onflow/wallet-dkg/module/metrics"
	"github.com/onflow/wallet-dkg/storage"
	"github.com/onflow/wallet-dkg/utils/unittest"
)

// TestWalletDKGRounds_EmptyStore verifies that a fresh store reports an idle
// round with ID 0 and an empty archive.
func TestWalletDKGRounds_EmptyStore(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		store := NewWalletDKGRounds(metrics.NewNoopCollector(), db)

		round, err := store.Current()
		require.NoError(t, err)
		assert.Equal(t, dkg.Idle, round.State)
		assert.Equal(t, uint64(0), round.ID)

		_, err = store.Outcome(1)
		require.ErrorIs(t, err, storage.ErrNotFound)

		outcomes, err := store.Outcomes()
		require.NoError(t, err)
		assert.Empty(t, outcomes)
	})
}

func TestWalletDKGRounds_Update(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		store := NewWalletDKGRounds(metrics.NewNoopCollector(), db)

		t.Run("transition is persisted", func(t *testing.T) {
			err := store.Update(func(round *dkg.Round) (*dkg.RoundOutcome, error) {
				round.ID++
				round.SeedRequestID = round.ID
				round.State = dkg.AwaitingSeed
				round.RequestBlock = 10
				return nil, nil
			})
			require.NoError(t, err)

			round, err := store.Current()
			require.NoError(t, err)
			assert.Equal(t, uint64(1), round.ID)
			assert.Equal(t, dkg.AwaitingSeed, round.State)
			assert.Equal(t, uint64(10), round.RequestBlock)
		})

		t.Run("update error leaves the round untouched", func(t *testing.T) {
			sentinel := errors.New("rejected")
			err := store.Update(func(round *dkg.Round) (*dkg.RoundOutcome, error) {
				round.State = dkg.AwaitingResult
				return nil, sentinel
			})
			require.ErrorIs(t, err, sentinel)

			round, err := store.Current()
			require.NoError(t, err)
			assert.Equal(t, dkg.AwaitingSeed, round.State)
		})

		t.Run("edges outside the lifecycle graph are rejected", func(t *testing.T) {
			err := store.Update(func(round *dkg.Round) (*dkg.RoundOutcome, error) {
				round.State = dkg.Challenge
				return nil, nil
			})
			require.Error(t, err)
			assert.True(t, storage.IsInvalidRoundTransitionError(err))
			assert.False(t, irrecoverable.IsException(err))

			var transition storage.InvalidRoundTransitionError
			require.ErrorAs(t, err, &transition)
			assert.Equal(t, dkg.AwaitingSeed, transition.From)
			assert.Equal(t, dkg.Challenge, transition.To)

			round, err := store.Current()
			require.NoError(t, err)
			assert.Equal(t, dkg.AwaitingSeed, round.State)
		})

		t.Run("retirement archives the outcome atomically", func(t *testing.T) {
			err := store.Update(func(round *dkg.Round) (*dkg.RoundOutcome, error) {
				outcome := dkg.NewRoundOutcome(round, dkg.SeedTimedOut, 40)
				round.Retire()
				return outcome, nil
			})
			require.NoError(t, err)

			round, err := store.Current()
			require.NoError(t, err)
			assert.Equal(t, dkg.Idle, round.State)
			assert.Equal(t, uint64(1), round.ID)

			outcome, err := store.Outcome(1)
			require.NoError(t, err)
			assert.Equal(t, dkg.SeedTimedOut, outcome.Outcome)
			assert.Equal(t, uint64(40), outcome.RetiredAtBlock)

			outcomes, err := store.Outcomes()
			require.NoError(t, err)
			require.Len(t, outcomes, 1)
			assert.Equal(t, uint64(1), outcomes[0].RoundID)
		})
	})
}

// TestWalletDKGRounds_Restart verifies that a store opened over an existing
// database sees the round and archive written before the restart.
func TestWalletDKGRounds_Restart(t *testing.T) {
	expected := unittest.RoundFixture()
	unittest.RunWithReopenedBadgerDB(t, func(db *badger.DB) {
		store := NewWalletDKGRounds(metrics.NewNoopCollector(), db)
		require.NoError(t, store.Update(func(round *dkg.Round) (*dkg.RoundOutcome, error) {
			*round = *expected.Copy()
			round.State = dkg.AwaitingSeed
			return nil, nil
		}))
	}, func(db *badger.DB) {
		store := NewWalletDKGRounds(metrics.NewNoopCollector(), db)
		round, err := store.Current()
		require.NoError(t, err)
		assert.Equal(t, expected.ID, round.ID)
		assert.Equal(t, dkg.AwaitingSeed, round.State)
		assert.True(t, expected.Result.Equal(round.Result))
	})
}
