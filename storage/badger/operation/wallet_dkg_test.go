package operation

import (
	"testing"

	"github.com/dgraph-io/badger/v2"
	"github.com/golang/snappy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v4"

	"github.com/onflow/wallet-dkg/model/dkg"
	"github.com/onflow/wallet-dkg/module/irrecoverable"
	"github.com/onflow/wallet-dkg/storage"
	"github.com/onflow/wallet-dkg/utils/unittest"
)

func TestWalletDKGRound_UpsertRetrieve(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		var round dkg.Round
		err := db.View(RetrieveWalletDKGRound(&round))
		require.ErrorIs(t, err, storage.ErrNotFound)

		expected := unittest.RoundFixture()
		err = db.Update(UpsertWalletDKGRound(expected))
		require.NoError(t, err)

		err = db.View(RetrieveWalletDKGRound(&round))
		require.NoError(t, err)
		unittest.RequireRoundsEqual(t, expected, &round)

		// overwrite with an idle record, the pending result must not survive
		idle := &dkg.Round{ID: expected.ID, State: dkg.Idle}
		err = db.Update(UpsertWalletDKGRound(idle))
		require.NoError(t, err)

		var reloaded dkg.Round
		err = db.View(RetrieveWalletDKGRound(&reloaded))
		require.NoError(t, err)
		assert.Equal(t, dkg.Idle, reloaded.State)
		assert.Nil(t, reloaded.ResultHash)
		assert.Nil(t, reloaded.Result)
		assert.Nil(t, reloaded.ChallengeDeadlineBlock)
	})
}

func TestRoundOutcome_InsertRetrieveTraverse(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		round := unittest.RoundFixture()
		outcomes := []*dkg.RoundOutcome{
			dkg.NewRoundOutcome(&dkg.Round{ID: 300, State: dkg.AwaitingSeed}, dkg.SeedTimedOut, 10),
			dkg.NewRoundOutcome(&dkg.Round{ID: 2, State: dkg.AwaitingResult}, dkg.ResultTimedOut, 20),
			dkg.NewRoundOutcome(&dkg.Round{ID: 17, State: dkg.Challenge, Result: round.Result, ResultHash: round.ResultHash}, dkg.Approved, 30),
		}
		for _, outcome := range outcomes {
			require.NoError(t, db.Update(InsertRoundOutcome(outcome)))
		}

		err := db.Update(InsertRoundOutcome(outcomes[0]))
		require.ErrorIs(t, err, storage.ErrAlreadyExists)

		var approved dkg.RoundOutcome
		require.NoError(t, db.View(RetrieveRoundOutcome(17, &approved)))
		assert.Equal(t, dkg.Approved, approved.Outcome)
		assert.Equal(t, round.ResultHash, approved.ResultHash)
		assert.Equal(t, round.Result.GroupPublicKey, approved.GroupPublicKey)

		var missing dkg.RoundOutcome
		require.ErrorIs(t, db.View(RetrieveRoundOutcome(4, &missing)), storage.ErrNotFound)

		var all []*dkg.RoundOutcome
		require.NoError(t, db.View(TraverseRoundOutcomes(&all)))
		require.Len(t, all, 3)
		assert.Equal(t, uint64(2), all[0].RoundID)
		assert.Equal(t, uint64(17), all[1].RoundID)
		assert.Equal(t, uint64(300), all[2].RoundID)
	})
}

// TestCodec_StoredFormat checks that records are stored as snappy
// compressed msgpack and that a corrupted record is an exception.
func TestCodec_StoredFormat(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		expected := unittest.RoundFixture()
		require.NoError(t, db.Update(UpsertWalletDKGRound(expected)))

		err := db.View(func(tx *badger.Txn) error {
			item, err := tx.Get(makePrefix(codeWalletDKGRound))
			require.NoError(t, err)
			return item.Value(func(val []byte) error {
				raw, err := snappy.Decode(nil, val)
				require.NoError(t, err)
				var round dkg.Round
				require.NoError(t, msgpack.Unmarshal(raw, &round))
				unittest.RequireRoundsEqual(t, expected, &round)
				return nil
			})
		})
		require.NoError(t, err)

		err = db.Update(func(tx *badger.Txn) error {
			return tx.Set(makePrefix(codeWalletDKGRound), []byte{0xff, 0xff, 0xff})
		})
		require.NoError(t, err)

		var round dkg.Round
		err = db.View(RetrieveWalletDKGRound(&round))
		require.Error(t, err)
		assert.True(t, irrecoverable.IsException(err))
		assert.NotErrorIs(t, err, storage.ErrNotFound)
	})
}
