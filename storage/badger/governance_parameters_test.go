package badger

import (
	"testing"
	"time"

	"github.com/dgraph-io/badger/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/wallet-dkg/model/governance"
	"github.com/onflow/wallet-dkg/module/metrics"
	"github.com/onflow/wallet-dkg/storage"
	"github.com/onflow/wallet-dkg/utils/unittest"
)

func TestGovernanceParameters(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		store := NewGovernanceParameters(metrics.NewNoopCollector(), db)

		_, err := store.UintParameter(governance.DKGGroupSize)
		require.ErrorIs(t, err, storage.ErrNotFound)

		groupSize := governance.NewParameter[uint64](100)
		delay := governance.NewParameter[uint64](3600)
		delay.Initiate(60, time.Unix(1_700_000_000, 0), time.Hour)
		err = store.StoreUintParameters(map[governance.ParameterID]*governance.Parameter[uint64]{
			governance.DKGGroupSize:    &groupSize,
			governance.GovernanceDelay: &delay,
		})
		require.NoError(t, err)

		stored, err := store.UintParameter(governance.DKGGroupSize)
		require.NoError(t, err)
		assert.Equal(t, uint64(100), stored.Current)
		assert.False(t, stored.HasPending())

		stored, err = store.UintParameter(governance.GovernanceDelay)
		require.NoError(t, err)
		require.True(t, stored.HasPending())
		assert.Equal(t, uint64(60), *stored.Pending)

		owner := governance.NewParameter(unittest.AddressFixture())
		require.NoError(t, store.StoreAddressParameter(governance.Governance, &owner))
		storedOwner, err := store.AddressParameter(governance.Governance)
		require.NoError(t, err)
		assert.Equal(t, owner.Current, storedOwner.Current)
	})
}

func TestAuthorizedRequesters(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		store := NewAuthorizedRequesters(metrics.NewNoopCollector(), db)
		requester := unittest.AddressFixture()

		ok, err := store.Contains(requester)
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, store.Add(requester))
		require.ErrorIs(t, store.Add(requester), storage.ErrAlreadyExists)

		ok, err = store.Contains(requester)
		require.NoError(t, err)
		assert.True(t, ok)

		all, err := store.All()
		require.NoError(t, err)
		assert.Equal(t, []common.Address{requester}, all)

		require.NoError(t, store.Remove(requester))
		require.ErrorIs(t, store.Remove(requester), storage.ErrNotFound)
	})
}
