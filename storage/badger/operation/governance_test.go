package operation

import (
	"testing"
	"time"

	"github.com/dgraph-io/badger/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/wallet-dkg/model/governance"
	"github.com/onflow/wallet-dkg/storage"
	"github.com/onflow/wallet-dkg/utils/unittest"
)

func TestGovernanceParameter_UpsertRetrieve(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		var stored governance.Parameter[uint64]
		err := db.View(RetrieveGovernanceParameter(governance.DKGGroupSize, &stored))
		require.ErrorIs(t, err, storage.ErrNotFound)

		param := governance.NewParameter[uint64](100)
		param.Initiate(64, time.Unix(1_700_000_000, 0), time.Hour)
		require.NoError(t, db.Update(UpsertGovernanceParameter(governance.DKGGroupSize, &param)))

		require.NoError(t, db.View(RetrieveGovernanceParameter(governance.DKGGroupSize, &stored)))
		assert.Equal(t, uint64(100), stored.Current)
		require.NotNil(t, stored.Pending)
		assert.Equal(t, uint64(64), *stored.Pending)
		require.NotNil(t, stored.ChangeInitiatedAt)
		assert.True(t, param.ChangeInitiatedAt.Equal(*stored.ChangeInitiatedAt))
		assert.Equal(t, time.Hour, stored.Delay)

		owner := governance.NewParameter(unittest.AddressFixture())
		require.NoError(t, db.Update(UpsertGovernanceParameter(governance.Governance, &owner)))
		var storedOwner governance.Parameter[common.Address]
		require.NoError(t, db.View(RetrieveGovernanceParameter(governance.Governance, &storedOwner)))
		assert.Equal(t, owner.Current, storedOwner.Current)
		assert.Nil(t, storedOwner.Pending)
	})
}

func TestAuthorizedRequesters(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		addresses := unittest.AddressListFixture(3)
		for _, address := range addresses {
			require.NoError(t, db.Update(InsertAuthorizedRequester(address)))
		}
		require.ErrorIs(t, db.Update(InsertAuthorizedRequester(addresses[0])), storage.ErrAlreadyExists)

		var authorized bool
		require.NoError(t, db.View(CheckAuthorizedRequester(addresses[1], &authorized)))
		assert.True(t, authorized)

		var all []common.Address
		require.NoError(t, db.View(LookupAuthorizedRequesters(&all)))
		assert.ElementsMatch(t, addresses, all)

		require.NoError(t, db.Update(RemoveAuthorizedRequester(addresses[1])))
		require.ErrorIs(t, db.Update(RemoveAuthorizedRequester(addresses[1])), storage.ErrNotFound)
		require.NoError(t, db.View(CheckAuthorizedRequester(addresses[1], &authorized)))
		assert.False(t, authorized)

		require.NoError(t, db.View(LookupAuthorizedRequesters(&all)))
		assert.ElementsMatch(t, []common.Address{addresses[0], addresses[2]}, all)
	})
}
