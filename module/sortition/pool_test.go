package sortition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/wallet-dkg/utils/unittest"
)

func poolFixture(t *testing.T, n int) *Pool {
	pool := NewPool(unittest.Logger())
	for _, operator := range unittest.AddressListFixture(n) {
		_, err := pool.Join(operator)
		require.NoError(t, err)
	}
	return pool
}

func TestPool_Lock(t *testing.T) {
	pool := poolFixture(t, 3)
	assert.False(t, pool.IsLocked())
	require.ErrorIs(t, pool.Unlock(), ErrPoolUnlocked)

	require.NoError(t, pool.Lock())
	assert.True(t, pool.IsLocked())
	require.ErrorIs(t, pool.Lock(), ErrPoolLocked)

	_, err := pool.Join(unittest.AddressFixture())
	require.ErrorIs(t, err, ErrPoolLocked)

	require.NoError(t, pool.Unlock())
	assert.False(t, pool.IsLocked())
}

func TestPool_Join(t *testing.T) {
	pool := NewPool(unittest.Logger())
	operator := unittest.AddressFixture()

	id, err := pool.Join(operator)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), id)

	again, err := pool.Join(operator)
	require.NoError(t, err)
	assert.Equal(t, id, again)
	assert.Equal(t, 1, pool.Size())

	actual, err := pool.OperatorOf(id)
	require.NoError(t, err)
	assert.Equal(t, operator, actual)

	_, err = pool.OperatorOf(2)
	require.ErrorIs(t, err, ErrUnknownMember)
}

func TestPool_SelectCommittee(t *testing.T) {
	pool := poolFixture(t, 20)
	seed := unittest.SeedFixture(42)

	_, err := pool.SelectCommittee(seed, 5)
	require.ErrorIs(t, err, ErrPoolUnlocked)

	require.NoError(t, pool.Lock())

	committee, err := pool.SelectCommittee(seed, 5)
	require.NoError(t, err)
	require.Len(t, committee, 5)

	// deterministic for the same seed
	again, err := pool.SelectCommittee(seed, 5)
	require.NoError(t, err)
	assert.Equal(t, committee, again)

	// distinct members within range
	seen := make(map[uint32]struct{})
	for _, member := range committee {
		assert.GreaterOrEqual(t, member, uint32(1))
		assert.LessOrEqual(t, member, uint32(20))
		_, duplicate := seen[member]
		assert.False(t, duplicate)
		seen[member] = struct{}{}
	}

	// the full pool can be selected, but not more
	all, err := pool.SelectCommittee(seed, 20)
	require.NoError(t, err)
	assert.ElementsMatch(t, unittest.CommitteeFixture(20), all)
	_, err = pool.SelectCommittee(seed, 21)
	require.Error(t, err)
}
