package governance

import (
	"os"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/onflow/wallet-dkg/model/governance"
	"github.com/onflow/wallet-dkg/module/metrics"
	mockmodule "github.com/onflow/wallet-dkg/module/mock"
	bstorage "github.com/onflow/wallet-dkg/storage/badger"
	"github.com/onflow/wallet-dkg/utils/unittest"
)

type GateSuite struct {
	suite.Suite

	dir   string
	db    *badger.DB
	now   time.Time
	chain *mockmodule.Chain

	owner common.Address
	store *ParameterStore
	gate  *Gate
}

func TestGate(t *testing.T) {
	suite.Run(t, new(GateSuite))
}

func (s *GateSuite) SetupTest() {
	s.dir = unittest.TempDir(s.T())
	s.db = unittest.BadgerDB(s.T(), s.dir)
	s.now = time.Unix(1_700_000_000, 0)
	s.chain = mockmodule.NewChain(s.T())
	s.chain.On("BlockTime").Return(func() time.Time { return s.now }).Maybe()

	bootstrap := bootstrapFixture()
	s.owner = bootstrap.Governance
	s.store = newStore(s.T(), s.db, bootstrap)

	collector := metrics.NewNoopCollector()
	gate, err := NewGate(unittest.Logger(), collector, s.chain, s.store, bstorage.NewAuthorizedRequesters(collector, s.db))
	s.Require().NoError(err)
	s.gate = gate
}

func (s *GateSuite) TearDownTest() {
	s.Require().NoError(s.db.Close())
	s.Require().NoError(os.RemoveAll(s.dir))
}

func (s *GateSuite) TestInitiateChange_RequiresGovernance() {
	err := s.gate.InitiateChange(unittest.AddressFixture(), governance.DKGSeedTimeout, 10)
	s.Require().ErrorIs(err, ErrUnauthorized)

	err = s.gate.InitiateChange(s.owner, governance.DKGSeedTimeout, 10)
	s.Require().NoError(err)
}

func (s *GateSuite) TestFinalizeChange_Anyone() {
	s.Require().NoError(s.gate.InitiateChange(s.owner, governance.DKGSeedTimeout, 10))

	s.now = s.now.Add(testDelay - time.Second)
	_, err := s.gate.FinalizeChange(unittest.AddressFixture(), governance.DKGSeedTimeout)
	s.Require().ErrorIs(err, ErrDelayNotElapsed)

	s.now = s.now.Add(time.Second)
	value, err := s.gate.FinalizeChange(unittest.AddressFixture(), governance.DKGSeedTimeout)
	s.Require().NoError(err)
	s.Assert().Equal(uint64(10), value)
	s.Assert().Equal(uint64(10), s.store.DKGParameters().SeedTimeout)
}

func (s *GateSuite) TestGovernanceTransfer() {
	next := unittest.AddressFixture()

	s.Require().ErrorIs(s.gate.BeginGovernanceTransfer(next, next), ErrUnauthorized)
	s.Require().ErrorIs(s.gate.BeginGovernanceTransfer(s.owner, common.Address{}), ErrInvalidParameter)
	s.Require().NoError(s.gate.BeginGovernanceTransfer(s.owner, next))

	remaining, err := s.store.Remaining(governance.Governance, s.now)
	s.Require().NoError(err)
	s.Assert().Equal(testDelay, remaining)

	_, err = s.gate.FinalizeGovernanceTransfer(next)
	s.Require().ErrorIs(err, ErrDelayNotElapsed)
	// the old governance stays in charge until the transfer is finalized
	s.Require().NoError(s.gate.AuthorizeRequester(s.owner, unittest.AddressFixture()))

	s.now = s.now.Add(testDelay)
	to, err := s.gate.FinalizeGovernanceTransfer(next)
	s.Require().NoError(err)
	s.Assert().Equal(next, to)
	s.Assert().Equal(next, s.store.Governance())

	s.Require().ErrorIs(s.gate.InitiateChange(s.owner, governance.DKGSeedTimeout, 10), ErrUnauthorized)
	s.Require().NoError(s.gate.InitiateChange(next, governance.DKGSeedTimeout, 10))
}

func (s *GateSuite) TestRequesters() {
	requester := unittest.AddressFixture()

	s.Require().ErrorIs(s.gate.AuthorizeRequester(requester, requester), ErrUnauthorized)

	ok, err := s.gate.IsAuthorizedRequester(requester)
	s.Require().NoError(err)
	s.Assert().False(ok)

	s.Require().NoError(s.gate.AuthorizeRequester(s.owner, requester))
	// idempotent
	s.Require().NoError(s.gate.AuthorizeRequester(s.owner, requester))

	ok, err = s.gate.IsAuthorizedRequester(requester)
	s.Require().NoError(err)
	s.Assert().True(ok)

	all, err := s.gate.AuthorizedRequesters()
	s.Require().NoError(err)
	s.Assert().Equal([]common.Address{requester}, all)

	s.Require().ErrorIs(s.gate.DeauthorizeRequester(requester, requester), ErrUnauthorized)
	s.Require().NoError(s.gate.DeauthorizeRequester(s.owner, requester))
	s.Require().NoError(s.gate.DeauthorizeRequester(s.owner, requester))

	ok, err = s.gate.IsAuthorizedRequester(requester)
	s.Require().NoError(err)
	s.Assert().False(ok)
}

func TestGate_Metrics(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		bootstrap := bootstrapFixture()
		store := newStore(t, db, bootstrap)
		chain := mockmodule.NewChain(t)

		collector := metrics.NewNoopCollector()
		requesters := bstorage.NewAuthorizedRequesters(collector, db)
		require.NoError(t, requesters.Add(unittest.AddressFixture()))

		gate, err := NewGate(unittest.Logger(), collector, chain, store, requesters)
		require.NoError(t, err)
		all, err := gate.AuthorizedRequesters()
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})
}
