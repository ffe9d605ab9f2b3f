package dkg_test

import (
	"testing"
	"time"

	"github.com/dgraph-io/badger/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	dkgmodel "github.com/onflow/wallet-dkg/model/dkg"
	"github.com/onflow/wallet-dkg/module/dkg"
	"github.com/onflow/wallet-dkg/module/dkg/notifications"
	"github.com/onflow/wallet-dkg/module/dkg/notifications/pubsub"
	"github.com/onflow/wallet-dkg/module/governance"
	"github.com/onflow/wallet-dkg/module/metrics"
	mockmodule "github.com/onflow/wallet-dkg/module/mock"
	"github.com/onflow/wallet-dkg/module/sortition"
	bstorage "github.com/onflow/wallet-dkg/storage/badger"
	"github.com/onflow/wallet-dkg/utils/unittest"
)

// harness wires a coordinator to the in-memory sortition pool and the
// badger-backed governance components. Only the beacon, wallet owner,
// penalizer and fraud proof verifier are mocked.
type harness struct {
	height     uint64
	pool       *sortition.Pool
	governance common.Address
	requester  common.Address
	randomness common.Address

	chain     *mockmodule.Chain
	beacon    *mockmodule.RandomBeacon
	owner     *mockmodule.WalletOwner
	penalizer *mockmodule.SubmitterPenalizer
	verifier  *mockmodule.FraudProofVerifier

	retired []*dkgmodel.RoundOutcome
}

func newHarness(t *testing.T) *harness {
	h := &harness{
		height:     500,
		pool:       sortition.NewPool(unittest.Logger()),
		governance: unittest.AddressFixture(),
		requester:  unittest.AddressFixture(),
		randomness: unittest.AddressFixture(),
		chain:      mockmodule.NewChain(t),
		beacon:     mockmodule.NewRandomBeacon(t),
		owner:      mockmodule.NewWalletOwner(t),
		penalizer:  mockmodule.NewSubmitterPenalizer(t),
		verifier:   mockmodule.NewFraudProofVerifier(t),
	}
	h.chain.On("BlockHeight").Return(func() uint64 { return h.height }).Maybe()
	h.chain.On("BlockTime").Return(func() time.Time { return time.Unix(int64(h.height)*12, 0) }).Maybe()

	for _, operator := range unittest.AddressListFixture(10) {
		_, err := h.pool.Join(operator)
		require.NoError(t, err)
	}
	return h
}

// coordinator builds a coordinator over db. The governance components are
// bootstrapped on first use and reloaded afterwards.
func (h *harness) coordinator(t *testing.T, db *badger.DB) *dkg.Coordinator {
	collector := metrics.NewNoopCollector()
	store, err := governance.NewParameterStore(unittest.Logger(), collector, bstorage.NewGovernanceParameters(collector, db), governance.Bootstrap{
		Parameters: unittest.ParametersFixture(),
		Delay:      time.Hour,
		Governance: h.governance,
	})
	require.NoError(t, err)
	gate, err := governance.NewGate(unittest.Logger(), collector, h.chain, store, bstorage.NewAuthorizedRequesters(collector, db))
	require.NoError(t, err)
	require.NoError(t, gate.AuthorizeRequester(h.governance, h.requester))

	distributor := pubsub.NewDistributor()
	distributor.AddConsumer(notifications.NewLogConsumer(unittest.Logger()))
	distributor.AddOnRoundRetiredConsumer(func(outcome *dkgmodel.RoundOutcome) {
		h.retired = append(h.retired, outcome)
	})

	coordinator, err := dkg.NewCoordinator(
		unittest.Logger(),
		collector,
		distributor,
		bstorage.NewWalletDKGRounds(collector, db),
		gate,
		store,
		h.beacon,
		h.pool,
		h.owner,
		h.penalizer,
		h.verifier,
		h.chain,
		h.randomness,
	)
	require.NoError(t, err)
	return coordinator
}

// submitterOf returns the operator of the member submitting result.
func (h *harness) submitterOf(t *testing.T, result *dkgmodel.Result) common.Address {
	memberID, ok := result.SubmitterMemberID()
	require.True(t, ok)
	operator, err := h.pool.OperatorOf(memberID)
	require.NoError(t, err)
	return operator
}

// TestCoordinator_EndToEnd runs a round through a successful challenge, a
// corrected resubmission and approval.
func TestCoordinator_EndToEnd(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		h := newHarness(t)
		coordinator := h.coordinator(t, db)
		seed := unittest.SeedFixture(42)

		h.beacon.On("RequestRelayEntry", uint64(1)).Return(nil).Once()
		roundID, err := coordinator.RequestRound(h.requester)
		require.NoError(t, err)
		assert.True(t, h.pool.IsLocked())

		h.height += 3
		require.NoError(t, coordinator.DeliverSeed(h.randomness, roundID, seed))
		round, err := coordinator.Round()
		require.NoError(t, err)
		require.Equal(t, dkgmodel.AwaitingResult, round.State)
		require.Len(t, round.Committee, unittest.DefaultGroupSize)

		// the committee is reproducible from the seed
		expected, err := h.pool.SelectCommittee(seed, unittest.DefaultGroupSize)
		require.NoError(t, err)
		assert.Equal(t, expected, round.Committee)

		// a defective result is submitted and challenged with a fraud proof
		defective := unittest.ResultFixture(round.Committee)
		submitter := h.submitterOf(t, defective)
		h.height += 2
		hash, err := coordinator.SubmitResult(submitter, defective)
		require.NoError(t, err)

		proof := []byte("member 2 signature invalid")
		h.verifier.On("VerifyFraudProof", seed, mock.Anything, proof).Return(true, nil).Once()
		h.penalizer.On("PenalizeSubmitter", roundID, submitter, round.Committee[0]).Return(nil).Once()
		h.height += 4
		require.NoError(t, coordinator.Challenge(unittest.AddressFixture(), defective, proof))

		round, err = coordinator.Round()
		require.NoError(t, err)
		assert.Equal(t, dkgmodel.AwaitingResult, round.State)
		assert.Nil(t, round.ResultHash)
		assert.Equal(t, seed, round.Seed)
		assert.Equal(t, uint32(1), round.Challenges)
		assert.True(t, h.pool.IsLocked())

		// the corrected result survives its challenge period
		corrected := unittest.ResultFixture(round.Committee, unittest.WithSigners(1, 2, 4), unittest.WithSubmitter(2))
		submitter = h.submitterOf(t, corrected)
		h.height++
		correctedHash, err := coordinator.SubmitResult(submitter, corrected)
		require.NoError(t, err)
		assert.NotEqual(t, hash, correctedHash)

		round, err = coordinator.Round()
		require.NoError(t, err)
		h.height = *round.ChallengeDeadlineBlock + 1
		h.owner.On("OnWalletCreated", roundID, corrected.GroupPublicKey, corrected.Members).Return(nil).Once()
		require.NoError(t, coordinator.Finalize(unittest.AddressFixture()))

		state, err := coordinator.State()
		require.NoError(t, err)
		assert.Equal(t, dkgmodel.Idle, state)
		assert.False(t, h.pool.IsLocked())

		err = coordinator.Finalize(unittest.AddressFixture())
		require.ErrorIs(t, err, dkg.ErrNoActiveChallenge)
		h.owner.AssertNumberOfCalls(t, "OnWalletCreated", 1)

		require.Len(t, h.retired, 1)
		assert.Equal(t, dkgmodel.Approved, h.retired[0].Outcome)
		require.NotNil(t, h.retired[0].ResultHash)
		assert.Equal(t, correctedHash, *h.retired[0].ResultHash)
		assert.Equal(t, uint32(1), h.retired[0].Challenges)

		// pool members can change again between rounds
		_, err = h.pool.Join(unittest.AddressFixture())
		require.NoError(t, err)
	})
}

// TestCoordinator_ResumesAfterRestart checks that a round in its challenge
// period survives closing and reopening the database.
func TestCoordinator_ResumesAfterRestart(t *testing.T) {
	h := newHarness(t)
	seed := unittest.SeedFixture(42)
	var (
		roundID uint64
		result  *dkgmodel.Result
		hash    common.Hash
	)

	unittest.RunWithReopenedBadgerDB(t, func(db *badger.DB) {
		coordinator := h.coordinator(t, db)

		h.beacon.On("RequestRelayEntry", uint64(1)).Return(nil).Once()
		var err error
		roundID, err = coordinator.RequestRound(h.requester)
		require.NoError(t, err)
		require.NoError(t, coordinator.DeliverSeed(h.randomness, roundID, seed))

		round, err := coordinator.Round()
		require.NoError(t, err)
		result = unittest.ResultFixture(round.Committee)
		hash, err = coordinator.SubmitResult(h.submitterOf(t, result), result)
		require.NoError(t, err)
	}, func(db *badger.DB) {
		coordinator := h.coordinator(t, db)

		round, err := coordinator.Round()
		require.NoError(t, err)
		require.Equal(t, dkgmodel.Challenge, round.State)
		require.Equal(t, roundID, round.ID)
		require.NotNil(t, round.ResultHash)
		assert.Equal(t, hash, *round.ResultHash)
		assert.True(t, result.Equal(round.Result))

		_, err = coordinator.RequestRound(h.requester)
		require.ErrorIs(t, err, dkg.ErrRoundInProgress)

		h.height = *round.ChallengeDeadlineBlock + 1
		h.owner.On("OnWalletCreated", roundID, result.GroupPublicKey, result.Members).Return(nil).Once()
		require.NoError(t, coordinator.Finalize(h.submitterOf(t, result)))

		outcome, err := coordinator.Outcome(roundID)
		require.NoError(t, err)
		assert.Equal(t, dkgmodel.Approved, outcome.Outcome)
		assert.False(t, h.pool.IsLocked())
	})
}
