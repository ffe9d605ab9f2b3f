package dkg

import (
	"github.com/ethereum/go-ethereum/common"

	dkgmodel "github.com/onflow/wallet-dkg/model/dkg"
)

// Consumer consumes notifications of round transitions produced by the
// Coordinator. Notifications are emitted only after the transition was
// persisted, in the order the transitions happened.
// Prerequisites:
// Implementation must be concurrency safe; Non-blocking;
// and must not call back into the Coordinator.
type Consumer interface {

	// OnRoundRequested notifies that a new round locked the sortition pool
	// and is waiting for its seed.
	OnRoundRequested(roundID uint64, requestBlock uint64)

	// OnSeedDelivered notifies that the seed arrived and the committee was
	// selected with it.
	OnSeedDelivered(roundID uint64, seed []byte, committee []uint32)

	// OnResultSubmitted notifies that a result entered its challenge period,
	// which ends at challengeDeadline.
	OnResultSubmitted(roundID uint64, resultHash common.Hash, submitter common.Address, challengeDeadline uint64)

	// OnResultChallenged notifies that the pending result was successfully
	// challenged and discarded.
	OnResultChallenged(roundID uint64, resultHash common.Hash, challenger common.Address)

	// OnRoundRetired notifies that the round returned to idle with the given
	// outcome. The outcome is archived at this point.
	OnRoundRetired(outcome *dkgmodel.RoundOutcome)
}
