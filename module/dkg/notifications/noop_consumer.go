package notifications

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/onflow/wallet-dkg/model/dkg"
	dkgmodule "github.com/onflow/wallet-dkg/module/dkg"
)

// NoopConsumer is an implementation of the notifications consumer that
// doesn't do anything.
type NoopConsumer struct{}

var _ dkgmodule.Consumer = (*NoopConsumer)(nil)

func NewNoopConsumer() *NoopConsumer {
	nc := &NoopConsumer{}
	return nc
}

func (*NoopConsumer) OnRoundRequested(uint64, uint64) {}

func (*NoopConsumer) OnSeedDelivered(uint64, []byte, []uint32) {}

func (*NoopConsumer) OnResultSubmitted(uint64, common.Hash, common.Address, uint64) {}

func (*NoopConsumer) OnResultChallenged(uint64, common.Hash, common.Address) {}

func (*NoopConsumer) OnRoundRetired(*dkg.RoundOutcome) {}
