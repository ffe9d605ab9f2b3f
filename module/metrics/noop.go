package metrics

import (
	"github.com/onflow/wallet-dkg/model/dkg"
	"github.com/onflow/wallet-dkg/model/governance"
	"github.com/onflow/wallet-dkg/module"
)

type NoopCollector struct{}

var _ module.WalletDKGMetrics = (*NoopCollector)(nil)
var _ module.GovernanceMetrics = (*NoopCollector)(nil)
var _ module.CacheMetrics = (*NoopCollector)(nil)
var _ module.StorageMetrics = (*NoopCollector)(nil)

func NewNoopCollector() *NoopCollector {
	nc := &NoopCollector{}
	return nc
}

func (nc *NoopCollector) RoundStateChanged(roundID uint64, state dkg.State) {}
func (nc *NoopCollector) RoundRequested()                                   {}
func (nc *NoopCollector) ResultSubmitted()                                  {}
func (nc *NoopCollector) ResultRejected(kind string)                        {}
func (nc *NoopCollector) ChallengeProcessed(accepted bool)                  {}
func (nc *NoopCollector) RoundRetired(outcome dkg.Outcome)                  {}
func (nc *NoopCollector) ChangeInitiated(id governance.ParameterID)         {}
func (nc *NoopCollector) ChangeFinalized(id governance.ParameterID)         {}
func (nc *NoopCollector) AuthorizedRequesters(count int)                    {}
func (nc *NoopCollector) CacheEntries(resource string, entries uint)        {}
func (nc *NoopCollector) CacheHit(resource string)                          {}
func (nc *NoopCollector) CacheNotFound(resource string)                     {}
func (nc *NoopCollector) CacheMiss(resource string)                         {}
func (nc *NoopCollector) RetryOnConflict()                                  {}
