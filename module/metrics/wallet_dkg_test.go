package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/onflow/wallet-dkg/model/dkg"
	"github.com/onflow/wallet-dkg/model/governance"
)

func TestWalletDKGCollector(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := NewWalletDKGCollector(registry)

	collector.RoundRequested()
	collector.RoundStateChanged(7, dkg.Challenge)
	collector.ResultRejected("quorum")
	collector.ResultRejected("quorum")
	collector.ChallengeProcessed(true)
	collector.ChallengeProcessed(false)
	collector.RoundRetired(dkg.Approved)

	assert.Equal(t, float64(1), testutil.ToFloat64(collector.roundsRequested))
	assert.Equal(t, float64(3), testutil.ToFloat64(collector.state))
	assert.Equal(t, float64(7), testutil.ToFloat64(collector.roundID))
	assert.Equal(t, float64(2), testutil.ToFloat64(collector.resultsRejected.WithLabelValues("quorum")))
	assert.Equal(t, float64(1), testutil.ToFloat64(collector.challenges.WithLabelValues(ChallengeAccepted)))
	assert.Equal(t, float64(1), testutil.ToFloat64(collector.challenges.WithLabelValues(ChallengeRejected)))
	assert.Equal(t, float64(1), testutil.ToFloat64(collector.roundsRetired.WithLabelValues("approved")))
}

func TestGovernanceCollector(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := NewGovernanceCollector(registry)

	collector.ChangeInitiated(governance.DKGGroupSize)
	assert.Equal(t, float64(1), testutil.ToFloat64(collector.pendingChanges.WithLabelValues("dkg_group_size")))

	collector.ChangeFinalized(governance.DKGGroupSize)
	assert.Equal(t, float64(0), testutil.ToFloat64(collector.pendingChanges.WithLabelValues("dkg_group_size")))
	assert.Equal(t, float64(1), testutil.ToFloat64(collector.changesFinalized.WithLabelValues("dkg_group_size")))

	collector.AuthorizedRequesters(4)
	assert.Equal(t, float64(4), testutil.ToFloat64(collector.authorizedRequesters))
}

func TestStorageCollector(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := NewStorageCollector(registry)

	collector.CacheMiss(ResourceRoundOutcome)
	collector.CacheHit(ResourceRoundOutcome)
	collector.CacheHit(ResourceRoundOutcome)
	collector.CacheEntries(ResourceRoundOutcome, 1)

	assert.Equal(t, float64(2), testutil.ToFloat64(collector.hits.WithLabelValues(ResourceRoundOutcome)))
	assert.Equal(t, float64(1), testutil.ToFloat64(collector.misses.WithLabelValues(ResourceRoundOutcome)))
	assert.Equal(t, float64(1), testutil.ToFloat64(collector.entries.WithLabelValues(ResourceRoundOutcome)))
}
