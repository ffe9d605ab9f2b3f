package module

import (
	"github.com/onflow/wallet-dkg/model/dkg"
	"github.com/onflow/wallet-dkg/model/governance"
)

// WalletDKGMetrics is the metrics interface of the wallet creation coordinator.
type WalletDKGMetrics interface {
	// RoundStateChanged reports the state the round moved into.
	RoundStateChanged(roundID uint64, state dkg.State)

	RoundRequested()

	// ResultSubmitted reports a result entering the challenge period.
	ResultSubmitted()

	// ResultRejected reports a submission failing validation with the given kind.
	ResultRejected(kind string)

	ChallengeProcessed(accepted bool)

	RoundRetired(outcome dkg.Outcome)
}

type GovernanceMetrics interface {
	ChangeInitiated(id governance.ParameterID)
	ChangeFinalized(id governance.ParameterID)
	AuthorizedRequesters(count int)
}

type CacheMetrics interface {
	// CacheEntries report the total number of cached items
	CacheEntries(resource string, entries uint)
	// CacheHit report the number of times the queried item is found in the cache
	CacheHit(resource string)
	// CacheNotFound records the number of times the queried item was not found in either cache or database.
	CacheNotFound(resource string)
	// CacheMiss report the number of times the queried item is not found in the cache, but found in the database.
	CacheMiss(resource string)
}

type StorageMetrics interface {
	RetryOnConflict()
}
