package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/onflow/wallet-dkg/module"
)

// StorageCollector reports cache and transaction behaviour of the badger
// storage layer.
type StorageCollector struct {
	entries         *prometheus.GaugeVec
	hits            *prometheus.CounterVec
	misses          *prometheus.CounterVec
	notFounds       *prometheus.CounterVec
	retryOnConflict prometheus.Counter
}

var _ module.CacheMetrics = (*StorageCollector)(nil)
var _ module.StorageMetrics = (*StorageCollector)(nil)

func NewStorageCollector(registerer prometheus.Registerer) *StorageCollector {
	entries := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespaceStorage,
		Subsystem: subsystemCache,
		Name:      "entries_total",
		Help:      "the number of entries in the storage cache",
	}, []string{LabelResource})
	hits := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespaceStorage,
		Subsystem: subsystemCache,
		Name:      "hits_total",
		Help:      "the number of hits for the storage cache",
	}, []string{LabelResource})
	misses := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespaceStorage,
		Subsystem: subsystemCache,
		Name:      "misses_total",
		Help:      "the number of times the queried item was not in the cache but found in the database",
	}, []string{LabelResource})
	notFounds := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespaceStorage,
		Subsystem: subsystemCache,
		Name:      "notfounds_total",
		Help:      "the number of times the queried item was found neither in the cache nor in the database",
	}, []string{LabelResource})
	retryOnConflict := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespaceStorage,
		Subsystem: subsystemBadger,
		Name:      "retry_on_conflict_total",
		Help:      "the number of times a badger transaction was retried after a conflict",
	})
	registerer.MustRegister(entries, hits, misses, notFounds, retryOnConflict)

	return &StorageCollector{
		entries:         entries,
		hits:            hits,
		misses:          misses,
		notFounds:       notFounds,
		retryOnConflict: retryOnConflict,
	}
}

// CacheEntries records the size of the cache for the given resource.
func (c *StorageCollector) CacheEntries(resource string, entries uint) {
	c.entries.WithLabelValues(resource).Set(float64(entries))
}

// CacheHit records the number of hits in the cache for the given resource.
func (c *StorageCollector) CacheHit(resource string) {
	c.hits.WithLabelValues(resource).Inc()
}

// CacheNotFound records the number of times the resource was found neither in
// the cache nor in the database.
func (c *StorageCollector) CacheNotFound(resource string) {
	c.notFounds.WithLabelValues(resource).Inc()
}

// CacheMiss records the number of times the resource was not cached but found
// in the database.
func (c *StorageCollector) CacheMiss(resource string) {
	c.misses.WithLabelValues(resource).Inc()
}

func (c *StorageCollector) RetryOnConflict() {
	c.retryOnConflict.Inc()
}
