package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/onflow/wallet-dkg/model/governance"
	"github.com/onflow/wallet-dkg/module"
)

// GovernanceCollector implements metric collection for the timelocked
// parameter store and the requester allow-list.
type GovernanceCollector struct {
	changesInitiated     *prometheus.CounterVec
	changesFinalized     *prometheus.CounterVec
	pendingChanges       *prometheus.GaugeVec
	authorizedRequesters prometheus.Gauge
}

var _ module.GovernanceMetrics = (*GovernanceCollector)(nil)

func NewGovernanceCollector(registerer prometheus.Registerer) *GovernanceCollector {
	changesInitiated := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespaceGovernance,
		Name:      "changes_initiated_total",
		Help:      "the number of parameter changes initiated, by parameter",
	}, []string{LabelParameter})
	changesFinalized := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespaceGovernance,
		Name:      "changes_finalized_total",
		Help:      "the number of parameter changes finalized, by parameter",
	}, []string{LabelParameter})
	pendingChanges := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespaceGovernance,
		Name:      "pending_change",
		Help:      "reported as 1 while a change of the parameter is waiting for its delay",
	}, []string{LabelParameter})
	authorizedRequesters := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespaceGovernance,
		Name:      "authorized_requesters",
		Help:      "the number of addresses allowed to request wallet creation",
	})
	registerer.MustRegister(changesInitiated, changesFinalized, pendingChanges, authorizedRequesters)

	return &GovernanceCollector{
		changesInitiated:     changesInitiated,
		changesFinalized:     changesFinalized,
		pendingChanges:       pendingChanges,
		authorizedRequesters: authorizedRequesters,
	}
}

func (c *GovernanceCollector) ChangeInitiated(id governance.ParameterID) {
	c.changesInitiated.WithLabelValues(id.String()).Inc()
	c.pendingChanges.WithLabelValues(id.String()).Set(1)
}

func (c *GovernanceCollector) ChangeFinalized(id governance.ParameterID) {
	c.changesFinalized.WithLabelValues(id.String()).Inc()
	c.pendingChanges.WithLabelValues(id.String()).Set(0)
}

func (c *GovernanceCollector) AuthorizedRequesters(count int) {
	c.authorizedRequesters.Set(float64(count))
}
