package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/onflow/wallet-dkg/model/dkg"
	"github.com/onflow/wallet-dkg/module"
)

// WalletDKGCollector implements metric collection for the wallet creation
// coordinator.
type WalletDKGCollector struct {
	state            prometheus.Gauge
	roundID          prometheus.Gauge
	roundsRequested  prometheus.Counter
	resultsSubmitted prometheus.Counter
	resultsRejected  *prometheus.CounterVec
	challenges       *prometheus.CounterVec
	roundsRetired    *prometheus.CounterVec
}

var _ module.WalletDKGMetrics = (*WalletDKGCollector)(nil)

func NewWalletDKGCollector(registerer prometheus.Registerer) *WalletDKGCollector {
	state := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespaceWalletDKG,
		Subsystem: subsystemCoordinator,
		Name:      "state",
		Help:      "current wallet creation state (0=IDLE, 1=AWAITING_SEED, 2=AWAITING_RESULT, 3=CHALLENGE)",
	})
	roundID := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespaceWalletDKG,
		Subsystem: subsystemCoordinator,
		Name:      "round_id",
		Help:      "the ID of the latest wallet creation round",
	})
	roundsRequested := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespaceWalletDKG,
		Subsystem: subsystemCoordinator,
		Name:      "rounds_requested_total",
		Help:      "the number of wallet creation rounds requested",
	})
	resultsSubmitted := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespaceWalletDKG,
		Subsystem: subsystemCoordinator,
		Name:      "results_submitted_total",
		Help:      "the number of DKG results accepted into the challenge period",
	})
	resultsRejected := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespaceWalletDKG,
		Subsystem: subsystemValidation,
		Name:      "results_rejected_total",
		Help:      "the number of DKG results rejected by validation, by failing check",
	}, []string{LabelKind})
	challenges := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespaceWalletDKG,
		Subsystem: subsystemCoordinator,
		Name:      "challenges_total",
		Help:      "the number of result challenges, by whether the challenge was accepted",
	}, []string{LabelResult})
	roundsRetired := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespaceWalletDKG,
		Subsystem: subsystemCoordinator,
		Name:      "rounds_retired_total",
		Help:      "the number of wallet creation rounds retired, by outcome",
	}, []string{LabelOutcome})
	registerer.MustRegister(state, roundID, roundsRequested, resultsSubmitted, resultsRejected, challenges, roundsRetired)

	return &WalletDKGCollector{
		state:            state,
		roundID:          roundID,
		roundsRequested:  roundsRequested,
		resultsSubmitted: resultsSubmitted,
		resultsRejected:  resultsRejected,
		challenges:       challenges,
		roundsRetired:    roundsRetired,
	}
}

// RoundStateChanged reports the state the current round moved into.
func (c *WalletDKGCollector) RoundStateChanged(roundID uint64, state dkg.State) {
	c.roundID.Set(float64(roundID))
	c.state.Set(float64(state))
}

func (c *WalletDKGCollector) RoundRequested() {
	c.roundsRequested.Inc()
}

func (c *WalletDKGCollector) ResultSubmitted() {
	c.resultsSubmitted.Inc()
}

func (c *WalletDKGCollector) ResultRejected(kind string) {
	c.resultsRejected.WithLabelValues(kind).Inc()
}

func (c *WalletDKGCollector) ChallengeProcessed(accepted bool) {
	if accepted {
		c.challenges.WithLabelValues(ChallengeAccepted).Inc()
		return
	}
	c.challenges.WithLabelValues(ChallengeRejected).Inc()
}

func (c *WalletDKGCollector) RoundRetired(outcome dkg.Outcome) {
	c.roundsRetired.WithLabelValues(outcome.String()).Inc()
}
