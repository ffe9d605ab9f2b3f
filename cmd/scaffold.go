package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/dgraph-io/badger/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/onflow/wallet-dkg/config"
	"github.com/onflow/wallet-dkg/module"
	"github.com/onflow/wallet-dkg/module/dkg"
	"github.com/onflow/wallet-dkg/module/dkg/notifications"
	"github.com/onflow/wallet-dkg/module/dkg/notifications/pubsub"
	"github.com/onflow/wallet-dkg/module/governance"
	"github.com/onflow/wallet-dkg/module/metrics"
	bstorage "github.com/onflow/wallet-dkg/storage/badger"
)

// Collaborators are the external systems a wallet DKG node is attached to.
type Collaborators struct {
	Beacon    module.RandomBeacon
	Pool      module.SortitionPool
	Owner     module.WalletOwner
	Penalizer module.SubmitterPenalizer
	Verifier  module.FraudProofVerifier
	Chain     module.Chain
}

// WalletDKGNode holds the components of a wallet DKG node.
type WalletDKGNode struct {
	Config      config.Config
	Logger      zerolog.Logger
	DB          *badger.DB
	Parameters  *governance.ParameterStore
	Gate        *governance.Gate
	Distributor *pubsub.Distributor
	Coordinator *dkg.Coordinator
}

// InitLogger creates the node logger with UTC timestamps at the configured level.
func InitLogger(conf config.Config) zerolog.Logger {
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	return zerolog.New(os.Stderr).With().Timestamp().Logger().Level(conf.Level())
}

// InitDatabase opens the badger database in the configured data directory.
func InitDatabase(conf config.Config) (*badger.DB, error) {
	db, err := badger.Open(badger.DefaultOptions(conf.DataDir).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("could not open key-value store at %s: %w", conf.DataDir, err)
	}
	return db, nil
}

// NewWalletDKGNode wires the governance parameter store, the governance gate
// and the coordinator over db. On first start the governance parameters are
// bootstrapped from conf; afterwards the stored values win. Collectors are
// registered with registerer and every coordinator event is logged.
func NewWalletDKGNode(
	log zerolog.Logger,
	conf config.Config,
	db *badger.DB,
	registerer prometheus.Registerer,
	collaborators Collaborators,
) (*WalletDKGNode, error) {
	err := conf.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	storageMetrics := metrics.NewStorageCollector(registerer)
	governanceMetrics := metrics.NewGovernanceCollector(registerer)
	dkgMetrics := metrics.NewWalletDKGCollector(registerer)

	params, err := governance.NewParameterStore(log, governanceMetrics, bstorage.NewGovernanceParameters(storageMetrics, db), conf.Bootstrap())
	if err != nil {
		return nil, fmt.Errorf("could not initialize governance parameters: %w", err)
	}
	gate, err := governance.NewGate(log, governanceMetrics, collaborators.Chain, params, bstorage.NewAuthorizedRequesters(storageMetrics, db))
	if err != nil {
		return nil, fmt.Errorf("could not initialize governance gate: %w", err)
	}

	distributor := pubsub.NewDistributor()
	distributor.AddConsumer(notifications.NewLogConsumer(log))

	coordinator, err := dkg.NewCoordinator(
		log,
		dkgMetrics,
		distributor,
		bstorage.NewWalletDKGRounds(storageMetrics, db),
		gate,
		params,
		collaborators.Beacon,
		collaborators.Pool,
		collaborators.Owner,
		collaborators.Penalizer,
		collaborators.Verifier,
		collaborators.Chain,
		conf.RandomnessSourceAddress(),
	)
	if err != nil {
		return nil, fmt.Errorf("could not initialize coordinator: %w", err)
	}

	log.Info().
		Str("datadir", conf.DataDir).
		Str("governance", params.Governance().Hex()).
		Msg("wallet dkg node initialized")

	return &WalletDKGNode{
		Config:      conf,
		Logger:      log,
		DB:          db,
		Parameters:  params,
		Gate:        gate,
		Distributor: distributor,
		Coordinator: coordinator,
	}, nil
}
