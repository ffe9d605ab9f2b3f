package metrics

// Prometheus metric namespaces
const (
	namespaceWalletDKG  = "wallet_dkg"
	namespaceGovernance = "governance"
	namespaceStorage    = "storage"
)

// Storage subsystems represent the various components of the storage layer.
const (
	subsystemBadger = "badger"
	subsystemCache  = "cache"
)

// Wallet DKG subsystems.
const (
	subsystemCoordinator = "coordinator"
	subsystemValidation  = "validation"
)
