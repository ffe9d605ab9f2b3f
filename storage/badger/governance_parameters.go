package badger

import (
	"fmt"

	"github.com/dgraph-io/badger/v2"
	"github.com/ethereum/go-ethereum/common"

	"github.com/onflow/wallet-dkg/model/governance"
	"github.com/onflow/wallet-dkg/module"
	"github.com/onflow/wallet-dkg/storage"
	"github.com/onflow/wallet-dkg/storage/badger/operation"
)

// GovernanceParameters implements storage.GovernanceParameters.
type GovernanceParameters struct {
	db      *badger.DB
	metrics module.StorageMetrics
}

var _ storage.GovernanceParameters = (*GovernanceParameters)(nil)

func NewGovernanceParameters(collector module.StorageMetrics, db *badger.DB) *GovernanceParameters {
	return &GovernanceParameters{
		db:      db,
		metrics: collector,
	}
}

func (g *GovernanceParameters) UintParameter(id governance.ParameterID) (*governance.Parameter[uint64], error) {
	var param governance.Parameter[uint64]
	err := g.db.View(operation.RetrieveGovernanceParameter(id, &param))
	if err != nil {
		return nil, fmt.Errorf("could not retrieve parameter %s: %w", id, err)
	}
	return &param, nil
}

func (g *GovernanceParameters) AddressParameter(id governance.ParameterID) (*governance.Parameter[common.Address], error) {
	var param governance.Parameter[common.Address]
	err := g.db.View(operation.RetrieveGovernanceParameter(id, &param))
	if err != nil {
		return nil, fmt.Errorf("could not retrieve parameter %s: %w", id, err)
	}
	return &param, nil
}

func (g *GovernanceParameters) StoreUintParameters(params map[governance.ParameterID]*governance.Parameter[uint64]) error {
	op := func(tx *badger.Txn) error {
		for id, param := range params {
			err := operation.UpsertGovernanceParameter(id, param)(tx)
			if err != nil {
				return fmt.Errorf("could not store parameter %s: %w", id, err)
			}
		}
		return nil
	}
	return operation.RetryOnConflict(g.db.Update, op, g.metrics.RetryOnConflict)
}

func (g *GovernanceParameters) StoreAddressParameter(id governance.ParameterID, param *governance.Parameter[common.Address]) error {
	return operation.RetryOnConflict(g.db.Update, operation.UpsertGovernanceParameter(id, param), g.metrics.RetryOnConflict)
}
