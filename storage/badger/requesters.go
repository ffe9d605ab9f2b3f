package badger

import (
	"fmt"

	"github.com/dgraph-io/badger/v2"
	"github.com/ethereum/go-ethereum/common"

	"github.com/onflow/wallet-dkg/module"
	"github.com/onflow/wallet-dkg/storage"
	"github.com/onflow/wallet-dkg/storage/badger/operation"
)

// AuthorizedRequesters implements storage.AuthorizedRequesters with one key
// per authorized address.
type AuthorizedRequesters struct {
	db      *badger.DB
	metrics module.StorageMetrics
}

var _ storage.AuthorizedRequesters = (*AuthorizedRequesters)(nil)

func NewAuthorizedRequesters(collector module.StorageMetrics, db *badger.DB) *AuthorizedRequesters {
	return &AuthorizedRequesters{
		db:      db,
		metrics: collector,
	}
}

func (a *AuthorizedRequesters) Add(address common.Address) error {
	return operation.RetryOnConflict(a.db.Update, operation.InsertAuthorizedRequester(address), a.metrics.RetryOnConflict)
}

func (a *AuthorizedRequesters) Remove(address common.Address) error {
	return operation.RetryOnConflict(a.db.Update, operation.RemoveAuthorizedRequester(address), a.metrics.RetryOnConflict)
}

func (a *AuthorizedRequesters) Contains(address common.Address) (bool, error) {
	var authorized bool
	err := a.db.View(operation.CheckAuthorizedRequester(address, &authorized))
	if err != nil {
		return false, fmt.Errorf("could not check requester %s: %w", address, err)
	}
	return authorized, nil
}

func (a *AuthorizedRequesters) All() ([]common.Address, error) {
	var addresses []common.Address
	err := a.db.View(operation.LookupAuthorizedRequesters(&addresses))
	if err != nil {
		return nil, fmt.Errorf("could not look up requesters: %w", err)
	}
	return addresses, nil
}
