package storage

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/onflow/wallet-dkg/model/governance"
)

// GovernanceParameters persists the timelocked governance parameters, one
// record per parameter ID.
type GovernanceParameters interface {

	// UintParameter retrieves an integer parameter.
	// Error returns: storage.ErrNotFound
	UintParameter(id governance.ParameterID) (*governance.Parameter[uint64], error)

	// AddressParameter retrieves an address parameter.
	// Error returns: storage.ErrNotFound
	AddressParameter(id governance.ParameterID) (*governance.Parameter[common.Address], error)

	// StoreUintParameters writes the given integer parameters in one
	// transaction, overwriting previous values.
	// No errors are expected during normal operation.
	StoreUintParameters(params map[governance.ParameterID]*governance.Parameter[uint64]) error

	// StoreAddressParameter writes an address parameter, overwriting the
	// previous value.
	// No errors are expected during normal operation.
	StoreAddressParameter(id governance.ParameterID, param *governance.Parameter[common.Address]) error
}

// AuthorizedRequesters persists the set of addresses allowed to request
// wallet creation.
type AuthorizedRequesters interface {

	// Add authorizes the address.
	// Error returns: storage.ErrAlreadyExists
	Add(address common.Address) error

	// Remove revokes the address.
	// Error returns: storage.ErrNotFound
	Remove(address common.Address) error

	// Contains returns true if the address is authorized.
	// No errors are expected during normal operation.
	Contains(address common.Address) (bool, error)

	// All returns every authorized address in key order.
	// No errors are expected during normal operation.
	All() ([]common.Address, error)
}
