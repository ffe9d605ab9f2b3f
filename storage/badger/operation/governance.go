package operation

import (
	"github.com/dgraph-io/badger/v2"
	"github.com/ethereum/go-ethereum/common"

	"github.com/onflow/wallet-dkg/model/governance"
)

// UpsertGovernanceParameter stores a timelocked parameter under its ID.
// No errors are expected during normal operation.
func UpsertGovernanceParameter[T any](id governance.ParameterID, param *governance.Parameter[T]) func(*badger.Txn) error {
	return upsert(makePrefix(codeGovernanceParameter, id), param)
}

// RetrieveGovernanceParameter retrieves a timelocked parameter by ID.
// Error returns: storage.ErrNotFound
func RetrieveGovernanceParameter[T any](id governance.ParameterID, param *governance.Parameter[T]) func(*badger.Txn) error {
	return retrieve(makePrefix(codeGovernanceParameter, id), param)
}

// InsertAuthorizedRequester adds the address to the requester allow-list.
// Error returns: storage.ErrAlreadyExists
func InsertAuthorizedRequester(address common.Address) func(*badger.Txn) error {
	return insert(makePrefix(codeAuthorizedRequester, address), true)
}

// RemoveAuthorizedRequester removes the address from the requester allow-list.
// Error returns: storage.ErrNotFound
func RemoveAuthorizedRequester(address common.Address) func(*badger.Txn) error {
	return remove(makePrefix(codeAuthorizedRequester, address))
}

// CheckAuthorizedRequester checks whether the address is on the allow-list.
func CheckAuthorizedRequester(address common.Address, authorized *bool) func(*badger.Txn) error {
	return check(makePrefix(codeAuthorizedRequester, address), authorized)
}

// LookupAuthorizedRequesters collects the allow-list in key order. The
// address is recovered from the key; values are not decoded.
func LookupAuthorizedRequesters(addresses *[]common.Address) func(*badger.Txn) error {
	*addresses = make([]common.Address, 0)
	iteration := func() (checkFunc, createFunc, handleFunc) {
		check := func(key []byte) bool {
			*addresses = append(*addresses, common.BytesToAddress(key[1:]))
			return false
		}
		create := func() interface{} {
			return nil
		}
		handle := func() error {
			return nil
		}
		return check, create, handle
	}
	return traverse(makePrefix(codeAuthorizedRequester), iteration)
}
