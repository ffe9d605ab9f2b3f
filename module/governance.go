package module

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/onflow/wallet-dkg/model/dkg"
)

// RequesterRegistry answers whether an address may request wallet creation.
type RequesterRegistry interface {
	// No errors are expected during normal operation.
	IsAuthorizedRequester(address common.Address) (bool, error)
}

// DKGParameterSource provides the round parameters currently in force.
type DKGParameterSource interface {
	DKGParameters() dkg.Parameters
}
