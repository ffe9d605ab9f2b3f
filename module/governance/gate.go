package governance

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"

	"github.com/onflow/wallet-dkg/model/governance"
	"github.com/onflow/wallet-dkg/module"
	"github.com/onflow/wallet-dkg/storage"
)

// Gate is the authorization layer in front of the ParameterStore and the
// requester allow-list. Initiating changes and managing requesters is
// reserved to the governance address; finalizing a change whose delay has
// passed is open to anyone.
type Gate struct {
	log        zerolog.Logger
	metrics    module.GovernanceMetrics
	chain      module.Chain
	params     *ParameterStore
	requesters storage.AuthorizedRequesters
}

var _ module.RequesterRegistry = (*Gate)(nil)

func NewGate(
	log zerolog.Logger,
	metrics module.GovernanceMetrics,
	chain module.Chain,
	params *ParameterStore,
	requesters storage.AuthorizedRequesters,
) (*Gate, error) {
	g := &Gate{
		log:        log.With().Str("component", "governance_gate").Logger(),
		metrics:    metrics,
		chain:      chain,
		params:     params,
		requesters: requesters,
	}

	all, err := requesters.All()
	if err != nil {
		return nil, fmt.Errorf("could not load authorized requesters: %w", err)
	}
	metrics.AuthorizedRequesters(len(all))
	return g, nil
}

func (g *Gate) requireGovernance(caller common.Address) error {
	if caller != g.params.Governance() {
		g.log.Debug().Str("caller", caller.Hex()).Msg("rejected governance call")
		return ErrUnauthorized
	}
	return nil
}

// InitiateChange starts the timelock for a new value of parameter id.
// Expected errors:
//   - ErrUnauthorized unless caller is governance
//   - ErrUnknownParameter, ErrInvalidParameter
func (g *Gate) InitiateChange(caller common.Address, id governance.ParameterID, value uint64) error {
	err := g.requireGovernance(caller)
	if err != nil {
		return err
	}
	return g.params.InitiateChange(id, value, g.chain.BlockTime())
}

// FinalizeChange applies the pending value of parameter id. Anyone may call it.
// Expected errors:
//   - ErrUnknownParameter, ErrNoPendingChange, ErrDelayNotElapsed, ErrInvalidParameter
func (g *Gate) FinalizeChange(caller common.Address, id governance.ParameterID) (uint64, error) {
	value, err := g.params.FinalizeChange(id, g.chain.BlockTime())
	if err != nil {
		return 0, err
	}
	g.log.Debug().Str("caller", caller.Hex()).Str("parameter", id.String()).Msg("change finalized by caller")
	return value, nil
}

// BeginGovernanceTransfer starts the timelock for handing governance to another address.
// Expected errors:
//   - ErrUnauthorized unless caller is governance
//   - ErrInvalidParameter for the zero address
func (g *Gate) BeginGovernanceTransfer(caller common.Address, to common.Address) error {
	err := g.requireGovernance(caller)
	if err != nil {
		return err
	}
	return g.params.InitiateGovernanceTransfer(to, g.chain.BlockTime())
}

// FinalizeGovernanceTransfer completes a pending governance transfer. Anyone may call it.
// Expected errors:
//   - ErrNoPendingChange, ErrDelayNotElapsed
func (g *Gate) FinalizeGovernanceTransfer(caller common.Address) (common.Address, error) {
	to, err := g.params.FinalizeGovernanceTransfer(g.chain.BlockTime())
	if err != nil {
		return common.Address{}, err
	}
	g.log.Debug().Str("caller", caller.Hex()).Msg("governance transfer finalized by caller")
	return to, nil
}

// AuthorizeRequester allows address to request wallet creation. The change
// takes effect immediately and is idempotent.
// Expected errors:
//   - ErrUnauthorized unless caller is governance
func (g *Gate) AuthorizeRequester(caller common.Address, address common.Address) error {
	err := g.requireGovernance(caller)
	if err != nil {
		return err
	}
	err = g.requesters.Add(address)
	if errors.Is(err, storage.ErrAlreadyExists) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not authorize requester %s: %w", address.Hex(), err)
	}
	g.log.Info().Str("requester", address.Hex()).Msg("requester authorized")
	return g.reportRequesters()
}

// DeauthorizeRequester revokes address. The change takes effect immediately
// and is idempotent.
// Expected errors:
//   - ErrUnauthorized unless caller is governance
func (g *Gate) DeauthorizeRequester(caller common.Address, address common.Address) error {
	err := g.requireGovernance(caller)
	if err != nil {
		return err
	}
	err = g.requesters.Remove(address)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not deauthorize requester %s: %w", address.Hex(), err)
	}
	g.log.Info().Str("requester", address.Hex()).Msg("requester deauthorized")
	return g.reportRequesters()
}

func (g *Gate) IsAuthorizedRequester(address common.Address) (bool, error) {
	return g.requesters.Contains(address)
}

func (g *Gate) AuthorizedRequesters() ([]common.Address, error) {
	return g.requesters.All()
}

func (g *Gate) reportRequesters() error {
	all, err := g.requesters.All()
	if err != nil {
		return fmt.Errorf("could not count authorized requesters: %w", err)
	}
	g.metrics.AuthorizedRequesters(len(all))
	return nil
}
