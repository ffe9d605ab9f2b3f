package governance

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"

	"github.com/onflow/wallet-dkg/model/dkg"
	"github.com/onflow/wallet-dkg/model/governance"
	"github.com/onflow/wallet-dkg/module"
	"github.com/onflow/wallet-dkg/storage"
)

// Bootstrap is the parameter set written on first start, when storage holds
// no governance parameters yet.
type Bootstrap struct {
	Parameters dkg.Parameters
	Delay      time.Duration
	Governance common.Address
}

// ParameterStore holds the timelocked governance parameters. Every change
// goes through InitiateChange and, once the governance delay in force at
// initiation has passed, FinalizeChange. The in-memory view only changes
// after the new value has been persisted.
//
// ParameterStore performs no authorization; see Gate.
type ParameterStore struct {
	mu      sync.Mutex
	log     zerolog.Logger
	metrics module.GovernanceMetrics
	storage storage.GovernanceParameters
	uints   map[governance.ParameterID]*governance.Parameter[uint64]
	owner   *governance.Parameter[common.Address]
}

var _ module.DKGParameterSource = (*ParameterStore)(nil)

// NewParameterStore loads the parameters from storage, writing the bootstrap
// values for every parameter that was never stored.
func NewParameterStore(
	log zerolog.Logger,
	metrics module.GovernanceMetrics,
	store storage.GovernanceParameters,
	bootstrap Bootstrap,
) (*ParameterStore, error) {
	err := bootstrap.Parameters.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid bootstrap parameters: %w", err)
	}

	s := &ParameterStore{
		log:     log.With().Str("component", "governance_parameters").Logger(),
		metrics: metrics,
		storage: store,
		uints:   make(map[governance.ParameterID]*governance.Parameter[uint64]),
	}

	defaults := uintValues(bootstrap.Parameters, bootstrap.Delay)
	missing := make(map[governance.ParameterID]*governance.Parameter[uint64])
	for _, id := range governance.UintParameters {
		param, err := store.UintParameter(id)
		if errors.Is(err, storage.ErrNotFound) {
			p := governance.NewParameter(defaults[id])
			param = &p
			missing[id] = param
		} else if err != nil {
			return nil, fmt.Errorf("could not load parameter %s: %w", id, err)
		}
		s.uints[id] = param
	}
	if len(missing) > 0 {
		err = store.StoreUintParameters(missing)
		if err != nil {
			return nil, fmt.Errorf("could not bootstrap parameters: %w", err)
		}
		s.log.Info().Int("count", len(missing)).Msg("bootstrapped governance parameters")
	}

	owner, err := store.AddressParameter(governance.Governance)
	if errors.Is(err, storage.ErrNotFound) {
		p := governance.NewParameter(bootstrap.Governance)
		owner = &p
		err = store.StoreAddressParameter(governance.Governance, owner)
		if err != nil {
			return nil, fmt.Errorf("could not bootstrap governance: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("could not load governance: %w", err)
	}
	s.owner = owner

	return s, nil
}

// DKGParameters returns the round parameters currently in force.
func (s *ParameterStore) DKGParameters() dkg.Parameters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dkgParameters(nil)
}

// dkgParameters assembles the parameters from current values, with override
// substituted for one parameter if given.
func (s *ParameterStore) dkgParameters(override *parameterValue) dkg.Parameters {
	value := func(id governance.ParameterID) uint64 {
		if override != nil && override.id == id {
			return override.value
		}
		return s.uints[id].Current
	}
	return dkg.Parameters{
		GroupSize:                       uint32(value(governance.DKGGroupSize)),
		QuorumBasisPoints:               uint32(value(governance.DKGQuorumBasisPoints)),
		SignatureSize:                   uint32(value(governance.DKGSignatureSize)),
		SeedTimeout:                     value(governance.DKGSeedTimeout),
		ResultSubmissionTimeout:         value(governance.DKGResultSubmissionTimeout),
		ResultChallengePeriodLength:     value(governance.DKGResultChallengePeriodLength),
		SubmitterPrecedencePeriodLength: value(governance.DKGSubmitterPrecedencePeriodLength),
		ResultApprovalTimeout:           value(governance.DKGResultApprovalTimeout),
		MaxResultChallenges:             uint32(value(governance.DKGMaxResultChallenges)),
	}
}

// GovernanceDelay returns the delay applied to changes initiated now.
func (s *ParameterStore) GovernanceDelay() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.governanceDelay()
}

func (s *ParameterStore) governanceDelay() time.Duration {
	return time.Duration(s.uints[governance.GovernanceDelay].Current) * time.Second
}

// GovernanceDelayChangeInitiated returns when the pending governance delay
// change was initiated, or nil if none is pending.
func (s *ParameterStore) GovernanceDelayChangeInitiated() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	initiated := s.uints[governance.GovernanceDelay].ChangeInitiatedAt
	if initiated == nil {
		return nil
	}
	t := *initiated
	return &t
}

// Governance returns the address currently allowed to initiate changes.
func (s *ParameterStore) Governance() common.Address {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.owner.Current
}

// Parameter returns a copy of an integer parameter, including any pending change.
// Expected errors:
//   - ErrUnknownParameter
func (s *ParameterStore) Parameter(id governance.ParameterID) (governance.Parameter[uint64], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	param, ok := s.uints[id]
	if !ok {
		return governance.Parameter[uint64]{}, fmt.Errorf("%s: %w", id, ErrUnknownParameter)
	}
	return copyParameter(param), nil
}

// GovernanceParameter returns a copy of the governance address parameter.
func (s *ParameterStore) GovernanceParameter() governance.Parameter[common.Address] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyParameter(s.owner)
}

// InitiateChange records value as the pending value of parameter id,
// replacing any pending change. The change may be finalized once the current
// governance delay has passed.
// Expected errors:
//   - ErrUnknownParameter
//   - ErrInvalidParameter if the value would make the parameter set invalid
func (s *ParameterStore) InitiateChange(id governance.ParameterID, value uint64, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	param, ok := s.uints[id]
	if !ok {
		return fmt.Errorf("%s: %w", id, ErrUnknownParameter)
	}
	err := s.checkValue(id, value)
	if err != nil {
		return err
	}

	updated := copyParameter(param)
	updated.Initiate(value, now, s.governanceDelay())
	err = s.storage.StoreUintParameters(map[governance.ParameterID]*governance.Parameter[uint64]{id: &updated})
	if err != nil {
		return fmt.Errorf("could not store pending change of %s: %w", id, err)
	}
	s.uints[id] = &updated

	s.metrics.ChangeInitiated(id)
	s.log.Info().
		Str("parameter", id.String()).
		Uint64("value", value).
		Dur("delay", updated.Delay).
		Msg("parameter change initiated")
	return nil
}

// FinalizeChange promotes the pending value of parameter id and returns it.
// The value is validated again against the parameters in force now.
// Expected errors:
//   - ErrUnknownParameter
//   - ErrNoPendingChange
//   - ErrDelayNotElapsed
//   - ErrInvalidParameter
func (s *ParameterStore) FinalizeChange(id governance.ParameterID, now time.Time) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	param, ok := s.uints[id]
	if !ok {
		return 0, fmt.Errorf("%s: %w", id, ErrUnknownParameter)
	}

	updated := copyParameter(param)
	value, err := updated.Finalize(now)
	if err != nil {
		return 0, fmt.Errorf("could not finalize %s: %w", id, err)
	}
	err = s.checkValue(id, value)
	if err != nil {
		return 0, err
	}

	err = s.storage.StoreUintParameters(map[governance.ParameterID]*governance.Parameter[uint64]{id: &updated})
	if err != nil {
		return 0, fmt.Errorf("could not store finalized %s: %w", id, err)
	}
	s.uints[id] = &updated

	s.metrics.ChangeFinalized(id)
	s.log.Info().
		Str("parameter", id.String()).
		Uint64("value", value).
		Msg("parameter change finalized")
	return value, nil
}

// Remaining returns the time left before the pending change of parameter id
// may be finalized.
// Expected errors:
//   - ErrUnknownParameter
//   - ErrNoPendingChange
func (s *ParameterStore) Remaining(id governance.ParameterID, now time.Time) (time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == governance.Governance {
		return s.owner.Remaining(now)
	}
	param, ok := s.uints[id]
	if !ok {
		return 0, fmt.Errorf("%s: %w", id, ErrUnknownParameter)
	}
	return param.Remaining(now)
}

// InitiateGovernanceTransfer records to as the pending governance address.
// Expected errors:
//   - ErrInvalidParameter for the zero address
func (s *ParameterStore) InitiateGovernanceTransfer(to common.Address, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if to == (common.Address{}) {
		return fmt.Errorf("governance cannot be the zero address: %w", ErrInvalidParameter)
	}

	updated := copyParameter(s.owner)
	updated.Initiate(to, now, s.governanceDelay())
	err := s.storage.StoreAddressParameter(governance.Governance, &updated)
	if err != nil {
		return fmt.Errorf("could not store pending governance transfer: %w", err)
	}
	s.owner = &updated

	s.metrics.ChangeInitiated(governance.Governance)
	s.log.Info().Str("to", to.Hex()).Dur("delay", updated.Delay).Msg("governance transfer initiated")
	return nil
}

// FinalizeGovernanceTransfer completes a pending governance transfer and
// returns the new governance address.
// Expected errors:
//   - ErrNoPendingChange
//   - ErrDelayNotElapsed
func (s *ParameterStore) FinalizeGovernanceTransfer(now time.Time) (common.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := copyParameter(s.owner)
	to, err := updated.Finalize(now)
	if err != nil {
		return common.Address{}, fmt.Errorf("could not finalize governance transfer: %w", err)
	}
	err = s.storage.StoreAddressParameter(governance.Governance, &updated)
	if err != nil {
		return common.Address{}, fmt.Errorf("could not store governance transfer: %w", err)
	}
	s.owner = &updated

	s.metrics.ChangeFinalized(governance.Governance)
	s.log.Info().Str("governance", to.Hex()).Msg("governance transferred")
	return to, nil
}

type parameterValue struct {
	id    governance.ParameterID
	value uint64
}

// checkValue validates value for parameter id against the current values of
// every other parameter.
func (s *ParameterStore) checkValue(id governance.ParameterID, value uint64) error {
	switch id {
	case governance.GovernanceDelay:
		if value > uint64(math.MaxInt64/int64(time.Second)) {
			return fmt.Errorf("governance delay %ds overflows: %w", value, ErrInvalidParameter)
		}
		return nil
	case governance.DKGGroupSize, governance.DKGQuorumBasisPoints, governance.DKGSignatureSize, governance.DKGMaxResultChallenges:
		if value > math.MaxUint32 {
			return fmt.Errorf("%s value %d exceeds 32 bits: %w", id, value, ErrInvalidParameter)
		}
	}

	err := s.dkgParameters(&parameterValue{id: id, value: value}).Validate()
	if err != nil {
		return fmt.Errorf("%s value %d rejected: %v: %w", id, value, err, ErrInvalidParameter)
	}
	return nil
}

func uintValues(params dkg.Parameters, delay time.Duration) map[governance.ParameterID]uint64 {
	return map[governance.ParameterID]uint64{
		governance.GovernanceDelay:                    uint64(delay / time.Second),
		governance.DKGGroupSize:                       uint64(params.GroupSize),
		governance.DKGQuorumBasisPoints:               uint64(params.QuorumBasisPoints),
		governance.DKGSignatureSize:                   uint64(params.SignatureSize),
		governance.DKGSeedTimeout:                     params.SeedTimeout,
		governance.DKGResultSubmissionTimeout:         params.ResultSubmissionTimeout,
		governance.DKGResultChallengePeriodLength:     params.ResultChallengePeriodLength,
		governance.DKGSubmitterPrecedencePeriodLength: params.SubmitterPrecedencePeriodLength,
		governance.DKGResultApprovalTimeout:           params.ResultApprovalTimeout,
		governance.DKGMaxResultChallenges:             uint64(params.MaxResultChallenges),
	}
}

func copyParameter[T any](p *governance.Parameter[T]) governance.Parameter[T] {
	c := governance.Parameter[T]{
		Current: p.Current,
		Delay:   p.Delay,
	}
	if p.Pending != nil {
		pending := *p.Pending
		c.Pending = &pending
	}
	if p.ChangeInitiatedAt != nil {
		initiated := *p.ChangeInitiatedAt
		c.ChangeInitiatedAt = &initiated
	}
	return c
}
