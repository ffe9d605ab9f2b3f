package dkg

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	dkgmodel "github.com/onflow/wallet-dkg/model/dkg"
	"github.com/onflow/wallet-dkg/module"
	"github.com/onflow/wallet-dkg/module/validation"
	"github.com/onflow/wallet-dkg/storage"
)

// Coordinator drives wallet creation rounds through their lifecycle:
//
//	Idle -> AwaitingSeed -> AwaitingResult -> Challenge -> Idle
//
// A successful challenge sends the round back to AwaitingResult with the
// same seed, or retires it once MaxResultChallenges results were discarded.
// Every non-idle state can be retired by NotifyTimeout once its deadline
// passed. Deadlines are block heights and are evaluated when an operation is
// called; the Coordinator runs no goroutines.
//
// All operations are serialized. Each either persists its full effect or
// leaves the round unchanged; collaborator side effects performed before a
// failure are compensated. The sortition pool is locked exactly while the
// round is not idle.
type Coordinator struct {
	mu sync.Mutex

	log      zerolog.Logger
	metrics  module.WalletDKGMetrics
	consumer Consumer
	rounds   storage.WalletDKGRounds

	requesters module.RequesterRegistry
	params     module.DKGParameterSource
	beacon     module.RandomBeacon
	pool       module.SortitionPool
	owner      module.WalletOwner
	penalizer  module.SubmitterPenalizer
	verifier   module.FraudProofVerifier
	chain      module.Chain

	// randomnessSource is the only address allowed to deliver seeds.
	randomnessSource common.Address
}

// NewCoordinator creates a coordinator resuming whatever round is stored.
func NewCoordinator(
	log zerolog.Logger,
	metrics module.WalletDKGMetrics,
	consumer Consumer,
	rounds storage.WalletDKGRounds,
	requesters module.RequesterRegistry,
	params module.DKGParameterSource,
	beacon module.RandomBeacon,
	pool module.SortitionPool,
	owner module.WalletOwner,
	penalizer module.SubmitterPenalizer,
	verifier module.FraudProofVerifier,
	chain module.Chain,
	randomnessSource common.Address,
) (*Coordinator, error) {
	c := &Coordinator{
		log:              log.With().Str("component", "wallet_dkg_coordinator").Logger(),
		metrics:          metrics,
		consumer:         consumer,
		rounds:           rounds,
		requesters:       requesters,
		params:           params,
		beacon:           beacon,
		pool:             pool,
		owner:            owner,
		penalizer:        penalizer,
		verifier:         verifier,
		chain:            chain,
		randomnessSource: randomnessSource,
	}

	round, err := rounds.Current()
	if err != nil {
		return nil, fmt.Errorf("could not load current round: %w", err)
	}
	if round.State.InProgress() != pool.IsLocked() {
		c.log.Warn().
			Uint64("round_id", round.ID).
			Str("state", round.State.String()).
			Bool("pool_locked", pool.IsLocked()).
			Msg("sortition pool lock does not match stored round")
	}
	metrics.RoundStateChanged(round.ID, round.State)
	c.log.Info().
		Uint64("round_id", round.ID).
		Str("state", round.State.String()).
		Msg("coordinator resumed")

	return c, nil
}

// RequestRound starts a new round: the parameters in force are snapshotted,
// the sortition pool is locked and a seed is requested from the beacon with
// the new round ID as request ID.
// Expected errors:
//   - ErrUnauthorized if caller is not an authorized requester
//   - ErrRoundInProgress unless the coordinator is idle
func (c *Coordinator) RequestRound(caller common.Address) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	authorized, err := c.requesters.IsAuthorizedRequester(caller)
	if err != nil {
		return 0, fmt.Errorf("could not check requester %s: %w", caller.Hex(), err)
	}
	if !authorized {
		return 0, fmt.Errorf("%s may not request wallets: %w", caller.Hex(), ErrUnauthorized)
	}

	height := c.chain.BlockHeight()
	var requested *dkgmodel.Round
	err = c.rounds.Update(func(round *dkgmodel.Round) (*dkgmodel.RoundOutcome, error) {
		if round.State != dkgmodel.Idle {
			return nil, fmt.Errorf("round %d is %s: %w", round.ID, round.State, ErrRoundInProgress)
		}
		params := c.params.DKGParameters()

		err := c.pool.Lock()
		if err != nil {
			return nil, fmt.Errorf("could not lock sortition pool: %w", err)
		}
		id := round.ID + 1
		err = c.beacon.RequestRelayEntry(id)
		if err != nil {
			return nil, c.unlockAfter(fmt.Errorf("could not request relay entry for round %d: %w", id, err))
		}

		*round = dkgmodel.Round{
			ID:            id,
			State:         dkgmodel.AwaitingSeed,
			SeedRequestID: id,
			RequestBlock:  height,
			Parameters:    params,
		}
		requested = round.Copy()
		return nil, nil
	})
	if err != nil {
		return 0, err
	}

	c.metrics.RoundRequested()
	c.metrics.RoundStateChanged(requested.ID, requested.State)
	c.consumer.OnRoundRequested(requested.ID, requested.RequestBlock)
	c.log.Info().
		Uint64("round_id", requested.ID).
		Hex("requester", caller[:]).
		Uint64("request_block", height).
		Msg("wallet creation round requested")
	return requested.ID, nil
}

// DeliverSeed accepts the relay entry requested for the current round and
// selects the committee with it.
// Expected errors:
//   - ErrUnauthorized if caller is not the randomness source
//   - ErrUnexpectedSeed unless the round awaits a seed for requestID
//   - ErrRoundTimedOut if the seed timeout passed
func (c *Coordinator) DeliverSeed(caller common.Address, requestID uint64, seed []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if caller != c.randomnessSource {
		return fmt.Errorf("%s is not the randomness source: %w", caller.Hex(), ErrUnauthorized)
	}
	if len(seed) == 0 {
		return fmt.Errorf("empty seed: %w", ErrUnexpectedSeed)
	}

	height := c.chain.BlockHeight()
	var delivered *dkgmodel.Round
	err := c.rounds.Update(func(round *dkgmodel.Round) (*dkgmodel.RoundOutcome, error) {
		if round.State != dkgmodel.AwaitingSeed || round.SeedRequestID != requestID {
			return nil, fmt.Errorf("seed for request %d while round %d is %s: %w",
				requestID, round.ID, round.State, ErrUnexpectedSeed)
		}
		if height > round.SeedDeadline() {
			return nil, fmt.Errorf("seed deadline %d passed at height %d: %w", round.SeedDeadline(), height, ErrRoundTimedOut)
		}

		committee, err := c.pool.SelectCommittee(seed, round.Parameters.GroupSize)
		if err != nil {
			return nil, fmt.Errorf("could not select committee for round %d: %w", round.ID, err)
		}

		round.Seed = bytes.Clone(seed)
		round.Committee = committee
		round.StartBlock = height
		round.ResultSubmissionStartBlock = height
		round.State = dkgmodel.AwaitingResult
		delivered = round.Copy()
		return nil, nil
	})
	if err != nil {
		return err
	}

	c.metrics.RoundStateChanged(delivered.ID, delivered.State)
	c.consumer.OnSeedDelivered(delivered.ID, delivered.Seed, delivered.Committee)
	c.log.Info().
		Uint64("round_id", delivered.ID).
		Hex("seed", delivered.Seed).
		Int("committee_size", len(delivered.Committee)).
		Msg("seed delivered, committee selected")
	return nil
}

// SubmitResult validates a result against the round's committee and
// parameters and opens its challenge period. The caller must operate the
// member the result names as submitter. Returns the result hash.
// Expected errors:
//   - ErrResultAlreadySubmitted if a result is in its challenge period
//   - ErrNotAwaitingResult in any other state but AwaitingResult
//   - ErrRoundTimedOut if the submission timeout passed
//   - validation.ValidationError if the result fails validation
//   - ErrSubmitterMismatch if caller does not operate the submitting member
func (c *Coordinator) SubmitResult(caller common.Address, result *dkgmodel.Result) (common.Hash, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	height := c.chain.BlockHeight()
	var submitted *dkgmodel.Round
	err := c.rounds.Update(func(round *dkgmodel.Round) (*dkgmodel.RoundOutcome, error) {
		switch round.State {
		case dkgmodel.AwaitingResult:
		case dkgmodel.Challenge:
			return nil, fmt.Errorf("round %d already has result %s: %w", round.ID, round.ResultHash.Hex(), ErrResultAlreadySubmitted)
		default:
			return nil, fmt.Errorf("round %d is %s: %w", round.ID, round.State, ErrNotAwaitingResult)
		}
		if height > round.ResultSubmissionDeadline() {
			return nil, fmt.Errorf("submission deadline %d passed at height %d: %w",
				round.ResultSubmissionDeadline(), height, ErrRoundTimedOut)
		}

		err := validation.ValidateResult(result, round.Committee, round.Parameters)
		if err != nil {
			if kind, ok := validation.ValidationErrorKind(err); ok {
				c.metrics.ResultRejected(kind.String())
			}
			return nil, err
		}

		memberID, _ := result.SubmitterMemberID()
		operator, err := c.pool.OperatorOf(memberID)
		if err != nil {
			return nil, fmt.Errorf("could not resolve operator of member %d: %w", memberID, err)
		}
		if operator != caller {
			return nil, fmt.Errorf("member %d is operated by %s, not %s: %w",
				memberID, operator.Hex(), caller.Hex(), ErrSubmitterMismatch)
		}

		hash := result.Hash()
		deadline := height + round.Parameters.ResultChallengePeriodLength
		round.ResultHash = &hash
		round.Result = result.Copy()
		round.SubmitterIndex = result.SubmitterIndex
		round.Submitter = caller
		round.SubmissionBlock = height
		round.ChallengeDeadlineBlock = &deadline
		round.State = dkgmodel.Challenge
		submitted = round.Copy()
		return nil, nil
	})
	if err != nil {
		return common.Hash{}, err
	}

	c.metrics.ResultSubmitted()
	c.metrics.RoundStateChanged(submitted.ID, submitted.State)
	c.consumer.OnResultSubmitted(submitted.ID, *submitted.ResultHash, submitted.Submitter, *submitted.ChallengeDeadlineBlock)
	c.log.Info().
		Uint64("round_id", submitted.ID).
		Hex("result_hash", submitted.ResultHash[:]).
		Hex("submitter", caller[:]).
		Uint64("challenge_deadline", *submitted.ChallengeDeadlineBlock).
		Msg("result submitted")
	return *submitted.ResultHash, nil
}

// Challenge disputes the pending result. The challenger supplies the result
// itself, which must hash to the pending result hash, and optionally a fraud
// proof. A challenge succeeds if the result fails validation or the fraud
// proof is confirmed. A successful challenge discards the result, penalizes
// its submitter and either reopens result submission with the same seed or,
// once MaxResultChallenges results were discarded, retires the round.
// Expected errors:
//   - ErrNoActiveChallenge unless a result is in its challenge period
//   - ErrChallengePeriodElapsed if the challenge period ended
//   - ErrResultHashMismatch if result is not the pending result
//   - ErrUnjustifiedChallenge if no defect was demonstrated
func (c *Coordinator) Challenge(caller common.Address, result *dkgmodel.Result, proof []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	height := c.chain.BlockHeight()
	var (
		challenged common.Hash
		updated    *dkgmodel.Round
		retired    *dkgmodel.RoundOutcome
	)
	err := c.rounds.Update(func(round *dkgmodel.Round) (*dkgmodel.RoundOutcome, error) {
		if round.State != dkgmodel.Challenge {
			return nil, fmt.Errorf("round %d is %s: %w", round.ID, round.State, ErrNoActiveChallenge)
		}
		if height > *round.ChallengeDeadlineBlock {
			return nil, fmt.Errorf("challenge period ended at %d: %w", *round.ChallengeDeadlineBlock, ErrChallengePeriodElapsed)
		}
		if result == nil {
			return nil, fmt.Errorf("missing challenged result: %w", ErrResultHashMismatch)
		}
		if result.Hash() != *round.ResultHash {
			return nil, fmt.Errorf("result hash %s, pending %s: %w", result.Hash().Hex(), round.ResultHash.Hex(), ErrResultHashMismatch)
		}

		defective, err := c.defective(round, result, proof)
		if err != nil {
			return nil, err
		}
		if !defective {
			c.metrics.ChallengeProcessed(false)
			return nil, fmt.Errorf("result %s of round %d: %w", round.ResultHash.Hex(), round.ID, ErrUnjustifiedChallenge)
		}

		exhausted := round.Challenges+1 >= round.Parameters.MaxResultChallenges
		if exhausted {
			err = c.pool.Unlock()
			if err != nil {
				return nil, fmt.Errorf("could not unlock sortition pool: %w", err)
			}
		}

		challenged = *round.ResultHash
		c.penalize(round)
		round.DiscardResult(height)
		if exhausted {
			retired = dkgmodel.NewRoundOutcome(round, dkgmodel.ChallengeRetriesExhausted, height)
			round.Retire()
		}
		updated = round.Copy()
		return retired, nil
	})
	if err != nil {
		return err
	}

	c.metrics.ChallengeProcessed(true)
	c.metrics.RoundStateChanged(updated.ID, updated.State)
	c.consumer.OnResultChallenged(updated.ID, challenged, caller)
	c.log.Warn().
		Uint64("round_id", updated.ID).
		Hex("result_hash", challenged[:]).
		Hex("challenger", caller[:]).
		Str("state", updated.State.String()).
		Msg("result successfully challenged")
	if retired != nil {
		c.retired(retired)
	}
	return nil
}

// defective reports whether the pending result is shown to be defective,
// either because it fails validation or because proof is confirmed by the
// fraud proof verifier.
func (c *Coordinator) defective(round *dkgmodel.Round, result *dkgmodel.Result, proof []byte) (bool, error) {
	err := validation.ValidateResult(result, round.Committee, round.Parameters)
	if validation.IsValidationError(err) {
		c.log.Debug().Err(err).Uint64("round_id", round.ID).Msg("challenged result fails validation")
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("could not validate challenged result: %w", err)
	}
	if len(proof) == 0 {
		return false, nil
	}

	defective, err := c.verifier.VerifyFraudProof(round.Seed, result, proof)
	if err != nil {
		return false, fmt.Errorf("could not verify fraud proof for round %d: %w", round.ID, err)
	}
	return defective, nil
}

// penalize reports the submitter of the pending result. Failures are logged
// and never block discarding the result.
func (c *Coordinator) penalize(round *dkgmodel.Round) {
	memberID, _ := round.Result.SubmitterMemberID()
	err := c.penalizer.PenalizeSubmitter(round.ID, round.Submitter, memberID)
	if err != nil {
		c.log.Error().Err(err).
			Uint64("round_id", round.ID).
			Hex("submitter", round.Submitter[:]).
			Uint32("member_id", memberID).
			Msg("could not penalize submitter of challenged result")
	}
}

// Finalize approves the pending result once its challenge period ended. The
// sortition pool is unlocked, the wallet owner receives the group public key
// and the round is retired as approved. During the submitter precedence
// period only the submitter may finalize.
//
// A wallet owner error wrapped with module.NewWalletOwnerWarning is logged
// and approval proceeds. Any other wallet owner error re-locks the pool and
// leaves the round in its challenge state so finalization can be retried.
// Expected errors:
//   - ErrNoActiveChallenge unless a result is pending
//   - ErrChallengePeriodActive if the challenge period has not ended
//   - ErrRoundTimedOut if the approval timeout passed
//   - ErrSubmitterPrecedence if caller is not the submitter during the precedence period
func (c *Coordinator) Finalize(caller common.Address) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	height := c.chain.BlockHeight()
	var approved *dkgmodel.RoundOutcome
	err := c.rounds.Update(func(round *dkgmodel.Round) (*dkgmodel.RoundOutcome, error) {
		if round.State != dkgmodel.Challenge {
			return nil, fmt.Errorf("round %d is %s: %w", round.ID, round.State, ErrNoActiveChallenge)
		}
		if height <= *round.ChallengeDeadlineBlock {
			return nil, fmt.Errorf("challenge period ends at %d, height %d: %w", *round.ChallengeDeadlineBlock, height, ErrChallengePeriodActive)
		}
		if height > round.ApprovalDeadline() {
			return nil, fmt.Errorf("approval deadline %d passed at height %d: %w", round.ApprovalDeadline(), height, ErrRoundTimedOut)
		}
		if height <= round.PrecedenceDeadline() && caller != round.Submitter {
			return nil, fmt.Errorf("precedence period ends at %d: %w", round.PrecedenceDeadline(), ErrSubmitterPrecedence)
		}

		err := c.pool.Unlock()
		if err != nil {
			return nil, fmt.Errorf("could not unlock sortition pool: %w", err)
		}

		err = c.owner.OnWalletCreated(round.ID, bytes.Clone(round.Result.GroupPublicKey), append([]uint32(nil), round.Result.Members...))
		if module.IsWalletOwnerWarning(err) {
			c.log.Warn().Err(err).Uint64("round_id", round.ID).Msg("wallet owner reported a warning")
		} else if err != nil {
			return nil, c.lockAfter(fmt.Errorf("wallet owner rejected round %d: %w", round.ID, err))
		}

		approved = dkgmodel.NewRoundOutcome(round, dkgmodel.Approved, height)
		round.Retire()
		return approved, nil
	})
	if err != nil {
		return err
	}

	c.log.Info().
		Uint64("round_id", approved.RoundID).
		Hex("finalizer", caller[:]).
		Msg("result approved, wallet created")
	c.retired(approved)
	return nil
}

// NotifyTimeout retires the current round if the deadline of its state has
// passed. Anyone may call it.
// Expected errors:
//   - ErrNoRoundInProgress if the coordinator is idle
//   - ErrNotTimedOut if the deadline of the current state has not passed
func (c *Coordinator) NotifyTimeout() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	height := c.chain.BlockHeight()
	var timedOut *dkgmodel.RoundOutcome
	err := c.rounds.Update(func(round *dkgmodel.Round) (*dkgmodel.RoundOutcome, error) {
		if !round.State.InProgress() {
			return nil, ErrNoRoundInProgress
		}
		if !round.TimedOut(height) {
			return nil, fmt.Errorf("round %d is %s at height %d: %w", round.ID, round.State, height, ErrNotTimedOut)
		}
		outcome, err := dkgmodel.TimeoutOutcome(round.State)
		if err != nil {
			return nil, fmt.Errorf("could not determine timeout outcome: %w", err)
		}

		err = c.pool.Unlock()
		if err != nil {
			return nil, fmt.Errorf("could not unlock sortition pool: %w", err)
		}

		timedOut = dkgmodel.NewRoundOutcome(round, outcome, height)
		round.Retire()
		return timedOut, nil
	})
	if err != nil {
		return err
	}

	c.log.Warn().
		Uint64("round_id", timedOut.RoundID).
		Str("outcome", timedOut.Outcome.String()).
		Uint64("height", height).
		Msg("round timed out")
	c.retired(timedOut)
	return nil
}

// State returns the state of the current round.
func (c *Coordinator) State() (dkgmodel.State, error) {
	round, err := c.Round()
	if err != nil {
		return 0, err
	}
	return round.State, nil
}

// Round returns a copy of the current round.
func (c *Coordinator) Round() (*dkgmodel.Round, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	round, err := c.rounds.Current()
	if err != nil {
		return nil, fmt.Errorf("could not load current round: %w", err)
	}
	return round, nil
}

// HasTimedOut reports whether NotifyTimeout would retire the current round now.
func (c *Coordinator) HasTimedOut() (bool, error) {
	round, err := c.Round()
	if err != nil {
		return false, err
	}
	return round.TimedOut(c.chain.BlockHeight()), nil
}

// Outcome returns the archived outcome of a retired round.
// Expected errors:
//   - storage.ErrNotFound if the round was never retired
func (c *Coordinator) Outcome(roundID uint64) (*dkgmodel.RoundOutcome, error) {
	return c.rounds.Outcome(roundID)
}

func (c *Coordinator) retired(outcome *dkgmodel.RoundOutcome) {
	c.metrics.RoundRetired(outcome.Outcome)
	c.metrics.RoundStateChanged(outcome.RoundID, dkgmodel.Idle)
	c.consumer.OnRoundRetired(outcome)
}

// unlockAfter releases the sortition pool locked earlier in a failing
// operation and returns cause, combined with the unlock failure if any.
func (c *Coordinator) unlockAfter(cause error) error {
	err := c.pool.Unlock()
	if err != nil {
		c.log.Error().Err(err).Msg("could not release sortition pool after failure")
		return multierror.Append(cause, fmt.Errorf("could not unlock sortition pool: %w", err))
	}
	return cause
}

// lockAfter re-locks the sortition pool unlocked earlier in a failing
// operation and returns cause, combined with the lock failure if any.
func (c *Coordinator) lockAfter(cause error) error {
	err := c.pool.Lock()
	if err != nil {
		c.log.Error().Err(err).Msg("could not re-lock sortition pool after failure")
		return multierror.Append(cause, fmt.Errorf("could not re-lock sortition pool: %w", err))
	}
	return cause
}
