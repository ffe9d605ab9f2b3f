package dkg

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Round is the coordinator's single authoritative record of the current
// wallet creation attempt. Exactly one Round exists at a time; when no
// attempt is in flight it sits in the Idle state and keeps the last ID.
//
// Invariants:
//   - ResultHash != nil iff State == Challenge, and Result != nil iff ResultHash != nil
//   - Seed != nil iff State ∈ {AwaitingResult, Challenge}
//   - ChallengeDeadlineBlock != nil iff State == Challenge
type Round struct {
	ID    uint64
	State State

	// SeedRequestID correlates the seed delivery with the request. It equals
	// the round ID.
	SeedRequestID uint64
	// Seed is the big-endian encoding of the delivered relay entry.
	Seed []byte

	RequestBlock               uint64 // height at which the round was requested
	StartBlock                 uint64 // height at which the seed was delivered
	ResultSubmissionStartBlock uint64 // height at which the current submission window opened

	// Committee is the sortition pool selection made with Seed.
	Committee []uint32

	ResultHash             *common.Hash
	Result                 *Result
	SubmitterIndex         uint32
	Submitter              common.Address
	SubmissionBlock        uint64
	ChallengeDeadlineBlock *uint64

	// Challenges counts successfully challenged results in this round.
	Challenges uint32

	// Parameters is the snapshot of governance parameters taken when the
	// round was requested.
	Parameters Parameters
}

// NewIdleRound returns the round record of a coordinator that never ran.
func NewIdleRound() *Round {
	return &Round{State: Idle}
}

// SeedInt returns the seed as an integer, or nil if no seed was delivered.
func (r *Round) SeedInt() *big.Int {
	if r.Seed == nil {
		return nil
	}
	return new(big.Int).SetBytes(r.Seed)
}

// Copy returns a deep copy of the round.
func (r *Round) Copy() *Round {
	if r == nil {
		return nil
	}
	c := *r
	if r.Seed != nil {
		c.Seed = append([]byte(nil), r.Seed...)
	}
	c.Committee = cloneIndices(r.Committee)
	if r.ResultHash != nil {
		h := *r.ResultHash
		c.ResultHash = &h
	}
	c.Result = r.Result.Copy()
	if r.ChallengeDeadlineBlock != nil {
		d := *r.ChallengeDeadlineBlock
		c.ChallengeDeadlineBlock = &d
	}
	return &c
}

// clearResult drops the pending result and everything bound to it.
func (r *Round) clearResult() {
	r.ResultHash = nil
	r.Result = nil
	r.SubmitterIndex = 0
	r.Submitter = common.Address{}
	r.SubmissionBlock = 0
	r.ChallengeDeadlineBlock = nil
}

// Retire resets the round to Idle. The ID is kept so the next round
// continues the sequence.
func (r *Round) Retire() {
	id := r.ID
	*r = Round{ID: id, State: Idle}
}

// DiscardResult drops the pending result after a successful challenge and
// reopens result submission at the given height with the same seed.
func (r *Round) DiscardResult(height uint64) {
	r.clearResult()
	r.Challenges++
	r.State = AwaitingResult
	r.ResultSubmissionStartBlock = height
}

// SeedDeadline returns the last block at which the seed may be delivered.
func (r *Round) SeedDeadline() uint64 {
	return r.RequestBlock + r.Parameters.SeedTimeout
}

// ResultSubmissionDeadline returns the last block at which a result may be
// submitted in the current window.
func (r *Round) ResultSubmissionDeadline() uint64 {
	return r.ResultSubmissionStartBlock + r.Parameters.ResultSubmissionTimeout
}

// PrecedenceDeadline returns the last block at which only the submitter may
// finalize. Only meaningful in the Challenge state.
func (r *Round) PrecedenceDeadline() uint64 {
	if r.ChallengeDeadlineBlock == nil {
		return 0
	}
	return *r.ChallengeDeadlineBlock + r.Parameters.SubmitterPrecedencePeriodLength
}

// ApprovalDeadline returns the last block at which the pending result may
// be finalized. Only meaningful in the Challenge state.
func (r *Round) ApprovalDeadline() uint64 {
	return r.PrecedenceDeadline() + r.Parameters.ResultApprovalTimeout
}

// TimedOut reports whether the deadline of the current state has passed at
// the given height. An idle round never times out.
func (r *Round) TimedOut(height uint64) bool {
	switch r.State {
	case AwaitingSeed:
		return height > r.SeedDeadline()
	case AwaitingResult:
		return height > r.ResultSubmissionDeadline()
	case Challenge:
		return r.ChallengeDeadlineBlock != nil && height > r.ApprovalDeadline()
	default:
		return false
	}
}
