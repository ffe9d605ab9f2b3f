package dkg

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Outcome is the reason a round was retired.
type Outcome uint8

const (
	// Approved means the result survived the challenge period and the wallet
	// owner was notified.
	Approved Outcome = iota + 1
	SeedTimedOut
	ResultTimedOut
	ApprovalTimedOut
	// ChallengeRetriesExhausted means the last permitted result was
	// successfully challenged.
	ChallengeRetriesExhausted
)

func (o Outcome) String() string {
	switch o {
	case Approved:
		return "approved"
	case SeedTimedOut:
		return "seed_timed_out"
	case ResultTimedOut:
		return "result_timed_out"
	case ApprovalTimedOut:
		return "approval_timed_out"
	case ChallengeRetriesExhausted:
		return "challenge_retries_exhausted"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(o))
	}
}

// TimeoutOutcome returns the outcome recorded when a round times out in the
// given state.
func TimeoutOutcome(s State) (Outcome, error) {
	switch s {
	case AwaitingSeed:
		return SeedTimedOut, nil
	case AwaitingResult:
		return ResultTimedOut, nil
	case Challenge:
		return ApprovalTimedOut, nil
	default:
		return 0, fmt.Errorf("state %s has no timeout", s)
	}
}

// RoundOutcome is the archived record of a retired round.
type RoundOutcome struct {
	RoundID        uint64
	Outcome        Outcome
	ResultHash     *common.Hash
	GroupPublicKey []byte
	Members        []uint32
	Challenges     uint32
	RetiredAtBlock uint64
}

// NewRoundOutcome builds the archive record for the round as it stands right
// before retirement. The pending result, if any, is included.
func NewRoundOutcome(r *Round, outcome Outcome, height uint64) *RoundOutcome {
	o := &RoundOutcome{
		RoundID:        r.ID,
		Outcome:        outcome,
		Challenges:     r.Challenges,
		RetiredAtBlock: height,
	}
	if r.ResultHash != nil {
		h := *r.ResultHash
		o.ResultHash = &h
	}
	if r.Result != nil {
		o.GroupPublicKey = append([]byte(nil), r.Result.GroupPublicKey...)
		o.Members = cloneIndices(r.Result.Members)
	}
	return o
}
