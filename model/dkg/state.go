package dkg

import "fmt"

// State is the wallet creation state of the coordinator's current round.
type State uint8

const (
	// Idle means no round is in progress and the sortition pool is unlocked.
	Idle State = iota
	// AwaitingSeed means a round was requested and the coordinator waits for
	// the randomness source to deliver the seed.
	AwaitingSeed
	// AwaitingResult means the committee was selected and the coordinator
	// accepts the first valid result submission.
	AwaitingResult
	// Challenge means a result was accepted optimistically and may be disputed
	// until the challenge deadline.
	Challenge
)

func (s State) String() string {
	switch s {
	case Idle:
		return "IDLE"
	case AwaitingSeed:
		return "AWAITING_SEED"
	case AwaitingResult:
		return "AWAITING_RESULT"
	case Challenge:
		return "CHALLENGE"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint8(s))
	}
}

// IsValid returns true if the state is one of the known wallet creation states.
func (s State) IsValid() bool {
	return s <= Challenge
}

// InProgress returns true if a round is in flight in this state.
func (s State) InProgress() bool {
	return s != Idle
}

// CanTransitionTo reports whether the edge s -> next belongs to the round
// lifecycle graph:
//
//	IDLE -> AWAITING_SEED -> AWAITING_RESULT -> CHALLENGE -> IDLE
//	CHALLENGE -> AWAITING_RESULT   (challenge accepted, retries remain)
//	AWAITING_SEED|AWAITING_RESULT|CHALLENGE -> IDLE   (timeout / retries exhausted)
func (s State) CanTransitionTo(next State) bool {
	switch s {
	case Idle:
		return next == AwaitingSeed
	case AwaitingSeed:
		return next == AwaitingResult || next == Idle
	case AwaitingResult:
		return next == Challenge || next == Idle
	case Challenge:
		return next == Idle || next == AwaitingResult
	default:
		return false
	}
}
