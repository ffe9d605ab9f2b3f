package dkg

import (
	"errors"
)

var (
	// ErrUnauthorized is returned when the caller may not perform the operation.
	ErrUnauthorized = errors.New("caller is not authorized")
	// ErrRoundInProgress is returned when a round is requested while another
	// one has not been retired yet.
	ErrRoundInProgress = errors.New("wallet creation round already in progress")
	// ErrNoRoundInProgress is returned when the coordinator is idle.
	ErrNoRoundInProgress = errors.New("no wallet creation round in progress")
	// ErrUnexpectedSeed is returned for seed deliveries that do not match the
	// outstanding request, including stale and duplicate deliveries.
	ErrUnexpectedSeed = errors.New("unexpected seed delivery")
	// ErrNotAwaitingResult is returned when a result is submitted before the
	// seed arrived or while no round is in progress.
	ErrNotAwaitingResult = errors.New("round is not awaiting a result")
	// ErrResultAlreadySubmitted is returned when a result is submitted while
	// another one is in its challenge period.
	ErrResultAlreadySubmitted = errors.New("result already submitted")
	// ErrRoundTimedOut is returned when the deadline of the current state has
	// passed. The round stays as it is until NotifyTimeout is called.
	ErrRoundTimedOut = errors.New("round timed out")
	// ErrSubmitterMismatch is returned when the caller does not operate the
	// member the result names as its submitter.
	ErrSubmitterMismatch = errors.New("caller is not the result submitter")
	ErrNoActiveChallenge = errors.New("no result in challenge period")
	// ErrChallengePeriodElapsed is returned for challenges arriving after the
	// challenge period ended.
	ErrChallengePeriodElapsed = errors.New("challenge period elapsed")
	// ErrChallengePeriodActive is returned when finalizing before the
	// challenge period ended.
	ErrChallengePeriodActive = errors.New("challenge period still active")
	// ErrResultHashMismatch is returned when a challenge names a result other
	// than the pending one.
	ErrResultHashMismatch = errors.New("challenged result does not match pending result")
	// ErrUnjustifiedChallenge is returned when neither validation nor the
	// fraud proof confirms a defect in the challenged result.
	ErrUnjustifiedChallenge = errors.New("challenge did not demonstrate a defect")
	// ErrSubmitterPrecedence is returned when someone other than the submitter
	// tries to finalize during the submitter precedence period.
	ErrSubmitterPrecedence = errors.New("only the submitter may finalize during the precedence period")
	ErrNotTimedOut         = errors.New("round has not timed out")
)
