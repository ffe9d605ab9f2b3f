package dkg

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

const (
	// MinResultChallengePeriodLength is the smallest challenge period, in
	// blocks, governance may configure. Shorter windows leave challengers no
	// realistic chance to react.
	MinResultChallengePeriodLength = 10

	// basisPoints is the denominator of QuorumBasisPoints.
	basisPoints = 10_000
)

// Parameters configure a DKG round. All lengths and timeouts are expressed
// in blocks. The coordinator snapshots the parameters when a round starts,
// so governance changes only ever apply to the next round.
type Parameters struct {
	// GroupSize is the number of members selected into a committee.
	GroupSize uint32
	// QuorumBasisPoints is the honest-majority fraction of the committee,
	// in 1/10000. The quorum is the smallest count strictly above it.
	QuorumBasisPoints uint32
	// SignatureSize is the size in bytes of a single member signature.
	SignatureSize uint32
	// SeedTimeout is the number of blocks the randomness source has to
	// deliver the seed after a round was requested.
	SeedTimeout uint64
	// ResultSubmissionTimeout is the number of blocks the committee has to
	// submit a result after the seed was delivered or the last result was
	// successfully challenged.
	ResultSubmissionTimeout uint64
	// ResultChallengePeriodLength is the number of blocks during which a
	// submitted result may be challenged.
	ResultChallengePeriodLength uint64
	// SubmitterPrecedencePeriodLength is the number of blocks after the
	// challenge period during which only the submitter may finalize.
	SubmitterPrecedencePeriodLength uint64
	// ResultApprovalTimeout is the number of blocks after the precedence
	// period after which an unfinalized result is abandoned.
	ResultApprovalTimeout uint64
	// MaxResultChallenges is the number of successful challenges after which
	// the round is abandoned instead of reopening result submission.
	MaxResultChallenges uint32
}

// DefaultParameters returns the parameters used when governance has not
// configured anything yet.
func DefaultParameters() Parameters {
	return Parameters{
		GroupSize:                       100,
		QuorumBasisPoints:               5_000,
		SignatureSize:                   65,
		SeedTimeout:                     11_520,
		ResultSubmissionTimeout:         536,
		ResultChallengePeriodLength:     11_520,
		SubmitterPrecedencePeriodLength: 20,
		ResultApprovalTimeout:           11_520,
		MaxResultChallenges:             3,
	}
}

// Quorum returns the minimal number of signing members for a result to be
// acceptable: floor(GroupSize * QuorumBasisPoints / 10000) + 1.
func (p Parameters) Quorum() int {
	return int(uint64(p.GroupSize)*uint64(p.QuorumBasisPoints)/basisPoints) + 1
}

// Validate checks the parameters for internal consistency. All violations
// are reported, not only the first.
func (p Parameters) Validate() error {
	var errs *multierror.Error
	if p.GroupSize == 0 {
		errs = multierror.Append(errs, fmt.Errorf("group size must be positive"))
	}
	if p.QuorumBasisPoints == 0 || p.QuorumBasisPoints >= basisPoints {
		errs = multierror.Append(errs, fmt.Errorf("quorum basis points must be in (0, %d), got %d", basisPoints, p.QuorumBasisPoints))
	}
	if p.SignatureSize == 0 {
		errs = multierror.Append(errs, fmt.Errorf("signature size must be positive"))
	}
	if p.SeedTimeout == 0 {
		errs = multierror.Append(errs, fmt.Errorf("seed timeout must be positive"))
	}
	if p.ResultSubmissionTimeout == 0 {
		errs = multierror.Append(errs, fmt.Errorf("result submission timeout must be positive"))
	}
	if p.ResultChallengePeriodLength < MinResultChallengePeriodLength {
		errs = multierror.Append(errs, fmt.Errorf("result challenge period length must be at least %d, got %d",
			MinResultChallengePeriodLength, p.ResultChallengePeriodLength))
	}
	if p.SubmitterPrecedencePeriodLength >= p.ResultSubmissionTimeout {
		errs = multierror.Append(errs, fmt.Errorf("submitter precedence period length (%d) must be less than result submission timeout (%d)",
			p.SubmitterPrecedencePeriodLength, p.ResultSubmissionTimeout))
	}
	if p.ResultApprovalTimeout == 0 {
		errs = multierror.Append(errs, fmt.Errorf("result approval timeout must be positive"))
	}
	if p.MaxResultChallenges == 0 {
		errs = multierror.Append(errs, fmt.Errorf("max result challenges must be positive"))
	}
	return errs.ErrorOrNil()
}
