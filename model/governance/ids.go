package governance

import "fmt"

// ParameterID names a governable parameter.
type ParameterID string

const (
	// GovernanceDelay is the timelock, in seconds, applied to every change.
	GovernanceDelay ParameterID = "governance_delay"
	// Governance is the address allowed to initiate changes. Transferring it
	// is itself timelocked.
	Governance ParameterID = "governance"

	DKGGroupSize                       ParameterID = "dkg_group_size"
	DKGQuorumBasisPoints               ParameterID = "dkg_quorum_basis_points"
	DKGSignatureSize                   ParameterID = "dkg_signature_size"
	DKGSeedTimeout                     ParameterID = "dkg_seed_timeout"
	DKGResultSubmissionTimeout         ParameterID = "dkg_result_submission_timeout"
	DKGResultChallengePeriodLength     ParameterID = "dkg_result_challenge_period_length"
	DKGSubmitterPrecedencePeriodLength ParameterID = "dkg_submitter_precedence_period_length"
	DKGResultApprovalTimeout           ParameterID = "dkg_result_approval_timeout"
	DKGMaxResultChallenges             ParameterID = "dkg_max_result_challenges"
)

// UintParameters lists every parameter holding an unsigned integer, in a
// stable order.
var UintParameters = []ParameterID{
	GovernanceDelay,
	DKGGroupSize,
	DKGQuorumBasisPoints,
	DKGSignatureSize,
	DKGSeedTimeout,
	DKGResultSubmissionTimeout,
	DKGResultChallengePeriodLength,
	DKGSubmitterPrecedencePeriodLength,
	DKGResultApprovalTimeout,
	DKGMaxResultChallenges,
}

func (id ParameterID) String() string {
	return string(id)
}

// IsUint returns true if the parameter holds an unsigned integer.
func (id ParameterID) IsUint() bool {
	for _, known := range UintParameters {
		if id == known {
			return true
		}
	}
	return false
}

// IsValid returns true if the ID names a known parameter.
func (id ParameterID) IsValid() bool {
	return id == Governance || id.IsUint()
}

// ParseParameterID converts a string into a known parameter ID.
func ParseParameterID(s string) (ParameterID, error) {
	id := ParameterID(s)
	if !id.IsValid() {
		return "", fmt.Errorf("unknown parameter %q", s)
	}
	return id, nil
}
