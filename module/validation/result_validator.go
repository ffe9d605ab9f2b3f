package validation

import (
	"github.com/onflow/wallet-dkg/model/dkg"
)

// ValidateResult checks the shape of a DKG result against the committee that
// was selected for the round and the round's parameters. Checks run in a
// fixed order and the first failure is returned:
//
//  1. members match the committee element-wise and MembersHash matches them
//  2. signing and misbehaved indices lie in [1, len(Members)], strictly increasing
//  3. at least params.Quorum() members signed
//  4. the signature blob holds exactly one signature per signer
//  5. the submitter is one of the signers
//
// Expected errors during normal operation:
//   - ValidationError if any check fails
func ValidateResult(result *dkg.Result, committee []uint32, params dkg.Parameters) error {
	if result == nil {
		return NewValidationErrorf(KindMalformed, "result is missing")
	}

	err := validateMembers(result, committee)
	if err != nil {
		return err
	}

	groupSize := len(result.Members)
	err = validateIndices("signing", result.SigningIndices, groupSize)
	if err != nil {
		return err
	}
	err = validateIndices("misbehaved", result.MisbehavedIndices, groupSize)
	if err != nil {
		return err
	}

	quorum := params.Quorum()
	if len(result.SigningIndices) < quorum {
		return NewValidationErrorf(KindQuorum, "%d members signed, quorum is %d", len(result.SigningIndices), quorum)
	}

	expected := len(result.SigningIndices) * int(params.SignatureSize)
	if len(result.Signatures) != expected {
		return NewValidationErrorf(KindSignatures, "signatures have %d bytes, expected %d for %d signers",
			len(result.Signatures), expected, len(result.SigningIndices))
	}

	if !containsIndex(result.SigningIndices, result.SubmitterIndex) {
		return NewValidationErrorf(KindSubmitter, "submitter %d did not sign the result", result.SubmitterIndex)
	}

	return nil
}

func validateMembers(result *dkg.Result, committee []uint32) error {
	if len(result.Members) != len(committee) {
		return NewValidationErrorf(KindMembers, "result has %d members, committee has %d", len(result.Members), len(committee))
	}
	for i, member := range result.Members {
		if member != committee[i] {
			return NewValidationErrorf(KindMembers, "member %d is %d, committee selected %d", i+1, member, committee[i])
		}
	}
	hash := dkg.MembersHash(result.Members)
	if result.MembersHash != hash {
		return NewValidationErrorf(KindMembers, "members hash %x does not match members (%x)", result.MembersHash, hash)
	}
	return nil
}

func validateIndices(name string, indices []uint32, groupSize int) error {
	var previous uint32
	for i, index := range indices {
		if index < 1 || int(index) > groupSize {
			return NewValidationErrorf(KindIndices, "%s index %d out of range [1, %d]", name, index, groupSize)
		}
		if i > 0 && index <= previous {
			return NewValidationErrorf(KindIndices, "%s indices not strictly increasing at position %d", name, i)
		}
		previous = index
	}
	return nil
}

// containsIndex searches a strictly increasing index list.
func containsIndex(indices []uint32, index uint32) bool {
	for _, i := range indices {
		if i == index {
			return true
		}
		if i > index {
			return false
		}
	}
	return false
}
