package dkg

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common"
)

// Result is the outcome of an off-chain DKG run as submitted by one of the
// committee members. The coordinator treats it as an opaque payload with a
// known shape: it validates the shape and binds the submission to its hash,
// it never verifies the key material itself.
//
// Member indices (SubmitterIndex, MisbehavedIndices, SigningIndices) are
// 1-based positions in Members. Members holds sortition pool member IDs.
type Result struct {
	// SubmitterIndex is the position of the submitting member in Members.
	SubmitterIndex uint32
	// GroupPublicKey is the public key produced by the committee.
	GroupPublicKey []byte
	// MisbehavedIndices lists, in strictly increasing order, members that
	// were found inactive or misbehaving during the DKG.
	MisbehavedIndices []uint32
	// Signatures is the concatenation of fixed-size signatures over the
	// result, one per entry of SigningIndices and in the same order.
	Signatures []byte
	// SigningIndices lists, in strictly increasing order, members that
	// signed the result.
	SigningIndices []uint32
	// Members is the full committee as selected by the sortition pool.
	Members []uint32
	// MembersHash binds Members to the selection that produced them.
	MembersHash common.Hash
}

// Copy returns a deep copy of the result, so that callers can keep
// submitting or mutating their own value without affecting stored state.
func (r *Result) Copy() *Result {
	if r == nil {
		return nil
	}
	return &Result{
		SubmitterIndex:    r.SubmitterIndex,
		GroupPublicKey:    bytes.Clone(r.GroupPublicKey),
		MisbehavedIndices: cloneIndices(r.MisbehavedIndices),
		Signatures:        bytes.Clone(r.Signatures),
		SigningIndices:    cloneIndices(r.SigningIndices),
		Members:           cloneIndices(r.Members),
		MembersHash:       r.MembersHash,
	}
}

// Equal returns true if both results have byte-identical canonical encodings.
func (r *Result) Equal(other *Result) bool {
	if r == nil || other == nil {
		return r == other
	}
	return bytes.Equal(r.Encode(), other.Encode())
}

// Hash returns the canonical hash of the result. It is shorthand for ResultHash.
func (r *Result) Hash() common.Hash {
	return ResultHash(r)
}

// SubmitterMemberID returns the sortition pool member ID of the submitter.
// The second return value is false if the submitter index is out of range.
func (r *Result) SubmitterMemberID() (uint32, bool) {
	if r.SubmitterIndex < 1 || int(r.SubmitterIndex) > len(r.Members) {
		return 0, false
	}
	return r.Members[r.SubmitterIndex-1], true
}

func cloneIndices(indices []uint32) []uint32 {
	if indices == nil {
		return nil
	}
	out := make([]uint32, len(indices))
	copy(out, indices)
	return out
}
