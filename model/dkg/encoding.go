package dkg

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Encode returns the canonical encoding of the result. Fields are written in
// declaration order. Integers are 4-byte big-endian, byte strings and
// integer sequences are prefixed with their 4-byte big-endian length, and
// MembersHash is appended as its raw 32 bytes. No padding is added.
//
// Independent observers reproduce the stored result hash from this encoding,
// so it must never change for an existing field layout.
func (r *Result) Encode() []byte {
	size := 4 +
		4 + len(r.GroupPublicKey) +
		4 + 4*len(r.MisbehavedIndices) +
		4 + len(r.Signatures) +
		4 + 4*len(r.SigningIndices) +
		4 + 4*len(r.Members) +
		common.HashLength

	buf := make([]byte, 0, size)
	buf = binary.BigEndian.AppendUint32(buf, r.SubmitterIndex)
	buf = appendBytes(buf, r.GroupPublicKey)
	buf = appendIndices(buf, r.MisbehavedIndices)
	buf = appendBytes(buf, r.Signatures)
	buf = appendIndices(buf, r.SigningIndices)
	buf = appendIndices(buf, r.Members)
	buf = append(buf, r.MembersHash.Bytes()...)
	return buf
}

// ResultHash computes the Keccak-256 digest of the canonical result encoding.
func ResultHash(r *Result) common.Hash {
	return crypto.Keccak256Hash(r.Encode())
}

// MembersHash computes the digest binding a committee to the selection that
// produced it: Keccak-256 over the length-prefixed member ID sequence.
func MembersHash(members []uint32) common.Hash {
	return crypto.Keccak256Hash(appendIndices(make([]byte, 0, 4+4*len(members)), members))
}

func appendBytes(buf []byte, b []byte) []byte {
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(b)))
	return append(buf, b...)
}

func appendIndices(buf []byte, indices []uint32) []byte {
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(indices)))
	for _, index := range indices {
		buf = binary.BigEndian.AppendUint32(buf, index)
	}
	return buf
}
