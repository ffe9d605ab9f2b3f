package unittest

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/onflow/wallet-dkg/model/dkg"
)

const (
	// DefaultGroupSize is the committee size used by small test rounds.
	DefaultGroupSize = 5
	// DefaultSignatureSize is the signature size used by test parameters.
	DefaultSignatureSize = 65
)

// GetPRG returns a deterministic math/rand PRG that can be used for deterministic randomness in tests only.
// The PRG seed is logged in case the test iteration needs to be reproduced.
func GetPRG(t *testing.T) *rand.Rand {
	random := time.Now().UnixNano()
	t.Logf("rng seed is %d", random)
	return rand.New(rand.NewSource(random))
}

// RandomBytes returns n cryptographically random bytes.
func RandomBytes(n int) []byte {
	b := make([]byte, n)
	_, _ = crand.Read(b)
	return b
}

func AddressFixture() common.Address {
	return common.BytesToAddress(RandomBytes(common.AddressLength))
}

func AddressListFixture(n int) []common.Address {
	list := make([]common.Address, 0, n)
	for i := 0; i < n; i++ {
		list = append(list, AddressFixture())
	}
	return list
}

func HashFixture() common.Hash {
	return common.BytesToHash(RandomBytes(common.HashLength))
}

// SeedFixture returns the big-endian encoding of the given relay entry.
func SeedFixture(entry uint64) []byte {
	seed := make([]byte, 8)
	binary.BigEndian.PutUint64(seed, entry)
	return seed
}

// ParametersFixture returns round parameters sized for unit tests: a committee
// of DefaultGroupSize members with a quorum of 3, short timeouts and no
// submitter precedence.
func ParametersFixture(opts ...func(*dkg.Parameters)) dkg.Parameters {
	params := dkg.Parameters{
		GroupSize:                       DefaultGroupSize,
		QuorumBasisPoints:               5_000,
		SignatureSize:                   DefaultSignatureSize,
		SeedTimeout:                     20,
		ResultSubmissionTimeout:         30,
		ResultChallengePeriodLength:     10,
		SubmitterPrecedencePeriodLength: 0,
		ResultApprovalTimeout:           40,
		MaxResultChallenges:             3,
	}
	for _, apply := range opts {
		apply(&params)
	}
	return params
}

// CommitteeFixture returns n distinct sortition pool member IDs starting at 1.
func CommitteeFixture(n int) []uint32 {
	members := make([]uint32, 0, n)
	for i := 1; i <= n; i++ {
		members = append(members, uint32(i))
	}
	return members
}

// ResultFixture returns a result that passes validation against the given
// committee with ParametersFixture: every member signs, nobody misbehaved and
// the first member submits.
func ResultFixture(committee []uint32, opts ...func(*dkg.Result)) *dkg.Result {
	members := append([]uint32(nil), committee...)
	signing := make([]uint32, 0, len(members))
	for i := range members {
		signing = append(signing, uint32(i+1))
	}
	result := &dkg.Result{
		SubmitterIndex:    1,
		GroupPublicKey:    RandomBytes(128),
		MisbehavedIndices: []uint32{},
		Signatures:        RandomBytes(len(signing) * DefaultSignatureSize),
		SigningIndices:    signing,
		Members:           members,
		MembersHash:       dkg.MembersHash(members),
	}
	for _, apply := range opts {
		apply(result)
	}
	return result
}

// WithSigners restricts the signing set to the given indices and resizes the
// signature blob accordingly.
func WithSigners(indices ...uint32) func(*dkg.Result) {
	return func(r *dkg.Result) {
		r.SigningIndices = indices
		r.Signatures = RandomBytes(len(indices) * DefaultSignatureSize)
	}
}

func WithSubmitter(index uint32) func(*dkg.Result) {
	return func(r *dkg.Result) {
		r.SubmitterIndex = index
	}
}

func WithMisbehaved(indices ...uint32) func(*dkg.Result) {
	return func(r *dkg.Result) {
		r.MisbehavedIndices = indices
	}
}

func WithGroupPublicKey(key []byte) func(*dkg.Result) {
	return func(r *dkg.Result) {
		r.GroupPublicKey = key
	}
}

// RoundFixture returns a round in the Challenge state holding a valid result
// for a DefaultGroupSize committee.
func RoundFixture(opts ...func(*dkg.Round)) *dkg.Round {
	committee := CommitteeFixture(DefaultGroupSize)
	result := ResultFixture(committee)
	hash := result.Hash()
	deadline := uint64(120)
	round := &dkg.Round{
		ID:                         rand.Uint64()%1000 + 1,
		State:                      dkg.Challenge,
		Seed:                       SeedFixture(42),
		RequestBlock:               100,
		StartBlock:                 105,
		ResultSubmissionStartBlock: 105,
		Committee:                  committee,
		ResultHash:                 &hash,
		Result:                     result,
		SubmitterIndex:             result.SubmitterIndex,
		Submitter:                  AddressFixture(),
		SubmissionBlock:            110,
		ChallengeDeadlineBlock:     &deadline,
		Parameters:                 ParametersFixture(),
	}
	round.SeedRequestID = round.ID
	for _, apply := range opts {
		apply(round)
	}
	return round
}

// RequireRoundsEqual compares two rounds field by field, treating nil and
// empty index slices as equal since the storage codec does not preserve the
// difference.
func RequireRoundsEqual(t testing.TB, expected, actual *dkg.Round) {
	require.Equal(t, expected.ID, actual.ID)
	require.Equal(t, expected.State, actual.State)
	require.Equal(t, expected.SeedRequestID, actual.SeedRequestID)
	require.Equal(t, expected.Seed, actual.Seed)
	require.Equal(t, expected.RequestBlock, actual.RequestBlock)
	require.Equal(t, expected.StartBlock, actual.StartBlock)
	require.Equal(t, expected.ResultSubmissionStartBlock, actual.ResultSubmissionStartBlock)
	require.ElementsMatch(t, expected.Committee, actual.Committee)
	require.Equal(t, expected.ResultHash, actual.ResultHash)
	require.True(t, expected.Result.Equal(actual.Result), "results differ")
	require.Equal(t, expected.SubmitterIndex, actual.SubmitterIndex)
	require.Equal(t, expected.Submitter, actual.Submitter)
	require.Equal(t, expected.SubmissionBlock, actual.SubmissionBlock)
	require.Equal(t, expected.ChallengeDeadlineBlock, actual.ChallengeDeadlineBlock)
	require.Equal(t, expected.Challenges, actual.Challenges)
	require.Equal(t, expected.Parameters, actual.Parameters)
}
