package dkg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/wallet-dkg/model/dkg"
	"github.com/onflow/wallet-dkg/utils/unittest"
)

func TestRound_Deadlines(t *testing.T) {
	round := unittest.RoundFixture()
	params := round.Parameters

	assert.Equal(t, round.RequestBlock+params.SeedTimeout, round.SeedDeadline())
	assert.Equal(t, round.ResultSubmissionStartBlock+params.ResultSubmissionTimeout, round.ResultSubmissionDeadline())
	assert.Equal(t, *round.ChallengeDeadlineBlock+params.SubmitterPrecedencePeriodLength, round.PrecedenceDeadline())
	assert.Equal(t, round.PrecedenceDeadline()+params.ResultApprovalTimeout, round.ApprovalDeadline())

	assert.False(t, round.TimedOut(round.ApprovalDeadline()))
	assert.True(t, round.TimedOut(round.ApprovalDeadline()+1))

	idle := dkg.NewIdleRound()
	assert.False(t, idle.TimedOut(1<<40))
}

func TestRound_DiscardResult(t *testing.T) {
	round := unittest.RoundFixture()
	seed := round.Seed

	round.DiscardResult(200)

	assert.Equal(t, dkg.AwaitingResult, round.State)
	assert.Nil(t, round.ResultHash)
	assert.Nil(t, round.Result)
	assert.Nil(t, round.ChallengeDeadlineBlock)
	assert.Equal(t, uint32(1), round.Challenges)
	assert.Equal(t, uint64(200), round.ResultSubmissionStartBlock)
	assert.Equal(t, seed, round.Seed)
}

func TestRound_Retire(t *testing.T) {
	round := unittest.RoundFixture()
	id := round.ID

	round.Retire()

	assert.Equal(t, dkg.Idle, round.State)
	assert.Equal(t, id, round.ID)
	assert.Nil(t, round.Seed)
	assert.Nil(t, round.ResultHash)
	assert.Nil(t, round.SeedInt())
}

func TestRound_Copy(t *testing.T) {
	round := unittest.RoundFixture()
	cp := round.Copy()
	unittest.RequireRoundsEqual(t, round, cp)

	*cp.ChallengeDeadlineBlock = 1
	cp.Seed[0] = 0xff
	cp.Committee[0] = 99
	require.NotEqual(t, *round.ChallengeDeadlineBlock, *cp.ChallengeDeadlineBlock)
	require.NotEqual(t, round.Seed[0], cp.Seed[0])
	require.NotEqual(t, round.Committee[0], cp.Committee[0])
}

func TestRoundOutcome(t *testing.T) {
	round := unittest.RoundFixture()
	outcome := dkg.NewRoundOutcome(round, dkg.Approved, 300)

	assert.Equal(t, round.ID, outcome.RoundID)
	assert.Equal(t, round.ResultHash, outcome.ResultHash)
	assert.Equal(t, round.Result.GroupPublicKey, outcome.GroupPublicKey)
	assert.Equal(t, round.Result.Members, outcome.Members)
	assert.Equal(t, uint64(300), outcome.RetiredAtBlock)
	assert.Equal(t, "approved", outcome.Outcome.String())

	for state, expected := range map[dkg.State]dkg.Outcome{
		dkg.AwaitingSeed:   dkg.SeedTimedOut,
		dkg.AwaitingResult: dkg.ResultTimedOut,
		dkg.Challenge:      dkg.ApprovalTimedOut,
	} {
		actual, err := dkg.TimeoutOutcome(state)
		require.NoError(t, err)
		assert.Equal(t, expected, actual)
	}
	_, err := dkg.TimeoutOutcome(dkg.Idle)
	require.Error(t, err)
}
