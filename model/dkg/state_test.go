package dkg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/onflow/wallet-dkg/model/dkg"
)

func TestState_String(t *testing.T) {
	assert.Equal(t, "IDLE", dkg.Idle.String())
	assert.Equal(t, "AWAITING_SEED", dkg.AwaitingSeed.String())
	assert.Equal(t, "AWAITING_RESULT", dkg.AwaitingResult.String())
	assert.Equal(t, "CHALLENGE", dkg.Challenge.String())
	assert.Equal(t, "UNKNOWN(9)", dkg.State(9).String())
	assert.False(t, dkg.State(4).IsValid())
}

// TestState_CanTransitionTo checks the full transition table. Any edge not
// listed here must be rejected.
func TestState_CanTransitionTo(t *testing.T) {
	allowed := map[dkg.State][]dkg.State{
		dkg.Idle:           {dkg.AwaitingSeed},
		dkg.AwaitingSeed:   {dkg.AwaitingResult, dkg.Idle},
		dkg.AwaitingResult: {dkg.Challenge, dkg.Idle},
		dkg.Challenge:      {dkg.Idle, dkg.AwaitingResult},
	}
	all := []dkg.State{dkg.Idle, dkg.AwaitingSeed, dkg.AwaitingResult, dkg.Challenge, dkg.State(7)}

	for _, from := range all {
		for _, to := range all {
			expected := false
			for _, next := range allowed[from] {
				if next == to {
					expected = true
				}
			}
			assert.Equal(t, expected, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}
