package dkg_test

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/wallet-dkg/model/dkg"
	"github.com/onflow/wallet-dkg/utils/unittest"
)

func TestParameters_Quorum(t *testing.T) {
	params := dkg.DefaultParameters()
	assert.Equal(t, 51, params.Quorum())

	params.QuorumBasisPoints = 6_666
	assert.Equal(t, 67, params.Quorum())

	params.GroupSize = 5
	params.QuorumBasisPoints = 5_000
	assert.Equal(t, 3, params.Quorum())
}

func TestParameters_Validate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		require.NoError(t, dkg.DefaultParameters().Validate())
		require.NoError(t, unittest.ParametersFixture().Validate())
	})

	t.Run("challenge period below minimum", func(t *testing.T) {
		params := unittest.ParametersFixture(func(p *dkg.Parameters) {
			p.ResultChallengePeriodLength = dkg.MinResultChallengePeriodLength - 1
		})
		require.Error(t, params.Validate())
	})

	t.Run("precedence period must be shorter than submission timeout", func(t *testing.T) {
		params := unittest.ParametersFixture(func(p *dkg.Parameters) {
			p.SubmitterPrecedencePeriodLength = p.ResultSubmissionTimeout
		})
		require.Error(t, params.Validate())
	})

	t.Run("at least one challenge is allowed", func(t *testing.T) {
		params := unittest.ParametersFixture(func(p *dkg.Parameters) {
			p.MaxResultChallenges = 0
		})
		require.Error(t, params.Validate())

		params.MaxResultChallenges = 1
		require.NoError(t, params.Validate())
	})

	t.Run("all violations are reported", func(t *testing.T) {
		params := unittest.ParametersFixture(func(p *dkg.Parameters) {
			p.GroupSize = 0
			p.QuorumBasisPoints = 10_000
			p.SignatureSize = 0
		})
		err := params.Validate()
		require.Error(t, err)
		var merr *multierror.Error
		require.ErrorAs(t, err, &merr)
		assert.Len(t, merr.Errors, 3)
	})
}
