package config

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"github.com/onflow/wallet-dkg/model/dkg"
	"github.com/onflow/wallet-dkg/module/governance"
)

// Config is the operator configuration of a wallet DKG node. Values are
// resolved from defaults, an optional config file, environment variables
// prefixed with WALLET_DKG_ and command line flags, in increasing order of
// precedence.
type Config struct {
	// DataDir is the directory of the badger database.
	DataDir  string `mapstructure:"datadir"`
	LogLevel string `mapstructure:"loglevel"`

	// RandomnessSource is the hex address allowed to deliver seeds.
	RandomnessSource string `mapstructure:"randomness-source"`
	// Governance is the hex address governing parameters on first start.
	Governance string `mapstructure:"governance"`
	// GovernanceDelay is the timelock applied to parameter changes on first start.
	GovernanceDelay time.Duration `mapstructure:"governance-delay"`

	DKG DKGConfig `mapstructure:",squash"`
}

// DKGConfig holds the round parameters written on first start. Once the
// database holds parameters, changes go through governance.
type DKGConfig struct {
	GroupSize                       uint32 `mapstructure:"dkg-group-size"`
	QuorumBasisPoints               uint32 `mapstructure:"dkg-quorum-basis-points"`
	SignatureSize                   uint32 `mapstructure:"dkg-signature-size"`
	SeedTimeout                     uint64 `mapstructure:"dkg-seed-timeout"`
	ResultSubmissionTimeout         uint64 `mapstructure:"dkg-result-submission-timeout"`
	ResultChallengePeriodLength     uint64 `mapstructure:"dkg-result-challenge-period-length"`
	SubmitterPrecedencePeriodLength uint64 `mapstructure:"dkg-submitter-precedence-period-length"`
	ResultApprovalTimeout           uint64 `mapstructure:"dkg-result-approval-timeout"`
	MaxResultChallenges             uint32 `mapstructure:"dkg-max-result-challenges"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
// Governance and RandomnessSource have no sensible default and must be set.
func DefaultConfig() Config {
	params := dkg.DefaultParameters()
	return Config{
		DataDir:         "/data/wallet-dkg",
		LogLevel:        zerolog.InfoLevel.String(),
		GovernanceDelay: 48 * time.Hour,
		DKG: DKGConfig{
			GroupSize:                       params.GroupSize,
			QuorumBasisPoints:               params.QuorumBasisPoints,
			SignatureSize:                   params.SignatureSize,
			SeedTimeout:                     params.SeedTimeout,
			ResultSubmissionTimeout:         params.ResultSubmissionTimeout,
			ResultChallengePeriodLength:     params.ResultChallengePeriodLength,
			SubmitterPrecedencePeriodLength: params.SubmitterPrecedencePeriodLength,
			ResultApprovalTimeout:           params.ResultApprovalTimeout,
			MaxResultChallenges:             params.MaxResultChallenges,
		},
	}
}

// Parameters returns the configured round parameters.
func (c Config) Parameters() dkg.Parameters {
	return dkg.Parameters{
		GroupSize:                       c.DKG.GroupSize,
		QuorumBasisPoints:               c.DKG.QuorumBasisPoints,
		SignatureSize:                   c.DKG.SignatureSize,
		SeedTimeout:                     c.DKG.SeedTimeout,
		ResultSubmissionTimeout:         c.DKG.ResultSubmissionTimeout,
		ResultChallengePeriodLength:     c.DKG.ResultChallengePeriodLength,
		SubmitterPrecedencePeriodLength: c.DKG.SubmitterPrecedencePeriodLength,
		ResultApprovalTimeout:           c.DKG.ResultApprovalTimeout,
		MaxResultChallenges:             c.DKG.MaxResultChallenges,
	}
}

// Bootstrap returns the governance bootstrap values. The config must be valid.
func (c Config) Bootstrap() governance.Bootstrap {
	return governance.Bootstrap{
		Parameters: c.Parameters(),
		Delay:      c.GovernanceDelay,
		Governance: common.HexToAddress(c.Governance),
	}
}

func (c Config) RandomnessSourceAddress() common.Address {
	return common.HexToAddress(c.RandomnessSource)
}

// Level returns the parsed log level. The config must be valid.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// ValidateStorage checks the values needed to open the database.
func (c Config) ValidateStorage() error {
	return c.validateStorage().ErrorOrNil()
}

func (c Config) validateStorage() *multierror.Error {
	var errs *multierror.Error
	if c.DataDir == "" {
		errs = multierror.Append(errs, fmt.Errorf("%s must be set", flagDataDir))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("invalid %s: %w", flagLogLevel, err))
	}
	return errs
}

// Validate checks the configuration and reports every problem found.
func (c Config) Validate() error {
	errs := c.validateStorage()
	errs = multierror.Append(errs, validateAddress(flagRandomnessSource, c.RandomnessSource))
	errs = multierror.Append(errs, validateAddress(flagGovernance, c.Governance))
	if c.GovernanceDelay < 0 {
		errs = multierror.Append(errs, fmt.Errorf("%s must not be negative, got %s", flagGovernanceDelay, c.GovernanceDelay))
	}
	if err := c.Parameters().Validate(); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("invalid dkg parameters: %w", err))
	}
	return errs.ErrorOrNil()
}

func validateAddress(name string, value string) error {
	if !common.IsHexAddress(value) {
		return fmt.Errorf("%s must be a hex address, got %q", name, value)
	}
	if common.HexToAddress(value) == (common.Address{}) {
		return fmt.Errorf("%s must not be the zero address", name)
	}
	return nil
}
