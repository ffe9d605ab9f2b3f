package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// All constant strings are used for CLI flag names and corresponding keys for config values.
	flagConfigFile       = "config"
	flagDataDir          = "datadir"
	flagLogLevel         = "loglevel"
	flagRandomnessSource = "randomness-source"
	flagGovernance       = "governance"
	flagGovernanceDelay  = "governance-delay"
	// round parameters written on first start
	flagGroupSize                       = "dkg-group-size"
	flagQuorumBasisPoints               = "dkg-quorum-basis-points"
	flagSignatureSize                   = "dkg-signature-size"
	flagSeedTimeout                     = "dkg-seed-timeout"
	flagResultSubmissionTimeout         = "dkg-result-submission-timeout"
	flagResultChallengePeriodLength     = "dkg-result-challenge-period-length"
	flagSubmitterPrecedencePeriodLength = "dkg-submitter-precedence-period-length"
	flagResultApprovalTimeout           = "dkg-result-approval-timeout"
	flagMaxResultChallenges             = "dkg-max-result-challenges"

	envPrefix = "WALLET_DKG"
)

func AllFlagNames() []string {
	return []string{
		flagDataDir, flagLogLevel, flagRandomnessSource, flagGovernance, flagGovernanceDelay,
		flagGroupSize, flagQuorumBasisPoints, flagSignatureSize, flagSeedTimeout, flagResultSubmissionTimeout,
		flagResultChallengePeriodLength, flagSubmitterPrecedencePeriodLength, flagResultApprovalTimeout, flagMaxResultChallenges,
	}
}

// InitializeStorageFlags registers the flags needed to open the database:
// the config file, the data directory and the log level.
func InitializeStorageFlags(flags *pflag.FlagSet, config *Config) {
	flags.String(flagConfigFile, "", "path to an optional config file (yaml, json or toml)")
	flags.String(flagDataDir, config.DataDir, "directory of the badger database")
	flags.String(flagLogLevel, config.LogLevel, "log level (trace, debug, info, warn, error)")
}

// InitializeFlags registers every configuration flag on the provided pflag
// set, using config for the default values.
func InitializeFlags(flags *pflag.FlagSet, config *Config) {
	InitializeStorageFlags(flags, config)
	flags.String(flagRandomnessSource, config.RandomnessSource, "address allowed to deliver relay entries")
	flags.String(flagGovernance, config.Governance, "governance address written on first start")
	flags.Duration(flagGovernanceDelay, config.GovernanceDelay, "governance delay written on first start")

	flags.Uint32(flagGroupSize, config.DKG.GroupSize, "number of members selected into a committee")
	flags.Uint32(flagQuorumBasisPoints, config.DKG.QuorumBasisPoints, "honest-majority fraction of the committee in basis points")
	flags.Uint32(flagSignatureSize, config.DKG.SignatureSize, "size in bytes of a member signature")
	flags.Uint64(flagSeedTimeout, config.DKG.SeedTimeout, "blocks the randomness source has to deliver the seed")
	flags.Uint64(flagResultSubmissionTimeout, config.DKG.ResultSubmissionTimeout, "blocks the committee has to submit a result")
	flags.Uint64(flagResultChallengePeriodLength, config.DKG.ResultChallengePeriodLength, "blocks during which a submitted result may be challenged")
	flags.Uint64(flagSubmitterPrecedencePeriodLength, config.DKG.SubmitterPrecedencePeriodLength, "blocks after the challenge period during which only the submitter may finalize")
	flags.Uint64(flagResultApprovalTimeout, config.DKG.ResultApprovalTimeout, "blocks after the precedence period after which an unfinalized result is abandoned")
	flags.Uint32(flagMaxResultChallenges, config.DKG.MaxResultChallenges, "successful challenges after which a round is abandoned")
}

// Load resolves the configuration and validates all of it.
func Load(conf *viper.Viper, flags *pflag.FlagSet) (Config, error) {
	config, err := Resolve(conf, flags)
	if err != nil {
		return Config{}, err
	}
	err = config.Validate()
	if err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

// Resolve reads the configuration from the flags, the environment and the
// config file named by --config on top of DefaultConfig. Flags missing from
// the set keep their default unless set through the environment or the
// file. The result is not validated.
func Resolve(conf *viper.Viper, flags *pflag.FlagSet) (Config, error) {
	err := conf.BindPFlags(flags)
	if err != nil {
		return Config{}, fmt.Errorf("could not bind flags: %w", err)
	}
	conf.SetEnvPrefix(envPrefix)
	conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	conf.AutomaticEnv()

	if file := conf.GetString(flagConfigFile); file != "" {
		conf.SetConfigFile(file)
		err = conf.ReadInConfig()
		if err != nil {
			return Config{}, fmt.Errorf("could not read config file %s: %w", file, err)
		}
	}

	config := DefaultConfig()
	err = conf.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("could not decode config: %w", err)
	}
	return config, nil
}
