package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	scaffold "github.com/onflow/wallet-dkg/cmd"
	"github.com/onflow/wallet-dkg/config"
	"github.com/onflow/wallet-dkg/module/metrics"
	bstorage "github.com/onflow/wallet-dkg/storage/badger"
)

// conf is resolved from the persistent flags, WALLET_DKG_ environment
// variables and the optional config file before any command runs.
var conf = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:               "dkg-inspect",
	Short:             "read wallet DKG coordinator and governance state from a node database",
	PersistentPreRunE: initConfig,
	SilenceUsage:      true,
}

var RootCmd = rootCmd

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	defaults := config.DefaultConfig()
	config.InitializeStorageFlags(rootCmd.PersistentFlags(), &defaults)
}

func initConfig(cmd *cobra.Command, _ []string) error {
	resolved, err := config.Resolve(viper.New(), cmd.Flags())
	if err != nil {
		return err
	}
	err = resolved.ValidateStorage()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	conf = resolved
	log.Logger = scaffold.InitLogger(conf)
	return nil
}

// withReader opens the database, runs f with a reader over it and closes
// the database again.
func withReader(f func(*Reader) error) error {
	db, err := scaffold.InitDatabase(conf)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("could not close database")
		}
	}()

	collector := metrics.NewNoopCollector()
	reader := NewReader(
		bstorage.NewWalletDKGRounds(collector, db),
		bstorage.NewGovernanceParameters(collector, db),
		bstorage.NewAuthorizedRequesters(collector, db),
	)
	return f(reader)
}

func prettyPrint(entity interface{}) {
	bytes, err := json.MarshalIndent(entity, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("could not marshal entity")
	}
	fmt.Println(string(bytes))
}
