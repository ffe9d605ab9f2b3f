package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var flagHeight uint64

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "print the state of the current round",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withReader(func(r *Reader) error {
			view, err := r.State(flagHeight)
			if err != nil {
				return err
			}
			prettyPrint(view)
			return nil
		})
	},
}

var dkgDataCmd = &cobra.Command{
	Use:   "dkg-data",
	Short: "print the full record of the current round",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withReader(func(r *Reader) error {
			round, err := r.Round()
			if err != nil {
				return err
			}
			log.Info().Uint64("round_id", round.ID).Str("state", round.State.String()).Msg("read current round")
			prettyPrint(round)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(dkgDataCmd)

	stateCmd.Flags().Uint64Var(&flagHeight, "height", 0,
		"block height at which to evaluate the round deadline")
}
