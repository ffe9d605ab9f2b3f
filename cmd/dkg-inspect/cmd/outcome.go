package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	flagRoundID uint64
	flagAll     bool
)

var outcomeCmd = &cobra.Command{
	Use:   "outcome",
	Short: "print the archived outcome of a retired round",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withReader(func(r *Reader) error {
			if flagAll {
				outcomes, err := r.Outcomes()
				if err != nil {
					return err
				}
				prettyPrint(outcomes)
				return nil
			}

			if flagRoundID == 0 {
				return fmt.Errorf("missing flags --round or --all")
			}
			outcome, err := r.Outcome(flagRoundID)
			if err != nil {
				return err
			}
			prettyPrint(outcome)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(outcomeCmd)

	outcomeCmd.Flags().Uint64VarP(&flagRoundID, "round", "r", 0, "the round ID")
	outcomeCmd.Flags().BoolVar(&flagAll, "all", false, "print all archived outcomes")
}
