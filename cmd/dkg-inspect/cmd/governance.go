package cmd

import (
	"github.com/spf13/cobra"
)

var parametersCmd = &cobra.Command{
	Use:   "parameters",
	Short: "print governance parameters and pending changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withReader(func(r *Reader) error {
			views, err := r.Parameters()
			if err != nil {
				return err
			}
			prettyPrint(views)
			return nil
		})
	},
}

var governanceCmd = &cobra.Command{
	Use:   "governance",
	Short: "print the governance address and any pending transfer",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withReader(func(r *Reader) error {
			view, err := r.Governance()
			if err != nil {
				return err
			}
			prettyPrint(view)
			return nil
		})
	},
}

var requestersCmd = &cobra.Command{
	Use:   "requesters",
	Short: "print the addresses authorized to request wallets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withReader(func(r *Reader) error {
			requesters, err := r.Requesters()
			if err != nil {
				return err
			}
			prettyPrint(requesters)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(parametersCmd)
	rootCmd.AddCommand(governanceCmd)
	rootCmd.AddCommand(requestersCmd)
}
