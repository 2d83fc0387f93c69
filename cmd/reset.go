package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quiztime/internal/console"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all recorded quiz results",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			c := console.New(cmd.InOrStdin(), cmd.OutOrStdout())
			ok, err := console.Confirm(c, "Delete all recorded quiz results? (y/N)")
			if err != nil || !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing deleted.")
				return nil
			}
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.EventRepo().Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset results: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "All recorded results deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
