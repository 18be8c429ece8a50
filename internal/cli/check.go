package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that the build requirements are installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(cmd)
			if err != nil {
				return err
			}
			if err := svc.Checker.Run(cmd.Context()); err != nil {
				return err
			}
			target, err := svc.Checker.Target()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Requirements check passed (target %s)\n", target)
			return nil
		},
	}
}
