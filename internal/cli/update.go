package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUpdateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "update [path]",
		Short: "Update an existing project to the installed framework",
		Long: `Refresh the framework library, helper scripts and build rules of an existing
project and link it again. The project always gets its own CordovaLib copy.
The path defaults to the current directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}

			svc, err := a.service(cmd)
			if err != nil {
				return err
			}
			res, err := svc.Update(cmd.Context(), path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.Previous != "" && res.Previous != res.Version {
				fmt.Fprintf(out, "Updated %s from %s to %s\n", res.Activity, res.Previous, res.Version)
			} else {
				fmt.Fprintf(out, "Updated %s to %s\n", res.Activity, res.Version)
			}
			return nil
		},
	}
}
