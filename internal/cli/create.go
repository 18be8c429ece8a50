package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cordova-labs/cordovagen/internal/branding"
	"github.com/cordova-labs/cordovagen/internal/project"
	"github.com/cordova-labs/cordovagen/internal/request"
)

func newCreateCmd(a *app) *cobra.Command {
	var (
		shared bool
		cli    bool
		from   string
	)

	cmd := &cobra.Command{
		Use:   "create [path] [package] [name] [template]",
		Short: "Create a new Android project",
		Long: `Create a new Android project from the framework installation.

Arguments default to "` + project.DefaultPath + `", "` + project.DefaultPackage + `" and "` + project.DefaultName + `".
The template directory defaults to the installation's bin/templates/project.
With --from the request is read from a YAML file; positional arguments
override the values it sets.

Examples:
  ` + branding.CLIName() + ` create out/MyApp com.example.myapp "My App"
  ` + branding.CLIName() + ` create --shared out/MyApp com.example.myapp MyApp
  ` + branding.CLIName() + ` create --from myapp.yaml`,
		Args: cobra.MaximumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req project.Request
			if from != "" {
				f, err := request.Load(from)
				if err != nil {
					return err
				}
				req = f.Request()
			}
			overlay(&req, args)
			if cmd.Flags().Changed("shared") {
				req.Shared = shared
			}
			if cmd.Flags().Changed("cli") {
				req.CLITemplate = cli
			}

			svc, err := a.service(cmd)
			if err != nil {
				return err
			}
			res, err := svc.Create(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Created %s (%s) at %s\n", res.Name, res.Package, res.Path)
			fmt.Fprintf(out, "  activity: %s\n", res.Activity)
			fmt.Fprintf(out, "  target:   %s\n", res.Target)
			fmt.Fprintf(out, "  version:  %s\n", res.Version)
			return nil
		},
	}

	cmd.Flags().BoolVar(&shared, "shared", false, "Link against the installation's framework instead of a CordovaLib copy")
	cmd.Flags().BoolVar(&cli, "cli", false, "Use the Eclipse project file for CLI-managed projects")
	cmd.Flags().StringVar(&from, "from", "", "Read the request from a YAML file")
	return cmd
}

// overlay copies non-empty positional arguments onto req.
func overlay(req *project.Request, args []string) {
	fields := []*string{&req.Path, &req.Package, &req.Name, &req.TemplateDir}
	for i, arg := range args {
		if i < len(fields) && arg != "" {
			*fields[i] = arg
		}
	}
}
