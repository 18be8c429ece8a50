package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cordova-labs/cordovagen/internal/branding"
	"github.com/cordova-labs/cordovagen/internal/config"
	"github.com/cordova-labs/cordovagen/internal/errs"
	"github.com/cordova-labs/cordovagen/internal/fsutil"
	"github.com/cordova-labs/cordovagen/internal/logger"
	"github.com/cordova-labs/cordovagen/internal/project"
	"github.com/cordova-labs/cordovagen/internal/sdk"
	"github.com/cordova-labs/cordovagen/internal/template"
)

// Exit codes returned by Execute.
const (
	ExitOK            = 0
	ExitGeneralError  = 1
	ExitInvalidInput  = 2
	ExitProjectExists = 3
	ExitEnvironment   = 4
	ExitFilesystem    = 5
	ExitManifest      = 6
	ExitExternalTool  = 7
)

type buildInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// app holds the state shared by every command of one invocation.
type app struct {
	info buildInfo

	configPath string
	root       string
	logLevel   string
	logFormat  string

	store  *config.Store
	logger *slog.Logger

	// newRunner and newChecker are replaced in tests.
	newRunner  func(stdout, stderr io.Writer) sdk.Runner
	newChecker func(runner sdk.Runner, layout template.Layout, tool string) sdk.Checker
}

func newApp(info buildInfo) *app {
	return &app{
		info:   info,
		logger: logger.Discard(),
		newRunner: func(stdout, stderr io.Writer) sdk.Runner {
			return &sdk.ExecRunner{Stdout: stdout, Stderr: stderr}
		},
		newChecker: func(runner sdk.Runner, layout template.Layout, tool string) sdk.Checker {
			return sdk.NewSDKChecker(runner, layout, tool)
		},
	}
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` creates and updates Android projects from a Cordova framework
installation. The installation root is read from the config file, the
` + branding.EnvVar("ROOT") + ` environment variable or --root.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Config file (default: "+config.FilePath()+")")
	flags.StringVar(&a.root, "root", "", "Framework installation root")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.StringVar(&a.logFormat, "log-format", string(logger.FormatText), "Log format: text or json")

	cmd.AddCommand(
		newCreateCmd(a),
		newUpdateCmd(a),
		newCheckCmd(a),
		newConfigCmd(a),
		newVersionCmd(a),
	)
	return cmd
}

// setup opens the config store and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	path := a.configPath
	if path == "" {
		path = config.FilePath()
	}
	store, err := config.Open(path)
	if err != nil {
		return err
	}
	store.Override(config.KeyRoot, a.root)
	store.Override(config.KeyLogLevel, a.logLevel)
	a.store = store

	format := logger.Format(a.logFormat)
	if format != logger.FormatText && format != logger.FormatJSON {
		return errs.Newf(errs.InputValidation, "parse flags", "--log-format must be text or json, got %q", a.logFormat)
	}
	a.logger = logger.New(cmd.ErrOrStderr(), store.Get(config.KeyLogLevel), format)
	return nil
}

// service builds the orchestrator for the configured installation.
func (a *app) service(cmd *cobra.Command) (*project.Service, error) {
	cfg, err := a.store.Load()
	if err != nil {
		return nil, err
	}
	layout := template.NewLayout(cfg.Root)
	if !fsutil.Exists(layout.FrameworkDir()) {
		return nil, errs.Newf(errs.Environment, "load framework",
			"%s does not look like a framework installation (no framework directory)", cfg.Root)
	}
	a.logger.Debug("using framework installation", "root", cfg.Root, "tool", cfg.AndroidTool)

	runner := a.newRunner(cmd.OutOrStdout(), cmd.ErrOrStderr())
	checker := a.newChecker(runner, layout, cfg.AndroidTool)
	linker := sdk.NewLinker(runner, cfg.AndroidTool, layout, a.logger)
	return project.NewService(layout, checker, linker, a.logger), nil
}

// Execute runs the command tree with build info injected via ldflags and
// returns the process exit code.
func Execute(version, commit, date string) int {
	a := newApp(buildInfo{Version: version, Commit: commit, Date: date})
	cmd := newRootCmd(a)
	return report(cmd.ErrOrStderr(), cmd.Execute())
}

// report prints err, along with captured tool output that was not already
// streamed, and maps it to an exit code.
func report(w io.Writer, err error) int {
	if err == nil {
		return ExitOK
	}
	if out := errs.OutputOf(err); out != "" && !errs.Streamed(err) {
		fmt.Fprintln(w, out)
	}
	fmt.Fprintf(w, "Error: %v\n", err)
	return exitCode(err)
}

func exitCode(err error) int {
	switch errs.KindOf(err) {
	case errs.InputValidation:
		return ExitInvalidInput
	case errs.Precondition:
		return ExitProjectExists
	case errs.Environment:
		return ExitEnvironment
	case errs.Filesystem:
		return ExitFilesystem
	case errs.ManifestParse:
		return ExitManifest
	case errs.ExternalTool:
		return ExitExternalTool
	default:
		return ExitGeneralError
	}
}
