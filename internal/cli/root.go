package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/ngbolt/bolt-cli/internal/branding"
	"github.com/ngbolt/bolt-cli/internal/build"
	"github.com/ngbolt/bolt-cli/internal/config"
	"github.com/ngbolt/bolt-cli/internal/console"
	"github.com/ngbolt/bolt-cli/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Persistent flags.
var (
	flagEnv      string
	flagFatal    string
	flagRoot     string
	flagBeautify bool
	verbose      bool
	noColor      bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` command line tools.

Create new projects from the project template and run the gulp build with a
named profile from config/profiles.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			console.DisableColor()
		}
		config.Load()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagEnv, "env", "e", "", "Build environment: 'development' (default) or 'production'")
	pf.StringVarP(&flagFatal, "fatal", "f", "", "Error level that stops the build: 'error' (default), 'warning' or 'off'")
	pf.StringVarP(&flagRoot, "root", "r", "", "App directory relative to the current directory")
	pf.BoolVarP(&flagBeautify, "beautify", "b", false, "Skip minification of assets")
	pf.BoolVar(&verbose, "verbose", false, "Show git and npm output")
	pf.BoolVar(&noColor, "no-color", false, "Disable coloured output")
}

// buildOptions collects the persistent build flags.
func buildOptions() build.Options {
	return build.Options{
		Env:      flagEnv,
		Fatal:    flagFatal,
		Root:     flagRoot,
		Beautify: flagBeautify,
	}
}

// newConsole returns a console bound to the command's output streams.
func newConsole(cmd *cobra.Command) *console.Console {
	c := console.New(cmd.OutOrStdout(), cmd.ErrOrStderr())
	c.Prefix = branding.DisplayName() + ": "
	return c
}

// exitError ends the process with code after the command has already
// reported the failure.
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	var fe *scaffold.FatalError
	if errors.As(err, &fe) {
		return fe.Code
	}
	return 1
}

// Execute runs the root command with build info injected via ldflags.
// Interrupts cancel the running command's context, stopping any git, npm or
// gulp child process.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	bindContext(rootCmd, ctx)
	err := rootCmd.ExecuteContext(ctx)
	var ee *exitError
	if err != nil && !errors.As(err, &ee) {
		fmt.Fprintln(rootCmd.ErrOrStderr(), color.RedString("Error: %v", err))
	}
	return err
}

// bindContext sets ctx on cmd and its children. Cobra keeps the first
// context a child command received, so it is rebound on every run.
func bindContext(cmd *cobra.Command, ctx context.Context) {
	cmd.SetContext(ctx)
	for _, c := range cmd.Commands() {
		bindContext(c, ctx)
	}
}
