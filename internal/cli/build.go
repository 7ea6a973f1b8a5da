package cli

import (
	"fmt"
	"os"

	"github.com/ngbolt/bolt-cli/internal/branding"
	"github.com/ngbolt/bolt-cli/internal/build"
	"github.com/ngbolt/bolt-cli/internal/console"
	"github.com/spf13/cobra"
)

// Overridden in tests.
var gulpBin = "gulp"

func init() {
	rootCmd.AddCommand(runCmd, cleanCmd, buildCmd, deployCmd)
}

var runCmd = &cobra.Command{
	Use:   "run [profile]",
	Short: "Start the gulp build with a profile and watch for changes",
	Args:  cobra.MaximumNArgs(1),
	RunE:  gulpTask(build.TaskRun),
}

var cleanCmd = &cobra.Command{
	Use:   "clean [profile]",
	Short: "Clean the build directory",
	Args:  cobra.MaximumNArgs(1),
	RunE:  gulpTask(build.TaskClean),
}

var buildCmd = &cobra.Command{
	Use:   "build [profile]",
	Short: "Run the gulp build",
	Args:  cobra.MaximumNArgs(1),
	RunE:  gulpTask(build.TaskBuild),
}

var deployCmd = &cobra.Command{
	Use:   "deploy <profile>",
	Short: "Run the gulp build and compress assets",
	Long: `Run the gulp build and compress assets for release.

Warnings stop the build and the environment defaults to production.`,
	Args: cobra.ExactArgs(1),
	RunE: gulpTask(build.TaskDeploy),
}

// gulpTask returns a RunE that runs task with the profile argument. A
// non-zero gulp exit status becomes the process exit status.
func gulpTask(task build.Task) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		profile := build.DefaultProfile
		if len(args) == 1 {
			profile = args[0]
		}

		opts := buildOptions()
		if task == build.TaskDeploy {
			opts = opts.ForDeploy()
		}

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}

		con := newConsole(cmd)
		if path, err := build.CheckProfile(cwd, opts.Root, profile); err != nil {
			con.Error("Run failed! %s does not exist or is not accessible.", console.Bold(path))
			return &exitError{code: 1}
		}
		con.Info("Starting gulp using %s profile.", console.Highlight(profile))

		r := &build.Runner{
			Bin:       gulpBin,
			Framework: branding.FrameworkPackage(),
			Stdout:    cmd.OutOrStdout(),
			Stderr:    cmd.ErrOrStderr(),
		}
		code, err := r.Run(cmd.Context(), cwd, task, profile, opts)
		if err != nil {
			return err
		}
		if code != 0 {
			return &exitError{code: code}
		}
		return nil
	}
}
