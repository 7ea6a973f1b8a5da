package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/ngbolt/bolt-cli/internal/branding"
	"github.com/ngbolt/bolt-cli/internal/manifest"
	"github.com/ngbolt/bolt-cli/internal/npm"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update ng-bolt to the latest version",
	Long: `Run 'npm update ng-bolt' in the current project.

The command must be run in a project whose package.json depends on ng-bolt.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		framework := branding.FrameworkPackage()
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}

		ok, err := manifest.DependsOn(cwd, framework)
		if err != nil {
			return fmt.Errorf("not a %s project: %w", branding.DisplayName(), err)
		}
		if !ok {
			return fmt.Errorf("%s is not installed in this directory", framework)
		}

		con := newConsole(cmd)
		before, _ := manifest.FrameworkVersion(cwd, framework)
		con.Info("Updating %s...", framework)

		client := &npm.Client{Bin: npmBin, Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()}
		if err := client.Update(cmd.Context(), cwd, framework); err != nil {
			return err
		}

		after, _ := manifest.FrameworkVersion(cwd, framework)
		con.Success("%s", updateSummary(framework, before, after))
		return nil
	},
}

// updateSummary describes the version change. Versions that do not parse are
// reported as they are.
func updateSummary(framework, before, after string) string {
	if after == "" {
		return fmt.Sprintf("%s updated", framework)
	}
	bv, berr := parseVersion(before)
	av, aerr := parseVersion(after)
	switch {
	case berr != nil || aerr != nil:
		if before == "" {
			return fmt.Sprintf("%s is now at %s", framework, after)
		}
		return fmt.Sprintf("%s: %s -> %s", framework, before, after)
	case av.GreaterThan(bv):
		return fmt.Sprintf("%s updated: %s -> %s", framework, before, after)
	default:
		return fmt.Sprintf("%s is already up to date (%s)", framework, after)
	}
}

// parseVersion strips a leading "v" and parses the version string.
func parseVersion(v string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(v, "v"))
}
