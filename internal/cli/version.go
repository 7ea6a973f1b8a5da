package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ngbolt/bolt-cli/internal/branding"
	"github.com/ngbolt/bolt-cli/internal/manifest"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Print the CLI version and, inside a project, the ng-bolt version it uses.

The ng-bolt version is read from ./package.json when the current directory is
ng-bolt itself, otherwise from node_modules/ng-bolt/package.json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if versionShort {
			fmt.Fprintln(out, buildVersion)
			return nil
		}

		framework := branding.FrameworkPackage()
		var fwVersion string
		if cwd, err := os.Getwd(); err == nil {
			fwVersion, _ = manifest.FrameworkVersion(cwd, framework)
		}

		if versionJSON {
			info := map[string]string{
				"version": buildVersion,
				"commit":  buildCommit,
				"date":    buildDate,
			}
			if fwVersion != "" {
				info[framework] = fwVersion
			}
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintf(out, "%s version %s (commit: %s, built: %s)\n", branding.CLIName(), buildVersion, buildCommit, buildDate)
		if fwVersion != "" {
			fmt.Fprintf(out, "%s version %s\n", framework, fwVersion)
		}
		return nil
	},
}
