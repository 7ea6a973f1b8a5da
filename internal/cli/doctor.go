package cli

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/ngbolt/bolt-cli/internal/branding"
	"github.com/ngbolt/bolt-cli/internal/console"
	"github.com/ngbolt/bolt-cli/internal/manifest"
	"github.com/ngbolt/bolt-cli/internal/platform"
	"github.com/spf13/cobra"
)

var checkManifest string

func init() {
	doctorCmd.Flags().StringVar(&checkManifest, "check-manifest", "", "Validate a package.json at the given path (default: ./package.json)")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the environment for " + branding.DisplayName() + " development",
	Long: `Check that git, node, npm and gulp are on PATH, that the CLI is not
running with root privileges, and that the project's package.json is valid.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		con := console.New(w, w)
		con.Prefix = "  "

		runToolCheck(w, con)
		runPrivilegeCheck(w, con)

		path := checkManifest
		if path == "" {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting working directory: %w", err)
			}
			path = filepath.Join(cwd, manifest.FileName)
			if _, err := os.Stat(path); err != nil {
				fmt.Fprintln(w, "Manifest validation:")
				con.Status("[INFO]", "no "+manifest.FileName+" in the current directory", color.FgCyan)
				return nil
			}
		}
		return runManifestCheck(w, con, path)
	},
}

func runToolCheck(w io.Writer, con *console.Console) {
	fmt.Fprintln(w, "Tool check:")
	for _, name := range []string{gitBin, "node", npmBin, gulpBin} {
		checkBinary(con, name)
	}
}

func checkBinary(con *console.Console, name string) {
	path, err := exec.LookPath(name)
	if err != nil {
		con.Status("[MISS]", name+" not found", color.FgYellow)
		return
	}
	con.Status("[ OK ]", fmt.Sprintf("%s found at %s", name, path), color.FgGreen)
}

func runPrivilegeCheck(w io.Writer, con *console.Console) {
	fmt.Fprintln(w, "Privilege check:")
	if !isPrivileged() {
		con.Status("[ OK ]", "running as a regular user", color.FgGreen)
		return
	}
	if user, ok := platform.InvokedViaSudo(); ok {
		con.Status("[WARN]", fmt.Sprintf("running as root via sudo (real user %s); '%s new' will refuse to run", user, branding.CLIName()), color.FgYellow)
		return
	}
	con.Status("[WARN]", fmt.Sprintf("running as root; '%s new' will refuse to run", branding.CLIName()), color.FgYellow)
}

func runManifestCheck(w io.Writer, con *console.Console, path string) error {
	fmt.Fprintf(w, "Manifest validation: %s\n", path)

	result, err := manifest.ValidateFile(path)
	if err != nil {
		con.Status("[FAIL]", err.Error(), color.FgRed)
		return fmt.Errorf("manifest validation failed: %w", err)
	}

	if result.Valid {
		tpl, err := manifest.Read(path)
		if err != nil {
			con.Status("[ OK ]", "Valid manifest", color.FgGreen)
			return nil
		}
		con.Status("[ OK ]", fmt.Sprintf("Valid manifest: %s (v%s)", tpl.Name, tpl.Version), color.FgGreen)
		return nil
	}

	con.Status("[FAIL]", fmt.Sprintf("%d validation issue(s):", len(result.Issues)), color.FgRed)
	for _, issue := range result.Issues {
		fmt.Fprintf(w, "    - %s\n", issue)
	}
	return fmt.Errorf("manifest %s has %d validation issue(s)", path, len(result.Issues))
}
