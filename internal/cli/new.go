package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/ngbolt/bolt-cli/internal/branding"
	"github.com/ngbolt/bolt-cli/internal/config"
	"github.com/ngbolt/bolt-cli/internal/console"
	"github.com/ngbolt/bolt-cli/internal/npm"
	"github.com/ngbolt/bolt-cli/internal/platform"
	"github.com/ngbolt/bolt-cli/internal/prompt"
	"github.com/ngbolt/bolt-cli/internal/scaffold"
	"github.com/ngbolt/bolt-cli/internal/vcs"
	"github.com/spf13/cobra"
)

var (
	newTemplate string
	newBolt     string
)

// Overridden in tests.
var (
	isPrivileged = platform.IsPrivileged
	gitBin       = "git"
	npmBin       = "npm"
)

func init() {
	newCmd.Flags().StringVarP(&newTemplate, "template", "t", "", "Template repository to clone (default: the ngBoltJS template)")
	newCmd.Flags().StringVarP(&newBolt, "bolt", "v", "", "Version of ng-bolt to use in the new project (default: the template's)")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Create a new project with an interactive setup prompt",
	Long: `Create a new ` + branding.DisplayName() + ` project in ./<name>.

The project template is cloned, its package.json is rewritten with the
details you enter and its npm dependencies are installed. When name is
omitted it is asked for along with the other details.

Examples:
  bolt new my-app
  bolt new my-app --bolt 2.1.0
  bolt new --template https://github.com/acme/bolt-starter.git`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

func runNew(cmd *cobra.Command, args []string) error {
	con := newConsole(cmd)

	template := config.TemplateSource()
	if cmd.Flags().Changed("template") {
		template = newTemplate
		con.Success("Using template: %s", template)
	}
	boltVersion := config.FrameworkVersion()
	if cmd.Flags().Changed("bolt") {
		boltVersion = newBolt
	}
	if boltVersion != "" {
		con.Success("Using %s version: %s", branding.FrameworkPackage(), boltVersion)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	git := &vcs.Git{Bin: gitBin}
	npmClient := &npm.Client{Bin: npmBin}
	if verbose {
		git.Stdout, git.Stderr = cmd.OutOrStdout(), cmd.ErrOrStderr()
		npmClient.Stdout, npmClient.Stderr = cmd.OutOrStdout(), cmd.ErrOrStderr()
	}

	var name string
	if len(args) == 1 {
		name = args[0]
	}

	p := &scaffold.Pipeline{
		Dir:              cwd,
		TemplateSource:   template,
		FrameworkVersion: boltVersion,
		FrameworkPackage: branding.FrameworkPackage(),
		Prompter:         newPrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
		Cloner:           git,
		Installer:        npmClient,
		InstallOptions: npm.Options{
			CacheMin: config.InstallCacheMin(),
			LogLevel: config.InstallLogLevel(),
		},
		IsPrivileged: isPrivileged,
		LookGit: func() error {
			_, err := git.LookPath()
			return err
		},
		Console: con,
	}

	report, err := p.Run(cmd.Context(), name)
	if err != nil {
		return err
	}

	if !report.OK() {
		con.Error("There were some problems when trying to set up your new %s project.", branding.DisplayName())
		con.Error("%s", report.Summary())
		if report.Partial() {
			con.Warn("Run 'npm install' inside %s to finish the setup.", report.Dir)
		}
		return nil
	}

	con.Plain("Your new %s project is set up and ready to go! You can now run %s while inside the %s folder.",
		branding.DisplayName(),
		console.Highlight(branding.CLIName()+" run"),
		console.Highlight(report.Project.Name))
	return nil
}

// newPrompter uses the interactive prompt when in is a terminal.
func newPrompter(in io.Reader, out io.Writer) prompt.Prompter {
	if f, ok := in.(*os.File); ok {
		return prompt.New(f, out)
	}
	return prompt.NewLine(in, out)
}
