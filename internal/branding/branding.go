// Package branding provides compile-time identity values for the CLI.
//
// Forks edit branding.yaml in this package before building; Go's //go:embed
// bakes it into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName          string `yaml:"cli_name"`
	DisplayName      string `yaml:"display_name"`
	Description      string `yaml:"description"`
	HomeDir          string `yaml:"home_dir"`
	EnvPrefix        string `yaml:"env_prefix"`
	TemplateRepoURL  string `yaml:"template_repo_url"`
	FrameworkPackage string `yaml:"framework_package"`
	GitDownloadURL   string `yaml:"git_download_url"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:          "bolt",
			DisplayName:      "ngBoltJS",
			Description:      "Scaffold, build and deploy ngBoltJS applications",
			HomeDir:          ".bolt",
			EnvPrefix:        "BOLT",
			TemplateRepoURL:  "https://github.com/ngbolt/ng-bolt-template.git",
			FrameworkPackage: "ng-bolt",
			GitDownloadURL:   "http://git-scm.com/downloads",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "bolt").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "ngBoltJS").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".bolt").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "BOLT").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// TemplateRepoURL returns the canonical project template used by "bolt new".
func TemplateRepoURL() string { load(); return defaults.TemplateRepoURL }

// FrameworkPackage returns the npm package name of the framework (e.g., "ng-bolt").
func FrameworkPackage() string { load(); return defaults.FrameworkPackage }

// GitDownloadURL is shown when git is missing from PATH.
func GitDownloadURL() string { load(); return defaults.GitDownloadURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("TEMPLATE") → "BOLT_TEMPLATE".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
