package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ngbolt/bolt-cli/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyTemplate        = "template"
	KeyFrameworkVer    = "bolt"
	KeyInstallCacheMin = "install.cache_min"
	KeyInstallLogLevel = "install.loglevel"
)

// DefaultCacheMin is the npm cache freshness window used when installing
// dependencies for a new project.
const DefaultCacheMin = 999999999 * time.Second

// Dir returns the path to the config directory (~/.bolt/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.bolt/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeyTemplate, branding.TemplateRepoURL())
	viper.SetDefault(KeyInstallCacheMin, int64(DefaultCacheMin/time.Second))
	viper.SetDefault(KeyInstallLogLevel, "error")

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// TemplateSource returns the template repository for new projects.
func TemplateSource() string {
	if v := Get(KeyTemplate); v != "" {
		return v
	}
	return branding.TemplateRepoURL()
}

// FrameworkVersion returns the configured framework version pin, or "".
func FrameworkVersion() string {
	return Get(KeyFrameworkVer)
}

// InstallCacheMin returns the npm cache-min window for dependency installs.
func InstallCacheMin() time.Duration {
	secs := viper.GetInt64(KeyInstallCacheMin)
	if secs <= 0 {
		return DefaultCacheMin
	}
	return time.Duration(secs) * time.Second
}

// InstallLogLevel returns the npm log level for dependency installs.
func InstallLogLevel() string {
	if v := Get(KeyInstallLogLevel); v != "" {
		return v
	}
	return "error"
}

// Set writes a config key-value pair and saves the config file. Only the
// keys already in the file and key itself are written; defaults and
// environment overrides are not persisted.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()
	file := viper.New()
	file.SetConfigFile(configFile)
	file.SetConfigType(fileType)
	if _, err := os.Stat(configFile); err == nil {
		if err := file.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	file.Set(key, value)
	if err := file.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	viper.Set(key, value)
	return nil
}
