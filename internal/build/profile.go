package build

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultProfile is used when no profile is named.
const DefaultProfile = "development"

// ErrProfileNotFound is returned when the profile file is missing.
var ErrProfileNotFound = errors.New("profile does not exist or is not accessible")

// Task is a gulp task name. TaskRun is gulp's default task.
type Task string

const (
	TaskRun    Task = ""
	TaskClean  Task = "clean"
	TaskBuild  Task = "build"
	TaskDeploy Task = "deploy"
)

// Options are the build flags shared by every task.
type Options struct {
	// Env is the build environment, e.g. "development" or "production".
	Env string
	// Fatal is the error level that stops the build: "error", "warning" or "off".
	Fatal string
	// Root is the app directory relative to the project directory.
	Root string
	// Beautify disables minification.
	Beautify bool
}

// ForDeploy returns the options deploy runs with: warnings are fatal and the
// environment defaults to production.
func (o Options) ForDeploy() Options {
	o.Fatal = "warning"
	if o.Env == "" {
		o.Env = "production"
	}
	return o
}

// Flags returns the gulp flags for profile.
func Flags(profile string, o Options) []string {
	flags := []string{"--color", "--pr", profile}
	if o.Fatal != "" {
		flags = append(flags, "--fatal", o.Fatal)
	}
	if o.Env != "" {
		flags = append(flags, "--env", o.Env)
	}
	if o.Beautify {
		flags = append(flags, "--b")
	}
	if o.Root != "" {
		flags = append(flags, "--appRoot", o.Root)
	}
	return flags
}

// ProfilePath returns the location of profile's configuration file.
func ProfilePath(dir, root, profile string) string {
	return filepath.Join(dir, root, "config", "profiles", profile+".json")
}

// CheckProfile returns the profile path, or an error wrapping
// ErrProfileNotFound when it cannot be read.
func CheckProfile(dir, root, profile string) (string, error) {
	path := ProfilePath(dir, root, profile)
	f, err := os.Open(path)
	if err != nil {
		return path, fmt.Errorf("%s %w", path, ErrProfileNotFound)
	}
	f.Close()
	return path, nil
}

// Gulpfile returns the framework's installed gulpfile under dir, or "" when
// the framework is not installed (e.g. inside the framework repository).
func Gulpfile(dir, framework string) string {
	path := filepath.Join(dir, "node_modules", framework, "gulpfile.js")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
