package build

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// ErrGulpNotFound is returned when gulp is not on PATH.
var ErrGulpNotFound = errors.New("gulp is required but not found in PATH")

// Runner invokes gulp.
type Runner struct {
	// Bin overrides the executable name; defaults to "gulp".
	Bin string
	// Framework is the npm package whose gulpfile is used when installed.
	Framework string
	// Stdout and Stderr default to os.Stdout and os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

func (r *Runner) bin() string {
	if r.Bin != "" {
		return r.Bin
	}
	return "gulp"
}

// LookPath resolves the gulp executable.
func (r *Runner) LookPath() (string, error) {
	path, err := exec.LookPath(r.bin())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGulpNotFound, err)
	}
	return path, nil
}

// Args returns the gulp command line for task in dir.
func (r *Runner) Args(dir string, task Task, profile string, o Options) []string {
	var args []string
	if task != TaskRun {
		args = append(args, string(task))
	}
	if r.Framework != "" {
		if gf := Gulpfile(dir, r.Framework); gf != "" {
			args = append(args, "--gulpfile", gf)
		}
	}
	return append(args, Flags(profile, o)...)
}

// Run checks that the profile exists and runs gulp in dir, streaming its
// output. The returned code is gulp's exit status; the error is non-nil only
// when gulp could not be started.
func (r *Runner) Run(ctx context.Context, dir string, task Task, profile string, o Options) (int, error) {
	if profile == "" {
		profile = DefaultProfile
	}
	if _, err := CheckProfile(dir, o.Root, profile); err != nil {
		return 1, err
	}

	bin, err := r.LookPath()
	if err != nil {
		return 1, err
	}

	cmd := exec.CommandContext(ctx, bin, r.Args(dir, task, profile, o)...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// ExitCode is -1 when gulp was killed by a signal.
			if code := exitErr.ExitCode(); code > 0 {
				return code, nil
			}
			return 1, nil
		}
		return 1, fmt.Errorf("running gulp: %w", err)
	}
	return 0, nil
}
