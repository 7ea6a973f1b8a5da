package vcs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// ErrGitNotFound is returned when git is not on PATH.
var ErrGitNotFound = errors.New("git is required but not found in PATH")

// Git clones repositories with the git executable.
type Git struct {
	// Bin overrides the executable name; defaults to "git".
	Bin string
	// Stdout and Stderr receive live git output when set. Output is always
	// captured regardless.
	Stdout io.Writer
	Stderr io.Writer
}

// New returns a Git that captures output silently.
func New() *Git {
	return &Git{}
}

func (g *Git) bin() string {
	if g.Bin != "" {
		return g.Bin
	}
	return "git"
}

// LookPath resolves the git executable.
func (g *Git) LookPath() (string, error) {
	path, err := exec.LookPath(g.bin())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGitNotFound, err)
	}
	return path, nil
}

// Clone runs `git clone -- <source> <dest>` inside dir. Arguments after the
// separator are never read as options, so names starting with "-" are safe. The returned string is
// git's stderr, which is diagnostic only: git writes progress there even on
// success. A non-nil error means git exited non-zero or could not start.
func (g *Git) Clone(ctx context.Context, source, dest, dir string) (string, error) {
	bin, err := g.LookPath()
	if err != nil {
		return "", err
	}

	cmd := exec.CommandContext(ctx, bin, "clone", "--", source, dest)
	cmd.Dir = dir

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = tee(&stdoutBuf, g.Stdout)
	cmd.Stderr = tee(&stderrBuf, g.Stderr)

	err = cmd.Run()
	stderr := strings.TrimSpace(stderrBuf.String())
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return stderr, fmt.Errorf("git clone exited with status %d", exitErr.ExitCode())
		}
		return stderr, fmt.Errorf("running git clone: %w", err)
	}
	return stderr, nil
}

func tee(buf *bytes.Buffer, w io.Writer) io.Writer {
	if w == nil {
		return buf
	}
	return io.MultiWriter(buf, w)
}
