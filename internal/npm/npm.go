package npm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// ErrNpmNotFound is returned when npm is not on PATH.
var ErrNpmNotFound = errors.New("npm is required but not found in PATH")

// Options tunes an install run.
type Options struct {
	// CacheMin is how long cached package metadata is considered fresh.
	// Zero leaves npm's default in place.
	CacheMin time.Duration
	// LogLevel is passed as --loglevel (e.g. "error"). Empty leaves npm's default.
	LogLevel string
}

// Args returns the npm install flags for these options.
func (o Options) Args() []string {
	var args []string
	if o.CacheMin > 0 {
		args = append(args, "--cache-min="+strconv.FormatInt(int64(o.CacheMin/time.Second), 10))
	}
	if o.LogLevel != "" {
		args = append(args, "--loglevel="+o.LogLevel)
	}
	return args
}

// Error reports a failed npm invocation with its captured stderr.
type Error struct {
	Command  string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("npm %s failed", e.Command)
	if e.ExitCode != 0 {
		msg += fmt.Sprintf(" (exit status %d)", e.ExitCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Client runs npm commands.
type Client struct {
	// Bin overrides the executable name; defaults to "npm".
	Bin string
	// Stdout and Stderr receive live output when set.
	Stdout io.Writer
	Stderr io.Writer
}

// New returns a Client that captures output silently.
func New() *Client {
	return &Client{}
}

func (c *Client) bin() string {
	if c.Bin != "" {
		return c.Bin
	}
	return "npm"
}

// LookPath resolves the npm executable.
func (c *Client) LookPath() (string, error) {
	path, err := exec.LookPath(c.bin())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNpmNotFound, err)
	}
	return path, nil
}

// Install runs `npm install` in dir.
func (c *Client) Install(ctx context.Context, dir string, opts Options) error {
	args := append([]string{"install"}, opts.Args()...)
	return c.run(ctx, dir, "install", args...)
}

// Update runs `npm update <pkg>` in dir.
func (c *Client) Update(ctx context.Context, dir, pkg string) error {
	return c.run(ctx, dir, "update", "update", pkg)
}

func (c *Client) run(ctx context.Context, dir, name string, args ...string) error {
	bin, err := c.LookPath()
	if err != nil {
		return &Error{Command: name, Err: err}
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir

	var stderrBuf bytes.Buffer
	if c.Stdout != nil {
		cmd.Stdout = c.Stdout
	}
	cmd.Stderr = &stderrBuf
	if c.Stderr != nil {
		cmd.Stderr = io.MultiWriter(c.Stderr, &stderrBuf)
	}

	if err := cmd.Run(); err != nil {
		npmErr := &Error{Command: name, Stderr: strings.TrimSpace(stderrBuf.String())}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			npmErr.ExitCode = exitErr.ExitCode()
		} else {
			npmErr.Err = err
		}
		return npmErr
	}
	return nil
}
