package scaffold

import (
	"context"
	"fmt"
	"path/filepath"
)

// Cloner copies a template repository. It returns the tool's diagnostic
// output and a non-nil error only when the copy failed.
type Cloner interface {
	Clone(ctx context.Context, source, dest, dir string) (stderr string, err error)
}

// FetchError reports a failed template clone.
type FetchError struct {
	Source string
	Dest   string
	Stderr string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("cloning %s into %s: %v", e.Source, e.Dest, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Fetch clones source into cwd/dest and returns the absolute project
// directory. A partial clone is left on disk when the clone fails.
func Fetch(ctx context.Context, c Cloner, source, dest, cwd string) (string, error) {
	stderr, err := c.Clone(ctx, source, dest, cwd)
	if err != nil {
		return "", &FetchError{Source: source, Dest: dest, Stderr: stderr, Err: err}
	}

	dir, err := filepath.Abs(filepath.Join(cwd, dest))
	if err != nil {
		return "", fmt.Errorf("resolving project directory: %w", err)
	}
	return dir, nil
}
