package scaffold

import (
	"context"
	"fmt"

	"github.com/ngbolt/bolt-cli/internal/npm"
)

// Installer installs a project's npm dependencies.
type Installer interface {
	Install(ctx context.Context, dir string, opts npm.Options) error
}

// InstallError reports a failed dependency install. The project itself is
// usable; the user can rerun the install by hand.
type InstallError struct {
	Dir string
	Err error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("installing dependencies in %s: %v", e.Dir, e.Err)
}

func (e *InstallError) Unwrap() error { return e.Err }

// Install runs the installer in dir.
func Install(ctx context.Context, inst Installer, dir string, opts npm.Options) error {
	if err := inst.Install(ctx, dir, opts); err != nil {
		return &InstallError{Dir: dir, Err: err}
	}
	return nil
}
