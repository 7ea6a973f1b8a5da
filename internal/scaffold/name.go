package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

var (
	// ErrEmptyName is returned when no project name was given.
	ErrEmptyName = errors.New("project name is required")
	// ErrInvalidCharacters is returned for names containing whitespace.
	ErrInvalidCharacters = errors.New("project name should not contain any spaces")
	// ErrNameCollision is returned when the project directory already exists.
	ErrNameCollision = errors.New("there is already a folder with that name in this directory")
)

// ValidateName checks that candidate can be used as a new project directory
// under cwd. The filesystem is consulted on every call.
func ValidateName(candidate, cwd string) error {
	if candidate == "" {
		return ErrEmptyName
	}
	if strings.IndexFunc(candidate, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%q: %w", candidate, ErrInvalidCharacters)
	}
	if _, err := os.Lstat(filepath.Join(cwd, candidate)); err == nil {
		return fmt.Errorf("%q: %w", candidate, ErrNameCollision)
	}
	return nil
}
