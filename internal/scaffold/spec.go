package scaffold

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/ngbolt/bolt-cli/internal/manifest"
)

// DefaultVersion is the version offered for a new project.
const DefaultVersion = "0.1.0"

// ErrInvalidVersion is returned for versions that are not strict semver.
var ErrInvalidVersion = errors.New("not a valid version number, use semver format (e.g. 1.2.3)")

// ProjectSpec describes the project being created. Empty strings and a nil
// Contributors slice mean the value was not provided.
type ProjectSpec struct {
	Name         string
	Title        string
	Version      string
	Description  string
	Organization string
	Contributors []string

	// TemplateSource is the git URL or path cloned for the project.
	TemplateSource string
	// FrameworkVersionOverride pins the framework dependency when set.
	FrameworkVersionOverride string
}

// WithTemplate returns a copy of s that clones source and pins the framework
// to override (if non-empty).
func (s ProjectSpec) WithTemplate(source, override string) ProjectSpec {
	s.TemplateSource = source
	s.FrameworkVersionOverride = override
	return s
}

// ManifestInput converts s into the values merged into the template manifest.
func (s ProjectSpec) ManifestInput(frameworkPackage string) manifest.Input {
	return manifest.Input{
		Name:             s.Name,
		Version:          s.Version,
		Title:            s.Title,
		Description:      s.Description,
		Organization:     s.Organization,
		Contributors:     s.Contributors,
		FrameworkPackage: frameworkPackage,
		FrameworkVersion: s.FrameworkVersionOverride,
	}
}

// ValidateVersion reports whether v is a full MAJOR.MINOR.PATCH semantic
// version. Shorthand such as "1.0" or a leading "v" is rejected.
func ValidateVersion(v string) error {
	if _, err := semver.StrictNewVersion(v); err != nil {
		return fmt.Errorf("%q: %w", v, ErrInvalidVersion)
	}
	return nil
}

// ParseContributors splits a comma-separated list into trimmed names,
// dropping empty entries. It returns nil when no names remain.
func ParseContributors(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
