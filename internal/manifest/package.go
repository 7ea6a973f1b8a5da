package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the manifest file at the root of every project.
const FileName = "package.json"

// VCSDir is the version-control metadata directory removed from new projects.
const VCSDir = ".git"

// Template holds the fields of a template manifest that carry over into a
// new project. Fields this package does not copy are never decoded, so
// unusual shapes elsewhere in the document do not cause parse failures.
type Template struct {
	Name            string          `json:"name"`
	Version         string          `json:"version"`
	License         json.RawMessage `json:"license,omitempty"`
	PublishConfig   json.RawMessage `json:"publishConfig,omitempty"`
	Dependencies    *Dependencies   `json:"dependencies,omitempty"`
	DevDependencies *Dependencies   `json:"devDependencies,omitempty"`
}

// Author is the structured author field.
type Author struct {
	Name string `json:"name"`
}

// Package is the manifest written for a new project. Field order is the
// order keys appear in the file.
type Package struct {
	Name            string          `json:"name"`
	Version         string          `json:"version"`
	Description     string          `json:"description,omitempty"`
	Title           string          `json:"title,omitempty"`
	Author          *Author         `json:"author,omitempty"`
	Contributors    []string        `json:"contributors,omitempty"`
	License         json.RawMessage `json:"license,omitempty"`
	PublishConfig   json.RawMessage `json:"publishConfig,omitempty"`
	Dependencies    *Dependencies   `json:"dependencies,omitempty"`
	DevDependencies *Dependencies   `json:"devDependencies,omitempty"`
}

// Input is the project information merged into the template manifest.
// Empty strings and a nil Contributors slice mean "not provided".
type Input struct {
	Name         string
	Version      string
	Title        string
	Description  string
	Organization string
	Contributors []string

	// FrameworkPackage is the dependency pinned by FrameworkVersion.
	FrameworkPackage string
	// FrameworkVersion, when set, replaces the framework dependency's version.
	FrameworkVersion string
}

// Error reports a manifest that could not be read, validated or written.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Read parses the template manifest at path.
func Read(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Op: "reading", Path: path, Err: err}
	}
	var tpl Template
	if err := json.Unmarshal(data, &tpl); err != nil {
		return nil, &Error{Op: "parsing", Path: path, Err: err}
	}
	return &tpl, nil
}

// Build derives a new manifest from the template and the collected input.
// The template is not modified.
func Build(tpl *Template, in Input) *Package {
	pkg := &Package{
		Name:         in.Name,
		Version:      in.Version,
		Description:  in.Description,
		Title:        in.Title,
		Contributors: in.Contributors,
	}
	if in.Organization != "" {
		pkg.Author = &Author{Name: in.Organization}
	}

	if tpl != nil {
		pkg.License = tpl.License
		pkg.PublishConfig = tpl.PublishConfig
		pkg.Dependencies = tpl.Dependencies.Clone()
		pkg.DevDependencies = tpl.DevDependencies.Clone()
	}

	if in.FrameworkVersion != "" && in.FrameworkPackage != "" {
		if pkg.Dependencies == nil {
			pkg.Dependencies = NewDependencies()
		}
		pkg.Dependencies.Set(in.FrameworkPackage, in.FrameworkVersion)
	}
	return pkg
}

// Marshal encodes pkg with 4-space indentation and a trailing newline.
func Marshal(pkg *Package) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(pkg); err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	return buf.Bytes(), nil
}

// Rewrite replaces the manifest in a freshly cloned project directory.
//
// Version-control metadata is removed first so a failed rewrite never leaves
// the template's history behind. The new manifest is validated before the old
// file is deleted; on any error the directory is left as it is.
func Rewrite(dir string, in Input) (*Package, error) {
	if err := os.RemoveAll(filepath.Join(dir, VCSDir)); err != nil {
		return nil, &Error{Op: "removing", Path: filepath.Join(dir, VCSDir), Err: err}
	}

	path := filepath.Join(dir, FileName)
	tpl, err := Read(path)
	if err != nil {
		return nil, err
	}

	pkg := Build(tpl, in)
	data, err := Marshal(pkg)
	if err != nil {
		return nil, &Error{Op: "encoding", Path: path, Err: err}
	}

	result, err := Validate(data)
	if err != nil {
		return nil, &Error{Op: "validating", Path: path, Err: err}
	}
	if !result.Valid {
		return nil, &Error{Op: "validating", Path: path, Err: result}
	}

	if err := os.Remove(path); err != nil {
		return nil, &Error{Op: "removing", Path: path, Err: err}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, &Error{Op: "writing", Path: path, Err: err}
	}
	return pkg, nil
}

// FrameworkVersion reports the version of the framework package visible from
// dir: the project's own manifest when dir is the framework itself, otherwise
// the copy installed under node_modules.
func FrameworkVersion(dir, framework string) (string, bool) {
	if tpl, err := Read(filepath.Join(dir, FileName)); err == nil && tpl.Name == framework {
		return tpl.Version, true
	}
	installed := filepath.Join(dir, "node_modules", framework, FileName)
	if tpl, err := Read(installed); err == nil && tpl.Name == framework {
		return tpl.Version, true
	}
	return "", false
}

// DependsOn reports whether the manifest in dir lists pkg as a dependency.
func DependsOn(dir, pkg string) (bool, error) {
	tpl, err := Read(filepath.Join(dir, FileName))
	if err != nil {
		return false, err
	}
	_, ok := tpl.Dependencies.Get(pkg)
	return ok, nil
}
