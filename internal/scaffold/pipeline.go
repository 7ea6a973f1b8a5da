package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ngbolt/bolt-cli/internal/branding"
	"github.com/ngbolt/bolt-cli/internal/console"
	"github.com/ngbolt/bolt-cli/internal/manifest"
	"github.com/ngbolt/bolt-cli/internal/npm"
	"github.com/ngbolt/bolt-cli/internal/prompt"
)

// Process exit codes for fatal pipeline errors.
const (
	ExitFailure     = 1
	ExitUnavailable = 69
)

// ErrPrivileged is returned when the pipeline runs as root.
var ErrPrivileged = errors.New("do not run this installer as the root user (sudo)")

// Stage identifies a pipeline step.
type Stage int

const (
	StageInit Stage = iota
	StageValidate
	StageCollect
	StageFetch
	StageRewrite
	StageInstall
)

var stageNames = [...]string{"init", "validate", "collect", "fetch", "rewrite", "install"}

func (s Stage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// TaskOutcome records how one stage ended.
type TaskOutcome struct {
	Stage  Stage
	OK     bool
	Detail string
}

// Report collects stage outcomes in the order they ran.
type Report struct {
	Project  ProjectSpec
	Dir      string
	Outcomes []TaskOutcome
}

func (r *Report) record(stage Stage, err error) {
	o := TaskOutcome{Stage: stage, OK: err == nil}
	if err != nil {
		o.Detail = err.Error()
	}
	r.Outcomes = append(r.Outcomes, o)
}

// OK reports whether every recorded stage succeeded.
func (r *Report) OK() bool {
	return r.FirstFailure() == nil
}

// FirstFailure returns the earliest failed outcome, or nil.
func (r *Report) FirstFailure() *TaskOutcome {
	for i := range r.Outcomes {
		if !r.Outcomes[i].OK {
			return &r.Outcomes[i]
		}
	}
	return nil
}

// Partial reports whether the project was created but its dependencies
// were not installed.
func (r *Report) Partial() bool {
	f := r.FirstFailure()
	return f != nil && f.Stage == StageInstall
}

// Summary describes the overall result in one line.
func (r *Report) Summary() string {
	switch {
	case r.OK():
		return "success"
	case r.Partial():
		return "partial success: dependency installation failed"
	default:
		f := r.FirstFailure()
		return fmt.Sprintf("failed at %s: %s", f.Stage, f.Detail)
	}
}

// FatalError stops the pipeline. Code is the process exit status the
// command should end with.
type FatalError struct {
	Stage Stage
	Code  int
	Err   error
}

func (e *FatalError) Error() string { return e.Err.Error() }

func (e *FatalError) Unwrap() error { return e.Err }

// Pipeline creates one project. Zero-valued hooks are skipped, which keeps
// tests free of environment checks.
type Pipeline struct {
	// Dir is the directory the project is created in; defaults to the
	// process working directory.
	Dir string
	// TemplateSource is the repository cloned for the project.
	TemplateSource string
	// FrameworkVersion pins FrameworkPackage in the new manifest when set.
	FrameworkVersion string
	FrameworkPackage string

	Prompter       prompt.Prompter
	Cloner         Cloner
	Installer      Installer
	InstallOptions npm.Options

	// IsPrivileged reports whether the process has root privileges.
	IsPrivileged func() bool
	// LookGit returns an error when git is unavailable.
	LookGit func() error

	Console *console.Console
}

// Run executes every stage in order. Fatal failures return the partial
// report together with a *FatalError. A failed dependency install is not
// fatal: Run returns a nil error and the report is Partial.
func (p *Pipeline) Run(ctx context.Context, explicitName string) (*Report, error) {
	con := p.Console
	if con == nil {
		con = console.New(io.Discard, io.Discard)
	}
	report := &Report{}

	fatal := func(stage Stage, code int, err error) (*Report, error) {
		report.record(stage, err)
		return report, &FatalError{Stage: stage, Code: code, Err: err}
	}

	// Init
	if p.IsPrivileged != nil && p.IsPrivileged() {
		return fatal(StageInit, ExitFailure, ErrPrivileged)
	}
	if p.LookGit != nil {
		if err := p.LookGit(); err != nil {
			return fatal(StageInit, ExitUnavailable,
				fmt.Errorf("%w; install git from %s before using this installer", err, branding.GitDownloadURL()))
		}
	}
	cwd := p.Dir
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fatal(StageInit, ExitFailure, fmt.Errorf("getting working directory: %w", err))
		}
		cwd = wd
	}
	report.record(StageInit, nil)

	// Validate
	if explicitName != "" {
		if err := ValidateName(explicitName, cwd); err != nil {
			return fatal(StageValidate, ExitFailure, err)
		}
		report.record(StageValidate, nil)
	}

	// Collect
	spec, err := Collect(ctx, p.Prompter, explicitName, cwd)
	if err != nil {
		return fatal(StageCollect, ExitFailure, err)
	}
	spec = spec.WithTemplate(p.TemplateSource, p.FrameworkVersion)
	report.Project = spec
	report.record(StageCollect, nil)

	// Fetch
	con.Info("Downloading %s...", templateLabel(spec.TemplateSource))
	dir, err := Fetch(ctx, p.Cloner, spec.TemplateSource, spec.Name, cwd)
	if err != nil {
		var fe *FetchError
		if errors.As(err, &fe) {
			con.Detail(fe.Stderr)
		}
		return fatal(StageFetch, ExitFailure, err)
	}
	report.Dir = dir
	report.record(StageFetch, nil)
	con.Info("Clone successful! Setting up project...")

	// Rewrite
	if _, err := manifest.Rewrite(dir, spec.ManifestInput(p.FrameworkPackage)); err != nil {
		return fatal(StageRewrite, ExitFailure,
			fmt.Errorf("%w (the cloned project was left in %s)", err, dir))
	}
	report.record(StageRewrite, nil)

	// Install
	con.Success("Installing dependencies...")
	if err := Install(ctx, p.Installer, dir, p.InstallOptions); err != nil {
		con.Error("Failed to install node dependencies: %v", err)
		var npmErr *npm.Error
		if errors.As(err, &npmErr) {
			con.Detail(npmErr.Stderr)
		}
		report.record(StageInstall, err)
	} else {
		report.record(StageInstall, nil)
	}
	return report, nil
}

// templateLabel shortens a repository URL to its name for progress output.
func templateLabel(source string) string {
	s := strings.TrimSuffix(strings.TrimRight(source, "/"), ".git")
	if i := strings.LastIndexAny(s, "/:"); i >= 0 && i < len(s)-1 {
		return s[i+1:]
	}
	return s
}
