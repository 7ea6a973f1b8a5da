package scaffold

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ngbolt/bolt-cli/internal/console"
	"github.com/ngbolt/bolt-cli/internal/npm"
	"github.com/ngbolt/bolt-cli/internal/prompt"
)

const demoTemplate = `{"name":"ng-bolt-template","version":"9.9.9","license":"MIT","dependencies":{"framework":"1.0.0"}}`

type harness struct {
	cwd       string
	prompter  *fakePrompter
	cloner    *fakeCloner
	installer *fakeInstaller
	out, errb bytes.Buffer
	pipeline  *Pipeline
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		cwd:       t.TempDir(),
		prompter:  &fakePrompter{answers: prompt.Answers{KeyVersion: "0.1.0"}},
		cloner:    &fakeCloner{manifest: demoTemplate},
		installer: &fakeInstaller{},
	}
	h.pipeline = &Pipeline{
		Dir:              h.cwd,
		TemplateSource:   "https://github.com/ngbolt/ng-bolt-template.git",
		FrameworkPackage: "framework",
		Prompter:         h.prompter,
		Cloner:           h.cloner,
		Installer:        h.installer,
		InstallOptions:   npm.Options{CacheMin: 999999999 * time.Second, LogLevel: "error"},
		Console:          console.New(&h.out, &h.errb),
	}
	return h
}

func (h *harness) manifestPath(name string) string {
	return filepath.Join(h.cwd, name, "package.json")
}

func fatalCode(t *testing.T, err error) (Stage, int) {
	t.Helper()
	var fe *FatalError
	if !errors.As(err, &fe) {
		t.Fatalf("error = %v, want *FatalError", err)
	}
	return fe.Stage, fe.Code
}

func TestRunEndToEnd(t *testing.T) {
	h := newHarness(t)

	report, err := h.pipeline.Run(context.Background(), "demo")
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !report.OK() || report.Summary() != "success" {
		t.Errorf("report = %s, outcomes %+v", report.Summary(), report.Outcomes)
	}
	if want := filepath.Join(h.cwd, "demo"); report.Dir != want {
		t.Errorf("Dir = %q, want %q", report.Dir, want)
	}

	data, err := os.ReadFile(h.manifestPath("demo"))
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"name":         "demo",
		"version":      "0.1.0",
		"license":      "MIT",
		"dependencies": map[string]any{"framework": "1.0.0"},
	}
	gotJSON, _ := json.Marshal(got)
	wantJSON, _ := json.Marshal(want)
	if string(gotJSON) != string(wantJSON) {
		t.Errorf("manifest = %s, want %s", gotJSON, wantJSON)
	}

	if _, err := os.Stat(filepath.Join(h.cwd, "demo", ".git")); !errors.Is(err, fs.ErrNotExist) {
		t.Error(".git should be removed")
	}
	if h.installer.dir != report.Dir {
		t.Errorf("install dir = %q, want %q", h.installer.dir, report.Dir)
	}
	if h.installer.opts.CacheMin != 999999999*time.Second || h.installer.opts.LogLevel != "error" {
		t.Errorf("install options = %+v", h.installer.opts)
	}

	stages := make([]Stage, len(report.Outcomes))
	for i, o := range report.Outcomes {
		stages[i] = o.Stage
	}
	wantStages := []Stage{StageInit, StageValidate, StageCollect, StageFetch, StageRewrite, StageInstall}
	if len(stages) != len(wantStages) {
		t.Fatalf("stages = %v, want %v", stages, wantStages)
	}
	for i := range stages {
		if stages[i] != wantStages[i] {
			t.Errorf("stage %d = %v, want %v", i, stages[i], wantStages[i])
		}
	}
}

func TestRunPromptedName(t *testing.T) {
	h := newHarness(t)
	h.prompter.answers[KeyName] = "prompted"

	report, err := h.pipeline.Run(context.Background(), "")
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if report.Project.Name != "prompted" {
		t.Errorf("Name = %q, want prompted", report.Project.Name)
	}
	if report.Outcomes[1].Stage != StageCollect {
		t.Errorf("validate stage should be skipped without an explicit name: %+v", report.Outcomes)
	}
	if _, err := os.Stat(h.manifestPath("prompted")); err != nil {
		t.Errorf("manifest not written: %v", err)
	}
}

func TestRunFrameworkOverride(t *testing.T) {
	h := newHarness(t)
	h.pipeline.FrameworkVersion = "3.0.0"

	if _, err := h.pipeline.Run(context.Background(), "demo"); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(h.manifestPath("demo"))
	if !strings.Contains(string(data), `"framework": "3.0.0"`) {
		t.Errorf("override not applied:\n%s", data)
	}
}

func TestRunInstallFailureIsPartial(t *testing.T) {
	h := newHarness(t)
	h.installer.err = &npm.Error{Command: "install", ExitCode: 1, Stderr: "ERR! network"}

	report, err := h.pipeline.Run(context.Background(), "demo")
	if err != nil {
		t.Fatalf("Run() error = %v, want nil for install failure", err)
	}
	if report.OK() || !report.Partial() {
		t.Errorf("report OK=%v Partial=%v", report.OK(), report.Partial())
	}
	if got := report.Summary(); got != "partial success: dependency installation failed" {
		t.Errorf("Summary() = %q", got)
	}
	if _, err := os.Stat(h.manifestPath("demo")); err != nil {
		t.Errorf("manifest should exist after install failure: %v", err)
	}
	if !strings.Contains(h.errb.String(), "ERR! network") {
		t.Errorf("npm stderr not shown:\n%s", h.errb.String())
	}
}

func TestRunPrivileged(t *testing.T) {
	h := newHarness(t)
	h.pipeline.IsPrivileged = func() bool { return true }

	report, err := h.pipeline.Run(context.Background(), "demo")
	stage, code := fatalCode(t, err)
	if stage != StageInit || code != ExitFailure {
		t.Errorf("stage=%v code=%d", stage, code)
	}
	if !errors.Is(err, ErrPrivileged) {
		t.Errorf("error = %v, want ErrPrivileged", err)
	}
	if h.cloner.calls != 0 || h.prompter.questions != nil {
		t.Error("no stage should run after a failed precondition")
	}
	if report.OK() {
		t.Error("report should not be OK")
	}
}

func TestRunGitMissing(t *testing.T) {
	h := newHarness(t)
	notFound := errors.New("git not found")
	h.pipeline.LookGit = func() error { return notFound }

	_, err := h.pipeline.Run(context.Background(), "demo")
	if _, code := fatalCode(t, err); code != ExitUnavailable {
		t.Errorf("code = %d, want %d", code, ExitUnavailable)
	}
	if !errors.Is(err, notFound) {
		t.Errorf("error = %v, want wrapped lookup error", err)
	}
}

func TestRunInvalidExplicitName(t *testing.T) {
	h := newHarness(t)
	os.Mkdir(filepath.Join(h.cwd, "demo"), 0755)

	_, err := h.pipeline.Run(context.Background(), "demo")
	stage, code := fatalCode(t, err)
	if stage != StageValidate || code != ExitFailure {
		t.Errorf("stage=%v code=%d", stage, code)
	}
	if !errors.Is(err, ErrNameCollision) {
		t.Errorf("error = %v, want ErrNameCollision", err)
	}
	if h.prompter.questions != nil {
		t.Error("prompt should not run for an invalid explicit name")
	}

	_, err = newHarness(t).pipeline.Run(context.Background(), "my demo")
	if !errors.Is(err, ErrInvalidCharacters) {
		t.Errorf("error = %v, want ErrInvalidCharacters", err)
	}
}

func TestRunPromptAborted(t *testing.T) {
	h := newHarness(t)
	h.prompter.err = prompt.ErrAborted

	_, err := h.pipeline.Run(context.Background(), "demo")
	if stage, _ := fatalCode(t, err); stage != StageCollect {
		t.Errorf("stage = %v, want collect", stage)
	}
	if h.cloner.calls != 0 {
		t.Error("clone should not run after prompt failure")
	}
}

func TestRunCloneFailureAborts(t *testing.T) {
	h := newHarness(t)
	h.cloner.err = errors.New("git clone exited with status 128")
	h.cloner.stderr = "fatal: repository not found"

	report, err := h.pipeline.Run(context.Background(), "demo")
	stage, code := fatalCode(t, err)
	if stage != StageFetch || code != ExitFailure {
		t.Errorf("stage=%v code=%d", stage, code)
	}
	var fe *FetchError
	if !errors.As(err, &fe) || fe.Stderr != "fatal: repository not found" {
		t.Errorf("error = %v, want *FetchError with stderr", err)
	}
	if _, err := os.Stat(h.manifestPath("demo")); !errors.Is(err, fs.ErrNotExist) {
		t.Error("no manifest should be written after a failed clone")
	}
	if h.installer.calls != 0 {
		t.Error("install should not run after a failed clone")
	}
	if !strings.Contains(h.errb.String(), "repository not found") {
		t.Errorf("clone stderr not shown:\n%s", h.errb.String())
	}
	if report.FirstFailure().Stage != StageFetch {
		t.Errorf("FirstFailure = %+v", report.FirstFailure())
	}
}

func TestRunCloneStderrWithoutErrorSucceeds(t *testing.T) {
	h := newHarness(t)
	h.cloner.stderr = "Cloning into 'demo'..."

	report, err := h.pipeline.Run(context.Background(), "demo")
	if err != nil || !report.OK() {
		t.Errorf("Run() = %v, %v; progress output on stderr is not a failure", report.Summary(), err)
	}
}

func TestRunMissingTemplateManifest(t *testing.T) {
	h := newHarness(t)
	h.cloner.manifest = ""

	_, err := h.pipeline.Run(context.Background(), "demo")
	stage, code := fatalCode(t, err)
	if stage != StageRewrite || code != ExitFailure {
		t.Errorf("stage=%v code=%d", stage, code)
	}
	if !strings.Contains(err.Error(), filepath.Join(h.cwd, "demo")) {
		t.Errorf("error should name the project directory: %v", err)
	}
	if _, err := os.Stat(filepath.Join(h.cwd, "demo", "index.html")); err != nil {
		t.Error("cloned directory should be left in place")
	}
	if h.installer.calls != 0 {
		t.Error("install should not run after a manifest failure")
	}
}

func TestTemplateLabel(t *testing.T) {
	tests := map[string]string{
		"https://github.com/ngbolt/ng-bolt-template.git": "ng-bolt-template",
		"git@github.com:acme/starter.git":                "starter",
		"/tmp/local-template/":                           "local-template",
		"plain":                                          "plain",
	}
	for in, want := range tests {
		if got := templateLabel(in); got != want {
			t.Errorf("templateLabel(%q) = %q, want %q", in, got, want)
		}
	}
}
