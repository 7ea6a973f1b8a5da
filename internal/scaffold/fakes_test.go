package scaffold

import (
	"context"
	"os"
	"path/filepath"

	"github.com/ngbolt/bolt-cli/internal/npm"
	"github.com/ngbolt/bolt-cli/internal/prompt"
)

// fakePrompter answers from a fixed map, applying defaults the way a real
// prompter does.
type fakePrompter struct {
	answers   prompt.Answers
	err       error
	questions []prompt.Question
}

func (f *fakePrompter) Ask(_ context.Context, qs []prompt.Question) (prompt.Answers, error) {
	f.questions = qs
	if f.err != nil {
		return nil, f.err
	}
	out := make(prompt.Answers, len(qs))
	for _, q := range qs {
		v := f.answers[q.Key]
		if v == "" {
			v = q.Default
		}
		out[q.Key] = v
	}
	return out, nil
}

func (f *fakePrompter) keys() []string {
	var keys []string
	for _, q := range f.questions {
		keys = append(keys, q.Key)
	}
	return keys
}

// fakeCloner lays out a template checkout in dir/dest.
type fakeCloner struct {
	manifest string
	stderr   string
	err      error
	calls    int
}

func (f *fakeCloner) Clone(_ context.Context, source, dest, dir string) (string, error) {
	f.calls++
	target := filepath.Join(dir, dest)
	if err := os.MkdirAll(filepath.Join(target, ".git"), 0755); err != nil {
		return "", err
	}
	if f.err != nil {
		return f.stderr, f.err
	}
	if f.manifest != "" {
		if err := os.WriteFile(filepath.Join(target, "package.json"), []byte(f.manifest), 0644); err != nil {
			return "", err
		}
	}
	if err := os.WriteFile(filepath.Join(target, "index.html"), []byte("<html></html>"), 0644); err != nil {
		return "", err
	}
	return f.stderr, nil
}

type fakeInstaller struct {
	err   error
	dir   string
	opts  npm.Options
	calls int
}

func (f *fakeInstaller) Install(_ context.Context, dir string, opts npm.Options) error {
	f.calls++
	f.dir = dir
	f.opts = opts
	return f.err
}
