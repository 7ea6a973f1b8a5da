package prompt

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ErrAborted is returned when the user cancels the prompt.
var ErrAborted = errors.New("prompt aborted")

// Question is a single prompt. An empty answer takes Default. Validate, when
// set, is called with the final answer and a non-nil error asks again.
type Question struct {
	Key      string
	Message  string
	Default  string
	Validate func(string) error
}

// Answers maps question keys to the trimmed answers.
type Answers map[string]string

// Prompter asks questions in order.
type Prompter interface {
	Ask(ctx context.Context, questions []Question) (Answers, error)
}

// New returns a TUI prompter when in is a terminal and a Line prompter
// otherwise.
func New(in *os.File, out io.Writer) Prompter {
	if isatty.IsTerminal(in.Fd()) || isatty.IsCygwinTerminal(in.Fd()) {
		return &TUI{In: in, Out: out}
	}
	return NewLine(in, out)
}

func resolve(q Question, raw string) (string, error) {
	if raw == "" {
		raw = q.Default
	}
	if q.Validate != nil {
		if err := q.Validate(raw); err != nil {
			return "", err
		}
	}
	return raw, nil
}
