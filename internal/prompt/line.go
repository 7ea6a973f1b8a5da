package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Line prompts on a plain line-oriented stream.
type Line struct {
	r *bufio.Reader
	w io.Writer
}

// NewLine returns a Line prompter reading from r and writing prompts to w.
func NewLine(r io.Reader, w io.Writer) *Line {
	return &Line{r: bufio.NewReader(r), w: w}
}

// Ask prints each question and reads one line per answer. Invalid answers
// print the reason and ask again. End of input before all questions are
// answered is an error.
func (l *Line) Ask(ctx context.Context, questions []Question) (Answers, error) {
	answers := make(Answers, len(questions))
	for _, q := range questions {
		for {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			if q.Default != "" {
				fmt.Fprintf(l.w, "%s (%s): ", q.Message, q.Default)
			} else {
				fmt.Fprintf(l.w, "%s: ", q.Message)
			}

			line, err := l.r.ReadString('\n')
			if err != nil && !(errors.Is(err, io.EOF) && line != "") {
				return nil, fmt.Errorf("reading %s: %w", q.Key, err)
			}

			value, verr := resolve(q, strings.TrimSpace(line))
			if verr != nil {
				fmt.Fprintf(l.w, "  %v\n", verr)
				if err != nil {
					return nil, fmt.Errorf("reading %s: %w", q.Key, verr)
				}
				continue
			}
			answers[q.Key] = value
			break
		}
	}
	return answers, nil
}
