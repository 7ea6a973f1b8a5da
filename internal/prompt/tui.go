package prompt

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	questionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
)

// TUI prompts with an inline bubbletea program.
type TUI struct {
	In  io.Reader
	Out io.Writer
}

// Ask runs the program until every question is answered or the user
// aborts with Ctrl+C or Esc.
func (t *TUI) Ask(ctx context.Context, questions []Question) (Answers, error) {
	m := newModel(questions)
	p := tea.NewProgram(m,
		tea.WithInput(t.In),
		tea.WithOutput(t.Out),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running prompt: %w", err)
	}
	fm, ok := final.(*model)
	if !ok || fm.aborted {
		return nil, ErrAborted
	}
	return fm.answers, nil
}

type model struct {
	questions []Question
	current   int
	input     textinput.Model
	answers   Answers
	errMsg    string
	aborted   bool
}

func newModel(questions []Question) *model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.Width = 60
	ti.Focus()

	m := &model{
		questions: questions,
		input:     ti,
		answers:   make(Answers, len(questions)),
	}
	m.resetInput()
	return m
}

func (m *model) done() bool {
	return m.current >= len(m.questions)
}

func (m *model) resetInput() {
	m.input.Reset()
	m.input.Placeholder = ""
	if !m.done() {
		m.input.Placeholder = m.questions[m.current].Default
	}
}

func (m *model) Init() tea.Cmd {
	if m.done() {
		return tea.Quit
	}
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) submit() (tea.Model, tea.Cmd) {
	if m.done() {
		return m, tea.Quit
	}
	q := m.questions[m.current]
	value, err := resolve(q, strings.TrimSpace(m.input.Value()))
	if err != nil {
		m.errMsg = err.Error()
		m.input.Reset()
		return m, nil
	}

	m.answers[q.Key] = value
	m.errMsg = ""
	m.current++
	m.resetInput()
	if m.done() {
		return m, tea.Quit
	}
	return m, nil
}

func (m *model) View() string {
	var b strings.Builder
	for i := 0; i < m.current && i < len(m.questions); i++ {
		q := m.questions[i]
		b.WriteString(questionStyle.Render(q.Message))
		b.WriteString(" ")
		b.WriteString(answerStyle.Render(m.answers[q.Key]))
		b.WriteString("\n")
	}
	if m.done() || m.aborted {
		return b.String()
	}

	b.WriteString(questionStyle.Render(m.questions[m.current].Message))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(hintStyle.Render("enter to confirm, esc to cancel"))
	b.WriteString("\n")
	return b.String()
}
