// Package prompt asks the user a fixed list of questions and returns the
// answers keyed by question.
//
// Two implementations are provided: Line reads plain lines from any reader
// and suits pipes and tests, TUI draws an interactive input with bubbletea.
// New picks one based on whether input is a terminal.
package prompt
