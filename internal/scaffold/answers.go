package scaffold

import (
	"context"
	"fmt"
	"strings"

	"github.com/ngbolt/bolt-cli/internal/prompt"
)

// Answer keys.
const (
	KeyName         = "name"
	KeyTitle        = "title"
	KeyVersion      = "version"
	KeyDescription  = "description"
	KeyCompany      = "company"
	KeyContributors = "contributors"
)

// Questions returns the project questions in the order they are asked. The
// name question is included only when explicitName is empty and validates
// against cwd at answer time.
func Questions(explicitName, cwd string) []prompt.Question {
	var qs []prompt.Question
	if explicitName == "" {
		qs = append(qs, prompt.Question{
			Key:      KeyName,
			Message:  "What is the name of the project? This will become the project directory (no spaces)",
			Validate: func(s string) error { return ValidateName(s, cwd) },
		})
	}
	return append(qs,
		prompt.Question{
			Key:     KeyTitle,
			Message: "What is the title of the project? This will be the title displayed in your application. (optional)",
		},
		prompt.Question{
			Key:      KeyVersion,
			Message:  "What is the project version? (semver)",
			Default:  DefaultVersion,
			Validate: ValidateVersion,
		},
		prompt.Question{
			Key:     KeyDescription,
			Message: "What is the project's description? (optional)",
		},
		prompt.Question{
			Key:     KeyCompany,
			Message: "Name of the company. (optional)",
		},
		prompt.Question{
			Key:     KeyContributors,
			Message: "List project contributors. (separate with commas, optional)",
		},
	)
}

// Collect asks the project questions and returns the answers as a ProjectSpec.
// When explicitName is set it is used as the project name without asking.
func Collect(ctx context.Context, p prompt.Prompter, explicitName, cwd string) (ProjectSpec, error) {
	answers, err := p.Ask(ctx, Questions(explicitName, cwd))
	if err != nil {
		return ProjectSpec{}, fmt.Errorf("collecting project details: %w", err)
	}

	get := func(key string) string { return strings.TrimSpace(answers[key]) }

	spec := ProjectSpec{
		Name:         explicitName,
		Title:        get(KeyTitle),
		Version:      get(KeyVersion),
		Description:  get(KeyDescription),
		Organization: get(KeyCompany),
		Contributors: ParseContributors(answers[KeyContributors]),
	}
	if spec.Name == "" {
		spec.Name = get(KeyName)
		if err := ValidateName(spec.Name, cwd); err != nil {
			return ProjectSpec{}, err
		}
	}
	if spec.Version == "" {
		spec.Version = DefaultVersion
	}
	if err := ValidateVersion(spec.Version); err != nil {
		return ProjectSpec{}, err
	}
	return spec, nil
}
