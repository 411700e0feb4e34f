package prompt

import (
	"context"
	"strings"

	"github.com/starterkit-labs/starterkit/internal/scaffold"
)

// Question titles, in the order they are asked.
const (
	TemplateQuestion    = "Which template do you want?"
	NameQuestion        = "What is the project name?"
	GitInitQuestion     = "Do you want to initialize a Git repository?"
	InstallDepsQuestion = "Do you want to install additional dependencies?"
)

// Template labels shown in the select, in display order.
var TemplateLabels = []string{
	"Blank (JavaScript)",
	"Blank (TypeScript)",
	"Blank (JS)",
	"Blank (TS)",
}

// Defaults for the two confirm questions.
const (
	DefaultInitGit     = true
	DefaultInstallDeps = false
)

// EmptyNameMessage is shown under the name input when it is left blank.
const EmptyNameMessage = "Project name cannot be empty."

// ErrEmptyName is returned by ValidateName. Its text is EmptyNameMessage so
// the form can display it as-is.
var ErrEmptyName error = inputMessage(EmptyNameMessage)

// inputMessage is a validation error whose text is meant for the user.
type inputMessage string

func (m inputMessage) Error() string { return string(m) }

// Prompter collects the answers for one scaffold run.
type Prompter interface {
	Ask(ctx context.Context) (scaffold.Request, error)
}

// PromptError wraps a failure of the interactive input stage.
type PromptError struct {
	Err error
}

func (e *PromptError) Error() string { return "prompt failed: " + e.Err.Error() }

func (e *PromptError) Unwrap() error { return e.Err }

// VariantForLabel maps a template label to its variant. A label containing
// "TypeScript" or equal to "Blank (TS)" is TypeScript; any other label is
// JavaScript.
func VariantForLabel(label string) scaffold.Variant {
	if strings.Contains(label, "TypeScript") || label == "Blank (TS)" {
		return scaffold.VariantTypeScript
	}
	return scaffold.VariantJavaScript
}

// ValidateName rejects an empty or whitespace-only project name.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}
