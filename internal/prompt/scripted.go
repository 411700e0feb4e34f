package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/starterkit-labs/starterkit/internal/scaffold"
)

// Answers are raw responses to the four questions, as a user would give them.
type Answers struct {
	Template    string
	Names       []string // successive name entries; blanks are re-prompted
	InitGit     *bool
	InstallDeps *bool
}

// Scripted is a Prompter that replays fixed answers through the same
// validation the interactive form applies. Rejections are written to Output.
type Scripted struct {
	Answers Answers
	Output  io.Writer
	Err     error
}

// Ask returns the scripted answers as a Request.
func (s Scripted) Ask(_ context.Context) (scaffold.Request, error) {
	if s.Err != nil {
		return scaffold.Request{}, &PromptError{Err: s.Err}
	}

	name, ok := "", false
	for _, candidate := range s.Answers.Names {
		if err := ValidateName(candidate); err != nil {
			if s.Output != nil {
				fmt.Fprintf(s.Output, "%s %v\n", NameQuestion, err)
			}
			continue
		}
		name, ok = candidate, true
		break
	}
	if !ok {
		return scaffold.Request{}, &PromptError{Err: errors.New("input closed before a project name was given")}
	}

	req := scaffold.Request{
		ProjectName: name,
		Variant:     VariantForLabel(s.Answers.Template),
		InitGit:     DefaultInitGit,
		InstallDeps: DefaultInstallDeps,
	}
	if s.Answers.InitGit != nil {
		req.InitGit = *s.Answers.InitGit
	}
	if s.Answers.InstallDeps != nil {
		req.InstallDeps = *s.Answers.InstallDeps
	}
	return req, nil
}
