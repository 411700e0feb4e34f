package prompt

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/starterkit-labs/starterkit/internal/scaffold"
)

// HuhPrompter asks the questions with the huh TUI library.
type HuhPrompter struct {
	// Input and Output default to the terminal when nil. When Input reaches
	// EOF before the form is complete, Ask fails with a *PromptError.
	Input  io.Reader
	Output io.Writer
}

// Ask runs the form and returns the answers. Any form failure, including
// the user aborting, is returned as a *PromptError.
func (p HuhPrompter) Ask(ctx context.Context) (scaffold.Request, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	req := scaffold.Request{
		Variant:     VariantForLabel(TemplateLabels[0]),
		InitGit:     DefaultInitGit,
		InstallDeps: DefaultInstallDeps,
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[scaffold.Variant]().
				Title(TemplateQuestion).
				Options(templateOptions()...).
				Value(&req.Variant),
			huh.NewInput().
				Title(NameQuestion).
				Validate(ValidateName).
				Value(&req.ProjectName),
			huh.NewConfirm().
				Title(GitInitQuestion).
				Value(&req.InitGit),
			huh.NewConfirm().
				Title(InstallDepsQuestion).
				Value(&req.InstallDeps),
		),
	)
	if p.Input != nil {
		form = form.WithInput(&cancelOnEOF{r: p.Input, cancel: cancel})
	}
	if p.Output != nil {
		form = form.WithOutput(p.Output)
	}

	if err := form.RunWithContext(ctx); err != nil {
		return scaffold.Request{}, &PromptError{Err: err}
	}
	return req, nil
}

func templateOptions() []huh.Option[scaffold.Variant] {
	opts := make([]huh.Option[scaffold.Variant], len(TemplateLabels))
	for i, label := range TemplateLabels {
		opts[i] = huh.NewOption(label, VariantForLabel(label))
	}
	return opts
}

// cancelOnEOF cancels the form's context once the wrapped reader is exhausted.
type cancelOnEOF struct {
	r      io.Reader
	cancel context.CancelFunc
}

func (c *cancelOnEOF) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if errors.Is(err, io.EOF) {
		c.cancel()
	}
	return n, err
}
