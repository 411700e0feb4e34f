package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/starterkit-labs/starterkit/internal/branding"
	"github.com/starterkit-labs/starterkit/internal/config"
	"github.com/starterkit-labs/starterkit/internal/prompt"
	"github.com/starterkit-labs/starterkit/internal/runner"
	"github.com/starterkit-labs/starterkit/internal/scaffold"
	"github.com/starterkit-labs/starterkit/internal/ui"
	"github.com/starterkit-labs/starterkit/internal/updater"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` asks for a template, a project name, and whether to initialize git
and install dependencies, then creates a blank Node.js project in the current directory.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		settings := config.Current()

		console := ui.NewConsole(cmd.OutOrStdout(), cmd.ErrOrStderr())
		w := &workflow{
			console:  console,
			prompter: prompt.HuhPrompter{},
			scaffolder: scaffold.New(&runner.ExecRunner{}, console,
				scaffold.WithPackageManager(settings.PackageManager),
				scaffold.WithGit(settings.Git),
			),
			banner: settings.Banner,
		}
		if settings.CheckUpdates {
			w.notifier = updater.New(buildVersion, updater.WithRegistryURL(settings.Registry))
		}
		return w.run(cmd.Context())
	},
}

// workflow is the root command's sequence: banner, update notice, prompt,
// scaffold. Only a prompt failure is returned; scaffold failures are
// printed and the run still succeeds.
type workflow struct {
	console    *ui.Console
	notifier   *updater.Notifier
	prompter   prompt.Prompter
	scaffolder *scaffold.Scaffolder
	banner     bool
}

func (w *workflow) run(ctx context.Context) error {
	if w.banner {
		w.console.Banner(branding.DisplayName())
	}
	if w.notifier != nil {
		w.notifier.CheckAndPrint(ctx, w.console)
	}

	req, err := w.prompter.Ask(ctx)
	if err != nil {
		w.console.Error("Error during project setup:", err)
		return &reportedError{err: err}
	}

	_, _ = w.scaffolder.Run(ctx, req)
	return nil
}

// reportedError marks an error that has already been printed.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.ExecuteContext(context.Background())
	var reported *reportedError
	if err != nil && !errors.As(err, &reported) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
