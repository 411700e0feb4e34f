package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/starterkit-labs/starterkit/internal/manifest"
	"github.com/starterkit-labs/starterkit/internal/runner"
	"github.com/starterkit-labs/starterkit/internal/ui"
)

// Scaffolder creates projects. Build one with New.
type Scaffolder struct {
	runner         runner.Runner
	console        *ui.Console
	status         ui.Status
	workDir        string
	packageManager string
	git            string
}

// Option configures a Scaffolder.
type Option func(*Scaffolder)

// WithWorkDir sets the directory project names are resolved against.
// Defaults to the process working directory.
func WithWorkDir(dir string) Option {
	return func(s *Scaffolder) {
		s.workDir = dir
	}
}

// WithStatus sets the progress indicator. Defaults to a ui.Spinner on the
// console's output.
func WithStatus(st ui.Status) Option {
	return func(s *Scaffolder) {
		s.status = st
	}
}

// WithPackageManager sets the package manager executable (default "npm").
func WithPackageManager(bin string) Option {
	return func(s *Scaffolder) {
		if bin != "" {
			s.packageManager = bin
		}
	}
}

// WithGit sets the git executable (default "git").
func WithGit(bin string) Option {
	return func(s *Scaffolder) {
		if bin != "" {
			s.git = bin
		}
	}
}

// New creates a Scaffolder that runs commands through r and reports to console.
func New(r runner.Runner, console *ui.Console, opts ...Option) *Scaffolder {
	s := &Scaffolder{
		runner:         r,
		console:        console,
		packageManager: "npm",
		git:            "git",
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			wd = "."
		}
		s.workDir = wd
	}
	if s.status == nil {
		s.status = ui.NewSpinner(console.Out)
	}
	return s
}

// ProjectDir returns the absolute path a project name resolves to.
func (s *Scaffolder) ProjectDir(name string) (string, error) {
	name = strings.TrimSpace(name)
	if filepath.IsAbs(name) {
		return filepath.Clean(name), nil
	}
	return filepath.Abs(filepath.Join(s.workDir, name))
}

// Run creates the project and reports the outcome on the console. Failures
// are printed, not propagated to the process exit code; the returned error
// is the one already printed.
func (s *Scaffolder) Run(ctx context.Context, req Request) (*Result, error) {
	result, err := s.Create(ctx, req)
	if err != nil {
		s.status.Fail("")
		s.console.Error("Error creating project:", err)
		return result, err
	}

	s.console.Success(fmt.Sprintf("Project %s has been created successfully!", strings.TrimSpace(req.ProjectName)))
	for _, f := range result.Files {
		s.console.Muted("  " + f)
	}
	for _, w := range result.Warnings {
		s.console.Warn("  - " + w)
	}
	return result, nil
}

// Create runs the scaffold steps in order and stops at the first fatal
// error. A failed git init is downgraded to a warning. A partially built
// directory is left in place when a later step fails.
func (s *Scaffolder) Create(ctx context.Context, req Request) (*Result, error) {
	name := strings.TrimSpace(req.ProjectName)
	if name == "" {
		return nil, ErrEmptyProjectName
	}

	projectDir, err := s.ProjectDir(name)
	if err != nil {
		return nil, fmt.Errorf("resolving project path: %w", err)
	}

	if _, err := os.Stat(projectDir); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrDirectoryExists, projectDir)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("checking %s: %w", projectDir, err)
	}

	result := &Result{ProjectDir: projectDir}

	if err := createTree(projectDir); err != nil {
		return result, err
	}

	if _, err := s.runner.Run(ctx, projectDir, s.packageManager, "init", "-y"); err != nil {
		return result, fmt.Errorf("initializing package: %w", err)
	}

	if req.InitGit {
		if _, err := s.runner.Run(ctx, projectDir, s.git, "init"); err != nil {
			s.console.Warn("Git is not installed or initialization failed.")
		} else {
			result.GitInitialized = true
			s.console.Success("Git repository initialized.")
		}
	}

	files, err := Materialize(projectDir, TemplateData{
		ProjectName: name,
		Variant:     req.Variant,
		Ext:         req.Variant.Ext(),
	})
	result.Files = files
	if err != nil {
		return result, fmt.Errorf("writing template files: %w", err)
	}

	result.Warnings = append(result.Warnings, checkManifest(projectDir)...)

	if req.InstallDeps {
		s.status.Start("Installing dependencies...")
		if _, err := s.runner.Run(ctx, projectDir, s.packageManager, "install"); err != nil {
			return result, fmt.Errorf("installing dependencies: %w", err)
		}
		result.DepsInstalled = true
		s.status.Succeed("Dependencies installed.")
	} else {
		s.status.Succeed("Project structure created.")
	}

	return result, nil
}

func createTree(projectDir string) error {
	for _, dir := range []string{
		projectDir,
		filepath.Join(projectDir, "src"),
		filepath.Join(projectDir, "src", "utils"),
	} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	return nil
}

// checkManifest validates the package.json written by the initializer and
// returns any problems as warnings.
func checkManifest(projectDir string) []string {
	valResult, err := manifest.ValidateFile(filepath.Join(projectDir, manifest.FileName))
	if err != nil {
		return []string{fmt.Sprintf("Could not validate %s: %v", manifest.FileName, err)}
	}

	var warnings []string
	for _, issue := range valResult.Issues {
		warnings = append(warnings, manifest.FileName+" "+issue.String())
	}
	return warnings
}
