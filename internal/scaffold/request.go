package scaffold

import "errors"

// Variant selects the extension of the generated stub files.
type Variant string

const (
	VariantJavaScript Variant = "javascript"
	VariantTypeScript Variant = "typescript"
)

// Ext returns the file extension for the variant, without the dot.
func (v Variant) Ext() string {
	if v == VariantTypeScript {
		return "ts"
	}
	return "js"
}

func (v Variant) String() string {
	if v == VariantTypeScript {
		return "TypeScript"
	}
	return "JavaScript"
}

// Request is the validated set of choices for one scaffold run.
type Request struct {
	ProjectName string
	InitGit     bool
	InstallDeps bool
	Variant     Variant
}

// Result holds the outcome of a scaffold run.
type Result struct {
	ProjectDir     string
	Files          []string // relative to ProjectDir, slash-separated
	Warnings       []string
	GitInitialized bool
	DepsInstalled  bool
}

var (
	// ErrEmptyProjectName is returned when the project name is blank.
	ErrEmptyProjectName = errors.New("empty project name")
	// ErrDirectoryExists is returned when the target path already exists.
	ErrDirectoryExists = errors.New("directory already exists")
)
