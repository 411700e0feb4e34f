package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed templates
var templateFS embed.FS

const (
	templateSet    = "blank"
	extPlaceholder = "__ext__"
	tmplSuffix     = ".tmpl"
)

// TemplateData holds the variables available to .tmpl files.
type TemplateData struct {
	ProjectName string
	Variant     Variant
	Ext         string
}

// Materialize writes the embedded template tree into dir. Files ending in
// .tmpl are rendered with text/template and lose the suffix; every other
// file is copied verbatim. The extension placeholder in paths becomes the
// variant's extension. It returns the slash-separated paths written.
func Materialize(dir string, data TemplateData) ([]string, error) {
	root := path.Join("templates", templateSet)
	var files []string

	err := fs.WalkDir(templateFS, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(p, root), "/")
		if rel == "" {
			return nil
		}

		outRel := strings.ReplaceAll(rel, extPlaceholder, data.Ext)
		outRel = strings.TrimSuffix(outRel, tmplSuffix)
		outPath := filepath.Join(dir, filepath.FromSlash(outRel))

		if d.IsDir() {
			if err := os.MkdirAll(outPath, 0755); err != nil {
				return fmt.Errorf("creating %s: %w", outPath, err)
			}
			return nil
		}

		content, err := fs.ReadFile(templateFS, p)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", p, err)
		}

		if strings.HasSuffix(p, tmplSuffix) {
			content, err = render(p, content, data)
			if err != nil {
				return err
			}
		}

		if err := os.WriteFile(outPath, content, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
		files = append(files, outRel)
		return nil
	})
	return files, err
}

func render(name string, content []byte, data TemplateData) ([]byte, error) {
	tmpl, err := template.New(path.Base(name)).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
