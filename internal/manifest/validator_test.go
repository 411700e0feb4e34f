package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const npmInitOutput = `{
  "name": "demo",
  "version": "1.0.0",
  "description": "",
  "main": "index.js",
  "scripts": {
    "test": "echo \"Error: no test specified\" && exit 1"
  },
  "keywords": [],
  "author": "",
  "license": "ISC"
}
`

func TestValidate_NpmInitOutput(t *testing.T) {
	result, err := Validate([]byte(npmInitOutput))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got issues: %v", result.Issues)
	}
}

func TestValidate_ScopedName(t *testing.T) {
	result, err := Validate([]byte(`{"name": "@acme/demo", "version": "0.1.0"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got issues: %v", result.Issues)
	}
}

func TestValidate_Issues(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		path    string
		keyword string
	}{
		{"missing version", `{"name": "demo"}`, "", "required"},
		{"uppercase name", `{"name": "Demo", "version": "1.0.0"}`, "/name", "pattern"},
		{"empty name", `{"name": "", "version": "1.0.0"}`, "/name", ""},
		{"partial version", `{"name": "demo", "version": "1.0"}`, "/version", "semver"},
		{"v-prefixed version", `{"name": "demo", "version": "v1.0.0"}`, "/version", "semver"},
		{"non-string script", `{"name": "demo", "version": "1.0.0", "scripts": {"test": 1}}`, "/scripts/test", "type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Valid {
				t.Fatal("expected invalid result")
			}
			found := false
			for _, issue := range result.Issues {
				if issue.Path == tt.path && (tt.keyword == "" || issue.Keyword == tt.keyword) {
					found = true
				}
			}
			if !found {
				t.Errorf("no issue at %q (%s) in %v", tt.path, tt.keyword, result.Issues)
			}
		})
	}
}

func TestValidate_BadJSON(t *testing.T) {
	if _, err := Validate([]byte("{not json")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(npmInitOutput), 0644); err != nil {
		t.Fatal(err)
	}

	result, err := ValidateFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got %v", result.Issues)
	}

	_, err = ValidateFile(filepath.Join(dir, "missing.json"))
	if err == nil || !strings.Contains(err.Error(), "reading file") {
		t.Errorf("expected read error, got %v", err)
	}
}

func TestValidationIssue_String(t *testing.T) {
	if got := (ValidationIssue{Path: "/name", Message: "bad"}).String(); got != "/name: bad" {
		t.Errorf("String() = %q", got)
	}
	if got := (ValidationIssue{Message: "bad"}).String(); got != "bad" {
		t.Errorf("String() = %q", got)
	}
}

func TestValidate_PrereleaseVersion(t *testing.T) {
	result, err := Validate([]byte(`{"name": "demo", "version": "0.1.0-beta.1+build.5"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got issues: %v", result.Issues)
	}
}
