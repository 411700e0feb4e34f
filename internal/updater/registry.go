package updater

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	fastshot "github.com/opus-domini/fast-shot"
)

// NPMRegistry queries an npm-compatible registry over HTTP.
type NPMRegistry struct {
	baseURL string
}

// NewNPMRegistry creates a registry client for baseURL
// (e.g., "https://registry.npmjs.org").
func NewNPMRegistry(baseURL string) *NPMRegistry {
	return &NPMRegistry{baseURL: strings.TrimRight(baseURL, "/")}
}

type latestManifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Latest fetches <base>/<pkg>/latest and returns its version field.
func (r *NPMRegistry) Latest(ctx context.Context, pkg string) (string, error) {
	if pkg == "" {
		return "", fmt.Errorf("package name cannot be empty")
	}

	client := fastshot.NewClient(r.baseURL).
		Header().Add("Accept", "application/json").
		Build()

	resp, err := client.
		GET("/" + url.PathEscape(pkg) + "/latest").
		Context().Set(ctx).
		Send()
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", pkg, err)
	}
	defer resp.Body().Close()

	if resp.Status().IsError() {
		msg, err := resp.Body().AsString()
		if err != nil {
			return "", fmt.Errorf("failed to read error response: %w", err)
		}
		return "", fmt.Errorf("registry error: %s", strings.TrimSpace(msg))
	}

	var m latestManifest
	if err := resp.Body().AsJSON(&m); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if m.Version == "" {
		return "", errors.New("registry response has no version")
	}
	return m.Version, nil
}
