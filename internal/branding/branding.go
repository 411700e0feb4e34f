// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is embedded into the binary. The package name is the one the
// tool is published under on the npm registry; the update notice looks it up
// there and tells users how to upgrade the global install.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	PackageName string `yaml:"package_name"`
	RegistryURL string `yaml:"registry_url"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:     "starterkit",
			DisplayName: "StarterKit",
			Description: "Scaffold a blank Node.js project interactively",
			HomeDir:     ".starterkit",
			EnvPrefix:   "STARTERKIT",
			PackageName: "starterkit-cli",
			RegistryURL: "https://registry.npmjs.org",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "starterkit").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "StarterKit").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".starterkit").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "STARTERKIT").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// PackageName returns the name the tool is published under on the registry.
func PackageName() string { load(); return defaults.PackageName }

// RegistryURL returns the default package registry base URL.
func RegistryURL() string { load(); return defaults.RegistryURL }

// UpdateCommand returns the shell command users run to upgrade the tool.
func UpdateCommand() string {
	load()
	return "npm update -g " + defaults.PackageName
}

// EnvVar returns a fully qualified env var name, e.g., EnvVar("registry") → "STARTERKIT_REGISTRY".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
