package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/viper"
	"github.com/starterkit-labs/starterkit/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyRegistry       = "registry"
	KeyCheckUpdates   = "check_updates"
	KeyPackageManager = "package_manager"
	KeyGit            = "git"
	KeyBanner         = "banner"
)

// Settings is the resolved view of the config file and environment.
type Settings struct {
	Registry       string
	CheckUpdates   bool
	PackageManager string
	Git            string
	Banner         bool
}

// Dir returns the path to the config directory (~/.starterkit/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.starterkit/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault(KeyRegistry, branding.RegistryURL())
	viper.SetDefault(KeyCheckUpdates, true)
	viper.SetDefault(KeyPackageManager, "npm")
	viper.SetDefault(KeyGit, "git")
	viper.SetDefault(KeyBanner, false)
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	setDefaults()
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Current returns the settings after Load.
func Current() Settings {
	return Settings{
		Registry:       viper.GetString(KeyRegistry),
		CheckUpdates:   viper.GetBool(KeyCheckUpdates),
		PackageManager: viper.GetString(KeyPackageManager),
		Git:            viper.GetString(KeyGit),
		Banner:         viper.GetBool(KeyBanner),
	}
}

// Keys returns the known setting keys in sorted order.
func Keys() []string {
	keys := []string{KeyRegistry, KeyCheckUpdates, KeyPackageManager, KeyGit, KeyBanner}
	sort.Strings(keys)
	return keys
}

// IsKnown reports whether key is a recognised setting.
func IsKnown(key string) bool {
	for _, k := range Keys() {
		if k == key {
			return true
		}
	}
	return false
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnown(key) {
		return fmt.Errorf("unknown setting %q", key)
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
