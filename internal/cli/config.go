package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/starterkit-labs/starterkit/internal/branding"
	"github.com/starterkit-labs/starterkit/internal/config"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long:  configHelp(),
}

var settingDocs = []struct{ key, doc string }{
	{config.KeyRegistry, "npm registry queried for the update notice"},
	{config.KeyCheckUpdates, "set to false to skip the update notice"},
	{config.KeyPackageManager, `executable used for "init -y" and "install" (default npm)`},
	{config.KeyGit, `executable used for "init" (default git)`},
	{config.KeyBanner, "set to true to print the start-up banner"},
}

func configHelp() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Read and write settings stored at ~/%s/config.yaml.\n", branding.HomeDir())
	b.WriteString("Each key can also be set with the environment variable shown.\n\nKeys:\n")
	for _, s := range settingDocs {
		fmt.Fprintf(&b, "  %-16s %-28s %s\n", s.key, branding.EnvVar(s.key), s.doc)
	}
	return strings.TrimRight(b.String(), "\n")
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		for _, key := range config.Keys() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, config.Get(key))
		}
		return nil
	},
}
