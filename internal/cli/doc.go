// Package cli wires the cobra command tree. The root command takes no
// arguments and runs the interactive scaffold; version and config are
// housekeeping subcommands.
package cli
