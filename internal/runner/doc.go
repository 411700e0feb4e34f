// Package runner runs external commands (npm, git) inside a working
// directory. The Runner interface is the only way the scaffolder touches the
// process table, so tests swap in a Recorder instead.
package runner
