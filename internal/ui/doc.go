// Package ui renders the tool's terminal output: coloured status lines, the
// transient status indicator shown while long commands run, and the optional
// start-up banner. Colour and animation are dropped when output is not a
// terminal.
package ui
