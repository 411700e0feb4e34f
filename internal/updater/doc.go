// Package updater implements the start-up update notice. It asks the npm
// registry for the latest published version of this tool and, when that
// differs from the running version, prints the command to upgrade. Any
// failure is reported and swallowed; the notice never stops a run.
package updater
