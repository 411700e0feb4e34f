// Package manifest checks the package.json that the package manager's
// initializer writes into a new project against an embedded JSON Schema.
// Problems are reported as issues for the caller to surface as warnings;
// the file itself is never rewritten.
package manifest
