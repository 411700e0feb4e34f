// Package scaffold creates a blank Node.js project: it checks the target
// directory, lays out src/ and src/utils/, runs the package manager's
// initializer, optionally initializes git, writes the stub files for the
// chosen variant from embedded templates, and optionally installs
// dependencies. Nothing is rolled back on failure.
package scaffold
