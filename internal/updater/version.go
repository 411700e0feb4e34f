package updater

// IsUpdateAvailable reports whether latest differs from current. The
// comparison is exact string inequality: a registry version lower than the
// running one, or one that is not semver at all, still counts as an update.
func IsUpdateAvailable(current, latest string) bool {
	return latest != current
}
