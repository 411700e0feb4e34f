package updater

import (
	"context"
	"fmt"

	"github.com/starterkit-labs/starterkit/internal/branding"
	"github.com/starterkit-labs/starterkit/internal/ui"
)

// Registry looks up the latest published version of a package.
type Registry interface {
	Latest(ctx context.Context, pkg string) (string, error)
}

// UpdateCheckError wraps any failure of the version lookup.
type UpdateCheckError struct {
	Package string
	Err     error
}

func (e *UpdateCheckError) Error() string {
	return fmt.Sprintf("checking latest version of %s: %v", e.Package, e.Err)
}

func (e *UpdateCheckError) Unwrap() error { return e.Err }

// Notifier compares the running version with the registry's latest.
type Notifier struct {
	currentVersion string
	pkg            string
	updateCommand  string
	registry       Registry
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithRegistry sets the registry used for the lookup (useful for testing).
func WithRegistry(r Registry) Option {
	return func(n *Notifier) {
		n.registry = r
	}
}

// WithRegistryURL points the default npm registry client at url.
func WithRegistryURL(url string) Option {
	return func(n *Notifier) {
		if url != "" {
			n.registry = NewNPMRegistry(url)
		}
	}
}

// New creates a Notifier for the given running version.
func New(currentVersion string, opts ...Option) *Notifier {
	n := &Notifier{
		currentVersion: currentVersion,
		pkg:            branding.PackageName(),
		updateCommand:  branding.UpdateCommand(),
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.registry == nil {
		n.registry = NewNPMRegistry(branding.RegistryURL())
	}
	return n
}

// Check returns the latest published version and whether it differs from
// the running one. Errors are always *UpdateCheckError.
func (n *Notifier) Check(ctx context.Context) (latest string, available bool, err error) {
	latest, err = n.registry.Latest(ctx, n.pkg)
	if err != nil {
		return "", false, &UpdateCheckError{Package: n.pkg, Err: err}
	}
	return latest, IsUpdateAvailable(n.currentVersion, latest), nil
}

// CheckAndPrint runs Check and reports the outcome on console: a warning
// naming the new version when one is available, an error line when the
// lookup fails, nothing otherwise.
func (n *Notifier) CheckAndPrint(ctx context.Context, console *ui.Console) {
	latest, available, err := n.Check(ctx)
	if err != nil {
		console.Error("Failed to check for updates:", err)
		return
	}
	if available {
		console.Warn(UpdateMessage(latest, n.updateCommand))
	}
}

// UpdateMessage is the notice shown when a different version is published.
func UpdateMessage(latest, updateCommand string) string {
	return fmt.Sprintf("A new version (%s) is available. Please update using '%s'", latest, updateCommand)
}
