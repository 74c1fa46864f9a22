package bundler

import (
	"os"
	"path/filepath"

	"github.com/NayanVR/tuono/internal/config"
	"github.com/NayanVR/tuono/internal/errors"
)

// Output file names inside the .tuono staging directory.
const (
	ServerEntryFile = "main.go"
	ClientShimFile  = "client-main.tsx"
	ServerShimFile  = "server-main.tsx"
)

// Bootstrapper persists bundling output below the project root.
type Bootstrapper struct {
	basePath string
}

// NewBootstrapper creates a Bootstrapper rooted at the project directory.
func NewBootstrapper(basePath string) *Bootstrapper {
	return &Bootstrapper{basePath: basePath}
}

// OutputDir returns the absolute path of the staging directory.
func (b *Bootstrapper) OutputDir() string {
	return filepath.Join(b.basePath, config.OutputFolder)
}

// EnsureOutputDir creates the hidden .tuono directory if absent. It is
// idempotent: an existing directory is not an error and its contents are
// left alone.
func (b *Bootstrapper) EnsureOutputDir() error {
	if err := os.MkdirAll(b.OutputDir(), 0755); err != nil {
		return errors.New("E110").Wrap(err)
	}
	return nil
}

// WriteOutputs writes the generated server entry plus the two static
// entry shims, unconditionally overwriting existing content. A failed
// write aborts immediately; files written earlier in the run stay in
// place and are not rolled back.
func (b *Bootstrapper) WriteOutputs(generated, clientShim, serverShim string) error {
	outputs := []struct {
		name    string
		content string
	}{
		{ClientShimFile, clientShim},
		{ServerShimFile, serverShim},
		{ServerEntryFile, generated},
	}

	for _, out := range outputs {
		path := filepath.Join(b.OutputDir(), out.name)
		if err := os.WriteFile(path, []byte(out.content), 0644); err != nil {
			return errors.New("E111").
				WithDetail("writing " + out.name).
				Wrap(err)
		}
	}
	return nil
}
