package app

import (
	"os"
	"path/filepath"
)

// Paths holds the resolved filesystem paths under the data directory.
type Paths struct {
	Root   string // ~/.typey/
	DB     string // ~/.typey/typey.db
	Config string // ~/.typey/config.yaml

	RunDir   string // ~/.typey/run/
	PortFile string // ~/.typey/run/http.port
}

// NewPaths constructs all resolved paths from a data directory.
func NewPaths(dataDir string) *Paths {
	return &Paths{
		Root:   dataDir,
		DB:     filepath.Join(dataDir, "typey.db"),
		Config: filepath.Join(dataDir, "config.yaml"),

		RunDir:   filepath.Join(dataDir, "run"),
		PortFile: filepath.Join(dataDir, "run", "http.port"),
	}
}

// EnsureDirs creates the data directory and its subdirectories. Idempotent.
func (p *Paths) EnsureDirs() error {
	for _, d := range []string{p.Root, p.RunDir} {
		if err := os.MkdirAll(d, 0755); err != nil {
			return err
		}
	}
	return nil
}

// CleanEphemeral removes runtime files. Called on clean shutdown.
func (p *Paths) CleanEphemeral() {
	os.Remove(p.PortFile)
}
