// Package poetdir encapsulates all path knowledge for a sportpoet project
// directory: where the default template ships, where generated configs and
// reproduction scripts land, and where local (gitignored) API keys live.
package poetdir

import (
	"os"
	"path/filepath"
)

// Dir is a value object that resolves paths within a project directory.
type Dir struct {
	root string
}

// New creates a Dir rooted at the given path. The path is converted to an
// absolute path. No I/O is performed; use EnsureStructure to create the
// output layout.
func New(root string) Dir {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}

	return Dir{root: abs}
}

// Root returns the absolute path to the project directory.
func (d Dir) Root() string { return d.root }

// DefaultTemplatePath returns the path to the shipped default config
// template. Its absence means the installation is corrupted.
func (d Dir) DefaultTemplatePath() string { return filepath.Join(d.root, "config.default.json") }

// OutputDir returns the path to the output directory.
func (d Dir) OutputDir() string { return filepath.Join(d.root, "output") }

// ConfigsDir returns the path to the directory generated configs land in.
func (d Dir) ConfigsDir() string { return filepath.Join(d.root, "output", "configs") }

// ConfigPath returns the conventional path for a config generated at the
// given timestamp (e.g. "20251115_120000").
func (d Dir) ConfigPath(stamp string) string {
	return filepath.Join(d.ConfigsDir(), "config_"+stamp+".json")
}

// ScriptPath returns the conventional path for the reproduction script that
// accompanies the config generated at the given timestamp.
func (d Dir) ScriptPath(stamp string) string {
	return filepath.Join(d.ConfigsDir(), "generate_config_"+stamp+".go")
}

// LocalDir returns the path to the local (gitignored) directory.
func (d Dir) LocalDir() string { return filepath.Join(d.root, ".sportpoet") }

// LocalKeysPath returns the path to the local API key file inside the
// gitignored directory.
func (d Dir) LocalKeysPath() string { return filepath.Join(d.root, ".sportpoet", "keys.local.md") }

// GitignorePath returns the path to the .gitignore inside the local dir.
func (d Dir) GitignorePath() string { return filepath.Join(d.root, ".sportpoet", ".gitignore") }

// Exists reports whether the project root directory exists on disk.
func (d Dir) Exists() bool {
	info, err := os.Stat(d.root)

	return err == nil && info.IsDir()
}
