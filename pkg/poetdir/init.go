package poetdir

import (
	"fmt"
	"os"
)

const gitignoreContent = "*\n"

// EnsureStructure creates the output/configs and .sportpoet/ directories and
// the .gitignore that keeps local keys out of version control. It is safe to
// call multiple times (idempotent). It does NOT create the project root
// itself — the caller decides whether to bootstrap from scratch.
func EnsureStructure(d Dir) error {
	if err := os.MkdirAll(d.ConfigsDir(), 0o750); err != nil {
		return fmt.Errorf("poetdir: create configs dir: %w", err)
	}

	if err := os.MkdirAll(d.LocalDir(), 0o750); err != nil {
		return fmt.Errorf("poetdir: create local dir: %w", err)
	}

	if err := ensureGitignore(d); err != nil {
		return fmt.Errorf("poetdir: gitignore: %w", err)
	}

	return nil
}

// ensureGitignore creates the .gitignore file if it does not exist.
func ensureGitignore(d Dir) error {
	path := d.GitignorePath()

	if _, err := os.Stat(path); err == nil {
		return nil // already exists
	}

	return os.WriteFile(path, []byte(gitignoreContent), 0o600)
}
