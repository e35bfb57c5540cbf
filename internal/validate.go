package internal

import (
	"fmt"
	"os"
	"path/filepath"
)

// ValidateDirectory checks that the path is an existing directory.
func ValidateDirectory(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("not a directory: %s", path)
	}
	return nil
}

// ValidateRepository checks that the directory is a git work tree.
func ValidateRepository(path string) error {
	if err := ValidateDirectory(path); err != nil {
		return err
	}
	git, err := os.Stat(filepath.Join(path, ".git"))
	if err != nil || !git.IsDir() {
		return fmt.Errorf("not a git repository: %s", path)
	}
	return nil
}

// ValidateNotTracked checks that the repository isn't already tracked.
func ValidateNotTracked(path string, settings *Settings) error {
	if settings.Tracks(path) {
		return fmt.Errorf("repository already tracked: %s", path)
	}
	return nil
}
