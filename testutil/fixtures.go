package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// CreateRepoFixture creates a directory that passes repository validation
// (an empty work tree with a .git directory).
func CreateRepoFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".git"), 0755); err != nil {
		t.Fatalf("Failed to create .git directory: %v", err)
	}
	return dir
}
