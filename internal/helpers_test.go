package internal

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return newTestStoreAt(t, filepath.Join(t.TempDir(), "workday.db"))
}

func newTestStoreAt(t *testing.T, path string) *Store {
	t.Helper()
	db, err := OpenDatabase(path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	store := NewStore(db)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// fakeSource serves canned reflog output, or a failure, in place of git.
type fakeSource struct {
	lines []string
	err   error
	calls int
}

func (f *fakeSource) Reflog(repoPath string) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []byte(strings.Join(f.lines, "\n") + "\n"), nil
}

// reflogLine renders a reflog entry the way `git reflog --date=iso` prints it.
func reflogLine(commit string, ts time.Time, from, to string) string {
	return fmt.Sprintf("%s (HEAD -> %s) HEAD@{%s}: checkout: moving from %s to %s",
		commit, to, ts.Format(GitTimeLayout), from, to)
}

func fixedClock(now time.Time) func() time.Time {
	return func() time.Time { return now }
}

func newTestBuilder(t *testing.T, lines []string, settings *Settings, now time.Time) *Builder {
	t.Helper()
	store := newTestStore(t)
	builder := NewBuilder(NewIngestor(&fakeSource{lines: lines}, store), settings)
	builder.now = fixedClock(now)
	return builder
}

func intPtr(v int) *int {
	return &v
}
