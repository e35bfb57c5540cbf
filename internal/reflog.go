package internal

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"
)

// GitTimeLayout matches timestamps produced by `git reflog --date=iso`.
const GitTimeLayout = "2006-01-02 15:04:05 -0700"

// checkoutMarker identifies the reflog entries we track. Commits, merges,
// rebases and the rest are ignored: only branch dwell-time is modeled.
const checkoutMarker = "checkout:"

// checkoutLine decomposes a checkout entry, e.g.:
//
//	48c2f7c0 (HEAD -> 4.9) HEAD@{2021-07-09 18:32:12 -0300}: checkout: moving from feature/IRISDEV-1051 to 4.9
//
// Groups: commit, timestamp, message, previous ref, current ref.
var checkoutLine = regexp.MustCompile(`^(\S+) .*?\{([^}]*)\}: (checkout: moving from (\S+) to (\S+))\s*$`)

// ReflogSource supplies a repository's raw reflog text. The production
// implementation shells out to git; tests substitute a fake.
type ReflogSource interface {
	Reflog(repoPath string) ([]byte, error)
}

// GitReflogSource runs the git binary with the repository as working
// directory. The call blocks until git exits.
type GitReflogSource struct{}

// Reflog returns the full reflog across all refs with iso timestamps.
func (GitReflogSource) Reflog(repoPath string) ([]byte, error) {
	cmd := exec.Command("git", "reflog", "--date=iso", "--all")
	cmd.Dir = repoPath
	return cmd.Output()
}

// HashLine fingerprints the exact text of a reflog line. Identical text
// always yields an identical hash; collisions are not checked (accepted risk
// for a cryptographic digest).
func HashLine(line string) string {
	sum := sha256.Sum256([]byte(line))
	return hex.EncodeToString(sum[:])
}

// ParseCheckoutLine decodes one checkout entry into a CheckoutRecord.
func ParseCheckoutLine(line string) (CheckoutRecord, error) {
	m := checkoutLine.FindStringSubmatch(line)
	if m == nil {
		return CheckoutRecord{}, &ReflogError{Line: line, Err: errors.New("does not match checkout syntax")}
	}

	ts, err := time.Parse(GitTimeLayout, m[2])
	if err != nil {
		return CheckoutRecord{}, &ReflogError{Line: line, Err: fmt.Errorf("bad timestamp %q: %w", m[2], err)}
	}

	return CheckoutRecord{
		Commit:    m[1],
		Timestamp: ts,
		Message:   m[3],
		Previous:  m[4],
		Current:   m[5],
	}, nil
}

// Ingestor incrementally folds a repository's reflog into the store.
type Ingestor struct {
	source ReflogSource
	store  *Store
}

// NewIngestor creates a new Ingestor.
func NewIngestor(source ReflogSource, store *Store) *Ingestor {
	return &Ingestor{source: source, store: store}
}

// Refresh re-reads the repository's reflog, merges any checkout lines not
// seen before into the stored state, persists, and returns the merged state.
//
// A repository that is temporarily unreachable (unmounted drive, deleted
// checkout) yields the previously cached state with no error: losing access
// must not erase history.
func (in *Ingestor) Refresh(repoPath string) (*RepositoryState, error) {
	state, err := in.store.Load(repoPath)
	if err != nil {
		return nil, err
	}

	out, err := in.source.Reflog(repoPath)
	if err != nil {
		LogDebug("reflog unavailable for %s: %v", repoPath, err)
		return state, nil
	}

	newRaw := make(map[string]string)
	newParsed := make(map[string]CheckoutRecord)

	for _, line := range strings.Split(string(out), "\n") {
		if line == "" || !strings.Contains(line, checkoutMarker) {
			continue
		}

		hash := HashLine(line)
		if _, ok := state.Hashes[hash]; ok {
			continue
		}
		if _, ok := newRaw[hash]; ok {
			continue
		}

		rec, err := ParseCheckoutLine(line)
		if err != nil {
			// Skip the single malformed entry, keep the rest of the refresh.
			LogDebug("skipping malformed checkout entry in %s: %v", repoPath, err)
			continue
		}

		newRaw[hash] = line
		newParsed[hash] = rec
	}

	if len(newRaw) == 0 {
		return state, nil
	}

	merged, err := in.store.MergeAndPersist(repoPath, newRaw, newParsed)
	if err != nil {
		return nil, err
	}

	return merged, nil
}
